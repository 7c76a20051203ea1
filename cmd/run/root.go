package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ValentinKolb/kvprobe/cmd/util"
	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/ValentinKolb/kvprobe/lib/serializer"
	"github.com/ValentinKolb/kvprobe/lib/stats"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultKey         = "APP_CONFIG"
	DefaultUpdateField = "primary_color"
	DefaultUpdateValue = "#FF0000"
	DefaultDocument    = `{"app_name":"kvprobe","version":"1.0.0","primary_color":"#0055FF","features":{"dark_mode":true,"beta":false},"max_sessions":25,"admins":["alice","bob"]}`
)

var (
	Logger = logger.GetLogger(common.LoggerCmd)

	// RunCmd runs the demonstration workflow against the store
	RunCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the insert/search/update/delete workflow against the store",
		Long: `Connects to the store and runs a fixed sequence of operations under one key:
insert, search, update, search, delete, search, insert, search.
Every operation is counted and a summary is printed at the end.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return util.BindCommandFlags(cmd)
		},
		RunE: runWorkflow,
	}
)

func init() {
	util.SetupStoreClientFlags(RunCmd)

	key := "key"
	RunCmd.Flags().String(key, DefaultKey, util.WrapString("Key the workflow operates on"))

	key = "document"
	RunCmd.Flags().String(key, DefaultDocument, util.WrapString("JSON object to insert"))

	key = "update-field"
	RunCmd.Flags().String(key, DefaultUpdateField, util.WrapString("Field of the document changed by the update step"))

	key = "update-value"
	RunCmd.Flags().String(key, DefaultUpdateValue, util.WrapString("New value of the update field"))

	key = "print-metrics"
	RunCmd.Flags().Bool(key, false, util.WrapString("Print the operation counters in Prometheus text format after the summary"))
}

func runWorkflow(cmd *cobra.Command, _ []string) error {
	var doc store.Document
	if err := serializer.NewJSONSerializer().Deserialize(viper.GetString("document"), &doc); err != nil {
		return fmt.Errorf("invalid --document: %w", err)
	}

	config := util.GetClientConfig()
	Logger.Debugf("%s", config.String())

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storeClient := util.NewStoreClient(nil)
	defer func() { _ = storeClient.Close() }()

	counter := stats.NewOperationCounter(nil)
	workflow := &Workflow{
		Client:      storeClient,
		Counter:     counter,
		Key:         viper.GetString("key"),
		Document:    doc,
		UpdateField: viper.GetString("update-field"),
		UpdateValue: viper.GetString("update-value"),
		MaxRetries:  config.MaxRetries,
		RetryDelay:  config.RetryDelay,
	}

	if _, err := workflow.Run(ctx); err != nil {
		return err
	}

	if viper.GetBool("print-metrics") {
		counter.WritePrometheus(os.Stdout)
	}
	return nil
}

// contextOrBackground returns ctx or a background context if ctx is nil
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
