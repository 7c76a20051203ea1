package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/kvprobe/cmd/kv"
	"github.com/ValentinKolb/kvprobe/cmd/run"
	"github.com/ValentinKolb/kvprobe/cmd/util"
	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "kvprobe",
		Short: "exercise a key-value store with JSON documents",
		Long: fmt.Sprintf(`kvprobe (v%s)

Connects to a Redis compatible key-value store and stores, reads and
deletes JSON documents under string keys, counting every operation.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kvprobe",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kvprobe v%s\n", Version)
		},
	}
)

func init() {
	// Logging is configured after the environment is loaded
	cobra.OnInitialize(util.InitClientConfig, util.InitLogging)

	// Add Commands
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := common.KeyLogLevel
	RootCmd.PersistentFlags().String(key, common.DefaultLogLevel, util.WrapString("log level (debug, info, warn, error)"))
	_ = viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(key))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
