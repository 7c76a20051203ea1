package kv

import (
	"context"
	"fmt"

	"github.com/ValentinKolb/kvprobe/cmd/util"
	"github.com/ValentinKolb/kvprobe/lib/client"
	"github.com/spf13/cobra"
)

var (
	storeClient *client.StoreClient

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:                "kv",
		Short:              "Perform single operations on the store",
		PersistentPreRunE:  setupKVClient,
		PersistentPostRunE: closeKVClient,
	}
)

func init() {
	// Add common store flags to the KV command
	util.SetupStoreClientFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(pingCmd)
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(delCmd)
}

// setupKVClient creates the store client and connects it
func setupKVClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetClientConfig()
	storeClient = util.NewStoreClient(nil)

	if !storeClient.Connect(commandContext(cmd), config.MaxRetries, config.RetryDelay) {
		return fmt.Errorf("could not connect to %s", storeClient.Config().Addr())
	}
	return nil
}

// closeKVClient releases the connection of the store client
func closeKVClient(_ *cobra.Command, _ []string) error {
	if storeClient == nil {
		return nil
	}
	return storeClient.Close()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
