package kv

import (
	"fmt"

	"github.com/ValentinKolb/kvprobe/lib/client"
	"github.com/ValentinKolb/kvprobe/lib/serializer"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/spf13/cobra"
)

var (
	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Checks that the store is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// connecting in setupKVClient already pinged the store
			fmt.Fprintf(cmd.OutOrStdout(), "PONG from %s\n", storeClient.Config().Addr())
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [json]",
		Short: "Stores a JSON object under a key, replacing any previous value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			var doc store.Document
			if err := serializer.NewJSONSerializer().Deserialize(args[1], &doc); err != nil {
				return fmt.Errorf("value must be a JSON object: %w", err)
			}
			if !storeClient.Insert(commandContext(cmd), key, doc) {
				return fmt.Errorf("set of %s failed", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "set successfully")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Gets the JSON object stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			res := storeClient.Lookup(commandContext(cmd), key)
			switch res.Status {
			case client.StatusFound:
				value, err := serializer.NewJSONSerializer().Serialize(res.Doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
			case client.StatusNotFound:
				fmt.Fprintln(cmd.OutOrStdout(), "key not found")
			default:
				return res.Err
			}
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := storeClient.Remove(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "deleted successfully")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "key not found")
			}
			return nil
		},
	}
)
