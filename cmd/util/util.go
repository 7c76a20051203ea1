package util

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ValentinKolb/kvprobe/lib/client"
	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/ValentinKolb/kvprobe/lib/store/mstore"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// KeyMemory selects the in-memory store instead of a server
	KeyMemory = "memory"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreClientFlags adds the store connection flags to a command.
// Every flag can also be set as STORE_<FLAG> in the environment or in a .env file.
func SetupStoreClientFlags(cmd *cobra.Command) {
	key := common.KeyHost
	cmd.PersistentFlags().String(key, "", WrapString("Host of the store (no default, STORE_HOST)"))

	key = common.KeyPort
	cmd.PersistentFlags().Int(key, common.DefaultPort, WrapString("Port of the store"))

	key = common.KeyPassword
	cmd.PersistentFlags().String(key, "", WrapString("Password of the store (default none, prefer STORE_PASSWORD)"))

	key = common.KeyTimeout
	cmd.PersistentFlags().Float64(key, common.DefaultTimeout.Seconds(), WrapString("Dial and operation timeout in seconds"))

	key = common.KeyRetries
	cmd.PersistentFlags().Int(key, common.DefaultMaxRetries, WrapString("How many connection attempts to make before giving up"))

	key = common.KeyRetryDelay
	cmd.PersistentFlags().Float64(key, common.DefaultRetryDelay.Seconds(), WrapString("Fixed delay in seconds between connection attempts"))

	key = KeyMemory
	cmd.PersistentFlags().Bool(key, false, WrapString("Use a process-local in-memory store instead of a server (dry run)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	common.SetDefaults(viper.GetViper())
	common.BindEnv(viper.GetViper())
}

// InitLogging installs the kvprobe logger factory with the configured level.
// An invalid level is reported and replaced by the default level.
func InitLogging() {
	if err := common.InitLoggers(viper.GetString(common.KeyLogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = common.InitLoggers(common.DefaultLogLevel)
	}
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() common.ClientConfig {
	return common.LoadClientConfig(viper.GetViper())
}

var (
	memoryStore     *mstore.Conn
	memoryStoreOnce sync.Once
)

// GetConnFactory returns the factory selected by the --memory flag.
// All memory connections of the process share one key space.
// A nil factory makes the client use the Redis connection.
func GetConnFactory() store.ConnFactory {
	if viper.GetBool(KeyMemory) {
		memoryStoreOnce.Do(func() { memoryStore = mstore.NewMemoryConn() })
		return memoryStore.Factory()
	}
	return nil
}

// NewStoreClient creates a store client from the current configuration
func NewStoreClient(log logger.ILogger) *client.StoreClient {
	return client.NewStoreClient(GetClientConfig(), GetConnFactory(), log)
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
