package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// --------------------------------------------------------------------------
// Defaults
// --------------------------------------------------------------------------

const (
	// EnvPrefix is the prefix of all environment variables read by kvprobe (e.g. STORE_HOST)
	EnvPrefix = "store"

	DefaultPort       = 6379
	DefaultTimeout    = 5 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
	DefaultLogLevel   = "info"
)

// Config keys, shared by viper, the environment and the command line flags
const (
	KeyHost       = "host"
	KeyPort       = "port"
	KeyPassword   = "password"
	KeyTimeout    = "timeout"
	KeyRetries    = "retries"
	KeyRetryDelay = "retry-delay"
	KeyLogLevel   = "log-level"
)

// --------------------------------------------------------------------------
// Store client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds everything needed to reach the remote store.
// The zero value of a field means "not set" (see Override).
type ClientConfig struct {
	Host     string
	Port     int
	Password string

	// DialTimeout bounds establishing the connection, OpTimeout bounds every read and write
	DialTimeout time.Duration
	OpTimeout   time.Duration

	// MaxRetries and RetryDelay drive the connect loop of the client
	MaxRetries int
	RetryDelay time.Duration
}

// Addr returns the host:port pair of the store
func (c ClientConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Override returns a copy of c where every field that is set in o replaces the value of c
func (c ClientConfig) Override(o ClientConfig) ClientConfig {
	if o.Host != "" {
		c.Host = o.Host
	}
	if o.Port != 0 {
		c.Port = o.Port
	}
	if o.Password != "" {
		c.Password = o.Password
	}
	if o.DialTimeout != 0 {
		c.DialTimeout = o.DialTimeout
	}
	if o.OpTimeout != 0 {
		c.OpTimeout = o.OpTimeout
	}
	if o.MaxRetries != 0 {
		c.MaxRetries = o.MaxRetries
	}
	if o.RetryDelay != 0 {
		c.RetryDelay = o.RetryDelay
	}
	return c
}

// String returns a formatted string representation of the client configuration.
// The password is never printed.
func (c ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	host := c.Host
	if host == "" {
		host = "(unset)"
	}
	auth := "none"
	if c.Password != "" {
		auth = "password"
	}

	addSection("Store")
	addField("Host", host)
	addField("Port", strconv.Itoa(c.Port))
	addField("Auth", auth)

	addSection("Client Configuration")
	addField("Dial Timeout", c.DialTimeout.String())
	addField("Operation Timeout", c.OpTimeout.String())
	addField("Retry Count", strconv.Itoa(c.MaxRetries))
	addField("Retry Delay", c.RetryDelay.String())

	return sb.String()
}

// --------------------------------------------------------------------------
// Environment resolution
// --------------------------------------------------------------------------

// SetDefaults registers the default values of all client keys on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyTimeout, DefaultTimeout.Seconds())
	v.SetDefault(KeyRetries, DefaultMaxRetries)
	v.SetDefault(KeyRetryDelay, DefaultRetryDelay.Seconds())
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// BindEnv configures v to read STORE_* environment variables
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadClientConfig reads the client configuration from v.
// Timeouts and delays are configured in (fractional) seconds.
func LoadClientConfig(v *viper.Viper) ClientConfig {
	timeout := seconds(v.GetFloat64(KeyTimeout))
	return ClientConfig{
		Host:        v.GetString(KeyHost),
		Port:        v.GetInt(KeyPort),
		Password:    v.GetString(KeyPassword),
		DialTimeout: timeout,
		OpTimeout:   timeout,
		MaxRetries:  v.GetInt(KeyRetries),
		RetryDelay:  seconds(v.GetFloat64(KeyRetryDelay)),
	}
}

// ClientConfigFromEnv builds a configuration from the process environment.
// The files .env and .env.local are loaded first if they exist; variables already set win.
func ClientConfigFromEnv() ClientConfig {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return LoadClientConfig(v)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
