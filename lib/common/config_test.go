package common

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// TestClientConfigFromEnv tests that STORE_* variables are picked up
func TestClientConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_HOST", "redis.internal")
	t.Setenv("STORE_PORT", "6380")
	t.Setenv("STORE_PASSWORD", "secret")
	t.Setenv("STORE_RETRY_DELAY", "0.5")

	conf := ClientConfigFromEnv()

	if conf.Host != "redis.internal" {
		t.Errorf("Host = %q, want %q", conf.Host, "redis.internal")
	}
	if conf.Port != 6380 {
		t.Errorf("Port = %d, want 6380", conf.Port)
	}
	if conf.Password != "secret" {
		t.Errorf("Password = %q, want %q", conf.Password, "secret")
	}
	if conf.RetryDelay != 500*time.Millisecond {
		t.Errorf("RetryDelay = %s, want 500ms", conf.RetryDelay)
	}
	if conf.Addr() != "redis.internal:6380" {
		t.Errorf("Addr() = %q", conf.Addr())
	}
}

// TestClientConfigDefaults tests the values used when nothing is configured
func TestClientConfigDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	conf := LoadClientConfig(v)

	if conf.Host != "" {
		t.Errorf("Host should have no default, got %q", conf.Host)
	}
	if conf.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", conf.Port, DefaultPort)
	}
	if conf.Password != "" {
		t.Errorf("Password should default to none, got %q", conf.Password)
	}
	if conf.DialTimeout != DefaultTimeout || conf.OpTimeout != DefaultTimeout {
		t.Errorf("timeouts = %s/%s, want %s", conf.DialTimeout, conf.OpTimeout, DefaultTimeout)
	}
	if conf.MaxRetries != DefaultMaxRetries || conf.RetryDelay != DefaultRetryDelay {
		t.Errorf("retry policy = %d/%s, want %d/%s", conf.MaxRetries, conf.RetryDelay, DefaultMaxRetries, DefaultRetryDelay)
	}
}

// TestOverride tests that only set fields replace the base values
func TestOverride(t *testing.T) {
	base := ClientConfig{Host: "env-host", Port: 6379, Password: "env-pw", MaxRetries: 3}
	got := base.Override(ClientConfig{Host: "arg-host", MaxRetries: 5})

	want := ClientConfig{Host: "arg-host", Port: 6379, Password: "env-pw", MaxRetries: 5}
	if got != want {
		t.Errorf("Override() = %+v, want %+v", got, want)
	}
	if base.Host != "env-host" {
		t.Error("Override() must not modify the receiver")
	}
}

// TestStringHidesPassword tests the formatted representation
func TestStringHidesPassword(t *testing.T) {
	s := ClientConfig{Host: "h", Port: 1, Password: "top-secret"}.String()

	if strings.Contains(s, "top-secret") {
		t.Error("String() must not contain the password")
	}
	for _, want := range []string{"STORE", "Host", "password", "Retry Count"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() should contain %q:\n%s", want, s)
		}
	}
	if !strings.Contains(ClientConfig{}.String(), "(unset)") {
		t.Error("String() should mark a missing host")
	}
}
