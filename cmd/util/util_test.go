package util

import (
	"strings"
	"testing"
)

func TestWrapString(t *testing.T) {
	text := "Fixed delay in seconds between connection attempts, used by the connect loop of every command"
	wrapped := WrapString(text)

	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > Wrap {
			t.Errorf("line exceeds %d characters: %q", Wrap, line)
		}
	}
	if strings.Join(strings.Fields(wrapped), " ") != text {
		t.Error("WrapString() must keep all words in order")
	}
	if WrapString("") != "" {
		t.Error("WrapString(\"\") should be empty")
	}
}
