package sl

import (
	"errors"
	"testing"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))

	if attr.Key != "error" {
		t.Errorf("attr.Key = %q, want %q", attr.Key, "error")
	}
	if got := attr.Value.String(); got != "boom" {
		t.Errorf("attr.Value = %q, want %q", got, "boom")
	}
}
