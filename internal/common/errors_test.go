package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindAndRaw(t *testing.T) {
	e := Ef(KindResponseRecovery, "no JSON object found")
	e.Raw = "model said nothing useful"

	wrapped := fmt.Errorf("pipeline stage: %w", e)

	if got := KindOf(wrapped); got != KindResponseRecovery {
		t.Errorf("KindOf() = %q", got)
	}
	if got := RawOf(wrapped); got != "model said nothing useful" {
		t.Errorf("RawOf() = %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	e := E(KindCompletionService, "call completion service", cause)

	if !errors.Is(e, cause) {
		t.Error("cause must survive errors.Is through Unwrap")
	}
	msg := e.Error()
	if msg != "COMPLETION_SERVICE_ERROR: call completion service: connection refused" {
		t.Errorf("Error() = %q", msg)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain error) = %q, want empty", got)
	}
	if got := RawOf(nil); got != "" {
		t.Errorf("RawOf(nil) = %q, want empty", got)
	}
}
