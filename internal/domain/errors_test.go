package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeAndKindOf(t *testing.T) {
	tests := []struct {
		err  error
		code string
		kind Kind
	}{
		{ErrEventClosed, "event_closed", KindValidation},
		{fmt.Errorf("register: %w", ErrNotAttended), "not_attended", KindValidation},
		{ErrNotAdmin, "not_admin", KindForbidden},
		{errors.New("boom"), "", ""},
		{nil, "", ""},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.code {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.code)
		}
		if got := KindOf(tt.err); got != tt.kind {
			t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.kind)
		}
	}
}
