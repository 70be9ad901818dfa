package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- IsRecoverable ----------

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain not logged in", ErrNotLoggedIn, true},
		{"wrapped storage failure", fmt.Errorf("save tasks: %w", ErrStorageFailure), true},
		{"wrapped twice", fmt.Errorf("edit: %w", fmt.Errorf("locate: %w", ErrNotFound)), true},
		{"foreign error", errors.New("stdin closed"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRecoverable(tc.err))
		})
	}
}

func TestErrTaskChanged_IsNotFound(t *testing.T) {
	err := fmt.Errorf("task #2: %w", ErrTaskChanged)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsRecoverable(err))
}
