package guard_test

import (
	"errors"
	"testing"

	"fastereats/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("ClaimJobCommand must be created via NewClaimJobCommand")

	tests := []struct {
		name      string
		guard     guard.ConstructorGuard
		passedErr error
		wantErr   error
	}{
		{
			name:      "constructed guard ignores custom error",
			guard:     guard.NewConstructorGuard(),
			passedErr: errNotConstructed,
		},
		{
			name:  "constructed guard ignores nil error",
			guard: guard.NewConstructorGuard(),
		},
		{
			name:      "zero value returns custom error",
			guard:     guard.ConstructorGuard{},
			passedErr: errNotConstructed,
			wantErr:   errNotConstructed,
		},
		{
			name:    "zero value falls back to default error",
			guard:   guard.ConstructorGuard{},
			wantErr: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.passedErr)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type claimCommand struct {
		courierName string
		guard       guard.ConstructorGuard
	}

	errNotConstructed := errors.New("claim command is not constructed")
	newClaimCommand := func(name string) (claimCommand, error) {
		if name == "" {
			return claimCommand{}, errors.New("courier name is required")
		}
		return claimCommand{courierName: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		cmd, err := newClaimCommand("Ravi")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("zero value", func(t *testing.T) {
		var cmd claimCommand

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("copy keeps state", func(t *testing.T) {
		cmd, err := newClaimCommand("Ravi")
		require.NoError(t, err)

		copied := cmd
		require.NoError(t, copied.guard.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_DefaultErrorMessage(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
