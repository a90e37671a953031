package kernel_test

import (
	"testing"

	"fastereats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerIDText = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	require.NoError(t, a.Validate())
	assert.False(t, a.IsEqual(b))
	assert.Equal(t, uuid.Version(4), a.Bytes().Version())
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: customerIDText},
		{name: "braced", input: "{" + customerIDText + "}"},
		{name: "urn", input: "urn:uuid:" + customerIDText},
		{name: "unhyphenated", input: "550e8400e29b41d4a716446655440000"},
		{name: "empty", input: "", wantErr: true},
		{name: "truncated", input: "550e8400-e29b-41d4-a716", wantErr: true},
		{name: "order number", input: "ORD_20261019_001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid UUID format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, customerIDText, id.String())
		})
	}
}

func TestUUIDFromString_NilParsesButIsNotSet(t *testing.T) {
	id, err := kernel.UUIDFromString(uuid.Nil.String())

	require.NoError(t, err)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trips through a uuid column", func(t *testing.T) {
		original := kernel.NewUUID()
		column := original.Bytes()

		restored, err := kernel.UUIDFromBytes(column[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})
		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("rejects the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_ZeroValueIsInvalid(t *testing.T) {
	var id kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	assert.False(t, id.IsEqual(kernel.NewUUID()))
}

func TestUUID_BytesReturnsCopy(t *testing.T) {
	original := kernel.NewUUID()
	text := original.String()

	b := original.Bytes()
	b[0] ^= 0xFF

	assert.Equal(t, text, original.String())
}
