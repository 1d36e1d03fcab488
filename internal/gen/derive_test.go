package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDerive(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Derive
	}{
		{"empty", "", 0},
		{"single", "Clone", DeriveClone},
		{"comma separated", "Clone,Equal", DeriveClone | DeriveEqual},
		{"space separated", " Equal  Debug ", DeriveEqual | DeriveDebug},
		{"mixed separators", "clone, equal,\tdebug", DeriveClone | DeriveEqual | DeriveDebug},
		{"string alias", "String", DeriveDebug},
		{"duplicates", "Clone,clone", DeriveClone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDerive(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestParseDeriveUnknown(t *testing.T) {
	_, err := ParseDerive("Clone,Hash")
	require.ErrorIs(t, err, ErrUnknownDerive)
	assert.Contains(t, err.Error(), `"Hash"`)

	_, err = ParseDeriveList([]string{"Equal", "Ord"})
	assert.ErrorIs(t, err, ErrUnknownDerive)
}

func TestParseDeriveList(t *testing.T) {
	d, err := ParseDeriveList([]string{" Clone", "Debug "})
	require.NoError(t, err)
	assert.Equal(t, DeriveClone|DeriveDebug, d)

	d, err = ParseDeriveList(nil)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDeriveString(t *testing.T) {
	assert.Equal(t, "", Derive(0).String())
	assert.Equal(t, "Clone,Debug", (DeriveDebug | DeriveClone).String())
	assert.Equal(t, "Clone,Equal,Debug", (DeriveClone | DeriveEqual | DeriveDebug).String())
}

func TestDeriveHas(t *testing.T) {
	d := DeriveClone | DeriveDebug
	assert.True(t, d.Has(DeriveClone))
	assert.False(t, d.Has(DeriveEqual))
	assert.False(t, d.Has(DeriveClone|DeriveEqual))
	assert.True(t, d.Has(0))
}
