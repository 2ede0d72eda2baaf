package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
)

func TestNew(t *testing.T) {
	assert.Equal(t, bitvec.BitVector{0, 0, 0, 0}, bitvec.New(4))
	assert.Equal(t, bitvec.BitVector{1, 1, 1, 1}, bitvec.Ones(4))
	assert.Len(t, bitvec.New(0), 0)
	assert.Equal(t, 8, bitvec.New(8).Len())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       bitvec.BitVector
		wantErr bool
	}{
		{"Valid", bitvec.BitVector{1, 0, 1, 1}, false},
		{"Empty", bitvec.BitVector{}, false},
		{"Invalid", bitvec.BitVector{1, 2}, true},
		{"InvalidLarge", bitvec.BitVector{0, 0, 255}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantErr {
				var ib *bitvec.ErrInvalidBit
				require.ErrorAs(t, err, &ib)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("Fields", func(t *testing.T) {
		err := bitvec.BitVector{0, 3, 1}.Validate()
		var ib *bitvec.ErrInvalidBit
		require.ErrorAs(t, err, &ib)
		assert.Equal(t, 1, ib.Index)
		assert.Equal(t, bitvec.Bit(3), ib.Value)
	})
}

func TestClone(t *testing.T) {
	v := bitvec.BitVector{1, 0, 1}
	c := v.Clone()

	require.Equal(t, v, c)

	c[0] = 0
	assert.Equal(t, bitvec.Bit(1), v[0], "clone must not alias the original")
}
