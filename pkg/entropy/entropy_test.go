package entropy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failing struct{}

func (failing) Fill(b []byte) error {
	return errors.New("no entropy")
}

func TestSystemFill(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(t, System{}.Fill(a))
	require.NoError(t, System{}.Fill(b))
	assert.NotEqual(t, a, b, "two independent reads should not match")
}

func TestUint64s(t *testing.T) {
	tt := []struct {
		Name   string
		In     []byte
		N      int
		Expect []uint64
		Error  bool
	}{
		{Name: "little endian", In: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0xff, 0, 0, 0, 0, 0, 0, 0x80}, N: 2, Expect: []uint64{1, 0x80000000000000ff}},
		{Name: "zero blocks", In: []byte{}, N: 0, Expect: []uint64{}},
		{Name: "short read", In: []byte{1, 2, 3}, N: 1, Error: true},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			out, err := Uint64s(Reader(bytes.NewReader(tc.In)), tc.N)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expect, out)
		})
	}
}

func TestUint64sPropagatesFailure(t *testing.T) {
	_, err := Uint64s(failing{}, 4)
	assert.EqualError(t, err, "no entropy")
}
