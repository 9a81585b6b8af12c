// Package entropy is the boundary between the generators and the operating
// system's source of unpredictable bytes.  It is only consulted at seed time.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Provider fills buffers with unpredictable, non-reproducible bytes
type Provider interface {
	Fill(b []byte) error
}

// Default is the provider used when callers do not supply their own
var Default Provider = System{}

// System reads from the operating system randomness source
type System struct{}

// Fill populates every byte of b.  A short read is an error.
func (System) Fill(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}

type reader struct {
	r io.Reader
}

func (p reader) Fill(b []byte) error {
	_, err := io.ReadFull(p.r, b)
	return err
}

// Reader adapts any io.Reader to a Provider.  Useful for replaying a fixed byte
// stream in tests.
func Reader(r io.Reader) Provider {
	return reader{r}
}

// Uint64s draws n 64-bit blocks from p, decoded little-endian
func Uint64s(p Provider, n int) ([]uint64, error) {
	if n <= 0 {
		return []uint64{}, nil
	}
	buf := make([]byte, 8*n)
	if err := p.Fill(buf); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return out, nil
}
