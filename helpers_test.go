package prng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/BTBurke/prng/pkg/entropy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

// test helper silences superfluous logging calls from the mock package
type foo struct {
	t *testing.T
}

func (f foo) Logf(format string, args ...interface{}) {
	// makes mock calls to log a no op to prevent a lot of superfluous logging calls
}
func (f foo) Errorf(format string, args ...interface{}) {
	f.t.Errorf(format, args...)
}
func (f foo) FailNow() {
	f.t.FailNow()
}

func silenceT(t *testing.T) mock.TestingT {
	return foo{t}
}

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) ReportError(err error) {
	m.Called(err)
}

type failingEntropy struct{}

func (failingEntropy) Fill(b []byte) error {
	return errors.New("entropy unavailable")
}

// fixedEntropy yields the words little-endian, then fails
func fixedEntropy(words ...uint64) entropy.Provider {
	b := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(b[8*i:], w)
	}
	return entropy.Reader(bytes.NewReader(b))
}

// newTestCommand builds a command with a mock reporter and no log output
func newTestCommand(t *testing.T, options ...ConfigOption) (*Command, *mockReporter) {
	c, errs := New(options...)
	if len(errs) > 0 {
		t.Fatalf("unexpected config errors: %v", errs)
	}
	r := &mockReporter{}
	c.errors = r
	c.log = NewLogger(ioutil.Discard, zerolog.Disabled)
	return c, r
}
