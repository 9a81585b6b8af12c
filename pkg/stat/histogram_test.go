package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram(t *testing.T) {
	h := NewHistogram(3, 0)
	for _, v := range []int{0, 1, 1, 2, 3, 3, 3, -1, 4} {
		h.Record(v)
	}
	assert.Equal(t, 4, h.Buckets())
	assert.Equal(t, 7, h.Total())
	assert.Equal(t, 2, h.Outside())
	assert.Equal(t, 2, h.Count(1))
	assert.Equal(t, 0, h.Count(9))
	assert.InDeltaSlice(t, []float64{1.0 / 7, 2.0 / 7, 1.0 / 7, 3.0 / 7}, h.Frequencies(), 1e-12)

	// expected 1.75 per bucket
	assert.InDelta(t, (0.75*0.75+0.25*0.25+0.75*0.75+1.25*1.25)/1.75, h.ChiSquare(), 1e-12)
	assert.InDelta(t, 1.25/1.75, h.Bias(), 1e-12)
}

func TestHistogramEmpty(t *testing.T) {
	h := NewHistogram(0, 5)
	assert.Equal(t, 0.0, h.ChiSquare())
	assert.Equal(t, 0.0, h.Bias())
	assert.Equal(t, make([]float64, 6), h.Frequencies())
}
