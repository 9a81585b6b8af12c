// Command calibrate measures how far range(0, 3) strays from uniform for each
// generator by Monte Carlo, and writes the observed bias to <algorithm>.txt.
package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"sync"
	"time"

	"github.com/BTBurke/prng/pkg/rng"
	"github.com/BTBurke/prng/pkg/stat"
)

const (
	NumProcs int               = 4
	Loops    int               = 100
	Run      int               = 100000
	Lo       uint32            = 0
	Hi       uint32            = 3
	Alpha    stat.Significance = 0.01
)

var wg sync.WaitGroup

type results struct {
	name     string
	mu       sync.Mutex
	bias     []float64
	rejected int
}

func (r *results) record(bias float64, uniform bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bias = append(r.bias, bias)
	if !uniform {
		r.rejected++
	}
}

func newResults(name string) *results {
	return &results{name: name}
}

func main() {
	start := time.Now()
	for _, a := range []rng.Algorithm{rng.PCG, rng.TinyMT} {
		res := newResults(string(a))
		for p := 0; p < NumProcs; p++ {
			wg.Add(1)
			log.Printf("start algorithm=%s worker=%d\n", a, p)
			go measure(res, a, Loops/NumProcs)
		}
		wg.Wait()

		mean := stat.Mean(res.bias)
		variance := stat.Variance(res.bias, mean)
		fmt.Printf("Result: %s bias=%1.6f var=%1.3e rejected=%d/%d\n", a, mean, variance, res.rejected, len(res.bias))

		var b bytes.Buffer
		for _, v := range res.bias {
			b.WriteString(fmt.Sprintf("%f\n", v))
		}
		if err := ioutil.WriteFile(fmt.Sprintf("%s.txt", res.name), b.Bytes(), 0644); err != nil {
			log.Fatalf("unexpected error writing results: %v", err)
		}
	}
	fmt.Printf("Time Elapsed: %v\n", time.Since(start))
}

// measure owns one generator for its whole run
func measure(results *results, a rng.Algorithm, loops int) {
	defer wg.Done()
	g, err := rng.New(a)
	if err != nil {
		log.Fatalf("unexpected error constructing generator: %v", err)
	}
	if err := g.SeedFrom(nil); err != nil {
		log.Fatalf("unexpected error seeding generator: %v", err)
	}
	s := rng.NewSampler(g)

	for i := 0; i < loops; i++ {
		h := stat.NewHistogram(int(Lo), int(Hi))
		for j := 0; j < Run; j++ {
			v, err := s.Range(Lo, Hi)
			if err != nil {
				log.Fatalf("unexpected error drawing: %v", err)
			}
			h.Record(int(v))
		}
		results.record(h.Bias(), stat.Uniform(h, Alpha))
	}
}
