package prng

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BTBurke/prng/pkg/entropy"
	"github.com/BTBurke/prng/pkg/rng"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

// Command is one configured draw job.  When Config.Listen is set, Exec serves
// generator sessions instead.
type Command struct {
	Config Config
	Values []float64

	log    zerolog.Logger
	errors ErrorReporter
}

// drawer produces count values for the configured operation
type drawer interface {
	draw(ctx context.Context, op rng.Op, min, max float64, count int) ([]float64, error)
	close(ctx context.Context) error
}

// New validates the options and prepares a draw job
func New(options ...ConfigOption) (*Command, []error) {
	cfg, err := newConfig(options...)
	if len(err) > 0 {
		return nil, err
	}
	if cfg.NoErrorReports {
		SuppressErrorReporting = true
	}
	return &Command{
		Config: cfg,
		log:    NewLogger(nil, cfg.LogLevel),
		errors: errorService{},
	}, nil
}

// Exec draws Config.Count values and writes one per line to w.  A caller
// error such as an inverted range is returned as rng.RangeError and is not
// reported, nor is cancellation.
func (c *Command) Exec(ctx context.Context, w io.Writer) error {
	if c.Config.Listen != "" {
		s, err := NewServer(c.Config, c.log)
		if err != nil {
			return err
		}
		return s.Serve(ctx)
	}

	d, err := c.open(ctx)
	if err != nil {
		c.report(err)
		return err
	}
	defer func() {
		if err := d.close(ctx); err != nil {
			c.log.Warn().Err(err).Msg("closing generator session")
		}
	}()

	c.log.Debug().
		Str("algorithm", string(c.Config.Algorithm)).
		Str("op", string(c.Config.Op)).
		Int("count", c.Config.Count).
		Msg("drawing")

	values, err := d.draw(ctx, c.Config.Op, c.Config.Min, c.Config.Max, c.Config.Count)
	if err != nil {
		c.report(err)
		return err
	}
	c.Values = values
	return writeValues(w, values)
}

// Wait blocks until any unexpected errors have been reported
func (c *Command) Wait() {
	if w, ok := c.errors.(interface{ Wait() }); ok {
		w.Wait()
	}
}

func (c *Command) open(ctx context.Context) (drawer, error) {
	if c.Config.Host != "" {
		return dialRemote(ctx, c.Config)
	}
	g, err := seedGenerator(c.Config.Algorithm, c.Config.Seed, c.Config.Stream, c.Config.SeedWords, c.Config.entropy)
	if err != nil {
		return nil, err
	}
	return local{rng.NewSampler(g)}, nil
}

func (c *Command) report(err error) {
	var (
		rerr rng.RangeError
		berr rng.ErrBounds
	)
	if xerrors.As(err, &rerr) || xerrors.As(err, &berr) || xerrors.Is(err, context.Canceled) {
		return
	}
	c.errors.ReportError(err)
}

// local draws from an in-process generator
type local struct {
	s *rng.Sampler
}

func (l local) draw(ctx context.Context, op rng.Op, min, max float64, count int) ([]float64, error) {
	return drawN(ctx, l.s, op, min, max, count)
}

func (l local) close(ctx context.Context) error { return nil }

func drawN(ctx context.Context, s *rng.Sampler, op rng.Op, min, max float64, count int) ([]float64, error) {
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return values, err
			}
		}
		v, err := s.Draw(op, min, max)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

// seedGenerator builds a generator of the requested algorithm.  A zero seed
// with no seed words draws the seed from p.
func seedGenerator(a rng.Algorithm, seed, stream uint64, words []uint32, p entropy.Provider) (rng.Generator, error) {
	switch a {
	case rng.PCG:
		if len(words) > 0 {
			return nil, fmt.Errorf("seed words are only supported by %s", rng.TinyMT)
		}
		g := rng.NewPCG32()
		if err := g.Seed(seed, stream, p); err != nil {
			return nil, xerrors.Errorf("seeding pcg32 from entropy: %w", err)
		}
		return g, nil
	case rng.TinyMT:
		g := rng.NewTinyMT32()
		if len(words) > 0 {
			g.SetSeedByArray(words)
			return g, nil
		}
		if seed > math.MaxUint32 {
			return nil, fmt.Errorf("seed for %s must fit in 32 bits, got %d", rng.TinyMT, seed)
		}
		if err := g.Seed(uint32(seed), p); err != nil {
			return nil, xerrors.Errorf("seeding tinymt32 from entropy: %w", err)
		}
		return g, nil
	default:
		return nil, rng.ErrUnknownAlgorithm{Msg: fmt.Sprintf("unknown algorithm: %s", a)}
	}
}

func writeValues(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
