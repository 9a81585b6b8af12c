package prng

import (
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/BTBurke/prng/pkg/entropy"
	"github.com/BTBurke/prng/pkg/rng"
	"github.com/rs/zerolog"
)

const (
	defaultCount    = 1
	defaultMaxConns = 64

	// defaultMaxSessions bounds the generators one server holds open
	defaultMaxSessions = 1024
	defaultSessionIdle = 10 * time.Minute

	// MaxDrawCount caps the values returned by one command or one remote draw
	MaxDrawCount = 1 << 16
)

// Config describes one draw job, or the draw service when Listen is set
type Config struct {
	Algorithm rng.Algorithm
	// Seed of 0 means seed from entropy.  For tinymt32 it must fit in 32 bits.
	Seed      uint64
	Stream    uint64
	SeedWords []uint32
	Op        rng.Op
	Count     int
	Min       float64
	Max       float64

	Host     string
	Listen   string
	MaxConns int
	TLSCert  string
	TLSKey   string

	// MaxSessions caps open sessions.  Sessions idle for longer than
	// SessionIdle are dropped when the table is full; 0 never drops them.
	MaxSessions int
	SessionIdle time.Duration

	LogLevel       zerolog.Level
	NoErrorReports bool

	useTLS  bool
	entropy entropy.Provider
}

type ConfigOption func(c *Config) error

func newConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Algorithm:   rng.PCG,
		Op:          rng.OpNumber,
		Count:       defaultCount,
		MaxConns:    defaultMaxConns,
		MaxSessions: defaultMaxSessions,
		SessionIdle: defaultSessionIdle,
		LogLevel:    zerolog.InfoLevel,
		useTLS:      true,
		entropy:     entropy.Default,
	}

	var errors []error
	for _, option := range options {
		err := option(&c)
		if err != nil {
			errors = append(errors, err)
		}
	}
	if len(c.SeedWords) > 0 && c.Algorithm != rng.TinyMT {
		errors = append(errors, fmt.Errorf("seed-word is only supported by %s", rng.TinyMT))
	}
	if c.Algorithm == rng.TinyMT && c.Seed > math.MaxUint32 {
		errors = append(errors, fmt.Errorf("seed for %s must fit in 32 bits, got %d", rng.TinyMT, c.Seed))
	}
	if c.Host != "" && c.Listen != "" {
		errors = append(errors, fmt.Errorf("host and listen are mutually exclusive"))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errors = append(errors, fmt.Errorf("tls-cert and tls-key must be given together"))
	}

	if len(errors) > 0 {
		return Config{}, errors
	}
	return c, nil
}

func Algorithm(name string) ConfigOption {
	return func(c *Config) error {
		a, err := rng.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		c.Algorithm = a
		return nil
	}
}

// Seed accepts decimal, or hex and octal with a 0x or 0 prefix
func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseUint(seed, 0, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to an unsigned 64-bit integer: %s", seed)
		}
		c.Seed = s
		return nil
	}
}

func Stream(stream string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseUint(stream, 0, 64)
		if err != nil {
			return fmt.Errorf("could not convert stream to an unsigned 64-bit integer: %s", stream)
		}
		c.Stream = s
		return nil
	}
}

// SeedWord appends one word to the tinymt32 seed array.  Any seed words
// override Seed.
func SeedWord(word string) ConfigOption {
	return func(c *Config) error {
		w, err := strconv.ParseUint(word, 0, 32)
		if err != nil {
			return fmt.Errorf("could not convert seed-word to an unsigned 32-bit integer: %s", word)
		}
		c.SeedWords = append(c.SeedWords, uint32(w))
		return nil
	}
}

func Op(name string) ConfigOption {
	return func(c *Config) error {
		op, err := rng.ParseOp(name)
		if err != nil {
			return err
		}
		c.Op = op
		return nil
	}
}

func Count(count string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(count)
		if err != nil {
			return fmt.Errorf("could not convert count to integer")
		}
		if n < 1 || n > MaxDrawCount {
			return fmt.Errorf("count must be between 1 and %d", MaxDrawCount)
		}
		c.Count = n
		return nil
	}
}

func Min(min string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.ParseFloat(min, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("could not convert min to a finite number")
		}
		c.Min = v
		return nil
	}
}

func Max(max string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.ParseFloat(max, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("could not convert max to a finite number")
		}
		c.Max = v
		return nil
	}
}

// Host draws from a remote draw service at host:port instead of a local generator
func Host(hostport string) ConfigOption {
	return func(c *Config) error {
		if _, _, err := net.SplitHostPort(hostport); err != nil {
			return fmt.Errorf("host should be specified as host:port")
		}
		c.Host = hostport
		return nil
	}
}

// Listen serves the draw service on addr
func Listen(addr string) ConfigOption {
	return func(c *Config) error {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("listen address should be specified as host:port or :port")
		}
		c.Listen = addr
		return nil
	}
}

func MaxConns(n string) ConfigOption {
	return func(c *Config) error {
		conns, err := strconv.Atoi(n)
		if err != nil || conns < 0 {
			return fmt.Errorf("max-conns must be a non-negative integer")
		}
		c.MaxConns = conns
		return nil
	}
}

func MaxSessions(n string) ConfigOption {
	return func(c *Config) error {
		sessions, err := strconv.Atoi(n)
		if err != nil || sessions < 1 {
			return fmt.Errorf("max-sessions must be a positive integer")
		}
		c.MaxSessions = sessions
		return nil
	}
}

// SessionIdle accepts a duration such as 10m.  0 keeps idle sessions until
// they are closed.
func SessionIdle(d string) ConfigOption {
	return func(c *Config) error {
		idle, err := time.ParseDuration(d)
		if err != nil || idle < 0 {
			return fmt.Errorf("session-idle must be a non-negative duration such as 10m")
		}
		c.SessionIdle = idle
		return nil
	}
}

func TLSCert(path string) ConfigOption {
	return func(c *Config) error {
		c.TLSCert = path
		return nil
	}
}

func TLSKey(path string) ConfigOption {
	return func(c *Config) error {
		c.TLSKey = path
		return nil
	}
}

// Insecure does not use TLS when connecting to a remote draw service
func Insecure() ConfigOption {
	return func(c *Config) error {
		c.useTLS = false
		return nil
	}
}

func LogLevel(level string) ConfigOption {
	return func(c *Config) error {
		l, err := parseLevel(level)
		if err != nil {
			return err
		}
		c.LogLevel = l
		return nil
	}
}

func NoErrorReports() ConfigOption {
	return func(c *Config) error {
		c.NoErrorReports = true
		return nil
	}
}

// WithEntropy replaces the entropy source used for unseeded generators
func WithEntropy(p entropy.Provider) ConfigOption {
	return func(c *Config) error {
		if p == nil {
			return fmt.Errorf("entropy provider must not be nil")
		}
		c.entropy = p
		return nil
	}
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "verbose", "verb", "trace":
		return zerolog.TraceLevel, nil
	case "notice", "info":
		return zerolog.InfoLevel, nil
	case "warning", "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "quiet", "silent":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log-level: %s", level)
	}
}
