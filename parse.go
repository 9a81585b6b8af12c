package prng

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures the draw job from command line options or from
// a YAML configuration file passed with the -c flag.  Returns any positional
// arguments and a slice of functional options that can be applied to the
// configuration.
func ParseCommandLine() ([]string, []ConfigOption, error) {
	pf := createFlagSet()
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]string, []ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return pf.Args(), options.options, err
	}
	return pf.Args(), options.options, options.err
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("prng", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of prng:\nprng -a <algorithm> -o <op> <options>\nprng --listen :7700 <options>\n")
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.StringP("algorithm", "a", "pcg32", "Generator to draw from: pcg32 or tinymt32")
	pf.StringP("seed", "s", "0", "Seed for the generator.  0 seeds from system entropy.  Accepts 0x prefixed hex.")
	pf.String("stream", "0", "Stream selector for pcg32.  Ignored by tinymt32.")
	pf.StringArray("seed-word", nil, "Seed tinymt32 from an array of 32-bit words.  Repeat the flag for each word.")
	pf.StringP("op", "o", "number", "Operation to draw: number, double, range, double-range, roll, toss, lognormal, poisson")
	pf.IntP("count", "n", 1, "Number of values to draw")
	pf.String("min", "0", "Lower bound for range and double-range, mean for lognormal, lambda for poisson")
	pf.String("max", "0", "Upper bound for range and double-range, standard deviation for lognormal")
	pf.String("host", "", "Draw from a remote prng service at host:port")
	pf.String("listen", "", "Serve generator sessions on this address instead of drawing")
	pf.Int("max-conns", defaultMaxConns, "Maximum concurrent connections when serving.  0 is unlimited.")
	pf.Int("max-sessions", defaultMaxSessions, "Maximum generator sessions held open when serving")
	pf.Duration("session-idle", defaultSessionIdle, "Drop sessions idle for longer than this when the session table is full.  0 keeps them.")
	pf.String("tls-cert", "", "Certificate file used to serve with TLS")
	pf.String("tls-key", "", "Key file used to serve with TLS")
	pf.Bool("insecure", false, "Do not use TLS to secure the connection to a remote host")
	pf.String("log-level", "info", "Log level: debug, trace, info, warn, error, quiet")
	pf.Bool("no-error-reports", false, "Do not send reports when there are unexpected errors in the client")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, option)
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "algorithm":
		return Algorithm(value), nil
	case "seed":
		return Seed(value), nil
	case "stream":
		return Stream(value), nil
	case "seed-word":
		return SeedWord(value), nil
	case "op":
		return Op(value), nil
	case "count":
		return Count(value), nil
	case "min":
		return Min(value), nil
	case "max":
		return Max(value), nil
	case "host":
		return Host(value), nil
	case "listen":
		return Listen(value), nil
	case "max-conns":
		return MaxConns(value), nil
	case "max-sessions":
		return MaxSessions(value), nil
	case "session-idle":
		return SessionIdle(value), nil
	case "tls-cert":
		return TLSCert(value), nil
	case "tls-key":
		return TLSKey(value), nil
	case "insecure":
		return Insecure(), nil
	case "log-level":
		return LogLevel(value), nil
	case "no-error-reports":
		return NoErrorReports(), nil
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		switch v.(type) {
		case string:
			opt, err := handleOption(k, v.(string))
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case int:
			opt, err := handleOption(k, strconv.Itoa(v.(int)))
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case uint64:
			opt, err := handleOption(k, strconv.FormatUint(v.(uint64), 10))
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case float64:
			opt, err := handleOption(k, strconv.FormatFloat(v.(float64), 'f', -1, 64))
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		case bool:
			if !v.(bool) {
				continue
			}
			opt, err := handleOption(k, "")
			if err != nil {
				return options, err
			}
			options = append(options, opt)
		// handles the case of a list of seed words
		case []interface{}:
			alt := listFieldsYAML{}
			if err := yaml.Unmarshal(data, &alt); err != nil {
				return options, fmt.Errorf("Could not unmarshal config value for key: %s", k)
			}
			if k != "seed-word" {
				return options, fmt.Errorf("Unknown option: %s", k)
			}
			for _, val := range alt.SeedWord {
				opt, err := handleOption("seed-word", val)
				if err != nil {
					return options, err
				}
				options = append(options, opt)
			}
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}
	}
	return options, nil
}

type listFieldsYAML struct {
	SeedWord []string `yaml:"seed-word"`
}
