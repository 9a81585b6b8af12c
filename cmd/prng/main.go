package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BTBurke/prng"
	"github.com/spf13/pflag"
)

func main() {

	args, opts, err := prng.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse prng --help for options\n", err)
		}
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Printf("Unexpected arguments: %v\n\nUse prng --help for options\n", args)
		os.Exit(1)
	}

	cmd, errs := prng.New(opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	if err := cmd.Exec(ctx, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		cmd.Wait()
		os.Exit(1)
	}
	cancel()
	os.Exit(0)
}
