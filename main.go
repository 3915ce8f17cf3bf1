package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/jcorbin/goclac/internal/clac"
	"github.com/jcorbin/goclac/internal/logio"
)

func main() {
	os.Exit(run())
}

func run() int {
	var logger logio.Logger
	logger.SetOutput(os.Stderr)
	defer logger.Close()

	cfg := defaultConfig()
	var configPath string
	flag.StringVar(&configPath, "config", "", "read settings from a YAML file; flags override it")
	flag.BoolVar(&cfg.Trace, "trace", cfg.Trace, "enable trace logging")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "specify a time limit")
	flag.BoolVar(&cfg.Prelude, "prelude", cfg.Prelude, "define common words like dup and abs before any input")
	flag.Var(&cfg.OnError, "on-error", `what to do after a line fails: "line" or "session"`)
	flag.StringVar(&cfg.History, "history", cfg.History, "load and save interactive history in a file")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "interactive prompt")
	flag.BoolVar(&cfg.Banner, "banner", cfg.Banner, "print a banner when interactive")
	flag.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump the final interpreter state to stderr")
	flag.Parse()

	if configPath != "" {
		set := make(map[string]string)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		loaded, err := LoadConfig(configPath, defaultConfig())
		if err != nil {
			logger.Errorf("%v", err)
			return logger.ExitCode()
		}
		cfg = loaded
		for name, value := range set {
			logger.ErrorIf(flag.Set(name, value))
		}
	}

	opts := []SessionOption{
		WithOutput(os.Stdout),
		WithErrorf(logger.Errorf),
		WithErrorPolicy(cfg.OnError),
		WithTrace(cfg.Trace),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(logger.Leveledf("TRACE")))
	}
	if cfg.Prelude {
		opts = append(opts, WithPrelude())
	}

	stdin := NamedReader("<stdin>", os.Stdin)
	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			if arg == "-" {
				opts = append(opts, WithInput(stdin))
				continue
			}
			f, err := os.Open(arg)
			if err != nil {
				logger.Errorf("%v", err)
				return logger.ExitCode()
			}
			opts = append(opts, WithInput(f))
		}
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts,
			WithLineReader(newLineEditor(cfg.Prompt, cfg.History)),
			WithBanner(cfg.Banner))
	} else {
		opts = append(opts, WithInput(stdin))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	session := New(opts...)
	done := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return watchSignals(done, cancel, &logger)
	})
	eg.Go(func() error {
		defer close(done)
		return session.Run(ctx)
	})
	if err := eg.Wait(); err != nil {
		logger.Errorf("%v", err)
	}

	if cfg.Dump {
		logger.ErrorIf(clac.Dump(os.Stderr, session.State()))
	}
	logger.ErrorIf(session.Close())
	return logger.ExitCode()
}

// watchSignals interrupts the session on the first SIGINT or SIGTERM, which
// takes effect once any blocking read returns; a second signal exits at once.
func watchSignals(done <-chan struct{}, interrupt func(), logger *logio.Logger) error {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	for n := 0; ; {
		select {
		case <-done:
			return nil
		case sig := <-sigch:
			if n++; n > 1 {
				logger.Close()
				os.Exit(130)
			}
			logger.Printf("WARN", "%v: interrupting, repeat to exit", sig)
			interrupt()
		}
	}
}
