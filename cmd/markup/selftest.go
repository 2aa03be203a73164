package main

import (
	"context"
	"fmt"
	"time"

	diff "github.com/shogoki/gotextdiff"

	"github.com/alnah/go-markup"
	"github.com/alnah/go-markup/internal/assets"
)

// runSelfTest converts a fixture document with the default rules and
// compares the result with the fixture's expected HTML. A mismatch prints a
// unified diff to stderr.
func runSelfTest(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSelfTestFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	name := assets.SelfTestFixtureName
	switch len(positional) {
	case 0:
	case 1:
		name = positional[0]
	default:
		return fmt.Errorf("%w: selftest takes at most one fixture name", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	env.Config = cfg

	loader, err := env.assetLoader(cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	fx, err := loader.LoadFixture(name)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	conv, err := markup.NewConverter()
	if err != nil {
		return err
	}

	start := time.Now()
	got, err := conv.Markup(ctx, fx.Document)
	if err != nil {
		return fmt.Errorf("converting fixture %s: %w", name, err)
	}

	if got != fx.Expected {
		report := diff.Diff(name+".html", []byte(fx.Expected), "produced", []byte(got))
		_, _ = env.Stderr.Write(report)
		return fmt.Errorf("%w: %s: output differs from %s.html", ErrSelfTest, name, name)
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stdout, "Self-test %s passed (%v)\n", name, time.Since(start).Round(time.Microsecond))
	default:
		fmt.Fprintf(env.Stdout, "Self-test %s passed\n", name)
	}
	return nil
}
