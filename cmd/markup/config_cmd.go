package main

import (
	"fmt"

	"github.com/alnah/go-markup/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML: defaults, or the
// validated content of --config.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	env.Config = cfg

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if flags.verbose {
		source := "defaults"
		if flags.config != "" {
			source = flags.config
		}
		fmt.Fprintf(env.Stdout, "# source: %s\n", source)
	}
	_, err = env.Stdout.Write(out)
	return err
}
