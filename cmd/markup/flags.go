package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags holds flags that shape the converter.
type engineFlags struct {
	engine        string
	marker        string
	codeAreaClass string
	images        []string
	code          []string
}

// assetFlags holds template lookup flags.
type assetFlags struct {
	template  string // named template, used when no template file is given
	assetPath string // directory overriding the embedded assets
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	engine      engineFlags
	assets      assetFlags
	workers     int
	rebasePaths bool
}

// selfTestFlags holds flags for the selftest command.
type selfTestFlags struct {
	common    commonFlags
	assetPath string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addEngineFlags adds converter flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "conversion engine: markup, commonmark")
	fs.StringVar(&f.marker, "marker", "", "template insertion marker (default {{content}})")
	fs.StringVar(&f.codeAreaClass, "codearea-class", "", "class attribute of code areas")
	fs.StringSliceVar(&f.images, "images", nil, "image extensions for ![title](path)")
	fs.StringSliceVar(&f.code, "code", nil, "inlined source extensions for ![title](path)")
}

// addAssetFlags adds template lookup flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name when no template file is given")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &convertFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directories (0 = auto)")
	fs.BoolVar(&f.rebasePaths, "rebase-paths", false, "rewrite relative src/href for the output location")

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// parseSelfTestFlags parses selftest command flags.
func parseSelfTestFlags(args []string, usage io.Writer) (*selfTestFlags, []string, error) {
	fs := flag.NewFlagSet("selftest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &selfTestFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with fixtures/<name>.md and .html")

	fs.Usage = func() { printSelfTestUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &commonFlags{}

	addCommonFlags(fs, f)

	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// usageError wraps a flag parsing failure. pflag has already printed the
// usage; --help stays flag.ErrHelp so the caller can exit cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
