package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-markup"
	"github.com/alnah/go-markup/internal/config"
	"github.com/alnah/go-markup/internal/fileutil"
)

// Accepted argument suffixes.
var (
	templateExtensions = []string{".tpl"}
	documentExtensions = []string{".md", ".markdown"}
	outputExtensions   = []string{".html", ".htm"}
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// conversionParams groups values shared by every document of a run.
type conversionParams struct {
	template    string
	rebasePaths bool
}

// convertArgs are the positional arguments of convert.
type convertArgs struct {
	template string // empty: template.path from config, then a named template
	document string
	output   string
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	env.Config = cfg

	paths, err := splitConvertArgs(positional)
	if err != nil {
		return err
	}
	if paths.template == "" {
		paths.template = cfg.Template.Path
	}

	// Preconditions run before anything is read.
	inputIsDir := fileutil.DirExists(paths.document)
	if err := checkPreconditions(paths, inputIsDir); err != nil {
		return err
	}
	if !inputIsDir && !fileutil.FileExists(paths.document) {
		return fmt.Errorf("%w: %s: %w", ErrReadDocument, paths.document, fs.ErrNotExist)
	}

	template, err := resolveTemplate(paths.template, flags.assets.template, cfg, env)
	if err != nil {
		return err
	}
	marker := cfg.Template.Marker
	if marker == "" {
		marker = markup.DefaultMarker
	}
	if _, err := markup.RenderWithMarker(template, "", marker); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	files, err := discoverFiles(paths.document, paths.output, inputIsDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoDocuments, paths.document)
	}

	poolSize := min(markup.ResolvePoolSize(cfg.Workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := markup.NewConverterPool(poolSize, converterOptions(cfg)...)
	defer pool.Close()

	params := &conversionParams{
		template:    template,
		rebasePaths: cfg.Output.RebasePaths,
	}
	results := convertBatch(ctx, &poolAdapter{pool: pool}, files, params)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return results[0].Err
	default:
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
}

// splitConvertArgs accepts TEMPLATE DOCUMENT OUTPUT or DOCUMENT OUTPUT.
func splitConvertArgs(args []string) (convertArgs, error) {
	switch len(args) {
	case 3:
		return convertArgs{template: args[0], document: args[1], output: args[2]}, nil
	case 2:
		return convertArgs{document: args[0], output: args[1]}, nil
	default:
		return convertArgs{}, fmt.Errorf("%w: expected [TEMPLATE] DOCUMENT OUTPUT, got %d argument(s)", ErrUsage, len(args))
	}
}

// checkPreconditions validates argument suffixes. A directory document
// needs a directory output.
func checkPreconditions(paths convertArgs, inputIsDir bool) error {
	if paths.template != "" {
		if err := fileutil.RequireExtension("template", paths.template, templateExtensions...); err != nil {
			return err
		}
	}

	if inputIsDir {
		if fileutil.HasExtension(paths.output, outputExtensions...) {
			return fmt.Errorf("%w: output %q must be a directory when the document is a directory", ErrUsage, paths.output)
		}
		return nil
	}

	if err := fileutil.RequireExtension("document", paths.document, documentExtensions...); err != nil {
		return err
	}
	return fileutil.RequireExtension("output", paths.output, outputExtensions...)
}

// resolveTemplate reads the template file, or loads the named template from
// the asset directory (embedded assets by default).
func resolveTemplate(path, name string, cfg *config.Config, env *Environment) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided template path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadTemplate, err)
		}
		return string(data), nil
	}

	loader, err := env.assetLoader(cfg.Assets.BasePath)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = markup.DefaultTemplate
	}
	tpl, err := loader.LoadTemplate(name)
	if err != nil {
		return "", fmt.Errorf("loading template: %w", err)
	}
	return tpl, nil
}

// loadConfig loads the named config file, or returns defaults when none is
// requested.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			err = &configNotFoundError{name: nameOrPath, err: err}
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.engine.engine != "" {
		cfg.Engine = flags.engine.engine
	}
	if flags.engine.marker != "" {
		cfg.Template.Marker = flags.engine.marker
	}
	if flags.engine.codeAreaClass != "" {
		cfg.Inline.CodeAreaClass = flags.engine.codeAreaClass
	}
	if flags.engine.images != nil {
		cfg.Inline.Images = flags.engine.images
	}
	if flags.engine.code != nil {
		cfg.Inline.Code = flags.engine.code
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.rebasePaths {
		cfg.Output.RebasePaths = true
	}
}

// converterOptions translates the effective config into converter options.
func converterOptions(cfg *config.Config) []markup.Option {
	opts := []markup.Option{
		markup.WithEngine(cfg.EngineName()),
		markup.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Template.Marker != "" {
		opts = append(opts, markup.WithMarker(cfg.Template.Marker))
	}
	if cfg.Inline.CodeAreaClass != "" {
		opts = append(opts, markup.WithCodeAreaClass(cfg.Inline.CodeAreaClass))
	}
	if cfg.Inline.Images != nil {
		opts = append(opts, markup.WithImageExtensions(cfg.Inline.Images...))
	}
	if cfg.Inline.Code != nil {
		opts = append(opts, markup.WithCodeExtensions(cfg.Inline.Code...))
	}
	return opts
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > markup.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, markup.MaxPoolSize)
	}
	return nil
}
