package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-markup"
	"github.com/alnah/go-markup/internal/fileutil"
	"github.com/alnah/go-markup/internal/pipeline"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input markup.Input) (*markup.Result, error)
	Marker() string
}

// Compile-time interface implementation check.
var _ CLIConverter = (*markup.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// poolAdapter exposes a markup.ConverterPool as a Pool.
type poolAdapter struct {
	pool *markup.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when given a converter the pool did not hand out.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*markup.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark the jobs this worker takes as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadDocument, err))
	}

	sourceDir := filepath.Dir(f.InputPath)
	outDir := filepath.Dir(f.OutputPath)

	res, err := conv.Convert(ctx, markup.Input{
		Document:  string(content),
		Template:  params.template,
		SourceDir: sourceDir,
	})
	if err != nil {
		return fail(err)
	}

	out := res.HTML
	if params.rebasePaths {
		body, err := pipeline.RebasePaths(res.Body, sourceDir, outDir)
		if err != nil {
			return fail(fmt.Errorf("rebasing paths: %w", err))
		}
		page, err := markup.RenderWithMarker(params.template, body, conv.Marker())
		if err != nil {
			return fail(fmt.Errorf("inserting document: %w", err))
		}
		out = []byte(page)
	}

	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err))
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFile(f.OutputPath, out, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// A lone failure is left to the caller, which reports it with a hint.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	batch := len(results) > 1

	for _, r := range results {
		if r.Err != nil {
			if batch {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && batch {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
