package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/alnah/go-markup/internal/fileutil"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the documents to convert. A file maps to output as
// given. A directory is walked for documents, each written under outputDir
// at the same relative path with an .html suffix. Hidden directories are
// skipped.
func discoverFiles(inputPath, output string, inputIsDir bool) ([]FileToConvert, error) {
	if !inputIsDir {
		return []FileToConvert{{InputPath: inputPath, OutputPath: output}}, nil
	}

	var files []FileToConvert
	err := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.HasExtension(path, documentExtensions...) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, output, inputPath),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a document found
// under baseInputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	relDir := "."
	if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
		relDir = filepath.Dir(rel)
	}
	return filepath.Join(outputDir, relDir, base+".html")
}
