package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-markup"
	"github.com/alnah/go-markup/internal/assets"
	"github.com/alnah/go-markup/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
	Config      *config.Config // set once per command, read by hints
}

// DefaultEnv returns the production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Config:      config.DefaultConfig(),
	}
}

// assetLoader returns a loader honoring basePath, or the environment's
// loader when basePath is empty.
func (e *Environment) assetLoader(basePath string) (assets.AssetLoader, error) {
	if basePath == "" && e.AssetLoader != nil {
		return e.AssetLoader, nil
	}
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", markup.ErrInvalidAssetPath, err)
	}
	return resolver, nil
}
