package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-markup/internal/yamlutil"
)

type testConfig struct {
	Engine  string   `yaml:"engine"`
	Workers int      `yaml:"workers"`
	Images  []string `yaml:"images"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []byte
		dest      any
		wantErr   error
		wantInErr string
		check     func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("engine: markup\nworkers: 4\nimages: [png, webp]"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Engine != "markup" || cfg.Workers != 4 {
					t.Errorf("got %+v", cfg)
				}
				if len(cfg.Images) != 2 || cfg.Images[1] != "webp" {
					t.Errorf("Images = %v, want [png webp]", cfg.Images)
				}
			},
		},
		{
			name:      "unknown field rejected",
			data:      []byte("engine: markup\nextra: 1"),
			dest:      &testConfig{},
			wantInErr: "yamlutil:",
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("engine: markup"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:      "invalid syntax",
			data:      []byte("images: [unclosed"),
			dest:      &testConfig{},
			wantInErr: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantInErr != "":
				if err == nil || !strings.HasPrefix(err.Error(), tt.wantInErr) {
					t.Fatalf("error = %v, want prefix %q", err, tt.wantInErr)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.check != nil:
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes Go structs to YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(&testConfig{Engine: "commonmark", Workers: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := string(data)
	for _, want := range []string{"engine: commonmark", "workers: 2"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got: %s", want, s)
		}
	}

	var back testConfig
	if err := yamlutil.UnmarshalStrict(data, &back); err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestDescribe - Renders parser errors with source context
// ---------------------------------------------------------------------------

func TestDescribe(t *testing.T) {
	t.Parallel()

	if got := yamlutil.Describe(nil); got != "" {
		t.Errorf("Describe(nil) = %q, want empty", got)
	}

	err := yamlutil.UnmarshalStrict([]byte("engine: markup\nbogus: true\n"), &testConfig{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := yamlutil.Describe(err); !strings.Contains(got, "bogus") {
		t.Errorf("Describe() = %q, want it to quote the offending line", got)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so it does not run in parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 100

	t.Run("input at limit succeeds", func(t *testing.T) {
		data := make([]byte, 100)
		copy(data, "engine: x")
		for i := len("engine: x"); i < len(data); i++ {
			data[i] = ' '
		}
		if err := yamlutil.UnmarshalStrict(data, &testConfig{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("input exceeding limit fails", func(t *testing.T) {
		data := make([]byte, 101)
		err := yamlutil.UnmarshalStrict(data, &testConfig{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
		if err != nil && !strings.Contains(err.Error(), "101 bytes") {
			t.Errorf("error should contain actual size, got: %v", err)
		}
	})
}
