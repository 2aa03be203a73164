package assets

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "templates/default.tpl", "custom {{content}}")
	writeAsset(t, dir, "fixtures/selftest.md", "only the document\n")

	resolver, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom template wins", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "custom {{content}}" {
			t.Errorf("LoadTemplate() = %q, want custom template", got)
		}
	})

	t.Run("incomplete custom fixture does not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadFixture(SelfTestFixtureName)
		if !errors.Is(err, ErrIncompleteFixture) {
			t.Errorf("LoadFixture() error = %v, want ErrIncompleteFixture", err)
		}
	})

	t.Run("validation errors do not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplate("a.b")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestAssetResolver_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if _, err := resolver.LoadTemplate(DefaultTemplateName); err != nil {
		t.Errorf("LoadTemplate() error = %v, want embedded fallback", err)
	}
	fx, err := resolver.LoadFixture(SelfTestFixtureName)
	if err != nil {
		t.Fatalf("LoadFixture() error = %v, want embedded fallback", err)
	}
	if fx.Expected == "" {
		t.Error("embedded fixture has no expected output")
	}
}
