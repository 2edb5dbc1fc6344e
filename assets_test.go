package fastdeck

// Notes:
// - Exercises the public AssetLoader against embedded and on-disk assets
// - wrapError is tested directly because its Error/Unwrap split is what
//   keeps internal messages while matching public sentinels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAssetFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func TestNewTemplateSet(t *testing.T) {
	t.Parallel()

	ts := NewTemplateSet("deck", "<html>{{.Slides}}</html>", "<html>one</html>")
	if ts.Name != "deck" {
		t.Errorf("Name = %q, want %q", ts.Name, "deck")
	}
	if ts.Presentation != "<html>{{.Slides}}</html>" {
		t.Errorf("Presentation = %q", ts.Presentation)
	}
	if ts.Slide != "<html>one</html>" {
		t.Errorf("Slide = %q", ts.Slide)
	}
}

func TestNewAssetLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Errorf("LoadStyle(%q) error = %v", DefaultStyle, err)
	}
	if css == "" {
		t.Error("LoadStyle returned empty CSS for default style")
	}

	ts, err := loader.LoadTemplateSet(DefaultTemplateSet)
	if err != nil {
		t.Fatalf("LoadTemplateSet(%q) error = %v", DefaultTemplateSet, err)
	}
	if !strings.Contains(ts.Presentation, "Reveal.initialize") {
		t.Error("TemplateSet.Presentation does not initialize reveal.js")
	}
	if !strings.Contains(ts.Slide, "Reveal.initialize") {
		t.Error("TemplateSet.Slide does not initialize reveal.js")
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader("/nonexistent/path/to/assets")
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewAssetLoader_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}
	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil || css == "" {
		t.Errorf("LoadStyle() = %q, %v, want embedded CSS", css, err)
	}
}

func TestNewAssetLoader_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAssetFile(t, dir, "styles/default.css", "body { color: red; }")
	writeAssetFile(t, dir, "templates/default/presentation.html", "<html>deck</html>")
	writeAssetFile(t, dir, "templates/default/slide.html", "<html>slide</html>")

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "body { color: red; }" {
		t.Errorf("LoadStyle() = %q, want custom CSS", css)
	}

	ts, err := loader.LoadTemplateSet(DefaultTemplateSet)
	if err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}
	if ts.Presentation != "<html>deck</html>" || ts.Slide != "<html>slide</html>" {
		t.Errorf("LoadTemplateSet() = %+v, want custom templates", ts)
	}
}

func TestAssetLoader_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAssetFile(t, dir, "templates/half/presentation.html", "<html>deck</html>")

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func() error
		wantErr error
	}{
		{
			name: "missing style",
			load: func() error {
				_, err := loader.LoadStyle("nonexistent-style")
				return err
			},
			wantErr: ErrStyleNotFound,
		},
		{
			name: "missing template set",
			load: func() error {
				_, err := loader.LoadTemplateSet("nonexistent-templates")
				return err
			},
			wantErr: ErrTemplateSetNotFound,
		},
		{
			name: "template set without slide.html",
			load: func() error {
				_, err := loader.LoadTemplateSet("half")
				return err
			},
			wantErr: ErrIncompleteTemplateSet,
		},
		{
			name: "template set name with a dot",
			load: func() error {
				_, err := loader.LoadTemplateSet("../default")
				return err
			},
			wantErr: ErrTemplateSetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.load(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAssetError_KeepsMessage(t *testing.T) {
	t.Parallel()

	_, err := defaultAssetLoader().LoadStyle("custom-style")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "custom-style") {
		t.Errorf("error message %q should contain style name", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	original := errors.New("original error message")
	sentinel := errors.New("sentinel")
	wrapped := wrapError(sentinel, original)

	if wrapped.Error() != original.Error() {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), original.Error())
	}
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is(wrapped, sentinel) should be true")
	}
	if errors.Is(wrapped, original) {
		t.Error("errors.Is(wrapped, original) should be false")
	}
	if convertAssetError(nil, ErrStyleNotFound) != nil {
		t.Error("convertAssetError(nil) should be nil")
	}
}
