package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed styles templates
var builtin embed.FS

// FSLoader reads assets from a file system laid out as
//
//	styles/{name}.css
//	templates/{name}/presentation.html
//	templates/{name}/slide.html
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewEmbeddedLoader returns a loader over the assets compiled into the binary.
func NewEmbeddedLoader() *FSLoader {
	return NewFSLoader(builtin)
}

// NewDirLoader returns a loader confined to dir. Reads go through os.Root,
// so neither ".." nor symlinks can reach files outside dir.
func NewDirLoader(dir string) (*FSLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, dir)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return NewFSLoader(root.FS()), nil
}

// LoadStyle implements Loader.
func (l *FSLoader) LoadStyle(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(l.fsys, path.Join("styles", name+".css"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: style %q: %v", ErrAssetRead, name, err)
	}
	return string(data), nil
}

// LoadTemplateSet implements Loader. A set with only one of its two
// templates is incomplete, not missing.
func (l *FSLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	dir := path.Join("templates", name)
	pres, presErr := fs.ReadFile(l.fsys, path.Join(dir, presentationFile))
	slide, slideErr := fs.ReadFile(l.fsys, path.Join(dir, slideFile))

	presMissing := errors.Is(presErr, fs.ErrNotExist)
	slideMissing := errors.Is(slideErr, fs.ErrNotExist)
	switch {
	case presMissing && slideMissing:
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	case presErr != nil && !presMissing:
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrAssetRead, name, presentationFile, presErr)
	case slideErr != nil && !slideMissing:
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrAssetRead, name, slideFile, slideErr)
	case presMissing:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, presentationFile)
	case slideMissing:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, slideFile)
	}

	return &TemplateSet{Name: name, Presentation: string(pres), Slide: string(slide)}, nil
}

var _ Loader = (*FSLoader)(nil)
