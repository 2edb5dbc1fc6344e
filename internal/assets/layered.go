package assets

// Layered asks each loader in turn and returns the first asset found.
// Only a not-found error moves on to the next layer; a bad name, a read
// failure or an incomplete template set stops the lookup.
type Layered []Loader

// NewResolver returns the embedded loader, or a custom directory layered
// over it when dir is set.
func NewResolver(dir string) (Loader, error) {
	if dir == "" {
		return NewEmbeddedLoader(), nil
	}
	custom, err := NewDirLoader(dir)
	if err != nil {
		return nil, err
	}
	return Layered{custom, NewEmbeddedLoader()}, nil
}

// LoadStyle implements Loader.
func (l Layered) LoadStyle(name string) (string, error) {
	return firstFound(l, func(ld Loader) (string, error) { return ld.LoadStyle(name) })
}

// LoadTemplateSet implements Loader.
func (l Layered) LoadTemplateSet(name string) (*TemplateSet, error) {
	return firstFound(l, func(ld Loader) (*TemplateSet, error) { return ld.LoadTemplateSet(name) })
}

func firstFound[T any](layers []Loader, load func(Loader) (T, error)) (T, error) {
	var zero T
	var err error
	for _, ld := range layers {
		var v T
		v, err = load(ld)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return zero, err
		}
	}
	return zero, err
}

var _ Loader = Layered(nil)
