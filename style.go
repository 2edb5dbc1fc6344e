package fastdeck

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Declaration is one CSS property and its scalar value.
type Declaration struct {
	Property string
	Value    any // string, integer or float
}

// Style is the class tokens and inline CSS declarations applied to one
// element. The zero value renders no attributes.
//
// Styles are values: methods that change a Style return a modified copy.
type Style struct {
	Classes      []string
	Declarations []Declaration
}

// NewStyle builds a Style from an option mapping. The reserved key "class"
// holds a string or a list of strings; every other key is a CSS property
// whose underscores become hyphens (font_size -> font-size). Properties are
// emitted in sorted key order.
//
// Returns ErrInvalidClassValue or ErrInvalidStyleValue on bad values.
func NewStyle(options map[string]any) (Style, error) {
	var s Style
	if len(options) == 0 {
		return s, nil
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := options[k]
		if k == "class" {
			classes, err := classTokens(v)
			if err != nil {
				return Style{}, err
			}
			s.Classes = classes
			continue
		}
		if !isScalar(v) {
			return Style{}, fmt.Errorf("%w: %s=%v (%T)", ErrInvalidStyleValue, k, v, v)
		}
		s.Declarations = append(s.Declarations, Declaration{Property: cssProperty(k), Value: v})
	}
	return s, nil
}

// MustStyle is like NewStyle but panics on error.
// Intended for package-level literals and tests.
func MustStyle(options map[string]any) Style {
	s, err := NewStyle(options)
	if err != nil {
		panic(err)
	}
	return s
}

// Class returns a Style holding only the given class tokens.
func Class(tokens ...string) Style {
	return Style{Classes: append([]string(nil), tokens...)}
}

// WithClass returns a copy of s with tokens appended after the existing
// classes. Duplicates are kept.
func (s Style) WithClass(tokens ...string) Style {
	c := s.clone()
	c.Classes = append(c.Classes, tokens...)
	return c
}

// Set returns a copy of s with the declaration added, or replaced when the
// property already exists.
func (s Style) Set(property string, value any) Style {
	c := s.clone()
	property = cssProperty(property)
	for i, d := range c.Declarations {
		if d.Property == property {
			c.Declarations[i].Value = value
			return c
		}
	}
	c.Declarations = append(c.Declarations, Declaration{Property: property, Value: value})
	return c
}

// IsZero reports whether s has neither classes nor declarations.
func (s Style) IsZero() bool {
	return len(s.Classes) == 0 && len(s.Declarations) == 0
}

// Validate checks that every declaration value is a string or a number.
func (s Style) Validate() error {
	for _, d := range s.Declarations {
		if !isScalar(d.Value) {
			return fmt.Errorf("%w: %s=%v (%T)", ErrInvalidStyleValue, d.Property, d.Value, d.Value)
		}
	}
	return nil
}

// Attrs formats s as an HTML attribute string:
//
//	style='color: red;font-size: 12;' class='a b'
//
// The style segment is always present for a non-zero Style; the class
// segment only when class tokens exist. A zero Style formats as "".
func (s Style) Attrs() (string, error) {
	if s.IsZero() {
		return "", nil
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("style='")
	for _, d := range s.Declarations {
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(formatScalar(d.Value))
		b.WriteByte(';')
	}
	b.WriteByte('\'')
	if len(s.Classes) > 0 {
		b.WriteString(" class='")
		b.WriteString(strings.Join(s.Classes, " "))
		b.WriteByte('\'')
	}
	return b.String(), nil
}

func (s Style) clone() Style {
	return Style{
		Classes:      append([]string(nil), s.Classes...),
		Declarations: append([]Declaration(nil), s.Declarations...),
	}
}

// openTag renders "<tag attrs>" with no dangling space for a zero style.
func openTag(tag string, s Style) (string, error) {
	attrs, err := s.Attrs()
	if err != nil {
		return "", err
	}
	if attrs == "" {
		return "<" + tag + ">", nil
	}
	return "<" + tag + " " + attrs + ">", nil
}

func classTokens(v any) ([]string, error) {
	switch c := v.(type) {
	case string:
		return []string{c}, nil
	case []string:
		return append([]string(nil), c...), nil
	case []any:
		tokens := make([]string, 0, len(c))
		for _, item := range c {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list item %v (%T)", ErrInvalidClassValue, item, item)
			}
			tokens = append(tokens, str)
		}
		return tokens, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidClassValue, v)
	}
}

func cssProperty(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func isScalar(v any) bool {
	switch v.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

func formatScalar(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
