package fastdeck

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/alnah/go-fastdeck/internal/fileutil"
)

// contentKind is the rendering path chosen for a value passed to Classify.
type contentKind int

const (
	kindFigure contentKind = iota
	kindImageFile
	kindImageURL
	kindAltair
	kindPlotly
	kindText
)

func (k contentKind) String() string {
	switch k {
	case kindFigure:
		return "figure"
	case kindImageFile:
		return "image-file"
	case kindImageURL:
		return "image-url"
	case kindAltair:
		return "altair"
	case kindPlotly:
		return "plotly"
	default:
		return "text"
	}
}

const (
	vegaLiteSchema = "https://vega.github.io/schema/vega-lite"
	plotlyMarker   = `{"data":[{`
)

var (
	imageExtensions = []string{"jpg", "jpeg", "png", "gif", "tif", "apng", "bmp", "svg"}

	urlPattern      = regexp.MustCompile(`^(http(s)?:\/\/.)?(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_\+.~#?&//=]*)`)
	imageExtPattern = regexp.MustCompile(`\.(jpg|jpeg|png|gif|tif|apng|bmp|svg)`)
)

// centered is the style applied to sniffed images and charts.
func centered() Style {
	return Class("d-flex", "justify-content-center", "mx-auto")
}

// detectKind picks the rendering path for value. Checks run in a fixed
// order and the first match wins:
//
//  1. Figure
//  2. existing local file with an image extension
//  3. URL-like string containing an image extension
//  4. string or map of any type mentioning the Vega-Lite schema
//  5. string or map containing a Plotly data array
//  6. anything else, rendered as text
//
// The returned payload is the Figure, the source string, the serialized
// chart JSON or the text, depending on the kind.
func detectKind(value any) (contentKind, any, error) {
	if fig, ok := value.(Figure); ok {
		return kindFigure, fig, nil
	}

	var (
		text     string
		isString bool
	)
	switch v := value.(type) {
	case string:
		text, isString = v, true
	case Markup:
		text, isString = string(v), true
	default:
		if value == nil || reflect.TypeOf(value).Kind() != reflect.Map {
			return kindText, fmt.Sprint(value), nil
		}
		serialized, err := marshalPayload(v)
		if err != nil {
			return kindText, nil, err
		}
		text = serialized
	}

	if isString {
		if fileutil.FileExists(text) && fileutil.HasExtension(text, imageExtensions...) {
			return kindImageFile, text, nil
		}
		if urlPattern.MatchString(text) && imageExtPattern.MatchString(text) {
			return kindImageURL, text, nil
		}
	}
	if strings.Contains(text, vegaLiteSchema) {
		return kindAltair, text, nil
	}
	if strings.Contains(text, plotlyMarker) {
		return kindPlotly, text, nil
	}
	return kindText, text, nil
}

// marshalPayload serializes a chart mapping of any key and value types
// without HTML escaping so the schema URL and markers survive verbatim.
func marshalPayload(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("serializing chart payload: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Classify renders value with the Content method its shape suggests and
// returns the rendered fragment. Images and charts are centered; text is
// rendered as a plain paragraph. opts configure the Content used.
func Classify(ctx context.Context, value any, opts ...ContentOption) (string, error) {
	kind, payload, err := detectKind(value)
	if err != nil {
		return "", err
	}

	c := NewContent(opts...)
	switch kind {
	case kindFigure:
		err = c.AddFig(payload.(Figure), "", true, centered())
	case kindImageFile, kindImageURL:
		err = c.AddImage(ctx, payload.(string), "", centered())
	case kindAltair:
		err = c.AddAltair(payload.(string), centered())
	case kindPlotly:
		err = c.AddPlotly(payload.(string), centered())
	default:
		err = c.AddText(payload.(string), "p", Style{})
	}
	if err != nil {
		return "", err
	}
	return c.Render()
}
