// Package htmlfmt pretty-prints HTML fragments.
//
// Output is meant for humans diffing generated slides: one element per line,
// children indented one level deeper than their parent. Raw-text elements
// (script, style, noscript and friends) and preformatted elements (pre,
// textarea) are written verbatim so their content is never altered.
package htmlfmt

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Indent is the string written once per nesting level.
const Indent = " "

// voidElements never have closing tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// rawTextElements hold unparsed text children that must not be escaped.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"xmp": true, "noembed": true, "noframes": true,
}

// asciiSpace is HTML's whitespace set. U+00A0 is content, not whitespace.
const asciiSpace = " \t\n\f\r"

// Format parses an HTML fragment and returns it indented.
// Text nodes are trimmed of ASCII whitespace; text nodes holding only
// ASCII whitespace are dropped.
func Format(fragment string) (string, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := writeNode(&buf, n, 0); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// parseFragment parses content with a body context so the parser does not
// wrap it in <html><head><body>.
func parseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

func writeNode(buf *strings.Builder, n *html.Node, depth int) error {
	pad := strings.Repeat(Indent, depth)

	switch n.Type {
	case html.TextNode:
		text := strings.Trim(n.Data, asciiSpace)
		if text == "" {
			return nil
		}
		buf.WriteString(pad)
		buf.WriteString(textEscaper.Replace(text))
		buf.WriteByte('\n')
		return nil

	case html.CommentNode:
		buf.WriteString(pad)
		buf.WriteString("<!--")
		buf.WriteString(n.Data)
		buf.WriteString("-->\n")
		return nil

	case html.ElementNode:
		// handled below

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := writeNode(buf, c, depth); err != nil {
				return err
			}
		}
		return nil
	}

	buf.WriteString(pad)

	switch n.Data {
	case "pre", "textarea":
		if err := html.Render(buf, n); err != nil {
			return err
		}
		buf.WriteByte('\n')
		return nil
	}

	writeStartTag(buf, n)
	if voidElements[n.Data] && n.Namespace == "" {
		buf.WriteByte('\n')
		return nil
	}

	if rawTextElements[n.Data] {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			buf.WriteString(c.Data)
		}
		buf.WriteString("</")
		buf.WriteString(n.Data)
		buf.WriteString(">\n")
		return nil
	}

	buf.WriteByte('\n')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := writeNode(buf, c, depth+1); err != nil {
			return err
		}
	}
	buf.WriteString(pad)
	buf.WriteString("</")
	buf.WriteString(n.Data)
	buf.WriteString(">\n")
	return nil
}

// Escapers for text nodes and double-quoted attribute values. Quotes in text
// are left alone so rendered prose keeps its apostrophes.
var (
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;")
)

func writeStartTag(buf *strings.Builder, n *html.Node) {
	buf.WriteByte('<')
	buf.WriteString(n.Data)
	for _, a := range n.Attr {
		buf.WriteByte(' ')
		if a.Namespace != "" {
			buf.WriteString(a.Namespace)
			buf.WriteByte(':')
		}
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(attrEscaper.Replace(a.Val))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
}
