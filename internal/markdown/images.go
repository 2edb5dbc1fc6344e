package markdown

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InlineRelativeImages replaces relative <img src> paths with base64 data
// URIs read from baseDir. Absolute paths, URLs, data URIs, paths escaping
// baseDir and unreadable files are left untouched.
func InlineRelativeImages(fragment, baseDir string) (string, error) {
	if baseDir == "" {
		return fragment, nil
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		inlineNode(n, absBaseDir)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func inlineNode(n *html.Node, baseDir string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		for i, attr := range n.Attr {
			if attr.Key != "src" || !isRelativePath(attr.Val) {
				continue
			}
			if uri, ok := dataURI(filepath.Join(baseDir, attr.Val), baseDir); ok {
				n.Attr[i].Val = uri
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineNode(c, baseDir)
	}
}

func dataURI(path, baseDir string) (string, bool) {
	if !isPathUnderDir(path, baseDir) {
		return "", false
	}
	data, err := os.ReadFile(path) // #nosec G304 -- confined to baseDir above
	if err != nil {
		return "", false
	}
	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), true
}

// isRelativePath returns true if the path should be resolved against baseDir.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//", "#"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
