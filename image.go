package fastdeck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/alnah/go-fastdeck/internal/fileutil"
)

// ImageLoader returns the raw bytes of an image given its source.
// Sources starting with http:// or https:// are URLs; anything else is a
// local path.
type ImageLoader interface {
	Load(ctx context.Context, src string) ([]byte, error)
}

// maxImageSize bounds how much of a remote image is read into memory.
const maxImageSize = 64 << 20

// httpImageLoader fetches URLs with one GET and reads paths from disk.
// There is no retry, no timeout beyond ctx and no caching.
type httpImageLoader struct {
	client *http.Client
}

// NewImageLoader returns the default ImageLoader. A nil client means
// http.DefaultClient.
func NewImageLoader(client *http.Client) ImageLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpImageLoader{client: client}
}

func (l *httpImageLoader) Load(ctx context.Context, src string) ([]byte, error) {
	if !fileutil.IsURL(src) {
		data, err := os.ReadFile(src) // #nosec G304 -- image path is user-provided by design
		if err != nil {
			return nil, fmt.Errorf("reading image %s: %w", src, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageFetch, src, err)
	}
	resp, err := l.client.Do(req) // #nosec G107 -- image URL is user-provided by design
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageFetch, src, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrImageFetch, src, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageFetch, src, err)
	}
	return data, nil
}

// Compile-time interface check.
var _ ImageLoader = (*httpImageLoader)(nil)
