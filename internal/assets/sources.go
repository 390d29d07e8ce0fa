package assets

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-slots/internal/registry"
)

//go:embed defaults
var defaultFS embed.FS

// DefaultCatalogName is the embedded catalog document.
const DefaultCatalogName = "catalog.yaml"

// Limits for remote catalogs.
const (
	httpTimeout  = 15 * time.Second
	maxDocSize   = 1 << 20
	maxImageSize = 16 << 20
)

func init() {
	registry.Register(registry.EmbedScheme, func() registry.Source { return embedSource{} })
	registry.Register("file", func() registry.Source { return fileSource{} })
	registry.Register("http", func() registry.Source { return newHTTPSource("http") })
	registry.Register("https", func() registry.Source { return newHTTPSource("https") })
}

// DefaultDocument returns the raw embedded catalog document.
func DefaultDocument() []byte {
	data, err := defaultFS.ReadFile(path.Join("defaults", DefaultCatalogName))
	if err != nil {
		panic(fmt.Sprintf("assets: embedded catalog missing: %v", err))
	}
	return data
}

// embedSource serves documents compiled into the binary.
type embedSource struct{}

func (embedSource) Scheme() string { return registry.EmbedScheme }
func (embedSource) Title() string  { return "Built-in catalog" }

func (embedSource) Fetch(_ context.Context, loc string) ([]byte, error) {
	name := strings.TrimPrefix(loc, registry.EmbedScheme+":")
	if name == "" {
		name = DefaultCatalogName
	}
	data, err := defaultFS.ReadFile(path.Join("defaults", name))
	if err != nil {
		return nil, fmt.Errorf("assets: embedded %s: %w", name, err)
	}
	return data, nil
}

func (embedSource) Open(_ context.Context, _, ref string) (io.ReadCloser, error) {
	f, err := defaultFS.Open(path.Join("defaults", ref))
	if err != nil {
		return nil, fmt.Errorf("assets: embedded %s: %w", ref, err)
	}
	return f, nil
}

// fileSource reads documents and images from the local filesystem.
type fileSource struct{}

func (fileSource) Scheme() string { return "file" }
func (fileSource) Title() string  { return "Local file" }

func (fileSource) Fetch(_ context.Context, loc string) ([]byte, error) {
	data, err := os.ReadFile(strings.TrimPrefix(loc, "file://"))
	if err != nil {
		return nil, fmt.Errorf("assets: read catalog: %w", err)
	}
	return data, nil
}

func (fileSource) Open(_ context.Context, loc, ref string) (io.ReadCloser, error) {
	p := ref
	if !filepath.IsAbs(ref) {
		p = filepath.Join(filepath.Dir(strings.TrimPrefix(loc, "file://")), ref)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("assets: open image: %w", err)
	}
	return f, nil
}

// httpSource fetches the catalog the way a browser would fetch gameData.json.
type httpSource struct {
	scheme string
	client *http.Client
}

func newHTTPSource(scheme string) httpSource {
	return httpSource{scheme: scheme, client: &http.Client{Timeout: httpTimeout}}
}

func (s httpSource) Scheme() string { return s.scheme }
func (s httpSource) Title() string  { return strings.ToUpper(s.scheme) + " download" }

func (s httpSource) Fetch(ctx context.Context, loc string) ([]byte, error) {
	body, err := s.get(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxDocSize))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", loc, err)
	}
	return data, nil
}

func (s httpSource) Open(ctx context.Context, loc, ref string) (io.ReadCloser, error) {
	base, err := url.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("assets: bad catalog url: %w", err)
	}
	target, err := base.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("assets: bad image ref %q: %w", ref, err)
	}
	body, err := s.get(ctx, target.String())
	if err != nil {
		return nil, err
	}
	return limitedBody{Reader: io.LimitReader(body, maxImageSize), Closer: body}, nil
}

func (s httpSource) get(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: get %s: %w", u, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("assets: get %s: status %s", u, resp.Status)
	}
	return resp.Body, nil
}

type limitedBody struct {
	io.Reader
	io.Closer
}

// FetchDocument resolves loc through the source registry, then parses and
// validates the document it names. Failures here are fatal for startup.
func FetchDocument(ctx context.Context, loc string) (Document, registry.Source, error) {
	src, err := registry.Resolve(loc)
	if err != nil {
		return Document{}, nil, err
	}
	data, err := src.Fetch(ctx, loc)
	if err != nil {
		return Document{}, nil, err
	}
	name := loc
	if name == "" {
		name = DefaultCatalogName
	}
	doc, err := ParseDocument(data, DetectFormat(name, data))
	if err != nil {
		return Document{}, nil, err
	}
	return doc, src, nil
}
