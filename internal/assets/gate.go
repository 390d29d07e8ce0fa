package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/registry"
)

// decodeWorkers bounds concurrent image decodes.
const decodeWorkers = 4

// ErrAlreadyLoading is returned by a second call to Gate.Load.
var ErrAlreadyLoading = errors.New("assets: gate already loading")

// Opener opens an image referenced by a catalog document.
type Opener func(ctx context.Context, ref string) (io.ReadCloser, error)

// SourceOpener opens refs relative to the document at loc.
func SourceOpener(src registry.Source, loc string) Opener {
	return func(ctx context.Context, ref string) (io.ReadCloser, error) {
		return src.Open(ctx, loc, ref)
	}
}

// Gate loads the catalog images asynchronously and tells the loading screen
// when everything is ready. It is safe for concurrent use; callbacks
// registered with OnAllLoaded run on the loading goroutine.
type Gate struct {
	logger *log.Logger

	started atomic.Bool
	ready   atomic.Bool
	total   atomic.Int32
	loaded  atomic.Int32

	mu      sync.Mutex
	err     error
	catalog *Catalog
	waiters []func()
	done    chan struct{}
}

// NewGate creates an idle gate.
func NewGate(logger *log.Logger) *Gate {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Gate{
		logger: logger,
		done:   make(chan struct{}),
	}
}

// ReadyGate returns a gate that is already open with the given catalog.
func ReadyGate(c *Catalog) *Gate {
	g := NewGate(nil)
	g.started.Store(true)
	g.total.Store(int32(c.Len()))
	g.loaded.Store(int32(c.Len()))
	g.finish(c, nil)
	return g
}

// Load builds every image of doc and publishes the catalog. It blocks until
// done; hosts usually run it on its own goroutine. On failure the gate stays
// closed and Err reports why.
func (g *Gate) Load(ctx context.Context, doc Document, open Opener) error {
	if !g.started.CompareAndSwap(false, true) {
		return ErrAlreadyLoading
	}
	g.total.Store(int32(len(doc.Images)))
	g.logger.Debug("loading catalog", "images", len(doc.Images))

	sprites := make([]*core.Sprite, len(doc.Images))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(decodeWorkers)
	for i, spec := range doc.Images {
		eg.Go(func() error {
			s, err := buildSprite(egCtx, spec, open)
			if err != nil {
				return fmt.Errorf("assets: image %q: %w", spec.Name, err)
			}
			sprites[i] = s
			g.loaded.Add(1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.finish(nil, err)
		return err
	}

	cat, err := NewCatalog(sprites)
	if err != nil {
		g.finish(nil, err)
		return err
	}
	if missing := cat.Missing(); len(missing) > 0 {
		g.logger.Warn("catalog is missing game screen images", "missing", missing)
	}
	g.logger.Info("catalog loaded", "images", cat.Len())
	g.finish(cat, nil)
	return nil
}

func (g *Gate) finish(c *Catalog, err error) {
	g.mu.Lock()
	g.catalog = c
	g.err = err
	var waiters []func()
	if err == nil {
		g.ready.Store(true)
		waiters = g.waiters
		g.waiters = nil
	}
	g.mu.Unlock()
	close(g.done)

	for _, fn := range waiters {
		fn()
	}
}

// IsReady reports whether the catalog is loaded.
func (g *Gate) IsReady() bool {
	return g.ready.Load()
}

// OnAllLoaded registers fn to run once the catalog is loaded. If it already
// is, fn runs immediately on the caller's goroutine.
func (g *Gate) OnAllLoaded(fn func()) {
	g.mu.Lock()
	if !g.ready.Load() {
		g.waiters = append(g.waiters, fn)
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()
	fn()
}

// Err returns the load failure, if any.
func (g *Gate) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// Progress returns how many images are built out of the document total.
func (g *Gate) Progress() (loaded, total int) {
	return int(g.loaded.Load()), int(g.total.Load())
}

// Catalog returns the loaded catalog, or nil before the gate is ready.
func (g *Gate) Catalog() *Catalog {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.catalog
}

// Wait blocks until loading finishes or ctx is done.
func (g *Gate) Wait(ctx context.Context) (*Catalog, error) {
	select {
	case <-g.done:
		return g.Catalog(), g.Err()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// buildSprite decodes or draws one catalog entry.
func buildSprite(ctx context.Context, spec ImageSpec, open Opener) (*core.Sprite, error) {
	fill := ParseColor(spec.Color, core.ColorWhite)
	s := &core.Sprite{
		Name:  spec.Name,
		Glyph: glyphFor(spec),
		Tint:  core.Color(fill.Hex()),
	}

	if spec.Path != "" {
		if open == nil {
			return nil, errors.New("no opener for image paths")
		}
		rc, err := open(ctx, spec.Path)
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		img, _, err := image.Decode(rc)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", spec.Path, err)
		}
		s.Image = img
		return s, nil
	}

	img, err := DrawShape(spec.Shape, fill, spec.W, spec.H)
	if err != nil {
		return nil, err
	}
	s.Image = img
	return s, nil
}

func glyphFor(spec ImageSpec) rune {
	if spec.Glyph != "" {
		r, _ := utf8.DecodeRuneInString(spec.Glyph)
		return r
	}
	r, _ := utf8.DecodeRuneInString(spec.Name)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}
