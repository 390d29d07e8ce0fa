// Package registry provides a global registry of catalog sources.
// Sources register themselves in init() functions under a scheme name,
// allowing the asset loader to fetch a catalog from an embedded default,
// a file or an http(s) URL without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownSource is returned when no source is registered for a scheme.
var ErrUnknownSource = errors.New("registry: unknown source")

// Source fetches a catalog document and the images it references.
type Source interface {
	// Scheme returns the unique scheme this source serves (e.g., "file", "https").
	Scheme() string

	// Title returns a human-readable description for listings.
	Title() string

	// Fetch reads the catalog document at loc.
	Fetch(ctx context.Context, loc string) ([]byte, error)

	// Open reads an image referenced by the document at loc.
	// ref is the path as written in the document; relative refs resolve
	// against the document location.
	Open(ctx context.Context, loc, ref string) (io.ReadCloser, error)
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	Scheme string
	Title  string
}

// Factory is a function that creates a new source.
type Factory func() Source

// EmbedScheme is the scheme of the built-in catalog; an empty location maps to it.
const EmbedScheme = "embed"

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same scheme is already registered.
func Register(scheme string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[scheme]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", scheme))
	}

	factories[scheme] = f
	titles[scheme] = f().Title()
}

// List returns information about all registered sources, sorted by scheme.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for scheme := range factories {
		result = append(result, SourceInfo{
			Scheme: scheme,
			Title:  titles[scheme],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Scheme < result[j].Scheme
	})

	return result
}

// Create instantiates the source registered for scheme.
func Create(scheme string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[scheme]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, scheme)
	}

	return f(), nil
}

// Exists checks if a source with the given scheme is registered.
func Exists(scheme string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[scheme]
	return ok
}

// SchemeOf returns the scheme a catalog location is served by:
// "" -> embed, "embed:name" -> embed, "http(s)://..." -> http(s), anything else -> file.
func SchemeOf(loc string) string {
	if loc == "" {
		return EmbedScheme
	}
	if i := strings.Index(loc, "://"); i > 0 {
		return strings.ToLower(loc[:i])
	}
	if strings.HasPrefix(loc, EmbedScheme+":") {
		return EmbedScheme
	}
	return "file"
}

// Resolve returns the source serving loc.
func Resolve(loc string) (Source, error) {
	return Create(SchemeOf(loc))
}
