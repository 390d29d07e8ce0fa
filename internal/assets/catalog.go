package assets

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// Catalog layout.
const (
	PlayableCount   = 6 // Leading entries usable as reel symbols
	BackgroundIndex = 8 // Entry drawn behind the game screen

	NamePlayEnabled  = "playButtonEnabled"
	NamePlayDisabled = "playButtonDisabled"
	NameArrow        = "arrow"
)

var (
	// ErrUnknownImage is returned by Lookup for names not in the catalog.
	ErrUnknownImage = errors.New("assets: unknown image")

	// ErrTooFewImages is returned when a catalog cannot fill the playable set.
	ErrTooFewImages = errors.New("assets: too few images")
)

// Catalog is the read-only set of loaded images. It is built once after
// loading and shared by reference; nothing mutates it afterwards.
type Catalog struct {
	entries []*core.Sprite
	byName  map[string]*core.Sprite
}

// NewCatalog builds a catalog from sprites in load order.
func NewCatalog(entries []*core.Sprite) (*Catalog, error) {
	if len(entries) < PlayableCount {
		return nil, fmt.Errorf("%w: have %d, need at least %d", ErrTooFewImages, len(entries), PlayableCount)
	}

	c := &Catalog{
		entries: make([]*core.Sprite, len(entries)),
		byName:  make(map[string]*core.Sprite, len(entries)),
	}
	for i, s := range entries {
		if s == nil || s.Name == "" {
			return nil, fmt.Errorf("assets: entry %d has no name", i)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateName, s.Name)
		}
		c.entries[i] = s
		c.byName[s.Name] = s
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns every entry in load order.
func (c *Catalog) Entries() []*core.Sprite {
	out := make([]*core.Sprite, len(c.entries))
	copy(out, c.entries)
	return out
}

// Role describes what the entry at index i is used for.
func (c *Catalog) Role(i int) string {
	switch {
	case i < 0 || i >= len(c.entries):
		return ""
	case i < PlayableCount:
		return "symbol"
	case i == BackgroundIndex:
		return "background"
	}
	switch c.entries[i].Name {
	case NamePlayEnabled, NamePlayDisabled:
		return "button"
	case NameArrow:
		return "indicator"
	}
	return "unused"
}

// Playable returns the first PlayableCount entries in load order.
func (c *Catalog) Playable() []*core.Sprite {
	out := make([]*core.Sprite, PlayableCount)
	copy(out, c.entries[:PlayableCount])
	return out
}

// IsPlayable reports whether name is one of the playable symbols.
func (c *Catalog) IsPlayable(name string) bool {
	for _, s := range c.entries[:PlayableCount] {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Lookup finds an entry by name.
func (c *Catalog) Lookup(name string) (*core.Sprite, error) {
	s, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownImage, name)
	}
	return s, nil
}

// PlayButton returns the enabled or disabled button image, or nil if the
// catalog has none.
func (c *Catalog) PlayButton(enabled bool) *core.Sprite {
	if enabled {
		return c.byName[NamePlayEnabled]
	}
	return c.byName[NamePlayDisabled]
}

// Arrow returns the "press play" arrow image, or nil.
func (c *Catalog) Arrow() *core.Sprite {
	return c.byName[NameArrow]
}

// Background returns the entry at BackgroundIndex, or nil for short catalogs.
func (c *Catalog) Background() *core.Sprite {
	if len(c.entries) <= BackgroundIndex {
		return nil
	}
	return c.entries[BackgroundIndex]
}

// Missing lists the chrome images the game screen draws but the catalog lacks.
func (c *Catalog) Missing() []string {
	var out []string
	for _, name := range []string{NamePlayEnabled, NamePlayDisabled, NameArrow} {
		if _, ok := c.byName[name]; !ok {
			out = append(out, name)
		}
	}
	if c.Background() == nil {
		out = append(out, fmt.Sprintf("background (index %d)", BackgroundIndex))
	}
	return out
}

// DisplayName turns a catalog name into a label ("cherry" -> "Cherry").
// Casers are stateful, so each call builds its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}
