// Package config provides YAML-based configuration loading for the slots
// engine: tick rate, loader and reel timings, screen layout and palette.
package config

import "github.com/vovakirdan/tui-slots/internal/core"

// Config contains the whole engine configuration.
type Config struct {
	TickRate int           `yaml:"tick_rate" validate:"min=1,max=240"`
	Seed     int64         `yaml:"seed"`                                                    // 0 = time based
	LogLevel string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Catalog  string        `yaml:"catalog"` // "" = embedded default, path or http(s) URL
	Loader   LoaderConfig  `yaml:"loader"`
	Changer  ChangerConfig `yaml:"changer"`
	Arrow    ArrowConfig   `yaml:"arrow"`
	Layout   LayoutConfig  `yaml:"layout"`
	Palette  PaletteConfig `yaml:"palette"`
	Sound    SoundConfig   `yaml:"sound"`
}

// LoaderConfig defines the tile reveal loading screen.
type LoaderConfig struct {
	TileSize       int         `yaml:"tile_size" validate:"min=1"`
	RevealBatch    int         `yaml:"reveal_batch" validate:"min=1"` // Tiles revealed per tick
	Text           string      `yaml:"text" validate:"required"`
	TextPos        PointConfig `yaml:"text_pos"`
	HoldTicks      int         `yaml:"hold_ticks" validate:"min=0"`       // Extra frames before switching to the game
	StallWarnTicks int         `yaml:"stall_warn_ticks" validate:"min=0"` // 0 disables the warning
}

// ChangerConfig defines the spin animation timings.
type ChangerConfig struct {
	ReelLength     int  `yaml:"reel_length" validate:"min=1"`
	AdvanceTicks   int  `yaml:"advance_ticks" validate:"min=1"`   // Ticks per reel step
	CountdownStart int  `yaml:"countdown_start" validate:"min=0"` // Seconds shown when a spin starts
	CountdownTicks int  `yaml:"countdown_ticks" validate:"min=1"` // Ticks per countdown second
	ClampCountdown bool `yaml:"clamp_countdown"`
}

// ArrowConfig defines the bouncing "press play" arrow.
type ArrowConfig struct {
	X     int `yaml:"x"`
	MinY  int `yaml:"min_y"`
	MaxY  int `yaml:"max_y" validate:"gtefield=MinY"`
	Speed int `yaml:"speed" validate:"min=1"`
	W     int `yaml:"w" validate:"min=1"`
	H     int `yaml:"h" validate:"min=1"`
}

// LayoutConfig positions the game screen elements in logical coordinates.
type LayoutConfig struct {
	Timer      PointConfig    `yaml:"timer"`
	Slot       RectConfig     `yaml:"slot"`
	Caption    PointConfig    `yaml:"caption"`
	PlayButton RectConfig     `yaml:"play_button"`
	Selector   SelectorConfig `yaml:"selector"`
}

// SelectorConfig positions the symbol selector strip.
type SelectorConfig struct {
	Label    RectConfig `yaml:"label"`
	ItemX    int        `yaml:"item_x"`
	ItemY    int        `yaml:"item_y"`
	ItemSize int        `yaml:"item_size" validate:"min=1"`
	ItemGap  int        `yaml:"item_gap" validate:"min=0"`
}

// PointConfig is a text anchor with a font size.
type PointConfig struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Size int `yaml:"size" validate:"min=0"`
}

// RectConfig is a rectangle as written in YAML.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w" validate:"min=1"`
	H int `yaml:"h" validate:"min=1"`
}

// Rect converts to a core.Rect.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// PaletteConfig holds the screen colors as hex strings.
type PaletteConfig struct {
	Yellow  string `yaml:"yellow" validate:"hexcolor"`
	Red     string `yaml:"red" validate:"hexcolor"`
	Green   string `yaml:"green" validate:"hexcolor"`
	Orange  string `yaml:"orange" validate:"hexcolor"`
	BgBlue  string `yaml:"bg_blue" validate:"hexcolor"`
	BgGreen string `yaml:"bg_green" validate:"hexcolor"`
}

// Palette converts to a core.Palette.
func (p PaletteConfig) Palette() core.Palette {
	return core.Palette{
		Yellow:  core.Color(p.Yellow),
		Red:     core.Color(p.Red),
		Green:   core.Color(p.Green),
		Orange:  core.Color(p.Orange),
		BgBlue:  core.Color(p.BgBlue),
		BgGreen: core.Color(p.BgGreen),
	}
}

// SoundConfig controls the optional reel sound effects.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume" validate:"min=-5,max=1"` // beep effects.Volume exponent
	SampleRate int     `yaml:"sample_rate" validate:"omitempty,min=8000"`
}
