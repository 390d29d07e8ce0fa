package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-slots/internal/core"
)

//go:embed defaults/slots.yaml
var defaultSlotsYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSlotsYAML
}

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/slots.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	pal := core.DefaultPalette()
	return Config{
		TickRate: 60,
		LogLevel: "info",
		Loader: LoaderConfig{
			TileSize:       10,
			RevealBatch:    20,
			Text:           "Loading",
			TextPos:        PointConfig{X: 337, Y: 288, Size: 80},
			StallWarnTicks: 300,
		},
		Changer: ChangerConfig{
			ReelLength:     30,
			AdvanceTicks:   10,
			CountdownStart: 5,
			CountdownTicks: 60,
			ClampCountdown: true,
		},
		Arrow: ArrowConfig{
			X:     856,
			MinY:  140,
			MaxY:  160,
			Speed: 1,
			W:     32,
			H:     41,
		},
		Layout: LayoutConfig{
			Timer:      PointConfig{X: 353, Y: 79, Size: 59},
			Slot:       RectConfig{X: 312, Y: 187, W: 234, H: 154},
			Caption:    PointConfig{X: 317, Y: 418, Size: 59},
			PlayButton: RectConfig{X: 813, Y: 207, W: 120, H: 119},
			Selector: SelectorConfig{
				Label:    RectConfig{X: 40, Y: 50, W: 200, H: 40},
				ItemX:    40,
				ItemY:    110,
				ItemSize: 48,
				ItemGap:  12,
			},
		},
		Palette: PaletteConfig{
			Yellow:  string(pal.Yellow),
			Red:     string(pal.Red),
			Green:   string(pal.Green),
			Orange:  string(pal.Orange),
			BgBlue:  string(pal.BgBlue),
			BgGreen: string(pal.BgGreen),
		},
		Sound: SoundConfig{
			Volume:     -1,
			SampleRate: 44100,
		},
	}
}
