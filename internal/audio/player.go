package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-slots/internal/changer"
	"github.com/vovakirdan/tui-slots/internal/config"
)

const (
	defaultRate = beep.SampleRate(44100)
	bufferTime  = 100 * time.Millisecond
)

// Player queues streamers for output.
type Player interface {
	Play(s beep.Streamer)
}

// Speaker plays through the system audio device via one shared mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker opens the audio device at rate.
func NewSpeaker(rate beep.SampleRate) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(bufferTime)); err != nil {
		return nil, err
	}
	sp := &Speaker{mixer: &beep.Mixer{}, initialized: true}
	speaker.Play(sp.mixer)
	return sp, nil
}

// Play implements Player.
func (sp *Speaker) Play(s beep.Streamer) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return
	}
	speaker.Lock()
	sp.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sp.initialized = false
}

// Effects plays a sound for each randomizer event. It implements
// changer.Listener. Every sound is rendered into a buffer up front, so
// OnEvent only hands out a fresh reader over it.
type Effects struct {
	player  Player
	rate    beep.SampleRate
	logger  *log.Logger
	buffers map[Sound]*beep.Buffer
	enabled map[Sound]bool
}

// NewEffects creates a listener playing through p. Sounds that cannot be
// synthesized at the configured rate are logged and stay silent.
func NewEffects(cfg config.SoundConfig, p Player, logger *log.Logger) *Effects {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Effects{
		player:  p,
		rate:    SampleRate(cfg),
		logger:  logger,
		buffers: make(map[Sound]*beep.Buffer, len(melodies)),
		enabled: make(map[Sound]bool, len(melodies)),
	}
	format := beep.Format{SampleRate: e.rate, NumChannels: 2, Precision: 2}
	for _, snd := range []Sound{SoundTick, SoundSpin, SoundWin, SoundLose} {
		st, err := Effect(snd, e.rate, cfg.Volume)
		if err != nil {
			logger.Warn("cannot build sound", "sound", snd, "err", err)
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(st)
		e.buffers[snd] = buf
		e.enabled[snd] = true
	}
	return e
}

// SampleRate returns the configured rate, or 44.1kHz when unset.
func SampleRate(cfg config.SoundConfig) beep.SampleRate {
	if cfg.SampleRate > 0 {
		return beep.SampleRate(cfg.SampleRate)
	}
	return defaultRate
}

// Rate returns the sample rate effects are built at.
func (e *Effects) Rate() beep.SampleRate { return e.rate }

// Mute disables one sound.
func (e *Effects) Mute(s Sound) { e.enabled[s] = false }

// Ready reports whether s was synthesized and is not muted.
func (e *Effects) Ready(s Sound) bool { return e.enabled[s] }

// OnEvent implements changer.Listener.
func (e *Effects) OnEvent(ev changer.Event) {
	switch ev.Kind {
	case changer.EventSpin:
		e.play(SoundSpin)
	case changer.EventAdvance:
		e.play(SoundTick)
	case changer.EventSettle:
		if ev.Win {
			e.play(SoundWin)
		} else {
			e.play(SoundLose)
		}
	}
}

func (e *Effects) play(s Sound) {
	if !e.enabled[s] {
		return
	}
	buf := e.buffers[s]
	e.player.Play(buf.Streamer(0, buf.Len()))
}
