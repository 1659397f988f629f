package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/egg-launch/internal/core"
)

// Cue builds the streamer for one event kind, or nil when the kind is
// silent.
func Cue(kind core.EventKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case core.EventLaunch:
		return newVolume(tone(220, 660, 120*time.Millisecond, WaveSquare, rate), 0.35)
	case core.EventCatch:
		return newVolume(tone(880, 880, 60*time.Millisecond, WaveSine, rate), 0.6)
	case core.EventBounce:
		return newVolume(tone(110, 70, 80*time.Millisecond, WaveSine, rate), 0.8)
	case core.EventMiss:
		return newVolume(tone(440, 110, 350*time.Millisecond, WaveSaw, rate), 0.3)
	case core.EventWin:
		// B5 then E6
		return newVolume(beep.Seq(
			tone(987.77, 987.77, 100*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 1318.51, 300*time.Millisecond, WaveSquare, rate),
		), 0.3)
	case core.EventRelease:
		return newVolume(tone(196, 196, 150*time.Millisecond, WaveSine, rate), 0.5)
	case core.EventTeleport:
		return newVolume(tone(0, 0, 200*time.Millisecond, WaveNoise, rate), 0.25)
	default:
		return nil
	}
}

// Cues mixes the cues for a frame's events into one streamer. Repeated
// kinds play once. Returns nil when nothing is audible.
func Cues(events []core.Event, rate beep.SampleRate) beep.Streamer {
	var seen [core.EventTeleport + 1]bool
	var parts []beep.Streamer
	for _, ev := range events {
		if ev.Kind < 0 || int(ev.Kind) >= len(seen) || seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true
		if s := Cue(ev.Kind, rate); s != nil {
			parts = append(parts, s)
		}
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0]
	default:
		return beep.Mix(parts...)
	}
}
