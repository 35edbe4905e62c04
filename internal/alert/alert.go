// Package alert plays the sound that marks the end of a phase.
package alert

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed beep.wav
var defaultSound []byte

// Sink is an audio output that can be started, paused and rewound.
type Sink interface {
	Play() error
	Pause() error
	Rewind() error
}

// Nop is a Sink that does nothing. It stands in when audio is disabled.
type Nop struct{}

func (Nop) Play() error   { return nil }
func (Nop) Pause() error  { return nil }
func (Nop) Rewind() error { return nil }

// Settings tune playback. Volume is a base-2 exponent: 0 plays the asset
// unchanged, -1 halves the amplitude.
type Settings struct {
	Volume float64
	Muted  bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Speaker plays one wav asset through the system audio device.
type Speaker struct {
	stream beep.StreamSeeker
	ctrl   *beep.Ctrl
	volume *effects.Volume

	// queued is guarded by the speaker lock.
	queued bool
}

// Open decodes the wav at path, or the bundled beep when path is empty,
// and initialises the audio device on first use.
func Open(path string, s Settings) (*Speaker, error) {
	var r io.Reader = bytes.NewReader(defaultSound)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read sound: %w", err)
		}
		r = bytes.NewReader(data)
	}

	buf, err := decode(r)
	if err != nil {
		return nil, err
	}

	speakerOnce.Do(func() {
		rate := buf.Format().SampleRate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}

	return newSpeaker(buf, s), nil
}

func decode(r io.Reader) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode wav: no samples")
	}
	return buf, nil
}

func newSpeaker(buf *beep.Buffer, s Settings) *Speaker {
	stream := buf.Streamer(0, buf.Len())
	ctrl := &beep.Ctrl{Streamer: stream}
	return &Speaker{
		stream: stream,
		ctrl:   ctrl,
		volume: &effects.Volume{
			Streamer: ctrl,
			Base:     2,
			Volume:   s.Volume,
			Silent:   s.Muted,
		},
	}
}

// Play resumes playback from the current position, starting over if the
// asset already played to the end.
func (s *Speaker) Play() error {
	speaker.Lock()
	if s.stream.Position() >= s.stream.Len() {
		if err := s.stream.Seek(0); err != nil {
			speaker.Unlock()
			return fmt.Errorf("rewind: %w", err)
		}
	}
	s.ctrl.Paused = false
	enqueue := !s.queued
	s.queued = true
	speaker.Unlock()

	if enqueue {
		speaker.Play(beep.Seq(s.volume, beep.Callback(s.drained)))
	}
	return nil
}

// drained runs on the speaker goroutine with the speaker lock held.
func (s *Speaker) drained() {
	s.queued = false
}

func (s *Speaker) Pause() error {
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

func (s *Speaker) Rewind() error {
	speaker.Lock()
	defer speaker.Unlock()
	if err := s.stream.Seek(0); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	return nil
}

// Apply changes volume and mute while playing.
func (s *Speaker) Apply(set Settings) {
	speaker.Lock()
	s.volume.Volume = set.Volume
	s.volume.Silent = set.Muted
	speaker.Unlock()
}

func (s *Speaker) settings() Settings {
	speaker.Lock()
	defer speaker.Unlock()
	return Settings{Volume: s.volume.Volume, Muted: s.volume.Silent}
}

// position reports the playback offset in samples.
func (s *Speaker) position() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.stream.Position()
}
