package alert

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep/speaker"
)

func TestDecode_BundledSound(t *testing.T) {
	buf, err := decode(bytes.NewReader(defaultSound))
	if err != nil {
		t.Fatalf("decode bundled sound: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected samples in bundled sound")
	}
	if buf.Format().SampleRate == 0 {
		t.Error("expected a sample rate")
	}
}

func TestDecode_InvalidData(t *testing.T) {
	_, err := decode(bytes.NewReader([]byte("not a wav file")))
	if err == nil {
		t.Fatal("expected error for invalid wav data")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.wav"), Settings{})
	if err == nil {
		t.Fatal("expected error for missing sound file")
	}
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path, Settings{})
	if err == nil {
		t.Fatal("expected error for undecodable sound file")
	}
}

func newTestSpeaker(t *testing.T) *Speaker {
	t.Helper()
	buf, err := decode(bytes.NewReader(defaultSound))
	if err != nil {
		t.Fatal(err)
	}
	return newSpeaker(buf, Settings{Volume: -1})
}

func TestSpeaker_RewindReturnsToStart(t *testing.T) {
	s := newTestSpeaker(t)

	speaker.Lock()
	s.stream.Seek(s.stream.Len() / 2)
	speaker.Unlock()

	if err := s.Rewind(); err != nil {
		t.Fatalf("rewind: %v", err)
	}
	if pos := s.position(); pos != 0 {
		t.Errorf("expected position 0, got %d", pos)
	}
}

func TestSpeaker_PauseAndPlay(t *testing.T) {
	s := newTestSpeaker(t)

	if err := s.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !s.ctrl.Paused {
		t.Error("expected paused control")
	}

	if err := s.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	speaker.Lock()
	paused, queued := s.ctrl.Paused, s.queued
	speaker.Unlock()
	if paused {
		t.Error("expected Play to unpause")
	}
	if !queued {
		t.Error("expected Play to queue the stream")
	}
}

func TestSpeaker_PlayAfterEndStartsOver(t *testing.T) {
	s := newTestSpeaker(t)

	speaker.Lock()
	s.stream.Seek(s.stream.Len())
	speaker.Unlock()

	if err := s.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	if pos := s.position(); pos != 0 {
		t.Errorf("expected playback to restart at 0, got %d", pos)
	}
}

func TestSpeaker_Apply(t *testing.T) {
	s := newTestSpeaker(t)
	if got := s.settings(); got.Volume != -1 || got.Muted {
		t.Fatalf("unexpected initial settings %+v", got)
	}

	s.Apply(Settings{Volume: 1, Muted: true})
	if got := s.settings(); got.Volume != 1 || !got.Muted {
		t.Errorf("expected applied settings, got %+v", got)
	}
}

func TestNop(t *testing.T) {
	var s Sink = Nop{}
	if err := s.Play(); err != nil {
		t.Error(err)
	}
	if err := s.Pause(); err != nil {
		t.Error(err)
	}
	if err := s.Rewind(); err != nil {
		t.Error(err)
	}
}
