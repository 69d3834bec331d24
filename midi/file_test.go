package midi_test

import (
	"os"
	"path/filepath"
	"testing"

	"mididump/dump"
	"mididump/midi"
)

// writeFixture lays down a minimal format-0 file: tempo 120, one C4
// note held for 96 ticks, end of track.
func writeFixture(t *testing.T) string {
	t.Helper()

	data := []byte{
		'M', 'T', 'h', 'd', 0x00, 0x00, 0x00, 0x06,
		0x00, 0x00, // format 0
		0x00, 0x01, // one track
		0x01, 0xE0, // 480 ticks per quarter
		'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x13,
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20, // tempo 500000 us
		0x00, 0x90, 0x3C, 0x64, // note on C4
		0x60, 0x80, 0x3C, 0x00, // note off, 96 ticks later
		0x00, 0xFF, 0x2F, 0x00, // end of track
	}

	path := filepath.Join(t.TempDir(), "fixture.mid")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileMessages(t *testing.T) {
	msgs, err := midi.FileMessages(writeFixture(t))
	if err != nil {
		t.Fatalf("FileMessages error: %v", err)
	}

	want := []struct {
		tick int64
		body string
	}{
		{0, "-- Set Tempo: 120.0 bpm"},
		{0, "note On C4, velocity 100"},
		{96, "note Off C4, velocity 0"},
		{96, "-- End of Track"},
	}

	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i, w := range want {
		if msgs[i].Time != w.tick {
			t.Errorf("message %d: tick = %d, want %d", i, msgs[i].Time, w.tick)
		}
		if got := dump.Decode(msgs[i].Msg).Body(); got != w.body {
			t.Errorf("message %d: body = %q, want %q", i, got, w.body)
		}
	}
}

func TestFileMessagesMissing(t *testing.T) {
	if _, err := midi.FileMessages(filepath.Join(t.TempDir(), "nope.mid")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
