package midi

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"
)

func TestFromWireShort(t *testing.T) {
	m := FromWire([]byte{0x90, 60, 100})
	if m.Kind != KindShort {
		t.Fatalf("kind = %v", m.Kind)
	}
	if m.Status != 0x90 || m.Data1 != 60 || m.Data2 != 100 {
		t.Fatalf("got %#v", m)
	}
	if m.Command() != 0x9 || m.Channel() != 0 {
		t.Fatalf("command=%X channel=%X", m.Command(), m.Channel())
	}
}

func TestFromWireMasksDataBytes(t *testing.T) {
	m := FromWire([]byte{0x90, 0xFF, 0x80})
	if m.Data1 != 0x7F || m.Data2 != 0x00 {
		t.Fatalf("data not masked: %#v", m)
	}
}

func TestFromWireTwoByte(t *testing.T) {
	m := FromWire([]byte{0xC0, 5})
	if m.Status != 0xC0 || m.Data1 != 5 || m.Data2 != 0 {
		t.Fatalf("got %#v", m)
	}
}

func TestFromWireRealtime(t *testing.T) {
	m := FromWire([]byte{0xF8})
	if m.Kind != KindShort || m.Status != 0xF8 {
		t.Fatalf("got %#v", m)
	}
	if m.Command() != 0xF || m.Channel() != 0x8 {
		t.Fatalf("command=%X channel=%X", m.Command(), m.Channel())
	}
}

func TestFromWireEmpty(t *testing.T) {
	m := FromWire(nil)
	if m.Kind != KindShort || m.Status != 0 {
		t.Fatalf("got %#v", m)
	}
}

func TestFromWireSysEx(t *testing.T) {
	m := FromWire([]byte{0xF0, 0x7E, 0x00, 0xF7})
	if m.Kind != KindSysEx || !m.Start {
		t.Fatalf("got %#v", m)
	}
	if !bytes.Equal(m.Data, []byte{0x7E, 0x00, 0xF7}) {
		t.Fatalf("payload = % X", m.Data)
	}

	m = FromWire([]byte{0xF7, 0x01, 0x02})
	if m.Kind != KindSysEx || m.Start {
		t.Fatalf("got %#v", m)
	}
	if !bytes.Equal(m.Data, []byte{0x01, 0x02}) {
		t.Fatalf("payload = % X", m.Data)
	}
}

func TestFromSMFMeta(t *testing.T) {
	// Stored form carries the payload size after the type byte
	m := FromSMF([]byte{0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20})
	if m.Kind != KindMeta || m.Type != 0x51 {
		t.Fatalf("got %#v", m)
	}
	if !bytes.Equal(m.Data, []byte{0x07, 0xA1, 0x20}) {
		t.Fatalf("payload = % X", m.Data)
	}
}

func TestFromSMFMetaGomidiLayout(t *testing.T) {
	// Goes through gomidi's own constructors so the classifier tracks
	// the layout the smf package really stores.
	m := FromSMF([]byte(smf.MetaTempo(120)))
	if m.Kind != KindMeta || m.Type != 0x51 {
		t.Fatalf("got %#v", m)
	}
	if !bytes.Equal(m.Data, []byte{0x07, 0xA1, 0x20}) {
		t.Fatalf("tempo payload = % X", m.Data)
	}

	m = FromSMF([]byte(smf.MetaText("hello")))
	if m.Kind != KindMeta || m.Type != 0x01 {
		t.Fatalf("got %#v", m)
	}
	if string(m.Data) != "hello" {
		t.Fatalf("text payload = %q", m.Data)
	}

	m = FromSMF([]byte(smf.EOT))
	if m.Kind != KindMeta || m.Type != 0x2F || len(m.Data) != 0 {
		t.Fatalf("got %#v", m)
	}
}

func TestFromSMFMetaLongLength(t *testing.T) {
	// 200-byte payload: size is the two-byte quantity 0x81 0x48
	payload := bytes.Repeat([]byte{0x42}, 200)
	b := append([]byte{0xFF, 0x01, 0x81, 0x48}, payload...)
	m := FromSMF(b)
	if m.Kind != KindMeta || m.Type != 0x01 {
		t.Fatalf("got %#v", m)
	}
	if !bytes.Equal(m.Data, payload) {
		t.Fatalf("payload length = %d", len(m.Data))
	}
}

func TestFromSMFMetaBadLength(t *testing.T) {
	// Declared size runs past the slice; payload clamps to what exists
	m := FromSMF([]byte{0xFF, 0x01, 0x05, 'h', 'i'})
	if string(m.Data) != "hi" {
		t.Fatalf("payload = %q", m.Data)
	}
}

func TestFromSMFShortPassthrough(t *testing.T) {
	m := FromSMF([]byte{0x90, 60, 100})
	if m.Kind != KindShort || m.Status != 0x90 {
		t.Fatalf("got %#v", m)
	}
}

func TestFromSMFSysEx(t *testing.T) {
	m := FromSMF([]byte{0xF0, 0x7E, 0xF7})
	if m.Kind != KindSysEx || !m.Start {
		t.Fatalf("got %#v", m)
	}
}

func TestNewMetaMasksType(t *testing.T) {
	m := NewMeta(0xD1, nil)
	if m.Type != 0x51 {
		t.Fatalf("type = %X", m.Type)
	}
}
