package midi

// Kind discriminates the three message shapes a dump receives
type Kind int

const (
	KindShort Kind = iota
	KindSysEx
	KindMeta
)

// Sysex status markers
const (
	SysExStart        uint8 = 0xF0
	SysExContinuation uint8 = 0xF7
	metaStatus        uint8 = 0xFF
)

// Message is one framed MIDI message. Exactly one shape is active,
// selected by Kind: Status/Data1/Data2 for short messages, Start/Data
// for sysex, Type/Data for meta events.
type Message struct {
	Kind Kind

	// Short message fields
	Status uint8
	Data1  uint8
	Data2  uint8

	// Sysex: true for an 0xF0 start, false for an 0xF7 continuation
	Start bool

	// Sysex payload or meta payload
	Data []byte

	// Meta event type code (0-127)
	Type uint8
}

// NewShort builds a short (1-3 byte) message. Data bytes are masked to
// 7 bits as the protocol requires.
func NewShort(status, data1, data2 uint8) Message {
	return Message{
		Kind:   KindShort,
		Status: status,
		Data1:  data1 & 0x7F,
		Data2:  data2 & 0x7F,
	}
}

// NewSysEx builds a system-exclusive message started with 0xF0.
func NewSysEx(data []byte) Message {
	return Message{Kind: KindSysEx, Status: SysExStart, Start: true, Data: data}
}

// NewSysExContinuation builds a 0xF7-led sysex continuation.
func NewSysExContinuation(data []byte) Message {
	return Message{Kind: KindSysEx, Status: SysExContinuation, Data: data}
}

// NewMeta builds a meta event.
func NewMeta(typ uint8, data []byte) Message {
	return Message{Kind: KindMeta, Type: typ & 0x7F, Data: data}
}

// Command returns the high nibble of the status byte (0x8-0xF for
// defined messages).
func (m Message) Command() uint8 {
	return m.Status >> 4
}

// Channel returns the low nibble of the status byte: the voice channel
// for commands 0x8-0xE, or the system-message subtype when the status
// byte is >= 0xF0.
func (m Message) Channel() uint8 {
	return m.Status & 0x0F
}

// FromWire classifies bytes as delivered by a live input port. The
// driver hands over complete frames, so 0xF0/0xF7-led frames are sysex
// and everything else is a short message. Never panics; an empty slice
// comes back as a zero-status short message.
func FromWire(b []byte) Message {
	if len(b) == 0 {
		return Message{Kind: KindShort}
	}
	switch b[0] {
	case SysExStart:
		return NewSysEx(b[1:])
	case SysExContinuation:
		return NewSysExContinuation(b[1:])
	}
	var d1, d2 uint8
	if len(b) > 1 {
		d1 = b[1]
	}
	if len(b) > 2 {
		d2 = b[2]
	}
	return NewShort(b[0], d1, d2)
}

// FromSMF classifies bytes of a single SMF track event as gomidi's smf
// package stores them in memory: meta events are 0xFF, the type byte,
// the payload size as a variable-length quantity, then the payload.
// Sysex events carry no stored size. A lone 0xFF on the wire would be
// a system reset, but SMF files carry realtime bytes nowhere, so 0xFF
// always means meta here.
func FromSMF(b []byte) Message {
	if len(b) >= 2 && b[0] == metaStatus {
		typ := b[1]
		i := 2
		length := 0
		for i < len(b) {
			c := b[i]
			i++
			length = length<<7 | int(c&0x7F)
			if c < 0x80 {
				break
			}
		}
		// Trust the slice over a bad declared length
		end := i + length
		if end > len(b) {
			end = len(b)
		}
		return NewMeta(typ, b[i:end])
	}
	return FromWire(b)
}
