package dump

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mididump/midi"
)

// marker is the historical prefix that marks a filterable body in the
// rendered output.
const marker = "--"

// Result is one decoded message body. Filterable is true for the
// fine-grained categories (pressure, control/program change, pitch
// bend, system, sysex, meta) that the notes-only filter suppresses;
// note on/off and diagnostic bodies are primary and pass through.
type Result struct {
	Text       string
	Filterable bool
}

// Body renders the observable body text, prefixing the marker on
// filterable categories so output stays byte-compatible with the
// classic dump format.
func (r Result) Body() string {
	if r.Filterable {
		return marker + " " + r.Text
	}
	return r.Text
}

// Decode maps one message to its textual description. It is pure and
// total: out-of-range or unknown inputs come back as literal
// diagnostic text, never a panic. Text payloads of meta events are
// decoded as UTF-8.
func Decode(m midi.Message) Result {
	switch m.Kind {
	case midi.KindSysEx:
		return decodeSysEx(m)
	case midi.KindMeta:
		return decodeMeta(m)
	default:
		return decodeShort(m)
	}
}

func decodeShort(m midi.Message) Result {
	switch m.Command() {
	case 0x8:
		return Result{Text: fmt.Sprintf("note Off %s, velocity %d", KeyName(int(m.Data1)), m.Data2)}
	case 0x9:
		return Result{Text: fmt.Sprintf("note On %s, velocity %d", KeyName(int(m.Data1)), m.Data2)}
	case 0xA:
		return Result{
			Text:       fmt.Sprintf("polyphonic key pressure %s pressure: %d", KeyName(int(m.Data1)), m.Data2),
			Filterable: true,
		}
	case 0xB:
		return Result{
			Text:       fmt.Sprintf("control change %d value: %d", m.Data1, m.Data2),
			Filterable: true,
		}
	case 0xC:
		return Result{Text: fmt.Sprintf("program change %d", m.Data1), Filterable: true}
	case 0xD:
		return Result{
			Text:       fmt.Sprintf("key pressure %s pressure: %d", KeyName(int(m.Data1)), m.Data2),
			Filterable: true,
		}
	case 0xE:
		return Result{
			Text:       fmt.Sprintf("pitch wheel change %d", Combine14(m.Data1, m.Data2)),
			Filterable: true,
		}
	case 0xF:
		return decodeSystem(m)
	default:
		return Result{Text: fmt.Sprintf("unknown message: status = %d; byte1 = %d; byte2 = %d",
			m.Status, m.Data1, m.Data2)}
	}
}

// decodeSystem handles a short message with a full 0xFn status byte,
// where the low nibble selects the system-message subtype.
func decodeSystem(m midi.Message) Result {
	text := systemText(int(m.Channel()))
	switch m.Channel() {
	case 0x1:
		qType := (m.Data1 & 0x70) >> 4
		qData := m.Data1 & 0x0F
		if qType == 7 {
			qData &= 0x01
		}
		text += quarterFrameText[qType] + strconv.Itoa(int(qData))
		if qType == 7 {
			frameType := (m.Data1 & 0x06) >> 1
			text += "; frame type: " + frameTypeText[frameType]
		}
	case 0x2:
		text += strconv.Itoa(Combine14(m.Data1, m.Data2))
	case 0x3:
		text += strconv.Itoa(int(m.Data1))
	}
	return Result{Text: text, Filterable: true}
}

// systemText looks up the subtype table. An index outside 0-15 is a
// contract violation in the upstream classifier (the status nibble
// cannot produce one); it is logged and rendered as a safe fallback
// instead of indexing out of bounds.
func systemText(subtype int) string {
	if subtype < 0 || subtype >= len(systemMessageText) {
		Logger.WithField("subtype", subtype).Warn("system message subtype out of range")
		return "unknown system message"
	}
	return systemMessageText[subtype]
}

func decodeSysEx(m midi.Message) Result {
	if m.Start {
		return Result{Text: "Sysex message: F0" + hexString(m.Data), Filterable: true}
	}
	return Result{Text: "Continued Sysex message F7" + hexString(m.Data), Filterable: true}
}

func decodeMeta(m midi.Message) Result {
	data := m.Data
	switch m.Type {
	case 0x00:
		if len(data) < 2 {
			return unknownMeta(data)
		}
		return metaResult(fmt.Sprintf("Sequence Number: %d", int(data[0])<<8|int(data[1])))
	case 0x01:
		return metaResult("Text Event: " + string(data))
	case 0x02:
		return metaResult("Copyright Notice: " + string(data))
	case 0x03:
		return metaResult("Sequence/Track Name: " + string(data))
	case 0x04:
		return metaResult("Instrument Name: " + string(data))
	case 0x05:
		return metaResult("Lyric: " + string(data))
	case 0x06:
		return metaResult("Marker: " + string(data))
	case 0x07:
		return metaResult("Cue Point: " + string(data))
	case 0x20:
		if len(data) < 1 {
			return unknownMeta(data)
		}
		return metaResult(fmt.Sprintf("MIDI Channel Prefix: %d", data[0]))
	case 0x2F:
		return metaResult("End of Track")
	case 0x51:
		if len(data) < 3 {
			return unknownMeta(data)
		}
		tempo := int(data[0])<<16 | int(data[1])<<8 | int(data[2])
		return metaResult("Set Tempo: " + bpmText(tempo) + " bpm")
	case 0x54:
		if len(data) < 5 {
			return unknownMeta(data)
		}
		return metaResult(fmt.Sprintf("SMTPE Offset: %d:%d:%d.%d.%d",
			data[0], data[1], data[2], data[3], data[4]))
	case 0x58:
		if len(data) < 4 {
			return unknownMeta(data)
		}
		return metaResult(fmt.Sprintf("Time Signature: %d/%d; MIDI clocks per metronome tick: %d; 1/32 per 24 MIDI clocks: %d",
			data[0], 1<<data[1], data[2], data[3]))
	case 0x59:
		if len(data) < 2 {
			return unknownMeta(data)
		}
		sf := int(int8(data[0]))
		if sf < -7 || sf > 7 {
			return unknownMeta(data)
		}
		gender := "major"
		if data[1] == 1 {
			gender = "minor"
		}
		return metaResult("Key Signature: " + keySignatures[sf+7] + " " + gender)
	case 0x7F:
		return metaResult("Sequencer-Specific Meta event: " + hexString(data))
	default:
		return unknownMeta(data)
	}
}

func metaResult(text string) Result {
	return Result{Text: text, Filterable: true}
}

// unknownMeta is the fallback for unknown type codes and for payloads
// too short for their fixed field layout.
func unknownMeta(data []byte) Result {
	return metaResult("unknown Meta event: " + hexString(data))
}

// KeyName names a MIDI key: pitch class plus octave, with note 60 as
// C4. Values above 127 render as "illegal value" rather than failing.
func KeyName(key int) string {
	if key < 0 || key > 127 {
		return "illegal value"
	}
	return keyNames[key%12] + strconv.Itoa(key/12-1)
}

// Combine14 joins two 7-bit data bytes into a 14-bit value, low part
// first. Top bits are ignored.
func Combine14(lo, hi uint8) int {
	return int(lo&0x7F) | int(hi&0x7F)<<7
}

// bpmText converts microseconds per beat to beats per minute, rounded
// to two decimals with at least one decimal shown (120.0, 46.88).
func bpmText(tempo int) string {
	v := float64(tempo)
	if v <= 0 {
		v = 0.1
	}
	bpm := math.Round(60000000.0/v*100) / 100
	s := strconv.FormatFloat(bpm, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// hexString dumps bytes as a leading space plus two uppercase hex
// digits each, the classic dump convention.
func hexString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 3)
	for _, x := range data {
		fmt.Fprintf(&b, " %02X", x)
	}
	return b.String()
}
