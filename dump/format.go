package dump

import (
	"fmt"
	"io"
	"strconv"

	"mididump/midi"
)

// Formatter renders decoded bodies into final output lines.
type Formatter struct {
	// TimestampTicks renders the timestamp as a raw tick count. The
	// default rendering treats it as microseconds, with -1 as the
	// unknown sentinel.
	TimestampTicks bool
	// NotesOnly suppresses every filterable body, leaving note on/off
	// and diagnostic lines.
	NotesOnly bool
}

// Line produces the output line for one decoded message. ok is false
// when the NotesOnly filter suppresses the line.
func (f Formatter) Line(timestamp int64, r Result) (line string, ok bool) {
	if f.NotesOnly && r.Filterable {
		return "", false
	}
	return f.timestampText(timestamp) + r.Body(), true
}

func (f Formatter) timestampText(t int64) string {
	if f.TimestampTicks {
		return strconv.FormatInt(t, 10) + ", "
	}
	if t == midi.UnknownTime {
		return "timestamp [unknown]: "
	}
	return "timestamp " + strconv.FormatInt(t, 10) + " us: "
}

// Receiver decodes messages and writes one line each to a sink. The
// sink and its lifecycle belong to the caller.
type Receiver struct {
	w io.Writer
	f Formatter
}

// NewReceiver creates a receiver writing formatted lines to w.
func NewReceiver(w io.Writer, f Formatter) *Receiver {
	return &Receiver{w: w, f: f}
}

// Send decodes msg and writes its line, unless suppressed.
func (r *Receiver) Send(msg midi.Message, timestamp int64) {
	if line, ok := r.f.Line(timestamp, Decode(msg)); ok {
		fmt.Fprintln(r.w, line)
	}
}
