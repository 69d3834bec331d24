package midi

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// UnknownTime is the timestamp sentinel for messages whose arrival
// time the driver could not supply.
const UnknownTime int64 = -1

// TimedMessage pairs a classified message with its arrival timestamp:
// microseconds for live input, absolute ticks for SMF events, or
// UnknownTime.
type TimedMessage struct {
	Msg  Message
	Time int64
}

// Close releases the registered MIDI driver.
func Close() {
	gomidi.CloseDriver()
}

// Ports returns the names of all MIDI input ports.
func Ports() []string {
	ins := gomidi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, p := range ins {
		names = append(names, p.String())
	}
	return names
}

// findIn resolves a port name: exact match first, then case-insensitive
// substring match.
func findIn(name string) (drivers.In, error) {
	ins := gomidi.GetInPorts()
	for _, p := range ins {
		if p.String() == name {
			return p, nil
		}
	}
	lower := strings.ToLower(name)
	for _, p := range ins {
		if strings.Contains(strings.ToLower(p.String()), lower) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no MIDI input port matching %q", name)
}

// Listen opens the named input port and streams every message on the
// returned channel, sysex and realtime included. Driver timestamps are
// milliseconds; they are converted to microseconds to match the dump
// timestamp contract. The stop function unsubscribes; the channel is
// buffered and messages are dropped rather than blocking the driver
// callback when the consumer falls behind.
func Listen(portName string) (<-chan TimedMessage, func(), error) {
	in, err := findIn(portName)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan TimedMessage, 256)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		t := UnknownTime
		if timestampms >= 0 {
			t = int64(timestampms) * 1000
		}
		select {
		case ch <- TimedMessage{Msg: FromWire([]byte(msg)), Time: t}:
		default:
		}
	}, gomidi.UseSysEx(), gomidi.UseTimeCode(), gomidi.UseActiveSense())
	if err != nil {
		return nil, nil, fmt.Errorf("open input %q: %w", in.String(), err)
	}

	return ch, stop, nil
}
