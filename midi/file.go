package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
)

// FileMessages reads a standard MIDI file and returns its events in
// track order, each stamped with the absolute tick position inside its
// track (delta times accumulated per track).
func FileMessages(path string) ([]TimedMessage, error) {
	s, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read SMF %q: %w", path, err)
	}

	var out []TimedMessage
	for _, track := range s.Tracks {
		var ticks int64
		for _, ev := range track {
			ticks += int64(ev.Delta)
			out = append(out, TimedMessage{
				Msg:  FromSMF([]byte(ev.Message)),
				Time: ticks,
			})
		}
	}
	return out, nil
}
