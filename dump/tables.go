package dump

// Texts below reproduce the classic MIDI dump output verbatim,
// including the historical "SMTPE" spelling.

var keyNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Indexed by (sharps/flats count + 7), so -7 flats..+7 sharps.
var keySignatures = [15]string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}

var systemMessageText = [16]string{
	"System Exclusive (should not be in ShortMessage!)",
	"MTC Quarter Frame: ",
	"Song Position: ",
	"Song Select: ",
	"Undefined",
	"Undefined",
	"Tune Request",
	"End of SysEx (should not be in ShortMessage!)",
	"Timing clock",
	"Undefined",
	"Start",
	"Continue",
	"Stop",
	"Undefined",
	"Active Sensing",
	"System Reset",
}

var quarterFrameText = [8]string{
	"frame count LS: ",
	"frame count MS: ",
	"seconds count LS: ",
	"seconds count MS: ",
	"minutes count LS: ",
	"minutes count MS: ",
	"hours count LS: ",
	"hours count MS: ",
}

var frameTypeText = [4]string{
	"24 frames/second",
	"25 frames/second",
	"30 frames/second (drop)",
	"30 frames/second (non-drop)",
}
