package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"mididump/config"
	"mididump/dump"
	"mididump/midi"
)

func main() {
	list := flag.Bool("list", false, "list MIDI input ports and exit")
	device := flag.String("device", "", "MIDI input port name (exact or substring match)")
	file := flag.String("file", "", "dump a standard MIDI file (tick timestamps) and exit")
	ticks := flag.Bool("ticks", false, "print timestamps as raw ticks instead of microseconds")
	notesOnly := flag.Bool("notes-only", false, "only print note on/off lines")
	plain := flag.Bool("plain", false, "print lines to stdout instead of the TUI")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		dump.LogLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config, but only when actually set
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["device"] {
		*device = cfg.Device
	}
	if !set["ticks"] {
		*ticks = cfg.TimestampTicks
	}
	if !set["notes-only"] {
		*notesOnly = cfg.NotesOnly
	}

	if *list {
		for _, name := range midi.Ports() {
			fmt.Println(name)
		}
		return
	}

	if *file != "" {
		dumpFile(*file, *notesOnly)
		return
	}

	if *device == "" {
		fmt.Fprintln(os.Stderr, "no input: pass -device (see -list) or -file")
		os.Exit(2)
	}

	msgs, stop, err := midi.Listen(*device)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer stop()
	defer midi.Close()

	formatter := dump.Formatter{TimestampTicks: *ticks, NotesOnly: *notesOnly}

	if *plain {
		receiver := dump.NewReceiver(os.Stdout, formatter)
		for tm := range msgs {
			receiver.Send(tm.Msg, tm.Time)
		}
		return
	}

	m := newModel(*device, msgs, formatter)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// dumpFile writes every event of an SMF to stdout. File positions are
// ticks, so the ticks timestamp style is forced.
func dumpFile(path string, notesOnly bool) {
	msgs, err := midi.FileMessages(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	receiver := dump.NewReceiver(os.Stdout, dump.Formatter{TimestampTicks: true, NotesOnly: notesOnly})
	for _, tm := range msgs {
		receiver.Send(tm.Msg, tm.Time)
	}
}
