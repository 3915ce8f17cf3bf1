package main

import (
	"errors"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/goclac/internal/fileinput"
)

// lineEditor reads lines from an interactive terminal, with history that is
// loaded from and saved to an optional file.
type lineEditor struct {
	*liner.State
	prompt   string
	histPath string
	loc      fileinput.Location
}

func newLineEditor(prompt, histPath string) *lineEditor {
	le := &lineEditor{
		State:    liner.NewLiner(),
		prompt:   prompt,
		histPath: histPath,
		loc:      fileinput.Location{Name: "<stdin>"},
	}
	le.SetCtrlCAborts(true)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			le.ReadHistory(f)
			f.Close()
		}
	}
	return le
}

// ReadLine prompts for a line; an aborted (^C) prompt yields an empty line,
// while ^D yields io.EOF.
func (le *lineEditor) ReadLine() (string, error) {
	le.loc.Line++
	line, err := le.Prompt(le.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	if err == nil && strings.TrimSpace(line) != "" {
		le.AppendHistory(line)
	}
	return line, err
}

func (le *lineEditor) Location() fileinput.Location { return le.loc }

// Close saves history, if a history file was given, and restores the
// terminal.
func (le *lineEditor) Close() (err error) {
	if le.histPath != "" {
		var f *os.File
		if f, err = os.Create(le.histPath); err == nil {
			_, err = le.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := le.State.Close(); err == nil {
		err = cerr
	}
	return err
}
