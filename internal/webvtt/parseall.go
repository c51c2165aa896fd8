package webvtt

import (
	"errors"
	"io"
)

// ParseAll reads an entire WebVTT stream from r and returns every cue
// in it. The first grammar violation or source failure aborts the
// parse; an empty document yields an empty slice and no error.
func ParseAll(r io.Reader) ([]Cue, error) {
	p := NewParser(NewReader(r))

	if err := p.Init(); err != nil {
		return nil, err
	}

	var cues []Cue
	for {
		var cue Cue
		if err := p.Parse(&cue); err != nil {
			if errors.Is(err, io.EOF) {
				return cues, nil
			}
			return nil, err
		}
		cues = append(cues, cue)
	}
}
