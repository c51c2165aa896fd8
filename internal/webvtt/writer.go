package webvtt

import (
	"fmt"
	"io"
	"strings"
)

// WriteVTT serializes cues as a WebVTT document: header, blank line,
// then each cue with its identifier (when present), timings line with
// settings, and payload, each block separated by a blank line.
func WriteVTT(w io.Writer, cues []Cue) error {
	var sb strings.Builder

	sb.WriteString("WEBVTT\n\n")

	for _, cue := range cues {
		if cue.Identifier != "" {
			sb.WriteString(cue.Identifier)
			sb.WriteByte('\n')
		}

		sb.WriteString(cue.StartTime.String())
		sb.WriteString(" --> ")
		sb.WriteString(cue.StopTime.String())
		for _, s := range cue.Settings {
			sb.WriteByte(' ')
			sb.WriteString(s.Name)
			sb.WriteByte(':')
			sb.WriteString(s.Value)
		}
		sb.WriteByte('\n')

		for _, line := range cue.Payload {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteSRT serializes cues as a SubRip document. Identifiers and
// settings have no SRT representation and are dropped; cues are
// numbered 1-based in order.
func WriteSRT(w io.Writer, cues []Cue) error {
	var sb strings.Builder

	for i, cue := range cues {
		fmt.Fprintf(&sb, "%d\n", i+1)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		fmt.Fprintf(&sb, "%s --> %s\n",
			formatSRTTime(cue.StartTime),
			formatSRTTime(cue.StopTime))

		for _, line := range cue.Payload {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatSRTTime(t Time) string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}
