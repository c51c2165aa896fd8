package cli

import (
	"fmt"
	"os"

	"github.com/avashk/vttcue/internal/webvtt"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print every cue in a WebVTT file",
	Long: `Parse a WebVTT file and print each cue's identifier, timings,
settings, and payload in a readable form.

Examples:
  vttcue dump captions.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	cues, err := webvtt.ParseAll(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	logger.Debugw("Parsed file", "path", path, "cues", len(cues))

	for i, cue := range cues {
		fmt.Printf("cue %d", i+1)
		if cue.Identifier != "" {
			fmt.Printf(" (id %q)", cue.Identifier)
		}
		fmt.Printf(": %s --> %s [%dms]\n",
			cue.StartTime,
			cue.StopTime,
			cue.StopTime.Diff(cue.StartTime))

		for _, s := range cue.Settings {
			fmt.Printf("  %s: %s\n", s.Name, s.Value)
		}
		for _, line := range cue.Payload {
			fmt.Printf("  | %s\n", line)
		}
	}

	return nil
}
