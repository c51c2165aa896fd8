package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avashk/vttcue/internal/webvtt"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a WebVTT file to SRT or re-emit it normalized",
	Long: `Parse a WebVTT file and write it back out as SRT or as normalized
WebVTT (canonical HH:MM:SS.mmm timestamps, single blank separators).

The --shift flag moves every cue by the given number of milliseconds;
shifting below zero clamps at the zero time.

Examples:
  vttcue convert captions.vtt -f srt
  vttcue convert captions.vtt --shift 1500 -o delayed.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "", "Output format (vtt, srt); defaults to config")
	convertCmd.Flags().
		Int64("shift", 0, "Shift all cue times by this many milliseconds")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, _ := cmd.Flags().GetString("format")
	shift, _ := cmd.Flags().GetInt64("shift")
	outputPath, _ := cmd.Flags().GetString("output")

	if format == "" {
		format = cfg.Format
	}
	format = strings.ToLower(format)
	if format != "vtt" && format != "srt" {
		return fmt.Errorf("unsupported output format %q: use vtt or srt", format)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + "." + format
		if outputPath == inputPath {
			outputPath = base + ".out." + format
		}
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	cues, err := webvtt.ParseAll(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}

	if shift != 0 {
		for i := range cues {
			cues[i].StartTime = cues[i].StartTime.Add(shift)
			cues[i].StopTime = cues[i].StopTime.Add(shift)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	switch format {
	case "srt":
		err = webvtt.WriteSRT(out, cues)
	default:
		err = webvtt.WriteVTT(out, cues)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Infow("Converted subtitle file",
		"input", inputPath,
		"output", outputPath,
		"format", format,
		"cues", len(cues),
		"shift_ms", shift,
	)

	return nil
}
