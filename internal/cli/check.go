package cli

import (
	"fmt"
	"os"

	"github.com/avashk/vttcue/internal/webvtt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate WebVTT files against the cue grammar",
	Long: `Parse one or more WebVTT files completely and report the cue count
or the first error for each.

Files are validated in parallel. The exit status is non-zero if any
file is malformed.

Examples:
  vttcue check captions.vtt
  vttcue check -c 8 episodes/*.vtt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		IntP("concurrency", "c", 0, "Number of files validated in parallel (0 = config default)")
}

type checkResult struct {
	cues int
	err  error
}

func runCheck(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}

	logger.Debugw("Validating files",
		"count", len(args),
		"concurrency", concurrency,
	)

	results := make([]checkResult, len(args))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			cues, err := checkFile(path)
			results[i] = checkResult{cues: cues, err: err}
			return nil
		})
	}
	_ = g.Wait() // per-file errors are collected, not propagated

	malformed := 0
	for i, res := range results {
		if res.err != nil {
			malformed++
			fmt.Printf("%s: %v\n", args[i], res.err)
			continue
		}
		fmt.Printf("%s: ok (%d cues)\n", args[i], res.cues)
	}

	if malformed > 0 {
		return fmt.Errorf("%d of %d files malformed", malformed, len(args))
	}
	return nil
}

func checkFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	cues, err := webvtt.ParseAll(f)
	if err != nil {
		return 0, err
	}
	return len(cues), nil
}
