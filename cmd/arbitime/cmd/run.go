package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/MeKo-Tech/arbitime"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Time the execution of a command",
	Long: `Run a command and write its wall-clock execution time as one
diagnostic line to stderr. The command's own stdin, stdout and stderr
are passed through untouched.

With --runs N the command is executed N times, strictly one after the
other, each run timed and logged independently. With --table a per-run
duration table is printed to stdout instead of the diagnostic lines.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTimed,
}

func init() {
	runCmd.Flags().String("label", "", "label for the timing message (default: the command name)")
	runCmd.Flags().Int("runs", 1, "number of times to run the command")
	runCmd.Flags().Bool("table", false, "print a per-run duration table instead of diagnostic lines")

	_ = viper.BindPFlag("label", runCmd.Flags().Lookup("label"))
	_ = viper.BindPFlag("runs", runCmd.Flags().Lookup("runs"))
	_ = viper.BindPFlag("table", runCmd.Flags().Lookup("table"))

	rootCmd.AddCommand(runCmd)
}

// runResult holds the outcome of one timed run for table output.
type runResult struct {
	duration time.Duration
	err      error
}

func runTimed(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	label := cfg.Label
	if label == "" {
		label = args[0]
	}

	slog.Debug("timing command",
		"command", args[0],
		"args", args[1:],
		"runs", cfg.Runs,
		"label", label)

	run := func() error { return executeOnce(ctx, args) }

	if cfg.Table {
		return runWithTable(cmd.OutOrStdout(), run, cfg.Runs)
	}

	if cfg.Runs > 1 {
		blocks := make([]arbitime.Block[error], cfg.Runs)
		for i := range blocks {
			blocks[i] = arbitime.Block[error]{
				Label: fmt.Sprintf("%s (run %d/%d)", label, i+1, cfg.Runs),
				Fn:    run,
			}
		}
		for i, err := range arbitime.LogAll(blocks) {
			if err != nil {
				return fmt.Errorf("run %d failed: %w", i+1, err)
			}
		}
		return nil
	}

	var err error
	if cmd.Flags().Changed("label") || cfg.Label != "" {
		err = arbitime.LogNamed(label, run)
	} else {
		err = arbitime.Log(run)
	}
	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// runWithTable times each run, then prints one table row per run.
// Failing runs do not stop later ones; the first failure is returned
// after the table is rendered.
func runWithTable(w io.Writer, run func() error, runs int) error {
	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		duration, err := arbitime.Measure(run)
		results = append(results, runResult{duration: duration, err: err})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Run", "Duration", "Status")
	for i, r := range results {
		status := "ok"
		if r.err != nil {
			status = r.err.Error()
		}
		table.Append([]string{strconv.Itoa(i + 1), arbitime.FormatDuration(r.duration), status})
	}
	table.Render()

	for i, r := range results {
		if r.err != nil {
			return fmt.Errorf("run %d failed: %w", i+1, r.err)
		}
	}
	return nil
}

// executeOnce runs the command once with the caller's standard streams.
func executeOnce(ctx context.Context, args []string) error {
	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
