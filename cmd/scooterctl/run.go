package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scooter-rental-backend/internal/console"
)

var (
	runEcho    bool
	runReports bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Execute console commands from a file",
	Long: `Executes one console command per line. Blank lines and lines starting
with # are skipped. Execution continues past failing commands; the exit status
is non-zero if any command failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVar(&runEcho, "echo", false, "print each command before executing it")
	runCmd.Flags().BoolVar(&runReports, "report", false, "run the scheduled reports after the script")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	out := cmd.OutOrStdout()
	failed := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if console.IsQuit(line) {
			break
		}
		if runEcho {
			fmt.Fprintf(out, "> %s\n", line)
		}
		if err := a.console.Execute(ctx, line, out); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	if runReports {
		a.jobs.RunAllReports()
	}

	if failed > 0 {
		return fmt.Errorf("%d command(s) failed", failed)
	}
	return nil
}
