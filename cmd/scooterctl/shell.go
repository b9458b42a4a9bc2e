package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"scooter-rental-backend/internal/console"
	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/scheduler"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Scheduler.Enabled {
		cronScheduler := scheduler.NewScheduler(a.jobs)
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s. Type \"help\" for commands, \"quit\" to leave.\n", a.cfg.Company.Name)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logger.Error("Failed to read input", "error", err)
		}
	}()

	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			logger.Info("Shutting down")
			return nil
		case line, ok := <-lines:
			if !ok || console.IsQuit(line) {
				logger.Info("Shutting down")
				return nil
			}
			// Command failures are already reported to the user.
			_ = a.console.Execute(ctx, line, out)
		}
	}
}
