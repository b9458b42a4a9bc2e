// Package console exposes the rental company as line-oriented text commands.
// Each line is parsed by a fresh cobra command tree so flag state never leaks
// between commands.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"scooter-rental-backend/internal/logger"
	"scooter-rental-backend/internal/service"
)

// Handler executes console commands against the rental services
type Handler struct {
	company   service.RentalCompany
	scooters  service.ScooterService
	rentalLog service.RentalLogService
	clock     service.Clock
}

func NewHandler(company service.RentalCompany, scooters service.ScooterService, rentalLog service.RentalLogService, clock service.Clock) *Handler {
	if clock == nil {
		clock = service.NewClock(time.Local)
	}
	return &Handler{
		company:   company,
		scooters:  scooters,
		rentalLog: rentalLog,
		clock:     clock,
	}
}

// IsQuit reports whether line asks the shell to terminate
func IsQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return true
	}
	return false
}

// Execute runs one command line, writing results to out. Failures are printed
// as "error: <message>" and also returned.
func (h *Handler) Execute(ctx context.Context, line string, out io.Writer) error {
	args, err := splitArgs(line)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return err
	}
	if len(args) == 0 {
		return nil
	}

	root := h.commands(out)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.WithService("console").Debug("Command failed", "command", args[0], "error", err)
		fmt.Fprintf(out, "error: %v\n", err)
		return err
	}
	return nil
}

func (h *Handler) commands(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "scooter",
		Short:         "Scooter rental company console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(
		h.addCmd(),
		h.removeCmd(),
		h.listCmd(),
		h.getCmd(),
		h.startCmd(),
		h.endCmd(),
		h.incomeCmd(),
		h.scooterIncomeCmd(),
		h.logCmd(),
	)
	return root
}

// splitArgs splits a line on whitespace, keeping double-quoted runs together
// so scooter ids may contain spaces.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && (r == ' ' || r == '\t'):
			if pending {
				args = append(args, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote")
	}
	if pending {
		args = append(args, current.String())
	}
	return args, nil
}
