package console

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"scooter-rental-backend/internal/domain"
	"scooter-rental-backend/internal/validation"
)

func (h *Handler) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id> <price-per-minute>",
		Short: "Register a scooter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := validation.ParsePrice(args[1])
			if err != nil {
				return err
			}
			if err := h.scooters.AddScooter(cmd.Context(), args[0], price); err != nil {
				return err
			}
			cmd.Printf("Scooter %s added at %s per minute\n", args[0], price.StringFixed(2))
			return nil
		},
	}
}

func (h *Handler) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a scooter that is not rented",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.scooters.RemoveScooter(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Scooter %s removed\n", args[0])
			return nil
		},
	}
}

func (h *Handler) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all scooters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scooters, err := h.scooters.GetScooters(ctx)
			if err != nil {
				return err
			}
			if len(scooters) == 0 {
				cmd.Println("No scooters registered")
				return nil
			}

			entries, err := h.rentalLog.Entries(ctx, "")
			if err != nil {
				return err
			}
			since := make(map[string]time.Time)
			for _, e := range entries {
				if e.IsOpen() {
					since[e.ScooterID] = e.StartDate
				}
			}

			now := h.clock()
			cmd.Printf("%-16s %10s  %-9s  %s\n", "ID", "PRICE/MIN", "STATUS", "SINCE")
			for _, s := range scooters {
				rentedSince := ""
				if start, ok := since[s.ID]; ok && s.IsRented {
					rentedSince = humanize.RelTime(start, now, "ago", "from now")
				}
				cmd.Printf("%-16s %10s  %-9s  %s\n", s.ID, s.PricePerMinute.StringFixed(2), s.Status(), rentedSince)
			}
			cmd.Printf("%s\n", plural(len(scooters), "scooter"))
			return nil
		},
	}
}

func (h *Handler) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one scooter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := h.scooters.GetScooterByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("ID:        %s\n", s.ID)
			cmd.Printf("Price/min: %s\n", s.PricePerMinute.StringFixed(2))
			cmd.Printf("Status:    %s\n", s.Status())
			return nil
		},
	}
}

func (h *Handler) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start renting a scooter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.company.StartRent(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Rental of %s started\n", args[0])
			return nil
		},
	}
}

func (h *Handler) endCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <id>",
		Short: "End a rental and print its price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := h.company.EndRent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Rental of %s ended, price %s\n", args[0], price.StringFixed(2))
			return nil
		},
	}
}

func (h *Handler) incomeCmd() *cobra.Command {
	var includeOpen bool
	cmd := &cobra.Command{
		Use:   "income [year]",
		Short: "Show company income for a year (current year by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var year *int
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return domain.NewValidationError("year", fmt.Sprintf("%q is not a number", args[0]))
				}
				year = &y
			}

			income, err := h.company.CalculateIncome(cmd.Context(), year, includeOpen)
			if err != nil {
				return err
			}

			label := h.clock().Year()
			if year != nil {
				label = *year
			}
			cmd.Printf("Income %d: %s\n", label, income.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeOpen, "open", false, "close and include rentals still in progress")
	return cmd
}

func (h *Handler) scooterIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scooter-income <id>",
		Short: "Show the income of a scooter's most recent rental",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := h.rentalLog.CalculateIncome(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Last rental of %s: %s\n", args[0], income.StringFixed(2))
			return nil
		},
	}
}

func (h *Handler) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [id]",
		Short: "Show the rental log, optionally for one scooter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scooterID := ""
			if len(args) == 1 {
				scooterID = args[0]
			}

			entries, err := h.rentalLog.Entries(cmd.Context(), scooterID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No rentals recorded")
				return nil
			}

			now := h.clock()
			cmd.Printf("%-16s %-19s  %-19s  %10s  %s\n", "SCOOTER", "START", "END", "INCOME", "STARTED")
			for _, e := range entries {
				end, income := "in progress", "-"
				if !e.IsOpen() {
					end = e.EndDate.Format(time.DateTime)
					income = e.Income().StringFixed(2)
				}
				cmd.Printf("%-16s %-19s  %-19s  %10s  %s\n",
					e.ScooterID,
					e.StartDate.Format(time.DateTime),
					end,
					income,
					humanize.RelTime(e.StartDate, now, "ago", "from now"))
			}
			cmd.Printf("%s, total %s\n", plural(len(entries), "rental"), domain.TotalIncome(entries).StringFixed(2))
			return nil
		},
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
