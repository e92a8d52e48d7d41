package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/transferdesk/go/internal/seed"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load demo profiles, teams, agents, players and pitches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			fixture, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}

			pool, err := pgxpool.New(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer pool.Close()

			summary, err := seed.Run(ctx, pool, fixture)
			printSummary(summary)
			return err
		},
	}
}

func printSummary(summary seed.Summary) {
	tables := make([]string, 0, len(summary))
	for t := range summary {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	for _, t := range tables {
		c := summary[t]
		fmt.Printf("  %-10s %s %s\n", t,
			color.New(color.FgGreen).Sprintf("%d inserted", c.Inserted),
			color.New(color.FgYellow).Sprintf("%d skipped", c.Skipped))
	}
}
