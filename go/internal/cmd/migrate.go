package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mcdev12/transferdesk/go/internal/migrations"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := setupDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close()

			applied, err := migrations.Apply(ctx, database)
			for _, v := range applied {
				fmt.Printf("  %s %s\n", color.New(color.FgGreen).Sprint("APPLIED"), v)
			}
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Println(color.New(color.FgBlue).Sprint("schema is up to date"))
			}
			return nil
		},
	}
}
