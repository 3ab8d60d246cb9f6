package main

import (
	"fmt"

	"personal-site/internal/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	runMigrations = database.RunMigrations
	rollbackAll   = database.RollbackAll
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			if err := runMigrations(url); err != nil {
				return fmt.Errorf("migration 執行失敗: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" migrations applied")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration (drops all tables)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			if err := rollbackAll(url); err != nil {
				return fmt.Errorf("rollback 失敗: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("!")+" all migrations rolled back")
			return nil
		},
	})
	return cmd
}
