package main

import (
	"fmt"
	"os"

	"pgms/config"
	"pgms/helper"
	"pgms/shared/logger"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the global schema and tenant tables",
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.InitLogger(config.Get())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		migrationCmd(helper.ActionUp, "Apply all pending migrations"),
		migrationCmd(helper.ActionDown, "Roll back all migrations"),
		migrationCmd(helper.ActionStepUp, "Apply the next pending migration"),
		migrationCmd(helper.ActionDrop, "Drop everything in the database"),
		tenantCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrationCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}
