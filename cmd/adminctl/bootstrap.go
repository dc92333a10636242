package main

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foliovault/internal/server/config"
	"github.com/spf13/cobra"
)

func init() {
	bootstrapCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed the default admin account and placeholder sections",
		Long:  "Idempotent: existing accounts and sections are left untouched.",
		RunE:  runBootstrap,
	}
	rootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	log := newLogger()
	ctx := context.Background()

	svc, closer, err := newUserService(cfg, log)
	if err != nil {
		return err
	}
	defer closer()

	if err := svc.BootstrapDefaultAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if err := newSectionService(cfg, log).InitializeDefaults(ctx); err != nil {
		return fmt.Errorf("bootstrap sections: %w", err)
	}

	fmt.Println("bootstrap complete")
	return nil
}
