package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
)

var flagInitSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the contact store",
	Long:  `Create the data directory and database schema, optionally seeding sample contacts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		store, err := sqlite.Open(dataDir)
		if err != nil {
			return err
		}
		defer store.Close()

		if flagInitSeed {
			if err := store.Seed(cmd.Context()); err != nil {
				return fmt.Errorf("seed store: %w", err)
			}
		}

		fmt.Printf("initialized store in %s\n", dataDir)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagInitSeed, "seed", false, "insert sample contacts")
}
