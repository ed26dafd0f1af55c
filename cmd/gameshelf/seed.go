package main

import (
	"github.com/spf13/cobra"

	"gameshelf/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the starter catalog in the data directory",
		Long:  "Creates the starter profiles and games. Records that already exist are\nskipped, so seeding an initialized data directory is harmless.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if file == "" {
				file = a.cfg.SeedFile
			}
			catalog := seed.Default()
			if file != "" {
				catalog, err = seed.FromFile(file)
				if err != nil {
					return err
				}
			}

			created, err := catalog.Apply(cmd.Context(), a.profiles, a.games)
			if err != nil {
				return err
			}
			if err := a.store.Flush(); err != nil {
				return err
			}
			a.logger.Info("seed applied", "created", created, "data_dir", a.cfg.DataDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML catalog to seed from instead of the built-in defaults")
	return cmd
}
