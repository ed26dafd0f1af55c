package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gameshelf/internal/service"
)

func newCheckCmd() *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the data directory's invariants",
		Long:  "Verifies aggregate ratings, status counters, pair uniqueness, follow-edge\nmirroring, and the absence of dangling references. With --fix, derived\nfields are rebuilt and dangling references removed, then flushed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var rep service.Report
			if fix {
				rep, err = a.integrity.Repair(cmd.Context())
			} else {
				rep, err = a.integrity.Check(cmd.Context())
			}
			if err != nil {
				return err
			}

			for _, issue := range rep.Issues {
				a.logger.Warn("integrity issue", "kind", issue.Kind, "detail", issue.Detail)
			}

			if fix {
				if err := a.store.Flush(); err != nil {
					return err
				}
				a.logger.Info("repairs flushed", "issues", len(rep.Issues), "data_dir", a.cfg.DataDir)
				return nil
			}
			if !rep.Clean() {
				return fmt.Errorf("%d integrity issues found", len(rep.Issues))
			}
			a.logger.Info("data directory is consistent", "data_dir", a.cfg.DataDir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "repair derived fields and remove dangling references")
	return cmd
}
