package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every hike and observation",
		Long: `Delete every hike and observation in one transaction, then compact
the database file. This cannot be undone.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return userErrorf("reset deletes all data; pass --yes to confirm")
			}
			if err := a.svc.Hikes.ResetAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All hikes and observations deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting everything")
	return cmd
}
