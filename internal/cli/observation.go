package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/mhike/internal/domain"
)

func (a *app) newObservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "obs",
		Aliases: []string{"observation", "observations"},
		Short:   "Record and browse observations made during a hike",
	}
	cmd.AddCommand(
		a.newObsListCmd(),
		a.newObsGetCmd(),
		a.newObsAddCmd(),
		a.newObsUpdateCmd(),
		a.newObsDeleteCmd(),
	)
	return cmd
}

func (a *app) newObsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <hike-id>",
		Short: "List a hike's observations, latest time first",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hikeID, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			list, err := a.svc.Observations.ListByHikeID(cmd.Context(), hikeID)
			if err != nil {
				return err
			}
			return a.printObservations(cmd.OutOrStdout(), list)
		},
	}
}

func (a *app) newObsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one observation",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "observation")
			if err != nil {
				return err
			}
			obs, err := a.svc.Observations.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printObservation(cmd.OutOrStdout(), obs)
		},
	}
}

type obsFlags struct {
	title   string
	time    string
	comment string
}

func (o *obsFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.title, "title", "", "what was observed (required)")
	f.StringVar(&o.time, "time", "", "when, as \"YYYY-MM-DD HH:MM\" (default now)")
	f.StringVar(&o.comment, "comment", "", "optional comment")
}

func (a *app) newObsAddCmd() *cobra.Command {
	var o obsFlags
	cmd := &cobra.Command{
		Use:   "add <hike-id>",
		Short: "Record an observation for a hike",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hikeID, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			if err := requireFlags(cmd, "title"); err != nil {
				return err
			}
			created, err := a.svc.Observations.Create(cmd.Context(), domain.Observation{
				HikeID:  hikeID,
				Title:   o.title,
				Time:    o.time,
				Comment: o.comment,
			})
			if err != nil {
				return err
			}
			if a.flagJSON {
				return writeJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added observation %d to hike %d\n", created.ID, created.HikeID)
			return nil
		},
	}
	o.register(cmd)
	return cmd
}

func (a *app) newObsUpdateCmd() *cobra.Command {
	var o obsFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the title, time and comment of an observation",
		Long: `Replace the title, time and comment of an observation.
The observation stays attached to its hike. Updating an id that does not
exist changes nothing and is not an error.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "observation")
			if err != nil {
				return err
			}
			if err := requireFlags(cmd, "title", "time"); err != nil {
				return err
			}
			err = a.svc.Observations.Update(cmd.Context(), domain.Observation{
				ID:      id,
				Title:   o.title,
				Time:    o.time,
				Comment: o.comment,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated observation %d\n", id)
			return nil
		},
	}
	o.register(cmd)
	return cmd
}

func (a *app) newObsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one observation",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "observation")
			if err != nil {
				return err
			}
			if err := a.svc.Observations.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted observation %d\n", id)
			return nil
		},
	}
}
