package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/mhike/internal/domain"
)

func (a *app) newHikeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hike",
		Aliases: []string{"hikes"},
		Short:   "Record and browse hikes",
	}
	cmd.AddCommand(
		a.newHikeListCmd(),
		a.newHikeGetCmd(),
		a.newHikeAddCmd(),
		a.newHikeUpdateCmd(),
		a.newHikeDeleteCmd(),
	)
	return cmd
}

func (a *app) newHikeListCmd() *cobra.Command {
	var filter domain.HikeFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hikes, newest date first",
		Long: `List hikes ordered by their date text, descending.

Dates are compared as text, so "12/01/2023" lists before "01/05/2024".
Filters combine with AND; a filter left blank is ignored, and a
--min-distance that is not a number is ignored too.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			hikes, err := a.svc.Hikes.Search(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(hikes) == 0 && !a.flagJSON && !filter.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No hikes match the filters")
				return nil
			}
			return a.printHikes(cmd.OutOrStdout(), hikes)
		},
	}
	f := cmd.Flags()
	f.StringVar(&filter.Search, "search", "", "name contains (case-insensitive)")
	f.StringVar(&filter.Location, "location", "", "location contains (case-insensitive)")
	f.StringVar(&filter.MinDistance, "min-distance", "", "minimum distance")
	f.StringVar(&filter.Date, "date", "", "exact date (MM/DD/YYYY)")
	return cmd
}

func (a *app) newHikeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one hike",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			hike, err := a.svc.Hikes.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printHike(cmd.OutOrStdout(), hike)
		},
	}
}

// hikeFlags binds the editable hike fields to command flags.
type hikeFlags struct {
	name        string
	location    string
	date        string
	parking     bool
	distance    float64
	duration    float64
	elevation   int
	difficulty  string
	groupSize   int
	terrain     string
	description string
}

// requiredHikeFlags mirrors the fields the logbook form marks as mandatory.
var requiredHikeFlags = []string{"name", "location", "date", "distance", "duration", "elevation", "group-size"}

func (h *hikeFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&h.name, "name", "", "hike name (required)")
	f.StringVar(&h.location, "location", "", "where the hike took place (required)")
	f.StringVar(&h.date, "date", "", "date as MM/DD/YYYY (required)")
	f.BoolVar(&h.parking, "parking", false, "parking is available")
	f.Float64Var(&h.distance, "distance", 0, "distance (required)")
	f.Float64Var(&h.duration, "duration", 0, "duration in hours (required)")
	f.IntVar(&h.elevation, "elevation", 0, "elevation gain (required)")
	f.StringVar(&h.difficulty, "difficulty", string(domain.DifficultyModerate), "Easy, Moderate or Hard")
	f.IntVar(&h.groupSize, "group-size", 0, "number of people (required)")
	f.StringVar(&h.terrain, "terrain", "", "terrain notes")
	f.StringVar(&h.description, "description", "", "free-form description")
}

func (h *hikeFlags) hike(id int64) (domain.Hike, error) {
	difficulty, err := domain.ParseDifficulty(h.difficulty)
	if err != nil {
		return domain.Hike{}, err
	}
	return domain.Hike{
		ID:          id,
		Name:        h.name,
		Location:    h.location,
		Date:        h.date,
		HasParking:  h.parking,
		Distance:    h.distance,
		Duration:    h.duration,
		Elevation:   h.elevation,
		Difficulty:  difficulty,
		GroupSize:   h.groupSize,
		Terrain:     h.terrain,
		Description: h.description,
	}, nil
}

func (a *app) newHikeAddCmd() *cobra.Command {
	var h hikeFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new hike",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd, requiredHikeFlags...); err != nil {
				return err
			}
			hike, err := h.hike(0)
			if err != nil {
				return err
			}
			created, err := a.svc.Hikes.Create(cmd.Context(), hike)
			if err != nil {
				return err
			}
			if a.flagJSON {
				return writeJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added hike %d: %s\n", created.ID, created.Name)
			return nil
		},
	}
	h.register(cmd)
	return cmd
}

func (a *app) newHikeUpdateCmd() *cobra.Command {
	var h hikeFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace every field of a hike",
		Long: `Replace every field of the hike with the given id.
Updating an id that does not exist changes nothing and is not an error.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			if err := requireFlags(cmd, requiredHikeFlags...); err != nil {
				return err
			}
			hike, err := h.hike(id)
			if err != nil {
				return err
			}
			if err := a.svc.Hikes.Update(cmd.Context(), hike); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated hike %d\n", id)
			return nil
		},
	}
	h.register(cmd)
	return cmd
}

func (a *app) newHikeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a hike and all of its observations",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "hike")
			if err != nil {
				return err
			}
			if err := a.svc.Hikes.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted hike %d\n", id)
			return nil
		},
	}
}
