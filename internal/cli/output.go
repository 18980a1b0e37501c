package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkordes/mhike/internal/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func (a *app) printHikes(w io.Writer, hikes []domain.Hike) error {
	if a.flagJSON {
		return writeJSON(w, hikes)
	}
	if len(hikes) == 0 {
		fmt.Fprintln(w, "No hikes found")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tNAME\tLOCATION\tDISTANCE\tDIFFICULTY")
	for _, h := range hikes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			h.ID, h.Date, h.Name, h.Location, formatFloat(h.Distance), h.Difficulty)
	}
	return tw.Flush()
}

func (a *app) printHike(w io.Writer, h domain.Hike) error {
	if a.flagJSON {
		return writeJSON(w, h)
	}
	parking := "no"
	if h.HasParking {
		parking = "yes"
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", h.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", h.Name)
	fmt.Fprintf(tw, "Location:\t%s\n", h.Location)
	fmt.Fprintf(tw, "Date:\t%s\n", h.Date)
	fmt.Fprintf(tw, "Parking:\t%s\n", parking)
	fmt.Fprintf(tw, "Distance:\t%s\n", formatFloat(h.Distance))
	fmt.Fprintf(tw, "Duration:\t%s\n", formatFloat(h.Duration))
	fmt.Fprintf(tw, "Elevation:\t%d\n", h.Elevation)
	fmt.Fprintf(tw, "Difficulty:\t%s\n", h.Difficulty)
	fmt.Fprintf(tw, "Group size:\t%d\n", h.GroupSize)
	if h.Terrain != "" {
		fmt.Fprintf(tw, "Terrain:\t%s\n", h.Terrain)
	}
	if h.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", h.Description)
	}
	return tw.Flush()
}

func (a *app) printObservations(w io.Writer, list []domain.Observation) error {
	if a.flagJSON {
		return writeJSON(w, list)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "No observations found")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTIME\tTITLE\tCOMMENT")
	for _, o := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", o.ID, o.Time, o.Title, o.Comment)
	}
	return tw.Flush()
}

func (a *app) printObservation(w io.Writer, o domain.Observation) error {
	if a.flagJSON {
		return writeJSON(w, o)
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", o.ID)
	fmt.Fprintf(tw, "Hike:\t%d\n", o.HikeID)
	fmt.Fprintf(tw, "Title:\t%s\n", o.Title)
	fmt.Fprintf(tw, "Time:\t%s\n", o.Time)
	if o.Comment != "" {
		fmt.Fprintf(tw, "Comment:\t%s\n", o.Comment)
	}
	return tw.Flush()
}

// formatFloat drops trailing zeros: 5 prints as "5", 2.50 as "2.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
