package utils

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"candidate-search/internal/models"
)

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	} else {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// WriteCandidateTable writes candidates as an aligned text table
func WriteCandidateTable(w io.Writer, candidates []models.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tLOCATION\tCOMPANY\tEMAIL\tPROFILE")
	for _, c := range candidates {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Username, oneLine(c.Name), oneLine(c.Location), oneLine(c.Company), c.Email, c.HTMLURL)
	}
	return tw.Flush()
}

// oneLine keeps free-text profile fields from breaking table rows
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
