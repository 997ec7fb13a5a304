// Package display renders device state for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"magewell-cli/pkg/models"
)

// Column widths of the source table.
const (
	IndexWidth = 3
	NameWidth  = 60
	IPWidth    = 15
	RuleWidth  = 80
)

const unknown = "Unknown"

// Channel prints the current channel block.
func Channel(w io.Writer, ch models.Channel) {
	name := ch.Name
	if name == "" {
		name = unknown
	}
	ndi := "No"
	if ch.IsNDI {
		ndi = "Yes"
	}

	fmt.Fprintln(w, "\nCurrent Channel:")
	fmt.Fprintf(w, "Name: %s\n", name)
	fmt.Fprintf(w, "NDI: %s\n", ndi)
}

// Sources prints a numbered table of sources, starting at 1.
func Sources(w io.Writer, sources []models.Source) {
	if len(sources) == 0 {
		fmt.Fprintln(w, "No NDI sources available.")
		return
	}

	rule := strings.Repeat("-", RuleWidth)
	fmt.Fprintln(w, "\nAvailable NDI Sources:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-*s | %s | %s\n", IndexWidth, "#", pad("Source Name", NameWidth), pad("IP Address", IPWidth))
	fmt.Fprintln(w, rule)

	for i, src := range sources {
		fmt.Fprintln(w, SourceRow(i+1, src))
	}
}

// SourceRow formats one table row. Names wider than the column are cut.
func SourceRow(index int, src models.Source) string {
	name := src.Name
	if name == "" {
		name = unknown
	}
	ip := src.IPAddress
	if ip == "" {
		ip = unknown
	}

	name = runewidth.Truncate(name, NameWidth, "")
	return fmt.Sprintf("%*d | %s | %s", IndexWidth, index, pad(name, NameWidth), pad(ip, IPWidth))
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
