package orderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width is the fixed window width in terminal columns
const Width = 70

const (
	welcomeTitle = "Welcome to Fūdo Fusion"
	welcomeHint  = "Select a category, choose an item, and enter the quantity."
)

// Render draws the whole window for v. Long lines are cut to fit; the window
// never grows past Width.
func Render(w io.Writer, v View) {
	var sb strings.Builder
	inner := Width - 4

	border := "+" + strings.Repeat("-", Width-2) + "+\n"
	line := func(s string) {
		s = runewidth.Truncate(s, inner, "…")
		sb.WriteString("| " + runewidth.FillRight(s, inner) + " |\n")
	}
	center := func(s string) {
		pad := (inner - runewidth.StringWidth(s)) / 2
		if pad < 0 {
			pad = 0
		}
		line(strings.Repeat(" ", pad) + s)
	}

	sb.WriteString(border)
	center(welcomeTitle)
	center(welcomeHint)
	sb.WriteString(border)

	line("Categories: [" + v.Category + "]")
	for i, c := range v.Categories {
		marker := " "
		if c == v.Category {
			marker = "*"
		}
		line(fmt.Sprintf("  %s %d. %s", marker, i, c))
	}
	sb.WriteString(border)

	line("Items:")
	if len(v.ListEntries) == 0 {
		line("  (none)")
	}
	for i, entry := range v.ListEntries {
		marker := " "
		if i == v.ListSelected {
			marker = ">"
		}
		line(fmt.Sprintf("  %s %d. %s", marker, i+1, entry))
	}
	sb.WriteString(border)

	line("Description:")
	line("  " + v.Description)
	sb.WriteString(border)

	line("Quantity: [" + v.Quantity + "]   [Add to Order]  [Remove Item]")
	sb.WriteString(border)

	for _, s := range strings.Split(strings.Trim(v.Summary, "\n"), "\n") {
		line("  " + s)
	}
	sb.WriteString(border)
	line("[Check Out]")
	sb.WriteString(border)

	io.WriteString(w, sb.String())
}
