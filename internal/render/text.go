package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/ezladder/pkg/configurator"
)

var (
	colorHeading = lipgloss.Color("#BD93F9")
	colorMuted   = lipgloss.Color("#6272A4")
	colorValue   = lipgloss.Color("#F8F8F2")
)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	note    lipgloss.Style
}

// newStyles binds the palette to w so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(colorHeading),
		label:   r.NewStyle().Foreground(colorMuted),
		value:   r.NewStyle().Bold(true).Foreground(colorValue),
		note:    r.NewStyle().Italic(true).Foreground(colorMuted),
	}
}

// Text writes d as three labelled panels: ladder height, standoff distance
// and the derived preview.
func Text(w io.Writer, d configurator.Derived) error {
	s := newStyles(w)
	var b strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", s.label.Render(label+":"), s.value.Render(value))
	}

	b.WriteString(s.heading.Render("Ladder Height") + "\n")
	fmt.Fprintf(&b, "  %s %s %s\n",
		s.label.Render("Height:"),
		s.value.Render(d.LadderHeight),
		s.label.Render("("+d.LadderBreakdownDisplay+")"))

	b.WriteString("\n" + s.heading.Render("Standoff Distance") + "\n")
	line("Selected", d.Standoff)
	line("Range", d.RangeMin+" to "+d.RangeMax)
	fmt.Fprintf(&b, "  %s %s @ %s\n",
		s.label.Render("Selected SKU:"),
		s.value.Render(d.Part.SKU),
		d.Offset)

	b.WriteString("\n" + s.heading.Render("Preview / Derived") + "\n")
	line("Total ladder height", d.LadderHeight)
	line("Requested standoff", d.Standoff)
	line("Resolved standoff offset", d.Offset)
	line("Resolved standoff SKU", d.Part.SKU)
	b.WriteString("\n" + s.note.Render("Downstream inputs: requestedLadderHeightInches="+
		formatFloat(d.RequestedLadderHeightInches)+" requestedStandoffInches="+
		formatFloat(d.RequestedStandoffInches)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
