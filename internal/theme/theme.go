// Package theme resolves the color palette RenderSideBySide paints a diff
// with into internal/diffview.Style values. Colors are plain lipgloss.Color
// strings, the same way internal/app picks its pane border and cursor colors
// (ANSI 256 indices, occasionally true color hex) — there is no color math
// here, only a named table and a few derived combinations.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"splitdiff/internal/diffview"
)

// Palette names every color a side-by-side render touches. Field names
// describe role, not hue, so a dark-background and light-background Palette
// can both satisfy the same shape.
type Palette struct {
	RemovedText       lipgloss.Color
	RemovedBackground lipgloss.Color
	RemovedEmphasis   lipgloss.Color

	AddedText       lipgloss.Color
	AddedBackground lipgloss.Color
	AddedEmphasis   lipgloss.Color

	ContextText lipgloss.Color

	MinusMarker lipgloss.Color
	PlusMarker  lipgloss.Color

	// RemovedEmptyMarker/AddedEmptyMarker color the glyph painted over a
	// blank line that was itself removed or added, distinguishing it from an
	// unpaired row's plain padding.
	RemovedEmptyMarker lipgloss.Color
	AddedEmptyMarker   lipgloss.Color

	LineNumber lipgloss.Color
}

// Default mirrors the muted, high-contrast palette delta ships with: dimmed
// red/green backgrounds for whole changed lines, brighter foregrounds on the
// word-level emphasis spans that sit inside them.
func Default() Palette {
	return Palette{
		RemovedText:       lipgloss.Color("203"),
		RemovedBackground: lipgloss.Color("52"),
		RemovedEmphasis:   lipgloss.Color("217"),

		AddedText:       lipgloss.Color("120"),
		AddedBackground: lipgloss.Color("22"),
		AddedEmphasis:   lipgloss.Color("157"),

		ContextText: lipgloss.Color("244"),

		MinusMarker: lipgloss.Color("203"),
		PlusMarker:  lipgloss.Color("120"),

		RemovedEmptyMarker: lipgloss.Color("88"),
		AddedEmptyMarker:   lipgloss.Color("28"),

		LineNumber: lipgloss.Color("245"),
	}
}

// HighContrast swaps in stronger backgrounds for terminals/users that find
// Default too subtle, keeping the same role names.
func HighContrast() Palette {
	p := Default()
	p.RemovedBackground = lipgloss.Color("88")
	p.AddedBackground = lipgloss.Color("28")
	p.RemovedText = lipgloss.Color("196")
	p.AddedText = lipgloss.Color("46")
	return p
}

// Styles builds the diffview.RenderStyles a render pass needs from a
// palette. The whole-line minus/plus styles carry a background so the
// padder extends it to the panel's right edge (diffview.Style.HasBackground);
// context and emphasis deliberately don't.
func (p Palette) Styles() diffview.RenderStyles {
	minus := diffview.WithBackground(diffview.Style{
		Foreground: p.RemovedText,
		HasFg:      true,
	}, p.RemovedBackground)

	plus := diffview.WithBackground(diffview.Style{
		Foreground: p.AddedText,
		HasFg:      true,
	}, p.AddedBackground)

	emphasis := diffview.Style{
		Foreground: p.RemovedEmphasis,
		HasFg:      true,
		Bold:       true,
	}

	context := diffview.Style{
		Foreground: p.ContextText,
		HasFg:      true,
	}

	return diffview.RenderStyles{
		Minus:    minus,
		Plus:     plus,
		Context:  context,
		Emphasis: emphasis,
		Markers: diffview.MarkerStyle{
			Minus: diffview.Style{Foreground: p.MinusMarker, HasFg: true, Bold: true},
			Plus:  diffview.Style{Foreground: p.PlusMarker, HasFg: true, Bold: true},
		},
		EmptyMarker: diffview.MarkerStyle{
			Minus: diffview.WithBackground(diffview.Style{Foreground: p.RemovedEmptyMarker, HasFg: true}, p.RemovedBackground),
			Plus:  diffview.WithBackground(diffview.Style{Foreground: p.AddedEmptyMarker, HasFg: true}, p.AddedBackground),
		},
	}
}

// EmphasisFor returns the emphasis style for the given diff side: the
// removed-side emphasis is brighter red, the added-side is brighter green.
// RenderStyles only has one Emphasis slot (render.go always pairs it with
// Styles.Minus for the old/pre-image side); callers building both sides of a
// changed-line highlight directly, rather than through RenderSideBySide, use
// this to get the added-side's own emphasis color.
func (p Palette) EmphasisFor(side diffview.Side) diffview.Style {
	if side == diffview.Right {
		return diffview.Style{Foreground: p.AddedEmphasis, HasFg: true, Bold: true}
	}
	return diffview.Style{Foreground: p.RemovedEmphasis, HasFg: true, Bold: true}
}
