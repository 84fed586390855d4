package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/hotseat/pkg/config"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// ErrNoTheme is returned when a theme name matches neither the configured
// nor the built-in themes.
var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string
	SquareLight    tcell.Color
	SquareDark     tcell.Color
	SquareSelected tcell.Color
	SquareLastMove tcell.Color
	SquareCursor   tcell.Color
	WhitePiece     tcell.Color
	BlackPiece     tcell.Color
	StatusBg       tcell.Color
	StatusFg       tcell.Color
	Turn           tcell.Color
	ResetBg        tcell.Color
	ResetFg        tcell.Color
	Label          tcell.Color
}

// fmtHex returns "default" for ColorDefault and otherwise a standard hex,
// so ColorDefault survives a round trip through the config file instead of
// being read back as black.
func fmtHex(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "default"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

func parseColor(hex string, fallback tcell.Color) tcell.Color {
	hex = strings.TrimSpace(hex)
	switch hex {
	case "":
		return fallback
	case "default":
		return tcell.ColorDefault
	}
	return tcell.GetColor(hex)
}

// Spec converts a Theme to its hex form.
func (t Theme) Spec() config.ThemeSpec {
	return config.ThemeSpec{
		Name:           t.Name,
		SquareLight:    fmtHex(t.SquareLight),
		SquareDark:     fmtHex(t.SquareDark),
		SquareSelected: fmtHex(t.SquareSelected),
		SquareLastMove: fmtHex(t.SquareLastMove),
		SquareCursor:   fmtHex(t.SquareCursor),
		WhitePiece:     fmtHex(t.WhitePiece),
		BlackPiece:     fmtHex(t.BlackPiece),
		StatusBg:       fmtHex(t.StatusBg),
		StatusFg:       fmtHex(t.StatusFg),
		Turn:           fmtHex(t.Turn),
		ResetBg:        fmtHex(t.ResetBg),
		ResetFg:        fmtHex(t.ResetFg),
		Label:          fmtHex(t.Label),
	}
}

// ThemeFromSpec converts a hex theme. Colors left blank are taken from base.
func ThemeFromSpec(s config.ThemeSpec, base Theme) Theme {
	return Theme{
		Name:           s.Name,
		SquareLight:    parseColor(s.SquareLight, base.SquareLight),
		SquareDark:     parseColor(s.SquareDark, base.SquareDark),
		SquareSelected: parseColor(s.SquareSelected, base.SquareSelected),
		SquareLastMove: parseColor(s.SquareLastMove, base.SquareLastMove),
		SquareCursor:   parseColor(s.SquareCursor, base.SquareCursor),
		WhitePiece:     parseColor(s.WhitePiece, base.WhitePiece),
		BlackPiece:     parseColor(s.BlackPiece, base.BlackPiece),
		StatusBg:       parseColor(s.StatusBg, base.StatusBg),
		StatusFg:       parseColor(s.StatusFg, base.StatusFg),
		Turn:           parseColor(s.Turn, base.Turn),
		ResetBg:        parseColor(s.ResetBg, base.ResetBg),
		ResetFg:        parseColor(s.ResetFg, base.ResetFg),
		Label:          parseColor(s.Label, base.Label),
	}
}

// ImportThemes returns the theme named want, looking first at the
// configured themes and then at the built-in ones.
func ImportThemes(want string, themes []config.ThemeSpec) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return ThemeFromSpec(t, ThemeBasic), nil
		}
	}
	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:           "basic",
	SquareLight:    tcell.Color230,
	SquareDark:     tcell.Color188,
	SquareSelected: tcell.Color226,
	SquareLastMove: tcell.Color223,
	SquareCursor:   tcell.Color218,
	WhitePiece:     tcell.Color232,
	BlackPiece:     tcell.Color232,
	StatusBg:       tcell.ColorDefault,
	StatusFg:       tcell.Color247,
	Turn:           tcell.Color45,
	ResetBg:        tcell.Color45,
	ResetFg:        tcell.Color232,
	Label:          tcell.Color247,
}

// ThemeWood uses the brown board and blue controls of the desktop version.
var ThemeWood = Theme{
	Name:           "wood",
	SquareLight:    tcell.NewRGBColor(240, 217, 181),
	SquareDark:     tcell.NewRGBColor(181, 136, 99),
	SquareSelected: tcell.NewRGBColor(246, 246, 105),
	SquareLastMove: tcell.NewRGBColor(205, 210, 106),
	SquareCursor:   tcell.NewRGBColor(66, 135, 245),
	WhitePiece:     tcell.NewRGBColor(0, 0, 0),
	BlackPiece:     tcell.NewRGBColor(0, 0, 0),
	StatusBg:       tcell.NewRGBColor(255, 255, 255),
	StatusFg:       tcell.NewRGBColor(0, 0, 0),
	Turn:           tcell.NewRGBColor(66, 135, 245),
	ResetBg:        tcell.NewRGBColor(66, 135, 245),
	ResetFg:        tcell.NewRGBColor(255, 255, 255),
	Label:          tcell.NewRGBColor(0, 0, 0),
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeWood}
