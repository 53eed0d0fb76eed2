package theme

import "strings"

// ButtonStyle picks a button's look. E and F are the action-key styles.
type ButtonStyle string

const (
	ButtonE            ButtonStyle = "E"
	ButtonF            ButtonStyle = "F"
	ButtonDark         ButtonStyle = "dark"
	ButtonRed          ButtonStyle = "red"
	ButtonRoundBlack   ButtonStyle = "roundBlack"
	ButtonRoundWhite   ButtonStyle = "roundWhite"
	ButtonRoundSilver  ButtonStyle = "roundSilver"
	ButtonRoundGold    ButtonStyle = "roundGold"
	ButtonSquareBlack  ButtonStyle = "squareBlack"
	ButtonSquareWhite  ButtonStyle = "squareWhite"
	ButtonSquareSilver ButtonStyle = "squareSilver"
	ButtonSquareGold   ButtonStyle = "squareGold"
)

// IsAction reports whether the style carries an action-key glyph.
func (s ButtonStyle) IsAction() bool {
	return s == ButtonE || s == ButtonF
}

// Region returns the button background region.
func (s ButtonStyle) Region() string {
	switch s {
	case ButtonE:
		return "buttonE"
	case ButtonF:
		return "buttonF"
	}
	return string(s)
}

// GlyphRegion returns the action-key glyph region. Only meaningful when
// IsAction is true.
func (s ButtonStyle) GlyphRegion() string {
	return string(s)
}

// LightFace reports whether the button background is white, which calls
// for dark label text.
func (s ButtonStyle) LightFace() bool {
	return s == ButtonRoundWhite || s == ButtonSquareWhite
}

// BarStyle picks the frame of a progress bar.
type BarStyle string

const (
	BarRoundBlack   BarStyle = "roundBlack"
	BarRoundWhite   BarStyle = "roundWhite"
	BarRoundSilver  BarStyle = "roundSilver"
	BarRoundGold    BarStyle = "roundGold"
	BarSquareBlack  BarStyle = "squareBlack"
	BarSquareWhite  BarStyle = "squareWhite"
	BarSquareSilver BarStyle = "squareSilver"
	BarSquareGold   BarStyle = "squareGold"
)

// Region returns the frame region; bars share regions with buttons.
func (s BarStyle) Region() string { return string(s) }

// FillRegion returns the region drawn under the fill colour.
func (s BarStyle) FillRegion() string {
	if s.Round() {
		return string(ButtonRoundWhite)
	}
	return string(ButtonSquareWhite)
}

// Round reports whether the bar has rounded ends.
func (s BarStyle) Round() bool {
	return strings.HasPrefix(string(s), "round")
}

// EvenBorder reports whether the frame has the same border on every side.
// Black and white frames do; silver and gold ones have a thicker bottom.
func (s BarStyle) EvenBorder() bool {
	switch s {
	case BarRoundWhite, BarRoundBlack, BarSquareWhite, BarSquareBlack:
		return true
	}
	return false
}

// SwitchStyle picks the colour and shape of a switch when on.
type SwitchStyle string

const (
	SwitchRoundGreen  SwitchStyle = "roundGreen"
	SwitchRoundRed    SwitchStyle = "roundRed"
	SwitchSquareGreen SwitchStyle = "squareGreen"
	SwitchSquareRed   SwitchStyle = "squareRed"
)

// Region returns the switch region for the given state.
func (s SwitchStyle) Region(checked bool) string {
	if checked {
		return string(s)
	}
	if s == SwitchRoundGreen || s == SwitchRoundRed {
		return "roundOff"
	}
	return "squareOff"
}

// CheckboxRegion returns the checkbox region. Dark prompts use the white
// box.
func CheckboxRegion(b Brightness, large, checked bool) string {
	prefix := "d"
	if b == BrightnessDark {
		prefix = "w"
	}
	size := ""
	if large {
		size = "Large"
	}
	state := "Off"
	if checked {
		state = "On"
	}
	return prefix + size + state
}
