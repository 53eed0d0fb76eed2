// Package theme defines the closed sets of visual styles offered by the
// widgets and maps each style to the atlas regions it draws with.
//
// Style values are strings so they read naturally in configuration. Every
// style maps deterministically to one region name in the resources table.
package theme

// Brightness is the tone of a prompt background.
type Brightness int

const (
	// BrightnessLight is dark text on a light background.
	BrightnessLight Brightness = iota
	// BrightnessDark is light text on a dark background.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// PromptStyle picks the colour, shape and size of a prompt.
type PromptStyle string

const (
	PromptLight        PromptStyle = "light"
	PromptDark         PromptStyle = "dark"
	PromptLightLarge   PromptStyle = "lightlarge"
	PromptDarkLarge    PromptStyle = "darklarge"
	PromptLightSlanted PromptStyle = "lightslanted"
	PromptDarkSlanted  PromptStyle = "darkslanted"
)

// CloseIconStyle picks the close glyph drawn in a prompt corner.
type CloseIconStyle string

const (
	// CloseWhite is drawn on dark backgrounds.
	CloseWhite CloseIconStyle = "closeW"
	// CloseDark is drawn on light backgrounds.
	CloseDark CloseIconStyle = "closeD"
)

// Region returns the icon region for the style.
func (s CloseIconStyle) Region() string { return string(s) }

// Background region names.
const (
	BackgroundPrompt        = "promptBackground"
	BackgroundPromptLarge   = "promptLargeBackground"
	BackgroundPromptSlanted = "promptSlantedBackground"
)

// Close icon offsets from the prompt's top-right corner.
const (
	DefaultCloseOffset = 10
	SlantedCloseOffset = 15
)

// PromptTheme is what a PromptStyle resolves to.
type PromptTheme struct {
	// Background is the background region name.
	Background string
	// Brightness selects the atlas texture and default text colour.
	Brightness Brightness
	// CloseIcon is the close glyph for this background.
	CloseIcon CloseIconStyle
	// CloseOffset is the close icon's distance from the right edge.
	CloseOffset float64
}

// Dark reports whether children should default to light-on-dark colours.
func (t PromptTheme) Dark() bool {
	return t.Brightness == BrightnessDark
}

// DefaultPromptTheme is the theme of PromptLight, used when a style is not
// recognised.
func DefaultPromptTheme() PromptTheme {
	return PromptTheme{
		Background:  BackgroundPrompt,
		Brightness:  BrightnessLight,
		CloseIcon:   CloseDark,
		CloseOffset: DefaultCloseOffset,
	}
}

// ResolvePrompt maps a style to its theme. ok is false for an unknown style,
// in which case the default light theme is returned unchanged.
func ResolvePrompt(style PromptStyle) (t PromptTheme, ok bool) {
	t = DefaultPromptTheme()
	switch style {
	case PromptLight:
	case PromptDark:
		t.Brightness, t.CloseIcon = BrightnessDark, CloseWhite
	case PromptLightLarge:
		t.Background = BackgroundPromptLarge
	case PromptDarkLarge:
		t.Background = BackgroundPromptLarge
		t.Brightness, t.CloseIcon = BrightnessDark, CloseWhite
	case PromptLightSlanted:
		t.Background = BackgroundPromptSlanted
		t.CloseOffset = SlantedCloseOffset
	case PromptDarkSlanted:
		t.Background = BackgroundPromptSlanted
		t.Brightness, t.CloseIcon = BrightnessDark, CloseWhite
		t.CloseOffset = SlantedCloseOffset
	default:
		return t, false
	}
	return t, true
}

// IconSize is a square icon preset in pixels.
type IconSize int

const (
	IconSmall  IconSize = 32
	IconMedium IconSize = 64
	IconLarge  IconSize = 128
)
