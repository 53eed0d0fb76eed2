package render

import (
	"github.com/go-drift/sceneui/pkg/graphics"
)

// Display controls whether a node takes part in layout.
type Display string

const (
	DisplayFlex Display = "flex"
	DisplayNone Display = "none"
)

// DisplayIf maps a visibility flag to a Display value.
func DisplayIf(visible bool) Display {
	if visible {
		return DisplayFlex
	}
	return DisplayNone
}

// PositionType selects how Position is interpreted.
type PositionType string

const (
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
)

// FlexDirection is the main axis for children.
type FlexDirection string

const (
	FlexRow    FlexDirection = "row"
	FlexColumn FlexDirection = "column"
)

// Align positions children on the cross axis.
type Align string

const (
	AlignCenter Align = "center"
)

// Justify positions children on the main axis.
type Justify string

const (
	JustifyCenter Justify = "center"
)

// TextAlign anchors text inside its box, as "vertical-horizontal".
type TextAlign string

const (
	AlignTopRight     TextAlign = "top-right"
	AlignMiddleLeft   TextAlign = "middle-left"
	AlignMiddleCenter TextAlign = "middle-center"
	AlignBottomCenter TextAlign = "bottom-center"
	AlignBottomRight  TextAlign = "bottom-right"
)

// TextureMode selects how a texture fills its box.
type TextureMode string

const (
	TextureStretch TextureMode = "stretch"
)

// Transform is the layout description of a node.
type Transform struct {
	Display        Display       `yaml:"display,omitempty"`
	PositionType   PositionType  `yaml:"positionType,omitempty"`
	Position       Edges         `yaml:"position,omitempty"`
	Margin         Edges         `yaml:"margin,omitempty"`
	Width          Length        `yaml:"width,omitempty"`
	Height         Length        `yaml:"height,omitempty"`
	MaxWidth       Length        `yaml:"maxWidth,omitempty"`
	FlexDirection  FlexDirection `yaml:"flexDirection,omitempty"`
	AlignItems     Align         `yaml:"alignItems,omitempty"`
	JustifyContent Justify       `yaml:"justifyContent,omitempty"`
}

// IsZero lets YAML dumps omit empty transforms.
func (t Transform) IsZero() bool {
	return t == Transform{}
}

// Background paints a node with a colour, a texture region, or both.
type Background struct {
	Texture     string         `yaml:"texture,omitempty"`
	TextureMode TextureMode    `yaml:"textureMode,omitempty"`
	UVs         []float64      `yaml:"uvs,omitempty,flow"`
	Color       graphics.Color `yaml:"color,omitempty"`
}

// Label is the text payload of a KindLabel node.
type Label struct {
	Value     string         `yaml:"value"`
	Font      string         `yaml:"font,omitempty"`
	FontSize  float64        `yaml:"fontSize,omitempty"`
	Color     graphics.Color `yaml:"color,omitempty"`
	TextAlign TextAlign      `yaml:"textAlign,omitempty"`
}

// Input is the payload of a KindInput node.
type Input struct {
	Placeholder      string         `yaml:"placeholder,omitempty"`
	PlaceholderColor graphics.Color `yaml:"placeholderColor,omitempty"`
	Font             string         `yaml:"font,omitempty"`
	FontSize         float64        `yaml:"fontSize,omitempty"`
	Color            graphics.Color `yaml:"color,omitempty"`
	TextAlign        TextAlign      `yaml:"textAlign,omitempty"`

	// OnChange receives the full text after every edit.
	OnChange func(value string) `yaml:"-"`
}
