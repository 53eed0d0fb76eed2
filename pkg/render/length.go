package render

import (
	"strconv"
)

// Unit is the unit of a Length.
type Unit uint8

const (
	// Auto means the length is unset and left to the renderer.
	Auto Unit = iota
	Pixels
	Percent
)

// Length is a pixel or percentage measure. The zero value is Auto.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a length in pixels.
func Px(v float64) Length { return Length{Value: v, Unit: Pixels} }

// Pct returns a length as a percentage of the parent.
func Pct(v float64) Length { return Length{Value: v, Unit: Percent} }

// IsZero reports whether l is unset.
func (l Length) IsZero() bool { return l.Unit == Auto }

func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	switch l.Unit {
	case Pixels:
		return v + "px"
	case Percent:
		return v + "%"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Edges holds per-side lengths for position and margin.
type Edges struct {
	Top    Length `yaml:"top,omitempty"`
	Right  Length `yaml:"right,omitempty"`
	Bottom Length `yaml:"bottom,omitempty"`
	Left   Length `yaml:"left,omitempty"`
}

// IsZero reports whether no side is set.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
