// Package atlas maps logical image regions to normalized texture coordinates.
//
// A [Section] describes a rectangle inside a larger texture sheet in pixel
// units. [UVs] converts it to the eight-value UV list consumed by the scene
// renderer: bottom-left, top-left, top-right, bottom-right, each as (u, v)
// with v measured from the bottom of the sheet.
package atlas

// Section cuts a rectangular region out of a texture sheet.
type Section struct {
	AtlasWidth   float64 `yaml:"atlasWidth,omitempty"`
	AtlasHeight  float64 `yaml:"atlasHeight,omitempty"`
	SourceLeft   float64 `yaml:"sourceLeft"`
	SourceTop    float64 `yaml:"sourceTop"`
	SourceWidth  float64 `yaml:"sourceWidth"`
	SourceHeight float64 `yaml:"sourceHeight"`
}

// InSheet returns a copy of s placed on a sheet of the given size.
func (s Section) InSheet(width, height float64) Section {
	s.AtlasWidth = width
	s.AtlasHeight = height
	return s
}

// Valid reports whether the section can be mapped.
func (s Section) Valid() bool {
	return s.AtlasWidth > 0 && s.AtlasHeight > 0 && s.SourceWidth > 0 && s.SourceHeight > 0
}

// UVs returns the texture coordinates for s. A nil or degenerate section
// yields nil, which renderers treat as "use the whole texture".
func UVs(s *Section) []float64 {
	if s == nil || !s.Valid() {
		return nil
	}
	left := s.SourceLeft / s.AtlasWidth
	right := (s.SourceLeft + s.SourceWidth) / s.AtlasWidth
	bottom := (s.AtlasHeight - s.SourceTop - s.SourceHeight) / s.AtlasHeight
	top := (s.AtlasHeight - s.SourceTop) / s.AtlasHeight
	return []float64{
		left, bottom,
		left, top,
		right, top,
		right, bottom,
	}
}
