// Package resources holds the read-only constant tables shared by every
// widget: atlas sheet size, region coordinates, texture paths, the default
// font and theme text colours.
//
// The built-in table is embedded and parsed once by [Default]. Widgets take
// a *Table in their configuration and fall back to Default when it is nil,
// so tests and custom scenes can inject their own table without touching
// global state.
package resources

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sceneui/pkg/atlas"
	"github.com/go-drift/sceneui/pkg/errors"
	"github.com/go-drift/sceneui/pkg/graphics"
)

//go:embed resources.yaml
var embedded []byte

// Region groups in the table.
const (
	GroupBackgrounds = "backgrounds"
	GroupButtons     = "buttons"
	GroupCheckboxes  = "checkboxes"
	GroupSwitches    = "switches"
	GroupIcons       = "icons"
)

// supportedMajor is the only table major version this package understands.
const supportedMajor = "v1"

// Table is a parsed resource table. It must not be modified after parsing.
type Table struct {
	Version  string                              `yaml:"version"`
	Atlas    Sheet                               `yaml:"atlas"`
	Textures Textures                            `yaml:"textures"`
	Fonts    Fonts                               `yaml:"fonts"`
	Colors   Colors                              `yaml:"colors"`
	Regions  map[string]map[string]atlas.Section `yaml:"regions"`
}

// Sheet is the pixel size of the atlas texture every region is cut from.
type Sheet struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Textures names the light and dark atlas images.
type Textures struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Fonts names the fonts used by text widgets.
type Fonts struct {
	Default string `yaml:"default"`
}

// Colors holds the theme text colours.
type Colors struct {
	// Text is used on light backgrounds.
	Text graphics.Color `yaml:"text"`
	// TextOnDark is used on dark backgrounds.
	TextOnDark graphics.Color `yaml:"textOnDark"`
	// Disabled is used for grayed-out labels.
	Disabled graphics.Color `yaml:"disabled"`
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("resources: embedded table is invalid: %v", err))
	}
	return t
})

// Default returns the embedded table. It is parsed on first use.
func Default() *Table {
	return defaultTable()
}

// Or returns t, or the default table when t is nil.
func Or(t *Table) *Table {
	if t == nil {
		return Default()
	}
	return t
}

// Load reads and parses a table from r.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource table: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML resource table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse resource table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Table) validate() error {
	v := strings.TrimSpace(t.Version)
	if !semver.IsValid(v) {
		return fmt.Errorf("resource table version %q is not a semantic version", t.Version)
	}
	if major := semver.Major(v); major != supportedMajor {
		return fmt.Errorf("resource table version %s is not supported (want %s.x)", v, supportedMajor)
	}
	if t.Atlas.Width <= 0 || t.Atlas.Height <= 0 {
		return fmt.Errorf("atlas size %gx%g must be positive", t.Atlas.Width, t.Atlas.Height)
	}
	if t.Textures.Light == "" || t.Textures.Dark == "" {
		return fmt.Errorf("both light and dark textures are required")
	}
	for _, group := range t.Groups() {
		for name, s := range t.Regions[group] {
			if s.SourceWidth <= 0 || s.SourceHeight <= 0 {
				return fmt.Errorf("region %s/%s has an empty size", group, name)
			}
			if s.SourceLeft+s.SourceWidth > t.Atlas.Width || s.SourceTop+s.SourceHeight > t.Atlas.Height {
				return fmt.Errorf("region %s/%s lies outside the atlas", group, name)
			}
		}
	}
	return nil
}

// Groups returns the region group names in sorted order.
func (t *Table) Groups() []string {
	groups := make([]string, 0, len(t.Regions))
	for g := range t.Regions {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Has reports whether the table defines the named region.
func (t *Table) Has(group, name string) bool {
	_, ok := t.Regions[group][name]
	return ok
}

// Section returns the named region placed on the atlas sheet. An unknown
// region is reported through the error handler and yields the zero section,
// which maps to no UVs.
func (t *Table) Section(group, name string) atlas.Section {
	s, ok := t.Regions[group][name]
	if !ok {
		errors.Report(&errors.UIError{
			Op:   "resources.Section",
			Kind: errors.KindAtlas,
			Key:  group + "/" + name,
			Err:  &errors.LookupError{Group: group, Name: name},
		})
		return atlas.Section{}
	}
	return s.InSheet(t.Atlas.Width, t.Atlas.Height)
}

// UVs maps the named region to texture coordinates.
func (t *Table) UVs(group, name string) []float64 {
	s := t.Section(group, name)
	return atlas.UVs(&s)
}

// Texture returns the atlas image for the given theme.
func (t *Table) Texture(dark bool) string {
	if dark {
		return t.Textures.Dark
	}
	return t.Textures.Light
}

// TextColor returns the default text colour for the given theme.
func (t *Table) TextColor(dark bool) graphics.Color {
	if dark {
		return t.Colors.TextOnDark
	}
	return t.Colors.Text
}

// WithSheet returns a copy of t whose regions are cut from a sheet of the
// given size. Use it together with [SheetSize] for custom atlas images. The
// copy is validated again, so a sheet too small for the table's regions is
// an error.
func (t *Table) WithSheet(width, height float64) (*Table, error) {
	c := *t
	c.Atlas = Sheet{Width: width, Height: height}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("atlas sheet %gx%g: %w", width, height, err)
	}
	return &c, nil
}
