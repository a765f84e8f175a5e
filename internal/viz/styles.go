// Package viz builds visualization payloads for the frontend renderer.
// It turns an analyzed graph into positioned, colored node and edge entries
// that a browser graph library can draw directly.
package viz

// Palette maps semantic color categories to hex values. The palette is
// presentation configuration passed into the builder; it is never stored on
// a graph.
type Palette map[string]string

const (
	colorAbstract   = "abstract"
	colorSurface    = "surface"
	colorHighlight  = "highlight"
	colorTop        = "top"
	colorDefault    = "default"
	colorLabelMatch = "labelMatch"
)

// DefaultPalette returns the stock colors used when no overrides are
// configured.
func DefaultPalette() Palette {
	return Palette{
		colorAbstract:   "#40c5e6",
		colorSurface:    "#40e661",
		colorHighlight:  "#e66140",
		colorTop:        "#e640c5",
		colorDefault:    "#bababa",
		colorLabelMatch: "#107c26",
	}
}

// Merge returns a copy of the default palette with the given overrides
// applied. Unknown categories are carried through untouched so a config can
// introduce frontend-only colors.
func Merge(overrides map[string]string) Palette {
	p := DefaultPalette()
	for name, hex := range overrides {
		p[name] = hex
	}
	return p
}

func (p Palette) get(name string) string {
	if hex, ok := p[name]; ok {
		return hex
	}
	return p[colorDefault]
}
