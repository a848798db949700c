package navigation

// SectionID names a vertically stacked region of the page that navigation can target.
type SectionID string

const (
	Home     SectionID = "home"
	About    SectionID = "about"
	Projects SectionID = "projects"
	Contact  SectionID = "contact"
)

type Section struct {
	ID    SectionID
	Label string
}

var sections = []Section{
	{ID: Home, Label: "Home"},
	{ID: About, Label: "About"},
	{ID: Projects, Label: "Projects"},
	{ID: Contact, Label: "Contact"},
}

// Sections returns the navigable sections in document order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ActivationOffset shifts every section's activation window up by this many
// pixels so a section highlights slightly before its top edge reaches the viewport.
const ActivationOffset = 100.0

// Bounds is a section's vertical extent in document coordinates.
type Bounds struct {
	ID     SectionID
	Top    float64
	Height float64
}

// Contains reports whether scroll offset y falls in [Top-100, Top+Height-100).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top-ActivationOffset && y < b.Top+b.Height-ActivationOffset
}

// ActiveAt returns the first section, in the given order, whose activation
// window contains y.
func ActiveAt(bounds []Bounds, y float64) (SectionID, bool) {
	for _, b := range bounds {
		if b.Contains(y) {
			return b.ID, true
		}
	}
	return "", false
}
