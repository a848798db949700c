package navigation

import "log/slog"

// State is the page shell's interaction state. It resets on every page load.
type State struct {
	MobileMenuOpen bool      `json:"mobileMenuOpen"`
	ActiveSection  SectionID `json:"activeSection"`
}

func DefaultState() State {
	return State{MobileMenuOpen: false, ActiveSection: Home}
}

// Controller owns the registered section bounds and the navigation state. It is
// driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	bounds   []Bounds
	state    State
	marked   map[SectionID]bool
	scroller Scroller
	detach   func()
}

func NewController(scroller Scroller) *Controller {
	return &Controller{
		state:    DefaultState(),
		marked:   make(map[SectionID]bool),
		scroller: scroller,
	}
}

// Register adds a section in document order, or updates its bounds in place
// when the id is already registered.
func (c *Controller) Register(b Bounds) {
	for i := range c.bounds {
		if c.bounds[i].ID == b.ID {
			c.bounds[i] = b
			return
		}
	}
	c.bounds = append(c.bounds, b)
}

func (c *Controller) Bounds() []Bounds {
	out := make([]Bounds, len(c.bounds))
	copy(out, c.bounds)
	return out
}

func (c *Controller) State() State { return c.state }

func (c *Controller) ToggleMobileMenu() {
	c.state.MobileMenuOpen = !c.state.MobileMenuOpen
}

func (c *Controller) OpenMobileMenu() { c.state.MobileMenuOpen = true }

func (c *Controller) CloseMobileMenu() { c.state.MobileMenuOpen = false }

// HandleScroll clears every link mark, then marks the link of the section whose
// activation window contains y. With no match nothing is marked and the last
// active section is kept.
func (c *Controller) HandleScroll(y float64) {
	clear(c.marked)
	id, ok := ActiveAt(c.bounds, y)
	if !ok {
		return
	}
	c.marked[id] = true
	c.state.ActiveSection = id
}

func (c *Controller) LinkActive(id SectionID) bool { return c.marked[id] }

// MarkedLinks returns the marked links in document order.
func (c *Controller) MarkedLinks() []SectionID {
	var out []SectionID
	for _, b := range c.bounds {
		if c.marked[b.ID] {
			out = append(out, b.ID)
		}
	}
	return out
}

// Navigate smooth-scrolls to the section's top edge and closes the mobile menu.
// Unknown sections leave the viewport untouched; the menu still closes.
func (c *Controller) Navigate(id SectionID) {
	defer c.CloseMobileMenu()

	for _, b := range c.bounds {
		if b.ID == id {
			if c.scroller != nil {
				c.scroller.ScrollTo(b.Top, true)
			}
			return
		}
	}
	slog.Debug("navigation: section not registered", "section", id)
}

// Mount attaches the scroll handler to src for the controller's mounted
// lifetime. Mounting again replaces the previous subscription. The returned
// func detaches the handler.
func (c *Controller) Mount(src ScrollSource) func() {
	c.Unmount()
	c.detach = src.OnScroll(c.HandleScroll)
	return c.Unmount
}

func (c *Controller) Unmount() {
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
}

func (c *Controller) Mounted() bool { return c.detach != nil }
