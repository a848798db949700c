package navigation

import (
	"testing"
)

func pageBounds() []Bounds {
	return []Bounds{
		{ID: Home, Top: 0, Height: 800},
		{ID: About, Top: 800, Height: 600},
		{ID: Projects, Top: 1400, Height: 1200},
		{ID: Contact, Top: 2600, Height: 500},
	}
}

func newMountedController(t *testing.T) (*Controller, *window) {
	t.Helper()
	w := newWindow()
	c := NewController(w)
	for _, b := range pageBounds() {
		c.Register(b)
	}
	t.Cleanup(c.Mount(w))
	return c, w
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{ID: About, Top: 800, Height: 600}

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"below window", 699, false},
		{"lower edge inclusive", 700, true},
		{"inside", 1000, true},
		{"just below upper edge", 1299.5, true},
		{"upper edge exclusive", 1300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.y); got != tt.want {
				t.Errorf("Contains(%v) = %v, expected %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestActiveAtFirstMatchWins(t *testing.T) {
	overlapping := []Bounds{
		{ID: About, Top: 500, Height: 1000},
		{ID: Projects, Top: 600, Height: 1000},
	}

	id, ok := ActiveAt(overlapping, 700)
	if !ok {
		t.Fatal("expected a match")
	}
	if id != About {
		t.Errorf("expected first section in document order %q, got %q", About, id)
	}
}

func TestActiveAtNoMatch(t *testing.T) {
	if _, ok := ActiveAt([]Bounds{{ID: Home, Top: 500, Height: 100}}, 0); ok {
		t.Error("expected no active section")
	}
}

func TestDefaultState(t *testing.T) {
	c := NewController(nil)
	got := c.State()
	if got.MobileMenuOpen {
		t.Error("expected mobile menu closed by default")
	}
	if got.ActiveSection != Home {
		t.Errorf("expected active section %q, got %q", Home, got.ActiveSection)
	}
}

func TestToggleMobileMenuTwiceRestoresState(t *testing.T) {
	c := NewController(nil)
	before := c.State()

	c.ToggleMobileMenu()
	if !c.State().MobileMenuOpen {
		t.Fatal("expected menu open after first toggle")
	}
	c.ToggleMobileMenu()

	if c.State() != before {
		t.Errorf("expected state %+v after two toggles, got %+v", before, c.State())
	}
}

func TestHandleScrollMarksExactlyMatchingLink(t *testing.T) {
	c, _ := newMountedController(t)

	c.HandleScroll(1350)

	marked := c.MarkedLinks()
	if len(marked) != 1 || marked[0] != Projects {
		t.Fatalf("expected only %q marked, got %v", Projects, marked)
	}
	if c.State().ActiveSection != Projects {
		t.Errorf("expected active section %q, got %q", Projects, c.State().ActiveSection)
	}

	c.HandleScroll(750)
	if c.LinkActive(Projects) {
		t.Error("expected previous mark to be cleared")
	}
	if !c.LinkActive(About) {
		t.Error("expected about link marked")
	}
}

func TestHandleScrollWithoutMatchClearsMarks(t *testing.T) {
	c, _ := newMountedController(t)
	c.HandleScroll(900)

	c.HandleScroll(5000)

	if got := c.MarkedLinks(); len(got) != 0 {
		t.Errorf("expected no marked links, got %v", got)
	}
	if c.State().ActiveSection != About {
		t.Errorf("expected last active section to be kept, got %q", c.State().ActiveSection)
	}
}

func TestNavigateScrollsAndClosesMenu(t *testing.T) {
	c, w := newMountedController(t)
	c.OpenMobileMenu()

	c.Navigate(Contact)

	if w.ScrollY() != 2600 {
		t.Errorf("expected viewport at 2600, got %v", w.ScrollY())
	}
	if c.State().MobileMenuOpen {
		t.Error("expected menu closed after navigation")
	}
	if c.State().ActiveSection != Contact {
		t.Errorf("expected scroll event to activate %q, got %q", Contact, c.State().ActiveSection)
	}
}

func TestNavigateClosesMenuRegardlessOfPriorState(t *testing.T) {
	c, _ := newMountedController(t)

	c.Navigate(About)

	if c.State().MobileMenuOpen {
		t.Error("expected menu to stay closed")
	}
}

func TestNavigateMissingSectionLeavesScroll(t *testing.T) {
	c, w := newMountedController(t)
	w.ScrollTo(300, false)
	c.OpenMobileMenu()

	c.Navigate(SectionID("gallery"))

	if w.ScrollY() != 300 {
		t.Errorf("expected viewport unchanged at 300, got %v", w.ScrollY())
	}
	if c.State().MobileMenuOpen {
		t.Error("expected menu closed even for missing section")
	}
}

func TestNavigateLatestClickWins(t *testing.T) {
	c, w := newMountedController(t)

	c.Navigate(Projects)
	c.Navigate(About)

	if w.ScrollY() != 800 {
		t.Errorf("expected viewport at about (800), got %v", w.ScrollY())
	}
}

func TestMountUnmountScopesListener(t *testing.T) {
	w := newWindow()
	c := NewController(w)
	for _, b := range pageBounds() {
		c.Register(b)
	}

	unmount := c.Mount(w)
	if w.Listeners() != 1 {
		t.Fatalf("expected 1 listener after mount, got %d", w.Listeners())
	}
	w.ScrollTo(900, true)
	if !c.LinkActive(About) {
		t.Fatal("expected mounted controller to react to scroll")
	}

	unmount()
	if w.Listeners() != 0 {
		t.Errorf("expected listener removed after unmount, got %d", w.Listeners())
	}
	if c.Mounted() {
		t.Error("expected controller to report unmounted")
	}

	w.ScrollTo(2700, true)
	if c.LinkActive(Contact) {
		t.Error("expected unmounted controller to ignore scroll")
	}
}

func TestMountTwiceReplacesSubscription(t *testing.T) {
	w := newWindow()
	c := NewController(w)

	c.Mount(w)
	c.Mount(w)

	if w.Listeners() != 1 {
		t.Errorf("expected a single listener, got %d", w.Listeners())
	}
	c.Unmount()
	c.Unmount()
	if w.Listeners() != 0 {
		t.Errorf("expected no listeners, got %d", w.Listeners())
	}
}

func TestRegisterUpdatesExistingBounds(t *testing.T) {
	c := NewController(nil)
	c.Register(Bounds{ID: Home, Top: 0, Height: 500})
	c.Register(Bounds{ID: About, Top: 500, Height: 500})
	c.Register(Bounds{ID: Home, Top: 0, Height: 900})

	got := c.Bounds()
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	if got[0].ID != Home || got[0].Height != 900 {
		t.Errorf("expected home updated in place, got %+v", got[0])
	}
}
