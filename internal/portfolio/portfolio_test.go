package portfolio

import "testing"

func TestFeaturedReturnsOnlyFeaturedInIndexOrder(t *testing.T) {
	catalog, err := NewCatalog([]Project{
		{Title: "c", Index: 7, Featured: true},
		{Title: "a", Index: 1, Featured: true},
		{Title: "skip", Index: 3, Featured: false},
		{Title: "b", Index: 4, Featured: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	featured := catalog.Featured()
	want := []string{"a", "b", "c"}
	if len(featured) != len(want) {
		t.Fatalf("expected %d featured projects, got %d", len(want), len(featured))
	}
	for i, p := range featured {
		if p.Title != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], p.Title)
		}
		if !p.Featured {
			t.Errorf("position %d: non-featured project %q returned", i, p.Title)
		}
	}
}

func TestFeaturedEmptyWhenNoneFlagged(t *testing.T) {
	catalog, err := NewCatalog([]Project{{Index: 0}, {Index: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := catalog.Featured(); len(got) != 0 {
		t.Errorf("expected no featured projects, got %d", len(got))
	}
}

func TestNewCatalogRejectsDuplicateIndex(t *testing.T) {
	_, err := NewCatalog([]Project{{Title: "a", Index: 2}, {Title: "b", Index: 2}})
	if err == nil {
		t.Fatal("expected error for duplicate index")
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	input := []Project{{Title: "original", Index: 0, Featured: true}}
	catalog, err := NewCatalog(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input[0].Title = "mutated"
	all := catalog.All()
	all[0].Title = "mutated again"

	p, ok := catalog.ByIndex(0)
	if !ok {
		t.Fatal("expected project at index 0")
	}
	if p.Title != "original" {
		t.Errorf("expected catalog to keep %q, got %q", "original", p.Title)
	}
}

func TestByIndexMissing(t *testing.T) {
	catalog, _ := NewCatalog(DefaultProjects())
	if _, ok := catalog.ByIndex(42); ok {
		t.Error("expected lookup of unknown index to fail")
	}
}

func TestDefaultProjectsAllFeatured(t *testing.T) {
	catalog, err := NewCatalog(DefaultProjects())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != len(VideoPaths) {
		t.Fatalf("expected %d projects, got %d", len(VideoPaths), catalog.Len())
	}
	featured := catalog.Featured()
	for i, p := range featured {
		if p.Index != i {
			t.Errorf("expected index %d at position %d, got %d", i, i, p.Index)
		}
		if p.VideoURL != VideoPaths[i] {
			t.Errorf("expected video %q, got %q", VideoPaths[i], p.VideoURL)
		}
	}
}
