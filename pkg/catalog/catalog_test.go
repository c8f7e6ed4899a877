package catalog

import "testing"

func TestAddAssignsUniqueIDs(t *testing.T) {
	c := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, ok := c.Add("Corte de Cabello", 20)
		if !ok {
			t.Fatalf("add failed at %d", i)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate id: %q", s.ID)
		}
		seen[s.ID] = true
	}
	if c.Len() != 50 {
		t.Fatalf("expected 50 services, got %d", c.Len())
	}
}

func TestAddRejectsEmptyName(t *testing.T) {
	c := New()
	if _, ok := c.Add("   ", 10); ok {
		t.Fatalf("blank name must be rejected")
	}
	if c.Len() != 0 {
		t.Fatalf("rejected add must not mutate")
	}
}

func TestUpdateKeepsIDAndPosition(t *testing.T) {
	c := New(
		Service{Name: "Corte de Cabello", Price: 20},
		Service{Name: "Tinte Capilar", Price: 50},
	)
	first := c.List()[0]

	updated, ok := c.Update(first.ID, "Corte Premium", 25)
	if !ok {
		t.Fatalf("update failed")
	}
	if updated.ID != first.ID {
		t.Fatalf("update must preserve id")
	}
	list := c.List()
	if list[0].Name != "Corte Premium" || list[0].Price != 25 {
		t.Fatalf("update not applied in place: %+v", list[0])
	}
	if list[1].Name != "Tinte Capilar" || list[1].Price != 50 {
		t.Fatalf("other services must be unaffected: %+v", list[1])
	}
}

func TestDeleteLastServiceLeavesUsableCatalog(t *testing.T) {
	c := New(Service{Name: "Corte de Cabello", Price: 20})
	id := c.List()[0].ID
	if !c.Delete(id) {
		t.Fatalf("delete failed")
	}
	if c.Len() != 0 {
		t.Fatalf("catalog should be empty")
	}
	if got := c.List(); len(got) != 0 {
		t.Fatalf("empty catalog must list empty, got %v", got)
	}
	if _, ok := c.Add("Nuevo", 5); !ok {
		t.Fatalf("catalog must stay usable after emptying")
	}
}

func TestDeletedIDIsNeverReused(t *testing.T) {
	c := New()
	s, _ := c.Add("Diseño de Barba", 15)
	c.Delete(s.ID)
	for i := 0; i < 20; i++ {
		next, _ := c.Add("Diseño de Barba", 15)
		if next.ID == s.ID {
			t.Fatalf("deleted id reused: %q", s.ID)
		}
	}
}
