package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestAddAssignsMonotonicIDs(t *testing.T) {
	s := NewInventoryStore()

	prev := 0
	for i := 0; i < 5; i++ {
		item := s.Add(fmt.Sprintf("item-%d", i), i)
		if item.ID <= prev {
			t.Fatalf("expected id > %d, got %d", prev, item.ID)
		}
		prev = item.ID
	}
}

func TestGetAfterAdd(t *testing.T) {
	s := NewInventoryStore()

	added := s.Add("Widget", 7)
	got, err := s.Get(added.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Name != "Widget" || got.Stock != 7 {
		t.Errorf("got %+v, want name=Widget stock=7", got)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Errorf("created_at changed between Add and Get")
	}
	if got.UpdatedAt != nil {
		t.Errorf("expected nil updated_at before first update, got %v", got.UpdatedAt)
	}
}

func TestGetMissing(t *testing.T) {
	s := NewInventoryStore()

	if _, err := s.Get(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddTrimsName(t *testing.T) {
	s := NewInventoryStore()

	item := s.Add("  Widget  ", 1)
	if item.Name != "Widget" {
		t.Errorf("expected trimmed name, got %q", item.Name)
	}
}

func TestUpdate(t *testing.T) {
	s := NewInventoryStore()
	added := s.Add("Widget", 5)

	updated, err := s.Update(added.ID, "Gadget", 9)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "Gadget" || updated.Stock != 9 {
		t.Errorf("got %+v, want name=Gadget stock=9", updated)
	}
	if updated.ID != added.ID {
		t.Errorf("id changed on update: %d -> %d", added.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(added.CreatedAt) {
		t.Errorf("created_at changed on update")
	}
	if updated.UpdatedAt == nil {
		t.Fatal("expected updated_at to be set")
	}
}

func TestUpdateMissing(t *testing.T) {
	s := NewInventoryStore()

	if _, err := s.Update(42, "x", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRetiresID(t *testing.T) {
	s := NewInventoryStore()
	first := s.Add("Widget", 5)

	deleted, err := s.Delete(first.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != first.ID || deleted.Name != "Widget" {
		t.Errorf("unexpected deleted snapshot: %+v", deleted)
	}

	if _, err := s.Get(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// A later add must not resurrect the retired id.
	next := s.Add("Gadget", 1)
	if next.ID <= first.ID {
		t.Errorf("expected fresh id > %d, got %d", first.ID, next.ID)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := NewInventoryStore()

	if _, err := s.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := NewInventoryStore()
	s.Add("a", 1)
	s.Add("b", 2)
	s.Add("c", 3)

	if _, err := s.Delete(2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	items := s.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "a" || items[1].Name != "c" {
		t.Errorf("insertion order broken: %+v", items)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSizeChangeCallback(t *testing.T) {
	s := NewInventoryStore()

	var counts []int
	s.OnSizeChange(func(count int) { counts = append(counts, count) })

	a := s.Add("a", 1)
	s.Add("b", 2)
	s.Delete(a.ID)

	want := []int{1, 2, 1}
	if len(counts) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("notification %d: got %d, want %d", i, counts[i], want[i])
		}
	}
}

func TestConcurrentAdds(t *testing.T) {
	s := NewInventoryStore()
	s.Add("seed", 1)

	const n = 50
	ids := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids <- s.Add(fmt.Sprintf("item-%d", i), i).ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id allocated: %d", id)
		}
		seen[id] = true
	}

	if got := s.Len(); got != n+1 {
		t.Errorf("expected %d items, got %d", n+1, got)
	}
}
