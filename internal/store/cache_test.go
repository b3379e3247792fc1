package store

import "testing"

type item struct {
	ID   int
	Name string
}

func newItemCache() *Cache[int, item] {
	return NewCache(func(i item) int { return i.ID })
}

func TestCacheReplaceAndGet(t *testing.T) {
	c := newItemCache()
	c.Replace([]item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	if got := c.Len(); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
	v, ok := c.Get(1)
	if !ok || v.Name != "a" {
		t.Fatalf("unexpected item %+v ok=%v", v, ok)
	}
	if _, ok := c.Get(3); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestCacheReplaceDropsOldSnapshot(t *testing.T) {
	c := newItemCache()
	c.Replace([]item{{ID: 1}})
	c.Replace([]item{{ID: 2}})

	if _, ok := c.Get(1); ok {
		t.Fatalf("expected old item to be removed after replace")
	}
	if _, ok := c.Get(2); !ok {
		t.Fatalf("expected new item to be present")
	}
}

func TestCacheListKeepsOrderAndCopies(t *testing.T) {
	c := newItemCache()
	c.Replace([]item{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 3, Name: "c2"}})

	list := c.List()
	if len(list) != 2 || list[0].ID != 3 || list[1].ID != 1 {
		t.Fatalf("unexpected order %+v", list)
	}
	if list[0].Name != "c2" {
		t.Fatalf("expected later duplicate to win, got %s", list[0].Name)
	}

	list[0].Name = "mutated"
	if v, _ := c.Get(3); v.Name != "c2" {
		t.Fatalf("expected List to return a copy")
	}
}

func TestCacheRemove(t *testing.T) {
	c := newItemCache()
	c.Replace([]item{{ID: 1}, {ID: 2}, {ID: 3}})

	if !c.Remove(2) {
		t.Fatalf("expected remove to report presence")
	}
	if c.Remove(2) {
		t.Fatalf("expected second remove to report absence")
	}
	list := c.List()
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 3 {
		t.Fatalf("unexpected items after remove %+v", list)
	}
}
