package cache

import (
	"fmt"
	"sort"
	"sync"
	"testing"
)

type page struct {
	N       int
	Results []string
}

// TestCache_New tests cache creation.
func TestCache_New(t *testing.T) {
	c := New[page]()
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.store == nil {
		t.Error("cache store not initialized")
	}
	if c.ItemCount() != 0 {
		t.Errorf("expected empty cache, got %d items", c.ItemCount())
	}
}

// TestCache_BasicOperations tests Get and Set.
func TestCache_BasicOperations(t *testing.T) {
	c := New[page]()

	t.Run("Set and Get", func(t *testing.T) {
		c.Set("CharactersPage1", page{N: 1, Results: []string{"Rick"}})

		val, found := c.Get("CharactersPage1")
		if !found {
			t.Fatal("expected CharactersPage1 to be found")
		}
		if val.N != 1 || val.Results[0] != "Rick" {
			t.Errorf("unexpected value %+v", val)
		}
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		val, found := c.Get("CharactersPage2")
		if found {
			t.Error("expected missing key to not be found")
		}
		if val.N != 0 || val.Results != nil {
			t.Errorf("expected zero value, got %+v", val)
		}
	})

	t.Run("Set overwrites", func(t *testing.T) {
		c.Set("CharactersPage1", page{N: 10})
		val, _ := c.Get("CharactersPage1")
		if val.N != 10 {
			t.Errorf("expected overwritten value, got %+v", val)
		}
		if c.ItemCount() != 1 {
			t.Errorf("expected 1 item, got %d", c.ItemCount())
		}
	})
}

// TestCache_Keys tests key listing and stats.
func TestCache_Keys(t *testing.T) {
	c := New[int]()
	c.Set("EpisodesPage2", 2)
	c.Set("EpisodesPage1", 1)

	keys := c.Keys()
	sort.Strings(keys)
	if fmt.Sprint(keys) != "[EpisodesPage1 EpisodesPage2]" {
		t.Errorf("unexpected keys %v", keys)
	}
	stats := c.GetStats()
	if stats.ItemCount != 2 {
		t.Errorf("expected 2 items, got %d", stats.ItemCount)
	}
	if fmt.Sprint(stats.Keys) != "[EpisodesPage1 EpisodesPage2]" {
		t.Errorf("expected sorted stats keys, got %v", stats.Keys)
	}
}

// TestCache_Concurrent tests concurrent access.
func TestCache_Concurrent(t *testing.T) {
	c := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("LocationsPage%d", i), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("LocationsPage%d", i))
		}(i)
	}
	wg.Wait()

	if c.ItemCount() != 50 {
		t.Errorf("expected 50 items, got %d", c.ItemCount())
	}
}
