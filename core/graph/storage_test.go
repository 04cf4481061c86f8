package graph

import "testing"

func TestNodeStorageInsertYieldsSmallestUnused(t *testing.T) {
	s := NewNodeStorage()
	a := s.Insert(testNode{class: "a"})
	b := s.Insert(testNode{class: "b"})
	if a != 0 || b != 1 {
		t.Fatalf("expected ids 0,1; got %d,%d", a, b)
	}
	s.Remove(a)
	c := s.Insert(testNode{class: "c"})
	if c != 0 {
		t.Fatalf("expected id 0 reused after removal; got %d", c)
	}
}

func TestNodeStorageInsertAtHonorsSerializedIds(t *testing.T) {
	s := NewNodeStorage()
	s.InsertAt(5, testNode{class: "five"})
	n, ok := s.Get(5)
	if !ok {
		t.Fatal("expected node at id 5")
	}
	if n.Class().Name != "five" {
		t.Fatalf("got class %q, want five", n.Class().Name)
	}
	// next Insert should not collide with the manually placed id.
	next := s.Insert(testNode{class: "next"})
	if next == 5 {
		t.Fatal("Insert collided with InsertAt id")
	}
}

func TestNodeStorageLenAndSortedIds(t *testing.T) {
	s := NewNodeStorage()
	s.InsertAt(3, testNode{class: "c"})
	s.InsertAt(1, testNode{class: "a"})
	s.InsertAt(2, testNode{class: "b"})
	if s.Len() != 3 {
		t.Fatalf("got len %d, want 3", s.Len())
	}
	ids := s.SortedIds()
	want := []NodeId{1, 2, 3}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("SortedIds: got %v, want %v", ids, want)
		}
	}
}

func TestNodeStorageIdentityPreservedAcrossLookups(t *testing.T) {
	s := NewNodeStorage()
	n := testNode{class: "stable"}
	s.InsertAt(0, n)
	got1, _ := s.Get(0)
	got2, _ := s.Get(0)
	if got1 != got2 {
		t.Fatal("expected identical node instance across lookups")
	}
}
