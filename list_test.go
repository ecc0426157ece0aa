package sqz

import "testing"

func drainList(cache *nodeCache, list nodeList) [][2]uint16 {
	var out [][2]uint16
	for n := list.head; n != nilNode; n = cache.next(n) {
		node := cache.nodes[n]
		out = append(out, [2]uint16{node.x, node.y})
	}
	return out
}

func TestNodeCacheAdd(t *testing.T) {
	cache := newNodeCache(4)
	list := newNodeList()

	cache.add(&list, 1, 2)
	cache.add(&list, 3, 4)
	cache.add(&list, 5, 6)

	if list.length != 3 {
		t.Fatalf("length = %d, want 3", list.length)
	}
	got := drainList(cache, list)
	want := [][2]uint16{{1, 2}, {3, 4}, {5, 6}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNodeCacheAddExhausted(t *testing.T) {
	cache := newNodeCache(1)
	list := newNodeList()
	if idx := cache.add(&list, 0, 0); idx == nilNode {
		t.Fatal("first add into a capacity-1 cache unexpectedly failed")
	}
	if idx := cache.add(&list, 1, 1); idx != nilNode {
		t.Errorf("add() past capacity = %d, want nilNode", idx)
	}
}

func TestNodeCacheExchange(t *testing.T) {
	cache := newNodeCache(3)
	source := newNodeList()
	dest := newNodeList()

	n0 := cache.add(&source, 0, 0)
	n1 := cache.add(&source, 1, 1)
	n2 := cache.add(&source, 2, 2)

	// Move the middle node (n1, whose predecessor is n0) to dest.
	next := cache.exchange(&source, &dest, n1, n0)
	if next != n2 {
		t.Errorf("exchange() successor = %d, want %d", next, n2)
	}
	if source.length != 2 {
		t.Errorf("source.length = %d, want 2", source.length)
	}
	if dest.length != 1 {
		t.Errorf("dest.length = %d, want 1", dest.length)
	}
	gotSource := drainList(cache, source)
	wantSource := [][2]uint16{{0, 0}, {2, 2}}
	if len(gotSource) != len(wantSource) {
		t.Fatalf("source = %v, want %v", gotSource, wantSource)
	}
	for i := range wantSource {
		if gotSource[i] != wantSource[i] {
			t.Errorf("source node %d = %v, want %v", i, gotSource[i], wantSource[i])
		}
	}
	gotDest := drainList(cache, dest)
	if len(gotDest) != 1 || gotDest[0] != [2]uint16{1, 1} {
		t.Errorf("dest = %v, want [{1 1}]", gotDest)
	}
}

func TestNodeCacheExchangeHead(t *testing.T) {
	cache := newNodeCache(2)
	source := newNodeList()
	dest := newNodeList()

	n0 := cache.add(&source, 0, 0)
	n1 := cache.add(&source, 1, 1)

	next := cache.exchange(&source, &dest, n0, nilNode)
	if next != n1 {
		t.Errorf("exchange() successor = %d, want %d", next, n1)
	}
	if source.head != n1 {
		t.Errorf("source.head = %d, want %d", source.head, n1)
	}
}

func TestNodeCacheMerge(t *testing.T) {
	cache := newNodeCache(4)
	source := newNodeList()
	dest := newNodeList()

	cache.add(&dest, 0, 0)
	cache.add(&source, 1, 1)
	cache.add(&source, 2, 2)

	cache.merge(&source, &dest)

	if source.length != 0 || source.head != nilNode || source.tail != nilNode {
		t.Errorf("source not emptied after merge: %+v", source)
	}
	if dest.length != 3 {
		t.Fatalf("dest.length = %d, want 3", dest.length)
	}
	got := drainList(cache, dest)
	want := [][2]uint16{{0, 0}, {1, 1}, {2, 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dest node %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNodeCacheMergeEmptySource(t *testing.T) {
	cache := newNodeCache(2)
	source := newNodeList()
	dest := newNodeList()
	cache.add(&dest, 5, 5)

	cache.merge(&source, &dest)

	if dest.length != 1 {
		t.Errorf("dest.length = %d, want 1", dest.length)
	}
}

func TestNodeCacheNextNilNode(t *testing.T) {
	cache := newNodeCache(1)
	if got := cache.next(nilNode); got != nilNode {
		t.Errorf("next(nilNode) = %d, want nilNode", got)
	}
}
