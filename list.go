// Copyright 2025 go-jpeg2000 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqz

// nilNode marks the end of a list, or an absent previous node.
const nilNode int32 = -1

// listNode holds a subband-relative coordinate and a next-node index into
// the owning nodeCache's arena. Using an arena of indices rather than
// pointers keeps a subband's three position lists (LIP/LSP/NSP) contiguous
// and lets nodes move between lists in O(1) without any allocation.
type listNode struct {
	x, y uint16
	next int32
}

// nodeCache is the single backing arena shared by a subband's LIP, LSP and
// NSP lists. It is sized to the subband's coefficient count up front, so
// every node used across the lifetime of the subband is a bump allocation.
type nodeCache struct {
	nodes []listNode
	index int
}

func newNodeCache(capacity int) *nodeCache {
	return &nodeCache{nodes: make([]listNode, capacity)}
}

func (c *nodeCache) next(node int32) int32 {
	if node < 0 {
		return nilNode
	}
	if n := c.nodes[node].next; n > nilNode {
		return n
	}
	return nilNode
}

// nodeList is a singly-linked list of positions, all backed by the same
// nodeCache. head/tail are arena indices, not pointers.
type nodeList struct {
	head, tail int32
	length     int
}

func newNodeList() nodeList {
	return nodeList{head: nilNode, tail: nilNode}
}

// add appends (x, y) to list, allocating the next free node from cache.
// Returns nilNode if the cache is exhausted, which never happens in
// practice since every cache is sized to its subband's coefficient count.
func (c *nodeCache) add(list *nodeList, x, y uint16) int32 {
	if c.index >= len(c.nodes) {
		return nilNode
	}
	idx := int32(c.index)
	node := &c.nodes[idx]
	if list.head == nilNode {
		list.head = idx
	} else if list.tail != nilNode {
		c.nodes[list.tail].next = idx
	}
	list.tail = idx
	list.length++
	node.x, node.y = x, y
	node.next = nilNode
	c.index++
	return idx
}

// exchange moves node (whose predecessor in source is prev, or nilNode if
// node is source's head) from source to the tail of dest, and returns
// node's successor in source.
func (c *nodeCache) exchange(source, dest *nodeList, node, prev int32) int32 {
	next := c.next(node)
	if prev != nilNode {
		c.nodes[prev].next = c.nodes[node].next
	} else {
		source.head = next
	}
	source.length--
	if dest.head == nilNode {
		dest.head = node
	} else if dest.tail != nilNode {
		c.nodes[dest.tail].next = node
	}
	dest.tail = node
	dest.length++
	c.nodes[node].next = nilNode
	return next
}

// merge appends source onto dest and empties source.
func (c *nodeCache) merge(source, dest *nodeList) {
	if source.head == nilNode {
		return
	}
	if dest.tail != nilNode {
		c.nodes[dest.tail].next = source.head
	} else {
		dest.head = source.head
	}
	dest.tail = source.tail
	dest.length += source.length
	source.length = 0
	source.head, source.tail = nilNode, nilNode
}
