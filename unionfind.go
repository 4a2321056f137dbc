// unionfind.go
package main

// DisjointSet tracks a partition of n records addressed by position. The
// parent arena is index-based and Find compresses paths with an explicit
// loop, so depth is bounded on any input size.
type DisjointSet struct {
	parent []int
}

func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{parent: parent}
}

func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Find returns the root of element i, rewriting the walked chain onto the
// root on the way back.
func (d *DisjointSet) Find(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[i] != root {
		d.parent[i], i = root, d.parent[i]
	}
	return root
}

// Union merges the sets of i and j. Merging is symmetric and transitive,
// so the final partition does not depend on call order.
func (d *DisjointSet) Union(i, j int) {
	rootI, rootJ := d.Find(i), d.Find(j)
	if rootI != rootJ {
		d.parent[rootI] = rootJ
	}
}

// Roots counts distinct sets in the partition.
func (d *DisjointSet) Roots() int {
	count := 0
	for i := range d.parent {
		if d.Find(i) == i {
			count++
		}
	}
	return count
}
