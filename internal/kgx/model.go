// Package kgx holds the KGX graph model (nodes, edges) and the TSV dialect
// used by the transform outputs and the downstream merge tooling.
package kgx

import "sort"

// Node represents a graph entity in KGX form
type Node struct {
	ID         string
	Category   string
	Name       string
	ProvidedBy string
}

// Edge represents a subject-predicate-object fact in KGX form.
// Identity is the full field tuple; two edges with identical fields are
// the same edge.
type Edge struct {
	ID                     string
	Subject                string
	Predicate              string
	Object                 string
	Relation               string
	PrimaryKnowledgeSource string
	Category               string
	Publications           string
}

// NodeSet is a deduplicating collection of nodes. Add is idempotent.
type NodeSet struct {
	members map[Node]struct{}
}

// NewNodeSet returns an empty NodeSet
func NewNodeSet() *NodeSet {
	return &NodeSet{members: make(map[Node]struct{})}
}

// Add inserts a node; inserting an identical node again is a no-op
func (s *NodeSet) Add(n Node) {
	s.members[n] = struct{}{}
}

// Len returns the number of distinct nodes
func (s *NodeSet) Len() int {
	return len(s.members)
}

// Sorted returns the nodes ordered by ID so that output is stable across runs
func (s *NodeSet) Sorted() []Node {
	nodes := make([]Node, 0, len(s.members))
	for n := range s.members {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].ID != nodes[j].ID {
			return nodes[i].ID < nodes[j].ID
		}
		return nodes[i].Name < nodes[j].Name
	})
	return nodes
}

// EdgeSet is a deduplicating collection of edges. Add is idempotent.
type EdgeSet struct {
	members map[Edge]struct{}
}

// NewEdgeSet returns an empty EdgeSet
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{members: make(map[Edge]struct{})}
}

// Add inserts an edge; inserting an identical edge again is a no-op
func (s *EdgeSet) Add(e Edge) {
	s.members[e] = struct{}{}
}

// Len returns the number of distinct edges
func (s *EdgeSet) Len() int {
	return len(s.members)
}

// Sorted returns the edges ordered by (subject, object, predicate, id)
func (s *EdgeSet) Sorted() []Edge {
	edges := make([]Edge, 0, len(s.members))
	for e := range s.members {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		if a.Object != b.Object {
			return a.Object < b.Object
		}
		if a.Predicate != b.Predicate {
			return a.Predicate < b.Predicate
		}
		return a.ID < b.ID
	})
	return edges
}
