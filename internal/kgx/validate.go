package kgx

import "sort"

// ValidationReport summarizes a node/edge pair as produced by a transform.
// Subjects are required to resolve against the node table; objects are
// ontology terms supplied by other sources and are only counted.
type ValidationReport struct {
	NodeCount        int
	EdgeCount        int
	DistinctSubjects int
	DistinctObjects  int
	DanglingSubjects []string
}

// Valid reports whether every edge subject has a matching node
func (r *ValidationReport) Valid() bool {
	return len(r.DanglingSubjects) == 0
}

// ValidateGraph checks that each edge's subject identifier corresponds to a
// node in the same output. The builder guarantees this for freshly
// transformed pairs; the check exists for pairs that were filtered or merged
// by external tooling.
func ValidateGraph(nodes []Node, edges []Edge) *ValidationReport {
	ids := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = struct{}{}
	}

	subjects := make(map[string]struct{})
	objects := make(map[string]struct{})
	dangling := make(map[string]struct{})
	for _, e := range edges {
		subjects[e.Subject] = struct{}{}
		objects[e.Object] = struct{}{}
		if _, ok := ids[e.Subject]; !ok {
			dangling[e.Subject] = struct{}{}
		}
	}

	report := &ValidationReport{
		NodeCount:        len(nodes),
		EdgeCount:        len(edges),
		DistinctSubjects: len(subjects),
		DistinctObjects:  len(objects),
	}
	for s := range dangling {
		report.DanglingSubjects = append(report.DanglingSubjects, s)
	}
	sort.Strings(report.DanglingSubjects)
	return report
}
