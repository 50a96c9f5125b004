package kgx

import "testing"

func TestValidateGraph_AllSubjectsResolve(t *testing.T) {
	nodes := []Node{{ID: "OMIM:1"}, {ID: "OMIM:2"}}
	edges := []Edge{
		{Subject: "OMIM:1", Object: "HP:1"},
		{Subject: "OMIM:2", Object: "HP:1"},
		{Subject: "OMIM:2", Object: "HP:2"},
	}

	r := ValidateGraph(nodes, edges)
	if !r.Valid() {
		t.Fatalf("expected valid, dangling: %v", r.DanglingSubjects)
	}
	if r.NodeCount != 2 || r.EdgeCount != 3 {
		t.Errorf("counts: nodes=%d edges=%d", r.NodeCount, r.EdgeCount)
	}
	if r.DistinctSubjects != 2 || r.DistinctObjects != 2 {
		t.Errorf("distinct: subjects=%d objects=%d", r.DistinctSubjects, r.DistinctObjects)
	}
}

func TestValidateGraph_DanglingSubject(t *testing.T) {
	nodes := []Node{{ID: "OMIM:1"}}
	edges := []Edge{
		{Subject: "OMIM:1", Object: "HP:1"},
		{Subject: "OMIM:999", Object: "HP:1"},
		{Subject: "OMIM:998", Object: "HP:2"},
		{Subject: "OMIM:999", Object: "HP:3"},
	}

	r := ValidateGraph(nodes, edges)
	if r.Valid() {
		t.Fatal("expected dangling subjects")
	}
	if len(r.DanglingSubjects) != 2 {
		t.Fatalf("got %v", r.DanglingSubjects)
	}
	// sorted, deduplicated
	if r.DanglingSubjects[0] != "OMIM:998" || r.DanglingSubjects[1] != "OMIM:999" {
		t.Errorf("got %v", r.DanglingSubjects)
	}
}

func TestValidateGraph_ObjectsAreExternal(t *testing.T) {
	// phenotype objects never have nodes in a single-source pair; that is
	// not a validation failure
	nodes := []Node{{ID: "OMIM:1"}}
	edges := []Edge{{Subject: "OMIM:1", Object: "HP:0000001"}}
	if r := ValidateGraph(nodes, edges); !r.Valid() {
		t.Errorf("objects must not be required to resolve: %v", r.DanglingSubjects)
	}
}

func TestValidateGraph_Empty(t *testing.T) {
	r := ValidateGraph(nil, nil)
	if !r.Valid() || r.NodeCount != 0 || r.EdgeCount != 0 {
		t.Errorf("empty graph should be valid with zero counts: %+v", r)
	}
}
