package db

import (
	"path/filepath"
	"testing"

	"github.com/ielis/kg-covid-19/internal/kgx"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(filepath.Join(t.TempDir(), "graph.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func testGraph() ([]kgx.Node, []kgx.Edge) {
	nodes := []kgx.Node{
		{ID: "OMIM:101600", Category: "biolink:Disease", Name: "DiseaseX", ProvidedBy: "HPO:hpoa"},
		{ID: "OMIM:203450", Category: "biolink:Disease", Name: "DiseaseY", ProvidedBy: "HPO:hpoa"},
	}
	edges := []kgx.Edge{
		{Subject: "OMIM:101600", Predicate: "biolink:has_phenotype", Object: "HP:0000001",
			Relation: "RO:0002200", PrimaryKnowledgeSource: "HPO:hpoa"},
		{Subject: "OMIM:203450", Predicate: "biolink:has_phenotype", Object: "HP:0000002",
			Relation: "RO:0002200", PrimaryKnowledgeSource: "HPO:hpoa"},
	}
	return nodes, edges
}

func TestLoadGraph(t *testing.T) {
	d := openTestDB(t)
	nodes, edges := testGraph()

	if err := d.LoadGraph(nodes, edges); err != nil {
		t.Fatalf("loading graph: %v", err)
	}

	nodeCount, err := d.NodeCount()
	if err != nil {
		t.Fatalf("counting nodes: %v", err)
	}
	if nodeCount != 2 {
		t.Errorf("got %d nodes, want 2", nodeCount)
	}
	edgeCount, err := d.EdgeCount()
	if err != nil {
		t.Fatalf("counting edges: %v", err)
	}
	if edgeCount != 2 {
		t.Errorf("got %d edges, want 2", edgeCount)
	}
}

func TestLoadGraph_Idempotent(t *testing.T) {
	d := openTestDB(t)
	nodes, edges := testGraph()

	if err := d.LoadGraph(nodes, edges); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := d.LoadGraph(nodes, edges); err != nil {
		t.Fatalf("second load: %v", err)
	}

	nodeCount, _ := d.NodeCount()
	edgeCount, _ := d.EdgeCount()
	if nodeCount != 2 || edgeCount != 2 {
		t.Errorf("re-loading must not duplicate rows: nodes=%d edges=%d", nodeCount, edgeCount)
	}
}

func TestLoadGraph_EdgeTupleIdentity(t *testing.T) {
	d := openTestDB(t)
	nodes, edges := testGraph()

	// the TSV pair carries no edge id, so uniqueness is the fact tuple
	dup := edges[0]
	edges = append(edges, dup)

	if err := d.LoadGraph(nodes, edges); err != nil {
		t.Fatalf("loading graph: %v", err)
	}
	edgeCount, _ := d.EdgeCount()
	if edgeCount != 2 {
		t.Errorf("duplicate fact tuple must collapse, got %d edges", edgeCount)
	}
}

func TestDanglingSubjects(t *testing.T) {
	d := openTestDB(t)
	nodes, edges := testGraph()
	edges = append(edges, kgx.Edge{
		Subject: "OMIM:999999", Predicate: "biolink:has_phenotype", Object: "HP:0000003",
		Relation: "RO:0002200", PrimaryKnowledgeSource: "HPO:hpoa",
	})

	if err := d.LoadGraph(nodes, edges); err != nil {
		t.Fatalf("loading graph: %v", err)
	}

	dangling, err := d.DanglingSubjects()
	if err != nil {
		t.Fatalf("querying dangling subjects: %v", err)
	}
	if len(dangling) != 1 || dangling[0] != "OMIM:999999" {
		t.Errorf("got %v, want [OMIM:999999]", dangling)
	}
}

func TestDanglingSubjects_None(t *testing.T) {
	d := openTestDB(t)
	nodes, edges := testGraph()
	if err := d.LoadGraph(nodes, edges); err != nil {
		t.Fatalf("loading graph: %v", err)
	}
	dangling, err := d.DanglingSubjects()
	if err != nil {
		t.Fatalf("querying dangling subjects: %v", err)
	}
	if len(dangling) != 0 {
		t.Errorf("got %v, want none", dangling)
	}
}
