package kgx

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestReadNodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HPOA_nodes.tsv")
	writeFile(t, path,
		"id\tcategory\tname\tprovided_by\n"+
			"OMIM:101600\tbiolink:Disease\tDiseaseX\tHPO:hpoa\n"+
			"OMIM:203450\tbiolink:Disease\tDiseaseY\tHPO:hpoa\n")

	nodes, err := ReadNodeFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	want := Node{ID: "OMIM:101600", Category: "biolink:Disease", Name: "DiseaseX", ProvidedBy: "HPO:hpoa"}
	if nodes[0] != want {
		t.Errorf("got %+v, want %+v", nodes[0], want)
	}
}

func TestReadNodeFile_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HPOA_nodes.tsv")
	writeFile(t, path, "id\tcategory\tname\tprovided_by\n")

	nodes, err := ReadNodeFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("got %d nodes, want 0", len(nodes))
	}
}

func TestReadEdgeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HPOA_edges.tsv")
	writeFile(t, path,
		"subject\tpredicate\tobject\trelation\tprovided_by\t\n"+
			"OMIM:101600\tbiolink:has_phenotype\tHP:0000001\tRO:0002200\tHPO:hpoa\t\n")

	edges, err := ReadEdgeFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.Subject != "OMIM:101600" || e.Predicate != "biolink:has_phenotype" ||
		e.Object != "HP:0000001" || e.Relation != "RO:0002200" ||
		e.PrimaryKnowledgeSource != "HPO:hpoa" {
		t.Errorf("got %+v", e)
	}
}

func TestReadNodeFile_Missing(t *testing.T) {
	if _, err := ReadNodeFile(filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadNodeFile_MalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HPOA_nodes.tsv")
	writeFile(t, path, "id\tcategory\tname\tprovided_by\nOMIM:1\tonly-two\n")
	if _, err := ReadNodeFile(path); err == nil {
		t.Error("expected error for short node row")
	}
}
