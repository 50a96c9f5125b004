package kgx

import (
	"fmt"
	"io"
	"os"
)

// Column layouts of the transform outputs. The edge file carries no id,
// category, or publications column and ends in an empty-named column; see the
// edge writer in the hpoa package.
const (
	nodeFileColumns = 4
	edgeFileColumns = 6
)

// ReadNodeFile parses a <source>_nodes.tsv file, skipping its header row
func ReadNodeFile(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := NewReader(f, 1)
	var nodes []Node
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < nodeFileColumns {
			return nil, fmt.Errorf("%s: malformed node row: %v", path, record)
		}
		nodes = append(nodes, Node{
			ID:         record[0],
			Category:   record[1],
			Name:       record[2],
			ProvidedBy: record[3],
		})
	}
	return nodes, nil
}

// ReadEdgeFile parses a <source>_edges.tsv file, skipping its header row
func ReadEdgeFile(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := NewReader(f, 1)
	var edges []Edge
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < edgeFileColumns-1 {
			return nil, fmt.Errorf("%s: malformed edge row: %v", path, record)
		}
		edges = append(edges, Edge{
			Subject:                record[0],
			Predicate:              record[1],
			Object:                 record[2],
			Relation:               record[3],
			PrimaryKnowledgeSource: record[4],
		})
	}
	return edges, nil
}
