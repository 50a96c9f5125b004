package db

import (
	"fmt"

	"github.com/ielis/kg-covid-19/internal/kgx"
)

// Edge identity in the store matches the set semantics of the builder: the
// written TSV drops the derived id column, so uniqueness is the fact tuple.
const schema = `
CREATE TABLE IF NOT EXISTS nodes (
	id          TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	name        TEXT NOT NULL,
	provided_by TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS edges (
	id                       TEXT,
	subject                  TEXT NOT NULL,
	predicate                TEXT NOT NULL,
	object                   TEXT NOT NULL,
	relation                 TEXT NOT NULL,
	primary_knowledge_source TEXT NOT NULL,
	category                 TEXT,
	publications             TEXT,
	UNIQUE(subject, predicate, object, relation, primary_knowledge_source)
);
CREATE INDEX IF NOT EXISTS idx_edges_subject ON edges(subject);
`

// initSchema creates the nodes and edges tables if they do not exist
func (d *DB) initSchema() error {
	if _, err := d.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// LoadGraph inserts nodes and edges in one transaction. Inserts are
// idempotent, so re-loading the same pair leaves the tables unchanged.
func (d *DB) LoadGraph(nodes []kgx.Node, edges []kgx.Edge) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting load transaction: %w", err)
	}
	defer tx.Rollback()

	insertNode, err := tx.Prepare(`
		INSERT OR IGNORE INTO nodes (id, category, name, provided_by)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer insertNode.Close()

	insertEdge, err := tx.Prepare(`
		INSERT OR IGNORE INTO edges
			(id, subject, predicate, object, relation,
			 primary_knowledge_source, category, publications)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer insertEdge.Close()

	for _, n := range nodes {
		if _, err := insertNode.Exec(n.ID, n.Category, n.Name, n.ProvidedBy); err != nil {
			return fmt.Errorf("inserting node %s: %w", n.ID, err)
		}
	}
	for _, e := range edges {
		_, err := insertEdge.Exec(e.ID, e.Subject, e.Predicate, e.Object,
			e.Relation, e.PrimaryKnowledgeSource, e.Category, e.Publications)
		if err != nil {
			return fmt.Errorf("inserting edge %s -> %s: %w", e.Subject, e.Object, err)
		}
	}

	return tx.Commit()
}

// NodeCount returns the number of stored nodes
func (d *DB) NodeCount() (int, error) {
	var n int
	err := d.conn.QueryRow("SELECT COUNT(*) FROM nodes").Scan(&n)
	return n, err
}

// EdgeCount returns the number of stored edges
func (d *DB) EdgeCount() (int, error) {
	var n int
	err := d.conn.QueryRow("SELECT COUNT(*) FROM edges").Scan(&n)
	return n, err
}

// DanglingSubjects returns edge subjects that have no matching node row
func (d *DB) DanglingSubjects() ([]string, error) {
	rows, err := d.conn.Query(`
		SELECT DISTINCT subject FROM edges
		WHERE subject NOT IN (SELECT id FROM nodes)
		ORDER BY subject
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}
