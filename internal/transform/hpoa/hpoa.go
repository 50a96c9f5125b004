// Package hpoa transforms the Human Phenotype Ontology annotation file
// (phenotype.hpoa) into a KGX node/edge TSV pair.
package hpoa

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ielis/kg-covid-19/internal/kgx"
	"github.com/ielis/kg-covid-19/internal/transform"
)

// SourceName tags this source in output file names and provenance fields
const SourceName = "HPOA"

// defaultDataFile is the file the HPO consortium ships under the raw input dir
const defaultDataFile = "phenotype.hpoa"

// preambleLines is the fixed metadata header at the top of phenotype.hpoa.
// The column header is embedded in it, so the reader supplies its own.
const preambleLines = 5

// fileHeader is the positional column layout of a phenotype.hpoa row
var fileHeader = []string{
	"DatabaseID", "DiseaseName", "Qualifier", "HPO_ID",
	"Reference", "Evidence", "Onset", "Frequency", "Sex",
	"Modifier", "Aspect", "Biocuration",
}

// Column positions within fileHeader
const (
	colDatabaseID = iota
	colDiseaseName
	colQualifier
	colHPOID
	colReference
)

// qualifierNot is the only non-empty Qualifier value the format allows
const qualifierNot = "NOT"

// Constants holds the biolink tags stamped onto every emitted node and edge.
// They are injected rather than hard-coded so tests can substitute them.
type Constants struct {
	DiseaseCategory     string
	ProvidedBy          string
	HasPhenotype        string
	HasSymptomRelation  string
	AssociationCategory string
}

// DefaultConstants returns the production biolink vocabulary
func DefaultConstants() Constants {
	return Constants{
		DiseaseCategory:     "biolink:Disease",
		ProvidedBy:          "HPO:hpoa",
		HasPhenotype:        "biolink:has_phenotype",
		HasSymptomRelation:  "RO:0002200",
		AssociationCategory: "biolink:PhenotypeToDiseaseAssociation",
	}
}

// MalformedQualifierError reports a row whose Qualifier is neither empty nor
// NOT. It carries the offending row for diagnostics.
type MalformedQualifierError struct {
	Qualifier string
	Line      int
	Row       []string
}

func (e *MalformedQualifierError) Error() string {
	return fmt.Sprintf("unexpected qualifier %q in line %d: %v", e.Qualifier, e.Line, e.Row)
}

// Transform parses phenotype.hpoa into disease nodes and
// disease-has-phenotype edges.
type Transform struct {
	inputDir        string
	outputDir       string
	compression     string
	includeExcluded bool
	consts          Constants
	log             *zap.Logger
}

func init() {
	transform.Register("hpoa", func(opts transform.Options) transform.Transform {
		return New(opts)
	})
}

// New builds an HPOA transform from run options
func New(opts transform.Options) *Transform {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Transform{
		inputDir:        opts.InputDir,
		outputDir:       opts.OutputDir,
		compression:     opts.Compression,
		includeExcluded: opts.IncludeExcluded,
		consts:          DefaultConstants(),
		log:             log,
	}
}

// Name returns the source tag used in output file names
func (t *Transform) Name() string { return SourceName }

// SetConstants overrides the emitted vocabulary, for tests
func (t *Transform) SetConstants(c Constants) { t.consts = c }

// Run parses dataFile (default: <input dir>/phenotype.hpoa) and writes
// HPOA_nodes.tsv and HPOA_edges.tsv into the output directory. Any error is
// terminal; no partial in-memory state survives a failed run.
func (t *Transform) Run(dataFile string) error {
	if dataFile == "" {
		dataFile = filepath.Join(t.inputDir, defaultDataFile)
	}

	fh, err := transform.OpenFile(dataFile, t.compression)
	if err != nil {
		return err
	}
	defer fh.Close()

	nodes, edges, err := t.parse(fh)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", dataFile, err)
	}

	t.log.Info("parsed annotation source",
		zap.String("source", SourceName),
		zap.String("file", dataFile),
		zap.Int("nodes", nodes.Len()),
		zap.Int("edges", edges.Len()))

	if err := os.MkdirAll(t.outputDir, 0o755); err != nil {
		return err
	}
	if err := t.writeNodes(nodes); err != nil {
		return fmt.Errorf("writing nodes: %w", err)
	}
	if err := t.writeEdges(edges); err != nil {
		return fmt.Errorf("writing edges: %w", err)
	}
	return nil
}

// parse streams rows and builds the deduplicated node and edge sets
func (t *Transform) parse(fh io.Reader) (*kgx.NodeSet, *kgx.EdgeSet, error) {
	nodes := kgx.NewNodeSet()
	edges := kgx.NewEdgeSet()

	reader := kgx.NewReader(fh, preambleLines)
	line := preambleLines
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line++
		if len(record) == 1 && record[0] == "" {
			// blank line
			continue
		}

		row := padRecord(record)
		present, keep, err := classifyQualifier(row, line)
		if err != nil {
			return nil, nil, err
		}
		if !keep && !t.includeExcluded {
			continue
		}

		diseaseID := row[colDatabaseID]
		hpoID := row[colHPOID]

		// A node and its edge are always inserted together from the same
		// row, so every edge subject has a matching node.
		nodes.Add(kgx.Node{
			ID:         diseaseID,
			Category:   t.consts.DiseaseCategory,
			Name:       row[colDiseaseName],
			ProvidedBy: t.consts.ProvidedBy,
		})
		edges.Add(kgx.Edge{
			ID:                     edgeID(diseaseID, hpoID, present),
			Subject:                diseaseID,
			Predicate:              t.consts.HasPhenotype,
			Object:                 hpoID,
			Relation:               t.consts.HasSymptomRelation,
			PrimaryKnowledgeSource: t.consts.ProvidedBy,
			Category:               t.consts.AssociationCategory,
			Publications:           row[colReference],
		})
	}
	return nodes, edges, nil
}

// classifyQualifier decides whether a row asserts (present) or negates the
// phenotype. Any qualifier other than "" or NOT is malformed input.
func classifyQualifier(row []string, line int) (present, keep bool, err error) {
	switch row[colQualifier] {
	case "":
		return true, true, nil
	case qualifierNot:
		return false, false, nil
	default:
		return false, false, &MalformedQualifierError{
			Qualifier: row[colQualifier],
			Line:      line,
			Row:       row,
		}
	}
}

// edgeID derives a content-addressed identifier from the fact triple, so the
// same assertion yields the same edge across reruns and downstream merges
// dedup it. NewMD5 is the name-based version-3 scheme.
func edgeID(diseaseID, hpoID string, present bool) string {
	name := strings.Join([]string{diseaseID, hpoID, presenceToken(present)}, "-")
	return "urn:uuid:" + uuid.NewMD5(uuid.NameSpaceDNS, []byte(name)).String()
}

// presenceToken is the exact token the edge-id hash has always been fed;
// changing its spelling would re-key every published edge.
func presenceToken(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// padRecord extends short records to the full 12-column layout and drops any
// surplus trailing fields.
func padRecord(record []string) []string {
	if len(record) == len(fileHeader) {
		return record
	}
	if len(record) > len(fileHeader) {
		return record[:len(fileHeader)]
	}
	padded := make([]string, len(fileHeader))
	copy(padded, record)
	return padded
}

// writeNodes writes <output>/HPOA_nodes.tsv sorted by node ID
func (t *Transform) writeNodes(nodes *kgx.NodeSet) error {
	f, err := os.Create(t.outputPath("nodes"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := kgx.NewWriter(f)
	if err := w.Write([]string{"id", "category", "name", "provided_by"}); err != nil {
		return err
	}
	for _, n := range nodes.Sorted() {
		if err := w.Write([]string{n.ID, n.Category, n.Name, n.ProvidedBy}); err != nil {
			return err
		}
	}
	return w.Flush()
}

// writeEdges writes <output>/HPOA_edges.tsv sorted by (subject, object).
// The written schema is the one the downstream merge consumes: it drops the
// in-memory id, category, and publications fields and carries an empty-named
// trailing column. Inherited from the upstream pipeline verbatim, likely a
// defect there, kept here for output compatibility.
func (t *Transform) writeEdges(edges *kgx.EdgeSet) error {
	f, err := os.Create(t.outputPath("edges"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := kgx.NewWriter(f)
	if err := w.Write([]string{"subject", "predicate", "object", "relation", "provided_by", ""}); err != nil {
		return err
	}
	for _, e := range edges.Sorted() {
		row := []string{e.Subject, e.Predicate, e.Object, e.Relation, e.PrimaryKnowledgeSource, ""}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (t *Transform) outputPath(kind string) string {
	return filepath.Join(t.outputDir, fmt.Sprintf("%s_%s.tsv", SourceName, kind))
}
