// Package transform defines the contract shared by all annotation-to-graph
// transforms and the registry the CLI dispatches on.
package transform

import (
	"sort"

	"go.uber.org/zap"
)

// Transform converts one raw annotation source into a KGX node/edge TSV pair.
// Run takes an explicit data file path; an empty path means the source's
// default file under the input directory.
type Transform interface {
	Name() string
	Run(dataFile string) error
}

// Options carries the shared per-run settings for a transform
type Options struct {
	InputDir        string
	OutputDir       string
	Compression     string
	IncludeExcluded bool
	Logger          *zap.Logger
}

// Constructor builds a transform from run options
type Constructor func(opts Options) Transform

var sources = make(map[string]Constructor)

// Register adds a source under the given tag. Transform packages register
// themselves from init, the way database drivers do.
func Register(tag string, ctor Constructor) {
	sources[tag] = ctor
}

// Lookup returns the constructor for a source tag
func Lookup(tag string) (Constructor, bool) {
	ctor, ok := sources[tag]
	return ctor, ok
}

// SourceTags returns the registered source tags in sorted order
func SourceTags() []string {
	tags := make([]string, 0, len(sources))
	for tag := range sources {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
