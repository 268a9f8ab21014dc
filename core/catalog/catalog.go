// core/catalog/catalog.go

// Package catalog discovers profile-model descriptors under an artifact
// tree, filters them by training-set size, and resolves each survivor to
// the alignment subset it belongs to.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"hmmassign-core/alnfile"
	"hmmassign-core/hmmfile"
	"hmmassign-core/observe"
)

// Entry is one cataloged profile model.
type Entry struct {
	AlignmentIndex int    // top-level alignment partition
	HMMIndex       int    // model within that partition
	TrainingSeqs   int    // NSEQ: sequences the model was built from
	SubsetSeqs     int    // records in the underlying subset alignment
	Dir            string // directory containing the descriptor
	Path           string // descriptor file
}

// Key is the composite identity "<alignmentIndex>_<hmmIndex>".
func (e Entry) Key() string { return fmt.Sprintf("%d_%d", e.AlignmentIndex, e.HMMIndex) }

// Catalog is the immutable result of a build: entries sorted by subset
// size descending, plus a key lookup.
type Catalog struct {
	Entries []Entry
	byKey   map[string]Entry
}

// Lookup returns the entry with the given composite key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	e, ok := c.byKey[key]
	return e, ok
}

// Len returns the number of cataloged models.
func (c *Catalog) Len() int { return len(c.Entries) }

// Config controls a catalog build.
type Config struct {
	Root         string   // artifact tree to search (ignored if Paths set)
	Lower, Upper int      // inclusive NSEQ range
	Paths        []string // optional pre-enumerated descriptor paths
	Observer     observe.Observer
}

// Build produces a Catalog per Config. Any malformed or incomplete
// artifact aborts the build: a partial catalog could silently misassign
// queries downstream.
func Build(cfg Config) (*Catalog, error) {
	obs := cfg.Observer
	if obs == nil {
		obs = observe.Nop{}
	}
	obs.Logf("obtaining models in range [%d, %d]", cfg.Lower, cfg.Upper)
	start := time.Now()

	paths := cfg.Paths
	if len(paths) == 0 {
		var err error
		paths, err = Discover(cfg.Root)
		if err != nil {
			return nil, err
		}
	}

	c := &Catalog{byKey: make(map[string]Entry, len(paths))}
	for _, path := range paths {
		h, err := hmmfile.ReadHeader(path)
		if err != nil {
			return nil, err
		}
		nseq, err := h.TrainingSeqs()
		if err != nil {
			return nil, err
		}

		// A backbone that could not be split further yields a single,
		// possibly out-of-range model; it must still be usable.
		if (nseq < cfg.Lower || nseq > cfg.Upper) && len(paths) != 1 {
			continue
		}

		dir := filepath.Dir(path)
		subsetPath := filepath.Join(filepath.Dir(dir), alnfile.SubsetName)
		if _, err := os.Stat(subsetPath); err != nil {
			return nil, fmt.Errorf("%s: subset alignment missing for %s: %v", subsetPath, path, err)
		}
		subsetSeqs, err := alnfile.Records(subsetPath)
		if err != nil {
			return nil, err
		}

		ai, hi, err := hmmfile.ParseDirKey(dir)
		if err != nil {
			return nil, err
		}

		e := Entry{
			AlignmentIndex: ai,
			HMMIndex:       hi,
			TrainingSeqs:   nseq,
			SubsetSeqs:     subsetSeqs,
			Dir:            dir,
			Path:           path,
		}
		c.Entries = append(c.Entries, e)
		c.byKey[e.Key()] = e
	}

	// Largest subsets first; stable so equal sizes keep discovery order.
	sort.SliceStable(c.Entries, func(i, j int) bool {
		return c.Entries[i].SubsetSeqs > c.Entries[j].SubsetSeqs
	})

	obs.Logf("done obtaining models: %d in catalog", len(c.Entries))
	obs.Timing("obtain models", time.Since(start))
	return c, nil
}

// Discover walks root for descriptor files and returns their paths sorted
// lexicographically, so a build is independent of filesystem enumeration
// order.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hmmfile.IsDescriptor(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %v", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}
