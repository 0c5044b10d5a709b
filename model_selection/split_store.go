package model_selection

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/w4w4n78/torcheeg/pkg/errors"
)

// SplitStore persists partition tables under a single directory key.
// The directory path is the identity of the partition: its presence is the
// sole cache-validity signal, so a store never validates the persisted
// tables against the dataset they were derived from.
type SplitStore interface {
	// Path returns the directory identifying the persisted partition.
	Path() string

	// Exists reports whether the partition has already been persisted.
	Exists() bool

	// WriteTables persists the given tables, keyed by table name
	// (written as <name>.csv). Either all tables are published or none.
	WriteTables(tables map[string]dataframe.DataFrame) error

	// ReadTable reads back a persisted table by name.
	ReadTable(name string) (dataframe.DataFrame, error)

	// Categories returns the persisted table names in ascending order.
	Categories() ([]string, error)
}

// manifestFile records the literal table names written by WriteTables.
// Category discovery prefers the manifest over parsing filenames, so
// non-numeric category values survive a round trip. Directories written
// without a manifest fall back to a filename scan.
const manifestFile = ".categories"

// DirStore is the default SplitStore, backed by a filesystem directory of
// CSV files. It assumes single-process usage: concurrent writers to the
// same unset path may race.
type DirStore struct {
	path string
}

// NewDirStore creates a store bound to the given split directory.
func NewDirStore(path string) *DirStore {
	return &DirStore{path: path}
}

// Path implements SplitStore.Path.
func (s *DirStore) Path() string {
	return s.path
}

// Exists implements SplitStore.Exists.
func (s *DirStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.IsDir()
}

// WriteTables implements SplitStore.WriteTables. Tables are staged into a
// temporary sibling directory and renamed into place, so a failed write
// never leaves a half-populated split directory behind.
func (s *DirStore) WriteTables(tables map[string]dataframe.DataFrame) error {
	stage := s.path + ".tmp"
	if err := os.RemoveAll(stage); err != nil {
		return errors.NewSplitStoreError("WriteTables", s.path, err)
	}
	if err := os.MkdirAll(stage, 0o755); err != nil {
		return errors.NewSplitStoreError("WriteTables", s.path, err)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sortNatural(names)

	for _, name := range names {
		if err := writeTableCSV(filepath.Join(stage, name+".csv"), tables[name]); err != nil {
			_ = os.RemoveAll(stage)
			return errors.NewSplitStoreError("WriteTables", s.path, err)
		}
	}
	manifest := strings.Join(names, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(stage, manifestFile), []byte(manifest), 0o644); err != nil {
		_ = os.RemoveAll(stage)
		return errors.NewSplitStoreError("WriteTables", s.path, err)
	}

	if err := os.Rename(stage, s.path); err != nil {
		_ = os.RemoveAll(stage)
		return errors.NewSplitStoreError("WriteTables", s.path, err)
	}
	return nil
}

// ReadTable implements SplitStore.ReadTable. Type detection is disabled so
// the persisted text round-trips unchanged regardless of column content.
func (s *DirStore) ReadTable(name string) (dataframe.DataFrame, error) {
	f, err := os.Open(filepath.Join(s.path, name+".csv"))
	if err != nil {
		return dataframe.DataFrame{}, errors.NewSplitStoreError("ReadTable", s.path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.DetectTypes(false))
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.NewSplitStoreError("ReadTable", s.path, df.Err)
	}
	return df, nil
}

// Categories implements SplitStore.Categories.
func (s *DirStore) Categories() ([]string, error) {
	if data, err := os.ReadFile(filepath.Join(s.path, manifestFile)); err == nil {
		var names []string
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				names = append(names, line)
			}
		}
		sortNatural(names)
		return names, nil
	}

	// No manifest: the directory was written by an implementation that
	// only emits <value>.csv files. Derive the names from the filenames.
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.NewSplitStoreError("Categories", s.path, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".csv"))
	}
	sortNatural(names)
	return names, nil
}

func writeTableCSV(path string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := df.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// sortNatural sorts ascending, comparing numerically when both values are
// integers so that trial or fold identifiers order as 2 < 10.
func sortNatural(values []string) {
	sort.Slice(values, func(i, j int) bool {
		return naturalLess(values[i], values[j])
	})
}

func naturalLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
