package model_selection

import (
	"fmt"
	"iter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/w4w4n78/torcheeg/datasets"
	"github.com/w4w4n78/torcheeg/pkg/errors"
	"github.com/w4w4n78/torcheeg/pkg/log"
	"github.com/w4w4n78/torcheeg/utils"
)

// Subcategory separates out subsets of specified categories, often used to
// extract data for a certain type of paradigm, or for a certain type of
// task. Each subset in the produced sequence contains only one type of data.
//
// Like TrainTestSplitCrossTrial, the partition is persisted under the split
// path on first use and reused verbatim afterwards, one <value>.csv file per
// distinct value of the criteria column.
//
// Example:
//
//	cv := model_selection.NewSubcategory("task", "./split")
//	seq, err := cv.Split(dataset)
//	if err != nil {
//	    return err
//	}
//	for subdataset, err := range seq {
//	    if err != nil {
//	        return err
//	    }
//	    // train on subdataset ...
//	}
type Subcategory struct {
	criteria string
	store    SplitStore
}

// NewSubcategory creates a category splitter partitioning on the given
// metadata column. An empty criteria defaults to "task"; an empty splitPath
// generates a random one.
func NewSubcategory(criteria, splitPath string) *Subcategory {
	if criteria == "" {
		criteria = "task"
	}
	if splitPath == "" {
		splitPath = utils.RandomDirPath("model_selection")
	}
	return &Subcategory{
		criteria: criteria,
		store:    NewDirStore(splitPath),
	}
}

// NewSubcategoryWithStore creates a category splitter over a custom
// SplitStore implementation.
func NewSubcategoryWithStore(criteria string, store SplitStore) *Subcategory {
	if criteria == "" {
		criteria = "task"
	}
	return &Subcategory{criteria: criteria, store: store}
}

// Criteria returns the metadata column the splitter partitions on.
func (s *Subcategory) Criteria() string {
	return s.criteria
}

// SplitPath returns the directory holding the partition information.
func (s *Subcategory) SplitPath() string {
	return s.store.Path()
}

// splitInfoConstructor builds one metadata table per distinct value of the
// criteria column.
func (s *Subcategory) splitInfoConstructor(info dataframe.DataFrame) (map[string]dataframe.DataFrame, error) {
	if info.Err != nil {
		return nil, errors.WithStack(info.Err)
	}
	columns := info.Names()
	if !hasColumn(columns, s.criteria) {
		return nil, errors.NewInvalidCriteriaError(s.criteria, columns)
	}

	tables := make(map[string]dataframe.DataFrame)
	for _, category := range distinctValues(info, s.criteria) {
		subset := info.Filter(dataframe.F{Colname: s.criteria, Comparator: series.Eq, Comparando: category})
		if subset.Err != nil {
			return nil, errors.WithStack(subset.Err)
		}
		tables[category] = subset
	}
	return tables, nil
}

// Split partitions the dataset into one view per distinct value of the
// criteria column, in ascending order of that value. The returned sequence
// is lazy and disk-backed: each view's metadata is read from the split
// directory as iteration reaches it, and iterating again re-reads the same
// files. Errors in the persistence gate (invalid criteria column, write
// failures) are returned eagerly; read failures surface through the
// sequence.
func (s *Subcategory) Split(ds *datasets.BaseDataset) (iter.Seq2[*datasets.BaseDataset, error], error) {
	logger := log.GetLoggerWithName("model_selection")
	if !s.store.Exists() {
		logger.Info("Create the category split",
			log.SplitPathKey, s.store.Path(),
			log.CriteriaKey, s.criteria,
		)
		logger.Info("Please set split_path for the next run, if you want to use the same setting for the experiment",
			log.SplitPathKey, s.store.Path(),
		)

		tables, err := s.splitInfoConstructor(ds.Info)
		if err != nil {
			return nil, err
		}
		if err := s.store.WriteTables(tables); err != nil {
			return nil, err
		}
		logger.Info("Computed category partition",
			log.CriteriaKey, s.criteria,
			log.CategoriesKey, len(tables),
			log.SamplesKey, ds.Len(),
		)
	} else {
		logger.Info("Detected existing category split, use existing split",
			log.SplitPathKey, s.store.Path(),
		)
		logger.Info("If the dataset is re-generated, you need to re-generate the split of the dataset instead of using the previous split")
	}

	categories, err := s.store.Categories()
	if err != nil {
		return nil, err
	}

	return func(yield func(*datasets.BaseDataset, error) bool) {
		for _, category := range categories {
			info, err := s.store.ReadTable(category)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(ds.WithInfo(info), nil) {
				return
			}
		}
	}, nil
}

// String returns a diagnostic representation of the constructor parameters.
func (s *Subcategory) String() string {
	return fmt.Sprintf("Subcategory(criteria='%s', split_path='%s')", s.criteria, s.store.Path())
}
