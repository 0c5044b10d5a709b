package model_selection

import (
	"math"
	"math/rand/v2"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"github.com/w4w4n78/torcheeg/datasets"
	"github.com/w4w4n78/torcheeg/pkg/errors"
	"github.com/w4w4n78/torcheeg/pkg/log"
	"github.com/w4w4n78/torcheeg/utils"
)

const (
	subjectColumn = "subject_id"
	trialColumn   = "trial_id"
)

// Option configures TrainTestSplitCrossTrial.
type Option func(*splitParams)

type splitParams struct {
	testSize    float64
	testCount   int
	shuffle     bool
	randomState int64
	splitPath   string
	store       SplitStore
}

// WithTestSize sets the fraction of each subject's trials held out for
// testing. Must be in (0, 1). Default 0.2.
func WithTestSize(size float64) Option {
	return func(p *splitParams) {
		p.testSize = size
	}
}

// WithTestCount sets an absolute number of test trials per subject,
// overriding the fraction set by WithTestSize.
func WithTestCount(count int) Option {
	return func(p *splitParams) {
		p.testCount = count
	}
}

// WithShuffle controls whether trial order is permuted before slicing.
// Samples within each split are never shuffled.
func WithShuffle(shuffle bool) Option {
	return func(p *splitParams) {
		p.shuffle = shuffle
	}
}

// WithRandomState seeds the shuffle permutation. It has no effect unless
// shuffling is enabled.
func WithRandomState(seed int64) Option {
	return func(p *splitParams) {
		p.randomState = seed
	}
}

// WithSplitPath sets the directory holding the partition information. If the
// path exists the persisted partition is reused; otherwise the computed
// partition is saved there for the next run. When unset, a random path is
// generated.
func WithSplitPath(path string) Option {
	return func(p *splitParams) {
		p.splitPath = path
	}
}

// WithStore replaces the default directory-backed SplitStore.
func WithStore(store SplitStore) Option {
	return func(p *splitParams) {
		p.store = store
	}
}

// TrainTestSplitCrossTrial divides a dataset into a training set and a test
// set at the granularity of trials, per subject. Part of each subject's
// trials is held out for testing according to the test size; all samples of
// a trial land on the same side of the split, so no trial is ever divided
// between the two sets.
//
// The partition decision is persisted under the split path on first use and
// reused verbatim on subsequent calls, which keeps repeated experiment runs
// on an identical split. The returned datasets are views sharing the input
// dataset's configuration, bound to the train and test metadata read back
// from disk.
//
// Example:
//
//	train, test, err := model_selection.TrainTestSplitCrossTrial(dataset,
//	    model_selection.WithTestSize(0.2),
//	    model_selection.WithSplitPath("./split"),
//	)
func TrainTestSplitCrossTrial(ds *datasets.BaseDataset, opts ...Option) (*datasets.BaseDataset, *datasets.BaseDataset, error) {
	p := &splitParams{testSize: 0.2}
	for _, opt := range opts {
		opt(p)
	}

	if p.testCount == 0 && (p.testSize <= 0 || p.testSize >= 1) {
		return nil, nil, errors.NewValidationError("test_size", "must be in (0, 1)", p.testSize)
	}
	if p.testCount < 0 {
		return nil, nil, errors.NewValidationError("test_size", "absolute test count must be positive", p.testCount)
	}

	store := p.store
	if store == nil {
		path := p.splitPath
		if path == "" {
			path = utils.RandomDirPath("model_selection")
		}
		store = NewDirStore(path)
	}

	logger := log.GetLoggerWithName("model_selection")
	if !store.Exists() {
		logger.Info("Create the split of train and test set",
			log.SplitPathKey, store.Path(),
			log.TestSizeKey, p.testSize,
			log.ShuffleKey, p.shuffle,
		)
		logger.Info("Please set split_path for the next run, if you want to use the same setting for the experiment",
			log.SplitPathKey, store.Path(),
		)

		trainInfo, testInfo, err := splitInfoCrossTrial(ds.Info, p, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := store.WriteTables(map[string]dataframe.DataFrame{
			"train": trainInfo,
			"test":  testInfo,
		}); err != nil {
			return nil, nil, err
		}
	} else {
		logger.Info("Detected existing split of train and test set, use existing split",
			log.SplitPathKey, store.Path(),
		)
		logger.Info("If the dataset is re-generated, you need to re-generate the split of the dataset instead of using the previous split")
	}

	// Read back from disk on both paths so fresh and reused splits flow
	// through identical code.
	trainInfo, err := store.ReadTable("train")
	if err != nil {
		return nil, nil, err
	}
	testInfo, err := store.ReadTable("test")
	if err != nil {
		return nil, nil, err
	}

	return ds.WithInfo(trainInfo), ds.WithInfo(testInfo), nil
}

// splitInfoCrossTrial computes the train/test metadata tables. Any error is
// raised before a single file is written.
func splitInfoCrossTrial(info dataframe.DataFrame, p *splitParams, logger log.Logger) (dataframe.DataFrame, dataframe.DataFrame, error) {
	var zero dataframe.DataFrame
	if info.Err != nil {
		return zero, zero, errors.WithStack(info.Err)
	}
	if info.Nrow() == 0 {
		return zero, zero, errors.Wrap(errors.ErrEmptyData, "TrainTestSplitCrossTrial")
	}
	columns := info.Names()
	for _, required := range []string{subjectColumn, trialColumn} {
		if !hasColumn(columns, required) {
			return zero, zero, errors.NewMissingColumnError("TrainTestSplitCrossTrial", required, columns)
		}
	}

	// Subjects iterate in sorted order so the concatenated result is
	// reproducible run to run.
	subjects := distinctValues(info, subjectColumn)
	sortNatural(subjects)

	var trainParts, testParts []dataframe.DataFrame
	trialCounts := make([]float64, 0, len(subjects))

	for _, subject := range subjects {
		subjectInfo := info.Filter(dataframe.F{Colname: subjectColumn, Comparator: series.Eq, Comparando: subject})
		if subjectInfo.Err != nil {
			return zero, zero, errors.WithStack(subjectInfo.Err)
		}

		trialIDs := distinctValues(subjectInfo, trialColumn)
		trialCounts = append(trialCounts, float64(len(trialIDs)))

		trainIDs, testIDs := splitTrialIDs(trialIDs, p)
		if len(trainIDs) == 0 || len(testIDs) == 0 {
			return zero, zero, errors.NewDegeneratePartitionError(subject, len(trialIDs), len(trainIDs), len(testIDs))
		}

		for _, trialID := range trainIDs {
			trainParts = append(trainParts, subjectInfo.Filter(dataframe.F{Colname: trialColumn, Comparator: series.Eq, Comparando: trialID}))
		}
		for _, trialID := range testIDs {
			testParts = append(testParts, subjectInfo.Filter(dataframe.F{Colname: trialColumn, Comparator: series.Eq, Comparando: trialID}))
		}
	}

	trainInfo, err := concatParts(trainParts)
	if err != nil {
		return zero, zero, err
	}
	testInfo, err := concatParts(testParts)
	if err != nil {
		return zero, zero, err
	}

	logger.Info("Computed cross-trial partition",
		log.SubjectsKey, len(subjects),
		log.MeanTrialsPerSubjectKey, stat.Mean(trialCounts, nil),
		log.SamplesKey, info.Nrow(),
	)

	return trainInfo, testInfo, nil
}

// splitTrialIDs partitions one subject's trial ids into train and test
// groups. With shuffling disabled the tail fraction of trials, in
// first-encounter order, becomes the test group. The test group size is
// testSize*n rounded half to even.
func splitTrialIDs(trialIDs []string, p *splitParams) (trainIDs, testIDs []string) {
	n := len(trialIDs)

	numTest := p.testCount
	if numTest == 0 {
		numTest = int(math.RoundToEven(p.testSize * float64(n)))
	}
	if numTest < 0 {
		numTest = 0
	}
	if numTest > n {
		numTest = n
	}

	order := trialIDs
	if p.shuffle {
		order = make([]string, n)
		copy(order, trialIDs)
		r := rand.New(rand.NewPCG(uint64(p.randomState), uint64(p.randomState)))
		r.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	return order[:n-numTest], order[n-numTest:]
}

// distinctValues returns the distinct values of a column in first-encounter
// order.
func distinctValues(df dataframe.DataFrame, column string) []string {
	records := df.Col(column).Records()
	seen := make(map[string]struct{}, len(records))
	var values []string
	for _, v := range records {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

func concatParts(parts []dataframe.DataFrame) (dataframe.DataFrame, error) {
	result := parts[0]
	for _, part := range parts[1:] {
		result = result.RBind(part)
	}
	if result.Err != nil {
		return dataframe.DataFrame{}, errors.WithStack(result.Err)
	}
	return result, nil
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
