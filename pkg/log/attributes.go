// Package log defines standard attribute keys for dataset splitting operations.
//
// Using these standard keys enables consistent log analysis and filtering
// across experiment runs. The keys follow a hierarchical naming convention
// (e.g., "split.path", "data.samples").

package log

// Component and Operation Context
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "model_selection", "datasets"
	ComponentKey = "component"

	// OperationKey specifies the dataset operation being performed.
	// Standard values: "split", "split_info_constructor", "read", "write"
	OperationKey = "operation"
)

// Split Context
// These attributes describe a partition and its persistence.
const (
	// SplitPathKey is the resolved split directory. Users pin this path to
	// reuse the same partition on the next run.
	SplitPathKey = "split.path"

	// TestSizeKey is the fraction (or absolute trial count) held out for testing.
	TestSizeKey = "split.test_size"

	// ShuffleKey indicates whether trial order was permuted before slicing.
	ShuffleKey = "split.shuffle"

	// RandomStateKey is the seed used for the shuffle permutation.
	RandomStateKey = "split.random_state"

	// CriteriaKey is the metadata column a category split partitions on.
	CriteriaKey = "split.criteria"

	// CategoriesKey is the number of distinct category subsets.
	CategoriesKey = "split.categories"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the metadata index.
	SamplesKey = "data.samples"

	// SubjectsKey indicates the number of distinct recording subjects.
	SubjectsKey = "data.subjects"

	// TrialsKey indicates the number of distinct trials.
	TrialsKey = "data.trials"

	// MeanTrialsPerSubjectKey is the mean trial count across subjects.
	MeanTrialsPerSubjectKey = "data.mean_trials_per_subject"

	// ColumnsKey lists the metadata column names.
	ColumnsKey = "data.columns"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
