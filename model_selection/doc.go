// Package model_selection provides reproducible dataset partitioning for
// EEG cross-validation experiments.
//
// Splits are computed at the granularity of trials or categories rather than
// individual samples, so contiguous recording segments never leak across the
// train/test boundary. Every partition decision is persisted to a split
// directory as plain CSV and reused verbatim on subsequent runs:
//
//	check split path -> exists: load persisted partition
//	                 -> absent: compute, persist, then load
//
// Both paths re-read the partition from disk before constructing the
// returned dataset views, so fresh and reused splits behave identically.
//
// # Train/test split across trials
//
// TrainTestSplitCrossTrial holds out a fraction of each subject's trials:
//
//	train, test, err := model_selection.TrainTestSplitCrossTrial(dataset,
//	    model_selection.WithTestSize(0.2),
//	    model_selection.WithSplitPath("./split"),
//	)
//
// # Category subsets
//
// Subcategory extracts one subset per distinct value of a metadata column:
//
//	cv := model_selection.NewSubcategory("task", "./split_task")
//	seq, err := cv.Split(dataset)
//	for subdataset, err := range seq {
//	    ...
//	}
//
// # Persistence caveats
//
// The split directory's presence is the only cache-validity signal. If the
// underlying dataset is re-generated, the previous partition is silently
// reused; use a fresh split path in that case. The check-then-create
// sequence is not protected against concurrent processes splitting to the
// same unset path.
package model_selection
