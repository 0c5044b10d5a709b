// Package torcheeg provides reproducible dataset handling for EEG analysis
// in Go, centered on persistent train/test and category splits for
// cross-validation experiments.
//
// Splitting at the level of trials or categories, rather than individual
// samples, avoids the temporal and contextual leakage that naive random
// splitting introduces in EEG data. Every partition decision is persisted to
// a split directory as plain CSV, so repeated experiment runs reuse an
// identical split instead of regenerating a random one.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/go-gota/gota/dataframe"
//
//	    "github.com/w4w4n78/torcheeg/datasets"
//	    "github.com/w4w4n78/torcheeg/model_selection"
//	)
//
//	func main() {
//	    f, err := os.Open("./data_preprocessed/info.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer f.Close()
//	    info := dataframe.ReadCSV(f, dataframe.DetectTypes(false))
//
//	    dataset := datasets.NewBaseDataset("./data_preprocessed", info)
//
//	    train, test, err := model_selection.TrainTestSplitCrossTrial(dataset,
//	        model_selection.WithTestSize(0.2),
//	        model_selection.WithSplitPath("./split"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _, _ = train, test
//	}
//
// # Packages
//
//   - datasets: the BaseDataset structure and metadata views
//   - model_selection: trial-level train/test splitting and category subsets
//   - utils: cache directory and random path helpers
//   - pkg/errors: structured error types and the warning system
//   - pkg/log: slog-compatible structured logging
package torcheeg
