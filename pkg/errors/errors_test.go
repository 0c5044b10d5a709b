package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewDegeneratePartitionError(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		numTrials int
		numTrain  int
		numTest   int
		wantMsg   string
	}{
		{
			name:      "empty test group",
			subject:   "s01",
			numTrials: 1,
			numTrain:  1,
			numTest:   0,
			wantMsg:   "torcheeg: the number of training or testing trials for subject s01 is zero (trials: 1, train: 1, test: 0)",
		},
		{
			name:      "empty train group",
			subject:   "s02",
			numTrials: 2,
			numTrain:  0,
			numTest:   2,
			wantMsg:   "torcheeg: the number of training or testing trials for subject s02 is zero (trials: 2, train: 0, test: 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDegeneratePartitionError(tt.subject, tt.numTrials, tt.numTrain, tt.numTest)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			// DegeneratePartitionError型にキャスト可能か確認
			var partErr *DegeneratePartitionError
			if !As(err, &partErr) {
				t.Error("Error should be castable to *DegeneratePartitionError")
			}
			if partErr.Subject != tt.subject {
				t.Errorf("Subject = %v, want %v", partErr.Subject, tt.subject)
			}
		})
	}
}

func TestNewInvalidCriteriaError(t *testing.T) {
	err := NewInvalidCriteriaError("paradigm", []string{"subject_id", "trial_id", "task"})

	// メッセージに選択可能な列名が列挙されることを確認
	want := "torcheeg: unsupported criteria paradigm, please select one of the following options [subject_id, trial_id, task]"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var criteriaErr *InvalidCriteriaError
	if !As(err, &criteriaErr) {
		t.Error("Error should be castable to *InvalidCriteriaError")
	}
}

func TestNewMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("TrainTestSplitCrossTrial", "trial_id", []string{"subject_id", "task"})

	want := "torcheeg: TrainTestSplitCrossTrial: required column 'trial_id' not found in metadata (available: [subject_id, task])"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var colErr *MissingColumnError
	if !As(err, &colErr) {
		t.Error("Error should be castable to *MissingColumnError")
	}
}

func TestNewSplitStoreError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := NewSplitStoreError("WriteTables", "/tmp/split_1", cause)

	want := "torcheeg: WriteTables: split path /tmp/split_1: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// Unwrapで元のエラーが取得できることを確認
	if !Is(err, cause) {
		t.Error("Is() should match the wrapped error")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	w := New("split directory already populated")
	Warn(w)

	if captured == nil || captured.Error() != w.Error() {
		t.Errorf("Warn() captured = %v, want %v", captured, w)
	}
}
