package log

import (
	"context"
	"testing"
)

func TestSetProviderSwapsAndRestores(t *testing.T) {
	tp, _ := NewTestLoggerProvider(LevelDebug)
	SetProvider(tp)
	defer SetProvider(nil)

	logger := GetLoggerWithName("model_selection")
	logger.Info("Create the split of train and test set", SplitPathKey, "/tmp/split_1")

	if !tp.Logger().ContainsMessage("Create the split of train and test set") {
		t.Error("expected message to be captured by the test provider")
	}
	if !tp.Logger().ContainsField(SplitPathKey, "/tmp/split_1") {
		t.Errorf("expected field %s to be captured", SplitPathKey)
	}
	if !tp.Logger().ContainsField(ComponentKey, "model_selection") {
		t.Errorf("expected field %s from GetLoggerWithName", ComponentKey)
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	if logger.ContainsMessage("debug message") || logger.ContainsMessage("info message") {
		t.Error("messages below the minimum level should not be captured")
	}
	if !logger.ContainsMessage("warn message") || !logger.ContainsMessage("error message") {
		t.Error("messages at or above the minimum level should be captured")
	}

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}

	logger.Clear()
	if buffer.Len() != 0 {
		t.Error("Clear() should empty the buffer")
	}
}

func TestTestLoggerWithFields(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	scoped := logger.With(CriteriaKey, "task")

	scoped.Info("Detected existing split", SplitPathKey, "/tmp/split_2")

	testLogger, ok := scoped.(*TestLogger)
	if !ok {
		t.Fatal("With() should return a *TestLogger")
	}
	if !testLogger.ContainsField(CriteriaKey, "task") {
		t.Error("pre-populated field should appear in log entries")
	}
	if !scoped.Enabled(context.Background(), LevelInfo) {
		t.Error("Enabled() should report true at the configured level")
	}
}
