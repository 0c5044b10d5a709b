package model_selection

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-gota/gota/dataframe"

	"github.com/w4w4n78/torcheeg/pkg/errors"
)

func storeTable(rows ...[]string) dataframe.DataFrame {
	records := [][]string{{"subject_id", "trial_id"}}
	records = append(records, rows...)
	return dataframe.LoadRecords(records, dataframe.DetectTypes(false))
}

func TestDirStoreWriteReadRoundTrip(t *testing.T) {
	splitPath := filepath.Join(t.TempDir(), "split")
	store := NewDirStore(splitPath)

	if store.Exists() {
		t.Fatal("store should not exist before WriteTables")
	}

	err := store.WriteTables(map[string]dataframe.DataFrame{
		"train": storeTable([]string{"s01", "0"}, []string{"s01", "1"}),
		"test":  storeTable([]string{"s01", "2"}),
	})
	if err != nil {
		t.Fatalf("WriteTables() error = %v", err)
	}

	if !store.Exists() {
		t.Error("store should exist after WriteTables")
	}
	if _, statErr := os.Stat(splitPath + ".tmp"); !os.IsNotExist(statErr) {
		t.Error("staging directory left behind")
	}

	train, err := store.ReadTable("train")
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	want := [][]string{{"subject_id", "trial_id"}, {"s01", "0"}, {"s01", "1"}}
	if !reflect.DeepEqual(train.Records(), want) {
		t.Errorf("ReadTable(train) = %v, want %v", train.Records(), want)
	}
}

func TestDirStoreCategoriesFromManifest(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "split"))

	err := store.WriteTables(map[string]dataframe.DataFrame{
		"10":   storeTable([]string{"s01", "0"}),
		"2":    storeTable([]string{"s01", "1"}),
		"rest": storeTable([]string{"s01", "2"}),
	})
	if err != nil {
		t.Fatalf("WriteTables() error = %v", err)
	}

	categories, err := store.Categories()
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	// integers order numerically, mixed values fall back to string order
	want := []string{"2", "10", "rest"}
	if !reflect.DeepEqual(categories, want) {
		t.Errorf("Categories() = %v, want %v", categories, want)
	}
}

func TestDirStoreCategoriesFilenameFallback(t *testing.T) {
	splitPath := filepath.Join(t.TempDir(), "split")
	if err := os.MkdirAll(splitPath, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"rest.csv", "motor.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(splitPath, name), []byte("subject_id\ns01\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store := NewDirStore(splitPath)
	categories, err := store.Categories()
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"motor", "rest"}
	if !reflect.DeepEqual(categories, want) {
		t.Errorf("Categories() = %v, want %v (csv files only, sorted)", categories, want)
	}
}

func TestDirStoreReadTableMissing(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "split"))

	_, err := store.ReadTable("train")
	if err == nil {
		t.Fatal("expected error reading from an absent store")
	}
	var storeErr *errors.SplitStoreError
	if !errors.As(err, &storeErr) {
		t.Errorf("error = %v, want SplitStoreError", err)
	}
}

func TestSortNatural(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "integers numerically",
			values: []string{"10", "2", "1"},
			want:   []string{"1", "2", "10"},
		},
		{
			name:   "strings lexically",
			values: []string{"rest", "motor"},
			want:   []string{"motor", "rest"},
		},
		{
			name:   "mixed",
			values: []string{"rest", "10", "2"},
			want:   []string{"2", "10", "rest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortNatural(tt.values)
			if !reflect.DeepEqual(tt.values, tt.want) {
				t.Errorf("sortNatural() = %v, want %v", tt.values, tt.want)
			}
		})
	}
}
