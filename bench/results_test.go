// Copyright 2025 Ghaith Chrit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResultsFilePath(t *testing.T) {
	root := t.TempDir()

	path, err := ResultsFilePath(root)
	if err != nil {
		t.Fatalf("ResultsFilePath: %v", err)
	}
	if got := filepath.Base(path); got != "results.json" {
		t.Errorf("file name = %q, want %q", got, "results.json")
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("stat results folder: %v", err)
	}
	if !info.IsDir() {
		t.Error("results folder is not a directory")
	}
}

func TestSaveResultsJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	payload := ResultsPayload{
		Meta: map[string]any{
			"workload": WorkloadRandom,
		},
		DatasetSizes: []int{100, 1_000},
		Results: ScalingResults{
			"avl": {
				"insert_sec_median": {0.01, 0.12},
			},
		},
	}
	if err := SaveResultsJSON(path, payload); err != nil {
		t.Fatalf("SaveResultsJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}

	var loaded ResultsPayload
	if err := json.Unmarshal(raw, &loaded); err != nil {
		t.Fatalf("unmarshal saved file: %v", err)
	}

	if got, want := loaded.Meta["workload"], WorkloadRandom; got != want {
		t.Errorf("meta workload = %v, want %v", got, want)
	}
	if len(loaded.DatasetSizes) != 2 || loaded.DatasetSizes[0] != 100 || loaded.DatasetSizes[1] != 1_000 {
		t.Errorf("dataset sizes = %v, want [100 1000]", loaded.DatasetSizes)
	}
	series := loaded.Results["avl"]["insert_sec_median"]
	if len(series) != 2 || series[0] != 0.01 || series[1] != 0.12 {
		t.Errorf("insert series = %v, want [0.01 0.12]", series)
	}
	if _, err := time.Parse(time.RFC3339, loaded.SavedAt); err != nil {
		t.Errorf("saved_at %q is not RFC3339: %v", loaded.SavedAt, err)
	}
}
