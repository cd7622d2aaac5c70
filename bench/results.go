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
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ResultsPayload is the document saved after a scaling run. Results maps
// structure name to metric name to the series of values across dataset
// sizes.
type ResultsPayload struct {
	Meta         map[string]any                  `json:"meta"`
	DatasetSizes []int                           `json:"dataset_sizes"`
	Results      map[string]map[string][]float64 `json:"results"`
	SavedAt      string                          `json:"saved_at"`
}

// ResultsFilePath creates a timestamped subfolder under saveRoot and
// returns the path of the results.json file inside it.
func ResultsFilePath(saveRoot string) (string, error) {
	subfolder := filepath.Join(saveRoot, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(subfolder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results folder: %w", err)
	}
	return filepath.Join(subfolder, "results.json"), nil
}

// SaveResultsJSON writes the payload to path as indented JSON, stamping
// SavedAt with the current time.
func SaveResultsJSON(path string, payload ResultsPayload) error {
	if payload.Meta == nil {
		payload.Meta = map[string]any{}
	}
	payload.SavedAt = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal benchmark results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save benchmark results: %w", err)
	}
	return nil
}
