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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Ghaith-Chrit/BST-Benchmark/bench"
)

type DemoConfig struct {
	NumItems   int    `yaml:"num_items"`
	NumQueries int    `yaml:"num_queries"`
	Workload   string `yaml:"workload"`
	Seed       int64  `yaml:"seed"`
}

type ScalingConfig struct {
	MinItems        int            `yaml:"min_items"`
	MaxItems        int            `yaml:"max_items"`
	NumSteps        int            `yaml:"num_steps"`
	QueriesRatio    float64        `yaml:"queries_ratio"`
	FixQueriesRatio bool           `yaml:"fix_queries_ratio"`
	Workload        string         `yaml:"workload"`
	Structures      []string       `yaml:"structures_to_test"`
	ExcludeAbove    map[string]int `yaml:"exclude_above"`
	NumTrials       int            `yaml:"num_trials"`
	Seed            int64          `yaml:"seed"`
	SaveRoot        string         `yaml:"save_root"`
}

type Config struct {
	DemoRun             bool              `yaml:"demo_run"`
	ScalingBenchmarkRun bool              `yaml:"scaling_benchmark_run"`
	Demo                DemoConfig        `yaml:"demo"`
	Scaling             ScalingConfig     `yaml:"scaling_benchmark"`
	Print               bench.PrintConfig `yaml:"print_config"`
}

var defaultConfig = Config{
	DemoRun:             true,
	ScalingBenchmarkRun: false,
	Demo: DemoConfig{
		NumItems:   50_000,
		NumQueries: 25_000,
		Workload:   bench.WorkloadRandom,
		Seed:       42,
	},
	Scaling: ScalingConfig{
		MinItems:        1_000,
		MaxItems:        200_000,
		NumSteps:        8,
		QueriesRatio:    0.4,
		FixQueriesRatio: true,
		Workload:        bench.WorkloadRandom,
		Structures:      []string{"avl", "rb", "treap"},
		NumTrials:       3,
		Seed:            42,
		SaveRoot:        "results",
	},
	Print: bench.DefaultPrintConfig(),
}

const configPath = "config/main.yaml"

func LoadConfig() (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func createDefaultConfigFile() error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config folder: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func (s ScalingConfig) toOptions() bench.ScalingOptions {
	return bench.ScalingOptions{
		MinItems:        s.MinItems,
		MaxItems:        s.MaxItems,
		NumSteps:        s.NumSteps,
		QueriesRatio:    s.QueriesRatio,
		FixQueriesRatio: s.FixQueriesRatio,
		Workload:        s.Workload,
		Structures:      s.Structures,
		ExcludeAbove:    s.ExcludeAbove,
		NumTrials:       s.NumTrials,
		Seed:            s.Seed,
		ShowProgress:    true,
	}
}

func displaySettings() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		fmt.Printf("❌ Failed to render configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 BST-Benchmark Configuration\n")
	fmt.Printf("══════════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n\n", configPath)
	fmt.Println(string(data))
}
