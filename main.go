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
	"log"

	"github.com/spf13/cobra"

	"github.com/Ghaith-Chrit/BST-Benchmark/bench"
)

const version = "1.0.0"

func main() {
	asciiLogo := `
██████╗ ███████╗████████╗    ██████╗ ███████╗███╗   ██╗ ██████╗██╗  ██╗
██╔══██╗██╔════╝╚══██╔══╝    ██╔══██╗██╔════╝████╗  ██║██╔════╝██║  ██║
██████╔╝███████╗   ██║       ██████╔╝█████╗  ██╔██╗ ██║██║     ███████║
██╔══██╗╚════██║   ██║       ██╔══██╗██╔══╝  ██║╚██╗██║██║     ██╔══██║
██████╔╝███████║   ██║       ██████╔╝███████╗██║ ╚████║╚██████╗██║  ██║
╚═════╝ ╚══════╝   ╚═╝       ╚═════╝ ╚══════╝╚═╝  ╚═══╝ ╚═════╝╚═╝  ╚═╝
Self-balancing search tree benchmarks: AVL, red-black and treap under identical workloads [Version: %s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, version)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Benchmark all engines once on a generated dataset",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo generates a random dataset, runs every engine through insert, lookup and delete phases, and prints a comparison table`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}

			items, _ := cmd.Flags().GetInt("items")
			queries, _ := cmd.Flags().GetInt("queries")
			seed, _ := cmd.Flags().GetInt64("seed")
			workload, _ := cmd.Flags().GetString("workload")

			if err := runDemo(items, queries, seed, workload, config.Print); err != nil {
				log.Fatalf("Error running benchmark: %v", err)
			}
		},
	}
	cmdDemo.Flags().Int("items", defaultConfig.Demo.NumItems, "number of strings to insert")
	cmdDemo.Flags().Int("queries", defaultConfig.Demo.NumQueries, "number of lookup and delete queries")
	cmdDemo.Flags().Int64("seed", defaultConfig.Demo.Seed, "dataset generation seed")
	cmdDemo.Flags().String("workload", defaultConfig.Demo.Workload, "workload: random, ascending, descending or hotspot")

	var cmdScale = &cobra.Command{
		Use:   "scale",
		Short: "Run the scaling benchmark and save results as JSON",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Scale benchmarks every engine across logarithmically spaced dataset sizes from the scaling_benchmark section of the configuration and saves the metric series to a timestamped results folder`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}
			if err := runScalingBenchmark(config); err != nil {
				log.Fatalf("Error running scaling benchmark: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print BST-Benchmark version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bst-benchmark",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Without a subcommand, the demo_run and
			// scaling_benchmark_run configuration flags decide what runs.
			config, err := LoadConfig()
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}

			ran := false
			if config.DemoRun {
				demo := config.Demo
				if err := runDemo(demo.NumItems, demo.NumQueries, demo.Seed, demo.Workload, config.Print); err != nil {
					log.Fatalf("Error running benchmark: %v", err)
				}
				ran = true
			}
			if config.ScalingBenchmarkRun {
				if err := runScalingBenchmark(config); err != nil {
					log.Fatalf("Error running scaling benchmark: %v", err)
				}
				ran = true
			}
			if !ran {
				fmt.Println("Nothing to run: enable demo_run or scaling_benchmark_run in the configuration, or use a subcommand.")
			}
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdScale, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

func runDemo(items, queries int, seed int64, workload string, printCfg bench.PrintConfig) error {
	dataset, length := bench.GenerateStrings(items, 16, seed)
	querySet := bench.SampleQueries(dataset, queries, length, seed)

	benchmark := bench.NewTreeBenchmark(dataset, querySet)
	benchmark.RandomSeed = seed

	results, err := benchmark.Run(workload)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Tree benchmark, %s workload", workload)
	fmt.Println(bench.RenderResults(results, title, len(dataset), len(querySet), printCfg))
	return nil
}

func runScalingBenchmark(config *Config) error {
	opts := config.Scaling.toOptions()

	results, sizes, err := bench.RunScaling(opts)
	if err != nil {
		return err
	}

	path, err := bench.ResultsFilePath(config.Scaling.SaveRoot)
	if err != nil {
		return err
	}

	payload := bench.ResultsPayload{
		Meta: map[string]any{
			"workload":          opts.Workload,
			"num_trials":        opts.NumTrials,
			"queries_ratio":     opts.QueriesRatio,
			"fix_queries_ratio": opts.FixQueriesRatio,
			"seed":              opts.Seed,
			"structures":        opts.Structures,
		},
		DatasetSizes: sizes,
		Results:      results,
	}
	if err := bench.SaveResultsJSON(path, payload); err != nil {
		return err
	}

	fmt.Printf("Saved scaling results to %s\n", path)
	return nil
}
