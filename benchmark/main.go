// Package main provides a performance benchmarking tool for the folio CLI.
// It measures execution times across datasets of different sizes and command types,
// running each test multiple times. Runs without a store parse the CSV every time;
// runs with the SQLite store treat the first run as cold and average the rest as warm.
//
// Prerequisites:
// - folio binary installed and available in PATH
// - Dataset directories under the base directory, each with loc.csv and projects.json
//
// Usage: go run benchmark/main.go [dataset-base-dir]
//
//	dataset-base-dir: Directory containing one subdirectory per dataset
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-store average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoStoreTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DatasetBase string
	Timeout     time.Duration
	NoStoreRuns int
	StoreRuns   int
	Datasets    []string
	Commands    map[string][]string
}

var commandOrder = []string{"commits", "stats", "steps", "brush"}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [dataset-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		DatasetBase: os.Args[1],
		Timeout:     2 * time.Minute,
		NoStoreRuns: 3,
		StoreRuns:   4,
		Commands: map[string][]string{
			"commits": {"commits"},
			"stats":   {"stats", "--progress", "50"},
			"steps":   {"steps"},
			"brush":   {"commits", "--brush", "0,0,1000,600"},
		},
	}

	datasets, err := findDatasets(config.DatasetBase)
	if err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}
	config.Datasets = datasets

	fmt.Printf("Clearing stores...\n")
	if output, err := exec.Command("folio", "store", "clear").CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear stores: %v\nOutput: %s\n", err, string(output))
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// findDatasets checks for the folio binary and lists dataset directories with both source files.
func findDatasets(base string) ([]string, error) {
	if _, err := exec.LookPath("folio"); err != nil {
		return nil, fmt.Errorf("folio binary not found in PATH")
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, err
	}
	var datasets []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(base, e.Name())
		if fileExists(filepath.Join(dir, "loc.csv")) && fileExists(filepath.Join(dir, "projects.json")) {
			datasets = append(datasets, e.Name())
		}
	}
	if len(datasets) == 0 {
		return nil, fmt.Errorf("no datasets found under %s", base)
	}
	return datasets, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, no-store: %d runs, store: %d runs\n",
		len(config.Datasets), config.Timeout, config.NoStoreRuns, config.StoreRuns)

	for _, dataset := range config.Datasets {
		fmt.Printf("Benchmarking %s\n", dataset)
		dir := filepath.Join(config.DatasetBase, dataset)
		for _, name := range commandOrder {
			results = append(results, runBenchmarkSuite(config, dataset, dir, name))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-store and store benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, dir, name string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", name, dataset)

	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, dir, config.Commands[name], backend, numRuns)
		if len(times) == 0 {
			return cold, "TIMEOUT"
		}
		var sum float64
		for _, t := range times {
			sum += t
		}
		return cold, fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	_, noStoreAvg := runPhase("none", config.NoStoreRuns, "No-store")
	coldTime, warmAvg := runPhase("sqlite", config.StoreRuns, "Store")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-store average: %s, Cold time: %s, Warm average: %s\n", noStoreAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     dataset,
		Command:     name,
		NoStoreTime: noStoreAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a folio command multiple times with the given store backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, dir string, command []string, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{}, command...)
	args = append(args,
		"--lines", filepath.Join(dir, "loc.csv"),
		"--projects", filepath.Join(dir, "projects.json"),
		"--store-backend", backend,
		"--output", "json",
	)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		err := exec.CommandContext(ctx, "folio", args...).Run()
		elapsed := time.Since(start).Seconds()
		cancel()
		if err == nil {
			times = append(times, elapsed)
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("folio_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "cmd", "no_store_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoStoreTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, name := range commandOrder {
		fmt.Printf("%s:\n", name)
		for _, result := range results {
			if result.Command == name {
				fmt.Printf("  %-12s: No-store: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoStoreTime, result.ColdTime, result.WarmTime)
			}
		}
	}
}
