// Package main provides a performance benchmarking tool for the babynames CLI.
// It measures execution times for every ranking command across record sources and
// grouping strategies, running each test multiple times, treating the first successful
// run as cold and averaging the rest as warm, and generating CSV output for comparison.
//
// Prerequisites:
// - babynames binary installed and available in PATH
// - The baby names dataset extracted to a directory of per-state files
//
// Usage: go run benchmark/main.go [data-dir]
//
//	data-dir: Directory containing the per-state text files
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Variant  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkVariant is one record source and grouping combination.
type BenchmarkVariant struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataDir  string
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Commands map[string][]string
	Variants []BenchmarkVariant
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [data-dir]\n", os.Args[0])
		os.Exit(1)
	}
	dataDir := os.Args[1]

	workDir, err := os.MkdirTemp("", "babynames-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	parquetPath := filepath.Join(workDir, "names.parquet")
	sqlitePath := filepath.Join(workDir, "names.db")

	config := BenchmarkConfig{
		DataDir: dataDir,
		WorkDir: workDir,
		Timeout: 5 * time.Minute,
		Runs:    4,
		Commands: map[string][]string{
			"popular":   {"popular"},
			"ambiguous": {"ambiguous"},
			"trends":    {"trends"},
			"report":    {"report"},
		},
		Variants: []BenchmarkVariant{
			{Name: "csv-hash", Args: []string{"--data", dataDir, "--grouping", "hash"}},
			{Name: "csv-sorted", Args: []string{"--data", dataDir, "--grouping", "sorted"}},
			{Name: "parquet-hash", Args: []string{"--source", "parquet", "--data", parquetPath}},
			{Name: "sqlite-hash", Args: []string{"--source", "sqlite", "--data", sqlitePath}},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	if err := prepareSources(config, parquetPath, sqlitePath); err != nil {
		fmt.Printf("Failed to prepare sources: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the babynames binary and the data directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("babynames"); err != nil {
		return fmt.Errorf("babynames binary not found in PATH")
	}
	if _, err := os.Stat(config.DataDir); os.IsNotExist(err) {
		return fmt.Errorf("data directory not found at %s", config.DataDir)
	}
	return nil
}

// prepareSources converts the text files to Parquet and imports them into SQLite
func prepareSources(config BenchmarkConfig, parquetPath, sqlitePath string) error {
	fmt.Printf("Converting %s to Parquet...\n", config.DataDir)
	convertCmd := exec.Command("babynames", "dataset", "convert", "--data", config.DataDir, "--output-file", parquetPath)
	if output, err := convertCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("convert failed: %w\nOutput: %s", err, string(output))
	}

	fmt.Printf("Importing %s into SQLite...\n", config.DataDir)
	importCmd := exec.Command("babynames", "dataset", "import", "--data", config.DataDir,
		"--target-backend", "sqlite", "--target-connect", sqlitePath)
	if output, err := importCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("import failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// runBenchmarks executes every command against every variant
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d variants, %d commands, %v timeout, %d runs\n",
		len(config.Variants), len(config.Commands), config.Timeout, config.Runs)

	for _, variant := range config.Variants {
		fmt.Printf("Benchmarking %s\n", variant.Name)
		for _, command := range sortedCommands(config) {
			args := append(append([]string{}, config.Commands[command]...), variant.Args...)
			coldTime, warmTimes := runBenchmark(config, args)

			result := BenchmarkResult{Variant: variant.Name, Command: command, ColdTime: "TIMEOUT", WarmTime: "TIMEOUT"}
			if coldTime > 0 {
				result.ColdTime = fmt.Sprintf("%.3fs", coldTime)
			}
			if len(warmTimes) > 0 {
				var sum float64
				for _, t := range warmTimes {
					sum += t
				}
				result.WarmTime = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
			}
			fmt.Printf("  %-10s Cold time: %s, Warm average: %s\n", command, result.ColdTime, result.WarmTime)
			results = append(results, result)
		}
	}

	return results
}

// sortedCommands returns the commands in a fixed order
func sortedCommands(config BenchmarkConfig) []string {
	order := []string{"popular", "ambiguous", "trends", "report"}
	commands := make([]string, 0, len(order))
	for _, c := range order {
		if _, ok := config.Commands[c]; ok {
			commands = append(commands, c)
		}
	}
	return commands
}

// runBenchmark executes a babynames command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("babynames", args...)
		cmd.Dir = config.WorkDir

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.Output()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Computed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/babynames_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"variant", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Variant, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range sortedCommands(config) {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-12s: Cold: %s, Warm: %s\n", result.Variant, result.ColdTime, result.WarmTime)
			}
		}
	}
}
