// Package main provides a performance benchmarking tool for the Wikistat CLI.
// It runs `wikistat report` over a set of dump files at several thread
// budgets, treating the first successful run as cold and averaging the rest
// as warm, and writes the timings to a CSV file.
//
// Prerequisites:
// - wikistat binary installed and available in PATH
// - One or more dump files (.xml, .bz2, .gz, .zst, .lz4)
//
// Usage: go run benchmark/main.go dump1.xml.bz2 [dump2.xml.bz2 ...]
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// BenchmarkResult holds the timings of one thread budget.
type BenchmarkResult struct {
	Threads  int
	Format   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Inputs  []string
	Timeout time.Duration
	Runs    int
	Threads []int
	Formats []string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s dump1.xml.bz2 [dump2.xml.bz2 ...]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		Inputs:  os.Args[1:],
		Timeout: 30 * time.Minute,
		Runs:    4,
		Threads: []int{1, 2, 4, 8},
		Formats: []string{"text", "json"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the wikistat binary and every input exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("wikistat"); err != nil {
		return fmt.Errorf("wikistat binary not found in PATH")
	}

	var total int64
	for _, in := range config.Inputs {
		info, err := os.Stat(in)
		if err != nil {
			return fmt.Errorf("input %s: %w", in, err)
		}
		total += info.Size()
	}
	fmt.Printf("Inputs: %d files, %s compressed\n", len(config.Inputs), humanize.IBytes(uint64(total)))
	return nil
}

// runBenchmarks executes every format at every thread budget
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %v timeout, %d runs, threads %v\n", config.Timeout, config.Runs, config.Threads)

	outDir, err := os.MkdirTemp("", "wikistat-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create output dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	for _, format := range config.Formats {
		for _, threads := range config.Threads {
			fmt.Printf("Running %s report with %d threads\n", format, threads)
			out := filepath.Join(outDir, "statistics."+format)
			cold, warm := runBenchmark(config, threads, format, out)

			result := BenchmarkResult{Threads: threads, Format: format, ColdTime: "TIMEOUT", WarmTime: "TIMEOUT"}
			if cold > 0 {
				result.ColdTime = fmt.Sprintf("%.3fs", cold)
			}
			if len(warm) > 0 {
				var sum float64
				for _, t := range warm {
					sum += t
				}
				result.WarmTime = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
			}
			fmt.Printf("  Cold time: %s, Warm average: %s\n", result.ColdTime, result.WarmTime)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmark executes wikistat report numRuns times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, threads int, format, out string) (coldTime float64, warmTimes []float64) {
	args := []string{
		"report",
		"--inputs", strings.Join(config.Inputs, ","),
		"--threads", strconv.Itoa(threads),
		"--format", format,
		"--output", out,
		"--history-backend", "none",
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("wikistat", args...)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		done := make(chan error, 1)
		go func() { done <- cmd.Run() }()

		select {
		case err := <-done:
			if err == nil && isSuccess(stderr.Bytes()) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks the closing summary line of a complete, non-partial run
func isSuccess(output []byte) bool {
	s := string(output)
	return strings.Contains(s, "✅") && strings.Contains(s, "pages from")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/wikistat_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"format", "threads", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Format, strconv.Itoa(result.Threads), result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-5s threads=%-2d: Cold: %s, Warm: %s\n", result.Format, result.Threads, result.ColdTime, result.WarmTime)
	}
}
