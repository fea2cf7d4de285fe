// benchmark.go
// A reusable benchmarking module for the NanoPlot Go tools
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "benchmark",
})

// Run wraps any function to measure its runtime and memory usage.
func Run(label string, f func()) {
	logger.Infof("running: %s", label)

	// Snapshot environment info
	if host, err := os.Hostname(); err == nil {
		logger.Infof("hostname: %s", host)
	}
	logger.Infof("go version: %s", runtime.Version())
	logger.Infof("os/arch: %s/%s", runtime.GOOS, runtime.GOARCH)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	numCPU := runtime.NumCPU()
	startGoroutines := runtime.NumGoroutine()

	// Run benchmarked function
	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	// Report resource usage
	logger.Infof("time elapsed: %v", elapsed)
	logger.Infof("memory used: %.2f MB", float64(memEnd.Alloc-memStart.Alloc)/1024.0/1024.0)
	logger.Infof("total allocated: %.2f MB", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	logger.Infof("peak heap: %.2f MB", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	logger.Infof("gc cycles: %d", memEnd.NumGC-memStart.NumGC)
	logger.Infof("cpu cores: %d", numCPU)
	logger.Infof("goroutines: %d -> %d", startGoroutines, endGoroutines)
}
