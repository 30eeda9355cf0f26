package cli

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

// profile runs fn under an optional CPU profile and writes an optional heap
// profile once it returns successfully. Empty paths disable either profile.
func profile(cpuPath, memPath string, fn func() error) error {
	if cpuPath != "" {
		f, err := os.Create(cpuPath)
		if err != nil {
			return bencherr.Configuration(err, "cli: create cpu profile %q", cpuPath)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return bencherr.Configuration(err, "cli: start cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	if err := fn(); err != nil {
		return err
	}

	if memPath == "" {
		return nil
	}
	f, err := os.Create(memPath)
	if err != nil {
		return bencherr.Configuration(err, "cli: create memory profile %q", memPath)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return bencherr.Configuration(err, "cli: write memory profile")
	}
	return nil
}
