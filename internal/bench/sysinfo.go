package bench

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/ordolab/ordo/internal/analysis"
)

// CollectHostInfo snapshots the machine a benchmark ran on. Timing data
// from different hosts is not comparable, so the snapshot travels with
// the observations. Probe failures leave fields empty rather than
// failing the run.
func CollectHostInfo() *analysis.HostInfo {
	info := &analysis.HostInfo{
		OS:        runtime.GOOS,
		GoVersion: runtime.Version(),
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if counts, err := cpu.Counts(true); err == nil {
		info.CPUCores = counts
	}

	if v, err := mem.VirtualMemory(); err == nil {
		info.MemoryMB = v.Total / (1 << 20)
	}

	return info
}
