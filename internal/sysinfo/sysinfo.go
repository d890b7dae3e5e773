// Package sysinfo probes the host for the platform and processor strings
// recorded with each benchmark run.
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// Info identifies the machine a record came from.
type Info struct {
	Platform  string
	Processor string
}

// Probe collects host metadata via gopsutil, falling back to runtime
// constants when the probe fails (containers, exotic platforms).
func Probe() Info {
	info := Info{
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Processor: "unknown",
	}

	if h, err := host.Info(); err == nil && h.Platform != "" {
		info.Platform = fmt.Sprintf("%s %s (%s)", h.Platform, h.PlatformVersion, h.KernelArch)
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 && cpus[0].ModelName != "" {
		info.Processor = cpus[0].ModelName
	}

	return info
}
