// Package sysinfo samples host CPU and memory usage for the menu bar.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Sample is one CPU and memory reading.
type Sample struct {
	CPUPercent float64
	MemPercent float64
	MemUsed    uint64
	MemTotal   uint64
	At         time.Time
}

// String formats the sample for the menu bar.
func (s Sample) String() string {
	return fmt.Sprintf("CPU %2.0f%% MEM %2.0f%%", s.CPUPercent, s.MemPercent)
}

// Read takes a sample. CPU usage is measured since the previous call, so the
// first reading after start is an average since boot.
func Read(ctx context.Context) (Sample, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return Sample{}, fmt.Errorf("read cpu: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("read memory: %w", err)
	}

	s := Sample{
		MemPercent: vm.UsedPercent,
		MemUsed:    vm.Used,
		MemTotal:   vm.Total,
		At:         time.Now(),
	}
	if len(percents) > 0 {
		s.CPUPercent = percents[0]
	}
	return s, nil
}
