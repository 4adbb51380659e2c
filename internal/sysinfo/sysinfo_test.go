package sysinfo

import (
	"context"
	"testing"
)

func TestSampleString(t *testing.T) {
	s := Sample{CPUPercent: 7.4, MemPercent: 51.6}
	if got, want := s.String(), "CPU  7% MEM 52%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRead(t *testing.T) {
	s, err := Read(context.Background())
	if err != nil {
		t.Skipf("host metrics unavailable: %v", err)
	}
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent = %v", s.CPUPercent)
	}
	if s.MemTotal == 0 || s.MemUsed > s.MemTotal {
		t.Errorf("memory used %d of %d", s.MemUsed, s.MemTotal)
	}
}
