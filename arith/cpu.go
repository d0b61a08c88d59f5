package arith

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// HardwareFMA reports whether the processor executes fused multiply-add
// natively. When it does not, [Float64.MulAdd] still rounds once but falls
// back to a much slower software emulation.
func HardwareFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpuid.CPU.Supports(cpuid.FMA3)
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		// fused multiply-add is part of the base instruction set
		return true
	default:
		return false
	}
}

// CPUName returns the brand string of the processor, if known.
func CPUName() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return runtime.GOARCH
}
