package app

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Build-time variables set via -ldflags:
//
//	go build -ldflags="-X github.com/agbru/bindtime/internal/app.Version=v1.2.3 -X github.com/agbru/bindtime/internal/app.Commit=abc123"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// VersionData is the machine-readable form of the version output.
type VersionData struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	OS        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
	// FMA reports hardware fused multiply-add. The compiler may fuse x*y+z
	// on such machines, so the last bits of a series can differ from a
	// machine without it.
	FMA bool `json:"fma" yaml:"fma"`
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		FMA:       hasFMA(),
	}
}

func hasFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64":
		// Fused multiply-add is part of the base ARMv8 floating point ISA.
		return cpu.ARM64.HasFP
	case "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	}
	return false
}

// PrintVersion writes the human-readable version block.
func PrintVersion(out io.Writer) {
	v := GetVersionInfo()
	fmt.Fprintf(out, "bindtime %s\n", v.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", v.Commit)
	fmt.Fprintf(out, "  Built:      %s\n", v.BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", v.GoVersion)
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", v.OS, v.Arch)
	fmt.Fprintf(out, "  FMA:        %t\n", v.FMA)
}
