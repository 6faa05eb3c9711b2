package checksum

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

var preferred = detect()

func detect() Strategy {
	if hasVector(runtime.GOARCH) {
		return Vector
	}
	return Scalar
}

func hasVector(arch string) bool {
	switch arch {
	case "amd64":
		return cpu.X86.HasAVX2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}
