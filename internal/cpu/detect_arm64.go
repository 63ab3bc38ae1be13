//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detectImpl performs capability detection on arm64 systems.
//
// On ARMv8 (arm64), NEON is mandatory, so this should always be IDNEON.
func detectImpl() ID {
	if cpu.ARM64.HasASIMD {
		return IDNEON
	}
	return IDNone
}
