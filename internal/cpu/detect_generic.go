//go:build !amd64 && !arm64

package cpu

// detectImpl is the fallback for other architectures.
// Only portable kernels are installed.
func detectImpl() ID {
	return IDNone
}
