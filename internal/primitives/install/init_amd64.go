//go:build amd64 && !purego

package install

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	// Reference and portable vector kernels
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/generic"
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/vector"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/amd64/avx2"
)
