//go:build arm64 && !purego

package install

import (
	// Reference and portable vector kernels
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/generic"
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/vector"

	// ARM64 implementations
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/arm64/neon"
)
