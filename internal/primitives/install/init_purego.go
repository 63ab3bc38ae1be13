//go:build purego

package install

import (
	// Reference kernels only; the vector variant stays empty.
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/generic"
)
