//go:build !amd64 && !arm64 && !purego

package install

import (
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/generic"
	_ "github.com/cwbudde/algo-pixcmp/internal/primitives/arch/vector"
)
