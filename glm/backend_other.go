//go:build !amd64

package glm

func init() {
	// Non-amd64 architectures use the scalar bridges.
	currentBackend = BackendScalar
	currentWidth = 8
	currentName = "scalar"
}

// HasAVX2 reports false on non-x86 architectures.
func HasAVX2() bool {
	return false
}

// HasAVX512 reports false on non-x86 architectures.
func HasAVX512() bool {
	return false
}
