//go:build amd64 && goexperiment.simd

package batch

import "github.com/ajroetker/go-glm/glm"

func dot3Impl(ax, ay, az, bx, by, bz, out []float64, n int) {
	dot3AVX2(ax, ay, az, bx, by, bz, out, n)
}

func normalize3Impl(x, y, z []float64, n int) {
	normalize3AVX2(x, y, z, n)
}

func transformPointsImpl(m glm.Mat4[float64], x, y, z []float64, n int) {
	transformPointsAVX2(m, x, y, z, n)
}

func minMaxImpl(xs []float64) (float64, float64) {
	return minMaxAVX2(xs)
}
