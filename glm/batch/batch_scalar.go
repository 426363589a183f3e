//go:build !amd64 || !goexperiment.simd

package batch

import (
	"math"

	"github.com/ajroetker/go-glm/glm"
)

func dot3Impl(ax, ay, az, bx, by, bz, out []float64, n int) {
	for i := 0; i < n; i++ {
		out[i] = ax[i]*bx[i] + ay[i]*by[i] + az[i]*bz[i]
	}
}

func normalize3Impl(x, y, z []float64, n int) {
	for i := 0; i < n; i++ {
		d := math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
		x[i] /= d
		y[i] /= d
		z[i] /= d
	}
}

func transformPointsImpl(m glm.Mat4[float64], x, y, z []float64, n int) {
	for i := 0; i < n; i++ {
		px, py, pz := x[i], y[i], z[i]
		x[i] = m[0].X*px + m[0].Y*py + m[0].Z*pz + m[0].W
		y[i] = m[1].X*px + m[1].Y*py + m[1].Z*pz + m[1].W
		z[i] = m[2].X*px + m[2].Y*py + m[2].Z*pz + m[2].W
	}
}

func minMaxImpl(xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
