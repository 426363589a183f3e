//go:build amd64 && goexperiment.simd

package batch

import (
	"math"

	"simd/archsimd"

	"github.com/ajroetker/go-glm/glm"
)

// AVX2 kernels over coordinate slices. Full blocks process four elements
// per iteration straight from the slices; tails load through zero-padded
// buffers and store through a lane mask, so memory past the run is never
// read or written.

var (
	negHalf4     = archsimd.BroadcastFloat64x4(-0.5)
	threeHalves4 = archsimd.BroadcastFloat64x4(1.5)
)

// firstN returns a mask with the first n of four lanes active.
func firstN(n int) archsimd.Mask64x4 {
	if n <= 0 {
		return archsimd.Mask64x4FromBits(0)
	}
	if n >= 4 {
		return archsimd.Mask64x4FromBits(0xF)
	}
	return archsimd.Mask64x4FromBits(uint8(1<<n - 1))
}

// blendTail writes the lanes of v selected by mask to dst and leaves the
// other elements of dst unchanged.
func blendTail(v archsimd.Float64x4, mask archsimd.Mask64x4, dst []float64) {
	var temp [4]float64
	v.StoreSlice(temp[:])
	bits := mask.ToBits()
	for i := range temp {
		if bits&(1<<i) != 0 {
			dst[i] = temp[i]
		}
	}
}

// rsqrt4 refines a single precision reciprocal square root seed with three
// Newton-Raphson steps y = y*(1.5 - 0.5*x*y*y).
func rsqrt4(x archsimd.Float64x4) archsimd.Float64x4 {
	var e, s [4]float64
	x.StoreSlice(e[:])
	for i := range e {
		s[i] = float64(float32(1 / math.Sqrt(e[i])))
	}
	y := archsimd.LoadFloat64x4Slice(s[:])
	for range 3 {
		f := negHalf4.MulAdd(x.Mul(y).Mul(y), threeHalves4)
		y = y.Mul(f)
	}
	return y
}

func dot3AVX2(ax, ay, az, bx, by, bz, out []float64, n int) {
	i := 0
	for ; i+4 <= n; i += 4 {
		d := archsimd.LoadFloat64x4Slice(ax[i:]).Mul(archsimd.LoadFloat64x4Slice(bx[i:]))
		d = archsimd.LoadFloat64x4Slice(ay[i:]).MulAdd(archsimd.LoadFloat64x4Slice(by[i:]), d)
		d = archsimd.LoadFloat64x4Slice(az[i:]).MulAdd(archsimd.LoadFloat64x4Slice(bz[i:]), d)
		d.StoreSlice(out[i:])
	}
	if rem := n - i; rem > 0 {
		var tax, tay, taz, tbx, tby, tbz [4]float64
		copy(tax[:], ax[i:n])
		copy(tay[:], ay[i:n])
		copy(taz[:], az[i:n])
		copy(tbx[:], bx[i:n])
		copy(tby[:], by[i:n])
		copy(tbz[:], bz[i:n])
		d := archsimd.LoadFloat64x4Slice(tax[:]).Mul(archsimd.LoadFloat64x4Slice(tbx[:]))
		d = archsimd.LoadFloat64x4Slice(tay[:]).MulAdd(archsimd.LoadFloat64x4Slice(tby[:]), d)
		d = archsimd.LoadFloat64x4Slice(taz[:]).MulAdd(archsimd.LoadFloat64x4Slice(tbz[:]), d)
		blendTail(d, firstN(rem), out[i:])
	}
}

func normalize3AVX2(x, y, z []float64, n int) {
	i := 0
	for ; i+4 <= n; i += 4 {
		vx := archsimd.LoadFloat64x4Slice(x[i:])
		vy := archsimd.LoadFloat64x4Slice(y[i:])
		vz := archsimd.LoadFloat64x4Slice(z[i:])
		d := vx.Mul(vx)
		d = vy.MulAdd(vy, d)
		d = vz.MulAdd(vz, d)
		rs := rsqrt4(d)
		vx.Mul(rs).StoreSlice(x[i:])
		vy.Mul(rs).StoreSlice(y[i:])
		vz.Mul(rs).StoreSlice(z[i:])
	}
	if rem := n - i; rem > 0 {
		var tx, ty, tz [4]float64
		copy(tx[:], x[i:n])
		copy(ty[:], y[i:n])
		copy(tz[:], z[i:n])
		vx := archsimd.LoadFloat64x4Slice(tx[:])
		vy := archsimd.LoadFloat64x4Slice(ty[:])
		vz := archsimd.LoadFloat64x4Slice(tz[:])
		d := vx.Mul(vx)
		d = vy.MulAdd(vy, d)
		d = vz.MulAdd(vz, d)
		rs := rsqrt4(d)
		mask := firstN(rem)
		blendTail(vx.Mul(rs), mask, x[i:])
		blendTail(vy.Mul(rs), mask, y[i:])
		blendTail(vz.Mul(rs), mask, z[i:])
	}
}

func transformPointsAVX2(m glm.Mat4[float64], x, y, z []float64, n int) {
	m00 := archsimd.BroadcastFloat64x4(m[0].X)
	m01 := archsimd.BroadcastFloat64x4(m[0].Y)
	m02 := archsimd.BroadcastFloat64x4(m[0].Z)
	m03 := archsimd.BroadcastFloat64x4(m[0].W)
	m10 := archsimd.BroadcastFloat64x4(m[1].X)
	m11 := archsimd.BroadcastFloat64x4(m[1].Y)
	m12 := archsimd.BroadcastFloat64x4(m[1].Z)
	m13 := archsimd.BroadcastFloat64x4(m[1].W)
	m20 := archsimd.BroadcastFloat64x4(m[2].X)
	m21 := archsimd.BroadcastFloat64x4(m[2].Y)
	m22 := archsimd.BroadcastFloat64x4(m[2].Z)
	m23 := archsimd.BroadcastFloat64x4(m[2].W)
	i := 0
	for ; i+4 <= n; i += 4 {
		vx := archsimd.LoadFloat64x4Slice(x[i:])
		vy := archsimd.LoadFloat64x4Slice(y[i:])
		vz := archsimd.LoadFloat64x4Slice(z[i:])
		nx := vx.MulAdd(m00, m03)
		nx = vy.MulAdd(m01, nx)
		nx = vz.MulAdd(m02, nx)
		ny := vx.MulAdd(m10, m13)
		ny = vy.MulAdd(m11, ny)
		ny = vz.MulAdd(m12, ny)
		nz := vx.MulAdd(m20, m23)
		nz = vy.MulAdd(m21, nz)
		nz = vz.MulAdd(m22, nz)
		nx.StoreSlice(x[i:])
		ny.StoreSlice(y[i:])
		nz.StoreSlice(z[i:])
	}
	if rem := n - i; rem > 0 {
		var tx, ty, tz [4]float64
		copy(tx[:], x[i:n])
		copy(ty[:], y[i:n])
		copy(tz[:], z[i:n])
		vx := archsimd.LoadFloat64x4Slice(tx[:])
		vy := archsimd.LoadFloat64x4Slice(ty[:])
		vz := archsimd.LoadFloat64x4Slice(tz[:])
		nx := vx.MulAdd(m00, m03)
		nx = vy.MulAdd(m01, nx)
		nx = vz.MulAdd(m02, nx)
		ny := vx.MulAdd(m10, m13)
		ny = vy.MulAdd(m11, ny)
		ny = vz.MulAdd(m12, ny)
		nz := vx.MulAdd(m20, m23)
		nz = vy.MulAdd(m21, nz)
		nz = vz.MulAdd(m22, nz)
		mask := firstN(rem)
		blendTail(nx, mask, x[i:])
		blendTail(ny, mask, y[i:])
		blendTail(nz, mask, z[i:])
	}
}

func minMaxAVX2(xs []float64) (float64, float64) {
	n := len(xs)
	vlo := archsimd.BroadcastFloat64x4(math.Inf(1))
	vhi := archsimd.BroadcastFloat64x4(math.Inf(-1))
	i := 0
	for ; i+4 <= n; i += 4 {
		v := archsimd.LoadFloat64x4Slice(xs[i:])
		vlo = vlo.Min(v)
		vhi = vhi.Max(v)
	}
	var tlo, thi [4]float64
	vlo.StoreSlice(tlo[:])
	vhi.StoreSlice(thi[:])
	lo := min(tlo[0], tlo[1], tlo[2], tlo[3])
	hi := max(thi[0], thi[1], thi[2], thi[3])
	for ; i < n; i++ {
		lo = min(lo, xs[i])
		hi = max(hi, xs[i])
	}
	return lo, hi
}
