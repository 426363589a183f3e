package glm

// Lane-array conversions between the public float64 types and the fixed
// arrays the backend bridges operate on. Vec2 and Vec3 map onto four lanes
// with zero padding; Mat3 keeps its per-row pad lanes so rows stay
// register-shaped.

func vec2Lanes(v Vec2[float64]) [4]float64 {
	return [4]float64{v.X, v.Y, 0, 0}
}

func vec2FromLanes(l [4]float64) Vec2[float64] {
	return Vec2[float64]{X: l[0], Y: l[1]}
}

func vec3Lanes(v Vec3[float64]) [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, 0}
}

func vec3FromLanes(l [4]float64) Vec3[float64] {
	return Vec3[float64]{X: l[0], Y: l[1], Z: l[2]}
}

func vec4Lanes(v Vec4[float64]) [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

func vec4FromLanes(l [4]float64) Vec4[float64] {
	return Vec4[float64]{X: l[0], Y: l[1], Z: l[2], W: l[3]}
}

func mat2Lanes(m Mat2[float64]) [4]float64 {
	return [4]float64{m[0].X, m[0].Y, m[1].X, m[1].Y}
}

func mat2FromLanes(l [4]float64) Mat2[float64] {
	return Mat2[float64]{
		{X: l[0], Y: l[1]},
		{X: l[2], Y: l[3]},
	}
}

func mat3Lanes(m Mat3[float64]) [12]float64 {
	return [12]float64{
		m[0].X, m[0].Y, m[0].Z, 0,
		m[1].X, m[1].Y, m[1].Z, 0,
		m[2].X, m[2].Y, m[2].Z, 0,
	}
}

func mat3FromLanes(l [12]float64) Mat3[float64] {
	return Mat3[float64]{
		{X: l[0], Y: l[1], Z: l[2]},
		{X: l[4], Y: l[5], Z: l[6]},
		{X: l[8], Y: l[9], Z: l[10]},
	}
}

func mat4Lanes(m Mat4[float64]) [16]float64 {
	return [16]float64{
		m[0].X, m[0].Y, m[0].Z, m[0].W,
		m[1].X, m[1].Y, m[1].Z, m[1].W,
		m[2].X, m[2].Y, m[2].Z, m[2].W,
		m[3].X, m[3].Y, m[3].Z, m[3].W,
	}
}

func mat4FromLanes(l [16]float64) Mat4[float64] {
	return Mat4[float64]{
		{X: l[0], Y: l[1], Z: l[2], W: l[3]},
		{X: l[4], Y: l[5], Z: l[6], W: l[7]},
		{X: l[8], Y: l[9], Z: l[10], W: l[11]},
		{X: l[12], Y: l[13], Z: l[14], W: l[15]},
	}
}
