package glm

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Element]() Mat2[T] {
	var m Mat2[T]
	m[0].X = 1
	m[1].Y = 1
	return m
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Element]() Mat3[T] {
	var m Mat3[T]
	m[0].X = 1
	m[1].Y = 1
	m[2].Z = 1
	return m
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Element]() Mat4[T] {
	var m Mat4[T]
	m[0].X = 1
	m[1].Y = 1
	m[2].Z = 1
	m[3].W = 1
	return m
}

// Ones2 returns the 2x2 all-ones matrix.
func Ones2[T Element]() Mat2[T] {
	return Mat2[T]{
		{X: 1, Y: 1},
		{X: 1, Y: 1},
	}
}

// Ones3 returns the 3x3 all-ones matrix. Pad lanes stay zero.
func Ones3[T Element]() Mat3[T] {
	return Mat3[T]{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: 1},
	}
}

// Ones4 returns the 4x4 all-ones matrix.
func Ones4[T Element]() Mat4[T] {
	return Mat4[T]{
		{X: 1, Y: 1, Z: 1, W: 1},
		{X: 1, Y: 1, Z: 1, W: 1},
		{X: 1, Y: 1, Z: 1, W: 1},
		{X: 1, Y: 1, Z: 1, W: 1},
	}
}

// Zeros2 returns the 2x2 zero matrix.
func Zeros2[T Element]() Mat2[T] {
	return Mat2[T]{}
}

// Zeros3 returns the 3x3 zero matrix.
func Zeros3[T Element]() Mat3[T] {
	return Mat3[T]{}
}

// Zeros4 returns the 4x4 zero matrix.
func Zeros4[T Element]() Mat4[T] {
	return Mat4[T]{}
}
