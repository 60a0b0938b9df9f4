package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix is a dense height x width grid of float64 stored row-major.
//
// The zero value has no shape; construct matrices with New or a factory.
type Matrix struct {
	h, w int
	vals []float64
}

// New returns a height x width matrix filled row-major from coefficients.
// The coefficients are copied.
func New(height, width int, coefficients ...float64) (Matrix, error) {
	if height < 1 || width < 1 {
		return Matrix{}, fmt.Errorf("new %dx%d: %w", height, width, ErrShape)
	}
	if len(coefficients) != height*width {
		return Matrix{}, fmt.Errorf("new %dx%d: %d coefficients: %w", height, width, len(coefficients), ErrShape)
	}
	vals := make([]float64, len(coefficients))
	copy(vals, coefficients)
	return Matrix{h: height, w: width, vals: vals}, nil
}

// must is used by factories whose shape is fixed at compile time.
func must(m Matrix, err error) Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the size x size identity matrix.
func Identity(size int) Matrix { return ScaledIdentity(size, 1) }

// ScaledIdentity returns a size x size matrix with scale on the diagonal and
// zero elsewhere. Multiplying by it scales every component by scale.
//
// It panics if size < 1.
func ScaledIdentity(size int, scale float64) Matrix {
	if size < 1 {
		panic(fmt.Sprintf("matrix: identity size %d", size))
	}
	vals := make([]float64, size*size)
	for i := 0; i < size; i++ {
		vals[i*size+i] = scale
	}
	return Matrix{h: size, w: size, vals: vals}
}

func (m Matrix) Height() int { return m.h }
func (m Matrix) Width() int  { return m.w }

// Values returns a copy of the row-major coefficients.
func (m Matrix) Values() []float64 {
	out := make([]float64, len(m.vals))
	copy(out, m.vals)
	return out
}

// Get returns the element at (row, col).
func (m Matrix) Get(row, col int) (float64, error) {
	if row < 0 || row >= m.h || col < 0 || col >= m.w {
		return 0, fmt.Errorf("get (%d,%d) of %dx%d: %w", row, col, m.h, m.w, ErrIndex)
	}
	return m.vals[row*m.w+col], nil
}

func (m Matrix) at(row, col int) float64 { return m.vals[row*m.w+col] }

// Multiply returns the matrix product a x b.
func Multiply(a, b Matrix) (Matrix, error) {
	if a.w != b.h || a.h < 1 || b.w < 1 {
		return Matrix{}, fmt.Errorf("multiply %dx%d by %dx%d: %w", a.h, a.w, b.h, b.w, ErrShape)
	}
	out := make([]float64, a.h*b.w)
	for i := 0; i < a.h; i++ {
		for j := 0; j < b.w; j++ {
			var sum float64
			for k := 0; k < a.w; k++ {
				sum += a.at(i, k) * b.at(k, j)
			}
			out[i*b.w+j] = sum
		}
	}
	return Matrix{h: a.h, w: b.w, vals: out}, nil
}

// Add returns the element-wise sum a + b.
func Add(a, b Matrix) (Matrix, error) {
	if a.h != b.h || a.w != b.w || a.h < 1 {
		return Matrix{}, fmt.Errorf("add %dx%d and %dx%d: %w", a.h, a.w, b.h, b.w, ErrShape)
	}
	out := make([]float64, len(a.vals))
	for i := range out {
		out[i] = a.vals[i] + b.vals[i]
	}
	return Matrix{h: a.h, w: a.w, vals: out}, nil
}

func (m Matrix) Mul(b Matrix) (Matrix, error) { return Multiply(m, b) }
func (m Matrix) Add(b Matrix) (Matrix, error) { return Add(m, b) }

// Compose multiplies ms left to right. Compose(a, b, c) is a x b x c, so the
// rightmost matrix is the first transform applied to a column.
func Compose(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return Matrix{}, fmt.Errorf("compose: no matrices: %w", ErrShape)
	}
	out := ms[0]
	for i := 1; i < len(ms); i++ {
		var err error
		out, err = Multiply(out, ms[i])
		if err != nil {
			return Matrix{}, fmt.Errorf("compose [%d]: %w", i, err)
		}
	}
	return out, nil
}

// ToVec3 reads rows 0..2 of a column matrix. It performs no division.
func (m Matrix) ToVec3() (Vec3, error) {
	if m.w != 1 || m.h < 3 {
		return Vec3{}, fmt.Errorf("vec3 from %dx%d: %w", m.h, m.w, ErrShape)
	}
	return Vec3{X: m.vals[0], Y: m.vals[1], Z: m.vals[2]}, nil
}

// ToVec2 reads rows 0..1 of a column matrix. It performs no division.
func (m Matrix) ToVec2() (Vec2, error) {
	if m.w != 1 || m.h < 2 {
		return Vec2{}, fmt.Errorf("vec2 from %dx%d: %w", m.h, m.w, ErrShape)
	}
	return Vec2{X: m.vals[0], Y: m.vals[1]}, nil
}

// Equal reports whether m and b have the same shape and every element differs
// by at most eps.
func (m Matrix) Equal(b Matrix, eps float64) bool {
	if m.h != b.h || m.w != b.w {
		return false
	}
	for i := range m.vals {
		if math.Abs(m.vals[i]-b.vals[i]) > eps {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.h; r++ {
		if r > 0 {
			sb.WriteString("; ")
		}
		for c := 0; c < m.w; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.at(r, c), 'g', 6, 64))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
