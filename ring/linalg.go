package ring

import "fmt"

// Vector is a dense 1-D array of Rq elements sharing one parent, shape fixed
// at construction (spec §4.7).
type Vector struct {
	Elems  []Rq
	Parent *RqRing
}

func NewVector(parent *RqRing, n int) Vector {
	elems := make([]Rq, n)
	for i := range elems {
		elems[i] = parent.Zero()
	}
	return Vector{Elems: elems, Parent: parent}
}

func (v Vector) Len() int { return len(v.Elems) }

func (v Vector) Add(w Vector) (Vector, error) {
	if v.Parent != w.Parent || v.Len() != w.Len() {
		return Vector{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	out := NewVector(v.Parent, v.Len())
	for i := range v.Elems {
		r, err := v.Elems[i].Add(w.Elems[i])
		if err != nil {
			return Vector{}, err
		}
		out.Elems[i] = r
	}
	return out, nil
}

func (v Vector) Sub(w Vector) (Vector, error) {
	if v.Parent != w.Parent || v.Len() != w.Len() {
		return Vector{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	out := NewVector(v.Parent, v.Len())
	for i := range v.Elems {
		r, err := v.Elems[i].Sub(w.Elems[i])
		if err != nil {
			return Vector{}, err
		}
		out.Elems[i] = r
	}
	return out, nil
}

// Dot computes sum_i v[i]*w[i] in Rq.
func (v Vector) Dot(w Vector) (Rq, error) {
	if v.Parent != w.Parent || v.Len() != w.Len() {
		return Rq{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	acc := v.Parent.Zero()
	for i := range v.Elems {
		term, err := v.Elems[i].Mul(w.Elems[i])
		if err != nil {
			return Rq{}, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return Rq{}, err
		}
	}
	return acc, nil
}

// Matrix is a dense 2-D array of Rq elements, row-major, shape fixed at
// construction.
type Matrix struct {
	Rows, Cols int
	Elems      [][]Rq
	Parent     *RqRing
}

func NewMatrix(parent *RqRing, rows, cols int) Matrix {
	elems := make([][]Rq, rows)
	for i := range elems {
		elems[i] = make([]Rq, cols)
		for j := range elems[i] {
			elems[i][j] = parent.Zero()
		}
	}
	return Matrix{Rows: rows, Cols: cols, Elems: elems, Parent: parent}
}

func (m Matrix) Add(n Matrix) (Matrix, error) {
	if m.Parent != n.Parent || m.Rows != n.Rows || m.Cols != n.Cols {
		return Matrix{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	out := NewMatrix(m.Parent, m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			r, err := m.Elems[i][j].Add(n.Elems[i][j])
			if err != nil {
				return Matrix{}, err
			}
			out.Elems[i][j] = r
		}
	}
	return out, nil
}

func (m Matrix) Sub(n Matrix) (Matrix, error) {
	if m.Parent != n.Parent || m.Rows != n.Rows || m.Cols != n.Cols {
		return Matrix{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	out := NewMatrix(m.Parent, m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			r, err := m.Elems[i][j].Sub(n.Elems[i][j])
			if err != nil {
				return Matrix{}, err
			}
			out.Elems[i][j] = r
		}
	}
	return out, nil
}

// Transpose is in-place for square matrices, functional for rectangular ones
// (spec §4.7).
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.Parent, m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Elems[j][i] = m.Elems[i][j]
		}
	}
	if m.Rows == m.Cols {
		copy(m.Elems, out.Elems)
		return m
	}
	return out
}

// MulVec computes the matrix-vector product M*v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Parent != v.Parent || m.Cols != v.Len() {
		return Vector{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	out := NewVector(m.Parent, m.Rows)
	for i := 0; i < m.Rows; i++ {
		acc := m.Parent.Zero()
		for j := 0; j < m.Cols; j++ {
			term, err := m.Elems[i][j].Mul(v.Elems[j])
			if err != nil {
				return Vector{}, err
			}
			acc, err = acc.Add(term)
			if err != nil {
				return Vector{}, err
			}
		}
		out.Elems[i] = acc
	}
	return out, nil
}

// Mul computes the matrix-matrix product M*N.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	if m.Parent != n.Parent || m.Cols != n.Rows {
		return Matrix{}, fmt.Errorf("%w", ErrLengthMismatch)
	}
	out := NewMatrix(m.Parent, m.Rows, n.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < n.Cols; j++ {
			acc := m.Parent.Zero()
			for k := 0; k < m.Cols; k++ {
				term, err := m.Elems[i][k].Mul(n.Elems[k][j])
				if err != nil {
					return Matrix{}, err
				}
				acc, err = acc.Add(term)
				if err != nil {
					return Matrix{}, err
				}
			}
			out.Elems[i][j] = acc
		}
	}
	return out, nil
}

// Minor returns the (i,j) minor matrix (row i and column j removed), used by
// the cofactor-expansion Determinant below. Only exercised on the small
// shapes (k in {2,3,4}) crypto code actually uses (spec §4.7).
func (m Matrix) Minor(i, j int) Matrix {
	out := NewMatrix(m.Parent, m.Rows-1, m.Cols-1)
	ri := 0
	for r := 0; r < m.Rows; r++ {
		if r == i {
			continue
		}
		ci := 0
		for c := 0; c < m.Cols; c++ {
			if c == j {
				continue
			}
			out.Elems[ri][ci] = m.Elems[r][c]
			ci++
		}
		ri++
	}
	return out
}

// Determinant uses cofactor expansion; deliberately not optimized for large
// shapes since crypto use here sits at k in {2,3,4} (spec §4.7).
func (m Matrix) Determinant() (Rq, error) {
	if m.Rows != m.Cols {
		return Rq{}, fmt.Errorf("%w: determinant requires a square matrix", ErrLengthMismatch)
	}
	if m.Rows == 1 {
		return m.Elems[0][0], nil
	}
	if m.Rows == 2 {
		ad, err := m.Elems[0][0].Mul(m.Elems[1][1])
		if err != nil {
			return Rq{}, err
		}
		bc, err := m.Elems[0][1].Mul(m.Elems[1][0])
		if err != nil {
			return Rq{}, err
		}
		return ad.Sub(bc)
	}
	acc := m.Parent.Zero()
	for j := 0; j < m.Cols; j++ {
		minorDet, err := m.Minor(0, j).Determinant()
		if err != nil {
			return Rq{}, err
		}
		term, err := m.Elems[0][j].Mul(minorDet)
		if err != nil {
			return Rq{}, err
		}
		if j%2 == 1 {
			term = term.Neg()
		}
		acc, err = acc.Add(term)
		if err != nil {
			return Rq{}, err
		}
	}
	return acc, nil
}

// Inverse computes M^-1 via the adjugate (cofactor transpose) divided by the
// determinant. Only exercised on small square matrices (spec §4.7).
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, err
	}
	detInv, err := det.Inverse()
	if err != nil {
		return Matrix{}, err
	}
	adj := NewMatrix(m.Parent, m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			cofactor, err := m.Minor(i, j).Determinant()
			if err != nil {
				return Matrix{}, err
			}
			if (i+j)%2 == 1 {
				cofactor = cofactor.Neg()
			}
			adj.Elems[j][i] = cofactor // transpose while writing
		}
	}
	out := NewMatrix(m.Parent, m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Elems[i][j], err = adj.Elems[i][j].Mul(detInv)
			if err != nil {
				return Matrix{}, err
			}
		}
	}
	return out, nil
}
