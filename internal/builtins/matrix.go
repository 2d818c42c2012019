// Matrix-ops family: matrix-make, matrix-append, matrix-set,
// matrix-get, matrix-det, matrix-inv, matrix-from-fn (spec.md §4.5,
// §9 "Matrix ops": rows, cols, flat row-major rationals; shape
// invariants checked on construction and after any reshape).
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// matrixFold implements element-wise +/- over column-aligned matrices
// (spec.md §4.6 "+": "all args must be the same kind ... or Matrix
// element-wise column-aligned"). * is rejected here: matrix
// multiplication is not part of this operator's contract, since `*`
// is defined as a fold of scalar multiplication in spec.md and matrix
// product would change shape in a way the fold model can't express.
func matrixFold(op operator.Type, vals []value.Value) (value.Value, *calcerr.CalcError) {
	if op == operator.Mul {
		return nil, calcerr.New(calcerr.BadArgType, "* does not support Matrix operands")
	}
	acc := vals[0].(value.Matrix)
	for _, v := range vals[1:] {
		m := v.(value.Matrix)
		if m.Rows != acc.Rows || m.Cols != acc.Cols {
			return nil, calcerr.New(calcerr.MatrixShape, "matrix shape mismatch: %dx%d vs %dx%d", acc.Rows, acc.Cols, m.Rows, m.Cols)
		}
		data := make([]rational.Rational, len(acc.Data))
		for i := range data {
			if op == operator.Add {
				data[i] = rational.Add(acc.Data[i], m.Data[i])
			} else {
				data[i] = rational.Sub(acc.Data[i], m.Data[i])
			}
		}
		acc = value.Matrix{Rows: acc.Rows, Cols: acc.Cols, Data: data}
	}
	return acc, nil
}

func matrixInverse(m value.Matrix) (value.Value, *calcerr.CalcError) {
	if m.Rows != m.Cols {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-inv requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	aug := make([][]rational.Rational, n)
	for r := 0; r < n; r++ {
		row := make([]rational.Rational, 2*n)
		for c := 0; c < n; c++ {
			row[c] = m.At(r, c)
		}
		row[n+r] = rational.NewInt(1)
		aug[r] = row
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !aug[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, calcerr.New(calcerr.SingularMatrix, "matrix is singular")
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv, ierr := rational.Inv(aug[col][col])
		if ierr != nil {
			return nil, calcerr.New(calcerr.SingularMatrix, "matrix is singular")
		}
		for c := 0; c < 2*n; c++ {
			aug[col][c] = rational.Mul(aug[col][c], inv)
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor.IsZero() {
				continue
			}
			for c := 0; c < 2*n; c++ {
				aug[r][c] = rational.Sub(aug[r][c], rational.Mul(factor, aug[col][c]))
			}
		}
	}

	data := make([]rational.Rational, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			data[r*n+c] = aug[r][n+c]
		}
	}
	return value.Matrix{Rows: n, Cols: n, Data: data}, nil
}

func matrixDeterminant(m value.Matrix) (rational.Rational, *calcerr.CalcError) {
	if m.Rows != m.Cols {
		return rational.Rational{}, calcerr.New(calcerr.MatrixShape, "matrix-det requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	rows := make([][]rational.Rational, n)
	for r := 0; r < n; r++ {
		row := make([]rational.Rational, n)
		for c := 0; c < n; c++ {
			row[c] = m.At(r, c)
		}
		rows[r] = row
	}

	det := rational.NewInt(1)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !rows[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return rational.NewInt(0), nil
		}
		if pivot != col {
			rows[col], rows[pivot] = rows[pivot], rows[col]
			det = rational.Neg(det)
		}
		det = rational.Mul(det, rows[col][col])
		inv, _ := rational.Inv(rows[col][col])
		for r := col + 1; r < n; r++ {
			factor := rational.Mul(rows[r][col], inv)
			if factor.IsZero() {
				continue
			}
			for c := col; c < n; c++ {
				rows[r][c] = rational.Sub(rows[r][c], rational.Mul(factor, rows[col][c]))
			}
		}
	}
	return det, nil
}

func matrixMake(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) < 2 {
		return nil, calcerr.Arity("matrix-make", calcerr.AtLeast, 2)
	}
	rows, rerr := intArg(vals[0])
	if rerr != nil {
		return nil, rerr
	}
	cols, cerr := intArg(vals[1])
	if cerr != nil {
		return nil, cerr
	}
	if rows <= 0 || cols <= 0 {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-make: rows and cols must be positive")
	}
	cells := vals[2:]
	if int64(len(cells)) != rows*cols {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-make: expected %d cell values, got %d", rows*cols, len(cells))
	}
	data := make([]rational.Rational, len(cells))
	for i, v := range cells {
		n, nerr := bigNumOf(v)
		if nerr != nil {
			return nil, nerr
		}
		data[i] = n
	}
	return value.Matrix{Rows: int(rows), Cols: int(cols), Data: data}, nil
}

func matrixAppend(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, calcerr.Arity("matrix-append", calcerr.Exactly, 2)
	}
	a, ok := vals[0].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "matrix-append requires a Matrix as its first argument, got %s", vals[0].Kind())
	}
	b, ok := vals[1].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "matrix-append requires a Matrix as its second argument, got %s", vals[1].Kind())
	}
	if a.Cols != b.Cols {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-append: column count mismatch (%d vs %d)", a.Cols, b.Cols)
	}
	data := make([]rational.Rational, 0, len(a.Data)+len(b.Data))
	data = append(data, a.Data...)
	data = append(data, b.Data...)
	return value.Matrix{Rows: a.Rows + b.Rows, Cols: a.Cols, Data: data}, nil
}

func matrixSet(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 4 {
		return nil, calcerr.Arity("matrix-set", calcerr.Exactly, 4)
	}
	m, ok := vals[0].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "matrix-set requires a Matrix as its first argument, got %s", vals[0].Kind())
	}
	row, rerr := intArg(vals[1])
	if rerr != nil {
		return nil, rerr
	}
	col, cerr := intArg(vals[2])
	if cerr != nil {
		return nil, cerr
	}
	n, nerr := bigNumOf(vals[3])
	if nerr != nil {
		return nil, nerr
	}
	if row < 0 || row >= int64(m.Rows) || col < 0 || col >= int64(m.Cols) {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-set: index (%d,%d) out of bounds for %dx%d matrix", row, col, m.Rows, m.Cols)
	}
	out := m.Clone().(value.Matrix)
	out.Data[row*int64(out.Cols)+col] = n
	return out, nil
}

func matrixGet(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 3 {
		return nil, calcerr.Arity("matrix-get", calcerr.Exactly, 3)
	}
	m, ok := vals[0].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "matrix-get requires a Matrix as its first argument, got %s", vals[0].Kind())
	}
	row, rerr := intArg(vals[1])
	if rerr != nil {
		return nil, rerr
	}
	col, cerr := intArg(vals[2])
	if cerr != nil {
		return nil, cerr
	}
	if row < 0 || row >= int64(m.Rows) || col < 0 || col >= int64(m.Cols) {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-get: index (%d,%d) out of bounds for %dx%d matrix", row, col, m.Rows, m.Cols)
	}
	return value.BigNum{N: m.At(int(row), int(col))}, nil
}

func matrixDet(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("matrix-det", calcerr.Exactly, 1)
	}
	m, ok := vals[0].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "matrix-det requires a Matrix, got %s", vals[0].Kind())
	}
	det, derr := matrixDeterminant(m)
	if derr != nil {
		return nil, derr
	}
	return value.BigNum{N: det}, nil
}

func matrixInv(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("matrix-inv", calcerr.Exactly, 1)
	}
	m, ok := vals[0].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "matrix-inv requires a Matrix, got %s", vals[0].Kind())
	}
	return matrixInverse(m)
}

// matrixFromFn builds a matrix by applying a 2-parameter procedure
// (row, col) -> value to every cell (spec.md §4.5 "from-fn").
func matrixFromFn(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 3 {
		return nil, calcerr.Arity("matrix-from-fn", calcerr.Exactly, 3)
	}
	rows, rerr := intArg(vals[0])
	if rerr != nil {
		return nil, rerr
	}
	cols, cerr := intArg(vals[1])
	if cerr != nil {
		return nil, cerr
	}
	if rows <= 0 || cols <= 0 {
		return nil, calcerr.New(calcerr.MatrixShape, "matrix-from-fn: rows and cols must be positive")
	}
	proc, perr := procOf(vals[2])
	if perr != nil {
		return nil, perr
	}
	if len(proc.Params) != 2 {
		return nil, calcerr.New(calcerr.BadNumberOfArgs, "matrix-from-fn: procedure must take exactly 2 parameters, got %d", len(proc.Params))
	}

	data := make([]rational.Rational, rows*cols)
	for r := int64(0); r < rows; r++ {
		for c := int64(0); c < cols; c++ {
			v, aerr := ctx.Apply(proc, []value.Value{
				value.BigNum{N: rational.NewInt(r)},
				value.BigNum{N: rational.NewInt(c)},
			})
			if aerr != nil {
				return nil, aerr
			}
			n, nerr := bigNumOf(v)
			if nerr != nil {
				return nil, nerr
			}
			data[r*cols+c] = n
		}
	}
	return value.Matrix{Rows: int(rows), Cols: int(cols), Data: data}, nil
}
