// Package model provides ready-made filter.System implementations over
// gonum matrices: a discrete-time linear model and a nonlinear model whose
// Jacobians are computed by finite differences. Both operate on float64,
// the element type of the gonum stack; fully generic systems implement the
// hook interface directly.
package model

import (
	"fmt"

	"github.com/guanqp/go-ekf/mtx"

	"gonum.org/v1/gonum/mat"
)

// Linear is a discrete-time linear dynamical system
//
//	x[k+1] = A*x[k] + B*u[k] + W*w[k]
//	z[k]   = C*x[k] + V*v[k]
//
// expressed through the filter hooks: the Jacobians are the constant
// system matrices themselves. W and V default to identity when nil.
type Linear struct {
	// A is the state propagation matrix
	A *mat.Dense
	// B is the control matrix; nil means no control input
	B *mat.Dense
	// C is the observation matrix
	C *mat.Dense
	// W is the process noise Jacobian; nil defaults to identity
	W *mat.Dense
	// Q is the process noise covariance; nil means no process noise
	Q *mat.SymDense
	// V is the measurement noise Jacobian; nil defaults to identity
	V *mat.Dense
	// R is the measurement noise covariance; nil means no measurement noise
	R *mat.SymDense
}

// NewLinear creates a new linear system model and returns it.
// It returns error if A or C is missing or their dimensions disagree.
func NewLinear(A, B, C *mat.Dense, Q, R *mat.SymDense) (*Linear, error) {
	if A == nil || C == nil {
		return nil, fmt.Errorf("system and observation matrices must be defined for a model")
	}

	nx, cols := A.Dims()
	if nx != cols {
		return nil, fmt.Errorf("invalid system matrix dimensions: [%d x %d]", nx, cols)
	}

	ny, cols := C.Dims()
	if cols != nx {
		return nil, fmt.Errorf("invalid observation matrix dimensions: [%d x %d]", ny, cols)
	}

	if B != nil {
		if rows, cols := B.Dims(); rows != nx {
			return nil, fmt.Errorf("invalid control matrix dimensions: [%d x %d]", rows, cols)
		}
	}

	return &Linear{A: A, B: B, C: C, Q: Q, R: R}, nil
}

// SystemDims returns state, input and output dimensions of the model
func (l *Linear) SystemDims() (nx, nu, ny int) {
	nx, _ = l.A.Dims()
	if l.B != nil {
		_, nu = l.B.Dims()
	}
	ny, _ = l.C.Dims()

	return nx, nu, ny
}

// NoiseDims returns process and measurement noise dimensions of the model
func (l *Linear) NoiseDims() (nq, nr int) {
	if l.Q != nil {
		nq = l.Q.SymmetricDim()
	}
	if l.R != nil {
		nr = l.R.SymmetricDim()
	}

	return nq, nr
}

// Propagate returns the model state propagated to the next step:
// A*x + B*u evaluated at zero process noise.
func (l *Linear) Propagate(x, u *mtx.Vector[float64]) (*mtx.Vector[float64], error) {
	nx, nu, _ := l.SystemDims()
	if x == nil || x.Len() != nx {
		return nil, fmt.Errorf("invalid state vector")
	}
	if u != nil && u.Len() != nu {
		return nil, fmt.Errorf("invalid input vector")
	}

	out := new(mat.VecDense)
	out.MulVec(l.A, mtx.VecDense(x))

	if u != nil && l.B != nil {
		outU := new(mat.VecDense)
		outU.MulVec(l.B, mtx.VecDense(u))
		out.AddVec(out, outU)
	}

	return mtx.FromVec(out), nil
}

// StateJacobian returns the state propagation matrix A
func (l *Linear) StateJacobian(x, u *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	return mtx.FromMat(l.A), nil
}

// StateNoiseJacobian returns the process noise Jacobian W
func (l *Linear) StateNoiseJacobian(x, u *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	nx, _, _ := l.SystemDims()
	nq, _ := l.NoiseDims()
	if l.W != nil {
		return mtx.FromMat(l.W), nil
	}
	if nq != nx {
		return nil, fmt.Errorf("no state noise Jacobian for noise dimension %d", nq)
	}

	return mtx.Eye[float64](nx), nil
}

// StateNoiseCov returns the process noise covariance Q
func (l *Linear) StateNoiseCov() (*mtx.Matrix[float64], error) {
	if l.Q == nil {
		return mtx.NewMatrix[float64](0, 0, nil), nil
	}

	return mtx.FromMat(l.Q), nil
}

// Observe returns the model output observed at state x: C*x evaluated at
// zero measurement noise.
func (l *Linear) Observe(x *mtx.Vector[float64]) (*mtx.Vector[float64], error) {
	nx, _, _ := l.SystemDims()
	if x == nil || x.Len() != nx {
		return nil, fmt.Errorf("invalid state vector")
	}

	out := new(mat.VecDense)
	out.MulVec(l.C, mtx.VecDense(x))

	return mtx.FromVec(out), nil
}

// OutputJacobian returns the observation matrix C
func (l *Linear) OutputJacobian(x *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	return mtx.FromMat(l.C), nil
}

// OutputNoiseJacobian returns the measurement noise Jacobian V
func (l *Linear) OutputNoiseJacobian(x *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	_, _, ny := l.SystemDims()
	_, nr := l.NoiseDims()
	if l.V != nil {
		return mtx.FromMat(l.V), nil
	}
	if nr != ny {
		return nil, fmt.Errorf("no output noise Jacobian for noise dimension %d", nr)
	}

	return mtx.Eye[float64](ny), nil
}

// OutputNoiseCov returns the measurement noise covariance R
func (l *Linear) OutputNoiseCov() (*mtx.Matrix[float64], error) {
	if l.R == nil {
		return mtx.NewMatrix[float64](0, 0, nil), nil
	}

	return mtx.FromMat(l.R), nil
}
