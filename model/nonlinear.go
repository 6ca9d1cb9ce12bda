package model

import (
	"fmt"

	"github.com/guanqp/go-ekf/mtx"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Nonlinear is a nonlinear dynamical system
//
//	x[k+1] = f(x[k], u[k]) + W*w[k]
//	z[k]   = h(x[k]) + V*v[k]
//
// whose state and output Jacobians are computed by central finite
// differences of f and h, so the embedder does not have to derive them by
// hand. W and V default to identity when nil.
type Nonlinear struct {
	// Nx, Nu, Ny are state, input and output dimensions
	Nx, Nu, Ny int
	// F propagates state x with input u to the next step
	F func(x, u []float64) []float64
	// H observes the system output at state x
	H func(x []float64) []float64
	// W is the process noise Jacobian; nil defaults to identity
	W *mat.Dense
	// Q is the process noise covariance; nil means no process noise
	Q *mat.SymDense
	// V is the measurement noise Jacobian; nil defaults to identity
	V *mat.Dense
	// R is the measurement noise covariance; nil means no measurement noise
	R *mat.SymDense
}

// SystemDims returns state, input and output dimensions of the model
func (n *Nonlinear) SystemDims() (nx, nu, ny int) {
	return n.Nx, n.Nu, n.Ny
}

// NoiseDims returns process and measurement noise dimensions of the model
func (n *Nonlinear) NoiseDims() (nq, nr int) {
	if n.Q != nil {
		nq = n.Q.SymmetricDim()
	}
	if n.R != nil {
		nr = n.R.SymmetricDim()
	}

	return nq, nr
}

// Propagate returns f(x, u): the model state propagated to the next step
// at zero process noise.
func (n *Nonlinear) Propagate(x, u *mtx.Vector[float64]) (*mtx.Vector[float64], error) {
	if x == nil || x.Len() != n.Nx {
		return nil, fmt.Errorf("invalid state vector")
	}

	out := n.F(raw(x), raw(u))

	return mtx.NewVector(len(out), out), nil
}

// StateJacobian returns the Jacobian of f with respect to the state,
// computed by central finite differences at x.
func (n *Nonlinear) StateJacobian(x, u *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	if x == nil || x.Len() != n.Nx {
		return nil, fmt.Errorf("invalid state vector")
	}

	uRaw := raw(u)
	jac := mat.NewDense(n.Nx, n.Nx, nil)
	fd.Jacobian(jac, func(xOut, xNow []float64) {
		copy(xOut, n.F(xNow, uRaw))
	}, raw(x), &fd.JacobianSettings{
		Formula:    fd.Central,
		Concurrent: true,
	})

	return mtx.FromMat(jac), nil
}

// StateNoiseJacobian returns the process noise Jacobian W
func (n *Nonlinear) StateNoiseJacobian(x, u *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	nq, _ := n.NoiseDims()
	if n.W != nil {
		return mtx.FromMat(n.W), nil
	}
	if nq != n.Nx {
		return nil, fmt.Errorf("no state noise Jacobian for noise dimension %d", nq)
	}

	return mtx.Eye[float64](n.Nx), nil
}

// StateNoiseCov returns the process noise covariance Q
func (n *Nonlinear) StateNoiseCov() (*mtx.Matrix[float64], error) {
	if n.Q == nil {
		return mtx.NewMatrix[float64](0, 0, nil), nil
	}

	return mtx.FromMat(n.Q), nil
}

// Observe returns h(x): the model output observed at state x at zero
// measurement noise.
func (n *Nonlinear) Observe(x *mtx.Vector[float64]) (*mtx.Vector[float64], error) {
	if x == nil || x.Len() != n.Nx {
		return nil, fmt.Errorf("invalid state vector")
	}

	out := n.H(raw(x))

	return mtx.NewVector(len(out), out), nil
}

// OutputJacobian returns the Jacobian of h with respect to the state,
// computed by central finite differences at x.
func (n *Nonlinear) OutputJacobian(x *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	if x == nil || x.Len() != n.Nx {
		return nil, fmt.Errorf("invalid state vector")
	}

	jac := mat.NewDense(n.Ny, n.Nx, nil)
	fd.Jacobian(jac, func(y, xNow []float64) {
		copy(y, n.H(xNow))
	}, raw(x), &fd.JacobianSettings{
		Formula:    fd.Central,
		Concurrent: true,
	})

	return mtx.FromMat(jac), nil
}

// OutputNoiseJacobian returns the measurement noise Jacobian V
func (n *Nonlinear) OutputNoiseJacobian(x *mtx.Vector[float64]) (*mtx.Matrix[float64], error) {
	_, nr := n.NoiseDims()
	if n.V != nil {
		return mtx.FromMat(n.V), nil
	}
	if nr != n.Ny {
		return nil, fmt.Errorf("no output noise Jacobian for noise dimension %d", nr)
	}

	return mtx.Eye[float64](n.Ny), nil
}

// OutputNoiseCov returns the measurement noise covariance R
func (n *Nonlinear) OutputNoiseCov() (*mtx.Matrix[float64], error) {
	if n.R == nil {
		return mtx.NewMatrix[float64](0, 0, nil), nil
	}

	return mtx.FromMat(n.R), nil
}

func raw(v *mtx.Vector[float64]) []float64 {
	if v == nil {
		return nil
	}

	return mtx.VecDense(v).RawVector().Data
}
