package sim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Discrete is a linear, discrete-time truth model
//
//	x[n+1] = A*x[n] + B*u[n] + wd[n]
//	y[n]   = C*x[n] + D*u[n] + wn[n]
type Discrete struct {
	System
}

// NewDiscrete creates a linear discrete-time model and returns it.
// It returns error if the system matrix is missing.
func NewDiscrete(A, B, C, D *mat.Dense) (*Discrete, error) {
	if A == nil {
		return nil, fmt.Errorf("system matrix must be defined for a model")
	}

	return &Discrete{System: newSystem(A, B, C, D)}, nil
}

// Propagate returns the next state of the system given input u and
// process noise wd; nil u or wd contribute nothing.
func (d *Discrete) Propagate(x, u, wd mat.Vector) (mat.Vector, error) {
	nx, nu, _ := d.SystemDims()
	if x == nil || x.Len() != nx {
		return nil, fmt.Errorf("invalid state vector")
	}
	if u != nil && u.Len() != nu {
		return nil, fmt.Errorf("invalid input vector")
	}

	out := new(mat.VecDense)
	out.MulVec(d.A, x)

	if u != nil && d.B != nil {
		outU := new(mat.VecDense)
		outU.MulVec(d.B, u)
		out.AddVec(out, outU)
	}

	if wd != nil && wd.Len() == nx {
		out.AddVec(out, wd)
	}

	return out, nil
}

// Observe returns the system output at state x given input u and
// measurement noise wn; nil u or wn contribute nothing.
func (d *Discrete) Observe(x, u, wn mat.Vector) (mat.Vector, error) {
	nx, nu, ny := d.SystemDims()
	if x == nil || x.Len() != nx {
		return nil, fmt.Errorf("invalid state vector")
	}
	if u != nil && u.Len() != nu {
		return nil, fmt.Errorf("invalid input vector")
	}

	out := new(mat.VecDense)
	out.MulVec(d.C, x)

	if u != nil && d.D != nil {
		outU := new(mat.VecDense)
		outU.MulVec(d.D, u)
		out.AddVec(out, outU)
	}

	if wn != nil && wn.Len() == ny {
		out.AddVec(out, wn)
	}

	return out, nil
}
