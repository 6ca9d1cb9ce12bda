package sim

import (
	"fmt"

	"github.com/milosgajdos/matrix"
	"gonum.org/v1/gonum/mat"
)

// Continuous is a linear, continuous-time truth model
//
//	dx/dt = A*x + B*u
//	y     = C*x + D*u
type Continuous struct {
	System
}

// NewContinuous creates a linear continuous-time model and returns it.
// It returns error if the system matrix is missing.
func NewContinuous(A, B, C, D *mat.Dense) (*Continuous, error) {
	if A == nil {
		return nil, fmt.Errorf("system matrix must be defined for a model")
	}

	return &Continuous{System: newSystem(A, B, C, D)}, nil
}

// Propagate advances the state by one timestep dt using the forward Euler
// approximation of the state derivative, with additive process noise wd.
func (ct *Continuous) Propagate(x, u, wd mat.Vector, dt float64) (mat.Vector, error) {
	nx, nu, _ := ct.SystemDims()
	if x == nil || x.Len() != nx {
		return nil, fmt.Errorf("invalid state vector")
	}
	if u != nil && u.Len() != nu {
		return nil, fmt.Errorf("invalid input vector")
	}

	out := new(mat.VecDense)
	out.MulVec(ct.A, x)

	if u != nil && ct.B != nil {
		outU := new(mat.VecDense)
		outU.MulVec(ct.B, u)
		out.AddVec(out, outU)
	}

	if wd != nil && wd.Len() == nx {
		out.AddVec(out, wd)
	}

	out.ScaleVec(dt, out)
	out.AddVec(x, out)

	return out, nil
}

// Discretize converts the continuous-time model to a discrete-time model
// with sampling time Ts.
//
// See Discrete-Time Control Systems by Katsuhiko Ogata:
//
//	Ad = exp(A*Ts)                       Eq. (5-73)
//	Bd = (exp(A*Ts) - I)*inv(A)*B        Eq. (5-74 bis), A nonsingular
//
// When A is singular Bd is integrated numerically from the closed form
// Bd = integrate(exp(A*t)dt, 0, Ts)*B   Eq. (5-74).
func (ct *Continuous) Discretize(Ts float64) (*Discrete, error) {
	if Ts <= 0 {
		return nil, fmt.Errorf("invalid sampling time: %v", Ts)
	}

	nx, _, _ := ct.SystemDims()
	dsys := newSystem(ct.A, ct.B, ct.C, ct.D)

	dsys.A.Scale(Ts, dsys.A)
	dsys.A.Exp(dsys.A)

	if ct.B == nil {
		return &Discrete{System: dsys}, nil
	}

	eye, err := matrix.NewDenseValIdentity(nx, 1.0)
	if err != nil {
		return nil, err
	}

	aux := mat.NewDense(nx, nx, nil)
	aux.Sub(dsys.A, eye)

	aInv := mat.NewDense(nx, nx, nil)
	if err := aInv.Inverse(ct.A); err == nil {
		aux.Mul(aux, aInv)
		dsys.B.Mul(aux, ct.B)
		return &Discrete{System: dsys}, nil
	}

	// A is singular: integrate exp(A*t) over [0, Ts]
	const n = 100
	sum := mat.NewDense(nx, nx, nil)
	dt := Ts / float64(n-1)
	for i := 0; i < n; i++ {
		aux.Scale(dt*float64(i), ct.A)
		aux.Exp(aux)
		aux.Scale(dt, aux)
		sum.Add(sum, aux)
	}
	dsys.B.Mul(sum, ct.B)

	return &Discrete{System: dsys}, nil
}
