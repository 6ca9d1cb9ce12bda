// Package sim provides linear truth models, trajectory generation and
// plotting used to exercise the filter in tests and examples.
package sim

import "gonum.org/v1/gonum/mat"

// System defines a linear model of a plant using the traditional matrices
// of modern control theory: the system (A), input (B), observation (C)
// and feedthrough (D) matrices.
type System struct {
	// A is the system/state matrix
	A *mat.Dense
	// B is the control/input matrix
	B *mat.Dense
	// C is the observation/output matrix
	C *mat.Dense
	// D is the feedthrough matrix
	D *mat.Dense
}

func newSystem(A, B, C, D *mat.Dense) System {
	sys := System{A: mat.DenseCopyOf(A)}
	if B != nil {
		sys.B = mat.DenseCopyOf(B)
	}
	if C != nil {
		sys.C = mat.DenseCopyOf(C)
	}
	if D != nil {
		sys.D = mat.DenseCopyOf(D)
	}

	return sys
}

// SystemDims returns the state, input and output dimensions of the system.
func (s *System) SystemDims() (nx, nu, ny int) {
	nx, _ = s.A.Dims()
	if s.B != nil {
		_, nu = s.B.Dims()
	}
	if s.C != nil {
		ny, _ = s.C.Dims()
	}

	return nx, nu, ny
}
