package sim

import (
	"fmt"

	filter "github.com/guanqp/go-ekf"

	"gonum.org/v1/gonum/mat"
)

// Trajectory is a simulated run of a discrete-time system: the true state
// and the noisy output of each step stored in the matching row.
type Trajectory struct {
	// States holds one true state per row
	States *mat.Dense
	// Outputs holds one noisy output per row
	Outputs *mat.Dense
}

// Run simulates steps cycles of the system d starting from state x0 under
// the constant input u, drawing process noise from wd and measurement
// noise from wn. Either noise source may be nil for a noise-free run.
// It returns error if the system cannot be propagated or observed.
func Run(d *Discrete, x0, u mat.Vector, wd, wn filter.Noise, steps int) (*Trajectory, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("invalid number of steps: %d", steps)
	}

	nx, _, ny := d.SystemDims()
	tr := &Trajectory{
		States:  mat.NewDense(steps, nx, nil),
		Outputs: mat.NewDense(steps, ny, nil),
	}

	x := mat.VecDenseCopyOf(x0)
	for k := 0; k < steps; k++ {
		var wdS, wnS mat.Vector
		if wd != nil {
			wdS = wd.Sample()
		}
		if wn != nil {
			wnS = wn.Sample()
		}

		xNext, err := d.Propagate(x, u, wdS)
		if err != nil {
			return nil, fmt.Errorf("failed to propagate system state: %v", err)
		}
		x = mat.VecDenseCopyOf(xNext)

		y, err := d.Observe(x, u, wnS)
		if err != nil {
			return nil, fmt.Errorf("failed to observe system output: %v", err)
		}

		tr.States.SetRow(k, mat.Col(nil, 0, x))
		tr.Outputs.SetRow(k, mat.Col(nil, 0, y))
	}

	return tr, nil
}
