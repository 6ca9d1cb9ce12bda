package noise

import (
	"testing"

	filter "github.com/guanqp/go-ekf"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

var (
	_ filter.Noise = (*Gaussian)(nil)
	_ filter.Noise = (*Zero)(nil)
)

func TestNewGaussian(t *testing.T) {
	assert := assert.New(t)

	mean := []float64{1.0, 2.0}
	cov := mat.NewSymDense(2, []float64{1.0, 0.2, 0.2, 2.0})

	g, err := NewGaussian(mean, cov)
	assert.NotNil(g)
	assert.NoError(err)

	// mean/cov dimensions disagree
	g, err = NewGaussian([]float64{1.0}, cov)
	assert.Nil(g)
	assert.Error(err)

	g, err = NewGaussian(mean, nil)
	assert.Nil(g)
	assert.Error(err)

	// covariance not positive definite
	g, err = NewGaussian(mean, mat.NewSymDense(2, nil))
	assert.Nil(g)
	assert.Error(err)
}

func TestGaussianSample(t *testing.T) {
	assert := assert.New(t)

	mean := []float64{1.0, 2.0}
	cov := mat.NewSymDense(2, []float64{1.0, 0, 0, 2.0})

	g, err := NewGaussian(mean, cov)
	assert.NoError(err)

	s := g.Sample()
	assert.Equal(2, s.Len())

	g.Reset()
	s = g.Sample()
	assert.Equal(2, s.Len())
}

func TestGaussianAccessors(t *testing.T) {
	assert := assert.New(t)

	mean := []float64{1.0, 2.0}
	cov := mat.NewSymDense(2, []float64{1.0, 0, 0, 2.0})

	g, err := NewGaussian(mean, cov)
	assert.NoError(err)

	// accessors return copies
	m := g.Mean()
	assert.Equal(mean, m)
	m[0] = 9.0
	assert.Equal(mean, g.Mean())

	c := g.Cov()
	assert.InDelta(2.0, c.At(1, 1), 1e-12)
	assert.NotEmpty(g.String())
}

func TestZero(t *testing.T) {
	assert := assert.New(t)

	z, err := NewZero(-1)
	assert.Nil(z)
	assert.Error(err)

	z, err = NewZero(2)
	assert.NotNil(z)
	assert.NoError(err)

	s := z.Sample()
	assert.Equal(2, s.Len())
	assert.Zero(s.AtVec(0))
	assert.Zero(s.AtVec(1))

	assert.Equal([]float64{0, 0}, z.Mean())
	assert.Zero(z.Cov().At(0, 0))

	z.Reset()
	assert.NotEmpty(z.String())
}
