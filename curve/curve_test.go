package curve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcalculus/calculus"
	"github.com/stretchr/testify/assert"
)

func quadratic(x float64) float64 {
	return x*x + x - 6
}

func TestSample(t *testing.T) {
	ps := Sample(quadratic, -5, 4, 9)
	assert.Len(t, ps, 10)

	for idx, p := range ps {
		assert.EqualValues(t, -5+idx, p.X)
		assert.EqualValues(t, quadratic(p.X), p.Y)
	}

	ps = Sample(quadratic, 0, 1, 3)
	assert.Len(t, ps, 4)
	assert.EqualValues(t, 1, ps[3].X)

	assert.Nil(t, Sample(quadratic, 0, 1, 0))
}

func TestSampleDerivative(t *testing.T) {
	ps := SampleDerivative(quadratic, -2, 2, 4)
	assert.Len(t, ps, 5)

	for _, p := range ps {
		assert.InDelta(t, 2*p.X+1, p.Y, 1e-6)
	}
}

func TestCommStorage(t *testing.T) {
	stg := NewCommonStorage(filepath.Join(t.TempDir(), "curves"))

	_, err := stg.Load("quadratic")
	assert.Equal(t, commerr.ErrNotFound, err)

	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		_, err = stg.Load(key)
		assert.Equal(t, commerr.ErrInvalidArgument, err)
		assert.Equal(t, commerr.ErrInvalidArgument, stg.Save(key, nil))
	}

	ps := Sample(quadratic, -1, 1, 8)

	err = stg.Save("quadratic", ps)
	assert.Nil(t, err)

	loaded, err := stg.Load("quadratic")
	assert.Nil(t, err)
	assert.Equal(t, ps, loaded)
}

func TestWriteDataFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "quadratic.dat")

	err := WriteDataFile(fileName, Sample(quadratic, 0, 2, 4))
	assert.Nil(t, err)

	d, err := os.ReadFile(fileName)
	assert.Nil(t, err)
	assert.Equal(t, "0 -6\n0.5 -5.25\n1 -4\n1.5 -2.25\n2 0\n", string(d))

	err = WriteDataFile(filepath.Join(t.TempDir(), "missing", "x.dat"), nil)
	assert.NotNil(t, err)
}

func TestCommStorageRootNotDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")

	err := os.WriteFile(blocker, []byte("x"), 0600)
	assert.Nil(t, err)

	// root is below a regular file, so it can not be created
	stg := NewCommonStorage(filepath.Join(blocker, "curves"))

	err = stg.Save("quadratic", Sample(quadratic, 0, 1, 2))
	assert.NotNil(t, err)
}

func TestTabulator(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tables")

	tab := NewTabulator(NewCommonStorage(root), &calculus.Config{DerivativeSteps: 1}, l.NewConsoleLoggerWrapper())
	assert.NotNil(t, tab)

	ps, err := tab.Tabulate("quadratic", quadratic, 0, 2, 4)
	assert.Nil(t, err)
	assert.Len(t, ps, 5)

	// a second tabulator over the same directory sees the saved table
	loaded, err := NewTabulator(NewCommonStorage(root), nil, nil).Points("quadratic")
	assert.Nil(t, err)
	assert.Equal(t, ps, loaded)

	fileName := filepath.Join(t.TempDir(), "quadratic.dat")
	assert.Nil(t, tab.Export("quadratic", fileName))

	d, err := os.ReadFile(fileName)
	assert.Nil(t, err)
	assert.Equal(t, "0 -6\n0.5 -5.25\n1 -4\n1.5 -2.25\n2 0\n", string(d))

	// one derivative step, h = 1: ((x+1)^3 - (x-1)^3) / 2 = 3x^2 + 1
	cube := func(x float64) float64 { return x * x * x }

	ps, err = tab.TabulateDerivative("cube-d", cube, 0, 2, 2)
	assert.Nil(t, err)
	assert.Len(t, ps, 3)

	for _, p := range ps {
		assert.EqualValues(t, 3*p.X*p.X+1, p.Y)
	}

	_, err = tab.Points("missing")
	assert.Equal(t, commerr.ErrNotFound, err)
	assert.Equal(t, commerr.ErrNotFound, tab.Export("missing", fileName))

	_, err = tab.Tabulate("bad", quadratic, 0, 2, 0)
	assert.Equal(t, commerr.ErrInvalidArgument, err)

	_, err = tab.Tabulate("bad", nil, 0, 2, 4)
	assert.Equal(t, commerr.ErrInvalidArgument, err)

	_, err = tab.TabulateDerivative("bad", nil, 0, 2, 4)
	assert.Equal(t, commerr.ErrInvalidArgument, err)

	_, err = tab.Tabulate("a/b", quadratic, 0, 2, 4)
	assert.Equal(t, commerr.ErrInvalidArgument, err)

	assert.Nil(t, NewTabulator(nil, nil, nil))
}
