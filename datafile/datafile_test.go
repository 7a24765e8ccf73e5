package datafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestDataFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "points.dat")

	err := os.WriteFile(fileName, []byte("stale content that must go away\n"), 0600)
	assert.Nil(t, err)

	df, err := Create(fileName)
	assert.Nil(t, err)

	assert.Nil(t, df.Write(0, -6))
	assert.Nil(t, df.Write(0.5, -5.25))
	assert.Nil(t, df.Write(-3, 1e-05))
	assert.Nil(t, df.Write(1e21, -2.5e-7))
	assert.Nil(t, df.Close())

	d, err := os.ReadFile(fileName)
	assert.Nil(t, err)
	assert.Equal(t, "0 -6\n0.5 -5.25\n-3 0.00001\n1000000000000000000000 -0.00000025\n", string(d))
}

func TestDataFileCreateFailed(t *testing.T) {
	_, err := Create("")
	assert.Equal(t, commerr.ErrInvalidArgument, err)

	_, err = Create(filepath.Join(t.TempDir(), "no-such-dir", "points.dat"))
	assert.NotNil(t, err)
}

func TestDataFileWriteAfterClose(t *testing.T) {
	df, err := Create(filepath.Join(t.TempDir(), "points.dat"))
	assert.Nil(t, err)
	assert.Nil(t, df.Close())

	assert.NotNil(t, df.Write(1, 2))
}
