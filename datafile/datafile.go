// Package datafile writes two-column numeric data files, one "x y" row per
// line, in a form gnuplot and similar tools read directly.
package datafile

import (
	"os"

	"github.com/sgostarter/i/commerr"
	"github.com/spf13/cast"
)

type DataFile struct {
	f *os.File
}

// Create creates fileName, truncating it if it already exists.
func Create(fileName string) (*DataFile, error) {
	if fileName == "" {
		return nil, commerr.ErrInvalidArgument
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	return &DataFile{
		f: f,
	}, nil
}

// Write appends one row. Values are written in plain decimal notation without
// an exponent, with as few digits as read back to the same float64, so very
// large or very small magnitudes produce long rows.
func (df *DataFile) Write(firstColumn, secondColumn float64) error {
	_, err := df.f.WriteString(cast.ToString(firstColumn) + " " + cast.ToString(secondColumn) + "\n")

	return err
}

func (df *DataFile) Close() error {
	return df.f.Close()
}
