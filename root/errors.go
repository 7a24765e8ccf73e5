package root

import "errors"

var (
	ErrNotConverged = errors.New("not converged")
	ErrDiverged     = errors.New("diverged")
	ErrTaskFailed   = errors.New("task failed")
	ErrAborted      = errors.New("aborted")
)
