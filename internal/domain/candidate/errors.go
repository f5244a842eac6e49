package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
)
