package usecase

import "errors"

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("not the job owner")
	ErrInternal    = errors.New("internal error")
)
