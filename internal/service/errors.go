package service

import "errors"

var (
	ErrUnderage           = errors.New("must be at least 16 years old")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeInvalid        = errors.New("verification failed")

	ErrNameRequired  = errors.New("community name required")
	ErrCommunityFull = errors.New("community is full")
	ErrNotMember     = errors.New("not a member")
	ErrNotStaff      = errors.New("no permission")

	ErrEmptyFields   = errors.New("title and content required")
	ErrMissingFields = errors.New("title and start date required")

	ErrTooFewOptions  = errors.New("at least 2 options required")
	ErrInvalidType    = errors.New("invalid poll type")
	ErrEmptySelection = errors.New("no option selected")
	ErrSingleChoice   = errors.New("single-choice poll takes exactly one option")
	ErrAlreadyVoted   = errors.New("already voted")

	ErrInvalidStatus = errors.New("invalid status")
)
