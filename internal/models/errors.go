package models

import "errors"

// Sentinel errors for validation.
var (
	ErrMissingID        = errors.New("id is required")
	ErrInvalidID        = errors.New("invalid id")
	ErrMissingFrom      = errors.New("from is required")
	ErrMissingTo        = errors.New("to is required")
	ErrInvalidKind      = errors.New("invalid relationship kind")
	ErrSelfRelationship = errors.New("a member cannot be related to itself")
)

// Sentinel errors for entity lookups.
var (
	ErrTreeNotFound   = errors.New("tree not found")
	ErrMemberNotFound = errors.New("member not found")
)

