package storage

import "errors"

var (
	// ErrRecordNotFound is returned when a record doesn't exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrOwnerNotFound is returned when an account doesn't exist
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrOwnerExists is returned when an account name is already taken
	ErrOwnerExists = errors.New("owner already exists")
)
