package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidKind       = errors.New("invalid task kind")
	ErrUntimedTask       = errors.New("task has no time slot")
	ErrMalformedRecord   = errors.New("malformed source record")
	ErrSourceUnavailable = errors.New("no task source could be reached")
	ErrSync              = errors.New("remote sync failed")
	ErrNoRemote          = errors.New("remote not configured (run 'focus init' and edit the config file)")
	ErrConfigExists      = errors.New("config file already exists")
)
