package store

import "github.com/ayoisaiah/anuloma/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is anuloma already running? Only one instance can be active at a time",
	}

	errDecodeProfile = &apperr.Error{
		Message: "stored profile is corrupt",
	}

	errDecodeSession = &apperr.Error{
		Message: "stored practice session is corrupt",
	}
)
