package store

import (
	"time"

	"github.com/ayoisaiah/anuloma/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// GetProfile returns the profile saved under user. A nil profile and nil
	// error are returned when none exists.
	GetProfile(user string) (*models.Profile, error)
	// SaveProfile creates or overwrites the profile of user
	SaveProfile(user string, p *models.Profile) error
	// DeleteProfile removes the profile of user
	DeleteProfile(user string) error
	// SaveSession records a finished or stopped practice run
	SaveSession(user string, rec *models.SessionRecord) error
	// GetSessions returns the practice runs of user started within the time
	// bounds, oldest first
	GetSessions(user string, startTime, endTime time.Time) ([]models.SessionRecord, error)
	// Close ends the database connection
	Close() error
}
