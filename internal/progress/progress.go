// Package progress records completed rounds against the practitioner's profile
// and derives location unlocks and achievements from the running totals
package progress

import (
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/models"
)

// ProfileStore persists the profile of a single user.
type ProfileStore interface {
	GetProfile(user string) (*models.Profile, error)
	SaveProfile(user string, p *models.Profile) error
	DeleteProfile(user string) error
}

// Tracker is the single owner of the profile during a run of the program.
type Tracker struct {
	store   ProfileStore
	profile *models.Profile
	now     func() time.Time
	user    string
}

// New loads the profile of user from store. A missing profile is not an error.
func New(store ProfileStore, user string) (*Tracker, error) {
	p, err := store.GetProfile(user)
	if err != nil {
		return nil, errLoadProfile.Wrap(err)
	}

	return &Tracker{
		store:   store,
		user:    user,
		profile: p,
		now:     time.Now,
	}, nil
}

// Profile returns a copy of the current profile, or nil if none exists.
func (t *Tracker) Profile() *models.Profile {
	if t.profile == nil {
		return nil
	}

	p := *t.profile
	p.LocationsUnlocked = slices.Clone(t.profile.LocationsUnlocked)

	return &p
}

// HasProfile reports whether a profile has been created.
func (t *Tracker) HasProfile() bool {
	return t.profile != nil
}

// CreateProfile starts a fresh profile, replacing any existing one.
func (t *Tracker) CreateProfile(
	heroName string,
	character models.Character,
) (*models.Profile, error) {
	if heroName == "" {
		return nil, errHeroNameRequired
	}

	if character != models.Male && character != models.Female {
		return nil, errInvalidCharacter.Fmt(character)
	}

	p := &models.Profile{
		HeroName:          heroName,
		Character:         character,
		LocationsUnlocked: []int{location.First},
		CreatedAt:         t.now(),
	}

	if err := t.store.SaveProfile(t.user, p); err != nil {
		return nil, errSaveProfile.Wrap(err)
	}

	t.profile = p

	return t.Profile(), nil
}

// AddCompletedRound commits a finished round of the given length. Every
// completed round opens the location after it, up to the last one. It returns
// the id of the location unlocked by this round, or zero when nothing new was
// unlocked. Without a profile it does nothing.
func (t *Tracker) AddCompletedRound(seconds int) int {
	if t.profile == nil {
		return 0
	}

	p := t.profile
	p.TotalRoundsCompleted++
	p.TotalTimeSeconds += seconds
	p.TotalBreathCycles += breath.CyclesPerRound

	var unlocked int

	id := min(location.Last, p.TotalRoundsCompleted+1)
	if !slices.Contains(p.LocationsUnlocked, id) {
		p.LocationsUnlocked = append(p.LocationsUnlocked, id)
		unlocked = id
	}

	// the round is already counted in memory; a failed write only loses
	// durability
	if err := t.store.SaveProfile(t.user, p); err != nil {
		slog.Error(
			"failed to save profile",
			slog.Any("error", err),
			slog.Int("rounds", p.TotalRoundsCompleted),
		)
	}

	return unlocked
}

// Unlocked reports whether the location with the given id is open.
func (t *Tracker) Unlocked(id int) bool {
	if t.profile == nil {
		return id == location.First
	}

	return slices.Contains(t.profile.LocationsUnlocked, id)
}

// Reset deletes the profile and the practice history.
func (t *Tracker) Reset() error {
	if err := t.store.DeleteProfile(t.user); err != nil {
		return errResetProfile.Wrap(err)
	}

	t.profile = nil

	return nil
}
