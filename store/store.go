// Package store connects to the data store and manages profiles and practice
// history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/osutil"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
)

const (
	profileBucket = "profiles"
	historyBucket = "history"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// storedProfile decodes a profile written by any earlier version. Fields that
// may be absent are pointers so that a missing value can be told apart from
// zero.
type storedProfile struct {
	TotalBreathCycles *int `json:"total_breath_cycles"`
	models.Profile
}

func decodeProfile(b []byte) (*models.Profile, error) {
	var sp storedProfile

	if err := json.Unmarshal(b, &sp); err != nil {
		return nil, errDecodeProfile.Wrap(err)
	}

	p := sp.Profile

	if sp.TotalBreathCycles == nil {
		p.TotalBreathCycles = p.TotalRoundsCompleted * breath.CyclesPerRound
	} else {
		p.TotalBreathCycles = *sp.TotalBreathCycles
	}

	if !slices.Contains(p.LocationsUnlocked, location.First) {
		p.LocationsUnlocked = append([]int{location.First}, p.LocationsUnlocked...)
	}

	return &p, nil
}

func (c *Client) GetProfile(user string) (*models.Profile, error) {
	var p *models.Profile

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(profileBucket)).Get([]byte(user))
		if len(b) == 0 {
			return nil
		}

		var err error

		p, err = decodeProfile(b)

		return err
	})

	return p, err
}

func (c *Client) SaveProfile(user string, p *models.Profile) error {
	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(profileBucket)).Put([]byte(user), value)
	})
}

func (c *Client) DeleteProfile(user string) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(profileBucket)).Delete([]byte(user))
		if err != nil {
			return err
		}

		err = tx.Bucket([]byte(historyBucket)).DeleteBucket([]byte(user))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}

		return err
	})
}

// SaveSession stores rec in the history of user, keyed by its start time.
func (c *Client) SaveSession(user string, rec *models.SessionRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := append(timeutil.ToKey(rec.StartTime), []byte("|"+rec.ID)...)

	return c.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(historyBucket)).
			CreateBucketIfNotExists([]byte(user))
		if err != nil {
			return err
		}

		return b.Put(key, value)
	})
}

func (c *Client) GetSessions(
	user string,
	startTime, endTime time.Time,
) ([]models.SessionRecord, error) {
	var records []models.SessionRecord

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket)).Bucket([]byte(user))
		if b == nil {
			return nil
		}

		cur := b.Cursor()
		lo := timeutil.ToKey(startTime)
		hi := timeutil.ToKey(endTime)

		for k, v := cur.Seek(lo); k != nil; k, v = cur.Next() {
			ts, _, _ := bytes.Cut(k, []byte("|"))
			if bytes.Compare(ts, hi) > 0 {
				break
			}

			var rec models.SessionRecord

			if err := json.Unmarshal(v, &rec); err != nil {
				return errDecodeSession.Wrap(err)
			}

			records = append(records, rec)
		}

		return nil
	})

	return records, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{profileBucket, historyBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
