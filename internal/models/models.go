// Package models defines the shapes persisted to the database
package models

import (
	"time"
)

// Character is the avatar chosen when the profile is created.
type Character string

const (
	Male   Character = "male"
	Female Character = "female"
)

// Outcome describes how a practice session ended.
type Outcome string

const (
	Finished Outcome = "finished"
	Stopped  Outcome = "stopped"
)

// Profile is the persistent record of a practitioner's progress.
type Profile struct {
	CreatedAt            time.Time `json:"created_at"`
	HeroName             string    `json:"hero_name"`
	Character            Character `json:"character"`
	LocationsUnlocked    []int     `json:"locations_unlocked"`
	TotalRoundsCompleted int       `json:"total_rounds_completed"`
	TotalTimeSeconds     int       `json:"total_time_seconds"`
	TotalBreathCycles    int       `json:"total_breath_cycles"`
}

// SessionRecord is one practice run kept for the stats report.
type SessionRecord struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	ID              string    `json:"id"`
	CycleLabel      string    `json:"cycle_label"`
	Outcome         Outcome   `json:"outcome"`
	TargetRounds    int       `json:"target_rounds"`
	RoundsCompleted int       `json:"rounds_completed"`
	SecondsElapsed  int       `json:"seconds_elapsed"`
}
