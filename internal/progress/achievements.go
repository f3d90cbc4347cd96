package progress

// Achievement is a milestone reached by completing enough rounds.
type Achievement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
}

// AchievementList is every achievement in ascending threshold order.
var AchievementList = []Achievement{
	{ID: "first-breath", Title: "First Breath", Threshold: 1},
	{ID: "apprentice", Title: "Apprentice", Threshold: 10},
	{ID: "adept", Title: "Adept", Threshold: 50},
	{ID: "master", Title: "Master", Threshold: 100},
	{ID: "full-path", Title: "Full Path", Threshold: 200},
}

// Earned reports whether rounds completed reaches the achievement.
func (a Achievement) Earned(rounds int) bool {
	return rounds >= a.Threshold
}

// Achievements returns the achievements earned with the given round total.
func Achievements(rounds int) []Achievement {
	var earned []Achievement

	for _, a := range AchievementList {
		if a.Earned(rounds) {
			earned = append(earned, a)
		}
	}

	return earned
}

// Next returns the closest achievement not yet earned.
func Next(rounds int) (Achievement, bool) {
	for _, a := range AchievementList {
		if !a.Earned(rounds) {
			return a, true
		}
	}

	return Achievement{}, false
}
