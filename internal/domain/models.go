package domain

import "slices"

type Status string

const (
	StatusPlaying   Status = "playing"
	StatusCompleted Status = "completed"
	StatusPlatinum  Status = "platinum"
)

// LibraryEntry marks one game's play status inside a profile's library.
// At most one entry exists per game per profile.
type LibraryEntry struct {
	GameID int    `json:"game_id"`
	Status Status `json:"status"`
}

type Profile struct {
	ID          int            `json:"id"`
	DisplayName string         `json:"display_name"`
	Description string         `json:"description"`
	Avatar      string         `json:"avatar"`
	Followers   []int          `json:"followers"`
	Following   []int          `json:"following"`
	Library     []LibraryEntry `json:"library"`
	Favorites   []int          `json:"favorites"`

	// Derived from Library; recounted after every library mutation,
	// never patched incrementally.
	PlayingCount   int `json:"playing_count"`
	CompletedCount int `json:"completed_count"`
	PlatinumCount  int `json:"platinum_count"`
}

// RecountLibrary overwrites the three status counters from the library
// entries. This is the only way the counters are ever written.
func (p *Profile) RecountLibrary() {
	p.PlayingCount = 0
	p.CompletedCount = 0
	p.PlatinumCount = 0
	for _, e := range p.Library {
		switch e.Status {
		case StatusPlaying:
			p.PlayingCount++
		case StatusCompleted:
			p.CompletedCount++
		case StatusPlatinum:
			p.PlatinumCount++
		}
	}
}

// LibraryIndex returns the position of the entry for gameID, or -1.
func (p *Profile) LibraryIndex(gameID int) int {
	return slices.IndexFunc(p.Library, func(e LibraryEntry) bool {
		return e.GameID == gameID
	})
}

func (p *Profile) HasFavorite(gameID int) bool {
	return slices.Contains(p.Favorites, gameID)
}

func (p *Profile) IsFollowing(profileID int) bool {
	return slices.Contains(p.Following, profileID)
}

func (p Profile) Clone() Profile {
	p.Followers = slices.Clone(p.Followers)
	p.Following = slices.Clone(p.Following)
	p.Library = slices.Clone(p.Library)
	p.Favorites = slices.Clone(p.Favorites)
	return p
}

type Game struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`

	// Derived: arithmetic mean of all evaluation scores for this game,
	// rounded to 2 decimals, 0.0 when no evaluations exist.
	AverageRating float64 `json:"average_rating"`
}

// Evaluation is one profile's score and review for one game, unique per
// (profile, game) pair.
type Evaluation struct {
	ID         int     `json:"id"`
	ProfileID  int     `json:"profile_id"`
	GameID     int     `json:"game_id"`
	Score      float64 `json:"score"`
	ReviewText string  `json:"review_text"`
}
