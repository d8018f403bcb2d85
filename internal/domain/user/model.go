package user

import "time"

// User is an account holder. Favorites are stored as the referenced team and
// player names, validated against the catalog at write time.
type User struct {
	ID              int64
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	Username        string
	DateOfBirth     time.Time
	CountryID       *int64
	FavoriteTeams   []string
	FavoritePlayers []string
	IsActive        bool
	IsStaff         bool
	IsSuperuser     bool
	DateJoined      time.Time
}

// Principal is the authenticated identity attached to a request context.
type Principal struct {
	UserID  int64
	Email   string
	IsStaff bool
}

// Token is a stored bearer credential; only the SHA-256 digest of the issued
// token is persisted.
type Token struct {
	ID        int64
	UserID    int64
	TokenHash string
	CreatedAt time.Time
}
