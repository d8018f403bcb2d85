package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/goalmaven/goal-maven/internal/domain/user"
)

type userTableModel struct {
	ID              int64          `db:"id"`
	Email           string         `db:"email"`
	PasswordHash    string         `db:"password_hash"`
	FirstName       string         `db:"first_name"`
	LastName        string         `db:"last_name"`
	Username        string         `db:"username"`
	DateOfBirth     sql.NullTime   `db:"date_of_birth"`
	CountryID       sql.NullInt64  `db:"country_id"`
	FavoriteTeams   pq.StringArray `db:"favorite_teams"`
	FavoritePlayers pq.StringArray `db:"favorite_players"`
	IsActive        bool           `db:"is_active"`
	IsStaff         bool           `db:"is_staff"`
	IsSuperuser     bool           `db:"is_superuser"`
	DateJoined      time.Time      `db:"date_joined"`
}

func (m userTableModel) toDomain() user.User {
	out := user.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Username:        m.Username,
		CountryID:       int64Ptr(m.CountryID),
		FavoriteTeams:   []string(m.FavoriteTeams),
		FavoritePlayers: []string(m.FavoritePlayers),
		IsActive:        m.IsActive,
		IsStaff:         m.IsStaff,
		IsSuperuser:     m.IsSuperuser,
		DateJoined:      m.DateJoined,
	}
	if m.DateOfBirth.Valid {
		out.DateOfBirth = m.DateOfBirth.Time
	}
	return out
}

// nullDate maps the zero time to NULL; CLI-provisioned superusers carry no
// date of birth.
func nullDate(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

type authTokenTableModel struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
}

func (m authTokenTableModel) toDomain() user.Token {
	return user.Token{ID: m.ID, UserID: m.UserID, TokenHash: m.TokenHash, CreatedAt: m.CreatedAt}
}
