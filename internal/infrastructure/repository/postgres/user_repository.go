package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/goalmaven/goal-maven/internal/domain/user"
	qb "github.com/goalmaven/goal-maven/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) getBy(ctx context.Context, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("id", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getBy(ctx, qb.Eq("email", email))
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	query, args, err := qb.InsertInto("users").
		Columns("email", "password_hash", "first_name", "last_name", "username",
			"date_of_birth", "country_id", "favorite_teams", "favorite_players",
			"is_active", "is_staff", "is_superuser", "date_joined").
		Values(item.Email, item.PasswordHash, item.FirstName, item.LastName, item.Username,
			nullDate(item.DateOfBirth), nullInt64(item.CountryID),
			pq.StringArray(item.FavoriteTeams), pq.StringArray(item.FavoritePlayers),
			item.IsActive, item.IsStaff, item.IsSuperuser, item.DateJoined).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *UserRepository) Update(ctx context.Context, item user.User) (bool, error) {
	query, args, err := qb.Update("users").
		Set("password_hash", item.PasswordHash).
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("username", item.Username).
		Set("date_of_birth", nullDate(item.DateOfBirth)).
		Set("country_id", nullInt64(item.CountryID)).
		Set("favorite_teams", pq.StringArray(item.FavoriteTeams)).
		Set("favorite_players", pq.StringArray(item.FavoritePlayers)).
		Set("is_active", item.IsActive).
		Set("is_staff", item.IsStaff).
		Set("is_superuser", item.IsSuperuser).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update user query: %w", err)
	}
	return execAffected(ctx, r.db, "update user", query, args)
}

type TokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, item user.Token) (user.Token, error) {
	query, args, err := qb.InsertInto("auth_tokens").
		Columns("user_id", "token_hash", "created_at").
		Values(item.UserID, item.TokenHash, item.CreatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return user.Token{}, fmt.Errorf("build insert auth token query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return user.Token{}, fmt.Errorf("insert auth token: %w", wrapDuplicate(err))
	}
	return item, nil
}

func (r *TokenRepository) GetByHash(ctx context.Context, tokenHash string) (user.Token, bool, error) {
	query, args, err := qb.Select("*").From("auth_tokens").
		Where(qb.Eq("token_hash", tokenHash)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.Token{}, false, fmt.Errorf("build select auth token query: %w", err)
	}

	var row authTokenTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.Token{}, false, nil
		}
		return user.Token{}, false, fmt.Errorf("select auth token: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query, args, err := qb.DeleteFrom("auth_tokens").Where(qb.Eq("user_id", userID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete auth tokens query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete auth tokens: %w", err)
	}
	return nil
}
