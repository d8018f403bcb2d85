package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/goalmaven/goal-maven/internal/domain/nation"
	"github.com/goalmaven/goal-maven/internal/domain/player"
	"github.com/goalmaven/goal-maven/internal/domain/team"
	"github.com/goalmaven/goal-maven/internal/domain/user"
	"github.com/goalmaven/goal-maven/internal/platform/token"
)

const minPasswordLength = 5

// minAccountAge is the youngest a registrant may be.
const minAccountAgeYears = 5

// AccountService handles registration, credentials and profile updates.
// Issued tokens are opaque; only their SHA-256 digest is stored.
type AccountService struct {
	userRepo   user.Repository
	tokenRepo  user.TokenRepository
	nationRepo nation.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	tokens     token.Generator
	bcryptCost int
	now        func() time.Time
}

func NewAccountService(
	userRepo user.Repository,
	tokenRepo user.TokenRepository,
	nationRepo nation.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	tokens token.Generator,
	bcryptCost int,
) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		nationRepo: nationRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

type RegisterInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Username        string
	DateOfBirth     time.Time
	CountryID       *int64
	FavoriteTeams   []string
	FavoritePlayers []string
}

func (s *AccountService) validateDateOfBirth(dob time.Time) error {
	if dob.IsZero() {
		return fmt.Errorf("%w: date of birth is required", ErrInvalidInput)
	}
	now := s.now()
	if dob.After(now) {
		return fmt.Errorf("%w: date of birth cannot be in the future", ErrInvalidInput)
	}
	if dob.After(now.AddDate(-minAccountAgeYears, 0, 0)) {
		return fmt.Errorf("%w: account holder must be at least %d years old", ErrInvalidInput, minAccountAgeYears)
	}
	return nil
}

func (s *AccountService) checkFavorites(ctx context.Context, teams, players []string) error {
	for _, name := range teams {
		if _, found, err := s.teamRepo.GetByName(ctx, name); err != nil {
			return fmt.Errorf("check favorite team: %w", err)
		} else if !found {
			return fmt.Errorf("%w: favorite team %q does not exist", ErrInvalidInput, name)
		}
	}
	for _, name := range players {
		if _, found, err := s.playerRepo.GetByName(ctx, name); err != nil {
			return fmt.Errorf("check favorite player: %w", err)
		} else if !found {
			return fmt.Errorf("%w: favorite player %q does not exist", ErrInvalidInput, name)
		}
	}
	return nil
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.Register")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)

	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return user.User{}, fmt.Errorf("%w: a valid email address is required", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return user.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if in.FirstName == "" || in.LastName == "" {
		return user.User{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if in.Username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if err := s.validateDateOfBirth(in.DateOfBirth); err != nil {
		return user.User{}, err
	}
	if in.CountryID != nil {
		if _, found, err := s.nationRepo.GetByID(ctx, *in.CountryID); err != nil {
			return user.User{}, fmt.Errorf("check user country: %w", err)
		} else if !found {
			return user.User{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, *in.CountryID)
		}
	}
	if err := s.checkFavorites(ctx, in.FavoriteTeams, in.FavoritePlayers); err != nil {
		return user.User{}, err
	}

	if _, exists, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return user.User{}, fmt.Errorf("check user email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email %q is already registered", ErrConflict, in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:           in.Email,
		PasswordHash:    string(hash),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Username:        in.Username,
		DateOfBirth:     in.DateOfBirth,
		CountryID:       in.CountryID,
		FavoriteTeams:   in.FavoriteTeams,
		FavoritePlayers: in.FavoritePlayers,
		IsActive:        true,
		DateJoined:      s.now().UTC(),
	})
	if err != nil {
		return user.User{}, conflictOr(err, fmt.Sprintf("email %q", in.Email))
	}
	return created, nil
}

// CreateSuperuser provisions a staff account with full privileges. It runs
// from the CLI, not the API, so it skips the profile fields registration
// demands.
func (s *AccountService) CreateSuperuser(ctx context.Context, email, password, username string) (user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return user.User{}, fmt.Errorf("%w: a valid email address is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return user.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return user.User{}, fmt.Errorf("check user email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email %q is already registered", ErrConflict, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: string(hash),
		Username:     strings.TrimSpace(username),
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
		DateJoined:   s.now().UTC(),
	})
	if err != nil {
		return user.User{}, conflictOr(err, fmt.Sprintf("email %q", email))
	}
	return created, nil
}

type ProfilePatch struct {
	Password        *string
	FirstName       *string
	LastName        *string
	Username        *string
	DateOfBirth     *time.Time
	CountryID       **int64
	FavoriteTeams   *[]string
	FavoritePlayers *[]string
}

// UpdateProfile applies a partial update to the caller's own account. The
// email is the account identity and cannot change.
func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (user.User, error) {
	current, found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	if patch.Password != nil {
		if len(*patch.Password) < minPasswordLength {
			return user.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.bcryptCost)
		if err != nil {
			return user.User{}, fmt.Errorf("hash password: %w", err)
		}
		current.PasswordHash = string(hash)
	}
	if patch.FirstName != nil {
		if strings.TrimSpace(*patch.FirstName) == "" {
			return user.User{}, fmt.Errorf("%w: first name cannot be empty", ErrInvalidInput)
		}
		current.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		if strings.TrimSpace(*patch.LastName) == "" {
			return user.User{}, fmt.Errorf("%w: last name cannot be empty", ErrInvalidInput)
		}
		current.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Username != nil {
		if strings.TrimSpace(*patch.Username) == "" {
			return user.User{}, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
		}
		current.Username = strings.TrimSpace(*patch.Username)
	}
	if patch.DateOfBirth != nil {
		if err := s.validateDateOfBirth(*patch.DateOfBirth); err != nil {
			return user.User{}, err
		}
		current.DateOfBirth = *patch.DateOfBirth
	}
	if patch.CountryID != nil {
		if *patch.CountryID != nil {
			if _, found, err := s.nationRepo.GetByID(ctx, **patch.CountryID); err != nil {
				return user.User{}, fmt.Errorf("check user country: %w", err)
			} else if !found {
				return user.User{}, fmt.Errorf("%w: nation %d does not exist", ErrInvalidInput, **patch.CountryID)
			}
		}
		current.CountryID = *patch.CountryID
	}
	if patch.FavoriteTeams != nil {
		if err := s.checkFavorites(ctx, *patch.FavoriteTeams, nil); err != nil {
			return user.User{}, err
		}
		current.FavoriteTeams = *patch.FavoriteTeams
	}
	if patch.FavoritePlayers != nil {
		if err := s.checkFavorites(ctx, nil, *patch.FavoritePlayers); err != nil {
			return user.User{}, err
		}
		current.FavoritePlayers = *patch.FavoritePlayers
	}

	ok, err := s.userRepo.Update(ctx, current)
	if err != nil {
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	if !ok {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}
	return current, nil
}

func (s *AccountService) Profile(ctx context.Context, userID int64) (user.User, error) {
	current, found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}
	return current, nil
}

// IssueToken exchanges email and password for a fresh bearer token. The
// plaintext is returned exactly once.
func (s *AccountService) IssueToken(ctx context.Context, email, password string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "AccountService.IssueToken")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	account, found, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if !found || !account.IsActive {
		return "", fmt.Errorf("%w: unknown or inactive account", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: wrong credentials", ErrUnauthorized)
	}

	plaintext, err := s.tokens.NewToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if _, err := s.tokenRepo.Create(ctx, user.Token{
		UserID:    account.ID,
		TokenHash: token.Hash(plaintext),
		CreatedAt: s.now().UTC(),
	}); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return plaintext, nil
}

// Authenticate resolves a presented bearer token to its principal.
func (s *AccountService) Authenticate(ctx context.Context, plaintext string) (user.Principal, error) {
	stored, found, err := s.tokenRepo.GetByHash(ctx, token.Hash(plaintext))
	if err != nil {
		return user.Principal{}, fmt.Errorf("get token: %w", err)
	}
	if !found {
		return user.Principal{}, fmt.Errorf("%w: unknown token", ErrUnauthorized)
	}
	account, found, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get token user: %w", err)
	}
	if !found || !account.IsActive {
		return user.Principal{}, fmt.Errorf("%w: unknown or inactive account", ErrUnauthorized)
	}
	return user.Principal{UserID: account.ID, Email: account.Email, IsStaff: account.IsStaff}, nil
}

// RevokeTokens invalidates every token the user holds.
func (s *AccountService) RevokeTokens(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}
