package league

import "context"

type SeasonRepository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	GetByName(ctx context.Context, name string) (Season, bool, error)
	Create(ctx context.Context, s Season) (Season, error)
	Update(ctx context.Context, s Season) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Repository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]League, error)
	GetByID(ctx context.Context, id int64) (League, bool, error)
	GetByName(ctx context.Context, name string) (League, bool, error)
	Create(ctx context.Context, l League) (League, error)
	Update(ctx context.Context, l League) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TableRepository interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]TableRow, error)
	GetByID(ctx context.Context, id int64) (TableRow, bool, error)
	GetByTeamAndSeason(ctx context.Context, teamID, seasonID int64) (TableRow, bool, error)
	Create(ctx context.Context, r TableRow) (TableRow, error)
	Update(ctx context.Context, r TableRow) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
