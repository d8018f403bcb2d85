package team

import "context"

type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	GetByManager(ctx context.Context, managerID int64) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ManagerRepository interface {
	List(ctx context.Context) ([]Manager, error)
	GetByID(ctx context.Context, id int64) (Manager, bool, error)
	GetByName(ctx context.Context, name string) (Manager, bool, error)
	Create(ctx context.Context, m Manager) (Manager, error)
	Update(ctx context.Context, m Manager) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type RefereeRepository interface {
	List(ctx context.Context) ([]Referee, error)
	GetByID(ctx context.Context, id int64) (Referee, bool, error)
	GetByName(ctx context.Context, name string) (Referee, bool, error)
	Create(ctx context.Context, r Referee) (Referee, error)
	Update(ctx context.Context, r Referee) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
