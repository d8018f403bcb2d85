package nation

import "context"

type Repository interface {
	List(ctx context.Context) ([]Nation, error)
	GetByID(ctx context.Context, id int64) (Nation, bool, error)
	GetByName(ctx context.Context, name string) (Nation, bool, error)
	Create(ctx context.Context, n Nation) (Nation, error)
	Update(ctx context.Context, n Nation) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CityRepository interface {
	List(ctx context.Context) ([]City, error)
	GetByID(ctx context.Context, id int64) (City, bool, error)
	GetByName(ctx context.Context, name string) (City, bool, error)
	Create(ctx context.Context, c City) (City, error)
	Update(ctx context.Context, c City) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type StadiumRepository interface {
	List(ctx context.Context) ([]Stadium, error)
	GetByID(ctx context.Context, id int64) (Stadium, bool, error)
	GetByName(ctx context.Context, name string) (Stadium, bool, error)
	Create(ctx context.Context, s Stadium) (Stadium, error)
	Update(ctx context.Context, s Stadium) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
