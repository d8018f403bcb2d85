package continent

import "context"

// Repository describes continent persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Continent, error)
	GetByID(ctx context.Context, id int64) (Continent, bool, error)
	GetByName(ctx context.Context, name string) (Continent, bool, error)
	Create(ctx context.Context, c Continent) (Continent, error)
	Update(ctx context.Context, c Continent) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
