package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalmaven/goal-maven/internal/domain/nation"
)

func TestGeoService_ContinentCRUD(t *testing.T) {
	t.Parallel()

	r := newRig()
	ctx := context.Background()

	created, err := r.geo.CreateContinent(ctx, continentNamed("  Europe "))
	require.NoError(t, err)
	assert.Equal(t, "Europe", created.Name)
	assert.NotZero(t, created.ID)

	_, err = r.geo.CreateContinent(ctx, continentNamed("Europe"))
	require.ErrorIs(t, err, ErrConflict)

	renamed := "Eurasia"
	updated, err := r.geo.UpdateContinent(ctx, created.ID, ContinentPatch{Name: &renamed})
	require.NoError(t, err)
	assert.Equal(t, "Eurasia", updated.Name)

	require.NoError(t, r.geo.DeleteContinent(ctx, created.ID))
	_, err = r.geo.GetContinent(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGeoService_NationRequiresContinent(t *testing.T) {
	t.Parallel()

	r := newRig()
	ctx := context.Background()

	_, err := r.geo.CreateNation(ctx, nation.Nation{Name: "Spain", ContinentID: 99})
	require.ErrorIs(t, err, ErrInvalidInput)

	europe, err := r.geo.CreateContinent(ctx, continentNamed("Europe"))
	require.NoError(t, err)

	spain, err := r.geo.CreateNation(ctx, nation.Nation{Name: "Spain", ContinentID: europe.ID})
	require.NoError(t, err)
	assert.Equal(t, europe.ID, spain.ContinentID)
}

func TestGeoService_StadiumChainValidation(t *testing.T) {
	t.Parallel()

	r := newRig()
	ctx := context.Background()

	europe, err := r.geo.CreateContinent(ctx, continentNamed("Europe"))
	require.NoError(t, err)
	spain, err := r.geo.CreateNation(ctx, nation.Nation{Name: "Spain", ContinentID: europe.ID})
	require.NoError(t, err)
	madrid, err := r.geo.CreateCity(ctx, nation.City{Name: "Madrid", NationID: spain.ID})
	require.NoError(t, err)

	_, err = r.geo.CreateStadium(ctx, nation.Stadium{Name: "Metropolitano", CityID: madrid.ID + 100, Capacity: 70000})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = r.geo.CreateStadium(ctx, nation.Stadium{Name: "Metropolitano", CityID: madrid.ID, Capacity: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	ground, err := r.geo.CreateStadium(ctx, nation.Stadium{Name: "Metropolitano", CityID: madrid.ID, Capacity: 70460})
	require.NoError(t, err)
	assert.Equal(t, madrid.ID, ground.CityID)
}
