package postgres

import (
	"github.com/goalmaven/goal-maven/internal/domain/continent"
	"github.com/goalmaven/goal-maven/internal/domain/nation"
)

type continentTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m continentTableModel) toDomain() continent.Continent {
	return continent.Continent{ID: m.ID, Name: m.Name}
}

type nationTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	ContinentID int64  `db:"continent_id"`
}

func (m nationTableModel) toDomain() nation.Nation {
	return nation.Nation{ID: m.ID, Name: m.Name, ContinentID: m.ContinentID}
}

type cityTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	NationID int64  `db:"nation_id"`
}

func (m cityTableModel) toDomain() nation.City {
	return nation.City{ID: m.ID, Name: m.Name, NationID: m.NationID}
}

type stadiumTableModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	CityID   int64  `db:"city_id"`
	Capacity int    `db:"capacity"`
}

func (m stadiumTableModel) toDomain() nation.Stadium {
	return nation.Stadium{ID: m.ID, Name: m.Name, CityID: m.CityID, Capacity: m.Capacity}
}
