package inbound

import "github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/entity"

// PlanetsResponse is the bare JSON array of records, one object per row.
type PlanetsResponse []entity.Record

func (PlanetsResponse) Raw() bool {
	return true
}
