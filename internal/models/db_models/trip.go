package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	TravelerName   string
	TravelerAge    int
	TravelerGender string

	Country     string
	State       string
	City        string
	Destination string `gorm:"index"`
	StartDate   string
	Days        int
	Mood        string
	BudgetRange string

	Interests pq.StringArray `gorm:"type:text[]"`

	POIs        datatypes.JSON
	Hotels      datatypes.JSON
	Itinerary   datatypes.JSON
	PackingList datatypes.JSON
	Weather     datatypes.JSON
	Events      datatypes.JSON
	MapData     datatypes.JSON

	TotalBudgetINR int
}
