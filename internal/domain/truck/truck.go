package truck

import "time"

type Truck struct {
	ID         int64
	Plate      string
	Brand      string
	Model      string
	Year       int
	CapacityKg int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateTruckInput struct {
	Plate      string
	Brand      string
	Model      string
	Year       int
	CapacityKg int
}

type UpdateTruckInput struct {
	ID         *int64
	Plate      string
	Brand      string
	Model      string
	Year       int
	CapacityKg int
}

var SortFields = map[string]string{
	"id":         "id",
	"plate":      "plate",
	"brand":      "brand",
	"model":      "model",
	"year":       "year",
	"capacityKg": "capacity_kg",
	"createdAt":  "created_at",
}
