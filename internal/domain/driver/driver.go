package driver

import "time"

type Driver struct {
	ID              int64
	WorkerID        int64
	TruckID         int64
	LicenseNumber   string
	LicenseCategory string
	LicenseExpiry   *time.Time
	Active          bool
	Worker          *WorkerSummary
	Truck           *TruckSummary
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkerSummary is the slice of the worker record returned with a driver.
type WorkerSummary struct {
	ID             int64
	FirstName      string
	LastName       string
	DocumentNumber string
}

// TruckSummary is the slice of the truck record returned with a driver.
type TruckSummary struct {
	ID    int64
	Plate string
	Brand string
	Model string
}

type CreateDriverInput struct {
	WorkerID        int64
	TruckID         int64
	LicenseNumber   string
	LicenseCategory string
	LicenseExpiry   *time.Time
	Active          bool
}

// UpdateDriverInput replaces every mutable field. ID is optional; when set it
// must match the driver being updated.
type UpdateDriverInput struct {
	ID              *int64
	WorkerID        int64
	TruckID         int64
	LicenseNumber   string
	LicenseCategory string
	LicenseExpiry   *time.Time
	Active          bool
}

// SortFields maps the public sort keys to columns of the drivers table.
var SortFields = map[string]string{
	"id":              "d.id",
	"workerId":        "d.worker_id",
	"truckId":         "d.truck_id",
	"licenseNumber":   "d.license_number",
	"licenseCategory": "d.license_category",
	"createdAt":       "d.created_at",
}
