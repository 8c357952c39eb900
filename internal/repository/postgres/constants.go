package postgres

import (
	"fmt"
	"time"
)

const (
	tableWorkers = "workers"
	tableTrucks  = "trucks"
	tableDrivers = "drivers"
	tableAudit   = "audit_events"

	constraintDriverWorker        = "drivers_worker_id_key"
	constraintDriverTruck         = "drivers_truck_id_key"
	constraintDriverLicense       = "drivers_license_number_key"
	constraintDriverWorkerFK      = "drivers_worker_id_fkey"
	constraintDriverTruckFK       = "drivers_truck_id_fkey"
	resourceDriver                = "Driver"
	resourceWorker                = "Worker"
	resourceTruck                 = "Truck"
	fieldID                       = "id"
	msgWorkerAlreadyAssigned      = "worker is already assigned to a driver"
	msgTruckAlreadyAssigned       = "truck is already assigned to a driver"
	msgLicenseNumberExists        = "license number is already registered"
	msgDocumentNumberExists       = "document number is already registered"
	msgPlateExists                = "plate is already registered"
	msgWorkerStillAssigned        = "worker is still assigned to a driver"
	msgTruckStillAssigned         = "truck is still assigned to a driver"
	msgUnsupportedSortFieldPrefix = "invalid sort field: "
	msgDriverConflict             = "driver conflicts with an existing record"

	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"
	errFailedApplySchemaFmt          = "failed to apply schema: %w"

	errFailedCreateDriverFmt = "failed to create driver: %w"
	errFailedGetDriverFmt    = "failed to get driver: %w"
	errFailedListDriversFmt  = "failed to list drivers: %w"
	errFailedCountDriversFmt = "failed to count drivers: %w"
	errFailedScanDriverFmt   = "failed to scan driver: %w"
	errFailedUpdateDriverFmt = "failed to update driver: %w"
	errFailedDeleteDriverFmt = "failed to delete driver: %w"
	errFailedCheckDriverFmt  = "failed to check driver assignment: %w"

	errFailedCreateWorkerFmt = "failed to create worker: %w"
	errFailedGetWorkerFmt    = "failed to get worker: %w"
	errFailedListWorkersFmt  = "failed to list workers: %w"
	errFailedCountWorkersFmt = "failed to count workers: %w"
	errFailedScanWorkerFmt   = "failed to scan worker: %w"
	errFailedUpdateWorkerFmt = "failed to update worker: %w"
	errFailedDeleteWorkerFmt = "failed to delete worker: %w"

	errFailedCreateTruckFmt = "failed to create truck: %w"
	errFailedGetTruckFmt    = "failed to get truck: %w"
	errFailedListTrucksFmt  = "failed to list trucks: %w"
	errFailedCountTrucksFmt = "failed to count trucks: %w"
	errFailedScanTruckFmt   = "failed to scan truck: %w"
	errFailedUpdateTruckFmt = "failed to update truck: %w"
	errFailedDeleteTruckFmt = "failed to delete truck: %w"
)

var (
	errFailedApplySchema          = func(err error) error { return fmt.Errorf(errFailedApplySchemaFmt, err) }
	errFailedCheckDriver          = func(err error) error { return fmt.Errorf(errFailedCheckDriverFmt, err) }
	errFailedCountDrivers         = func(err error) error { return fmt.Errorf(errFailedCountDriversFmt, err) }
	errFailedCountTrucks          = func(err error) error { return fmt.Errorf(errFailedCountTrucksFmt, err) }
	errFailedCountWorkers         = func(err error) error { return fmt.Errorf(errFailedCountWorkersFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedCreateDriver         = func(err error) error { return fmt.Errorf(errFailedCreateDriverFmt, err) }
	errFailedCreateTruck          = func(err error) error { return fmt.Errorf(errFailedCreateTruckFmt, err) }
	errFailedCreateWorker         = func(err error) error { return fmt.Errorf(errFailedCreateWorkerFmt, err) }
	errFailedDeleteDriver         = func(err error) error { return fmt.Errorf(errFailedDeleteDriverFmt, err) }
	errFailedDeleteTruck          = func(err error) error { return fmt.Errorf(errFailedDeleteTruckFmt, err) }
	errFailedDeleteWorker         = func(err error) error { return fmt.Errorf(errFailedDeleteWorkerFmt, err) }
	errFailedGetDriver            = func(err error) error { return fmt.Errorf(errFailedGetDriverFmt, err) }
	errFailedGetTruck             = func(err error) error { return fmt.Errorf(errFailedGetTruckFmt, err) }
	errFailedGetWorker            = func(err error) error { return fmt.Errorf(errFailedGetWorkerFmt, err) }
	errFailedListDrivers          = func(err error) error { return fmt.Errorf(errFailedListDriversFmt, err) }
	errFailedListTrucks           = func(err error) error { return fmt.Errorf(errFailedListTrucksFmt, err) }
	errFailedListWorkers          = func(err error) error { return fmt.Errorf(errFailedListWorkersFmt, err) }
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedScanDriver           = func(err error) error { return fmt.Errorf(errFailedScanDriverFmt, err) }
	errFailedScanTruck            = func(err error) error { return fmt.Errorf(errFailedScanTruckFmt, err) }
	errFailedScanWorker           = func(err error) error { return fmt.Errorf(errFailedScanWorkerFmt, err) }
	errFailedUpdateDriver         = func(err error) error { return fmt.Errorf(errFailedUpdateDriverFmt, err) }
	errFailedUpdateTruck          = func(err error) error { return fmt.Errorf(errFailedUpdateTruckFmt, err) }
	errFailedUpdateWorker         = func(err error) error { return fmt.Errorf(errFailedUpdateWorkerFmt, err) }
)
