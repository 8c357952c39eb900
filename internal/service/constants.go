package service

import "time"

const (
	cacheNamespaceDriver = "driver"
	defaultCacheTTL      = 5 * time.Minute

	msgIDMismatch            = "the id in the URL does not match the id of the record"
	msgWorkerAlreadyAssigned = "worker %d is already assigned to a driver"
	msgTruckAlreadyAssigned  = "truck %d is already assigned to a driver"
	msgWorkerStillAssigned   = "worker %d is still assigned to driver %d"
	msgTruckStillAssigned    = "truck %d is still assigned to driver %d"
)
