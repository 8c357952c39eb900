package handler

const (
	jsonKeyMessage = "message"
	jsonKeyStatus  = "status"

	paramID       = "id"
	queryPage     = "page"
	querySize     = "size"
	querySortBy   = "sortBy"
	querySortDir  = "sortDir"
	dateLayout    = "2006-01-02"
	statusOK      = "ok"
	statusFailing = "unavailable"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidID               = "id must be a positive integer"
	msgInvalidPageParamFmt     = "%s must be a non-negative integer"
	msgPageOutOfRange          = "page is out of range"
	msgInvalidDateFmt          = "dates must use the YYYY-MM-DD format"
)
