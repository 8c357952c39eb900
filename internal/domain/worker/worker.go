package worker

import "time"

type Worker struct {
	ID             int64
	FirstName      string
	LastName       string
	DocumentNumber string
	Phone          string
	Email          string
	HiredAt        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateWorkerInput struct {
	FirstName      string
	LastName       string
	DocumentNumber string
	Phone          string
	Email          string
	HiredAt        *time.Time
}

type UpdateWorkerInput struct {
	ID             *int64
	FirstName      string
	LastName       string
	DocumentNumber string
	Phone          string
	Email          string
	HiredAt        *time.Time
}

var SortFields = map[string]string{
	"id":             "id",
	"firstName":      "first_name",
	"lastName":       "last_name",
	"documentNumber": "document_number",
	"hiredAt":        "hired_at",
	"createdAt":      "created_at",
}
