package validator

import (
	"fmt"
	"regexp"
	"time"
)

const (
	minEmailLength    = 3
	maxEmailLength    = 255
	maxNameLen        = 100
	maxDocumentLen    = 32
	maxPhoneLen       = 32
	maxLicenseLen     = 32
	maxBrandLen       = 64
	minTruckYear      = 1950
	maxCapacityKg     = 100000
	asciiControlStart = 32
	asciiDelete       = 127

	errEmailEmptyFmt          = "email cannot be empty"
	errEmailLengthFmt         = "email must be between %d and %d characters"
	errEmailInvalidFmt        = "invalid email format"
	errFieldEmptyFmt          = "%s cannot be empty"
	errFieldMaxLengthFmt      = "%s must not exceed %d characters"
	errFieldControlCharsFmt   = "%s cannot contain control characters"
	errFieldInvalidFmt        = "invalid %s format"
	errFieldPositiveFmt       = "%s must be a positive number"
	errYearRangeFmt           = "year must be between %d and %d"
	errCapacityRangeFmt       = "capacity must be between 1 and %d kg"
	errPhoneInvalidFmt        = "invalid phone format"
	errLicenseCategoryInvalid = "license category must be one letter optionally followed by letters, digits or '-'"
)

var (
	emailRegex           = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	plateRegex           = regexp.MustCompile(`^[A-Z0-9]{1,4}(-?[A-Z0-9]{1,5}){0,2}$`)
	documentRegex        = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	phoneRegex           = regexp.MustCompile(`^\+?[0-9 ()-]{6,}$`)
	licenseCategoryRegex = regexp.MustCompile(`^[A-Z][A-Z0-9-]{0,7}$`)
)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

// OptionalEmail accepts the empty string.
func OptionalEmail(email string) error {
	if email == "" {
		return nil
	}
	return Email(email)
}

// Text checks a required, printable, length-bounded field.
func Text(field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf(errFieldEmptyFmt, field)
	}

	if len(value) > maxLen {
		return fmt.Errorf(errFieldMaxLengthFmt, field, maxLen)
	}

	for _, char := range value {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errFieldControlCharsFmt, field)
		}
	}

	return nil
}

func PersonName(field, name string) error {
	return Text(field, name, maxNameLen)
}

func DocumentNumber(doc string) error {
	if err := Text("document number", doc, maxDocumentLen); err != nil {
		return err
	}
	if !documentRegex.MatchString(doc) {
		return fmt.Errorf(errFieldInvalidFmt, "document number")
	}
	return nil
}

func Phone(phone string) error {
	if phone == "" {
		return nil
	}
	if len(phone) > maxPhoneLen {
		return fmt.Errorf(errFieldMaxLengthFmt, "phone", maxPhoneLen)
	}
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf(errPhoneInvalidFmt)
	}
	return nil
}

// Plate accepts upper-case alphanumeric plates with up to two '-' separators.
func Plate(plate string) error {
	if err := Text("plate", plate, 16); err != nil {
		return err
	}
	if !plateRegex.MatchString(plate) {
		return fmt.Errorf(errFieldInvalidFmt, "plate")
	}
	return nil
}

func Brand(field, value string) error {
	return Text(field, value, maxBrandLen)
}

func Year(year int, now time.Time) error {
	maxYear := now.Year() + 1
	if year < minTruckYear || year > maxYear {
		return fmt.Errorf(errYearRangeFmt, minTruckYear, maxYear)
	}
	return nil
}

func CapacityKg(capacity int) error {
	if capacity <= 0 || capacity > maxCapacityKg {
		return fmt.Errorf(errCapacityRangeFmt, maxCapacityKg)
	}
	return nil
}

func LicenseNumber(number string) error {
	if err := Text("license number", number, maxLicenseLen); err != nil {
		return err
	}
	if !documentRegex.MatchString(number) {
		return fmt.Errorf(errFieldInvalidFmt, "license number")
	}
	return nil
}

func LicenseCategory(category string) error {
	if !licenseCategoryRegex.MatchString(category) {
		return fmt.Errorf(errLicenseCategoryInvalid)
	}
	return nil
}

func PositiveID(field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf(errFieldPositiveFmt, field)
	}
	return nil
}
