package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"email ok", Email("ana@fleet.io"), false},
		{"email empty", Email(""), true},
		{"email bad", Email("ana@"), true},
		{"optional email empty", OptionalEmail(""), false},
		{"optional email bad", OptionalEmail("nope"), true},
		{"name ok", PersonName("first name", "Ana"), false},
		{"name empty", PersonName("first name", ""), true},
		{"name too long", PersonName("first name", strings.Repeat("a", 101)), true},
		{"name control char", PersonName("first name", "A\x01na"), true},
		{"document ok", DocumentNumber("12345678-K"), false},
		{"document spaces", DocumentNumber("1234 5678"), true},
		{"phone empty", Phone(""), false},
		{"phone ok", Phone("+51 987-654-321"), false},
		{"phone letters", Phone("call me"), true},
		{"plate ok", Plate("ABC-123"), false},
		{"plate plain", Plate("B4K921"), false},
		{"plate lower", Plate("abc-123"), true},
		{"plate empty", Plate(""), true},
		{"year ok", Year(2020, now), false},
		{"year next", Year(2027, now), false},
		{"year future", Year(2028, now), true},
		{"year old", Year(1900, now), true},
		{"capacity ok", CapacityKg(12000), false},
		{"capacity zero", CapacityKg(0), true},
		{"license ok", LicenseNumber("Q12345678"), false},
		{"license empty", LicenseNumber(""), true},
		{"category ok", LicenseCategory("A-IIB"), false},
		{"category lower", LicenseCategory("a1"), true},
		{"id ok", PositiveID("workerId", 1), false},
		{"id zero", PositiveID("workerId", 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				assert.Error(t, tt.err)
			} else {
				assert.NoError(t, tt.err)
			}
		})
	}
}
