package utils

import (
	"fmt"
	"strings"
)

const (
	maxKeyLength = 100
	// MaxLinesOfBusiness caps how many lines of business one query may
	// request. It bounds the size of a single response map.
	MaxLinesOfBusiness = 10000
)

// ValidateCountry checks a requested country. Unknown countries are valid;
// only blank or oversized input is rejected.
func ValidateCountry(country string) error {
	return validateKey("country", country)
}

// ValidateLineOfBusiness checks one requested line of business.
func ValidateLineOfBusiness(lob string) error {
	return validateKey("line of business", lob)
}

func validateKey(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if len(value) > maxKeyLength {
		return fmt.Errorf("%s too long (max %d characters)", name, maxKeyLength)
	}
	return nil
}

// ValidateAverageRequest validates a complete average GWP query and returns
// the problems keyed by request field. An empty map means the query is valid.
func ValidateAverageRequest(country string, linesOfBusiness []string) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateCountry(country); err != nil {
		fieldErrors["country"] = append(fieldErrors["country"], err.Error())
	}

	switch {
	case len(linesOfBusiness) == 0:
		fieldErrors["lob"] = append(fieldErrors["lob"], "at least one line of business is required")
	case len(linesOfBusiness) > MaxLinesOfBusiness:
		fieldErrors["lob"] = append(fieldErrors["lob"],
			fmt.Sprintf("too many lines of business (max %d)", MaxLinesOfBusiness))
	default:
		for _, lob := range linesOfBusiness {
			if err := ValidateLineOfBusiness(lob); err != nil {
				fieldErrors["lob"] = append(fieldErrors["lob"], err.Error())
			}
		}
	}

	return fieldErrors
}
