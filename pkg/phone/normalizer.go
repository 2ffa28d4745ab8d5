package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalize formats a phone number to E.164. Lead data arrives in every
// imaginable format, so normalization is best-effort: numbers that
// cannot be parsed or are invalid come back verbatim with an error the
// caller may ignore.
func Normalize(raw, region string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if region == "" {
		region = "US"
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return raw, fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return raw, fmt.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// NormalizeAll normalizes a set of numbers in place, skipping failures.
func NormalizeAll(region string, numbers ...*string) {
	for _, n := range numbers {
		if n == nil || *n == "" {
			continue
		}
		if formatted, err := Normalize(*n, region); err == nil {
			*n = formatted
		}
	}
}
