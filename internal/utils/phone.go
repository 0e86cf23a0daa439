package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhoneNumber normalizes a phone number to E.164 format
// Assumes Indonesian phone numbers if no country code is provided
func NormalizePhoneNumber(phone string) (string, error) {
	// Trim whitespace
	phone = strings.TrimSpace(phone)

	// Parse the phone number (default to Indonesia - ID)
	num, err := phonenumbers.Parse(phone, "ID")
	if err != nil {
		return "", err
	}

	// Validate the phone number
	if !phonenumbers.IsValidNumber(num) {
		return "", phonenumbers.ErrNotANumber
	}

	// Format to E.164 (e.g., +628123456789)
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
