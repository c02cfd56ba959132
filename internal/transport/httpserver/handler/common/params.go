package common

import (
	"errors"
	"strconv"
	"strings"
)

// ParseOptionalIntParam returns nil for an empty value.
func ParseOptionalIntParam(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func ParseIntParam(value string, fallback int) (int, error) {
	parsed, err := ParseOptionalIntParam(value)
	if err != nil {
		return 0, err
	}
	if parsed == nil {
		return fallback, nil
	}
	if *parsed < 0 {
		return 0, errors.New("must be non-negative")
	}
	return *parsed, nil
}
