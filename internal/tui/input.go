package tui

import (
	"errors"
	"strconv"
	"strings"
)

// Input errors shown to the user with a retry prompt.
var (
	ErrInvalidInput = errors.New("Entrada inválida. Intente de nuevo.")
	ErrOutOfRange   = errors.New("Número fuera de rango.")
)

// parseSelection converts a 1-based menu number into a 0-based index of a
// list with n entries.
func parseSelection(input string, n int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidInput
	}
	if num < 1 || num > n {
		return 0, ErrOutOfRange
	}
	return num - 1, nil
}

// parseObjectID converts user input into a positive object ID.
func parseObjectID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || id < 1 {
		return 0, ErrInvalidInput
	}
	return id, nil
}

// isNumeric reports whether input is made of digits only.
func isNumeric(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
