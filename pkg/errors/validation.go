package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxRangeValue is the largest upper bound ValidateRange accepts. It keeps
// the interval width representable and sums of sampled values far from
// overflow.
const MaxRangeValue = math.MaxInt32

// ValidateRange validates an inclusive sampling interval.
// Both bounds must lie in [0, MaxRangeValue] and min must not exceed max.
func ValidateRange(name string, min, max int) error {
	if min < 0 || max < 0 {
		return New(ErrCodeInvalidRange, "%s range [%d, %d] must be non-negative", name, min, max)
	}
	if max > MaxRangeValue {
		return New(ErrCodeInvalidRange, "%s range [%d, %d]: max exceeds %d", name, min, max, MaxRangeValue)
	}
	if min > max {
		return New(ErrCodeInvalidRange, "%s range [%d, %d]: min exceeds max", name, min, max)
	}
	return nil
}

// ValidateCount validates an item count against an upper limit.
// A limit of zero or less disables the upper bound check.
func ValidateCount(count, limit int) error {
	if count < 0 {
		return New(ErrCodeInvalidInput, "item count cannot be negative (got %d)", count)
	}
	if limit > 0 && count > limit {
		return New(ErrCodeTooLarge, "too many items: %d (max %d)", count, limit)
	}
	return nil
}

// ValidateCapacity validates a knapsack capacity supplied by a user.
//
// Negative capacities are legal for the search (they simply admit no
// selection), so this check only guards surfaces that want a usable problem.
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return New(ErrCodeInvalidCapacity, "capacity cannot be negative (got %d)", capacity)
	}
	return nil
}

// ValidatePath validates a problem or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat checks that the extension of path is one of the allowed
// formats (without the leading dot) and returns the normalized format.
func ValidateFormat(path string, allowed ...string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", New(ErrCodeInvalidFormat, "unsupported file format %q (must be one of: %s)", ext, strings.Join(allowed, ", "))
}
