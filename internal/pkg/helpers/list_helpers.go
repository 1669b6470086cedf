package helpers

import (
	"strconv"
	"strings"
)

// ParseIDList parses a comma-separated list of integer ids. Empty and
// non-numeric tokens are dropped silently; the share-state surface depends
// on that leniency.
func ParseIDList(raw string) []int64 {
	if raw == "" {
		return nil
	}

	var ids []int64
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// FormatIDList joins ids into a comma-separated string.
func FormatIDList(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// ParseIntList parses a comma-separated list of ints, dropping malformed tokens.
func ParseIntList(raw string) []int {
	var values []int
	for _, id := range ParseIDList(raw) {
		values = append(values, int(id))
	}
	return values
}

// SplitList splits a comma-separated list of strings, trimming whitespace
// and dropping empty tokens.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var parts []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts = append(parts, token)
	}
	return parts
}
