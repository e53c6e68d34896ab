package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBlockNumber parses a block number or chain id given in decimal or as 0x-prefixed hex,
// the two forms nodes and users mix freely.
func ParseBlockNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)

	digits, base := s, 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		digits, base = s[2:], 16
	}

	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}

	return n, nil
}

const bytesInMB = 1024 * 1024

// BytesToMB rounds down.
func BytesToMB(bytes uint64) uint64 {
	return bytes / bytesInMB
}

// ToLowerWithTrim normalizes names used as lookup keys.
func ToLowerWithTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
