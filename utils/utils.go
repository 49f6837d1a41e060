package utils

import (
	"strconv"
	"strings"
)

func StringToUInt64(in string) (uint64, bool) {
	i, err := strconv.ParseUint(strings.TrimSpace(in), 10, 64)
	return i, err == nil && i > 0
}

// StringsToUInt64s converts submitted IDs, blank and malformed values are skipped
func StringsToUInt64s(in []string) []uint64 {
	result := []uint64{}
	for _, s := range in {
		if i, ok := StringToUInt64(s); ok {
			result = append(result, i)
		}
	}
	return result
}
