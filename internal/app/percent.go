// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app

import "strings"

// ParsePercent extracts the number right before the first '%' in line,
// clamped to 100. It reports false when no digits precede the sign.
func ParsePercent(line string) (int, bool) {
	pos := strings.IndexByte(line, '%')
	if pos < 0 {
		return 0, false
	}

	start := pos
	for start > 0 && line[start-1] >= '0' && line[start-1] <= '9' {
		start--
	}

	if start == pos {
		return 0, false
	}

	value := 0
	for _, digit := range line[start:pos] {
		value = value*10 + int(digit-'0')
		if value > 100 {
			return 100, true
		}
	}

	return value, true
}
