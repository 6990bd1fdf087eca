// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package stringutil

import "testing"

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		substr   string
		expected bool
	}{
		{"gitk", "git", true},
		{"vim", "git", false},
		{"", "", true},
		{"git", "", true},
		{"Git", "git", false},
	}

	for _, tt := range tests {
		result := Contains(tt.text, tt.substr)
		if result != tt.expected {
			t.Errorf("Contains(%q, %q) = %v, want %v", tt.text, tt.substr, result, tt.expected)
		}
	}
}

func TestNonEmptyLines(t *testing.T) {
	t.Parallel()

	got := NonEmptyLines("  git \n\n vim\r\n\t\nwget")
	want := []string{"git", "vim", "wget"}

	if len(got) != len(want) {
		t.Fatalf("NonEmptyLines() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NonEmptyLines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(NonEmptyLines("")) != 0 {
		t.Error("NonEmptyLines(\"\") should be empty")
	}
}

func TestFirstField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected string
	}{
		{"wget (1.24.5) < 1.25.0", "wget"},
		{"  node\t20.1 -> 22.0", "node"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := FirstField(tt.line); got != tt.expected {
			t.Errorf("FirstField(%q) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"wget", 10, "wget"},
		{"wget", 4, "wget"},
		{"postgresql@16", 8, "postgre…"},
		{"anything", 0, ""},
		{"日本語", 4, "日…"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.text, tt.width); got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expected)
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := PadRight("git", 6); got != "git   " {
		t.Errorf("PadRight() = %q", got)
	}

	if got := PadRight("postgresql", 5); got != "post…" {
		t.Errorf("PadRight() = %q", got)
	}
}

func TestPlainLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", "==> Pouring wget", "==> Pouring wget"},
		{"colored", "\x1b[34m==>\x1b[0m \x1b[1mPouring wget\x1b[0m", "==> Pouring wget"},
		{"progress redraw", "#  10.0%\r##### 50.0%\r########## 100.0%", "########## 100.0%"},
		{"trailing carriage return", "done\r", "done"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		if got := PlainLine(tt.line); got != tt.want {
			t.Errorf("%s: PlainLine(%q) = %q, want %q", tt.name, tt.line, got, tt.want)
		}
	}
}
