package main

import (
	"strings"
	"time"
)

const memoHeading = "### memo"

// splitLines splits b into lines, each keeping its trailing newline.
// The last line has no newline if b does not end with one.
func splitLines(b []byte) []string {
	lines := []string{}
	s := string(b)
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

func joinLines(lines []string) []byte {
	return []byte(strings.Join(lines, ""))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, "#")
}

func withNewline(line, eol string) string {
	if strings.HasSuffix(line, "\n") {
		return line
	}
	return line + eol
}

// lineEnding returns the line ending inserted lines should use: that of the memo heading
// (h, if >= 0), else of the first terminated line, else "\n".
func lineEnding(lines []string, h int) string {
	if h >= 0 && strings.HasSuffix(lines[h], "\n") {
		lines = lines[h : h+1]
	}
	for _, line := range lines {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(line, "\n") {
			return "\n"
		}
	}
	return "\n"
}

// findMemoHeading returns the index of the first `### memo` line, or -1.
func findMemoHeading(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == memoHeading {
			return i
		}
	}
	return -1
}

// sectionEnd returns the index of the first heading after h, or len(lines).
func sectionEnd(lines []string, h int) int {
	b := h + 1
	for b < len(lines) && !isHeading(lines[b]) {
		b++
	}
	return b
}

func entryLine(text string, ts time.Time, eol string) string {
	return ts.Format("15:04") + " " + text + eol
}

// appendEntry returns lines with a new timestamped entry at the end of the memo section,
// creating the section at the end of the file if there isn't one yet.
// Inserted lines follow the file's existing line ending. The input slice is not modified.
func appendEntry(lines []string, text string, ts time.Time) []string {
	h := findMemoHeading(lines)
	eol := lineEnding(lines, h)
	entry := entryLine(text, ts, eol)

	if h < 0 {
		out := make([]string, 0, len(lines)+3)
		out = append(out, lines...)
		if n := len(out); n > 0 {
			out[n-1] = withNewline(out[n-1], eol)
			if !isBlank(out[n-1]) {
				out = append(out, eol)
			}
		}
		return append(out, memoHeading+eol, entry)
	}

	b := sectionEnd(lines, h)
	last := b - 1
	for last > h && isBlank(lines[last]) {
		last--
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:last+1]...)
	out[last] = withNewline(out[last], eol)
	out = append(out, entry)
	// blank padding between the section and the next heading collapses to one line
	if b < len(lines) {
		out = append(out, eol)
		out = append(out, lines[b:]...)
	}
	return out
}

// listEntries returns the non-blank lines of the memo section, trimmed, oldest first.
// ok is false if the file has no memo section.
func listEntries(lines []string) (entries []string, ok bool) {
	h := findMemoHeading(lines)
	if h < 0 {
		return nil, false
	}
	entries = []string{}
	for _, line := range lines[h+1 : sectionEnd(lines, h)] {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries, true
}
