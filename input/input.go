// Package input reads puzzle text into trimmed, non-blank lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines returns the lines of r with surrounding whitespace removed.
// Blank lines are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	return lines, nil
}

// LoadLines opens path and reads it with ReadLines.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return ReadLines(f)
}

// DayFile returns the conventional input path for a puzzle day.
func DayFile(dir string, day int) string {
	return fmt.Sprintf("%s/day_%02d.txt", strings.TrimRight(dir, "/"), day)
}
