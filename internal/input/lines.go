// Package input turns puzzle files into ordered text lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadLines splits r into lines. Line terminators, including a trailing
// carriage return, are stripped; empty lines are preserved.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ReadFile reads the lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
