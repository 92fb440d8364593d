// Package input reads transactions from line-oriented text.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptySeparator is returned when no item separator is configured.
var ErrEmptySeparator = errors.New("input: separator must not be empty")

// maxLineSize bounds a single transaction line.
const maxLineSize = 1 << 20

// Read parses one transaction per line. Items are split on sep and trimmed;
// empty items are dropped. Blank lines and lines starting with '#' are
// skipped.
func Read(r io.Reader, sep string) ([][]string, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var transactions [][]string
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if tx := splitItems(text, sep); len(tx) > 0 {
			transactions = append(transactions, tx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading transactions: %w", err)
	}
	return transactions, nil
}

// ReadFile reads transactions from the file at path.
func ReadFile(path, sep string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Read(f, sep)
}

func splitItems(line, sep string) []string {
	parts := strings.Split(line, sep)
	items := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
