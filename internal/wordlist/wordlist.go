// Package wordlist loads local word lists used when the remote word API is not configured.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyWordList is returned when no usable words remain after filtering.
var ErrEmptyWordList = errors.New("word list is empty")

// LoadWords reads one word per line from path and keeps those accepted by filter.
// Blank lines and lines starting with '#' are skipped. A nil filter keeps every word.
func LoadWords(path string, filter FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if filter != nil && !filter(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyWordList)
	}
	return words, nil
}
