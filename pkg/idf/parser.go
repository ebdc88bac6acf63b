package idf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrSyntax is wrapped by all IDF syntax errors.
var ErrSyntax = errors.New("idf syntax error")

// ParseFile reads an IDF file from disk
func ParseFile(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// ParseString reads IDF text held in memory
func ParseString(text string) (*Model, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads IDF text. Objects end with ';', fields are separated by ','
// and '!' starts a comment that runs to the end of the line.
func Parse(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	model := newModel()

	var (
		fields  []string
		current strings.Builder
		start   int
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}

		for _, r := range line {
			switch r {
			case ',':
				if start == 0 {
					start = lineNo
				}
				fields = append(fields, strings.TrimSpace(current.String()))
				current.Reset()

			case ';':
				if start == 0 {
					start = lineNo
				}
				fields = append(fields, strings.TrimSpace(current.String()))
				current.Reset()

				if fields[0] == "" {
					if len(fields) > 1 {
						return nil, fmt.Errorf("%w: line %d: object without class name", ErrSyntax, start)
					}
				} else {
					model.add(Object{Class: fields[0], Fields: fields[1:], Line: start})
				}
				fields = nil
				start = 0

			default:
				if start == 0 && !unicode.IsSpace(r) {
					start = lineNo
				}
				current.WriteRune(r)
			}
		}
		current.WriteByte(' ')
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading IDF: %w", err)
	}

	if len(fields) > 0 || strings.TrimSpace(current.String()) != "" {
		return nil, fmt.Errorf("%w: line %d: object is missing its terminating ';'", ErrSyntax, start)
	}

	if err := model.bind(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return model, nil
}
