// Package pointfile reads the candidate point table and writes exports of
// the selected points.
//
// Both sides use a plain numeric table: one point per line, two columns
// separated by whitespace, no header.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lassopick/internal/domain"
)

// Columns names the order of the two values on each input line
type Columns string

const (
	ColumnsXY Columns = "xy"
	ColumnsYX Columns = "yx" // row/column image coordinates, plotted swapped
)

// Read parses a point table. Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader, columns Columns) ([]domain.Point, error) {
	if columns != ColumnsXY && columns != ColumnsYX {
		return nil, fmt.Errorf("unknown column order %q", columns)
	}

	var points []domain.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", lineNo, len(fields))
		}
		a, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		b, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if columns == ColumnsYX {
			a, b = b, a
		}
		points = append(points, domain.Point{X: a, Y: b})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}
	return points, nil
}

// ReadFile opens path and parses it with Read
func ReadFile(path string, columns Columns) ([]domain.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open points file: %w", err)
	}
	defer f.Close()

	points, err := Read(f, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}
