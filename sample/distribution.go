// SPDX-License-Identifier: MIT
// Package: smallworld/sample
//
// distribution.go — WeightedDistribution: replay an empirically recorded
// discrete distribution.
//
// Table format: one row per line, "<value> <occurrences>", whitespace
// separated. Blank lines are skipped. Occurrence counts must be positive.

package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyDistribution indicates a distribution table with no rows.
var ErrEmptyDistribution = errors.New("sample: empty distribution table")

// ErrBadDistribution indicates a malformed distribution table row.
var ErrBadDistribution = errors.New("sample: malformed distribution table")

// event is one row of the table: a value and how often it was observed.
type event struct {
	value       int
	occurrences int
}

// WeightedDistribution draws values proportional to recorded occurrence
// counts. It is immutable after construction.
type WeightedDistribution struct {
	events []event
	total  int
}

// NewWeightedDistribution builds a distribution from parallel value and
// occurrence slices. Mostly a convenience for tests and in-memory tables;
// file-backed callers use ParseWeightedDistribution.
func NewWeightedDistribution(values, occurrences []int) (*WeightedDistribution, error) {
	if len(values) != len(occurrences) {
		return nil, fmt.Errorf("NewWeightedDistribution: %d values vs %d counts: %w",
			len(values), len(occurrences), ErrBadDistribution)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("NewWeightedDistribution: %w", ErrEmptyDistribution)
	}

	d := &WeightedDistribution{events: make([]event, 0, len(values))}
	for i, v := range values {
		if occurrences[i] <= 0 {
			return nil, fmt.Errorf("NewWeightedDistribution: row %d: count %d not positive: %w",
				i, occurrences[i], ErrBadDistribution)
		}
		d.events = append(d.events, event{value: v, occurrences: occurrences[i]})
		d.total += occurrences[i]
	}

	return d, nil
}

// ParseWeightedDistribution reads a "<value> <occurrences>" table.
func ParseWeightedDistribution(r io.Reader) (*WeightedDistribution, error) {
	d := &WeightedDistribution{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("ParseWeightedDistribution: line %d: %d fields: %w",
				line, len(fields), ErrBadDistribution)
		}
		value, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ParseWeightedDistribution: line %d: value %q: %w",
				line, fields[0], ErrBadDistribution)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("ParseWeightedDistribution: line %d: count %q: %w",
				line, fields[1], ErrBadDistribution)
		}
		d.events = append(d.events, event{value: value, occurrences: count})
		d.total += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseWeightedDistribution: %w", err)
	}
	if len(d.events) == 0 {
		return nil, fmt.Errorf("ParseWeightedDistribution: %w", ErrEmptyDistribution)
	}

	return d, nil
}

// LoadWeightedDistribution reads a table from the named file.
func LoadWeightedDistribution(path string) (*WeightedDistribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadWeightedDistribution: %w", err)
	}
	defer f.Close()

	d, err := ParseWeightedDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("LoadWeightedDistribution: %s: %w", path, err)
	}

	return d, nil
}

// Total returns the sum of all occurrence counts.
func (d *WeightedDistribution) Total() int { return d.total }

// RandomValue draws a value with probability proportional to its recorded
// occurrences: a uniform draw in [0, total) walks the running occurrence
// sum and stops in the first row whose cumulative count exceeds it.
// Complexity: O(k) over k rows.
func (d *WeightedDistribution) RandomValue(rng *rand.Rand) int {
	draw := rng.Intn(d.total)
	cum := 0
	for _, ev := range d.events {
		cum += ev.occurrences
		if draw < cum {
			return ev.value
		}
	}
	// Unreachable: the cumulative sum ends at total and draw < total.
	return d.events[len(d.events)-1].value
}
