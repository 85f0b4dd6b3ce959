package importer

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"driver-registry/internal/domain"
)

// Restorer accepts previously persisted registrations and offenses.
type Restorer interface {
	Restore(p domain.Person) error
	RestoreDemerit(personID, offenseDate string, points int) error
}

// Result counts the rows a replay applied and skipped.
type Result struct {
	Applied int
	Skipped int
}

// LogImporter replays the person and demerit logs into a Restorer.
type LogImporter struct {
	target Restorer
	logger *log.Logger
}

func NewLogImporter(target Restorer, logger *log.Logger) *LogImporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LogImporter{target: target, logger: logger}
}

// ReplayPersons reads personId,firstName,lastName,address,birthdate rows.
// Rows with the wrong field count or rejected by the target are skipped.
func (i *LogImporter) ReplayPersons(r io.Reader) (Result, error) {
	return i.replay(r, "person", func(record []string) error {
		if len(record) != 5 {
			return fmt.Errorf("expected 5 fields, got %d", len(record))
		}
		return i.target.Restore(domain.Person{
			ID:        record[0],
			FirstName: record[1],
			LastName:  record[2],
			Address:   record[3],
			Birthdate: record[4],
		})
	})
}

// ReplayDemerits reads personId,offenseDate,points rows. Rows for unknown
// person ids are skipped.
func (i *LogImporter) ReplayDemerits(r io.Reader) (Result, error) {
	return i.replay(r, "demerit", func(record []string) error {
		if len(record) != 3 {
			return fmt.Errorf("expected 3 fields, got %d", len(record))
		}
		points, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return fmt.Errorf("points %q: %w", record[2], err)
		}
		return i.target.RestoreDemerit(record[0], record[1], points)
	})
}

// replay splits each line on commas, the inverse of the log writer's join.
// Fields are never quoted, so a quote anywhere is part of the value.
func (i *LogImporter) replay(r io.Reader, kind string, apply func([]string) error) (Result, error) {
	scanner := bufio.NewScanner(r)

	var res Result
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		if err := apply(strings.Split(text, ",")); err != nil {
			i.logger.Printf("importer: skip %s row %d: %v", kind, line, err)
			res.Skipped++
			continue
		}
		res.Applied++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read %s row %d: %w", kind, line+1, err)
	}
	return res, nil
}
