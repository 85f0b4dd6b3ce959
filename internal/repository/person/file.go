package person

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"driver-registry/internal/domain"
)

var _ Repository = (*File)(nil)

// File is a Repository backed by two local append-only text files.
type File struct {
	personsPath  string
	demeritsPath string
	logger       *log.Logger
}

// NewFile returns a Repository that appends comma-separated lines to the
// person and demerit logs. Fields are written as-is; callers must keep
// commas out of them.
func NewFile(personsPath, demeritsPath string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &File{personsPath: personsPath, demeritsPath: demeritsPath, logger: logger}
}

func (r *File) AppendPerson(p domain.Person) error {
	return r.appendLine(r.personsPath, p.ID, p.FirstName, p.LastName, p.Address, p.Birthdate)
}

func (r *File) AppendDemerit(personID, offenseDate string, points int) error {
	return r.appendLine(r.demeritsPath, personID, offenseDate, strconv.Itoa(points))
}

// Ready reports whether both logs can be opened for appending. It creates
// missing logs, as the first append would.
func (r *File) Ready() error {
	for _, path := range []string{r.personsPath, r.demeritsPath} {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
	}
	return nil
}

// appendLine writes the whole line with a single write so a failure never
// leaves half a record behind.
func (r *File) appendLine(path string, fields ...string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Printf("person repo: open %s err=%v", path, err)
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			r.logger.Printf("person repo: close %s err=%v", path, cerr)
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	line := strings.Join(fields, ",") + "\n"
	if _, err := f.WriteString(line); err != nil {
		r.logger.Printf("person repo: write %s err=%v", path, err)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
