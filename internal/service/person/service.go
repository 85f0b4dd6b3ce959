package person

import (
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"driver-registry/internal/domain"
	personrepo "driver-registry/internal/repository/person"
)

// ErrRejected is returned when a record refuses a registration, update or
// restored entry.
var ErrRejected = errors.New("rejected")

// View is a read-only snapshot of a Record.
type View struct {
	Person      domain.Person
	Demerits    []domain.Demerit
	TotalPoints int
	Suspended   bool
}

// Service keeps the registered records keyed by person id.
type Service struct {
	mu      sync.Mutex
	repo    personrepo.Repository
	records map[string]*Record
	now     func() time.Time
	logger  *log.Logger
}

// New creates an empty registry persisting through repo.
func New(repo personrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:    repo,
		records: make(map[string]*Record),
		now:     time.Now,
		logger:  logger,
	}
}

// Register validates and persists a new person.
func (s *Service) Register(p domain.Person) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[p.ID]; exists {
		return View{}, domain.ErrAlreadyExists
	}
	rec := newRecord(p, s.repo, s.now)
	if !rec.AddPerson() {
		s.logger.Printf("person service: register rejected id=%q", p.ID)
		return View{}, ErrRejected
	}
	s.records[p.ID] = rec
	return s.view(rec), nil
}

// Get returns the record registered under id.
func (s *Service) Get(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return View{}, domain.ErrNotFound
	}
	return s.view(rec), nil
}

// Update applies new personal details to the record registered under id.
// The record is re-keyed when its id changes.
func (s *Service) Update(id string, next domain.Person) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return View{}, domain.ErrNotFound
	}
	if next.ID != id {
		if _, taken := s.records[next.ID]; taken {
			return View{}, domain.ErrAlreadyExists
		}
	}
	if !rec.UpdatePersonalDetails(next.ID, next.FirstName, next.LastName, next.Address, next.Birthdate) {
		s.logger.Printf("person service: update rejected id=%q", id)
		return View{}, ErrRejected
	}
	if next.ID != id {
		delete(s.records, id)
		s.records[next.ID] = rec
	}
	return s.view(rec), nil
}

// AddDemeritPoints records an offense for the person registered under id and
// returns Success or Failed along with the resulting state.
func (s *Service) AddDemeritPoints(id, offenseDate string, points int) (string, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return Failed, View{}, domain.ErrNotFound
	}
	result := rec.AddDemeritPoints(offenseDate, points)
	if result != Success {
		s.logger.Printf("person service: demerit rejected id=%q date=%q points=%d", id, offenseDate, points)
	}
	return result, s.view(rec), nil
}

// Restore loads a previously persisted person without writing to the log.
// A later restore for the same id replaces the earlier record.
func (s *Service) Restore(p domain.Person) error {
	if !p.Validate() {
		return ErrRejected
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[p.ID] = newRecord(p, s.repo, s.now)
	return nil
}

// RestoreDemerit loads a previously persisted offense without writing to the
// log. Suspension is re-evaluated against the current clock.
func (s *Service) RestoreDemerit(id, offenseDate string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !rec.applyDemerit(offenseDate, points) {
		return ErrRejected
	}
	return nil
}

// Len returns the number of registered records.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Service) view(rec *Record) View {
	return View{
		Person:      rec.Person(),
		Demerits:    rec.Demerits(),
		TotalPoints: rec.TotalPoints(),
		Suspended:   rec.Suspended(),
	}
}
