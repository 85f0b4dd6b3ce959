package person

import (
	"sort"
	"time"

	"driver-registry/internal/domain"
	personrepo "driver-registry/internal/repository/person"
)

// Results returned by AddDemeritPoints.
const (
	Success = "Success"
	Failed  = "Failed"
)

type demeritEntry struct {
	date   time.Time
	points int
}

// Record is one driver's identity, demerit history and suspension state.
// It validates and mutates itself; nothing is checked at construction.
type Record struct {
	person    domain.Person
	demerits  map[string]demeritEntry
	suspended bool
	repo      personrepo.Repository
	now       func() time.Time
}

// NewRecord creates a Record that persists through repo.
func NewRecord(p domain.Person, repo personrepo.Repository) *Record {
	return newRecord(p, repo, time.Now)
}

func newRecord(p domain.Person, repo personrepo.Repository, now func() time.Time) *Record {
	return &Record{
		person:   p,
		demerits: make(map[string]demeritEntry),
		repo:     repo,
		now:      now,
	}
}

// AddPerson validates the current fields and appends them to the person log.
func (r *Record) AddPerson() bool {
	if !r.person.Validate() {
		return false
	}
	return r.repo.AppendPerson(r.person) == nil
}

// UpdatePersonalDetails replaces all five identity fields when the change is
// allowed for the current record and the new values are well formed.
func (r *Record) UpdatePersonalDetails(newID, newFirstName, newLastName, newAddress, newBirthdate string) bool {
	cur := r.person
	isUnder18 := r.ageAt(r.now()) < 18
	changingBirthday := newBirthdate != cur.Birthdate
	idStartsWithEven := domain.IDStartsWithEven(cur.ID)

	if changingBirthday && (newID != cur.ID || newFirstName != cur.FirstName ||
		newLastName != cur.LastName || newAddress != cur.Address) {
		return false
	}
	if isUnder18 && newAddress != cur.Address {
		return false
	}
	if idStartsWithEven && newID != cur.ID {
		return false
	}

	next := domain.Person{
		ID:        newID,
		FirstName: newFirstName,
		LastName:  newLastName,
		Address:   newAddress,
		Birthdate: newBirthdate,
	}
	if !next.Validate() {
		return false
	}
	r.person = next
	return true
}

// AddDemeritPoints records points for offenseDate, re-evaluates suspension
// and appends the offense to the demerit log. A failed append still leaves
// the entry and any suspension in place.
func (r *Record) AddDemeritPoints(offenseDate string, points int) string {
	if !r.applyDemerit(offenseDate, points) {
		return Failed
	}
	if err := r.repo.AppendDemerit(r.person.ID, offenseDate, points); err != nil {
		return Failed
	}
	return Success
}

func (r *Record) applyDemerit(offenseDate string, points int) bool {
	if !domain.ValidDate(offenseDate) || points < domain.MinDemeritPoints || points > domain.MaxDemeritPoints {
		return false
	}
	now := r.now()
	date, err := domain.ParseDate(offenseDate, now.Location())
	if err != nil {
		return false
	}

	// Same-date offenses overwrite, including dates spelled differently
	// that roll over to the same day.
	r.demerits[date.Format(domain.DateLayout)] = demeritEntry{date: date, points: points}

	if domain.ExceedsThreshold(r.ageAt(now), r.totalAt(now)) {
		r.suspended = true
	}
	return true
}

// TotalPoints sums entries within the demerit window as of now.
func (r *Record) TotalPoints() int {
	return r.totalAt(r.now())
}

func (r *Record) totalAt(now time.Time) int {
	total := 0
	for _, e := range r.demerits {
		if domain.WithinWindow(e.date, now) {
			total += e.points
		}
	}
	return total
}

// ageAt treats an unparseable birthdate as age 0.
func (r *Record) ageAt(now time.Time) int {
	age, err := domain.Age(r.person.Birthdate, now)
	if err != nil {
		return 0
	}
	return age
}

// Person returns the current identity fields.
func (r *Record) Person() domain.Person {
	return r.person
}

// Suspended reports whether the driver has ever crossed the threshold.
func (r *Record) Suspended() bool {
	return r.suspended
}

// Demerits returns the offense history ordered by offense date.
func (r *Record) Demerits() []domain.Demerit {
	keys := make([]string, 0, len(r.demerits))
	for k := range r.demerits {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return r.demerits[keys[i]].date.Before(r.demerits[keys[j]].date)
	})
	out := make([]domain.Demerit, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.Demerit{OffenseDate: k, Points: r.demerits[k].points})
	}
	return out
}
