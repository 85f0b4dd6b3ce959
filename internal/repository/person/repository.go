package person

import "driver-registry/internal/domain"

// Repository persists accepted registrations and demerit offenses.
type Repository interface {
	AppendPerson(p domain.Person) error
	AppendDemerit(personID, offenseDate string, points int) error
}
