package domain

// RequiredState is the only state accepted in the fourth address field.
const RequiredState = "Victoria"

// DateLayout is the DD-MM-YYYY layout used for birthdates and offense dates.
const DateLayout = "02-01-2006"

// Person holds the identity fields of one registered driver.
type Person struct {
	ID        string `json:"personId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Birthdate string `json:"birthdate"`
}

// Demerit is one offense entry in a driver's demerit history.
type Demerit struct {
	OffenseDate string
	Points      int
}
