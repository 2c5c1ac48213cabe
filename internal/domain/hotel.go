package domain

import "time"

// Hotel is a bookable property listed by an operator.
type Hotel struct {
	ID          string
	Name        string
	Star        int
	Address     string
	City        string
	Country     string
	Description string
	Price       float64
	Facilities  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
