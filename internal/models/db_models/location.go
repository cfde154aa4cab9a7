package db_models

import (
	"fmt"
	"strings"
)

// Location is owned by exactly one Holiday or Activity; rows are never shared.
type Location struct {
	BaseModel
	Street     *string
	Number     *string
	Locality   string `gorm:"not null"`
	PostalCode string `gorm:"not null"`
	Country    string `gorm:"not null;index"`
}

// FormattedAddress renders "{Street} {Number}, {PostalCode} {Locality}, {Country}",
// leaving out the street part when it is empty.
func (l Location) FormattedAddress() string {
	var street, number string
	if l.Street != nil {
		street = *l.Street
	}
	if l.Number != nil {
		number = *l.Number
	}

	addr := fmt.Sprintf("%s %s, %s", l.PostalCode, l.Locality, l.Country)
	if head := strings.TrimSpace(street + " " + number); head != "" {
		addr = head + ", " + addr
	}
	return addr
}
