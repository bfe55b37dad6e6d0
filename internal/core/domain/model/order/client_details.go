package order

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// ClientDetails is the contact and shipping information supplied by the
// customer at checkout. It is persisted verbatim as part of the order snapshot
// and echoed into notification messages; beyond the presence checks below the
// fields are free-form.
type ClientDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

// Validate checks that the fields required to confirm and route the order are
// present: a name and email for the customer message and an address, city, and
// country for vendor shipping instructions.
func (c ClientDetails) Validate() error {
	var err error
	if c.Name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("clientDetails.name"))
	}
	if c.Email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("clientDetails.email"))
	}
	if c.Address == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("clientDetails.address"))
	}
	if c.City == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("clientDetails.city"))
	}
	if c.Country == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("clientDetails.country"))
	}
	return err
}
