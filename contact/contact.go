package contact

import (
	"contactbook/errs"
)

var (
	ErrInvalidName     = errs.Errorf(errs.EINVALID, "invalid name")
	ErrInvalidPhone    = errs.Errorf(errs.EINVALID, "invalid phone")
	ErrInvalidID       = errs.Errorf(errs.EINVALID, "invalid contact id")
	ErrContactNotFound = errs.Errorf(errs.ENOTFOUND, "contact not found")
)

// Contact is one address book entry. ID is assigned by the store and never
// changes afterwards.
type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (c Contact) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}

	if c.Phone == "" {
		return ErrInvalidPhone
	}

	return nil
}
