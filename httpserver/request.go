package httpserver

import (
	"strconv"

	"contactbook/contact"
)

const (
	actionAdd    = "add"
	actionUpdate = "update"
	actionDelete = "delete"
)

// ContactForm is the body of every POST to the contacts page. Which fields
// are required depends on Action.
type ContactForm struct {
	Action    string `form:"action" json:"action"`
	ContactID string `form:"contact_id" json:"contact_id"`
	Name      string `form:"name" json:"name"`
	Phone     string `form:"phone" json:"phone"`
}

// id returns the submitted contact id, or 0 when it is missing or not a
// number.
func (f ContactForm) id() int64 {
	id, err := strconv.ParseInt(f.ContactID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

type AddContactRequest struct {
	Name  string `form:"name" validate:"required"`
	Phone string `form:"phone" validate:"required"`
}

func (r AddContactRequest) ToContact() contact.Contact {
	return contact.Contact{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

type UpdateContactRequest struct {
	ID    int64  `form:"contact_id" validate:"required,gt=0"`
	Name  string `form:"name" validate:"required"`
	Phone string `form:"phone" validate:"required"`
}

func (r UpdateContactRequest) ToContact() contact.Contact {
	return contact.Contact{
		ID:    r.ID,
		Name:  r.Name,
		Phone: r.Phone,
	}
}

type DeleteContactRequest struct {
	ID int64 `form:"contact_id" validate:"required,gt=0"`
}

func (f ContactForm) AddRequest() AddContactRequest {
	return AddContactRequest{Name: f.Name, Phone: f.Phone}
}

func (f ContactForm) UpdateRequest() UpdateContactRequest {
	return UpdateContactRequest{ID: f.id(), Name: f.Name, Phone: f.Phone}
}

func (f ContactForm) DeleteRequest() DeleteContactRequest {
	return DeleteContactRequest{ID: f.id()}
}

// positiveInt parses a query value, falling back to def for anything that is
// not a positive integer.
func positiveInt(value string, def int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return def
	}
	return n
}
