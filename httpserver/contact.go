package httpserver

import (
	"net/http"

	"contactbook/contact"
	"contactbook/errs"
	"contactbook/pkg/flash"

	"github.com/labstack/echo/v4"
)

const (
	msgAdded          = "Contact added successfully."
	msgUpdated        = "Contact updated successfully."
	msgDeleted        = "Contact deleted successfully."
	msgNotFound       = "Contact not found."
	msgMissingAdd     = "Missing name or phone number."
	msgMissingUpdate  = "Missing contact id, name or phone number."
	msgMissingDelete  = "Missing contact id."
	contactsTemplate  = "contacts.html"
	contactsIndexPath = "/"
)

func (s *Server) RegisterContactRoutes() {
	s.Router.GET(contactsIndexPath, s.handleListContacts)
	s.Router.POST(contactsIndexPath, s.handleContactAction)
}

// ContactsView is everything the contacts page shows. It is plain data so
// any renderer can consume it.
type ContactsView struct {
	Contacts []contact.Contact `json:"contacts"`
	Flashes  []flash.Message   `json:"flashes"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Per      int               `json:"per"`
	Pages    int               `json:"pages"`
	HasPrev  bool              `json:"has_prev"`
	HasNext  bool              `json:"has_next"`
	PrevPage int               `json:"prev_page"`
	NextPage int               `json:"next_page"`
	Window   []int             `json:"window"`
}

func NewContactsView(p contact.Page, flashes []flash.Message) ContactsView {
	if flashes == nil {
		flashes = []flash.Message{}
	}
	return ContactsView{
		Contacts: p.Items,
		Flashes:  flashes,
		Total:    p.Total,
		Page:     p.Page,
		Per:      p.Per,
		Pages:    p.Pages,
		HasPrev:  p.HasPrev,
		HasNext:  p.HasNext,
		PrevPage: p.PrevPage,
		NextPage: p.NextPage,
		Window:   p.Window,
	}
}

// handleListContacts renders one page of contacts. Malformed page or per
// values fall back to the defaults instead of failing the request.
func (s *Server) handleListContacts(c echo.Context) error {
	req := contact.NewPageRequest(
		positiveInt(c.QueryParam("page"), contact.DefaultPage),
		positiveInt(c.QueryParam("per"), contact.DefaultPerPage),
	)

	page, err := s.ContactService.ListContacts(c.Request().Context(), req)
	if err != nil {
		return err
	}

	view := NewContactsView(page, s.popFlashes(c))
	if wantsJSON(c) {
		return writeSuccess(c, http.StatusOK, view)
	}
	return c.Render(http.StatusOK, contactsTemplate, view)
}

// handleContactAction performs the mutation selected by the action field
// and always answers with a redirect to the list, so that reloading the
// result page cannot submit the form twice.
func (s *Server) handleContactAction(c echo.Context) error {
	var form ContactForm
	if err := c.Bind(&form); err != nil {
		form = ContactForm{}
	}

	var (
		msg flash.Message
		err error
	)
	switch form.Action {
	case actionDelete:
		msg, err = s.deleteContact(c, form.DeleteRequest())
	case actionUpdate:
		msg, err = s.updateContact(c, form.UpdateRequest())
	default:
		msg, err = s.addContact(c, form.AddRequest())
	}
	if err != nil {
		return err
	}

	if err := s.addFlash(c, msg); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, contactsIndexPath)
}

func (s *Server) addContact(c echo.Context, req AddContactRequest) (flash.Message, error) {
	if err := c.Validate(req); err != nil {
		return flash.Danger(msgMissingAdd), nil
	}

	added, err := s.ContactService.AddContact(c.Request().Context(), req.ToContact())
	if errs.ErrorCode(err) == errs.EINVALID {
		return flash.Danger(msgMissingAdd), nil
	} else if err != nil {
		return flash.Message{}, err
	}

	s.Logger.Infow("contact added", "contact_id", added.ID, "request_id", s.requestID(c))
	return flash.Success(msgAdded), nil
}

func (s *Server) updateContact(c echo.Context, req UpdateContactRequest) (flash.Message, error) {
	if err := c.Validate(req); err != nil {
		return flash.Danger(msgMissingUpdate), nil
	}

	err := s.ContactService.UpdateContact(c.Request().Context(), req.ToContact())
	switch errs.ErrorCode(err) {
	case "":
	case errs.ENOTFOUND:
		return flash.Danger(msgNotFound), nil
	case errs.EINVALID:
		return flash.Danger(msgMissingUpdate), nil
	default:
		return flash.Message{}, err
	}

	s.Logger.Infow("contact updated", "contact_id", req.ID, "request_id", s.requestID(c))
	return flash.Success(msgUpdated), nil
}

func (s *Server) deleteContact(c echo.Context, req DeleteContactRequest) (flash.Message, error) {
	if err := c.Validate(req); err != nil {
		return flash.Danger(msgMissingDelete), nil
	}

	err := s.ContactService.DeleteContact(c.Request().Context(), req.ID)
	switch errs.ErrorCode(err) {
	case "":
	case errs.ENOTFOUND:
		return flash.Danger(msgNotFound), nil
	case errs.EINVALID:
		return flash.Danger(msgMissingDelete), nil
	default:
		return flash.Message{}, err
	}

	s.Logger.Infow("contact deleted", "contact_id", req.ID, "request_id", s.requestID(c))
	return flash.Success(msgDeleted), nil
}
