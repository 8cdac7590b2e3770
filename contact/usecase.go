package contact

import "context"

type Service interface {
	AddContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, c Contact) error
	DeleteContact(ctx context.Context, id int64) error
	ListContacts(ctx context.Context, req PageRequest) (Page, error)
	Ping(ctx context.Context) error
}

type Repository interface {
	CreateContact(ctx context.Context, c Contact) (int64, error)
	UpdateContact(ctx context.Context, c Contact) (bool, error)
	DeleteContact(ctx context.Context, id int64) (bool, error)
	CountContacts(ctx context.Context) (int64, error)
	ListContacts(ctx context.Context, limit, offset int) ([]Contact, error)
	Ping(ctx context.Context) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddContact(ctx context.Context, c Contact) (Contact, error) {
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}

	id, err := uc.r.CreateContact(ctx, c)
	if err != nil {
		return Contact{}, err
	}

	c.ID = id
	return c, nil
}

func (uc *Usecase) UpdateContact(ctx context.Context, c Contact) error {
	if c.ID < 1 {
		return ErrInvalidID
	}
	if err := c.Validate(); err != nil {
		return err
	}

	ok, err := uc.r.UpdateContact(ctx, c)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContactNotFound
	}
	return nil
}

func (uc *Usecase) DeleteContact(ctx context.Context, id int64) error {
	if id < 1 {
		return ErrInvalidID
	}

	ok, err := uc.r.DeleteContact(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrContactNotFound
	}
	return nil
}

// ListContacts fetches the requested page along with the total row count.
// The two reads are not isolated from concurrent writers.
func (uc *Usecase) ListContacts(ctx context.Context, req PageRequest) (Page, error) {
	req = NewPageRequest(req.Page, req.Per)

	total, err := uc.r.CountContacts(ctx)
	if err != nil {
		return Page{}, err
	}

	if req.PastEnd(total) {
		return NewPage(req, total, nil), nil
	}

	items, err := uc.r.ListContacts(ctx, req.Limit(), req.Offset())
	if err != nil {
		return Page{}, err
	}

	return NewPage(req, total, items), nil
}

func (uc *Usecase) Ping(ctx context.Context) error {
	return uc.r.Ping(ctx)
}
