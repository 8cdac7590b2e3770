package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"contactbook/contact"
	"contactbook/httpserver"
	"contactbook/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-secret-key"

func testConfig() *config.Config {
	cfg := *config.Empty
	cfg.SecretKey = testSecretKey
	return &cfg
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) AddContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, c contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactService) ListContacts(ctx context.Context, req contact.PageRequest) (contact.Page, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(contact.Page), args.Error(1)
}

func (m *MockContactService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func MustCreateServer(t testing.TB, svc contact.Service) *httpserver.Server {
	t.Helper()

	server, err := httpserver.New(
		httpserver.WithConfig(testConfig()),
		httpserver.WithContactService(svc),
	)
	require.NoError(t, err)
	return server
}

type apiResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type contactsResult struct {
	Contacts []contact.Contact `json:"contacts"`
	Flashes  []struct {
		Category string `json:"category"`
		Text     string `json:"text"`
	} `json:"flashes"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Per     int   `json:"per"`
	Pages   int   `json:"pages"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
	Window  []int `json:"window"`
}

func decodeAPIResponse(t testing.TB, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "failed to decode response: %s", rec.Body.String())
	return resp
}

func decodeContactsResult(t testing.TB, rec *httptest.ResponseRecorder) contactsResult {
	t.Helper()
	resp := decodeAPIResponse(t, rec)
	var result contactsResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	return result
}

func newListRequest(query string, cookies ...*http.Cookie) *http.Request {
	target := "/"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func newFormRequest(form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// flashCookie returns the flash cookie set by a response, if any.
func flashCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" {
			return c
		}
	}
	return nil
}
