package httpserver_test

import (
	"testing"

	"contactbook/errs"
	"contactbook/httpserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := httpserver.NewValidator()

	t.Run("should pass a valid request", func(t *testing.T) {
		assert.NoError(t, v.Validate(httpserver.UpdateContactRequest{ID: 3, Name: "Alice", Phone: "555-0101"}))
	})

	t.Run("should report failing fields by form name", func(t *testing.T) {
		err := v.Validate(httpserver.UpdateContactRequest{Name: "Alice"})

		require.Error(t, err)
		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		assert.Equal(t, "validation error: contact_id failed on required; phone failed on required", errs.ErrorMessage(err))
	})

	t.Run("should keep percent signs in field names", func(t *testing.T) {
		type discountForm struct {
			Rate string `form:"rate%" validate:"required"`
		}

		err := v.Validate(discountForm{})

		assert.Equal(t, "validation error: rate% failed on required", errs.ErrorMessage(err))
	})
}
