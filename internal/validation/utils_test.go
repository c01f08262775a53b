package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flight-itinerary/internal/errs"
)

type pairsRequest struct {
	Pairs [][]string `json:"pairs" validate:"required,dive,len=2,dive,required"`
	Name  string     `json:"name" validate:"omitempty,min=3"`
}

func (r *pairsRequest) Validate() error {
	return Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "pairs", Message: "must not repeat"}}
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	req := &pairsRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"pairs":[["A","B"]]}`), req))
	assert.Equal(t, [][]string{{"A", "B"}}, req.Pairs)
}

func TestBindAndValidateEmptyListPasses(t *testing.T) {
	req := &pairsRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"pairs":[]}`), req))
	assert.NotNil(t, req.Pairs)
	assert.Empty(t, req.Pairs)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantError string
	}{
		{
			name:      "missing list",
			body:      `{}`,
			wantField: "pairs",
			wantError: "is required",
		},
		{
			name:      "pair too long",
			body:      `{"pairs":[["A","B"],["A","B","C"]]}`,
			wantField: "pairs[1]",
			wantError: "must contain exactly 2 items",
		},
		{
			name:      "pair too short",
			body:      `{"pairs":[["A"]]}`,
			wantField: "pairs[0]",
			wantError: "must contain exactly 2 items",
		},
		{
			name:      "null code",
			body:      `{"pairs":[["A","B"],["A",null]]}`,
			wantField: "pairs[1][1]",
			wantError: "is required",
		},
		{
			name:      "empty code",
			body:      `{"pairs":[["","B"]]}`,
			wantField: "pairs[0][0]",
			wantError: "is required",
		},
		{
			name:      "short name",
			body:      `{"pairs":[["A","B"]],"name":"ab"}`,
			wantField: "name",
			wantError: "must be at least 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindAndValidate(newContext(tt.body), &pairsRequest{})
			httpErr := asHTTPError(t, err)

			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, "Validation failed", httpErr.Message)
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, tt.wantField, httpErr.Errors[0].Field)
			assert.Equal(t, tt.wantError, httpErr.Errors[0].Error)
		})
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	for _, body := range []string{`{"pairs":`, `{"pairs":[[1,2]]}`, `[]`} {
		err := BindAndValidate(newContext(body), &pairsRequest{})
		httpErr := asHTTPError(t, err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status, body)
		assert.Equal(t, "BAD_REQUEST", httpErr.Code, body)
		assert.NotEmpty(t, httpErr.Message, body)
		assert.Empty(t, httpErr.Errors, body)
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &customRequest{})
	httpErr := asHTTPError(t, err)

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "pairs", Error: "must not repeat"}, httpErr.Errors[0])
}
