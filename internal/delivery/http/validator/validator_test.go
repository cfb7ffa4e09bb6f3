package validator

import (
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required,max=10"`
	Slug     string `json:"slug" validate:"required,slug"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sample{Name: "go", Slug: "go-lang", Password: "12345678"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Name: "go", Slug: "Go Lang", Password: "short"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "slug must be lowercase")
	assert.Contains(t, appErr.Details(), "password must be at least 8 characters")
}
