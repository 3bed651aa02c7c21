package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"project-request-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	bad := apperror.BadRequest("Missing required fields")
	assert.Equal(t, apperror.KindBadRequest, bad.Kind)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "Missing required fields", bad.Error())

	cause := errors.New("smtp: 535 auth failed")
	internal := apperror.Internal("Failed to submit project request. Please try again.", cause)
	assert.Equal(t, apperror.KindInternal, internal.Kind)
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.ErrorIs(t, internal, cause)
	assert.NotContains(t, internal.Error(), "535")
}
