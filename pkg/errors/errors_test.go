package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Media", nil).Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest("missing field", nil).Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("no token", nil).Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("not yours", nil).Status)
	assert.Equal(t, http.StatusInternalServerError, Internal("boom", nil).Status)
}

func TestIs(t *testing.T) {
	err := NotFound("Media", nil)

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "BAD_REQUEST"))
	assert.False(t, Is(fmt.Errorf("plain error"), "NOT_FOUND"))
}

func TestWrapping(t *testing.T) {
	cause := fmt.Errorf("firestore unavailable")
	err := Internal("Failed to get media", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR: Failed to get media", err.Error())
}
