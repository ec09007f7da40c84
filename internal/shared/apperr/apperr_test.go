package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidErr("bad", nil), http.StatusBadRequest},
		{UnauthorizedErr("login"), http.StatusUnauthorized},
		{ForbiddenErr("no"), http.StatusForbidden},
		{NotFoundErr("gone"), http.StatusNotFound},
		{UnavailableErr("down", errors.New("dial")), http.StatusBadGateway},
		{Wrap(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestWrapKeepsAppError(t *testing.T) {
	inner := NotFoundErr("Order not found.")
	wrapped := Wrap(fmt.Errorf("lookup: %w", inner))

	assert.Same(t, inner, wrapped)
	assert.Nil(t, Wrap(nil))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Order not found.", PublicMessage(NotFoundErr("Order not found.")))
	assert.Equal(t, defaultPublicMsg, PublicMessage(errors.New("db password leaked")))
	assert.Equal(t, defaultPublicMsg, PublicMessage(Wrap(errors.New("x"))))
}
