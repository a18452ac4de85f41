package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	env := newTestEnv()

	rec := env.call(t, env.user.Create, http.MethodPost, "/users", `{"name":"John Doe","email":"johndoe@mail.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeObject(t, rec)
	require.Len(t, body, 3)
	require.Equal(t, float64(1), body["id"])
	require.Equal(t, "John Doe", body["name"])
	require.Equal(t, "johndoe@mail.com", body["email"])

	// A wallet is opened alongside the account.
	require.True(t, env.wallets.Exists(1))
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.call(t, env.user.Create, http.MethodPost, "/users", `{"name":"John Doe","email":"johndoe@mail.com"}`)

	rec := env.call(t, env.user.Create, http.MethodPost, "/users", `{"name":"Impostor","email":"johndoe@mail.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserCreateRejectsBadBody(t *testing.T) {
	env := newTestEnv()
	for _, body := range []string{`{"name":"","email":""}`, `{`} {
		rec := env.call(t, env.user.Create, http.MethodPost, "/users", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestUserGet(t *testing.T) {
	env := newTestEnv()
	env.call(t, env.user.Create, http.MethodPost, "/users", `{"name":"John Doe","email":"johndoe@mail.com"}`)

	rec := env.call(t, env.user.Get, http.MethodGet, "/users/1", "", "user_id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	require.Len(t, body, 3)
	require.Equal(t, "John Doe", body["name"])

	rec = env.call(t, env.user.Get, http.MethodGet, "/users/99", "", "user_id", "99")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDeleteCascades(t *testing.T) {
	env := newTestEnv()
	env.call(t, env.user.Create, http.MethodPost, "/users", `{"name":"John Doe","email":"johndoe@mail.com"}`)
	env.call(t, env.wallet.Update, http.MethodPut, "/wallets/1", `{"action":"credit","amount":1000}`, "user_id", "1")
	rec := env.call(t, env.booking.Create, http.MethodPost, "/bookings", `{"show_id":1,"user_id":1,"seats_booked":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.call(t, env.user.Delete, http.MethodDelete, "/users/1", "", "user_id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	// Seats were returned, and user, wallet and bookings are gone.
	s, err := env.shows.Get(1)
	require.NoError(t, err)
	require.Equal(t, 20, s.SeatsAvailable)
	require.False(t, env.users.Exists(1))
	require.False(t, env.wallets.Exists(1))
	require.Empty(t, env.bookings.ByUser(1))
}

func TestUserDeleteUnknown(t *testing.T) {
	env := newTestEnv()
	rec := env.call(t, env.user.Delete, http.MethodDelete, "/users/42", "", "user_id", "42")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDeleteAllResetsState(t *testing.T) {
	env := newTestEnv()
	env.call(t, env.user.Create, http.MethodPost, "/users", `{"name":"John Doe","email":"johndoe@mail.com"}`)
	env.call(t, env.wallet.Update, http.MethodPut, "/wallets/1", `{"action":"credit","amount":500}`, "user_id", "1")
	env.call(t, env.booking.Create, http.MethodPost, "/bookings", `{"show_id":1,"user_id":1,"seats_booked":2}`)

	rec := env.call(t, env.user.DeleteAll, http.MethodDelete, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	s, err := env.shows.Get(1)
	require.NoError(t, err)
	require.Equal(t, 20, s.SeatsAvailable)
	require.Empty(t, env.users.IDs())
	require.Empty(t, env.bookings.All())
}
