package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/show-booking/internal/model"
	"github.com/iliyamo/show-booking/internal/repository"
	"github.com/iliyamo/show-booking/internal/service"
)

// testEnv wires the full handler stack over fresh in-memory state.
type testEnv struct {
	e        *echo.Echo
	users    *repository.UserRepo
	wallets  *repository.WalletRepo
	shows    *repository.ShowRepo
	bookings *repository.BookingRepo
	user     *UserHandler
	wallet   *WalletHandler
	show     *ShowHandler
	booking  *BookingHandler
}

func newTestEnv() *testEnv {
	users := repository.NewUserRepo()
	wallets := repository.NewWalletRepo()
	shows := repository.NewShowRepo()
	bookings := repository.NewBookingRepo()
	svc := service.NewBookingService(users, wallets, shows, bookings, nil)

	shows.AddTheatre(model.Theatre{ID: 1, Name: "Grand Central Cinema", Location: "Downtown"})
	shows.AddShow(model.Show{ID: 1, TheatreID: 1, Title: "The Long Voyage", Price: 100, SeatsAvailable: 20})

	return &testEnv{
		e:        echo.New(),
		users:    users,
		wallets:  wallets,
		shows:    shows,
		bookings: bookings,
		user:     NewUserHandler(users, wallets, svc),
		wallet:   NewWalletHandler(users, wallets),
		show:     NewShowHandler(shows),
		booking:  NewBookingHandler(svc),
	}
}

// call invokes a handler with an optional JSON body and path
// parameters given as alternating name/value pairs.
func (env *testEnv) call(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	require.Zero(t, len(params)%2, "params must be name/value pairs")
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	return rec
}

// decodeObject parses a JSON object response.
func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// decodeList parses a JSON array response.
func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	return l
}

func TestHealth(t *testing.T) {
	env := newTestEnv()
	rec := env.call(t, Health, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
