package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theatre-reservation/internal/catalog"
	"github.com/iliyamo/theatre-reservation/internal/engine"
	"github.com/iliyamo/theatre-reservation/internal/model"
)

func newTestHandler(t *testing.T) *BookingHandler {
	t.Helper()
	cat := catalog.Default()
	return NewBookingHandler(cat, engine.New(cat, engine.NewOpenSeatMap()))
}

func doJSON(h echo.HandlerFunc, method, path, body string, params map[string]string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return rec, h(c)
}

func createBooking(t *testing.T, h *BookingHandler, showID, body string) model.Booking {
	t.Helper()
	rec, err := doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings", body, map[string]string{"id": showID})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var b model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return b
}

func TestCreateBooking_Success(t *testing.T) {
	h := newTestHandler(t)

	b := createBooking(t, h, "1", `{"customer_name":"Alice","email":"alice@example.com","seats":["A1"]}`)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, uint64(1), b.ShowID)
	assert.Equal(t, 12.5, b.TotalAmount)
	assert.Equal(t, "alice@example.com", b.Email)
}

func TestCreateBooking_Conflict(t *testing.T) {
	h := newTestHandler(t)
	createBooking(t, h, "1", `{"customer_name":"Alice","seats":["A1"]}`)

	rec, err := doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings",
		`{"customer_name":"Bob","seats":["A1"]}`, map[string]string{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A1", body["seat"])
}

func TestCreateBooking_ShowNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec, err := doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings",
		`{"customer_name":"Alice","seats":["A1"]}`, map[string]string{"id": "999"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	h := newTestHandler(t)

	rec, err := doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings",
		`{"customer_name":"","seats":["A1"]}`, map[string]string{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, err = doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings",
		`{"customer_name":"Alice","seats":[]}`, map[string]string{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, err = doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings",
		`{"customer_name":"Alice","seats":["A1"]}`, map[string]string{"id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_InvalidSeatOnGrid(t *testing.T) {
	cat := catalog.Default()
	h := NewBookingHandler(cat, engine.New(cat, engine.NewGridSeatMap(cat.List())))

	rec, err := doJSON(h.CreateBooking, http.MethodPost, "/v1/shows/:id/bookings",
		`{"customer_name":"Alice","seats":["Z9"]}`, map[string]string{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Z9", body["seat"])
}

func TestCancelBooking(t *testing.T) {
	h := newTestHandler(t)
	b := createBooking(t, h, "1", `{"customer_name":"Carol","seats":["B1","B2"]}`)

	rec, err := doJSON(h.CancelBooking, http.MethodDelete, "/v1/bookings/:id", "", map[string]string{"id": b.ID})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var removed model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Equal(t, b.ID, removed.ID)

	// Second cancellation must report the booking as gone.
	rec, err = doJSON(h.CancelBooking, http.MethodDelete, "/v1/bookings/:id", "", map[string]string{"id": b.ID})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetShowSeats(t *testing.T) {
	h := newTestHandler(t)
	createBooking(t, h, "1", `{"customer_name":"Alice","seats":["A2","A1"]}`)

	rec, err := doJSON(h.GetShowSeats, http.MethodGet, "/v1/shows/:id/seats", "", map[string]string{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		BookedSeats []string `json:"booked_seats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"A1", "A2"}, body.BookedSeats)

	rec, err = doJSON(h.GetShowSeats, http.MethodGet, "/v1/shows/:id/seats", "", map[string]string{"id": "999"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetShows(t *testing.T) {
	h := newTestHandler(t)

	rec, err := doJSON(h.GetShows, http.MethodGet, "/v1/shows", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.Show `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Items)
	assert.Equal(t, "Dune: Part Two", body.Items[0].Title)
}

func TestGetBookings(t *testing.T) {
	h := newTestHandler(t)
	first := createBooking(t, h, "1", `{"customer_name":"Alice","seats":["A1"]}`)
	second := createBooking(t, h, "2", `{"customer_name":"Bob","seats":["B1"]}`)

	rec, err := doJSON(h.GetBookings, http.MethodGet, "/v1/bookings", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.Booking `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, first.ID, body.Items[0].ID)
	assert.Equal(t, second.ID, body.Items[1].ID)
}

func TestGetStats(t *testing.T) {
	h := newTestHandler(t)
	createBooking(t, h, "1", `{"customer_name":"Alice","seats":["A1","A2"]}`)

	rec, err := doJSON(h.GetStats, http.MethodGet, "/v1/stats", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var st engine.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 1, st.TotalBookings)
	assert.Equal(t, 2, st.SeatsSold)
	assert.Equal(t, 25.0, st.TotalRevenue)
}

func TestExportBookings(t *testing.T) {
	h := newTestHandler(t)
	h.ExportFile = filepath.Join(t.TempDir(), "bookings_export.json")
	createBooking(t, h, "1", `{"customer_name":"Alice","seats":["A1"]}`)

	rec, err := doJSON(h.ExportBookings, http.MethodPost, "/v1/bookings/export", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	data, err := os.ReadFile(h.ExportFile)
	require.NoError(t, err)
	var exported []model.Booking
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "Alice", exported[0].CustomerName)
}

func TestTicketWrittenOnBooking(t *testing.T) {
	h := newTestHandler(t)
	h.TicketsDir = t.TempDir()

	b := createBooking(t, h, "1", `{"customer_name":"Alice","seats":["A1"]}`)

	data, err := os.ReadFile(filepath.Join(h.TicketsDir, "ticket_"+b.ID+".txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dune: Part Two")
}
