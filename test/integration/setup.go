// Package integration provides helpers and integration tests for the
// booking configuration system. Integration tests drive the real HTTP
// handlers, use case, and session store together, with only the
// booking-creation API mocked.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-booking/booking-configuration-service/internal/adapter/http"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/session"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/booking-configuration-service/internal/usecase"
	"github.com/flight-booking/booking-configuration-service/test/mock"
)

// TestServer wires the real application layers over a mock booking
// creator and a controllable clock.
type TestServer struct {
	Echo    *echo.Echo
	Store   *session.MemoryStore
	Creator *mock.Creator
	Clock   *timeutil.MockClock
}

// NewTestServer creates a test server with a 30 minute session TTL.
func NewTestServer() *TestServer {
	return NewTestServerWithTTL(30 * time.Minute)
}

// NewTestServerWithTTL creates a test server with the given session TTL.
func NewTestServerWithTTL(ttl time.Duration) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := timeutil.NewMockClockFromString("2026-09-01T10:00:00Z")
	store := session.NewMemoryStore(ttl, clock)
	creator := mock.NewCreator()

	workflow := usecase.NewBookingWorkflowUseCase(store, creator, nil)
	handler := httpAdapter.NewBookingHandler(workflow)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Store:   store,
		Creator: creator,
		Clock:   clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// StartSession starts a booking session and returns the response.
func (ts *TestServer) StartSession(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions",
		Body:   body,
	})
}

// GetState fetches the workflow state for a session.
func (ts *TestServer) GetState(sessionID string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/sessions/" + sessionID,
	})
}

// Submit submits the booking for a session.
func (ts *TestServer) Submit(sessionID string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/submit",
	})
}

// SetRecord saves a passenger record for one slot.
func (ts *TestServer) SetRecord(sessionID string, index int, title, first, last string) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/api/v1/sessions/%s/passengers/%d", sessionID, index),
		Body: map[string]string{
			"title":     title,
			"firstName": first,
			"lastName":  last,
		},
	})
}

// SetContact saves the contact record for a session.
func (ts *TestServer) SetContact(sessionID string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/sessions/" + sessionID + "/contact",
		Body:   body,
	})
}

// ToggleSeat toggles a seat for a session.
func (ts *TestServer) ToggleSeat(sessionID, seatID string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/seats/toggle",
		Body:   map[string]string{"seatId": seatID},
	})
}

// ParseState parses the response body as a state DTO.
func (r Response) ParseState() (*httpAdapter.StateDTO, error) {
	var state httpAdapter.StateDTO
	if err := json.Unmarshal(r.Body, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultStartRequest returns a valid start request body for one adult.
func DefaultStartRequest() map[string]interface{} {
	return StartRequestWithCounts(1, 0, 0)
}

// StartRequestWithCounts returns a start request body with the given
// passenger counts.
func StartRequestWithCounts(adults, children, infants int) map[string]interface{} {
	return map[string]interface{}{
		"flight": map[string]interface{}{
			"id":           "garuda-ga123-cgk-dps",
			"flightNumber": "GA-123",
			"airline": map[string]string{
				"code": "GA",
				"name": "Garuda Indonesia",
			},
			"departure": map[string]string{
				"airportCode": "CGK",
				"dateTime":    "2026-09-15T08:00:00Z",
				"timezone":    "Asia/Jakarta",
			},
			"arrival": map[string]string{
				"airportCode": "DPS",
				"dateTime":    "2026-09-15T10:50:00Z",
				"timezone":    "Asia/Makassar",
			},
			"price": map[string]interface{}{
				"amount":   float64(100),
				"currency": "USD",
			},
			"class": "economy",
		},
		"criteria": map[string]int{
			"adults":   adults,
			"children": children,
			"infants":  infants,
		},
	}
}

// CompleteContactBody returns a complete contact request body.
func CompleteContactBody() map[string]string {
	return map[string]string{
		"contactPerson": "Budi Santoso",
		"country":       "Singapore",
		"phoneNumber":   "91234567",
		"email":         "budi@example.com",
	}
}
