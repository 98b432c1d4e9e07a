package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Envelope mirrors the API response wrapper with raw data for decoding.
type Envelope struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Errors  []EnvelopeFieldErr `json:"errors"`
}

// EnvelopeFieldErr is one entry of Envelope.Errors
type EnvelopeFieldErr struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewJSONRequest creates a request with body encoded as JSON. A string body
// is sent verbatim.
func NewJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// Serve runs req through h and returns the recorded response
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeEnvelope decodes a response body, failing the test on error.
// When data is non-nil the envelope's data is decoded into it.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope %q: %v", w.Body.String(), err)
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to decode envelope data %q: %v", string(env.Data), err)
		}
	}
	return env
}
