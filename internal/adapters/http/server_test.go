package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantry-run/gantry/internal/logging"
	"github.com/gantry-run/gantry/internal/observability"
)

func newTestHandler() http.Handler {
	return NewHandler(logging.NewNop(), observability.NewMetrics())
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	rec, body := doJSON(t, newTestHandler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRenderFixtureTable(t *testing.T) {
	handler := newTestHandler()

	cases := []struct {
		kind         string
		status       int
		messageField string
		hasType      bool
		body         string
	}{
		{"InvalidParameterValueException", 400, "message", true, `{"message":"bad input"}`},
		{"ResourceNotFoundException", 404, "Message", true, `{"message":"bad input"}`},
		{"ServiceException", 500, "Message", true, `{"message":"bad input"}`},
		{"CallbackTimeoutException", 408, "message", true, `{"message":"bad input"}`},
		{"ExecutionAlreadyStartedException", 409, "message", false,
			`{"message":"bad input","extra":{"DurableExecutionArn":"arn:x"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			rec, body := doJSON(t, handler, http.MethodPost, "/error-responses/"+tc.kind, tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "bad input", body[tc.messageField])
			if tc.hasType {
				assert.Equal(t, tc.kind, body["Type"])
			} else {
				assert.NotContains(t, body, "Type")
			}
		})
	}
}

func TestRenderFixtureUnknownKind(t *testing.T) {
	rec, body := doJSON(t, newTestHandler(), http.MethodPost, "/error-responses/NopeException", `{"message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidParameterValueException", body["Type"])
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, "NopeException")
	assert.Contains(t, msg, "ExecutionAlreadyStartedException")
}

func TestRenderFixtureMissingArn(t *testing.T) {
	rec, body := doJSON(t, newTestHandler(), http.MethodPost,
		"/error-responses/ExecutionAlreadyStartedException", `{"message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, "DurableExecutionArn")
}

func TestRenderFixtureInvalidJSON(t *testing.T) {
	rec, body := doJSON(t, newTestHandler(), http.MethodPost,
		"/error-responses/ServiceException", `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "InvalidParameterValueException", body["Type"])
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, "Invalid JSON")
}

func TestRenderFixtureEmptyBody(t *testing.T) {
	// An empty body renders an empty message; the message field must still
	// be present in the response.
	rec, body := doJSON(t, newTestHandler(), http.MethodPost,
		"/error-responses/InvalidParameterValueException", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	msg, ok := body["message"]
	require.True(t, ok)
	assert.Equal(t, "", msg)
}

func TestPanicYieldsServiceExceptionShape(t *testing.T) {
	s := &Server{logger: logging.NewNop(), metrics: observability.NewMetrics()}
	handler := s.recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler blew up")
	}))

	req := httptest.NewRequest(http.MethodGet, "/exploding", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ServiceException", body["Type"])
	assert.Equal(t, "handler blew up", body["Message"])
}

func TestUnknownRouteGetsResourceNotFoundShape(t *testing.T) {
	rec, body := doJSON(t, newTestHandler(), http.MethodGet, "/no/such/route", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ResourceNotFoundException", body["Type"])
	msg, _ := body["Message"].(string)
	assert.Contains(t, msg, "GET /no/such/route")
}

func TestListErrorResponses(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/error-responses", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing []struct {
		Kind         string   `json:"kind"`
		HTTPStatus   int      `json:"httpStatus"`
		MessageField string   `json:"messageField"`
		IncludeType  bool     `json:"includeType"`
		ExtraFields  []string `json:"extraFields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing, 5)

	byKind := map[string]int{}
	for i, e := range listing {
		byKind[e.Kind] = i
	}
	already := listing[byKind["ExecutionAlreadyStartedException"]]
	assert.Equal(t, 409, already.HTTPStatus)
	assert.False(t, already.IncludeType)
	assert.Equal(t, []string{"DurableExecutionArn"}, already.ExtraFields)
}

func TestRequestIDHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec = httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
}

func TestCatalogFallbackLabelsServiceKind(t *testing.T) {
	metrics := observability.NewMetrics()
	s := &Server{logger: logging.NewNop(), metrics: metrics}

	rec := httptest.NewRecorder()
	s.writeCatalogError(rec, "BogusException", "x", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ServiceException", body["Type"])

	// The metric label must match the body that was actually written.
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ErrorResponses.WithLabelValues("ServiceException", "500")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ErrorResponses.WithLabelValues("BogusException", "500")))
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	handler := newTestHandler()

	// Render one error first so the counter has a sample.
	doJSON(t, handler, http.MethodPost, "/error-responses/ServiceException", `{"message":"x"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gantry_error_responses_total")
}
