package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
)

// newTestHandler returns a Handler with only the middleware dependencies set.
func newTestHandler(l *logger.Logger) *Handler {
	return &Handler{logger: l, traceIDs: utils.NewUUIDGenerator()}
}

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantGenerated bool
	}{
		{name: "custom trace ID is reused", incoming: "my-custom-trace-id"},
		{name: "UUID trace ID is reused", incoming: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "missing trace ID is generated", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(newTestHandler(logger.Nop()), tt.incoming)

			require.NotNil(t, captured, "next handler must be called")
			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)

			if tt.wantGenerated {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
				return
			}
			assert.Equal(t, tt.incoming, got)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler(logger.Nop())
	seen := make(map[string]struct{})

	for range 100 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace ID %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_ContextLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	originalCtx := req.Context()
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
