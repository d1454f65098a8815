package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
		writeHeader   bool
		expectedLevel zapcore.Level
	}{
		{name: "OK response", handlerStatus: http.StatusOK, handlerBody: "hello", expectedLevel: zap.InfoLevel},
		{name: "Created", handlerStatus: http.StatusCreated, handlerBody: `{"id":1}`, writeHeader: true, expectedLevel: zap.InfoLevel},
		{name: "Not found", handlerStatus: http.StatusNotFound, handlerBody: "missing", writeHeader: true, expectedLevel: zap.WarnLevel},
		{name: "Internal server error", handlerStatus: http.StatusInternalServerError, handlerBody: "error", writeHeader: true, expectedLevel: zap.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				if tt.writeHeader {
					w.WriteHeader(tt.handlerStatus)
				}
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			body, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(body))

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			assert.NoError(t, err)
			assert.Equal(t, reqID, seenID)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, "http request", entries[0].Message)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, "/events", fields["uri"])
			assert.EqualValues(t, tt.handlerStatus, fields["status"])
			assert.EqualValues(t, len(tt.handlerBody), fields["bytes"])
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	inbound := uuid.NewString()

	tests := []struct {
		name    string
		header  string
		keepsID bool
	}{
		{name: "inbound uuid kept", header: inbound, keepsID: true},
		{name: "missing header", header: ""},
		{name: "malformed header replaced", header: "abc\nforged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var seenID string
			handler := LoggingMiddleware(zap.New(core).Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			reqID := rr.Header().Get(RequestIDHeader)
			assert.Equal(t, reqID, seenID)
			if tt.keepsID {
				assert.Equal(t, inbound, reqID)
			} else {
				assert.NotEqual(t, tt.header, reqID)
				_, err := uuid.Parse(reqID)
				assert.NoError(t, err)
			}

			require.Len(t, logs.All(), 1)
			assert.Equal(t, reqID, logs.All()[0].ContextMap()["request_id"])
		})
	}
}

func TestRequestIDFromContext_Outside(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}

func TestLoggingMiddleware_FirstStatusWins(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := LoggingMiddleware(zap.New(core).Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, logs.All(), 1)
	assert.Equal(t, zap.InfoLevel, logs.All()[0].Level)
	assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}
