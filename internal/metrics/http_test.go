package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "single uuid",
			path: "/documents/11111111-2222-3333-4444-555555555555/pdf",
			want: "/documents/{id}/pdf",
		},
		{
			name: "multiple uuids",
			path: "/users/11111111-2222-3333-4444-555555555555/documents/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
			want: "/users/{id}/documents/{id}",
		},
		{
			name: "uppercase hex",
			path: "/documents/AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE",
			want: "/documents/{id}",
		},
		{
			name: "no uuid",
			path: "/documents/types",
			want: "/documents/types",
		},
		{
			name: "short hex segment untouched",
			path: "/documents/deadbeef",
			want: "/documents/deadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.path))
		})
	}
}

func TestResponseWriterStatusCapture(t *testing.T) {
	t.Run("explicit status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusNotFound)
		rw.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusNotFound, rw.statusCode)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("implicit 200 on write", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		_, err := rw.Write([]byte("ok"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rw.statusCode)
		assert.True(t, rw.wroteHeader)
	})
}

func TestMiddlewarePassesThrough(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("brewing"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/types", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "brewing", rec.Body.String())
}
