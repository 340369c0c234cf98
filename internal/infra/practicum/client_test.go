package practicum

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/user_api/homework_statuses/", "secret", 5*time.Second), srv
}

func TestFetch_SendsCursorAndAuth(t *testing.T) {
	var gotAuth, gotFrom string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1700000100}`))
	})

	body, err := c.Fetch(context.Background(), 1700000000)
	require.NoError(t, err)
	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1700000000", gotFrom)

	list, err := homework.ValidateResponse(body)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFetch_ZeroCursorMeansNow(t *testing.T) {
	var gotFrom string
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from_date")
		_, _ = w.Write([]byte(`{"homeworks":[]}`))
	})
	c.now = func() time.Time { return time.Unix(1234, 0) }

	_, err := c.Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "1234", gotFrom)
}

func TestFetch_StatusCodes(t *testing.T) {
	tests := []struct {
		code int
		kind homework.Kind
	}{
		{http.StatusNotFound, homework.KindEndpoint},
		{http.StatusUnauthorized, homework.KindClient},
		{http.StatusBadRequest, homework.KindClient},
		{http.StatusInternalServerError, homework.KindServer},
		{http.StatusBadGateway, homework.KindServer},
		{http.StatusNoContent, homework.KindTransport},
		{http.StatusNotModified, homework.KindTransport},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			})

			_, err := c.Fetch(context.Background(), 1)
			require.Error(t, err)

			var hwErr *homework.Error
			require.ErrorAs(t, err, &hwErr)
			assert.Equal(t, tt.kind, hwErr.Kind)
			assert.Equal(t, tt.code, hwErr.StatusCode)
			assert.Equal(t, c.Endpoint(), hwErr.Endpoint)
		})
	}
}

func TestFetch_NotFoundIsEndpointError(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.Fetch(context.Background(), 1)
	assert.True(t, errors.Is(err, homework.ErrEndpoint))

	var hwErr *homework.Error
	require.ErrorAs(t, err, &hwErr)
	assert.Equal(t, 404, hwErr.StatusCode)
}

func TestFetch_MalformedBody(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks": [`))
	})

	_, err := c.Fetch(context.Background(), 1)
	assert.True(t, errors.Is(err, homework.ErrTransport))
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "secret", time.Second)
	_, err := c.Fetch(context.Background(), 1)

	var hwErr *homework.Error
	require.ErrorAs(t, err, &hwErr)
	assert.Equal(t, homework.KindTransport, hwErr.Kind)
	assert.Zero(t, hwErr.StatusCode)
}
