package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer server.Close()

	client := NewHTTPClient(0)
	status, body, headers, err := client.Get(context.Background(), server.URL, http.Header{"X-Test": []string{"yes"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "slow down", string(body))
	assert.Equal(t, "3", headers.Get("Retry-After"))
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _, err := NewHTTPClient(0).Get(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	client := NewHTTPClient(0)
	client.SetClient(mock)

	mock.EXPECT().Get(gomock.Any(), "http://members/api/members/1", nil).Return(http.StatusOK, nil, nil, nil)
	status, _, _, err := client.Get(context.Background(), "http://members/api/members/1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}
