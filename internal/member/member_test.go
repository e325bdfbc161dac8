package member

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/pkg/clients"
)

const memberURL = "http://members:8082/api/members/5"

func NewMock(t *testing.T) (*Directory, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	directory := New("members:8082/", client)
	directory.retryInterval = time.Millisecond
	return directory, client
}

func TestDirectory_MemberExists(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(client *clients.MockHTTPClientI)
		expectedError error
		expectAnyErr  bool
	}{
		{
			name: "Member exists",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusOK, []byte(`{"id":5}`), nil, nil)
			},
		},
		{
			name: "Member not found",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusNotFound, nil, nil, nil)
			},
			expectedError: domain.ErrMemberNotFound,
		},
		{
			name: "Rate limited then found",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"0"}}, nil),
					client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusOK, nil, nil, nil),
				)
			},
		},
		{
			name: "Transport error retried",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(0, nil, nil, errors.New("connection refused")),
					client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusBadGateway, nil, nil, nil),
					client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusNoContent, nil, nil, nil),
				)
			},
		},
		{
			name: "Service keeps failing",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusServiceUnavailable, nil, nil, nil).Times(maxRetries)
			},
			expectAnyErr: true,
		},
		{
			name: "Unexpected status",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), memberURL, nil).Return(http.StatusBadRequest, nil, nil, nil)
			},
			expectAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory, client := NewMock(t)
			tt.prepareMock(client)

			err := directory.MemberExists(context.Background(), 5)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.expectAnyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrMemberNotFound)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestDirectory_CanceledWhileWaiting(t *testing.T) {
	directory, client := NewMock(t)
	directory.retryInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	client.EXPECT().Get(gomock.Any(), memberURL, nil).DoAndReturn(func(context.Context, string, http.Header) (int, []byte, http.Header, error) {
		cancel()
		return 0, nil, nil, errors.New("connection reset")
	})

	assert.ErrorIs(t, directory.MemberExists(ctx, 5), context.Canceled)
}

func TestRetryAfter(t *testing.T) {
	directory, _ := NewMock(t)

	assert.Equal(t, 7*time.Second, directory.retryAfter(http.Header{"Retry-After": []string{"7"}}, 1))
	assert.Equal(t, 2*time.Millisecond, directory.retryAfter(http.Header{}, 2))
	assert.Equal(t, time.Millisecond, directory.retryAfter(http.Header{"Retry-After": []string{"soon"}}, 1))
}
