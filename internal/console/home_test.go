package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshrc27/scheduling-console/internal/models"
	"github.com/maheshrc27/scheduling-console/internal/service"
	"github.com/maheshrc27/scheduling-console/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHomeMountLoadsPosts(t *testing.T) {
	posts := new(MockPostService)
	posts.On("List", mock.Anything).Return([]*models.ScheduledPost{{ID: 1, Text: "a"}}, nil).Once()

	home := NewHomePage(posts, nil, time.UTC)
	home.Mount(context.Background())

	require.Len(t, home.Posts(), 1)
	assert.False(t, home.Table().Empty())
	assert.Equal(t, ComposeClosed, home.Compose.State())
	posts.AssertExpectations(t)
}

func TestHomeRefreshFailureKeepsList(t *testing.T) {
	posts := new(MockPostService)
	posts.On("List", mock.Anything).Return([]*models.ScheduledPost{{ID: 1}}, nil).Once()
	posts.On("List", mock.Anything).Return(nil, errors.New("backend down")).Once()

	home := NewHomePage(posts, nil, time.UTC)
	home.Refresh(context.Background())
	home.Refresh(context.Background())

	assert.Len(t, home.Posts(), 1)
	assert.Empty(t, home.TakeAlerts(), "fetch errors are logged, not surfaced")
	posts.AssertExpectations(t)
}

func TestHomeDeleteFailureStillRequestsList(t *testing.T) {
	posts := new(MockPostService)
	posts.On("Remove", mock.Anything, int64(42)).
		Return(nil, &service.APIError{Op: "delete item with id 42", StatusCode: 500, Message: "Error deleting post."}).Once()
	posts.On("List", mock.Anything).Return([]*models.ScheduledPost{{ID: 42}, {ID: 43}}, nil).Once()

	home := NewHomePage(posts, nil, time.UTC)
	home.DeletePost(context.Background(), 42)

	assert.Len(t, home.Posts(), 2)
	assert.Empty(t, home.TakeAlerts())
	posts.AssertExpectations(t)
}

func TestHomeComposeSubmitSchedulesAndRefreshes(t *testing.T) {
	posts := new(MockPostService)
	posts.On("Submit", mock.Anything, mock.MatchedBy(func(p *transfer.ScheduleParameters) bool {
		return p.Text == "Hello world" && p.Immediate && p.DateTime == nil && p.Repeat == "none" &&
			len(p.Social) == 1 && p.Social[0] == "x"
	})).Return(&service.SubmitResponse{StatusCode: 200}, nil).Once()
	posts.On("List", mock.Anything).Return([]*models.ScheduledPost{{ID: 9, Text: "Hello world"}}, nil).Once()

	home := NewHomePage(posts, nil, time.UTC)
	home.Compose.Open()
	home.Compose.SetText("Hello world")
	home.Compose.SetImmediate(true)
	home.Compose.SetSocial([]string{"x"})

	require.NoError(t, home.SubmitCompose(context.Background()))

	assert.Equal(t, ComposeClosed, home.Compose.State())
	assert.Len(t, home.Posts(), 1)
	posts.AssertExpectations(t)
}

func TestHomeComposeValidationIssuesNoRequest(t *testing.T) {
	posts := new(MockPostService)

	home := NewHomePage(posts, nil, time.UTC)
	home.Compose.Open()
	home.Compose.SetText("  ")
	home.Compose.SetSocial([]string{"x"})

	err := home.SubmitCompose(context.Background())

	assert.Error(t, err)
	assert.Equal(t, []string{alertTextRequired}, home.TakeAlerts())
	assert.Empty(t, home.TakeAlerts())
	posts.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	posts.AssertNotCalled(t, "List", mock.Anything)
}

func TestHomeSubmitFailureRaisesAlert(t *testing.T) {
	posts := new(MockPostService)
	posts.On("Submit", mock.Anything, mock.Anything).
		Return(nil, &service.APIError{Op: "upload post", StatusCode: 400, Message: "bad"}).Once()

	home := NewHomePage(posts, nil, time.UTC)
	home.Compose.Open()
	home.Compose.SetText("hi")
	home.Compose.SetSocial([]string{"bluesky"})

	require.NoError(t, home.SubmitCompose(context.Background()))

	assert.Equal(t, []string{"Failed to upload post (400): bad"}, home.TakeAlerts())
	posts.AssertNotCalled(t, "List", mock.Anything)
	posts.AssertExpectations(t)
}
