package blogService_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/api"
	"lms/config"
	"lms/mockserver"
	"lms/services/blogService"
)

func newService(t *testing.T) *blogService.BlogService {
	t.Helper()
	config.LoadConfig()

	base, shutdown, err := mockserver.Start(mockserver.New())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown() })

	return blogService.New(api.New(base, 5*time.Second))
}

func TestPostsNormalizeBareArray(t *testing.T) {
	svc := newService(t)

	// The blog endpoints return bare arrays, not the {data: ...} envelope.
	posts, err := svc.Posts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// newest first
	assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
}

func TestPostDetail(t *testing.T) {
	svc := newService(t)

	post, err := svc.Post(1)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the platform", post.Title)
	assert.NotEmpty(t, post.Excerpt(40))
}

func TestPostNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Post(404)
	require.Error(t, err)

	reqErr, ok := api.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 404, reqErr.StatusCode)
}
