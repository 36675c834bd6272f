package courseService_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/api"
	"lms/config"
	"lms/mockserver"
	"lms/services/authService"
	"lms/services/courseService"
)

func newClient(t *testing.T) *api.Client {
	t.Helper()
	config.LoadConfig()

	base, shutdown, err := mockserver.Start(mockserver.New())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown() })

	return api.New(base, 5*time.Second)
}

func signIn(t *testing.T, client *api.Client, email, password string) {
	t.Helper()
	resp, err := authService.New(client).Login(email, password)
	require.NoError(t, err)
	client.SetToken(resp.Token)
}

func TestListNormalizesEnvelope(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)

	// The catalog endpoint wraps its payload in {data: [...]}; the service
	// must still hand back a bare slice.
	courses, err := svc.List()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "Intro to Go", courses[0].Title)
	assert.Equal(t, "BEGINNER", courses[0].Level)
}

func TestGetReturnsBareDetail(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)

	course, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), course.ID)
	require.Len(t, course.Contents, 2)
	assert.Equal(t, "Hello, world", course.Contents[0].Title)
}

func TestGetUnknownCourse(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)

	_, err := svc.Get(999)
	require.Error(t, err)

	reqErr, ok := api.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 404, reqErr.StatusCode)
}

func TestMyCoursesRequiresAuth(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)

	_, err := svc.My()
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
}

func TestEnrollAddsToMyCourses(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)
	signIn(t, client, "asha@example.com", "password123")

	require.NoError(t, svc.Enroll(2))

	mine, err := svc.My()
	require.NoError(t, err)

	var titles []string
	for _, course := range mine {
		titles = append(titles, course.Title)
	}
	assert.Contains(t, titles, "Databases from Scratch")
}

func TestEnrollTwiceConflicts(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)
	signIn(t, client, "asha@example.com", "password123")

	// Seeded as already enrolled in course 1.
	err := svc.Enroll(1)
	require.Error(t, err)

	reqErr, ok := api.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 409, reqErr.StatusCode)
}

func TestAdminEndpointsRejectNonAdmins(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)
	signIn(t, client, "asha@example.com", "password123")

	_, err := svc.AdminList()
	require.Error(t, err)

	reqErr, ok := api.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 403, reqErr.StatusCode)
}

func TestAdminCourseLifecycle(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)
	signIn(t, client, "admin@example.com", "adminpass123")

	created, err := svc.Create(courseService.CourseRequest{
		Title:       "Network Programming",
		Description: "Sockets and protocols.",
		Price:       19.99,
		Duration:    240,
		Level:       "INTERMEDIATE",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := svc.Update(created.ID, courseService.CourseRequest{
		Title:       "Network Programming in Go",
		Description: "Sockets and protocols.",
		Price:       24.99,
		Duration:    240,
		Level:       "INTERMEDIATE",
	})
	require.NoError(t, err)
	assert.Equal(t, "Network Programming in Go", updated.Title)

	all, err := svc.AdminList()
	require.NoError(t, err)
	assert.Len(t, all, 4)

	require.NoError(t, svc.Delete(created.ID))

	all, err = svc.AdminList()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAdminContentLifecycle(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)
	signIn(t, client, "admin@example.com", "adminpass123")

	content, err := svc.CreateContent(2, courseService.ContentRequest{
		Title:       "Write-ahead logging",
		ContentType: "TEXT",
		OrderIndex:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), content.CourseID)

	updated, err := svc.UpdateContent(2, content.ID, courseService.ContentRequest{
		Title:       "WAL and checkpoints",
		ContentType: "TEXT",
		OrderIndex:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "WAL and checkpoints", updated.Title)

	contents, err := svc.Contents(2)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	require.NoError(t, svc.DeleteContent(2, content.ID))

	contents, err = svc.Contents(2)
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestCreateRejectsInvalidLevelLocally(t *testing.T) {
	client := newClient(t)
	svc := courseService.New(client)
	signIn(t, client, "admin@example.com", "adminpass123")

	_, err := svc.Create(courseService.CourseRequest{
		Title:       "Bad Level",
		Description: "x",
		Duration:    10,
		Level:       "IMPOSSIBLE",
	})
	require.Error(t, err)
}
