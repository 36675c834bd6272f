package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointPaths(t *testing.T) {
	assert.Equal(t, "/login", EndpointLogin())
	assert.Equal(t, "/register", EndpointRegister())
	assert.Equal(t, "/me", EndpointMe())
	assert.Equal(t, "/logout", EndpointLogout())

	assert.Equal(t, "/courses", EndpointCourses())
	assert.Equal(t, "/my/courses", EndpointMyCourses())
	assert.Equal(t, "/courses/42", EndpointCourse(42))
	assert.Equal(t, "/courses/42/enroll", EndpointEnroll(42))

	assert.Equal(t, "/admin/courses", EndpointAdminCourses())
	assert.Equal(t, "/admin/courses/7", EndpointAdminCourse(7))
	assert.Equal(t, "/admin/courses/7/content", EndpointCourseContents(7))
	assert.Equal(t, "/admin/courses/7/content/3", EndpointCourseContent(7, 3))

	assert.Equal(t, "/quizzes", EndpointQuizzes())
	assert.Equal(t, "/quizzes/7/submit", EndpointQuizSubmit(7))

	assert.Equal(t, "/blog", EndpointBlogPosts())
	assert.Equal(t, "/blog/9", EndpointBlogPost(9))
}

func TestEndpointIdempotence(t *testing.T) {
	assert.Equal(t, EndpointCourse(5), EndpointCourse(5))
	assert.Equal(t, EndpointCourseContent(5, 8), EndpointCourseContent(5, 8))
	assert.Equal(t, EndpointQuizSubmit(5), EndpointQuizSubmit(5))
}
