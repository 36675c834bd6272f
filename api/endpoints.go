package api

import "fmt"

// Endpoint paths, relative to the configured base URL plus the "/api" prefix.
// These are pure helpers so the services never hand-build URLs; callers are
// responsible for passing well-formed ids.

func EndpointLogin() string    { return "/login" }
func EndpointRegister() string { return "/register" }
func EndpointMe() string       { return "/me" }
func EndpointLogout() string   { return "/logout" }

func EndpointCourses() string   { return "/courses" }
func EndpointMyCourses() string { return "/my/courses" }

func EndpointCourse(id uint) string {
	return fmt.Sprintf("/courses/%d", id)
}

func EndpointEnroll(id uint) string {
	return fmt.Sprintf("/courses/%d/enroll", id)
}

func EndpointAdminCourses() string { return "/admin/courses" }

func EndpointAdminCourse(id uint) string {
	return fmt.Sprintf("/admin/courses/%d", id)
}

func EndpointCourseContents(courseID uint) string {
	return fmt.Sprintf("/admin/courses/%d/content", courseID)
}

func EndpointCourseContent(courseID, contentID uint) string {
	return fmt.Sprintf("/admin/courses/%d/content/%d", courseID, contentID)
}

func EndpointQuizzes() string { return "/quizzes" }

func EndpointQuizSubmit(quizID uint) string {
	return fmt.Sprintf("/quizzes/%d/submit", quizID)
}

func EndpointBlogPosts() string { return "/blog" }

func EndpointBlogPost(id uint) string {
	return fmt.Sprintf("/blog/%d", id)
}
