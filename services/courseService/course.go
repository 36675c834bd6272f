package courseService

import (
	"lms/api"
	"lms/models"
)

// CourseService covers the learner-facing course endpoints; the admin CRUD
// surface lives in admin.go.
type CourseService struct {
	client *api.Client
}

func New(client *api.Client) *CourseService {
	return &CourseService{client: client}
}

// List fetches the public course catalog.
func (s *CourseService) List() ([]models.Course, error) {
	body, err := s.client.Get(api.EndpointCourses(), false)
	if err != nil {
		return nil, err
	}

	var courses []models.Course
	if err := api.UnmarshalList(body, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// My fetches the courses the current user is enrolled in.
func (s *CourseService) My() ([]models.Course, error) {
	body, err := s.client.Get(api.EndpointMyCourses(), true)
	if err != nil {
		return nil, err
	}

	var courses []models.Course
	if err := api.UnmarshalList(body, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Get fetches one course with its contents.
func (s *CourseService) Get(id uint) (*models.Course, error) {
	body, err := s.client.Get(api.EndpointCourse(id), false)
	if err != nil {
		return nil, err
	}

	var course models.Course
	if err := api.UnmarshalData(body, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Enroll enrolls the current user in the course.
func (s *CourseService) Enroll(id uint) error {
	_, err := s.client.Post(api.EndpointEnroll(id), nil, true)
	return err
}
