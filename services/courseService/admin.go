package courseService

import (
	"lms/api"
	"lms/models"
	"lms/validators"
)

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    int64   `json:"duration" validate:"gt=0"`
	Level       string  `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Category    string  `json:"category,omitempty"`
	Instructor  string  `json:"instructor,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

// ContentRequest is the payload for creating or updating course content.
type ContentRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description,omitempty"`
	ContentType string `json:"content_type" validate:"required,oneof=VIDEO TEXT MCQ"`
	VideoURL    string `json:"video_url,omitempty"`
	OrderIndex  int    `json:"order_index"`
}

// AdminList fetches every course, including unpublished ones.
func (s *CourseService) AdminList() ([]models.Course, error) {
	body, err := s.client.Get(api.EndpointAdminCourses(), true)
	if err != nil {
		return nil, err
	}

	var courses []models.Course
	if err := api.UnmarshalList(body, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Create creates a course and returns the stored record.
func (s *CourseService) Create(req CourseRequest) (*models.Course, error) {
	if err := validators.Check(req); err != nil {
		return nil, err
	}

	body, err := s.client.Post(api.EndpointAdminCourses(), req, true)
	if err != nil {
		return nil, err
	}

	var course models.Course
	if err := api.UnmarshalData(body, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Update overwrites a course and returns the stored record.
func (s *CourseService) Update(id uint, req CourseRequest) (*models.Course, error) {
	if err := validators.Check(req); err != nil {
		return nil, err
	}

	body, err := s.client.Put(api.EndpointAdminCourse(id), req, true)
	if err != nil {
		return nil, err
	}

	var course models.Course
	if err := api.UnmarshalData(body, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Delete removes a course.
func (s *CourseService) Delete(id uint) error {
	_, err := s.client.Delete(api.EndpointAdminCourse(id), true)
	return err
}

// Contents lists the content items of a course.
func (s *CourseService) Contents(courseID uint) ([]models.CourseContent, error) {
	body, err := s.client.Get(api.EndpointCourseContents(courseID), true)
	if err != nil {
		return nil, err
	}

	var contents []models.CourseContent
	if err := api.UnmarshalList(body, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// CreateContent adds a content item to a course.
func (s *CourseService) CreateContent(courseID uint, req ContentRequest) (*models.CourseContent, error) {
	if err := validators.Check(req); err != nil {
		return nil, err
	}

	body, err := s.client.Post(api.EndpointCourseContents(courseID), req, true)
	if err != nil {
		return nil, err
	}

	var content models.CourseContent
	if err := api.UnmarshalData(body, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// UpdateContent overwrites a content item.
func (s *CourseService) UpdateContent(courseID, contentID uint, req ContentRequest) (*models.CourseContent, error) {
	if err := validators.Check(req); err != nil {
		return nil, err
	}

	body, err := s.client.Put(api.EndpointCourseContent(courseID, contentID), req, true)
	if err != nil {
		return nil, err
	}

	var content models.CourseContent
	if err := api.UnmarshalData(body, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// DeleteContent removes a content item.
func (s *CourseService) DeleteContent(courseID, contentID uint) error {
	_, err := s.client.Delete(api.EndpointCourseContent(courseID, contentID), true)
	return err
}
