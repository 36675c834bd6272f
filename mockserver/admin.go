package mockserver

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
)

type courseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int64   `json:"duration"`
	Level       string  `json:"level"`
	Category    string  `json:"category"`
	Instructor  string  `json:"instructor"`
	Thumbnail   string  `json:"thumbnail"`
}

type contentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type"`
	VideoURL    string `json:"video_url"`
	OrderIndex  int    `json:"order_index"`
}

func (s *store) adminListCourses(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", s.courses)
}

func (s *store) createCourse(c *fiber.Ctx) error {
	reqData := new(courseRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := models.Course{
		ID:          s.nextCourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Duration:    reqData.Duration,
		Level:       reqData.Level,
		Category:    reqData.Category,
		Instructor:  reqData.Instructor,
		Thumbnail:   reqData.Thumbnail,
	}
	s.nextCourseID++
	s.courses = append(s.courses, course)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (s *store) updateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData := new(courseRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(uint(id))
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Price = reqData.Price
	course.Duration = reqData.Duration
	course.Level = reqData.Level
	course.Category = reqData.Category
	course.Instructor = reqData.Instructor
	course.Thumbnail = reqData.Thumbnail

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", *course)
}

func (s *store) deleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == uint(id) {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
}

func (s *store) listContents(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(uint(courseID))
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", course.Contents)
}

func (s *store) createContent(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData := new(contentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(uint(courseID))
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	content := models.CourseContent{
		ID:          s.nextContentID,
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentType: reqData.ContentType,
		VideoURL:    reqData.VideoURL,
		OrderIndex:  reqData.OrderIndex,
	}
	s.nextContentID++
	course.Contents = append(course.Contents, content)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

func (s *store) updateContent(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
	}

	reqData := new(contentRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(uint(courseID))
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	for i := range course.Contents {
		if course.Contents[i].ID == uint(contentID) {
			course.Contents[i].Title = reqData.Title
			course.Contents[i].Description = reqData.Description
			course.Contents[i].ContentType = reqData.ContentType
			course.Contents[i].VideoURL = reqData.VideoURL
			course.Contents[i].OrderIndex = reqData.OrderIndex
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", course.Contents[i])
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
}

func (s *store) deleteContent(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	contentID, err := c.ParamsInt("contentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(uint(courseID))
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	for i := range course.Contents {
		if course.Contents[i].ID == uint(contentID) {
			course.Contents = append(course.Contents[:i], course.Contents[i+1:]...)
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
}
