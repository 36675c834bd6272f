// Package mockserver is a self-contained, in-memory stand-in for the
// learning platform API. It serves the same endpoint table the client
// targets, wraps responses the same way the production backend does, and is
// used both as a local dev fixture and as the backend for the service and
// session tests.
package mockserver

import (
	"net"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
)

type account struct {
	user     models.User
	password string
}

type quizFixture struct {
	quiz    models.Quiz
	correct map[uint]string // question id -> correct answer
	raw     []rawQuestion
}

// rawQuestion mirrors the mixed shapes the real backend delivers: options
// arrive either as a bare array or as an encoded JSON string.
type rawQuestion struct {
	ID       uint        `json:"id"`
	Question string      `json:"question"`
	Options  interface{} `json:"options"`
}

type rawQuiz struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	CourseID    uint          `json:"course_id,omitempty"`
	Questions   []rawQuestion `json:"questions"`
}

type store struct {
	mu sync.Mutex

	accounts   map[uint]*account
	nextUserID uint

	courses       []models.Course
	nextCourseID  uint
	nextContentID uint

	enrollments map[uint]map[uint]bool // user id -> course ids

	quizzes []quizFixture
	posts   []models.BlogPost
}

// New builds the mock API with seeded fixture data.
func New() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	Register(app)
	return app
}

// Register mounts the mock API routes on app. Any middleware (cors, request
// logging) must be added to app before calling this.
func Register(app *fiber.App) {
	s := seed()

	apiGroup := app.Group("/api")

	apiGroup.Post("/login", s.login)
	apiGroup.Post("/register", s.register)
	apiGroup.Get("/me", middleware.JWTMiddleware, s.me)
	apiGroup.Post("/logout", middleware.JWTMiddleware, s.logout)

	apiGroup.Get("/courses", s.listCourses)
	apiGroup.Get("/my/courses", middleware.JWTMiddleware, s.myCourses)
	apiGroup.Get("/courses/:id", s.courseDetail)
	apiGroup.Post("/courses/:id/enroll", middleware.JWTMiddleware, s.enroll)

	adminGroup := apiGroup.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Get("/courses", s.adminListCourses)
	adminGroup.Post("/courses", s.createCourse)
	adminGroup.Put("/courses/:id", s.updateCourse)
	adminGroup.Delete("/courses/:id", s.deleteCourse)
	adminGroup.Get("/courses/:courseId/content", s.listContents)
	adminGroup.Post("/courses/:courseId/content", s.createContent)
	adminGroup.Put("/courses/:courseId/content/:contentId", s.updateContent)
	adminGroup.Delete("/courses/:courseId/content/:contentId", s.deleteContent)

	apiGroup.Get("/quizzes", middleware.JWTMiddleware, s.listQuizzes)
	apiGroup.Post("/quizzes/:quizId/submit", middleware.JWTMiddleware, s.submitQuiz)

	apiGroup.Get("/blog", s.listPosts)
	apiGroup.Get("/blog/:id", s.postDetail)
}

// Start binds app to an ephemeral localhost port and returns the base URL
// plus a shutdown func.
func Start(app *fiber.App) (string, func() error, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}

	go func() {
		_ = app.Listener(ln)
	}()

	return "http://" + ln.Addr().String(), app.Shutdown, nil
}

func seed() *store {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s := &store{
		accounts: map[uint]*account{
			1: {
				user:     models.User{ID: 1, Name: "Asha Learner", Email: "asha@example.com", Role: "USER", CreatedAt: created},
				password: "password123",
			},
			2: {
				user:     models.User{ID: 2, Name: "Admin Adams", Email: "admin@example.com", Role: "ADMIN", CreatedAt: created},
				password: "adminpass123",
			},
		},
		nextUserID:    3,
		nextCourseID:  4,
		nextContentID: 100,
		enrollments:   map[uint]map[uint]bool{1: {1: true}},
	}

	s.courses = []models.Course{
		{
			ID: 1, Title: "Intro to Go", Description: "Syntax, tooling and the standard library.",
			Price: 0, Duration: 300, Level: "BEGINNER", Category: "Programming", Instructor: "R. Pike",
			Contents: []models.CourseContent{
				{ID: 10, CourseID: 1, Title: "Hello, world", ContentType: "VIDEO", VideoURL: "https://cdn.example.com/go-1.mp4", OrderIndex: 1},
				{ID: 11, CourseID: 1, Title: "Structs and methods", ContentType: "TEXT", OrderIndex: 2},
			},
		},
		{
			ID: 2, Title: "Databases from Scratch", Description: "Storage engines, indexes, transactions.",
			Price: 49.99, Duration: 720, Level: "INTERMEDIATE", Category: "Databases", Instructor: "E. Codd",
		},
		{
			ID: 3, Title: "Distributed Systems", Description: "Consensus, replication, failure modes.",
			Price: 89.99, Duration: 1080, Level: "ADVANCED", Category: "Systems", Instructor: "L. Lamport",
		},
	}

	s.quizzes = []quizFixture{
		{
			quiz: models.Quiz{ID: 1, Title: "Go Basics", CourseID: 1},
			correct: map[uint]string{
				101: "A compiled language",
				102: "go test",
			},
			raw: []rawQuestion{
				// array form
				{ID: 101, Question: "What is Go?", Options: []string{"A compiled language", "An interpreted language", "A database"}},
				// encoded-string form
				{ID: 102, Question: "Which command runs tests?", Options: `["go test","go check","go verify"]`},
			},
		},
		{
			quiz:    models.Quiz{ID: 2, Title: "Broken Fixture", CourseID: 2},
			correct: map[uint]string{201: "B-tree"},
			raw: []rawQuestion{
				// malformed encoding: the client must fall back to no options
				{ID: 201, Question: "Which index structure does SQLite use?", Options: `["B-tree",`},
			},
		},
	}

	s.posts = []models.BlogPost{
		{ID: 1, Title: "Welcome to the platform", Author: "Team", Content: "We are live. Browse the catalog and enroll in your first course today.", CreatedAt: created},
		{ID: 2, Title: "Study habits that stick", Author: "Asha Learner", Content: "Short, regular sessions beat weekend marathons. Here is the routine that worked for our beta cohort across three months of testing.", CreatedAt: created.AddDate(0, 1, 0)},
	}

	return s
}

func (s *store) currentUser(c *fiber.Ctx) *account {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}
	return s.accounts[userID]
}

func (s *store) login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.user.Email, reqData.Email) {
			if acc.password != reqData.Password {
				return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
			}
			token, err := middleware.GenerateJWT(acc.user.ID, acc.user.Name, acc.user.Role, acc.user.Email)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
				"token": token,
				"user":  acc.user,
			})
		}
	}
	return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
}

func (s *store) register(c *fiber.Ctx) error {
	reqData := new(struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// The server, not the client, validates the confirmation match.
	if reqData.Password != reqData.PasswordConfirmation {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"password_confirmation": "Passwords do not match!",
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.user.Email, reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
	}

	user := models.User{
		ID:        s.nextUserID,
		Name:      reqData.Name,
		Email:     reqData.Email,
		Role:      "USER",
		CreatedAt: time.Now().UTC(),
	}
	s.accounts[user.ID] = &account{user: user, password: reqData.Password}
	s.nextUserID++

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (s *store) me(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.currentUser(c)
	if acc == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", acc.user)
}

func (s *store) logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

func (s *store) listCourses(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", s.courses)
}

func (s *store) myCourses(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.currentUser(c)
	if acc == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var mine []models.Course
	for _, course := range s.courses {
		if s.enrollments[acc.user.ID][course.ID] {
			mine = append(mine, course)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", mine)
}

func (s *store) courseDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if course := s.findCourse(uint(id)); course != nil {
		// Detail responses are delivered bare, matching the production
		// backend's inconsistency the client has to tolerate.
		return c.JSON(course)
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
}

func (s *store) enroll(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.currentUser(c)
	if acc == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if s.findCourse(uint(id)) == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if s.enrollments[acc.user.ID] == nil {
		s.enrollments[acc.user.ID] = map[uint]bool{}
	}
	if s.enrollments[acc.user.ID][uint(id)] {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled!", nil)
	}
	s.enrollments[acc.user.ID][uint(id)] = true

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully!", nil)
}

func (s *store) findCourse(id uint) *models.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i]
		}
	}
	return nil
}

func (s *store) listQuizzes(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quizzes := make([]rawQuiz, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		quizzes = append(quizzes, rawQuiz{
			ID:          q.quiz.ID,
			Title:       q.quiz.Title,
			Description: q.quiz.Description,
			CourseID:    q.quiz.CourseID,
			Questions:   q.raw,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

func (s *store) submitQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("quizId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	reqData := new(struct {
		Answers []models.QuizAnswer `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if len(reqData.Answers) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer at least one question!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quizzes {
		if q.quiz.ID != uint(quizID) {
			continue
		}

		correct := 0
		for _, answer := range reqData.Answers {
			if expected, ok := q.correct[answer.QuestionID]; ok && expected == answer.Answer {
				correct++
			}
		}
		total := len(q.correct)
		score := 0
		if total > 0 {
			score = correct * 100 / total
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", models.QuizSubmissionResponse{
			Status:         "graded",
			Score:          score,
			TotalQuestions: total,
			CorrectAnswers: correct,
			Passed:         score >= 60,
		})
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
}

func (s *store) listPosts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.BlogPost, len(s.posts))
	copy(posts, s.posts)
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })

	// The blog surface predates the response envelope and returns bare
	// arrays.
	return c.JSON(posts)
}

func (s *store) postDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid post id!", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.posts {
		if post.ID == uint(id) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
}
