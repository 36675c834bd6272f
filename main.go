package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"lms/api"
	"lms/config"
	"lms/services/authService"
	"lms/services/blogService"
	"lms/services/courseService"
	"lms/services/quizService"
	"lms/session"
	"lms/utils"
)

// app bundles the wired client, used by every subcommand.
type app struct {
	client  *api.Client
	session *session.Manager
	courses *courseService.CourseService
	quizzes *quizService.QuizService
	blog    *blogService.BlogService
}

func main() {
	config.LoadConfig()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	client := api.New(config.AppConfig.ApiBaseUrl, time.Duration(config.AppConfig.HttpTimeoutSeconds)*time.Second)

	store, err := session.OpenStore(config.AppConfig.SessionDb)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	a := &app{
		client:  client,
		session: session.NewManager(client, authService.New(client), store),
		courses: courseService.New(client),
		quizzes: quizService.New(client),
		blog:    blogService.New(client),
	}

	if err := a.session.Hydrate(); err != nil {
		log.Printf("Warning: could not restore session: %v", err)
	}

	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "login":
		return a.login(args)
	case "logout":
		a.session.Logout()
		fmt.Println("Logged out.")
		return nil
	case "signup":
		return a.signup(args)
	case "me":
		return a.me()
	case "courses":
		return a.listCourses()
	case "my":
		return a.myCourses()
	case "course":
		return a.courseDetail(args)
	case "enroll":
		return a.enroll(args)
	case "quizzes":
		return a.listQuizzes()
	case "blog":
		return a.listBlog()
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: lms <command> [flags]

Commands:
  login    -email -password      Sign in and persist the session
  signup   -name -email -password -confirm
  logout                         Clear the local session
  me                             Show the signed-in user
  courses                        List the course catalog
  my                             List enrolled courses
  course   <id>                  Show one course
  enroll   <id>                  Enroll in a course
  quizzes                        List available quizzes
  blog                           List blog posts`)
}

func (a *app) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.session.Login(*email, *password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Signed in as %s\n", a.session.User().Name)
	return nil
}

func (a *app) signup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	confirm := fs.String("confirm", "", "password confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err := a.session.Signup(authService.RegisterRequest{
		Name:                 *name,
		Email:                *email,
		Password:             *password,
		PasswordConfirmation: *confirm,
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	fmt.Printf("Welcome, %s\n", a.session.User().Name)
	return nil
}

func (a *app) me() error {
	if !a.session.IsAuthenticated() {
		if a.session.Offline() {
			if cached := a.session.CachedUser(); cached != nil {
				fmt.Printf("Offline. Last signed in as %s <%s>\n", cached.Name, cached.Email)
				return nil
			}
		}
		fmt.Println("Not signed in.")
		return nil
	}
	user := a.session.User()
	fmt.Printf("%s <%s> role=%s since %s\n", user.Name, user.Email, user.Role, user.CreatedAt.Format("2006-01-02"))
	return nil
}

func (a *app) listCourses() error {
	courses, err := a.courses.List()
	if err != nil {
		return err
	}
	for _, course := range courses {
		fmt.Printf("%3d  %-30s %-12s %8s  %s\n",
			course.ID, course.Title, course.Level,
			utils.FormatPrice(course.Price), utils.FormatDuration(course.Duration))
	}
	return nil
}

func (a *app) myCourses() error {
	courses, err := a.courses.My()
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Println("No enrollments yet.")
		return nil
	}
	for _, course := range courses {
		fmt.Printf("%3d  %s\n", course.ID, course.Title)
	}
	return nil
}

func (a *app) courseDetail(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	course, err := a.courses.Get(id)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s, %s)\n%s\n", course.Title, course.Level, utils.FormatDuration(course.Duration), course.Description)
	for _, content := range course.Contents {
		fmt.Printf("  %2d. [%s] %s\n", content.OrderIndex, content.ContentType, content.Title)
	}
	return nil
}

func (a *app) enroll(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.courses.Enroll(id); err != nil {
		return fmt.Errorf("enrollment failed: %w", err)
	}
	fmt.Println("Enrolled.")
	return nil
}

func (a *app) listQuizzes() error {
	quizzes, err := a.quizzes.Quizzes()
	if err != nil {
		return err
	}
	for _, quiz := range quizzes {
		fmt.Printf("%3d  %s (%d questions)\n", quiz.ID, quiz.Title, len(quiz.Questions))
	}
	return nil
}

func (a *app) listBlog() error {
	posts, err := a.blog.Posts()
	if err != nil {
		return err
	}
	for _, post := range posts {
		badge := ""
		if utils.PostedThisWeek(post.CreatedAt) {
			badge = " [new]"
		}
		fmt.Printf("%3d  %s by %s%s\n     %s\n", post.ID, post.Title, post.Author, badge, post.Excerpt(80))
	}
	return nil
}

func parseID(args []string) (uint, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return uint(id), nil
}
