package quizService

import (
	"fmt"
	"log"
	"sort"

	"lms/api"
	"lms/models"
)

type QuizService struct {
	client *api.Client
}

func New(client *api.Client) *QuizService {
	return &QuizService{client: client}
}

// SubmissionError is returned when the server rejects a quiz submission, so
// callers can surface it distinctly instead of treating it as success.
type SubmissionError struct {
	QuizID uint
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("quiz %d: submission failed: %v", e.QuizID, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Quizzes fetches all quizzes for the current user. Question options arrive
// already normalized to string slices; see models.OptionList.
func (s *QuizService) Quizzes() ([]models.Quiz, error) {
	body, err := s.client.Get(api.EndpointQuizzes(), true)
	if err != nil {
		return nil, err
	}

	var quizzes []models.Quiz
	if err := api.UnmarshalList(body, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

type submission struct {
	Answers []models.QuizAnswer `json:"answers"`
}

// Submit posts the given question→answer mapping for grading. The wire
// format is an ordered list of {question_id, answer} pairs, in ascending
// question id order so the payload is deterministic.
func (s *QuizService) Submit(quizID uint, answers map[uint]string) (*models.QuizSubmissionResponse, error) {
	ids := make([]uint, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	payload := submission{Answers: make([]models.QuizAnswer, 0, len(ids))}
	for _, id := range ids {
		payload.Answers = append(payload.Answers, models.QuizAnswer{QuestionID: id, Answer: answers[id]})
	}

	body, err := s.client.Post(api.EndpointQuizSubmit(quizID), payload, true)
	if err != nil {
		if reqErr, ok := api.IsRequestError(err); ok {
			log.Printf("quiz %d: server rejected submission (%d): %s", quizID, reqErr.StatusCode, reqErr.Body.Message)
		}
		return nil, &SubmissionError{QuizID: quizID, Err: err}
	}

	var result models.QuizSubmissionResponse
	if err := api.UnmarshalData(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
