package models

import (
	"encoding/json"
	"log"
)

// OptionList is the answer options of one quiz question. The backend delivers
// this field either as a JSON array of strings or as a JSON string containing
// an encoded array; both forms decode into a plain []string here, exactly
// once. A malformed encoding yields an empty list instead of failing the
// whole quiz fetch.
type OptionList []string

func (o *OptionList) UnmarshalJSON(data []byte) error {
	var options []string
	if err := json.Unmarshal(data, &options); err == nil {
		*o = options
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		log.Printf("quiz: unrecognized options payload: %s", string(data))
		*o = OptionList{}
		return nil
	}

	if err := json.Unmarshal([]byte(encoded), &options); err != nil {
		log.Printf("quiz: malformed options encoding %q: %v", encoded, err)
		*o = OptionList{}
		return nil
	}
	*o = options
	return nil
}

type Quiz struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CourseID    uint           `json:"course_id,omitempty"`
	Questions   []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	ID       uint       `json:"id"`
	Question string     `json:"question"`
	Options  OptionList `json:"options"`
}

// QuizAnswer is one entry of a submission payload.
type QuizAnswer struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// QuizSubmissionResponse is the server-side grading result of a submission.
type QuizSubmissionResponse struct {
	Status         string `json:"status"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
	Passed         bool   `json:"passed"`
}
