package models

type Course struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Duration    int64           `json:"duration"` // total minutes
	Level       string          `json:"level"`    // BEGINNER, INTERMEDIATE, ADVANCED
	Category    string          `json:"category,omitempty"`
	Instructor  string          `json:"instructor,omitempty"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
	Contents    []CourseContent `json:"contents,omitempty"`
}

type CourseContent struct {
	ID          uint   `json:"id"`
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type"` // VIDEO, TEXT, MCQ
	VideoURL    string `json:"video_url,omitempty"`
	OrderIndex  int    `json:"order_index"`
}
