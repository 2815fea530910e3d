package model

import "time"

// QuestionType is a closed enum; grading switches over it exhaustively and
// anything outside the list falls into a named needs-review default.
type QuestionType string

const (
	MCQSingleAnswer    QuestionType = "MCQ_single_answer"
	MCQMultipleAnswers QuestionType = "MCQ_multiple_answers"
	TrueFalse          QuestionType = "True/False"
	FillInTheBlank     QuestionType = "Fill-in-the-Blank"
	ShortAnswer        QuestionType = "Short_Answer"
	OpenEnded          QuestionType = "Open-ended"
	PeerGraded         QuestionType = "Peer-Graded"
	Matching           QuestionType = "Matching"
	Video              QuestionType = "Video"
	Audio              QuestionType = "Audio"
)

// HasMedia reports whether the type is a media parent that owns sub-questions.
func (t QuestionType) HasMedia() bool {
	return t == Video || t == Audio
}

// AutoGradable reports whether the grader can settle the answer without a teacher.
func (t QuestionType) AutoGradable() bool {
	switch t {
	case MCQSingleAnswer, MCQMultipleAnswers, TrueFalse, FillInTheBlank, Matching:
		return true
	default:
		return false
	}
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	ClassName       string     `gorm:"size:50;index" json:"className"`
	DurationMinutes int        `gorm:"default:0" json:"durationMinutes"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	IsActive        bool       `gorm:"default:false" json:"isActive"`
	CreatorID       uint       `gorm:"index;type:bigint unsigned" json:"creatorId"`
	Questions       []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID uint `gorm:"index;type:bigint unsigned" json:"quizId"`
	// Sub-questions under a Video/Audio question carry the parent id; the tree
	// is two levels deep, children never have children.
	ParentQuestionID *uint          `gorm:"index;type:bigint unsigned" json:"parentQuestionId,omitempty"`
	QuestionType     QuestionType   `gorm:"size:50;not null" json:"questionType"`
	Text             string         `gorm:"type:text;not null" json:"text"`
	Points           float64        `gorm:"default:1" json:"points"`
	CorrectAnswer    string         `gorm:"type:text" json:"correctAnswer,omitempty"`
	Position         int            `gorm:"default:0" json:"position"`
	MediaURL         string         `gorm:"size:500" json:"mediaUrl,omitempty"`
	MediaDuration    float64        `gorm:"default:0" json:"mediaDuration,omitempty"`
	Options          []Option       `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
	MatchingPairs    []MatchingPair `gorm:"foreignKey:QuestionID" json:"matchingPairs,omitempty"`
	SubQuestions     []Question     `gorm:"foreignKey:ParentQuestionID" json:"subQuestions,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	OptionText string `gorm:"type:text;not null" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Option) TableName() string {
	return "options"
}

// swagger:model MatchingPair
type MatchingPair struct {
	BaseModel
	QuestionID   uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Prompt       string `gorm:"size:500;not null" json:"prompt"`
	CorrectMatch string `gorm:"size:500;not null" json:"correctMatch"`
}

func (MatchingPair) TableName() string {
	return "matching_pairs"
}
