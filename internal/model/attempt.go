package model

import "time"

// Attempt lifecycle. fully_graded is a computed status refreshed whenever a
// pending answer gets a teacher score; there is no transition back to in_progress.
const (
	AttemptInProgress  = "in_progress"
	AttemptCompleted   = "completed"
	AttemptFullyGraded = "fully_graded"
)

// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	QuizID      uint            `gorm:"index;type:bigint unsigned" json:"quizId"`
	Quiz        *Quiz           `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	StudentID   uint            `gorm:"index;type:bigint unsigned" json:"studentId"`
	Student     *User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Score       *float64        `json:"score"`
	IsCompleted bool            `gorm:"default:false" json:"isCompleted"`
	Status      string          `gorm:"size:20;default:'in_progress'" json:"status"`
	StartedAt   time.Time       `json:"startedAt"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
	Answers     []StudentAnswer `gorm:"foreignKey:AttemptID" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// StudentAnswer holds one graded answer. IsCorrect is tri-state: nil means
// the grader could not settle it and a teacher has to review; until then the
// score stays 0.
// swagger:model StudentAnswer
type StudentAnswer struct {
	BaseModel
	AttemptID        uint    `gorm:"index;type:bigint unsigned" json:"attemptId"`
	QuestionID       uint    `gorm:"index;type:bigint unsigned" json:"questionId"`
	SelectedOptionID *uint   `gorm:"type:bigint unsigned" json:"selectedOptionId,omitempty"`
	AnswerText       string  `gorm:"type:text" json:"answerText,omitempty"`
	IsCorrect        *bool   `json:"isCorrect"`
	Score            float64 `gorm:"default:0" json:"score"`
	TeacherFeedback  string  `gorm:"type:text" json:"teacherFeedback,omitempty"`
}

func (StudentAnswer) TableName() string {
	return "student_answers"
}

// LeaderboardEntry keeps one row per (quiz, student); submissions upsert it
// last-writer-wins.
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	BaseModel
	QuizID    uint    `gorm:"uniqueIndex:idx_quiz_student;type:bigint unsigned" json:"quizId"`
	StudentID uint    `gorm:"uniqueIndex:idx_quiz_student;type:bigint unsigned" json:"studentId"`
	Score     float64 `gorm:"default:0" json:"score"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}
