package service

import (
	"errors"
	"time"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/util"
	"rudasumbwa_backend/pkg/logger"
	"rudasumbwa_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizAttemptService struct {
	AttemptRepo *repository.AttemptRepository
	QuizRepo    *repository.QuizRepository
	Leaderboard *LeaderboardService
	DB          *gorm.DB
}

func NewQuizAttemptService(
	attemptRepo *repository.AttemptRepository,
	quizRepo *repository.QuizRepository,
	leaderboard *LeaderboardService,
	db *gorm.DB,
) *QuizAttemptService {
	return &QuizAttemptService{
		AttemptRepo: attemptRepo,
		QuizRepo:    quizRepo,
		Leaderboard: leaderboard,
		DB:          db,
	}
}

// StartAttempt opens an in_progress attempt. Missing, unpublished and
// out-of-window quizzes all look the same to the caller: not found.
func (s *QuizAttemptService) StartAttempt(quizID, studentID uint) (*model.QuizAttempt, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if !quiz.IsActive {
		return nil, util.ErrQuizNotFound
	}
	now := time.Now()
	if quiz.StartTime != nil && now.Before(*quiz.StartTime) {
		return nil, util.ErrQuizNotFound
	}
	if quiz.EndTime != nil && now.After(*quiz.EndTime) {
		return nil, util.ErrQuizNotFound
	}

	attempt := &model.QuizAttempt{
		QuizID:    quizID,
		StudentID: studentID,
		Status:    model.AttemptInProgress,
		StartedAt: now,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SubmitAnswers grades and persists a submission in one transaction: every
// answer row, the attempt total and the leaderboard upsert commit together or
// not at all. A submitted answer that references no known question degrades
// to a wrong/zero row with a warning instead of failing the submission.
//
// Resubmitting a completed attempt is not rejected; it appends fresh answer
// rows and overwrites the total with this submission's sum.
func (s *QuizAttemptService) SubmitAnswers(attemptID, studentID uint, answers []SubmittedAnswer) (float64, error) {
	attempt, err := s.AttemptRepo.FindOwned(attemptID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrAttemptNotFound
		}
		return 0, err
	}

	questions, err := s.QuizRepo.ListQuestionsFlat(attempt.QuizID)
	if err != nil {
		return 0, err
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	var total float64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, sub := range answers {
			row := model.StudentAnswer{
				AttemptID:        attempt.ID,
				QuestionID:       sub.QuestionID,
				SelectedOptionID: sub.SelectedOptionID,
				AnswerText:       sub.AnswerText,
			}

			q, ok := byID[sub.QuestionID]
			if !ok {
				f := false
				row.IsCorrect = &f
				logger.Log.Warn("submitted answer references unknown question",
					zap.Uint("attemptId", attempt.ID),
					zap.Uint("questionId", sub.QuestionID))
			} else {
				result := GradeAnswer(q, sub)
				row.IsCorrect = result.IsCorrect
				row.Score = result.Score
				if result.Reason == ReasonMissingOption {
					logger.Log.Warn("submitted answer references unknown option",
						zap.Uint("attemptId", attempt.ID),
						zap.Uint("questionId", sub.QuestionID))
				}
			}

			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			if row.IsCorrect != nil {
				total += row.Score
			}
		}

		now := time.Now()
		attempt.Score = &total
		attempt.IsCompleted = true
		attempt.SubmittedAt = &now

		status, err := computeAttemptStatus(tx, attempt.ID)
		if err != nil {
			return err
		}
		attempt.Status = status

		if err := tx.Save(attempt).Error; err != nil {
			return err
		}

		// One leaderboard write per successful submission, after the attempt
		// score, inside the same transaction.
		return s.Leaderboard.Upsert(tx, attempt.QuizID, studentID, total)
	})

	if err != nil {
		monitoring.SubmissionCounter.WithLabelValues("error").Inc()
		return 0, err
	}
	monitoring.SubmissionCounter.WithLabelValues("ok").Inc()
	return total, nil
}

type ManualGradeRequest struct {
	Score           *float64 `json:"score" binding:"required"`
	TeacherFeedback string   `json:"teacherFeedback"`
	IsCorrect       *bool    `json:"isCorrect"`
}

// GradeStudentAnswer applies a teacher verdict to one answer and brings the
// attempt total, its status and the leaderboard entry back in line, all in
// one transaction.
func (s *QuizAttemptService) GradeStudentAnswer(answerID, graderID uint, role model.UserRole, req ManualGradeRequest) (float64, error) {
	answer, err := s.AttemptRepo.FindAnswerByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrAnswerNotFound
		}
		return 0, err
	}

	attempt, err := s.AttemptRepo.FindByID(answer.AttemptID)
	if err != nil {
		return 0, err
	}
	quiz, err := s.QuizRepo.FindByID(attempt.QuizID)
	if err != nil {
		return 0, err
	}
	if role != model.Admin && quiz.CreatorID != graderID {
		return 0, util.ErrPermissionDenied
	}

	isCorrect := req.IsCorrect
	if isCorrect == nil {
		// No explicit verdict: a positive score settles the answer as correct.
		v := *req.Score > 0
		isCorrect = &v
	}

	var newTotal float64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		answer.Score = *req.Score
		answer.TeacherFeedback = req.TeacherFeedback
		answer.IsCorrect = isCorrect
		if err := tx.Save(answer).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.StudentAnswer{}).
			Where("attempt_id = ?", attempt.ID).
			Select("COALESCE(SUM(score), 0)").
			Scan(&newTotal).Error; err != nil {
			return err
		}

		status, err := computeAttemptStatus(tx, attempt.ID)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.QuizAttempt{}).
			Where("id = ?", attempt.ID).
			Updates(map[string]interface{}{"score": newTotal, "status": status}).Error; err != nil {
			return err
		}

		// Post-review corrections flow through to the leaderboard.
		return s.Leaderboard.Upsert(tx, attempt.QuizID, attempt.StudentID, newTotal)
	})
	if err != nil {
		return 0, err
	}
	return newTotal, nil
}

// computeAttemptStatus derives the explicit attempt status: completed while
// any answer still waits for review, fully_graded once none do.
func computeAttemptStatus(tx *gorm.DB, attemptID uint) (string, error) {
	var pending int64
	err := tx.Model(&model.StudentAnswer{}).
		Where("attempt_id = ? AND is_correct IS NULL", attemptID).
		Count(&pending).Error
	if err != nil {
		return "", err
	}
	if pending > 0 {
		return model.AttemptCompleted, nil
	}
	return model.AttemptFullyGraded, nil
}

// ListPendingReview lists completed attempts of a quiz that still hold
// unreviewed answers, for the grading queue. Only the quiz creator (or an
// admin) may see it.
func (s *QuizAttemptService) ListPendingReview(quizID, teacherID uint, role model.UserRole) ([]model.QuizAttempt, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != teacherID {
		return nil, util.ErrPermissionDenied
	}
	return s.AttemptRepo.ListPendingReview(quizID)
}

func (s *QuizAttemptService) ListMyAttempts(studentID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	return s.AttemptRepo.ListByStudent(studentID, page, limit)
}

// ListQuizAttempts pages through every attempt on a quiz for its creator.
func (s *QuizAttemptService) ListQuizAttempts(quizID, teacherID uint, role model.UserRole, page, limit int) ([]model.QuizAttempt, int64, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, 0, util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != teacherID {
		return nil, 0, util.ErrPermissionDenied
	}
	return s.AttemptRepo.ListByQuiz(quizID, page, limit)
}
