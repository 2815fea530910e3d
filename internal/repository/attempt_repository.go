package repository

import (
	"rudasumbwa_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.First(&attempt, id).Error
	return &attempt, err
}

// FindOwned looks an attempt up by id and owner; a miss is indistinguishable
// from an attempt that belongs to someone else.
func (r *AttemptRepository) FindOwned(id, studentID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("id = ? AND student_id = ?", id, studentID).First(&attempt).Error
	return &attempt, err
}

func (r *AttemptRepository) ListAnswers(attemptID uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Order("id asc").Find(&answers).Error
	return answers, err
}

func (r *AttemptRepository) FindAnswerByID(id uint) (*model.StudentAnswer, error) {
	var answer model.StudentAnswer
	err := r.DB.First(&answer, id).Error
	return &answer, err
}

func (r *AttemptRepository) ListByQuiz(quizID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	query := r.DB.Model(&model.QuizAttempt{}).Where("quiz_id = ?", quizID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []model.QuizAttempt
	offset := (page - 1) * limit
	err := query.Preload("Student").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&attempts).Error
	return attempts, total, err
}

// ListPendingReview returns completed attempts of a quiz that still carry
// answers no grader could settle automatically.
func (r *AttemptRepository) ListPendingReview(quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Preload("Student").
		Where("quiz_id = ? AND status = ?", quizID, model.AttemptCompleted).
		Where("EXISTS (SELECT 1 FROM student_answers sa WHERE sa.attempt_id = quiz_attempts.id AND sa.is_correct IS NULL AND sa.deleted_at IS NULL)").
		Order("submitted_at asc").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByStudent(studentID uint, page, limit int) ([]model.QuizAttempt, int64, error) {
	query := r.DB.Model(&model.QuizAttempt{}).Where("student_id = ?", studentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []model.QuizAttempt
	offset := (page - 1) * limit
	err := query.Preload("Quiz").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&attempts).Error
	return attempts, total, err
}
