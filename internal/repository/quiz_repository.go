package repository

import (
	"rudasumbwa_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

// FindByIDWithQuestions loads the quiz with its full question tree context:
// options, matching pairs and (for media questions) sub-questions.
func (r *QuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("parent_question_id IS NULL").Order("position asc, id asc")
		}).
		Preload("Questions.Options").
		Preload("Questions.MatchingPairs").
		Preload("Questions.SubQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Preload("Questions.SubQuestions.Options").
		Preload("Questions.SubQuestions.MatchingPairs").
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("quiz_id = ?", id).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Option{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.MatchingPair{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}

func (r *QuizRepository) List(className string, activeOnly bool, page, limit int) ([]model.Quiz, int64, error) {
	query := r.DB.Model(&model.Quiz{})
	if className != "" {
		query = query.Where("class_name = ?", className)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []model.Quiz
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&quizzes).Error
	return quizzes, total, err
}

func (r *QuizRepository) ListByCreator(creatorID uint, page, limit int) ([]model.Quiz, int64, error) {
	query := r.DB.Model(&model.Quiz{}).Where("creator_id = ?", creatorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quizzes []model.Quiz
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&quizzes).Error
	return quizzes, total, err
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Preload("Options").Preload("MatchingPairs").First(&q, id).Error
	return &q, err
}

func (r *QuizRepository) DeleteQuestion(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.MatchingPair{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_question_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

// ListQuestionsFlat returns every question of a quiz, parents and children,
// with options and matching pairs attached.
func (r *QuizRepository) ListQuestionsFlat(quizID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.
		Preload("Options").
		Preload("MatchingPairs").
		Where("quiz_id = ?", quizID).
		Order("position asc, id asc").
		Find(&qs).Error
	return qs, err
}
