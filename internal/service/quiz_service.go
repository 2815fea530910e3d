package service

import (
	"errors"
	"fmt"
	"time"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo *repository.QuizRepository
	DB       *gorm.DB
}

func NewQuizService(quizRepo *repository.QuizRepository, db *gorm.DB) *QuizService {
	return &QuizService{QuizRepo: quizRepo, DB: db}
}

type OptionInput struct {
	OptionText string `json:"optionText" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
}

type MatchingPairInput struct {
	Prompt       string `json:"prompt" binding:"required"`
	CorrectMatch string `json:"correctMatch" binding:"required"`
}

type QuestionInput struct {
	QuestionType  model.QuestionType  `json:"questionType" binding:"required"`
	Text          string              `json:"text" binding:"required"`
	Points        float64             `json:"points"`
	Position      int                 `json:"position"`
	CorrectAnswer string              `json:"correctAnswer"`
	MediaURL      string              `json:"mediaUrl"`
	MediaDuration float64             `json:"mediaDuration"`
	Options       []OptionInput       `json:"options"`
	MatchingPairs []MatchingPairInput `json:"matchingPairs"`
	SubQuestions  []QuestionInput     `json:"subQuestions"`
}

type CreateQuizRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	ClassName       string          `json:"className"`
	DurationMinutes int             `json:"durationMinutes"`
	StartTime       *time.Time      `json:"startTime"`
	EndTime         *time.Time      `json:"endTime"`
	IsActive        bool            `json:"isActive"`
	Questions       []QuestionInput `json:"questions"`
}

type UpdateQuizRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	ClassName       *string    `json:"className"`
	DurationMinutes *int       `json:"durationMinutes"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	IsActive        *bool      `json:"isActive"`
}

func validateQuestionInput(in *QuestionInput, depth int) error {
	switch in.QuestionType {
	case model.MCQSingleAnswer, model.MCQMultipleAnswers, model.TrueFalse:
		if len(in.Options) == 0 {
			return fmt.Errorf("question %q needs options", in.Text)
		}
	case model.Matching:
		if len(in.MatchingPairs) == 0 {
			return fmt.Errorf("question %q needs matching pairs", in.Text)
		}
	case model.FillInTheBlank, model.ShortAnswer, model.OpenEnded, model.PeerGraded:
	case model.Video, model.Audio:
		if depth > 0 {
			return fmt.Errorf("media question %q cannot be nested", in.Text)
		}
	default:
		return fmt.Errorf("unknown question type %q", in.QuestionType)
	}

	if len(in.SubQuestions) > 0 && !in.QuestionType.HasMedia() {
		return fmt.Errorf("question %q cannot own sub-questions", in.Text)
	}
	for i := range in.SubQuestions {
		if err := validateQuestionInput(&in.SubQuestions[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func buildQuestion(quizID uint, parentID *uint, in *QuestionInput) *model.Question {
	q := &model.Question{
		QuizID:           quizID,
		ParentQuestionID: parentID,
		QuestionType:     in.QuestionType,
		Text:             in.Text,
		Points:           in.Points,
		Position:         in.Position,
		CorrectAnswer:    in.CorrectAnswer,
		MediaURL:         in.MediaURL,
		MediaDuration:    in.MediaDuration,
	}
	if q.Points <= 0 {
		q.Points = 1
	}
	for _, opt := range in.Options {
		q.Options = append(q.Options, model.Option{OptionText: opt.OptionText, IsCorrect: opt.IsCorrect})
	}
	for _, pair := range in.MatchingPairs {
		q.MatchingPairs = append(q.MatchingPairs, model.MatchingPair{Prompt: pair.Prompt, CorrectMatch: pair.CorrectMatch})
	}
	return q
}

// CreateQuiz persists a quiz and its question tree in one transaction. Media
// parents get their id first so children can reference it.
func (s *QuizService) CreateQuiz(creatorID uint, req CreateQuizRequest) (*model.Quiz, error) {
	for i := range req.Questions {
		if err := validateQuestionInput(&req.Questions[i], 0); err != nil {
			return nil, err
		}
	}

	quiz := &model.Quiz{
		Title:           req.Title,
		Description:     req.Description,
		ClassName:       req.ClassName,
		DurationMinutes: req.DurationMinutes,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		IsActive:        req.IsActive,
		CreatorID:       creatorID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range req.Questions {
			in := &req.Questions[i]
			parent := buildQuestion(quiz.ID, nil, in)
			if parent.Position == 0 {
				parent.Position = i + 1
			}
			if err := tx.Create(parent).Error; err != nil {
				return err
			}
			for j := range in.SubQuestions {
				child := buildQuestion(quiz.ID, &parent.ID, &in.SubQuestions[j])
				if child.Position == 0 {
					child.Position = j + 1
				}
				if err := tx.Create(child).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByIDWithQuestions(quiz.ID)
}

func (s *QuizService) GetQuiz(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(id, editorID uint, role model.UserRole, req UpdateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != editorID {
		return nil, util.ErrPermissionDenied
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.ClassName != nil {
		quiz.ClassName = *req.ClassName
	}
	if req.DurationMinutes != nil {
		quiz.DurationMinutes = *req.DurationMinutes
	}
	if req.StartTime != nil {
		quiz.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		quiz.EndTime = req.EndTime
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(id, editorID uint, role model.UserRole) error {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		return util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != editorID {
		return util.ErrPermissionDenied
	}
	return s.QuizRepo.Delete(id)
}

func (s *QuizService) ListQuizzes(className string, activeOnly bool, page, limit int) ([]model.Quiz, int64, error) {
	return s.QuizRepo.List(className, activeOnly, page, limit)
}

func (s *QuizService) ListMyQuizzes(creatorID uint, page, limit int) ([]model.Quiz, int64, error) {
	return s.QuizRepo.ListByCreator(creatorID, page, limit)
}

// AddQuestion appends one question (optionally a media parent with children)
// to an existing quiz.
func (s *QuizService) AddQuestion(quizID, editorID uint, role model.UserRole, in QuestionInput) (*model.Question, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != editorID {
		return nil, util.ErrPermissionDenied
	}
	if err := validateQuestionInput(&in, 0); err != nil {
		return nil, err
	}

	parent := buildQuestion(quizID, nil, &in)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(parent).Error; err != nil {
			return err
		}
		for j := range in.SubQuestions {
			child := buildQuestion(quizID, &parent.ID, &in.SubQuestions[j])
			if child.Position == 0 {
				child.Position = j + 1
			}
			if err := tx.Create(child).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.QuizRepo.FindQuestionByID(parent.ID)
}

// UpdateQuestion replaces a question's fields, options and matching pairs.
func (s *QuizService) UpdateQuestion(questionID, editorID uint, role model.UserRole, in QuestionInput) (*model.Question, error) {
	q, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	quiz, err := s.QuizRepo.FindByID(q.QuizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != editorID {
		return nil, util.ErrPermissionDenied
	}
	if len(in.SubQuestions) > 0 {
		return nil, fmt.Errorf("sub-questions are managed through their own ids")
	}
	if err := validateQuestionInput(&in, 0); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		q.QuestionType = in.QuestionType
		q.Text = in.Text
		q.Points = in.Points
		if q.Points <= 0 {
			q.Points = 1
		}
		if in.Position != 0 {
			q.Position = in.Position
		}
		q.CorrectAnswer = in.CorrectAnswer
		q.MediaURL = in.MediaURL
		q.MediaDuration = in.MediaDuration
		q.Options = nil
		q.MatchingPairs = nil
		if err := tx.Save(q).Error; err != nil {
			return err
		}

		if err := tx.Where("question_id = ?", q.ID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", q.ID).Delete(&model.MatchingPair{}).Error; err != nil {
			return err
		}
		for _, opt := range in.Options {
			row := model.Option{QuestionID: q.ID, OptionText: opt.OptionText, IsCorrect: opt.IsCorrect}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, pair := range in.MatchingPairs {
			row := model.MatchingPair{QuestionID: q.ID, Prompt: pair.Prompt, CorrectMatch: pair.CorrectMatch}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.QuizRepo.FindQuestionByID(q.ID)
}

func (s *QuizService) DeleteQuestion(questionID, editorID uint, role model.UserRole) error {
	q, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return util.ErrQuizNotFound
	}
	quiz, err := s.QuizRepo.FindByID(q.QuizID)
	if err != nil {
		return util.ErrQuizNotFound
	}
	if role != model.Admin && quiz.CreatorID != editorID {
		return util.ErrPermissionDenied
	}
	return s.QuizRepo.DeleteQuestion(questionID)
}
