package service

import (
	"errors"
	"sort"

	"rudasumbwa_backend/internal/model"
	"rudasumbwa_backend/internal/util"

	"gorm.io/gorm"
)

// OptionView hides the correct flag from students; it is only populated for
// graders.
type OptionView struct {
	ID         uint   `json:"id"`
	OptionText string `json:"optionText"`
	IsCorrect  *bool  `json:"isCorrect,omitempty"`
}

type MatchingPairView struct {
	ID           uint   `json:"id"`
	Prompt       string `json:"prompt"`
	CorrectMatch string `json:"correctMatch,omitempty"`
}

type AnswerView struct {
	ID               uint    `json:"id"`
	SelectedOptionID *uint   `json:"selectedOptionId,omitempty"`
	AnswerText       string  `json:"answerText,omitempty"`
	IsCorrect        *bool   `json:"isCorrect"`
	Score            float64 `json:"score"`
	TeacherFeedback  string  `json:"teacherFeedback,omitempty"`
}

// QuestionView is one node of the two-level attempt tree: media questions
// carry their sub-questions, every node carries the answers given to it.
type QuestionView struct {
	ID            uint               `json:"id"`
	QuestionType  model.QuestionType `json:"questionType"`
	Text          string             `json:"text"`
	Points        float64            `json:"points"`
	Position      int                `json:"position"`
	MediaURL      string             `json:"mediaUrl,omitempty"`
	MediaDuration float64            `json:"mediaDuration,omitempty"`
	CorrectAnswer string             `json:"correctAnswer,omitempty"`
	Options       []OptionView       `json:"options,omitempty"`
	MatchingPairs []MatchingPairView `json:"matchingPairs,omitempty"`
	Answers       []AnswerView       `json:"answers"`
	SubQuestions  []QuestionView     `json:"subQuestions,omitempty"`
}

type AttemptDetail struct {
	ID          uint           `json:"id"`
	QuizID      uint           `json:"quizId"`
	QuizTitle   string         `json:"quizTitle"`
	StudentID   uint           `json:"studentId"`
	Score       *float64       `json:"score"`
	Status      string         `json:"status"`
	IsCompleted bool           `json:"isCompleted"`
	StartedAt   string         `json:"startedAt"`
	SubmittedAt string         `json:"submittedAt,omitempty"`
	Questions   []QuestionView `json:"questions"`
}

// GetAttemptDetail assembles the full attempt view. Students only see their
// own attempts and never the answer keys; a quiz creator or admin sees keys
// and verdicts.
func (s *QuizAttemptService) GetAttemptDetail(attemptID uint, requester *util.Claims) (*AttemptDetail, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(attempt.QuizID)
	if err != nil {
		return nil, err
	}

	includeKeys := false
	switch requester.Role {
	case model.Student:
		if attempt.StudentID != requester.UserID {
			return nil, util.ErrPermissionDenied
		}
	case model.Teacher:
		if quiz.CreatorID != requester.UserID {
			return nil, util.ErrPermissionDenied
		}
		includeKeys = true
	case model.Admin:
		includeKeys = true
	default:
		return nil, util.ErrPermissionDenied
	}

	questions, err := s.QuizRepo.ListQuestionsFlat(attempt.QuizID)
	if err != nil {
		return nil, err
	}
	answers, err := s.AttemptRepo.ListAnswers(attempt.ID)
	if err != nil {
		return nil, err
	}

	detail := &AttemptDetail{
		ID:          attempt.ID,
		QuizID:      attempt.QuizID,
		QuizTitle:   quiz.Title,
		StudentID:   attempt.StudentID,
		Score:       attempt.Score,
		Status:      attempt.Status,
		IsCompleted: attempt.IsCompleted,
		StartedAt:   attempt.StartedAt.Format("2006-01-02 15:04:05"),
		Questions:   buildAttemptTree(questions, answers, includeKeys),
	}
	if attempt.SubmittedAt != nil {
		detail.SubmittedAt = attempt.SubmittedAt.Format("2006-01-02 15:04:05")
	}
	return detail, nil
}

// buildAttemptTree merges a flat question list and the attempt's answers into
// the two-level tree: root questions ordered by position then id, children
// nested under their media parent in the same order. Answers keep their
// insertion order, so a resubmitted attempt shows every row it produced.
func buildAttemptTree(questions []model.Question, answers []model.StudentAnswer, includeKeys bool) []QuestionView {
	answersByQuestion := make(map[uint][]AnswerView)
	for _, a := range answers {
		answersByQuestion[a.QuestionID] = append(answersByQuestion[a.QuestionID], AnswerView{
			ID:               a.ID,
			SelectedOptionID: a.SelectedOptionID,
			AnswerText:       a.AnswerText,
			IsCorrect:        a.IsCorrect,
			Score:            a.Score,
			TeacherFeedback:  a.TeacherFeedback,
		})
	}

	childrenByParent := make(map[uint][]*model.Question)
	var roots []*model.Question
	for i := range questions {
		q := &questions[i]
		if q.ParentQuestionID != nil {
			childrenByParent[*q.ParentQuestionID] = append(childrenByParent[*q.ParentQuestionID], q)
		} else {
			roots = append(roots, q)
		}
	}
	sortQuestionPtrs(roots)

	views := make([]QuestionView, 0, len(roots))
	for _, root := range roots {
		view := questionToView(root, answersByQuestion, includeKeys)
		children := childrenByParent[root.ID]
		sortQuestionPtrs(children)
		for _, child := range children {
			view.SubQuestions = append(view.SubQuestions, questionToView(child, answersByQuestion, includeKeys))
		}
		views = append(views, view)
	}
	return views
}

func sortQuestionPtrs(qs []*model.Question) {
	sort.SliceStable(qs, func(i, j int) bool {
		if qs[i].Position != qs[j].Position {
			return qs[i].Position < qs[j].Position
		}
		return qs[i].ID < qs[j].ID
	})
}

func questionToView(q *model.Question, answersByQuestion map[uint][]AnswerView, includeKeys bool) QuestionView {
	view := QuestionView{
		ID:            q.ID,
		QuestionType:  q.QuestionType,
		Text:          q.Text,
		Points:        q.Points,
		Position:      q.Position,
		MediaURL:      q.MediaURL,
		MediaDuration: q.MediaDuration,
		Answers:       answersByQuestion[q.ID],
	}
	if view.Answers == nil {
		view.Answers = []AnswerView{}
	}
	if includeKeys {
		view.CorrectAnswer = q.CorrectAnswer
	}

	for _, opt := range q.Options {
		ov := OptionView{ID: opt.ID, OptionText: opt.OptionText}
		if includeKeys {
			v := opt.IsCorrect
			ov.IsCorrect = &v
		}
		view.Options = append(view.Options, ov)
	}
	for _, pair := range q.MatchingPairs {
		pv := MatchingPairView{ID: pair.ID, Prompt: pair.Prompt}
		if includeKeys {
			pv.CorrectMatch = pair.CorrectMatch
		}
		view.MatchingPairs = append(view.MatchingPairs, pv)
	}
	return view
}
