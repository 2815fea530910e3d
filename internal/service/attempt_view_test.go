package service

import (
	"testing"

	"rudasumbwa_backend/internal/model"
)

func question(id uint, parent *uint, qType model.QuestionType, position int) model.Question {
	return model.Question{
		BaseModel:        model.BaseModel{ID: id},
		ParentQuestionID: parent,
		QuestionType:     qType,
		Text:             "q",
		Points:           1,
		Position:         position,
	}
}

func TestBuildAttemptTreeOrdering(t *testing.T) {
	parentID := uint(3)
	questions := []model.Question{
		question(1, nil, model.MCQSingleAnswer, 2),
		question(2, nil, model.FillInTheBlank, 1),
		question(3, nil, model.Video, 3),
		question(4, &parentID, model.ShortAnswer, 2),
		question(5, &parentID, model.TrueFalse, 1),
	}

	tree := buildAttemptTree(questions, nil, false)

	if len(tree) != 3 {
		t.Fatalf("expected 3 root questions, got %d", len(tree))
	}
	if tree[0].ID != 2 || tree[1].ID != 1 || tree[2].ID != 3 {
		t.Fatalf("roots out of order: %d, %d, %d", tree[0].ID, tree[1].ID, tree[2].ID)
	}

	media := tree[2]
	if len(media.SubQuestions) != 2 {
		t.Fatalf("expected 2 sub-questions, got %d", len(media.SubQuestions))
	}
	if media.SubQuestions[0].ID != 5 || media.SubQuestions[1].ID != 4 {
		t.Fatalf("children out of order: %d, %d", media.SubQuestions[0].ID, media.SubQuestions[1].ID)
	}
	for _, child := range media.SubQuestions {
		if len(child.SubQuestions) != 0 {
			t.Fatalf("children must not nest further")
		}
	}
}

func TestBuildAttemptTreeTiesBreakOnID(t *testing.T) {
	questions := []model.Question{
		question(9, nil, model.MCQSingleAnswer, 1),
		question(4, nil, model.MCQSingleAnswer, 1),
	}

	tree := buildAttemptTree(questions, nil, false)
	if tree[0].ID != 4 || tree[1].ID != 9 {
		t.Fatalf("tie not broken by id: %d, %d", tree[0].ID, tree[1].ID)
	}
}

func TestBuildAttemptTreeMergesAnswers(t *testing.T) {
	questions := []model.Question{
		question(1, nil, model.MCQSingleAnswer, 1),
		question(2, nil, model.ShortAnswer, 2),
	}
	score := 2.0
	answers := []model.StudentAnswer{
		{BaseModel: model.BaseModel{ID: 10}, QuestionID: 1, IsCorrect: boolPtr(true), Score: score},
		{BaseModel: model.BaseModel{ID: 11}, QuestionID: 2, AnswerText: "essay", IsCorrect: nil},
		{BaseModel: model.BaseModel{ID: 12}, QuestionID: 1, IsCorrect: boolPtr(false)},
	}

	tree := buildAttemptTree(questions, answers, false)

	if len(tree[0].Answers) != 2 {
		t.Fatalf("resubmitted rows must both appear, got %d", len(tree[0].Answers))
	}
	if tree[0].Answers[0].ID != 10 || tree[0].Answers[1].ID != 12 {
		t.Fatalf("answers must keep insertion order")
	}
	if tree[1].Answers[0].IsCorrect != nil {
		t.Fatalf("pending answer must keep nil verdict")
	}
	if tree[1].Answers[0].Score != 0 {
		t.Fatalf("pending answer must score 0")
	}
}

func TestBuildAttemptTreeHidesKeysFromStudents(t *testing.T) {
	q := question(1, nil, model.MCQSingleAnswer, 1)
	q.CorrectAnswer = "secret"
	q.Options = []model.Option{
		{BaseModel: model.BaseModel{ID: 1}, OptionText: "a", IsCorrect: true},
	}
	q.MatchingPairs = []model.MatchingPair{
		{Prompt: "p", CorrectMatch: "m"},
	}

	studentView := buildAttemptTree([]model.Question{q}, nil, false)
	if studentView[0].CorrectAnswer != "" {
		t.Fatalf("student view leaked the answer key")
	}
	if studentView[0].Options[0].IsCorrect != nil {
		t.Fatalf("student view leaked the option flag")
	}
	if studentView[0].MatchingPairs[0].CorrectMatch != "" {
		t.Fatalf("student view leaked the matching key")
	}

	graderView := buildAttemptTree([]model.Question{q}, nil, true)
	if graderView[0].CorrectAnswer != "secret" {
		t.Fatalf("grader view must include the answer key")
	}
	if graderView[0].Options[0].IsCorrect == nil || !*graderView[0].Options[0].IsCorrect {
		t.Fatalf("grader view must include the option flag")
	}
	if graderView[0].MatchingPairs[0].CorrectMatch != "m" {
		t.Fatalf("grader view must include the matching key")
	}
}
