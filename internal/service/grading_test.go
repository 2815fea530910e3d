package service

import (
	"testing"

	"rudasumbwa_backend/internal/model"
)

func optionQuestion(qType model.QuestionType, points float64) *model.Question {
	q := &model.Question{
		QuestionType: qType,
		Text:         "pick one",
		Points:       points,
	}
	q.Options = []model.Option{
		{BaseModel: model.BaseModel{ID: 1}, OptionText: "right", IsCorrect: true},
		{BaseModel: model.BaseModel{ID: 2}, OptionText: "wrong", IsCorrect: false},
	}
	return q
}

func matchingQuestion(points float64) *model.Question {
	return &model.Question{
		QuestionType: model.Matching,
		Text:         "match capitals",
		Points:       points,
		MatchingPairs: []model.MatchingPair{
			{Prompt: "Rwanda", CorrectMatch: "Kigali"},
			{Prompt: "Kenya", CorrectMatch: "Nairobi"},
			{Prompt: "Uganda", CorrectMatch: "Kampala"},
		},
	}
}

func uintPtr(v uint) *uint { return &v }

func assertVerdict(t *testing.T, got GradeResult, wantCorrect *bool, wantScore float64, wantReason string) {
	t.Helper()
	if (got.IsCorrect == nil) != (wantCorrect == nil) {
		t.Fatalf("IsCorrect nil mismatch: got %v, want %v", got.IsCorrect, wantCorrect)
	}
	if got.IsCorrect != nil && *got.IsCorrect != *wantCorrect {
		t.Fatalf("IsCorrect = %v, want %v", *got.IsCorrect, *wantCorrect)
	}
	if got.Score != wantScore {
		t.Fatalf("Score = %v, want %v", got.Score, wantScore)
	}
	if got.Reason != wantReason {
		t.Fatalf("Reason = %q, want %q", got.Reason, wantReason)
	}
	if got.IsCorrect == nil && got.Score != 0 {
		t.Fatalf("needs-review answer must score 0, got %v", got.Score)
	}
}

func boolPtr(v bool) *bool { return &v }

func TestGradeAnswerOptionChoice(t *testing.T) {
	tests := []struct {
		name        string
		qType       model.QuestionType
		points      float64
		sub         SubmittedAnswer
		wantCorrect *bool
		wantScore   float64
		wantReason  string
	}{
		{
			name:        "correct option earns full points",
			qType:       model.MCQSingleAnswer,
			points:      5,
			sub:         SubmittedAnswer{SelectedOptionID: uintPtr(1)},
			wantCorrect: boolPtr(true),
			wantScore:   5,
			wantReason:  ReasonCorrect,
		},
		{
			name:        "wrong option scores zero",
			qType:       model.MCQSingleAnswer,
			points:      5,
			sub:         SubmittedAnswer{SelectedOptionID: uintPtr(2)},
			wantCorrect: boolPtr(false),
			wantScore:   0,
			wantReason:  ReasonWrong,
		},
		{
			name:        "no option selected",
			qType:       model.TrueFalse,
			points:      2,
			sub:         SubmittedAnswer{},
			wantCorrect: boolPtr(false),
			wantScore:   0,
			wantReason:  ReasonMissingOption,
		},
		{
			name:        "option from another question",
			qType:       model.MCQMultipleAnswers,
			points:      2,
			sub:         SubmittedAnswer{SelectedOptionID: uintPtr(99)},
			wantCorrect: boolPtr(false),
			wantScore:   0,
			wantReason:  ReasonMissingOption,
		},
		{
			name:        "zero points defaults to one",
			qType:       model.MCQSingleAnswer,
			points:      0,
			sub:         SubmittedAnswer{SelectedOptionID: uintPtr(1)},
			wantCorrect: boolPtr(true),
			wantScore:   1,
			wantReason:  ReasonCorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradeAnswer(optionQuestion(tt.qType, tt.points), tt.sub)
			assertVerdict(t, got, tt.wantCorrect, tt.wantScore, tt.wantReason)
		})
	}
}

func TestGradeAnswerFillBlank(t *testing.T) {
	q := &model.Question{
		QuestionType:  model.FillInTheBlank,
		Text:          "capital of Rwanda",
		Points:        3,
		CorrectAnswer: "Kigali",
	}

	tests := []struct {
		name        string
		answer      string
		wantCorrect *bool
		wantScore   float64
		wantReason  string
	}{
		{"exact match", "Kigali", boolPtr(true), 3, ReasonCorrect},
		{"case insensitive", "kigali", boolPtr(true), 3, ReasonCorrect},
		{"surrounding whitespace", "  Kigali  ", boolPtr(true), 3, ReasonCorrect},
		{"near miss goes to review", "Kigaly", nil, 0, ReasonNeedsReview},
		{"empty answer goes to review", "", nil, 0, ReasonNeedsReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradeAnswer(q, SubmittedAnswer{AnswerText: tt.answer})
			assertVerdict(t, got, tt.wantCorrect, tt.wantScore, tt.wantReason)
		})
	}

	t.Run("missing answer key goes to review", func(t *testing.T) {
		blank := &model.Question{QuestionType: model.FillInTheBlank, Points: 3}
		got := GradeAnswer(blank, SubmittedAnswer{AnswerText: "anything"})
		assertVerdict(t, got, nil, 0, ReasonNeedsReview)
	})
}

func TestGradeAnswerMatching(t *testing.T) {
	tests := []struct {
		name        string
		answerText  string
		wantCorrect *bool
		wantScore   float64
		wantReason  string
	}{
		{
			name:        "all pairs matched",
			answerText:  `{"Rwanda":"Kigali","Kenya":"Nairobi","Uganda":"Kampala"}`,
			wantCorrect: boolPtr(true),
			wantScore:   6,
			wantReason:  ReasonCorrect,
		},
		{
			name:        "partial credit two of three",
			answerText:  `{"Rwanda":"Kigali","Kenya":"Nairobi","Uganda":"Dodoma"}`,
			wantCorrect: boolPtr(false),
			wantScore:   4,
			wantReason:  ReasonPartial,
		},
		{
			name:        "case and whitespace tolerant",
			answerText:  `{" rwanda ":" KIGALI ","Kenya":"nairobi","Uganda":"Kampala"}`,
			wantCorrect: boolPtr(true),
			wantScore:   6,
			wantReason:  ReasonCorrect,
		},
		{
			name:        "nothing matched",
			answerText:  `{"Rwanda":"Nairobi","Kenya":"Kampala","Uganda":"Kigali"}`,
			wantCorrect: boolPtr(false),
			wantScore:   0,
			wantReason:  ReasonWrong,
		},
		{
			name:        "unparseable payload",
			answerText:  "not json",
			wantCorrect: boolPtr(false),
			wantScore:   0,
			wantReason:  ReasonWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradeAnswer(matchingQuestion(6), SubmittedAnswer{AnswerText: tt.answerText})
			assertVerdict(t, got, tt.wantCorrect, tt.wantScore, tt.wantReason)
		})
	}

	t.Run("question without pairs", func(t *testing.T) {
		q := &model.Question{QuestionType: model.Matching, Points: 6}
		got := GradeAnswer(q, SubmittedAnswer{AnswerText: `{"a":"b"}`})
		assertVerdict(t, got, boolPtr(false), 0, ReasonWrong)
	})
}

func TestGradeAnswerManualTypes(t *testing.T) {
	for _, qType := range []model.QuestionType{
		model.ShortAnswer, model.OpenEnded, model.PeerGraded, model.Video, model.Audio,
	} {
		t.Run(string(qType), func(t *testing.T) {
			q := &model.Question{QuestionType: qType, Points: 4}
			got := GradeAnswer(q, SubmittedAnswer{AnswerText: "an essay"})
			assertVerdict(t, got, nil, 0, ReasonNeedsReview)
		})
	}
}

func TestGradeAnswerUnknownType(t *testing.T) {
	q := &model.Question{QuestionType: "Hologram", Points: 4}
	got := GradeAnswer(q, SubmittedAnswer{AnswerText: "whatever"})
	assertVerdict(t, got, nil, 0, ReasonUnknownType)
}
