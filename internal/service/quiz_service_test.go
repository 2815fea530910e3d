package service

import (
	"testing"

	"rudasumbwa_backend/internal/model"
)

func TestValidateQuestionInput(t *testing.T) {
	tests := []struct {
		name    string
		input   QuestionInput
		wantErr bool
	}{
		{
			name: "mcq with options",
			input: QuestionInput{
				QuestionType: model.MCQSingleAnswer,
				Text:         "q",
				Options:      []OptionInput{{OptionText: "a", IsCorrect: true}},
			},
		},
		{
			name:    "mcq without options",
			input:   QuestionInput{QuestionType: model.MCQSingleAnswer, Text: "q"},
			wantErr: true,
		},
		{
			name:    "matching without pairs",
			input:   QuestionInput{QuestionType: model.Matching, Text: "q"},
			wantErr: true,
		},
		{
			name: "matching with pairs",
			input: QuestionInput{
				QuestionType:  model.Matching,
				Text:          "q",
				MatchingPairs: []MatchingPairInput{{Prompt: "p", CorrectMatch: "m"}},
			},
		},
		{
			name:    "unknown type",
			input:   QuestionInput{QuestionType: "Telepathy", Text: "q"},
			wantErr: true,
		},
		{
			name: "video parent with children",
			input: QuestionInput{
				QuestionType: model.Video,
				Text:         "watch",
				SubQuestions: []QuestionInput{
					{QuestionType: model.ShortAnswer, Text: "summarize"},
				},
			},
		},
		{
			name: "non-media parent with children",
			input: QuestionInput{
				QuestionType: model.ShortAnswer,
				Text:         "q",
				SubQuestions: []QuestionInput{
					{QuestionType: model.ShortAnswer, Text: "child"},
				},
			},
			wantErr: true,
		},
		{
			name: "nested media question",
			input: QuestionInput{
				QuestionType: model.Video,
				Text:         "watch",
				SubQuestions: []QuestionInput{
					{QuestionType: model.Audio, Text: "listen"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestionInput(&tt.input, 0)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateQuestionInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildQuestionDefaultsPoints(t *testing.T) {
	q := buildQuestion(1, nil, &QuestionInput{
		QuestionType: model.ShortAnswer,
		Text:         "q",
	})
	if q.Points != 1 {
		t.Fatalf("Points = %v, want 1", q.Points)
	}

	parent := uint(7)
	child := buildQuestion(1, &parent, &QuestionInput{
		QuestionType: model.ShortAnswer,
		Text:         "child",
		Points:       2.5,
	})
	if child.ParentQuestionID == nil || *child.ParentQuestionID != 7 {
		t.Fatalf("ParentQuestionID not carried over")
	}
	if child.Points != 2.5 {
		t.Fatalf("Points = %v, want 2.5", child.Points)
	}
}
