package service

import (
	"encoding/json"
	"strings"

	"rudasumbwa_backend/internal/model"
)

// SubmittedAnswer is one answer in a submission payload.
type SubmittedAnswer struct {
	QuestionID       uint   `json:"questionId" binding:"required"`
	SelectedOptionID *uint  `json:"selectedOptionId"`
	AnswerText       string `json:"answerText"`
}

// Grade reasons. missing_option and missing_question are persisted as plain
// wrong answers but get a warning log from the orchestrator; needs_review
// rows wait for a teacher.
const (
	ReasonCorrect         = "correct"
	ReasonWrong           = "wrong"
	ReasonPartial         = "partial"
	ReasonNeedsReview     = "needs_review"
	ReasonMissingOption   = "missing_option"
	ReasonMissingQuestion = "missing_question"
	ReasonUnknownType     = "unknown_type"
)

// GradeResult is the grader verdict for one answer. IsCorrect nil means the
// answer needs manual review; the score is then always 0.
type GradeResult struct {
	IsCorrect *bool
	Score     float64
	Reason    string
}

func needsReview(reason string) GradeResult {
	return GradeResult{IsCorrect: nil, Score: 0, Reason: reason}
}

func wrong(reason string) GradeResult {
	f := false
	return GradeResult{IsCorrect: &f, Score: 0, Reason: reason}
}

func graded(isCorrect bool, score float64, reason string) GradeResult {
	return GradeResult{IsCorrect: &isCorrect, Score: score, Reason: reason}
}

// GradeAnswer maps one submitted answer plus its question context to a
// verdict. It is a pure function over rows the caller already loaded; the
// switch covers every QuestionType and the fallback for a type outside the
// enum is a deliberate needs-review default, not an error.
func GradeAnswer(q *model.Question, sub SubmittedAnswer) GradeResult {
	points := q.Points
	if points <= 0 {
		points = 1
	}

	switch q.QuestionType {
	case model.MCQSingleAnswer, model.MCQMultipleAnswers, model.TrueFalse:
		return gradeOptionChoice(q, sub, points)

	case model.FillInTheBlank:
		return gradeFillBlank(q, sub)

	case model.Matching:
		return gradeMatching(q, sub, points)

	case model.ShortAnswer, model.OpenEnded, model.PeerGraded, model.Video, model.Audio:
		// Free-form and media types cannot be settled automatically.
		return needsReview(ReasonNeedsReview)

	default:
		return needsReview(ReasonUnknownType)
	}
}

func gradeOptionChoice(q *model.Question, sub SubmittedAnswer, points float64) GradeResult {
	if sub.SelectedOptionID == nil {
		return wrong(ReasonMissingOption)
	}
	for _, opt := range q.Options {
		if opt.ID != *sub.SelectedOptionID {
			continue
		}
		if opt.IsCorrect {
			return graded(true, points, ReasonCorrect)
		}
		return wrong(ReasonWrong)
	}
	// The selected option does not belong to this question.
	return wrong(ReasonMissingOption)
}

// gradeFillBlank compares trimmed, case-folded strings. A non-match is routed
// to manual review rather than marked wrong, so near-miss spellings reach a
// teacher instead of silently scoring 0.
func gradeFillBlank(q *model.Question, sub SubmittedAnswer) GradeResult {
	key := strings.TrimSpace(q.CorrectAnswer)
	if key == "" {
		return needsReview(ReasonNeedsReview)
	}
	if strings.EqualFold(strings.TrimSpace(sub.AnswerText), key) {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		return graded(true, points, ReasonCorrect)
	}
	return needsReview(ReasonNeedsReview)
}

// gradeMatching awards partial credit proportional to the pairs matched:
// score = matched/total * points, correct only when every pair matches.
func gradeMatching(q *model.Question, sub SubmittedAnswer, points float64) GradeResult {
	if len(q.MatchingPairs) == 0 {
		return wrong(ReasonWrong)
	}

	var submitted map[string]string
	if err := json.Unmarshal([]byte(sub.AnswerText), &submitted); err != nil {
		return wrong(ReasonWrong)
	}

	normalized := make(map[string]string, len(submitted))
	for prompt, match := range submitted {
		normalized[normalizeMatchKey(prompt)] = normalizeMatchKey(match)
	}

	matched := 0
	for _, pair := range q.MatchingPairs {
		if normalized[normalizeMatchKey(pair.Prompt)] == normalizeMatchKey(pair.CorrectMatch) {
			matched++
		}
	}

	total := len(q.MatchingPairs)
	score := float64(matched) / float64(total) * points
	if matched == total {
		return graded(true, score, ReasonCorrect)
	}
	if matched > 0 {
		return graded(false, score, ReasonPartial)
	}
	return wrong(ReasonWrong)
}

func normalizeMatchKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
