// Package scoring turns a set of chosen answers into a quiz score.
//
// Every question is worth the same share of domain.MaxScore. Inside a question each chosen
// correct answer earns 1/c and each chosen wrong answer costs 1/w, where c and w are the
// number of correct and wrong answers of that question.
package scoring

import (
	"math"

	"quiz-cli/internal/domain"
)

// Selection is a set of chosen answer ids.
type Selection map[int]struct{}

// NewSelection builds a Selection; repeated ids count once.
func NewSelection(ids ...int) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id was chosen.
func (s Selection) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// UnitScore is the score of a single question before weighting, in [-1, 1].
// Answers that belong to other questions are ignored.
func UnitScore(q *domain.Question, chosen Selection) float64 {
	correct, wrong := 0, 0
	for _, a := range q.Answers {
		if a.Correct {
			correct++
		} else {
			wrong++
		}
	}

	unit := 0.0
	for _, a := range q.Answers {
		if !chosen.Has(a.ID) {
			continue
		}
		switch {
		case a.Correct:
			unit += 1 / float64(correct)
		default:
			unit -= 1 / float64(wrong)
		}
	}
	return unit
}

// Raw is the unclamped, unrounded score of a quiz.
func Raw(quiz *domain.Quiz, chosen Selection) float64 {
	if len(quiz.Questions) == 0 {
		return 0
	}
	share := float64(domain.MaxScore) / float64(len(quiz.Questions))

	total := 0.0
	for _, q := range quiz.Questions {
		total += share * UnitScore(q, chosen)
	}
	return total
}

// Score is the final integer score of a quiz: Raw clamped at 0 and rounded.
func Score(quiz *domain.Quiz, chosen Selection) int {
	raw := Raw(quiz, chosen)
	if raw < 0 {
		raw = 0
	}
	return int(math.Round(raw))
}
