// Package scoring grades submitted answers against a form's question
// definitions. Every question an answer refers to is worth exactly one point
// and is graded all-or-nothing.
//
// The functions here are pure: no I/O and no package state, so they are safe
// to call concurrently.
package scoring

import (
	"strings"

	"Backend-FormBuilder/src/models"
)

// Score grades answers against questions and returns the points earned and
// the points available.
//
// Each answer whose questionId matches a question adds one point to maxScore,
// whether or not it is correct. Answers are not deduplicated: two answers for
// the same question are graded independently. Answers for unknown questions
// are ignored.
func Score(answers []models.Answer, questions []models.Question) (score, maxScore int) {
	index := indexQuestions(questions)
	for _, a := range answers {
		q, ok := index[a.QuestionID]
		if !ok {
			continue
		}
		maxScore++
		if Grade(a, q) {
			score++
		}
	}
	return score, maxScore
}

// Grade reports whether a earns the point of q. An answer tagged with a
// different variant than q, or a question with an unknown variant, never
// earns it.
func Grade(a models.Answer, q models.Question) bool {
	if a.QuestionType != q.Type {
		return false
	}
	body, ok := q.Body()
	if !ok {
		return false
	}
	payload, ok := a.Payload()
	if !ok {
		return false
	}

	switch b := body.(type) {
	case models.CategorizeBody:
		p, ok := payload.(models.CategorizeAnswer)
		return ok && gradeCategorize(b, p)
	case models.ClozeBody:
		p, ok := payload.(models.ClozeAnswer)
		return ok && gradeCloze(b, p)
	case models.ComprehensionBody:
		p, ok := payload.(models.ComprehensionAnswer)
		return ok && gradeComprehension(b, p)
	}
	return false
}

// Every defined item must be placed, and placed in its correct category.
func gradeCategorize(b models.CategorizeBody, p models.CategorizeAnswer) bool {
	correct := 0
	for _, item := range b.Items {
		if got, ok := p.Placements[item.ID]; ok && got == item.CorrectCategory {
			correct++
		}
	}
	return correct == len(b.Items)
}

func gradeCloze(b models.ClozeBody, p models.ClozeAnswer) bool {
	correct := 0
	for _, blank := range b.Blanks {
		if got, ok := p.Texts[blank.ID]; ok && matches(got, blank.CorrectAnswer) {
			correct++
		}
	}
	return correct == len(b.Blanks)
}

// Sub-questions without a correct answer are not graded and never block the point.
func gradeComprehension(b models.ComprehensionBody, p models.ComprehensionAnswer) bool {
	graded := b.GradedSubQuestions()
	correct := 0
	for _, sq := range graded {
		if got, ok := p.Texts[sq.ID]; ok && matches(got, sq.CorrectAnswer) {
			correct++
		}
	}
	return correct == len(graded)
}

// matches compares case-insensitively. Whitespace is significant.
func matches(got, want string) bool {
	return strings.EqualFold(got, want)
}

// indexQuestions keeps the first definition of each id.
func indexQuestions(questions []models.Question) map[string]models.Question {
	index := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		if _, seen := index[q.ID]; !seen {
			index[q.ID] = q
		}
	}
	return index
}
