package models

// --- Answer ---
// Answer is one respondent answer, stored flat like Question. Only the list
// matching QuestionType is read when grading.
type Answer struct {
	QuestionID   string       `bson:"questionId" json:"questionId"`
	QuestionType QuestionType `bson:"questionType" json:"questionType"`

	CategorizedItems []CategorizedItem `bson:"categorizedItems,omitempty" json:"categorizedItems,omitempty"`
	BlankAnswers     []BlankAnswer     `bson:"blankAnswers,omitempty" json:"blankAnswers,omitempty"`
	SubAnswers       []SubAnswer       `bson:"subAnswers,omitempty" json:"subAnswers,omitempty"`
}

type CategorizedItem struct {
	ItemID     string `bson:"itemId" json:"itemId"`
	CategoryID string `bson:"categoryId" json:"categoryId"`
}

type BlankAnswer struct {
	BlankID string `bson:"blankId" json:"blankId"`
	Answer  string `bson:"answer" json:"answer"`
}

type SubAnswer struct {
	SubQuestionID string `bson:"subQuestionId" json:"subQuestionId"`
	Answer        string `bson:"answer" json:"answer"`
}

// AnswerPayload is the typed view of an Answer. It is implemented only by
// CategorizeAnswer, ClozeAnswer and ComprehensionAnswer.
type AnswerPayload interface {
	answerPayload()
}

// CategorizeAnswer maps item id to the category the respondent chose.
type CategorizeAnswer struct {
	Placements map[string]string
}

// ClozeAnswer maps blank id to the respondent's text.
type ClozeAnswer struct {
	Texts map[string]string
}

// ComprehensionAnswer maps sub-question id to the respondent's text.
type ComprehensionAnswer struct {
	Texts map[string]string
}

func (CategorizeAnswer) answerPayload()    {}
func (ClozeAnswer) answerPayload()         {}
func (ComprehensionAnswer) answerPayload() {}

// Payload returns the variant view of a. When the same id appears more than
// once in a list the first entry is kept. ok is false for an unknown tag.
func (a Answer) Payload() (payload AnswerPayload, ok bool) {
	switch a.QuestionType {
	case Categorize:
		m := make(map[string]string, len(a.CategorizedItems))
		for _, ci := range a.CategorizedItems {
			if _, seen := m[ci.ItemID]; !seen {
				m[ci.ItemID] = ci.CategoryID
			}
		}
		return CategorizeAnswer{Placements: m}, true
	case Cloze:
		return ClozeAnswer{Texts: firstByKey(a.BlankAnswers, func(b BlankAnswer) (string, string) { return b.BlankID, b.Answer })}, true
	case Comprehension:
		return ComprehensionAnswer{Texts: firstByKey(a.SubAnswers, func(s SubAnswer) (string, string) { return s.SubQuestionID, s.Answer })}, true
	}
	return nil, false
}

func firstByKey[T any](list []T, kv func(T) (string, string)) map[string]string {
	m := make(map[string]string, len(list))
	for _, e := range list {
		k, v := kv(e)
		if _, seen := m[k]; !seen {
			m[k] = v
		}
	}
	return m
}
