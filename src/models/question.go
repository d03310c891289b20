package models

// QuestionType tags the variant of a question and of the answers given to it.
type QuestionType string

const (
	Categorize    QuestionType = "categorize"
	Cloze         QuestionType = "cloze"
	Comprehension QuestionType = "comprehension"
)

// SubQuestionType is the input kind of a comprehension sub-question.
type SubQuestionType string

const (
	MultipleChoice SubQuestionType = "multiple-choice"
	TextAnswer     SubQuestionType = "text"
	TrueFalse      SubQuestionType = "true-false"
)

// --- Question ---
// Question is stored flat, the way it crosses the API. Only the fields of
// its own variant are meaningful; Body gives the typed view.
type Question struct {
	ID          string       `bson:"id" json:"id"`
	Type        QuestionType `bson:"type" json:"type" validate:"required,oneof=categorize cloze comprehension"`
	Title       string       `bson:"title" json:"title" validate:"required"`
	Description string       `bson:"description" json:"description"`
	Image       string       `bson:"image" json:"image"`
	Required    bool         `bson:"required" json:"required"`

	// categorize
	Categories []Category       `bson:"categories,omitempty" json:"categories,omitempty" validate:"dive"`
	Items      []CategorizeItem `bson:"items,omitempty" json:"items,omitempty" validate:"dive"`

	// cloze
	Sentence string  `bson:"sentence,omitempty" json:"sentence,omitempty"`
	Blanks   []Blank `bson:"blanks,omitempty" json:"blanks,omitempty" validate:"dive"`

	// comprehension
	Passage      string        `bson:"passage,omitempty" json:"passage,omitempty"`
	SubQuestions []SubQuestion `bson:"subQuestions,omitempty" json:"subQuestions,omitempty" validate:"dive"`
}

type Category struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Color string `bson:"color" json:"color"`
}

// CategorizeItem.CorrectCategory holds a category id; empty means no category
// was chosen as correct.
type CategorizeItem struct {
	ID              string `bson:"id" json:"id"`
	Text            string `bson:"text" json:"text"`
	CorrectCategory string `bson:"correctCategory" json:"correctCategory"`
}

type Blank struct {
	ID            string `bson:"id" json:"id"`
	Position      int    `bson:"position" json:"position"`
	CorrectAnswer string `bson:"correctAnswer" json:"correctAnswer"`
	Placeholder   string `bson:"placeholder" json:"placeholder"`
}

// SubQuestion.CorrectAnswer may be empty, in which case the sub-question is
// not graded.
type SubQuestion struct {
	ID            string          `bson:"id" json:"id"`
	Question      string          `bson:"question" json:"question"`
	Type          SubQuestionType `bson:"type" json:"type" validate:"omitempty,oneof=multiple-choice text true-false"`
	Options       []string        `bson:"options" json:"options"`
	CorrectAnswer string          `bson:"correctAnswer" json:"correctAnswer"`
}

// QuestionBody is the typed, variant-specific part of a question. It is
// implemented only by CategorizeBody, ClozeBody and ComprehensionBody.
type QuestionBody interface {
	questionBody()
}

type CategorizeBody struct {
	Categories []Category
	Items      []CategorizeItem
}

type ClozeBody struct {
	Sentence string
	Blanks   []Blank
}

type ComprehensionBody struct {
	Passage      string
	SubQuestions []SubQuestion
}

func (CategorizeBody) questionBody()    {}
func (ClozeBody) questionBody()         {}
func (ComprehensionBody) questionBody() {}

// Body returns the variant view of q. ok is false when q.Type is not one of
// the known variants.
func (q Question) Body() (body QuestionBody, ok bool) {
	switch q.Type {
	case Categorize:
		return CategorizeBody{Categories: q.Categories, Items: q.Items}, true
	case Cloze:
		return ClozeBody{Sentence: q.Sentence, Blanks: q.Blanks}, true
	case Comprehension:
		return ComprehensionBody{Passage: q.Passage, SubQuestions: q.SubQuestions}, true
	}
	return nil, false
}

// GradedSubQuestions returns the sub-questions that carry a correct answer.
func (b ComprehensionBody) GradedSubQuestions() []SubQuestion {
	graded := make([]SubQuestion, 0, len(b.SubQuestions))
	for _, sq := range b.SubQuestions {
		if sq.CorrectAnswer != "" {
			graded = append(graded, sq)
		}
	}
	return graded
}
