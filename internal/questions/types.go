package questions

// Type classifies a question.
type Type string

const (
	TypeConteudista Type = "conteudista"
	TypeRaciocinio  Type = "raciocinio"
)

// Label returns the display label for the question type. Anything that is
// not conteudista is shown as raciocínio.
func (t Type) Label() string {
	if t == TypeConteudista {
		return "Conteudista"
	}
	return "Raciocínio"
}

// Question is one multiple-choice question as stored in a module file.
type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Type         Type     `json:"type"`
}

// IsCorrect reports whether option is the right answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectIndex
}
