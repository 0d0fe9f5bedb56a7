package question

import "strconv"

type answerKind uint8

// The zero kind marks the zero Answer, which is never a valid result.
const (
	kindResponse answerKind = iota + 1
	kindYes
	kindNo
)

// Answer is the result of asking a Question: either a free-text response
// or a normalized yes/no. Answers are comparable, so two responses with
// the same text are equal and can be used as map keys.
//
// The zero Answer is none of these. Ask returns it with ok set to false,
// and it never equals Response("").
type Answer struct {
	kind answerKind
	text string
}

var (
	// Yes is any answer accepted as affirmative in a yes/no question.
	Yes = Answer{kind: kindYes}

	// No is any answer accepted as negative in a yes/no question.
	No = Answer{kind: kindNo}
)

// Response wraps free text entered by the user.
func Response(text string) Answer {
	return Answer{kind: kindResponse, text: text}
}

// IsYes reports whether a is Yes.
func (a Answer) IsYes() bool { return a.kind == kindYes }

// IsNo reports whether a is No.
func (a Answer) IsNo() bool { return a.kind == kindNo }

// IsResponse reports whether a carries free text.
func (a Answer) IsResponse() bool { return a.kind == kindResponse }

// IsZero reports whether a is the zero Answer, meaning no answer.
func (a Answer) IsZero() bool { return a.kind == 0 }

// Text returns the response text. It is empty for Yes and No.
func (a Answer) Text() string { return a.text }

// String renders the answer for display: "yes", "no", or the response text.
func (a Answer) String() string {
	switch a.kind {
	case kindYes:
		return "yes"
	case kindNo:
		return "no"
	default:
		return a.text
	}
}

// GoString makes test failures readable.
func (a Answer) GoString() string {
	switch a.kind {
	case kindYes:
		return "question.Yes"
	case kindNo:
		return "question.No"
	case 0:
		return "question.Answer{}"
	default:
		return "question.Response(" + strconv.Quote(a.text) + ")"
	}
}

// hint returns the default marker shown after the question text.
func (a *Answer) hint() string {
	if a == nil {
		return " (y/n)"
	}
	switch a.kind {
	case kindYes:
		return " (Y/n)"
	case kindNo:
		return " (y/N)"
	default:
		return " (" + a.text + ")"
	}
}
