package question

import (
	"math"
	"strings"

	"go.uber.org/zap"
)

// Question builds and asks a single question. Builder methods mutate the
// question in place and return it so calls can be chained:
//
//	answer, ok := question.New("Do you want to continue?").
//		YesNo().
//		Tries(3).
//		Ask()
//
// A Question is owned by one caller and asked once; it is not safe for
// concurrent use.
type Question struct {
	question      string
	prompt        string
	defaultAnswer *Answer
	clarification *string

	acceptable     []string
	validResponses map[string]Answer

	tries           int
	untilAcceptable bool
	showDefaults    bool
	yesNo           bool

	io     LineIO
	logger *zap.Logger
}

// New creates a question asked on the process's standard streams.
func New(text string) *Question {
	return NewWithIO(text, Stdio())
}

// NewWithIO creates a question that prompts and reads through io.
func NewWithIO(text string, io LineIO) *Question {
	return &Question{
		question: text,
		prompt:   text,
		io:       io,
		logger:   zap.NewNop(),
	}
}

// WithLogger sets the logger used to trace each attempt at debug level.
// A nil logger disables logging.
func (q *Question) WithLogger(logger *zap.Logger) *Question {
	if logger == nil {
		logger = zap.NewNop()
	}
	q.logger = logger
	return q
}

// Accept adds a single acceptable response. Duplicates are kept.
func (q *Question) Accept(text string) *Question {
	q.acceptable = append(q.acceptable, text)
	return q
}

// Acceptable adds several acceptable responses in order.
func (q *Question) Acceptable(texts ...string) *Question {
	q.acceptable = append(q.acceptable, texts...)
	return q
}

// YesNo makes "yes", "y", "no" and "n" valid responses, matched without
// regard to case or surrounding whitespace. Existing responses are kept.
func (q *Question) YesNo() *Question {
	q.yesNo = true
	for _, key := range []string{"yes", "y"} {
		q.Respond(key, Yes)
	}
	for _, key := range []string{"no", "n"} {
		q.Respond(key, No)
	}
	return q
}

// Respond maps a valid response to the answer it produces. The text is
// matched without regard to case or surrounding whitespace.
func (q *Question) Respond(text string, answer Answer) *Question {
	if q.validResponses == nil {
		q.validResponses = make(map[string]Answer)
	}
	q.validResponses[normalize(text)] = answer
	return q
}

// Tries bounds the number of attempts to get a valid response.
//
// Zero means keep asking until a valid response is given, the same as
// UntilAcceptable. One is a no-op, since a question is always asked at
// least once; it does not impose a one-attempt limit. Budgets above
// math.MaxInt are clamped to it.
func (q *Question) Tries(n uint) *Question {
	switch {
	case n == 0:
		q.untilAcceptable = true
	case n == 1:
	case n > math.MaxInt:
		q.tries = math.MaxInt
	default:
		q.tries = int(n)
	}
	return q
}

// UntilAcceptable keeps asking until a valid response is given. It takes
// precedence over Tries.
func (q *Question) UntilAcceptable() *Question {
	q.untilAcceptable = true
	return q
}

// ShowDefaults shows the default after the question: (Y/n) or (y/N) for
// yes/no defaults, the response text otherwise, and (y/n) when there is
// no default.
func (q *Question) ShowDefaults() *Question {
	q.showDefaults = true
	return q
}

// Default sets the answer used when the user enters an empty line.
func (q *Question) Default(answer Answer) *Question {
	q.defaultAnswer = &answer
	return q
}

// Clarification sets a message shown above the question after an
// invalid response.
func (q *Question) Clarification(text string) *Question {
	q.clarification = &text
	return q
}

// Text returns the question as it was created.
func (q *Question) Text() string { return q.question }

// Prompt returns the text that will be written on the next attempt.
func (q *Question) Prompt() string { return q.prompt }

// Accepted returns a copy of the acceptable responses in insertion order.
func (q *Question) Accepted() []string {
	if q.acceptable == nil {
		return nil
	}
	out := make([]string, len(q.acceptable))
	copy(out, q.acceptable)
	return out
}

// DefaultAnswer returns the configured default, if any.
func (q *Question) DefaultAnswer() (Answer, bool) {
	if q.defaultAnswer == nil {
		return Answer{}, false
	}
	return *q.defaultAnswer, true
}

// MaxTries returns the attempt budget, if one was set.
func (q *Question) MaxTries() (int, bool) {
	return q.tries, q.tries > 0
}

// RetriesUntilAcceptable reports whether asking is unbounded.
func (q *Question) RetriesUntilAcceptable() bool { return q.untilAcceptable }

// IsYesNo reports whether yes/no responses are enabled.
func (q *Question) IsYesNo() bool { return q.yesNo }

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
