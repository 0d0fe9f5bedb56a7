package question

import (
	"strings"

	"go.uber.org/zap"
)

// Ask asks the question exactly as it has been built.
//
// With UntilAcceptable (or Tries(0)) it keeps asking until a valid
// response is given and always reports ok. With Tries(n) it gives up
// after n invalid responses and reports !ok. Otherwise it reads a single
// line and returns it as a Response, or the default when the line is
// empty; ok is false only when the line could not be read. When ok is
// false the Answer is the zero Answer.
func (q *Question) Ask() (Answer, bool) {
	q.buildPrompt()
	if q.untilAcceptable {
		return q.untilValid(), true
	}
	if q.tries > 0 {
		return q.maxTries()
	}
	return q.response()
}

// Confirm asks a yes/no question until a valid response is given.
func (q *Question) Confirm() Answer {
	q.YesNo()
	q.buildPrompt()
	return q.untilValid()
}

func (q *Question) response() (Answer, bool) {
	line, err := q.promptUser()
	if err != nil {
		q.logger.Debug("Failed to read response", zap.String("question", q.question), zap.Error(err))
		return Answer{}, false
	}
	line = strings.TrimSpace(line)
	if line == "" && q.defaultAnswer != nil {
		q.logger.Debug("Default applied", zap.String("question", q.question))
		return *q.defaultAnswer, true
	}
	return Response(line), true
}

func (q *Question) maxTries() (Answer, bool) {
	for attempt := 1; attempt <= q.tries; attempt++ {
		if answer, ok := q.validResponse(attempt); ok {
			return answer, true
		}
		q.buildClarification()
	}
	q.logger.Debug("Attempts exhausted", zap.String("question", q.question), zap.Int("tries", q.tries))
	return Answer{}, false
}

func (q *Question) untilValid() Answer {
	for attempt := 1; ; attempt++ {
		if answer, ok := q.validResponse(attempt); ok {
			return answer
		}
		q.buildClarification()
	}
}

// validResponse runs one attempt. Read failures count as invalid input.
func (q *Question) validResponse(attempt int) (Answer, bool) {
	log := q.logger.With(zap.String("question", q.question), zap.Int("attempt", attempt))

	line, err := q.promptUser()
	if err != nil {
		log.Debug("Failed to read response", zap.Error(err))
		return Answer{}, false
	}

	key := normalize(line)
	if answer, ok := q.validResponses[key]; ok {
		log.Debug("Valid response", zap.String("input", key))
		return answer, true
	}
	if key != "" {
		for _, accepted := range q.acceptable {
			if normalize(accepted) == key {
				log.Debug("Accepted response", zap.String("input", key))
				return Response(accepted), true
			}
		}
	}
	if line == "" && q.defaultAnswer != nil {
		log.Debug("Default applied")
		return *q.defaultAnswer, true
	}

	log.Debug("Invalid response", zap.String("input", line))
	return Answer{}, false
}

func (q *Question) promptUser() (string, error) {
	if err := q.io.WritePrompt(q.prompt); err != nil {
		return "", err
	}
	return q.io.ReadLine()
}

// buildPrompt decorates the current prompt with the default hint and the
// trailing space. It appends, so it runs once per render.
func (q *Question) buildPrompt() {
	if q.showDefaults {
		q.prompt += q.defaultAnswer.hint()
	}
	q.prompt += " "
}

// buildClarification replaces the prompt with the clarification followed
// by the question. Without a clarification the prompt is shown again as is.
func (q *Question) buildClarification() {
	if q.clarification == nil {
		return
	}
	q.prompt = *q.clarification + "\n" + q.question
	q.buildPrompt()
}
