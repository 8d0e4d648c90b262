package command

import (
	"fmt"
	"strings"

	"quiz-cli/internal/domain"
)

// Credentials is a username/password pair taken from the first two tokens.
type Credentials struct {
	Username string
	Password string
}

// ParseCredentials reads -u and -p from the head of args.
func ParseCredentials(args Args) (Credentials, error) {
	if len(args) < 2 {
		return Credentials{}, &domain.AuthError{Missing: true}
	}
	u, p := args[0], args[1]
	if !u.Is("-u") || !p.Is("-p") {
		return Credentials{}, &domain.AuthError{}
	}
	return Credentials{Username: u.Value, Password: p.Value}, nil
}

// ValidateUser checks create-user arguments.
func ValidateUser(args Args) (Credentials, error) {
	switch len(args) {
	case 0:
		return Credentials{}, domain.ErrMissingUsername
	case 1:
		if args[0].Is("-u") {
			return Credentials{}, domain.ErrMissingPassword
		}
		return Credentials{}, domain.ErrMissingUsername
	}
	if !args[0].Is("-u") {
		return Credentials{}, domain.ErrMissingUsername
	}
	if !args[1].Is("-p") {
		return Credentials{}, domain.ErrMissingPassword
	}
	if hasSeparator(args[0].Value, args[1].Value) {
		return Credentials{}, domain.ErrSeparatorInValue
	}
	return Credentials{Username: args[0].Value, Password: args[1].Value}, nil
}

// QuestionInput is a well-formed create-question request.
type QuestionInput struct {
	Text    string
	Type    domain.QuestionType
	Answers []domain.AnswerDraft
}

// ValidateQuestion checks the arguments that follow the credentials of create-question:
// -text, -type, then -answer-K / -answer-K-is-correct pairs.
func ValidateQuestion(payload Args) (QuestionInput, error) {
	if answerTokens := len(payload) - 2; answerTokens >= 0 {
		switch {
		case answerTokens == 0:
			return QuestionInput{}, domain.ErrNoAnswers
		case answerTokens <= 2*(domain.MinAnswers-1):
			return QuestionInput{}, domain.ErrOnlyOneAnswer
		case answerTokens > 2*domain.MaxAnswers:
			return QuestionInput{}, domain.ErrTooManyAnswers
		}
	}

	text := payload.At(0)
	if !text.Is("-text") {
		return QuestionInput{}, domain.ErrMissingQuestionText
	}
	typ := payload.At(1)
	if !typ.Is("-type") || !domain.QuestionType(typ.Value).Valid() {
		return QuestionInput{}, domain.ErrInvalidQuestionType
	}

	in := QuestionInput{Text: text.Value, Type: domain.QuestionType(typ.Value)}
	correct := 0
	for i := 2; i < len(payload); i += 2 {
		pos := len(in.Answers) + 1
		if !payload[i].Is(fmt.Sprintf("-answer-%d", pos)) {
			return QuestionInput{}, &domain.AnswerError{Position: pos, Field: domain.AnswerText}
		}
		flag := payload.At(i + 1)
		if !flag.Is(fmt.Sprintf("-answer-%d-is-correct", pos)) || (flag.Value != "0" && flag.Value != "1") {
			return QuestionInput{}, &domain.AnswerError{Position: pos, Field: domain.AnswerCorrectFlag}
		}
		draft := domain.AnswerDraft{Text: payload[i].Value, Correct: flag.Value == "1"}
		if draft.Correct {
			correct++
		}
		in.Answers = append(in.Answers, draft)
	}

	if in.Type == domain.SingleChoice && correct > 1 {
		return QuestionInput{}, domain.ErrTooManyCorrect
	}
	seen := make(map[string]struct{}, len(in.Answers))
	for _, a := range in.Answers {
		if _, dup := seen[a.Text]; dup {
			return QuestionInput{}, domain.ErrDuplicateAnswer
		}
		seen[a.Text] = struct{}{}
	}
	if hasSeparator(in.Text) {
		return QuestionInput{}, domain.ErrSeparatorInValue
	}
	for _, a := range in.Answers {
		if hasSeparator(a.Text) {
			return QuestionInput{}, domain.ErrSeparatorInValue
		}
	}
	if correct == 0 {
		return QuestionInput{}, domain.ErrNoCorrectAnswer
	}
	if correct == len(in.Answers) {
		return QuestionInput{}, domain.ErrNoWrongAnswer
	}
	return in, nil
}

// QuizInput is a well-formed create-quizz request. Question ids are unresolved;
// an entry is 0 when its token did not hold a number.
type QuizInput struct {
	Name        string
	QuestionIDs []int
}

// ValidateQuiz checks the arguments that follow the credentials of create-quizz:
// -name, then -question-K tokens.
func ValidateQuiz(payload Args) (QuizInput, error) {
	if len(payload)-1 > domain.MaxQuestions {
		return QuizInput{}, domain.ErrTooManyQuestions
	}
	name := payload.At(0)
	if !name.Is("-name") {
		return QuizInput{}, domain.ErrMissingQuizName
	}
	if hasSeparator(name.Value) {
		return QuizInput{}, domain.ErrSeparatorInValue
	}
	if len(payload) < 2 {
		return QuizInput{}, domain.ErrNoQuestions
	}

	in := QuizInput{Name: name.Value, QuestionIDs: make([]int, 0, len(payload)-1)}
	for _, arg := range payload[1:] {
		id, ok := arg.Int()
		if !ok || id <= 0 {
			id = 0
		}
		in.QuestionIDs = append(in.QuestionIDs, id)
	}
	return in, nil
}

// SubmissionInput is a well-formed submit-quizz request.
type SubmissionInput struct {
	QuizID    int
	AnswerIDs []int
}

// ValidateSubmission checks the arguments that follow the credentials of submit-quizz:
// -quiz-id, then -answer-id-K tokens.
func ValidateSubmission(payload Args) (SubmissionInput, error) {
	quizID, err := quizRef(payload.At(0))
	if err != nil {
		return SubmissionInput{}, err
	}
	in := SubmissionInput{QuizID: quizID}
	for _, arg := range payload[1:] {
		id, ok := arg.Int()
		if !ok {
			return SubmissionInput{}, domain.ErrInvalidAnswerID
		}
		in.AnswerIDs = append(in.AnswerIDs, id)
	}
	return in, nil
}

// ValidateQuizRef checks a command whose only payload is a quiz id (deletion, details).
func ValidateQuizRef(payload Args) (int, error) {
	return quizRef(payload.At(0))
}

// ValidateText returns the value of the first payload token when it is -text.
func ValidateText(payload Args) (string, error) {
	arg := payload.At(0)
	if !arg.Is("-text") {
		return "", domain.ErrMissingQuestionText
	}
	return arg.Value, nil
}

// ValidateName returns the value of the first payload token when it is -name.
func ValidateName(payload Args) (string, error) {
	arg := payload.At(0)
	if !arg.Is("-name") {
		return "", domain.ErrMissingQuizName
	}
	return arg.Value, nil
}

// hasSeparator reports whether any value holds a field or line separator of the records.
func hasSeparator(values ...string) bool {
	for _, v := range values {
		if strings.ContainsAny(v, ",\r\n") {
			return true
		}
	}
	return false
}

// quizRef accepts any flag name; only the quoted value matters.
func quizRef(arg Arg) (int, error) {
	if !arg.HasValue {
		return 0, domain.ErrMissingQuizID
	}
	id, ok := arg.Int()
	if !ok {
		return 0, domain.ErrQuizNotFound
	}
	return id, nil
}
