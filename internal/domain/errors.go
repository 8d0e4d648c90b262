package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is matched by every authentication failure.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMissingUsername is returned when create-user lacks a username.
	ErrMissingUsername = errors.New("missing username")
	// ErrMissingPassword is returned when create-user lacks a password.
	ErrMissingPassword = errors.New("missing password")
	// ErrUserAlreadyExists is returned on duplicate registration.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoAnswers is returned when a question is created without answers.
	ErrNoAnswers = errors.New("no answers")
	// ErrOnlyOneAnswer is returned when a question has a single answer.
	ErrOnlyOneAnswer = errors.New("only one answer")
	// ErrTooManyAnswers is returned when a question has more than MaxAnswers answers.
	ErrTooManyAnswers = errors.New("too many answers")
	// ErrMissingQuestionText is returned when the question text flag is absent or empty.
	ErrMissingQuestionText = errors.New("missing question text")
	// ErrInvalidQuestionType is returned when the type is neither single nor multiple.
	ErrInvalidQuestionType = errors.New("invalid question type")
	// ErrTooManyCorrect is returned when a single-type question has several correct answers.
	ErrTooManyCorrect = errors.New("too many correct answers for single type")
	// ErrDuplicateAnswer is returned when two answers of a question share their text.
	ErrDuplicateAnswer = errors.New("duplicate answer text")
	// ErrNoCorrectAnswer is returned when no answer of a question is marked correct.
	ErrNoCorrectAnswer = errors.New("no correct answer")
	// ErrNoWrongAnswer is returned when every answer of a question is marked correct.
	ErrNoWrongAnswer = errors.New("no wrong answer")
	// ErrQuestionAlreadyExists is returned when a question with the same text exists.
	ErrQuestionAlreadyExists = errors.New("question already exists")
	// ErrQuestionNotFound indicates a question lookup by text failed.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrTooManyQuestions is returned when a quiz references more than MaxQuestions questions.
	ErrTooManyQuestions = errors.New("too many questions")
	// ErrNoQuestions is returned when a quiz references no questions.
	ErrNoQuestions = errors.New("no questions")
	// ErrMissingQuizName is returned when the quiz name flag is absent or empty.
	ErrMissingQuizName = errors.New("missing quiz name")
	// ErrQuizAlreadyExists is returned when a quiz with the same name exists.
	ErrQuizAlreadyExists = errors.New("quiz already exists")

	// ErrMissingQuizID is returned when a command needs a quiz id and none was given.
	ErrMissingQuizID = errors.New("missing quiz id")
	// ErrQuizNotFound indicates the quiz id or name does not resolve.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrInvalidAnswerID is returned when a submitted answer id is not a number.
	ErrInvalidAnswerID = errors.New("invalid answer id")
	// ErrAlreadySubmitted is returned on a second submission of the same quiz.
	ErrAlreadySubmitted = errors.New("quiz already submitted")
	// ErrOwnQuiz is returned when a user submits a quiz they own.
	ErrOwnQuiz = errors.New("cannot submit own quiz")
	// ErrNotOwner is returned when a user deletes a quiz owned by someone else.
	ErrNotOwner = errors.New("not quiz owner")

	// ErrSeparatorInValue is returned when a stored field would contain a comma or a line break.
	ErrSeparatorInValue = errors.New("value contains a record separator")

	// ErrUnknownCommand is returned by the dispatcher for unsupported commands.
	ErrUnknownCommand = errors.New("unknown command")
)

// AuthError describes why a credential pair was rejected.
type AuthError struct {
	// Missing is set when fewer than two credential tokens were given.
	Missing bool
}

func (e *AuthError) Error() string {
	if e.Missing {
		return "credentials not provided"
	}
	return "login failed"
}

// Is makes every AuthError match ErrNotAuthenticated.
func (e *AuthError) Is(target error) bool {
	return target == ErrNotAuthenticated
}

// AnswerField names the part of an answer pair that is malformed.
type AnswerField int

const (
	AnswerText AnswerField = iota
	AnswerCorrectFlag
)

// AnswerError reports a malformed answer pair at a 1-based position.
type AnswerError struct {
	Position int
	Field    AnswerField
}

func (e *AnswerError) Error() string {
	if e.Field == AnswerText {
		return fmt.Sprintf("answer %d has no text", e.Position)
	}
	return fmt.Sprintf("answer %d has no correct flag", e.Position)
}

// QuestionRefError reports a quiz question reference that does not resolve.
type QuestionRefError struct {
	Position int
}

func (e *QuestionRefError) Error() string {
	return fmt.Sprintf("question id for question %d does not exist", e.Position)
}
