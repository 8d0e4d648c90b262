package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-cli/internal/domain"
)

const (
	statusOK    = "ok"
	statusError = "error"

	msgUnavailable = "Operation could not be attempted"
)

func writeStatus(w io.Writer, status, message string) {
	fmt.Fprintf(w, "{ 'status' : '%s', 'message' : '%s' }\n", status, message)
}

var failureMessages = []struct {
	err error
	msg string
}{
	{domain.ErrMissingUsername, "Please provide username"},
	{domain.ErrMissingPassword, "Please provide password"},
	{domain.ErrUserAlreadyExists, "User already exists"},
	{domain.ErrNoAnswers, "No answer provided"},
	{domain.ErrOnlyOneAnswer, "Only one answer provided"},
	{domain.ErrTooManyAnswers, "More than 5 answers were submitted"},
	{domain.ErrMissingQuestionText, "No question text provided"},
	{domain.ErrInvalidQuestionType, "Question type must be single or multiple"},
	{domain.ErrTooManyCorrect, "Single correct answer question has more than one correct answer"},
	{domain.ErrDuplicateAnswer, "Same answer provided more than once"},
	{domain.ErrNoCorrectAnswer, "No correct answer provided"},
	{domain.ErrNoWrongAnswer, "No wrong answer provided"},
	{domain.ErrQuestionAlreadyExists, "Question already exists"},
	{domain.ErrQuestionNotFound, "Question does not exist"},
	{domain.ErrTooManyQuestions, "Quizz has more than 10 questions"},
	{domain.ErrNoQuestions, "No question provided"},
	{domain.ErrMissingQuizName, "No quizz name provided"},
	{domain.ErrQuizAlreadyExists, "Quizz name already exists"},
	{domain.ErrMissingQuizID, "No quizz identifier was provided"},
	{domain.ErrQuizNotFound, "No quiz was found"},
	{domain.ErrInvalidAnswerID, "Answer identifiers must be numbers"},
	{domain.ErrAlreadySubmitted, "You already submitted this quizz"},
	{domain.ErrOwnQuiz, "You cannot answer your own quizz"},
	{domain.ErrNotOwner, "You can only delete the quizzes you created"},
	{domain.ErrSeparatorInValue, "Values cannot contain commas or line breaks"},
	{domain.ErrUnknownCommand, "Unknown command"},
}

// quizNotFound is worded per command in the lookup commands.
var quizNotFound = map[string]string{
	"get-quizz-by-name":       "Quizz does not exist",
	"get-quizz-details-by-id": "Quizz ID does not exist",
}

// failureMessage maps a command failure to the line shown to the user.
// ok is false for errors that are not a verdict on the input.
func failureMessage(command string, err error) (msg string, ok bool) {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		if authErr.Missing {
			return "You need to be authenticated", true
		}
		return "Login failed", true
	}
	var ansErr *domain.AnswerError
	if errors.As(err, &ansErr) {
		if ansErr.Field == domain.AnswerText {
			return fmt.Sprintf("Answer %d has no answer description", ansErr.Position), true
		}
		return fmt.Sprintf("Answer %d has no answer correct flag", ansErr.Position), true
	}
	var refErr *domain.QuestionRefError
	if errors.As(err, &refErr) {
		return fmt.Sprintf("Question ID for question %d does not exist", refErr.Position), true
	}
	if errors.Is(err, domain.ErrQuizNotFound) {
		if msg, found := quizNotFound[command]; found {
			return msg, true
		}
	}
	for _, m := range failureMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "", false
}

type questionView struct {
	ID   string `json:"question_id"`
	Name string `json:"question_name"`
}

type quizView struct {
	ID        string `json:"quizz_id"`
	Name      string `json:"quizz_name"`
	Completed string `json:"is_completed"`
}

type answerView struct {
	Name string `json:"answer_name"`
	ID   string `json:"answer_id"`
}

type detailView struct {
	Name    string       `json:"question-name"`
	Index   string       `json:"question_index"`
	Type    string       `json:"question_type"`
	Answers []answerView `json:"answers"`
}

type solutionView struct {
	QuizID   string `json:"quiz-id"`
	QuizName string `json:"quiz-name"`
	Score    string `json:"score"`
	Index    string `json:"index_in_list"`
}

func renderQuestions(list []domain.QuestionSummary) (string, error) {
	out := make([]questionView, 0, len(list))
	for _, q := range list {
		out = append(out, questionView{ID: strconv.Itoa(q.ID), Name: q.Text})
	}
	return renderJSON(out)
}

func renderQuizzes(list []domain.QuizSummary) (string, error) {
	out := make([]quizView, 0, len(list))
	for _, q := range list {
		completed := "False"
		if q.Completed {
			completed = "True"
		}
		out = append(out, quizView{ID: strconv.Itoa(q.ID), Name: q.Name, Completed: completed})
	}
	return renderJSON(out)
}

func renderDetails(quiz *domain.Quiz) (string, error) {
	out := make([]detailView, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		answers := make([]answerView, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, answerView{Name: a.Text, ID: strconv.Itoa(a.ID)})
		}
		out = append(out, detailView{
			Name:    q.Text,
			Index:   strconv.Itoa(i + 1),
			Type:    string(q.Type),
			Answers: answers,
		})
	}
	return renderJSON(out)
}

func renderSolutions(list []domain.Solution) (string, error) {
	out := make([]solutionView, 0, len(list))
	for i, s := range list {
		out = append(out, solutionView{
			QuizID:   strconv.Itoa(s.Quiz.ID),
			QuizName: s.Quiz.Name,
			Score:    strconv.Itoa(s.Score),
			Index:    strconv.Itoa(i + 1),
		})
	}
	return renderJSON(out)
}

// renderJSON leaves <, > and & as typed.
func renderJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
