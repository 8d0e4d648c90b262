// Package records converts entities to and from their comma-separated record lines.
package records

import (
	"fmt"
	"strconv"
	"strings"

	"quiz-cli/internal/domain"
	"quiz-cli/internal/infra/memory"
)

// Kind names one record set.
type Kind string

const (
	Users     Kind = "users"
	Questions Kind = "questions"
	Quizzes   Kind = "quizzes"
	Solutions Kind = "solutions"
)

// Kinds lists the record sets in load order.
var Kinds = []Kind{Users, Questions, Quizzes, Solutions}

// EncodeUser renders username,password.
func EncodeUser(u *domain.User) string {
	return u.Username + "," + u.Password
}

// EncodeQuestion renders id,text,type followed by answerText,answerIsCorrect pairs.
func EncodeQuestion(q *domain.Question) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(q.ID))
	b.WriteString(",")
	b.WriteString(q.Text)
	b.WriteString(",")
	b.WriteString(string(q.Type))
	for _, a := range q.Answers {
		b.WriteString(",")
		b.WriteString(a.Text)
		b.WriteString(",")
		b.WriteString(strconv.FormatBool(a.Correct))
	}
	return b.String()
}

// EncodeQuiz renders id,ownerUsername,ownerPassword,name followed by question ids.
func EncodeQuiz(q *domain.Quiz) string {
	parts := []string{strconv.Itoa(q.ID), q.Owner.Username, q.Owner.Password, q.Name}
	for _, question := range q.Questions {
		parts = append(parts, strconv.Itoa(question.ID))
	}
	return strings.Join(parts, ",")
}

// EncodeSolution renders username,quizId,score.
func EncodeSolution(u *domain.User, s domain.Solution) string {
	return fmt.Sprintf("%s,%d,%d", u.Username, s.Quiz.ID, s.Score)
}

// EncodeQuizzes renders every quiz of the store.
func EncodeQuizzes(store *memory.Store) []string {
	lines := make([]string, 0, len(store.Quizzes()))
	for _, q := range store.Quizzes() {
		lines = append(lines, EncodeQuiz(q))
	}
	return lines
}

// EncodeSolutions renders every solution of every user of the store.
func EncodeSolutions(store *memory.Store) []string {
	var lines []string
	for _, u := range store.Users() {
		for _, s := range u.Solutions {
			lines = append(lines, EncodeSolution(u, s))
		}
	}
	return lines
}

// LineError locates a malformed record.
type LineError struct {
	Kind Kind
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s record %d: %v", e.Kind, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Decode builds a store from the record sets. Answer ids are not persisted; they are
// assigned from 1 in record order, which is also the order in which they were created.
func Decode(sets map[Kind][]string) (*memory.Store, error) {
	store := memory.NewStore()

	for i, line := range nonEmpty(sets[Users]) {
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, &LineError{Kind: Users, Line: i + 1, Err: fmt.Errorf("want 2 fields, got %d", len(fields))}
		}
		store.AddUser(fields[0], fields[1])
	}

	answerID := 1
	for i, line := range nonEmpty(sets[Questions]) {
		q, err := decodeQuestion(line, &answerID)
		if err != nil {
			return nil, &LineError{Kind: Questions, Line: i + 1, Err: err}
		}
		store.RestoreQuestion(q)
	}

	for i, line := range nonEmpty(sets[Quizzes]) {
		quiz, err := decodeQuiz(store, line)
		if err != nil {
			return nil, &LineError{Kind: Quizzes, Line: i + 1, Err: err}
		}
		store.RestoreQuiz(quiz)
	}

	for i, line := range nonEmpty(sets[Solutions]) {
		if err := decodeSolution(store, line); err != nil {
			return nil, &LineError{Kind: Solutions, Line: i + 1, Err: err}
		}
	}
	return store, nil
}

func decodeQuestion(line string, answerID *int) (*domain.Question, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 || (len(fields)-3)%2 != 0 {
		return nil, fmt.Errorf("malformed question: %d fields", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("question id: %w", err)
	}
	q := &domain.Question{ID: id, Text: fields[1], Type: domain.QuestionType(fields[2])}
	for i := 3; i < len(fields); i += 2 {
		q.Answers = append(q.Answers, domain.Answer{
			ID:      *answerID,
			Text:    fields[i],
			Correct: fields[i+1] == "true",
		})
		*answerID++
	}
	return q, nil
}

func decodeQuiz(store *memory.Store, line string) (*domain.Quiz, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return nil, fmt.Errorf("malformed quiz: %d fields", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("quiz id: %w", err)
	}
	owner, ok := store.Authenticate(fields[1], fields[2])
	if !ok {
		return nil, fmt.Errorf("quiz %d: owner %q not found", id, fields[1])
	}
	quiz := &domain.Quiz{ID: id, Owner: owner, Name: fields[3]}
	for _, raw := range fields[4:] {
		qid, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("quiz %d question id: %w", id, err)
		}
		question, ok := store.FindQuestionByID(qid)
		if !ok {
			return nil, fmt.Errorf("quiz %d: question %d not found", id, qid)
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz, nil
}

func decodeSolution(store *memory.Store, line string) error {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return fmt.Errorf("malformed solution: %d fields", len(fields))
	}
	user, ok := store.FindUserByName(fields[0])
	if !ok {
		return fmt.Errorf("user %q not found", fields[0])
	}
	quizID, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("quiz id: %w", err)
	}
	score, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	quiz, ok := store.FindQuizByID(quizID)
	if !ok {
		return fmt.Errorf("quiz %d not found", quizID)
	}
	store.AddSolution(user, quiz, score)
	return nil
}

func nonEmpty(lines []string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
