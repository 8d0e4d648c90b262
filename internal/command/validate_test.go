package command

import (
	"errors"
	"fmt"
	"testing"

	"quiz-cli/internal/domain"
)

func TestParseArg(t *testing.T) {
	tests := []struct {
		token string
		want  Arg
	}{
		{"-u 'alice'", Arg{Flag: "-u", Value: "alice", HasValue: true}},
		{"-text 'What is it?'", Arg{Flag: "-text", Value: "What is it?", HasValue: true}},
		{"-u", Arg{Flag: "-u"}},
		{"-u ''", Arg{Flag: "-u"}},
		{"-u 'open", Arg{Flag: "-u", Value: "open", HasValue: true}},
		{"  -p   'x' trailing", Arg{Flag: "-p", Value: "x", HasValue: true}},
	}
	for _, tt := range tests {
		if got := ParseArg(tt.token); got != tt.want {
			t.Fatalf("ParseArg(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}

func TestParseCredentials(t *testing.T) {
	_, err := ParseCredentials(Parse([]string{"-u 'alice'"}))
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) || !authErr.Missing {
		t.Fatalf("expected missing credentials, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected error to match ErrNotAuthenticated")
	}

	_, err = ParseCredentials(Parse([]string{"-p 'x'", "-u 'alice'"}))
	if !errors.As(err, &authErr) || authErr.Missing {
		t.Fatalf("expected login failure, got %v", err)
	}

	creds, err := ParseCredentials(Parse([]string{"-u 'alice'", "-p 'x'", "-text 'q'"}))
	if err != nil || creds.Username != "alice" || creds.Password != "x" {
		t.Fatalf("unexpected credentials %+v, %v", creds, err)
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   error
	}{
		{"nothing", nil, domain.ErrMissingUsername},
		{"only username", []string{"-u 'alice'"}, domain.ErrMissingPassword},
		{"only password", []string{"-p 'x'"}, domain.ErrMissingUsername},
		{"empty username", []string{"-u", "-p 'x'"}, domain.ErrMissingUsername},
		{"empty password", []string{"-u 'alice'", "-p"}, domain.ErrMissingPassword},
		{"swapped", []string{"-p 'x'", "-u 'alice'"}, domain.ErrMissingUsername},
		{"comma", []string{"-u 'al,ice'", "-p 'x'"}, domain.ErrSeparatorInValue},
		{"newline in username", []string{"-u 'al\nice'", "-p 'x'"}, domain.ErrSeparatorInValue},
		{"carriage return in password", []string{"-u 'alice'", "-p 'x\r'"}, domain.ErrSeparatorInValue},
		{"ok", []string{"-u 'alice'", "-p 'x'"}, nil},
		{"trailing tokens ignored", []string{"-u 'alice'", "-p 'x'", "-text 'extra'"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateUser(Parse(tt.tokens))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func answers(pairs ...string) []string {
	var out []string
	for i := 0; i+1 < len(pairs); i += 2 {
		k := i/2 + 1
		out = append(out, fmt.Sprintf("-answer-%d '%s'", k, pairs[i]), fmt.Sprintf("-answer-%d-is-correct '%s'", k, pairs[i+1]))
	}
	return out
}

func questionTokens(typ string, answerTokens ...string) []string {
	return append([]string{"-text 'Capital of France?'", "-type '" + typ + "'"}, answerTokens...)
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   error
	}{
		{"no answers", questionTokens("single"), domain.ErrNoAnswers},
		{"one answer", questionTokens("single", answers("Paris", "1")...), domain.ErrOnlyOneAnswer},
		{"one answer text only", questionTokens("single", "-answer-1 'Paris'"), domain.ErrOnlyOneAnswer},
		{"six answers", questionTokens("multiple", answers("a", "1", "b", "0", "c", "0", "d", "0", "e", "0", "f", "0")...), domain.ErrTooManyAnswers},
		{"missing text", append([]string{"-type 'single'", "-x 'y'"}, answers("a", "1", "b", "0")...), domain.ErrMissingQuestionText},
		{"nothing at all", nil, domain.ErrMissingQuestionText},
		{"bad type", questionTokens("many", answers("a", "1", "b", "0")...), domain.ErrInvalidQuestionType},
		{"too many correct", questionTokens("single", answers("Paris", "1", "Lyon", "1", "Nice", "0")...), domain.ErrTooManyCorrect},
		{"duplicate", questionTokens("multiple", answers("Paris", "1", "Paris", "0")...), domain.ErrDuplicateAnswer},
		{"no correct", questionTokens("single", answers("Lyon", "0", "Nice", "0")...), domain.ErrNoCorrectAnswer},
		{"no wrong", questionTokens("multiple", answers("Paris", "1", "Lyon", "1")...), domain.ErrNoWrongAnswer},
		{"comma in answer", questionTokens("single", answers("Paris, France", "1", "Lyon", "0")...), domain.ErrSeparatorInValue},
		{"newline in answer", questionTokens("single", answers("Paris\nFrance", "1", "Lyon", "0")...), domain.ErrSeparatorInValue},
		{"newline in text", append([]string{"-text 'Capital\nof France?'", "-type 'single'"}, answers("Paris", "1", "Lyon", "0")...), domain.ErrSeparatorInValue},
		{"ok single", questionTokens("single", answers("Paris", "1", "Lyon", "0", "Nice", "0")...), nil},
		{"ok multiple", questionTokens("multiple", answers("2", "1", "3", "1", "4", "0")...), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuestion(Parse(tt.tokens))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateQuestionAnswerPositions(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		pos    int
		field  domain.AnswerField
	}{
		{"dangling text", questionTokens("single", append(answers("Paris", "1"), "-answer-2 'Lyon'")...), 2, domain.AnswerCorrectFlag},
		{"misnumbered text", questionTokens("single", "-answer-1 'Paris'", "-answer-1-is-correct '1'", "-answer-3 'Lyon'", "-answer-3-is-correct '0'"), 2, domain.AnswerText},
		{"text without value", questionTokens("single", "-answer-1", "-answer-1-is-correct '1'", "-answer-2 'x'", "-answer-2-is-correct '0'"), 1, domain.AnswerText},
		{"flag not boolean", questionTokens("single", "-answer-1 'a'", "-answer-1-is-correct 'yes'", "-answer-2 'b'", "-answer-2-is-correct '0'"), 1, domain.AnswerCorrectFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateQuestion(Parse(tt.tokens))
			var ansErr *domain.AnswerError
			if !errors.As(err, &ansErr) {
				t.Fatalf("expected AnswerError, got %v", err)
			}
			if ansErr.Position != tt.pos || ansErr.Field != tt.field {
				t.Fatalf("expected answer %d field %d, got %+v", tt.pos, tt.field, ansErr)
			}
		})
	}
}

func TestValidateQuestionKeepsAnswers(t *testing.T) {
	in, err := ValidateQuestion(Parse(questionTokens("single", answers("Paris", "1", "Lyon", "0")...)))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if in.Text != "Capital of France?" || in.Type != domain.SingleChoice {
		t.Fatalf("unexpected input %+v", in)
	}
	if len(in.Answers) != 2 || !in.Answers[0].Correct || in.Answers[1].Correct || in.Answers[1].Text != "Lyon" {
		t.Fatalf("unexpected answers %+v", in.Answers)
	}
}

func TestValidateQuiz(t *testing.T) {
	eleven := []string{"-name 'big'"}
	for i := 1; i <= 11; i++ {
		eleven = append(eleven, fmt.Sprintf("-question-%d '%d'", i, i))
	}
	if _, err := ValidateQuiz(Parse(eleven)); !errors.Is(err, domain.ErrTooManyQuestions) {
		t.Fatalf("expected too many questions, got %v", err)
	}
	if _, err := ValidateQuiz(Parse([]string{"-question-1 '1'"})); !errors.Is(err, domain.ErrMissingQuizName) {
		t.Fatalf("expected missing name, got %v", err)
	}
	if _, err := ValidateQuiz(Parse([]string{"-name 'bas\r\nics'", "-question-1 '1'"})); !errors.Is(err, domain.ErrSeparatorInValue) {
		t.Fatalf("expected separator error, got %v", err)
	}
	if _, err := ValidateQuiz(Parse([]string{"-name 'empty'"})); !errors.Is(err, domain.ErrNoQuestions) {
		t.Fatalf("expected no questions, got %v", err)
	}

	in, err := ValidateQuiz(Parse([]string{"-name 'basics'", "-question-1 '3'", "-question-2 'x'"}))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if in.Name != "basics" || len(in.QuestionIDs) != 2 || in.QuestionIDs[0] != 3 || in.QuestionIDs[1] != 0 {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestValidateSubmission(t *testing.T) {
	if _, err := ValidateSubmission(nil); !errors.Is(err, domain.ErrMissingQuizID) {
		t.Fatalf("expected missing quiz id, got %v", err)
	}
	if _, err := ValidateSubmission(Parse([]string{"-quiz-id"})); !errors.Is(err, domain.ErrMissingQuizID) {
		t.Fatalf("expected missing quiz id, got %v", err)
	}
	if _, err := ValidateSubmission(Parse([]string{"-quiz-id 'abc'"})); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
	if _, err := ValidateSubmission(Parse([]string{"-quiz-id '1'", "-answer-id-1 'x'"})); !errors.Is(err, domain.ErrInvalidAnswerID) {
		t.Fatalf("expected invalid answer id, got %v", err)
	}

	in, err := ValidateSubmission(Parse([]string{"-quiz-id '2'", "-answer-id-1 '5'", "-answer-id-2 '7'"}))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if in.QuizID != 2 || len(in.AnswerIDs) != 2 || in.AnswerIDs[1] != 7 {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestValidateLookups(t *testing.T) {
	if _, err := ValidateText(nil); !errors.Is(err, domain.ErrMissingQuestionText) {
		t.Fatalf("expected missing text, got %v", err)
	}
	if _, err := ValidateName(Parse([]string{"-text 'x'"})); !errors.Is(err, domain.ErrMissingQuizName) {
		t.Fatalf("expected missing name, got %v", err)
	}
	if id, err := ValidateQuizRef(Parse([]string{"-id '4'"})); err != nil || id != 4 {
		t.Fatalf("expected id 4, got %d, %v", id, err)
	}
}
