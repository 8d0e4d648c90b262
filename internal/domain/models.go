package domain

// QuestionType tells how many answers of a question may be correct.
type QuestionType string

const (
	// SingleChoice questions have at most one correct answer.
	SingleChoice QuestionType = "single"
	// MultipleChoice questions may have several correct answers.
	MultipleChoice QuestionType = "multiple"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	return t == SingleChoice || t == MultipleChoice
}

// User is a registered account together with the quizzes it has solved.
type User struct {
	Username  string
	Password  string
	Solutions []Solution
}

// Owns reports whether u is the owner of quiz.
func (u *User) Owns(quiz *Quiz) bool {
	return quiz.Owner != nil && quiz.Owner.Username == u.Username && quiz.Owner.Password == u.Password
}

// Solved reports whether u already submitted the quiz with the given id.
func (u *User) Solved(quizID int) bool {
	for _, s := range u.Solutions {
		if s.Quiz != nil && s.Quiz.ID == quizID {
			return true
		}
	}
	return false
}

// Answer is one option of a question.
type Answer struct {
	ID      int
	Text    string
	Correct bool
}

// AnswerDraft is an answer that has not been assigned an id yet.
type AnswerDraft struct {
	Text    string
	Correct bool
}

// Question models a multiple-choice question.
type Question struct {
	ID      int
	Text    string
	Type    QuestionType
	Answers []Answer
}

// Quiz is an ordered selection of existing questions owned by a user.
// Questions are shared with the store, not copied.
type Quiz struct {
	ID        int
	Owner     *User
	Name      string
	Questions []*Question
}

// Solution is the recorded score of a user for a quiz.
type Solution struct {
	Quiz  *Quiz
	Score int
}

// QuestionSummary is the public listing view of a question.
type QuestionSummary struct {
	ID   int
	Text string
}

// QuizSummary is the public listing view of a quiz for a given user.
type QuizSummary struct {
	ID        int
	Name      string
	Completed bool
}

const (
	// MinAnswers is the smallest number of answers a question may have.
	MinAnswers = 2
	// MaxAnswers is the largest number of answers a question may have.
	MaxAnswers = 5
	// MaxQuestions is the largest number of questions a quiz may reference.
	MaxQuestions = 10
	// MaxScore is the score of a perfect submission.
	MaxScore = 100
)
