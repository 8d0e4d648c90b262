package memory

import (
	"quiz-cli/internal/domain"
)

// Store holds every entity loaded for one invocation and allocates identifiers.
// Lookups are linear scans; the data set is rebuilt on each run.
type Store struct {
	users     []*domain.User
	questions []*domain.Question
	quizzes   []*domain.Quiz

	nextQuestionID int
	nextAnswerID   int
	nextQuizID     int
}

func NewStore() *Store {
	return &Store{
		nextQuestionID: 1,
		nextAnswerID:   1,
		nextQuizID:     1,
	}
}

// FindUserByName matches on username only.
func (s *Store) FindUserByName(name string) (*domain.User, bool) {
	for _, u := range s.users {
		if u.Username == name {
			return u, true
		}
	}
	return nil, false
}

// Authenticate matches on username and password.
func (s *Store) Authenticate(username, password string) (*domain.User, bool) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) FindQuestionByText(text string) (*domain.Question, bool) {
	for _, q := range s.questions {
		if q.Text == text {
			return q, true
		}
	}
	return nil, false
}

func (s *Store) FindQuestionByID(id int) (*domain.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

func (s *Store) FindQuizByName(name string) (*domain.Quiz, bool) {
	for _, q := range s.quizzes {
		if q.Name == name {
			return q, true
		}
	}
	return nil, false
}

func (s *Store) FindQuizByID(id int) (*domain.Quiz, bool) {
	for _, q := range s.quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return nil, false
}

// Users returns the users in registration order.
func (s *Store) Users() []*domain.User { return s.users }

// Questions returns the questions in creation order.
func (s *Store) Questions() []*domain.Question { return s.questions }

// Quizzes returns the quizzes in creation order.
func (s *Store) Quizzes() []*domain.Quiz { return s.quizzes }

// AddUser appends a new user. Callers check for duplicates first.
func (s *Store) AddUser(username, password string) *domain.User {
	u := &domain.User{Username: username, Password: password}
	s.users = append(s.users, u)
	return u
}

// AddQuestion appends a question, assigning the next question id and one answer id per draft.
func (s *Store) AddQuestion(text string, typ domain.QuestionType, drafts []domain.AnswerDraft) *domain.Question {
	answers := make([]domain.Answer, 0, len(drafts))
	for _, d := range drafts {
		answers = append(answers, domain.Answer{ID: s.nextAnswerID, Text: d.Text, Correct: d.Correct})
		s.nextAnswerID++
	}
	q := &domain.Question{ID: s.nextQuestionID, Text: text, Type: typ, Answers: answers}
	s.nextQuestionID++
	s.questions = append(s.questions, q)
	return q
}

// AddQuiz appends a quiz with the next quiz id.
func (s *Store) AddQuiz(owner *domain.User, name string, questions []*domain.Question) *domain.Quiz {
	quiz := &domain.Quiz{ID: s.nextQuizID, Owner: owner, Name: name, Questions: questions}
	s.nextQuizID++
	s.quizzes = append(s.quizzes, quiz)
	return quiz
}

// AddSolution records a score for user on quiz.
func (s *Store) AddSolution(user *domain.User, quiz *domain.Quiz, score int) domain.Solution {
	sol := domain.Solution{Quiz: quiz, Score: score}
	user.Solutions = append(user.Solutions, sol)
	return sol
}

// RemoveQuiz drops the quiz and every solution that refers to it.
// Identifier allocation is not rewound.
func (s *Store) RemoveQuiz(id int) bool {
	idx := -1
	for i, q := range s.quizzes {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.quizzes = append(s.quizzes[:idx:idx], s.quizzes[idx+1:]...)

	for _, u := range s.users {
		kept := u.Solutions[:0]
		for _, sol := range u.Solutions {
			if sol.Quiz == nil || sol.Quiz.ID != id {
				kept = append(kept, sol)
			}
		}
		u.Solutions = kept
	}
	return true
}

// Reset empties the store and restarts identifier allocation at 1.
func (s *Store) Reset() {
	*s = *NewStore()
}

// RestoreQuestion inserts a persisted question as is and moves allocation past its ids.
func (s *Store) RestoreQuestion(q *domain.Question) {
	s.questions = append(s.questions, q)
	if q.ID >= s.nextQuestionID {
		s.nextQuestionID = q.ID + 1
	}
	for _, a := range q.Answers {
		if a.ID >= s.nextAnswerID {
			s.nextAnswerID = a.ID + 1
		}
	}
}

// RestoreQuiz inserts a persisted quiz as is and moves allocation past its id.
func (s *Store) RestoreQuiz(quiz *domain.Quiz) {
	s.quizzes = append(s.quizzes, quiz)
	if quiz.ID >= s.nextQuizID {
		s.nextQuizID = quiz.ID + 1
	}
}

// NextAnswerID is the id the next created answer will receive.
func (s *Store) NextAnswerID() int { return s.nextAnswerID }
