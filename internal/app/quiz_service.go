package app

import (
	"context"
	"fmt"
	"log/slog"

	"quiz-cli/internal/command"
	"quiz-cli/internal/domain"
	"quiz-cli/internal/infra/memory"
	"quiz-cli/internal/records"
	"quiz-cli/internal/scoring"
)

// RecordWriter receives persistence requests once a command has passed validation.
type RecordWriter interface {
	Append(ctx context.Context, kind records.Kind, line string) error
	Rewrite(ctx context.Context, kind records.Kind, lines []string) error
	Clear(ctx context.Context) error
}

// QuizService runs one command against the loaded store.
type QuizService struct {
	store   *memory.Store
	records RecordWriter
	logger  *slog.Logger
}

func NewQuizService(store *memory.Store, w RecordWriter, logger *slog.Logger) *QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizService{store: store, records: w, logger: logger}
}

// Store exposes the store the service works on.
func (s *QuizService) Store() *memory.Store { return s.store }

// authenticate is the gate in front of every command except registration and cleanup.
func (s *QuizService) authenticate(args command.Args) (*domain.User, error) {
	creds, err := command.ParseCredentials(args)
	if err != nil {
		return nil, err
	}
	user, ok := s.store.Authenticate(creds.Username, creds.Password)
	if !ok {
		return nil, &domain.AuthError{}
	}
	return user, nil
}

// CreateUser registers the username/password pair carried by args.
func (s *QuizService) CreateUser(ctx context.Context, args command.Args) error {
	creds, err := command.ValidateUser(args)
	if err != nil {
		return err
	}
	if _, exists := s.store.FindUserByName(creds.Username); exists {
		return domain.ErrUserAlreadyExists
	}

	user := s.store.AddUser(creds.Username, creds.Password)
	if err := s.records.Append(ctx, records.Users, records.EncodeUser(user)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.logger.Info("user created", "username", user.Username)
	return nil
}

// CreateQuestion authors a question and returns its id.
func (s *QuizService) CreateQuestion(ctx context.Context, args command.Args) (int, error) {
	if _, err := s.authenticate(args); err != nil {
		return 0, err
	}
	in, err := command.ValidateQuestion(args.Payload())
	if err != nil {
		return 0, err
	}
	if _, exists := s.store.FindQuestionByText(in.Text); exists {
		return 0, domain.ErrQuestionAlreadyExists
	}

	q := s.store.AddQuestion(in.Text, in.Type, in.Answers)
	if err := s.records.Append(ctx, records.Questions, records.EncodeQuestion(q)); err != nil {
		return 0, fmt.Errorf("persist question: %w", err)
	}
	s.logger.Info("question created", "id", q.ID, "answers", len(q.Answers))
	return q.ID, nil
}

// QuestionIDByText resolves a question by its text.
func (s *QuizService) QuestionIDByText(args command.Args) (int, error) {
	if _, err := s.authenticate(args); err != nil {
		return 0, err
	}
	text, err := command.ValidateText(args.Payload())
	if err != nil {
		return 0, err
	}
	q, ok := s.store.FindQuestionByText(text)
	if !ok {
		return 0, domain.ErrQuestionNotFound
	}
	return q.ID, nil
}

// Questions lists every question.
func (s *QuizService) Questions(args command.Args) ([]domain.QuestionSummary, error) {
	if _, err := s.authenticate(args); err != nil {
		return nil, err
	}
	out := make([]domain.QuestionSummary, 0, len(s.store.Questions()))
	for _, q := range s.store.Questions() {
		out = append(out, domain.QuestionSummary{ID: q.ID, Text: q.Text})
	}
	return out, nil
}

// CreateQuiz assembles existing questions into a quiz owned by the caller and returns its id.
func (s *QuizService) CreateQuiz(ctx context.Context, args command.Args) (int, error) {
	user, err := s.authenticate(args)
	if err != nil {
		return 0, err
	}
	in, err := command.ValidateQuiz(args.Payload())
	if err != nil {
		return 0, err
	}
	if _, exists := s.store.FindQuizByName(in.Name); exists {
		return 0, domain.ErrQuizAlreadyExists
	}

	questions := make([]*domain.Question, 0, len(in.QuestionIDs))
	for i, id := range in.QuestionIDs {
		q, ok := s.store.FindQuestionByID(id)
		if !ok {
			return 0, &domain.QuestionRefError{Position: i + 1}
		}
		questions = append(questions, q)
	}

	quiz := s.store.AddQuiz(user, in.Name, questions)
	if err := s.records.Append(ctx, records.Quizzes, records.EncodeQuiz(quiz)); err != nil {
		return 0, fmt.Errorf("persist quiz: %w", err)
	}
	s.logger.Info("quiz created", "id", quiz.ID, "owner", user.Username, "questions", len(questions))
	return quiz.ID, nil
}

// QuizIDByName resolves a quiz by its name.
func (s *QuizService) QuizIDByName(args command.Args) (int, error) {
	if _, err := s.authenticate(args); err != nil {
		return 0, err
	}
	name, err := command.ValidateName(args.Payload())
	if err != nil {
		return 0, err
	}
	quiz, ok := s.store.FindQuizByName(name)
	if !ok {
		return 0, domain.ErrQuizNotFound
	}
	return quiz.ID, nil
}

// Quizzes lists every quiz together with whether the caller already solved it.
func (s *QuizService) Quizzes(args command.Args) ([]domain.QuizSummary, error) {
	user, err := s.authenticate(args)
	if err != nil {
		return nil, err
	}
	out := make([]domain.QuizSummary, 0, len(s.store.Quizzes()))
	for _, q := range s.store.Quizzes() {
		out = append(out, domain.QuizSummary{ID: q.ID, Name: q.Name, Completed: user.Solved(q.ID)})
	}
	return out, nil
}

// QuizDetails returns the quiz with its questions and answers.
func (s *QuizService) QuizDetails(args command.Args) (*domain.Quiz, error) {
	if _, err := s.authenticate(args); err != nil {
		return nil, err
	}
	id, err := command.ValidateQuizRef(args.Payload())
	if err != nil {
		return nil, err
	}
	quiz, ok := s.store.FindQuizByID(id)
	if !ok {
		return nil, domain.ErrQuizNotFound
	}
	return quiz, nil
}

// SubmitQuiz scores the chosen answers, records the solution and returns the score.
func (s *QuizService) SubmitQuiz(ctx context.Context, args command.Args) (int, error) {
	user, err := s.authenticate(args)
	if err != nil {
		return 0, err
	}
	in, err := command.ValidateSubmission(args.Payload())
	if err != nil {
		return 0, err
	}
	quiz, ok := s.store.FindQuizByID(in.QuizID)
	if !ok {
		return 0, domain.ErrQuizNotFound
	}
	if user.Solved(quiz.ID) {
		return 0, domain.ErrAlreadySubmitted
	}
	if user.Owns(quiz) {
		return 0, domain.ErrOwnQuiz
	}

	score := scoring.Score(quiz, scoring.NewSelection(in.AnswerIDs...))
	sol := s.store.AddSolution(user, quiz, score)
	if err := s.records.Append(ctx, records.Solutions, records.EncodeSolution(user, sol)); err != nil {
		return 0, fmt.Errorf("persist solution: %w", err)
	}
	s.logger.Info("quiz submitted", "quiz", quiz.ID, "user", user.Username, "score", score)
	return score, nil
}

// DeleteQuiz removes a quiz owned by the caller along with every solution to it.
func (s *QuizService) DeleteQuiz(ctx context.Context, args command.Args) error {
	user, err := s.authenticate(args)
	if err != nil {
		return err
	}
	id, err := command.ValidateQuizRef(args.Payload())
	if err != nil {
		return err
	}
	quiz, ok := s.store.FindQuizByID(id)
	if !ok {
		return domain.ErrQuizNotFound
	}
	if !user.Owns(quiz) {
		return domain.ErrNotOwner
	}

	// Solutions go first: a surviving quiz without solutions still loads,
	// solutions pointing at a removed quiz do not.
	s.store.RemoveQuiz(quiz.ID)
	if err := s.records.Rewrite(ctx, records.Solutions, records.EncodeSolutions(s.store)); err != nil {
		return fmt.Errorf("persist solutions: %w", err)
	}
	if err := s.records.Rewrite(ctx, records.Quizzes, records.EncodeQuizzes(s.store)); err != nil {
		return fmt.Errorf("persist quizzes: %w", err)
	}
	s.logger.Info("quiz deleted", "id", quiz.ID)
	return nil
}

// Solutions lists the caller's solutions in submission order.
func (s *QuizService) Solutions(args command.Args) ([]domain.Solution, error) {
	user, err := s.authenticate(args)
	if err != nil {
		return nil, err
	}
	return user.Solutions, nil
}

// Cleanup erases every record and empties the store.
func (s *QuizService) Cleanup(ctx context.Context) error {
	if err := s.records.Clear(ctx); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	s.store.Reset()
	s.logger.Info("all records removed")
	return nil
}
