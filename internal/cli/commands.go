package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"quiz-cli/internal/app"
	"quiz-cli/internal/command"
	"quiz-cli/internal/config"
)

// action runs one command and returns the success message.
type action func(ctx context.Context, svc *app.QuizService, args command.Args) (string, error)

type commandDef struct {
	name    string
	aliases []string
	short   string
	run     action

	// skipLoad runs the action without decoding the stored records first.
	skipLoad bool
}

var commandDefs = []commandDef{
	{
		name:  "create-user",
		short: "Register a user: -u 'name' -p 'password'",
		run: func(ctx context.Context, svc *app.QuizService, args command.Args) (string, error) {
			if err := svc.CreateUser(ctx, args); err != nil {
				return "", err
			}
			return "User created successfully", nil
		},
	},
	{
		name:  "create-question",
		short: "Author a question with 2 to 5 answers",
		run: func(ctx context.Context, svc *app.QuizService, args command.Args) (string, error) {
			if _, err := svc.CreateQuestion(ctx, args); err != nil {
				return "", err
			}
			return "Question added successfully", nil
		},
	},
	{
		name:  "get-question-id-by-text",
		short: "Print the id of the question with the given -text",
		run: func(_ context.Context, svc *app.QuizService, args command.Args) (string, error) {
			id, err := svc.QuestionIDByText(args)
			if err != nil {
				return "", err
			}
			return fmt.Sprint(id), nil
		},
	},
	{
		name:  "get-all-questions",
		short: "List every question",
		run: func(_ context.Context, svc *app.QuizService, args command.Args) (string, error) {
			list, err := svc.Questions(args)
			if err != nil {
				return "", err
			}
			return renderQuestions(list)
		},
	},
	{
		name:    "create-quizz",
		aliases: []string{"create-quiz"},
		short:   "Assemble up to 10 existing questions into a quiz",
		run: func(ctx context.Context, svc *app.QuizService, args command.Args) (string, error) {
			if _, err := svc.CreateQuiz(ctx, args); err != nil {
				return "", err
			}
			return "Quizz added succesfully", nil
		},
	},
	{
		name:    "get-quizz-by-name",
		aliases: []string{"get-quiz-by-name"},
		short:   "Print the id of the quiz with the given -name",
		run: func(_ context.Context, svc *app.QuizService, args command.Args) (string, error) {
			id, err := svc.QuizIDByName(args)
			if err != nil {
				return "", err
			}
			return fmt.Sprint(id), nil
		},
	},
	{
		name:  "get-all-quizzes",
		short: "List every quiz and whether you completed it",
		run: func(_ context.Context, svc *app.QuizService, args command.Args) (string, error) {
			list, err := svc.Quizzes(args)
			if err != nil {
				return "", err
			}
			return renderQuizzes(list)
		},
	},
	{
		name:    "get-quizz-details-by-id",
		aliases: []string{"get-quiz-details-by-id"},
		short:   "Show the questions and answers of a quiz",
		run: func(_ context.Context, svc *app.QuizService, args command.Args) (string, error) {
			quiz, err := svc.QuizDetails(args)
			if err != nil {
				return "", err
			}
			return renderDetails(quiz)
		},
	},
	{
		name:    "submit-quizz",
		aliases: []string{"submit-quiz"},
		short:   "Submit answers to a quiz and print the score",
		run: func(ctx context.Context, svc *app.QuizService, args command.Args) (string, error) {
			score, err := svc.SubmitQuiz(ctx, args)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d points", score), nil
		},
	},
	{
		name:    "delete-quizz-by-id",
		aliases: []string{"delete-quiz-by-id"},
		short:   "Delete a quiz you own together with its solutions",
		run: func(ctx context.Context, svc *app.QuizService, args command.Args) (string, error) {
			if err := svc.DeleteQuiz(ctx, args); err != nil {
				return "", err
			}
			return "Quizz deleted successfully", nil
		},
	},
	{
		name:  "get-my-solutions",
		short: "List your solutions with their scores",
		run: func(_ context.Context, svc *app.QuizService, args command.Args) (string, error) {
			list, err := svc.Solutions(args)
			if err != nil {
				return "", err
			}
			return renderSolutions(list)
		},
	},
	{
		name:     "cleanup-all",
		short:    "Erase every record",
		skipLoad: true,
		run: func(ctx context.Context, svc *app.QuizService, _ command.Args) (string, error) {
			if err := svc.Cleanup(ctx); err != nil {
				return "", err
			}
			return "All records removed", nil
		},
	},
}

func lookupCommand(name string) (commandDef, bool) {
	for _, def := range commandDefs {
		if def.name == name {
			return def, true
		}
		for _, alias := range def.aliases {
			if alias == name {
				return def, true
			}
		}
	}
	return commandDef{}, false
}

// newDomainCmd passes its tokens through untouched; only --config is taken out.
func newDomainCmd(def commandDef, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:                def.name + " [tokens]",
		Aliases:            def.aliases,
		Short:              def.short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			path, tokens := splitConfigFlag(tokens, *configPath)
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			out := cmd.OutOrStdout()

			sess, err := openSession(cmd.Context(), cfg, logger, def.skipLoad)
			if err != nil {
				writeStatus(out, statusError, msgUnavailable)
				return err
			}
			defer sess.close()

			msg, err := def.run(cmd.Context(), sess.service, command.Parse(tokens))
			if err != nil {
				reason, ok := failureMessage(def.name, err)
				if !ok {
					logger.Error("command failed", "command", def.name, "err", err)
					writeStatus(out, statusError, msgUnavailable)
					return err
				}
				logger.Debug("command rejected", "command", def.name, "err", err)
				writeStatus(out, statusError, reason)
				return nil
			}
			writeStatus(out, statusOK, msg)
			return nil
		},
	}
}

// splitConfigFlag removes --config <path> or --config=<path> from tokens.
func splitConfigFlag(tokens []string, fallback string) (string, []string) {
	path := fallback
	rest := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--config" && i+1 < len(tokens):
			path = tokens[i+1]
			i++
		case strings.HasPrefix(tok, "--config="):
			path = strings.TrimPrefix(tok, "--config=")
		default:
			rest = append(rest, tok)
		}
	}
	return path, rest
}
