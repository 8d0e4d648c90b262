package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quiz-cli/internal/records"
)

// fileNames keeps the on-disk names of the original CSV layout.
var fileNames = map[records.Kind]string{
	records.Users:     "Users.csv",
	records.Questions: "Questions.csv",
	records.Quizzes:   "Quizzes.csv",
	records.Solutions: "Solutions.csv",
}

// RecordStore keeps each record set in its own line-oriented file under a directory.
type RecordStore struct {
	dir string
}

func NewRecordStore(dir string) (*RecordStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RecordStore{dir: dir}, nil
}

func (s *RecordStore) path(kind records.Kind) (string, error) {
	name, ok := fileNames[kind]
	if !ok {
		return "", fmt.Errorf("unknown record kind %q", kind)
	}
	return filepath.Join(s.dir, name), nil
}

func (s *RecordStore) Lines(_ context.Context, kind records.Kind) ([]string, error) {
	p, err := s.path(kind)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return lines, nil
}

func (s *RecordStore) Append(_ context.Context, kind records.Kind, line string) error {
	p, err := s.path(kind)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rewrite writes the set to a temporary file and renames it over the old one.
func (s *RecordStore) Rewrite(_ context.Context, kind records.Kind, lines []string) error {
	p, err := s.path(kind)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, filepath.Base(p)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (s *RecordStore) Clear(_ context.Context) error {
	for _, kind := range records.Kinds {
		p, err := s.path(kind)
		if err != nil {
			return err
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
