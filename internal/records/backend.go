package records

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"quiz-cli/internal/infra/memory"
)

// Backend persists record lines, one set per Kind.
type Backend interface {
	// Lines returns every line of a set in insertion order; a missing set is empty.
	Lines(ctx context.Context, kind Kind) ([]string, error)
	// Append adds one line at the end of a set.
	Append(ctx context.Context, kind Kind, line string) error
	// Rewrite replaces a whole set.
	Rewrite(ctx context.Context, kind Kind, lines []string) error
	// Clear removes every set.
	Clear(ctx context.Context) error
}

// Load fetches the four record sets concurrently and decodes them into a store.
func Load(ctx context.Context, b Backend) (*memory.Store, error) {
	var (
		mu   sync.Mutex
		sets = make(map[Kind][]string, len(Kinds))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range Kinds {
		kind := kind
		g.Go(func() error {
			lines, err := b.Lines(gctx, kind)
			if err != nil {
				return fmt.Errorf("read %s: %w", kind, err)
			}
			mu.Lock()
			sets[kind] = lines
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Decode(sets)
}
