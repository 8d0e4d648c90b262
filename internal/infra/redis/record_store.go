package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"quiz-cli/internal/records"
)

// RecordStore keeps each record set in a Redis list:
//
//	RPUSH quiz:records:{kind} {line}
type RecordStore struct {
	client *redis.Client
	prefix string
}

func NewRecordStore(client *redis.Client) *RecordStore {
	return &RecordStore{client: client, prefix: "quiz:records:"}
}

func (s *RecordStore) key(kind records.Kind) string {
	return s.prefix + string(kind)
}

func (s *RecordStore) Lines(ctx context.Context, kind records.Kind) ([]string, error) {
	lines, err := s.client.LRange(ctx, s.key(kind), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	return lines, err
}

func (s *RecordStore) Append(ctx context.Context, kind records.Kind, line string) error {
	return s.client.RPush(ctx, s.key(kind), line).Err()
}

// Rewrite swaps the list contents inside MULTI/EXEC so readers never see a partial set.
func (s *RecordStore) Rewrite(ctx context.Context, kind records.Kind, lines []string) error {
	key := s.key(kind)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(lines) > 0 {
			values := make([]interface{}, len(lines))
			for i, l := range lines {
				values[i] = l
			}
			pipe.RPush(ctx, key, values...)
		}
		return nil
	})
	return err
}

func (s *RecordStore) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(records.Kinds))
	for _, kind := range records.Kinds {
		keys = append(keys, s.key(kind))
	}
	return s.client.Del(ctx, keys...).Err()
}
