package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestLockIsExclusive(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	client := newClient(mr)
	first := NewLock(client, time.Minute)
	second := NewLock(client, time.Minute)

	if err := first.Acquire(ctx); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !mr.Exists("quiz:lock") {
		t.Fatalf("expected lock key to be set")
	}
	if err := second.Acquire(ctx); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	// releasing a lock we never held leaves the owner's key alone
	if err := second.Release(ctx); err != nil {
		t.Fatalf("release foreign: %v", err)
	}
	if !mr.Exists("quiz:lock") {
		t.Fatalf("expected lock still held")
	}

	if err := first.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	if mr.Exists("quiz:lock") {
		t.Fatalf("expected lock key to be removed")
	}
	if err := second.Acquire(ctx); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}

func TestLockExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	client := newClient(mr)
	if err := NewLock(client, time.Second).Acquire(ctx); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if err := NewLock(client, time.Second).Acquire(ctx); err != nil {
		t.Fatalf("expected expired lock to be free, got %v", err)
	}
}
