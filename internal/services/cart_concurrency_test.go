package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	pkgerrors "github.com/sumitk238/shopping-cart/internal/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func TestCartService_ConcurrentUpdatesDoNotLoseDeltas(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	if err := svc.AddItem(ctx, 1, 10, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// 1 + 4 stays within the allowed maximum of 5
	const increments = 4
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < increments; i++ {
		g.Go(func() error {
			return svc.UpdateItem(gctx, 1, 10, 1)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent UpdateItem failed: %v", err)
	}

	count, err := svc.CountItem(ctx, 1, 10)
	if err != nil {
		t.Fatalf("CountItem: %v", err)
	}
	if count != 1+increments {
		t.Fatalf("expected quantity %d, got %d", 1+increments, count)
	}
}

func TestCartService_ConcurrentAddsInsertExactlyOnce(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	const attempts = 8
	var added int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			err := svc.AddItem(gctx, 1, 10, 3)
			if err == nil {
				atomic.AddInt64(&added, 1)
				return nil
			}
			if errors.Is(err, pkgerrors.ErrDuplicateItem) {
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	if added != 1 {
		t.Fatalf("expected exactly 1 successful add, got %d", added)
	}
	count, err := svc.CountItem(ctx, 1, 10)
	if err != nil {
		t.Fatalf("CountItem: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected quantity 3, got %d", count)
	}
}

func TestCartService_ConcurrentDecrementsDeleteOnce(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	if err := svc.AddItem(ctx, 1, 10, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// three decrements drain the line to zero; any extra must observe absence
	const decrements = 5
	var applied, missed int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < decrements; i++ {
		g.Go(func() error {
			err := svc.UpdateItem(gctx, 1, 10, -1)
			if err == nil {
				atomic.AddInt64(&applied, 1)
				return nil
			}
			if errors.Is(err, pkgerrors.ErrItemNotFound) {
				atomic.AddInt64(&missed, 1)
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent UpdateItem failed: %v", err)
	}

	if applied != 3 || missed != 2 {
		t.Fatalf("expected 3 applied and 2 not-found, got %d applied and %d not-found", applied, missed)
	}
	count, err := svc.CountItem(ctx, 1, 10)
	if err != nil {
		t.Fatalf("CountItem: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected quantity 0, got %d", count)
	}
}
