// Package cleanup removes what a deleted user owned and keeps reverse
// reference sets in line with actual ownership.
//
// A user deletion commits together with a CleanupJob. The job is run once
// right away; if anything fails it stays queued and the background sweep
// retries it. Every step is idempotent, so a job can run any number of
// times.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/myspace/internal/media"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
)

const (
	defaultBatchSize   = 50
	imageDeleteWorkers = 4
)

type Maintainer struct {
	store     *repositories.Store
	images    media.Store
	log       *slog.Logger
	batchSize int
}

func NewMaintainer(store *repositories.Store, images media.Store, log *slog.Logger) *Maintainer {
	return &Maintainer{
		store:     store,
		images:    images,
		log:       log,
		batchSize: defaultBatchSize,
	}
}

// Run processes one job. On failure the attempt is recorded and the job
// stays queued.
func (m *Maintainer) Run(ctx context.Context, job models.CleanupJob) error {
	log := m.log.With("job_id", job.ID, "user_id", job.UserID)

	if err := m.purge(ctx, job); err != nil {
		log.WarnContext(ctx, "cleanup failed", "attempt", job.Attempts+1, "error", err)
		if recErr := m.store.Cleanup.RecordFailure(ctx, job.ID, err.Error()); recErr != nil {
			log.ErrorContext(ctx, "failed to record cleanup failure", "error", recErr)
		}
		return err
	}

	if err := m.store.Cleanup.Complete(ctx, job.ID); err != nil {
		log.ErrorContext(ctx, "failed to complete cleanup job", "error", err)
		return fmt.Errorf("complete job: %w", err)
	}
	log.InfoContext(ctx, "cleanup completed")
	return nil
}

// purge deletes hosted images before the post rows, so a failed image
// deletion leaves the posts, and with them the handles, for the next try.
func (m *Maintainer) purge(ctx context.Context, job models.CleanupJob) error {
	posts, err := m.store.Posts.ListOwned(ctx, job.UserID, job.PostIDs)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageDeleteWorkers)
	for _, p := range posts {
		if p.ImageID == "" {
			continue
		}
		id := p.ImageID
		g.Go(func() error {
			if err := m.images.Delete(gctx, id); err != nil {
				return fmt.Errorf("delete image %s: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := m.store.Notes.DeleteByOwner(gctx, job.UserID, job.NoteIDs)
		if err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		_, err := m.store.Contacts.DeleteByOwner(gctx, job.UserID, job.ContactIDs)
		if err != nil {
			return fmt.Errorf("delete contacts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		_, err := m.store.Posts.DeleteByOwner(gctx, job.UserID, job.PostIDs)
		if err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Sweep runs every pending job once and returns how many completed.
func (m *Maintainer) Sweep(ctx context.Context) (int, error) {
	jobs, err := m.store.Cleanup.Pending(ctx, m.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending cleanup jobs: %w", err)
	}

	done := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}
		if err := m.Run(ctx, job); err == nil {
			done++
		}
	}
	return done, nil
}

// Start sweeps on every tick until ctx is cancelled.
func (m *Maintainer) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := m.Sweep(ctx)
			if err != nil && ctx.Err() == nil {
				m.log.ErrorContext(ctx, "cleanup sweep failed", "error", err)
				continue
			}
			if n > 0 {
				m.log.InfoContext(ctx, "cleanup sweep finished", "completed", n)
			}
		}
	}
}

// ReconcileAll runs Reconcile for every user and returns how many were
// rewritten. It keeps going past a failing user and reports the first error.
func (m *Maintainer) ReconcileAll(ctx context.Context) (int, error) {
	ids, err := m.store.Users.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	var firstErr error
	done := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}
		if err := m.Reconcile(ctx, id); err != nil {
			m.log.WarnContext(ctx, "reconcile failed", "user_id", id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		done++
	}
	return done, firstErr
}

// Reconcile rewrites a user's reverse-reference sets from the resources
// that actually name the user as owner.
func (m *Maintainer) Reconcile(ctx context.Context, userID uuid.UUID) error {
	notes, err := m.store.Notes.ListByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	contacts, err := m.store.Contacts.ListByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}
	posts, err := m.store.Posts.List(ctx, &userID)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	noteIDs := make([]string, 0, len(notes))
	for _, n := range notes {
		noteIDs = append(noteIDs, n.ID.String())
	}
	contactIDs := make([]string, 0, len(contacts))
	for _, c := range contacts {
		contactIDs = append(contactIDs, c.ID.String())
	}
	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID.String())
	}

	if err := m.store.Users.SetRefs(ctx, userID, noteIDs, contactIDs, postIDs); err != nil {
		return fmt.Errorf("set refs: %w", err)
	}
	return nil
}
