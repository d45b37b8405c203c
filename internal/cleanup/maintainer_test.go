package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/myspace/internal/logging"
	"github.com/rohits-web03/myspace/internal/media"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/repositories/memory"
)

type fixture struct {
	store  *repositories.Store
	images *media.MemoryStore
	m      *Maintainer
	user   *models.User
	post   *models.Post
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := memory.New()
	images := media.NewMemoryStore("")

	u := &models.User{Name: "Owner", Email: "owner@x.com"}
	require.NoError(t, store.Users.Create(ctx, u))
	require.NoError(t, store.Notes.Create(ctx, &models.Note{UserID: u.ID, Title: "n", Description: "d"}))
	require.NoError(t, store.Contacts.Create(ctx, &models.Contact{UserID: u.ID, Name: "c"}))

	up, err := images.Upload(ctx, []byte("img"), "image/png")
	require.NoError(t, err)
	p := &models.Post{UserID: u.ID, Pic: up.URL, ImageID: up.ID}
	require.NoError(t, store.Posts.Create(ctx, p))

	return &fixture{
		store:  store,
		images: images,
		m:      NewMaintainer(store, images, logging.Discard()),
		user:   u,
		post:   p,
	}
}

func (f *fixture) remaining(t *testing.T) (notes, contacts, posts int) {
	t.Helper()
	ctx := context.Background()

	n, err := f.store.Notes.ListByOwner(ctx, f.user.ID)
	require.NoError(t, err)
	c, err := f.store.Contacts.ListByOwner(ctx, f.user.ID)
	require.NoError(t, err)
	p, err := f.store.Posts.List(ctx, &f.user.ID)
	require.NoError(t, err)
	return len(n), len(c), len(p)
}

func TestRun_RemovesEverythingOwned(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	job, err := f.store.Users.Delete(ctx, f.user.ID)
	require.NoError(t, err)
	require.NoError(t, f.m.Run(ctx, *job))

	notes, contacts, posts := f.remaining(t)
	assert.Zero(t, notes)
	assert.Zero(t, contacts)
	assert.Zero(t, posts)
	assert.False(t, f.images.Has(f.post.ImageID))

	pending, err := f.store.Cleanup.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// A second run of the same job is harmless.
	assert.NoError(t, f.m.Run(ctx, *job))
}

func TestRun_FailureKeepsJobForRetry(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	job, err := f.store.Users.Delete(ctx, f.user.ID)
	require.NoError(t, err)

	f.images.SetFailures(false, true)
	require.Error(t, f.m.Run(ctx, *job))

	_, _, posts := f.remaining(t)
	assert.Equal(t, 1, posts, "posts stay until their images are gone")

	pending, err := f.store.Cleanup.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.NotEmpty(t, pending[0].LastError)

	f.images.SetFailures(false, false)
	done, err := f.m.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, done)

	notes, contacts, posts := f.remaining(t)
	assert.Zero(t, notes+contacts+posts)
}

func TestStart_SweepsUntilCancelled(t *testing.T) {
	f := setup(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := f.store.Users.Delete(ctx, f.user.ID)
	require.NoError(t, err)

	finished := make(chan struct{})
	go func() {
		f.m.Start(ctx, 5*time.Millisecond)
		close(finished)
	}()

	assert.Eventually(t, func() bool {
		pending, err := f.store.Cleanup.Pending(context.Background(), 10)
		return err == nil && len(pending) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestReconcile_RebuildsReferences(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.store.Users.SetRefs(ctx, f.user.ID, []string{"stale"}, nil, nil))
	require.NoError(t, f.m.Reconcile(ctx, f.user.ID))

	u, err := f.store.Users.GetByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, u.Notes, 1)
	assert.NotContains(t, u.Notes, "stale")
	assert.Len(t, u.Contacts, 1)
	assert.Equal(t, []string{f.post.ID.String()}, []string(u.Posts))
}

func TestReconcileAll_RepairsEveryUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	other := &models.User{Name: "Other", Email: "other@x.com"}
	require.NoError(t, f.store.Users.Create(ctx, other))
	require.NoError(t, f.store.Users.SetRefs(ctx, f.user.ID, nil, nil, nil))
	require.NoError(t, f.store.Users.SetRefs(ctx, other.ID, []string{"ghost"}, nil, []string{"ghost"}))

	n, err := f.m.ReconcileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	u, err := f.store.Users.GetByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, u.Notes, 1)
	assert.Len(t, u.Contacts, 1)
	assert.Equal(t, []string{f.post.ID.String()}, []string(u.Posts))

	o, err := f.store.Users.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, o.Notes)
	assert.Empty(t, o.Posts)
}
