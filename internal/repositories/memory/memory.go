// Package memory is an in-process implementation of the repositories,
// used for local development and tests. All repositories of one store
// share a single lock so reverse-reference updates stay atomic like the
// Postgres transactions.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
)

type db struct {
	mu       sync.RWMutex
	now      func() time.Time
	users    map[uuid.UUID]models.User
	notes    map[uuid.UUID]models.Note
	contacts map[uuid.UUID]models.Contact
	posts    map[uuid.UUID]models.Post
	jobs     map[uuid.UUID]models.CleanupJob
}

// New returns an empty store.
func New() *repositories.Store {
	d := &db{
		now:      time.Now,
		users:    map[uuid.UUID]models.User{},
		notes:    map[uuid.UUID]models.Note{},
		contacts: map[uuid.UUID]models.Contact{},
		posts:    map[uuid.UUID]models.Post{},
		jobs:     map[uuid.UUID]models.CleanupJob{},
	}
	return repositories.NewStore(
		&users{d}, &notes{d}, &contacts{d}, &posts{d}, &cleanup{d}, nil,
	)
}

// tick returns a strictly increasing timestamp so ordering by creation time
// is stable even within one clock tick.
func (d *db) tick(last time.Time) time.Time {
	t := d.now().UTC()
	if !t.After(last) {
		t = last.Add(time.Microsecond)
	}
	return t
}

func (d *db) latest() time.Time {
	var last time.Time
	for _, p := range d.posts {
		last = maxTime(last, p.CreatedAt)
		for _, c := range p.Comments {
			last = maxTime(last, c.CreatedAt)
		}
	}
	for _, j := range d.jobs {
		last = maxTime(last, j.CreatedAt)
	}
	return last
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func cloneArray(s pq.StringArray) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return slices.Clone(s)
}

func cloneUser(u models.User) *models.User {
	u.Notes = cloneArray(u.Notes)
	u.Contacts = cloneArray(u.Contacts)
	u.Posts = cloneArray(u.Posts)
	return &u
}

func clonePost(p models.Post) *models.Post {
	p.Likes = cloneArray(p.Likes)
	p.Comments = slices.Clone(p.Comments)
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	return &p
}

// addRef and dropRef mirror array_append and array_remove.
func (d *db) addRef(owner uuid.UUID, id uuid.UUID, pick func(*models.User) *pq.StringArray) bool {
	u, ok := d.users[owner]
	if !ok {
		return false
	}
	u = *cloneUser(u)
	refs := pick(&u)
	*refs = append(*refs, id.String())
	u.UpdatedAt = d.now().UTC()
	d.users[owner] = u
	return true
}

func (d *db) dropRef(owner uuid.UUID, id uuid.UUID, pick func(*models.User) *pq.StringArray) {
	u, ok := d.users[owner]
	if !ok {
		return
	}
	u = *cloneUser(u)
	refs := pick(&u)
	*refs = slices.DeleteFunc(*refs, func(s string) bool { return s == id.String() })
	u.UpdatedAt = d.now().UTC()
	d.users[owner] = u
}

func noteRefs(u *models.User) *pq.StringArray    { return &u.Notes }
func contactRefs(u *models.User) *pq.StringArray { return &u.Contacts }
func postRefs(u *models.User) *pq.StringArray    { return &u.Posts }

// owned reports whether a resource belongs to owner or is listed in ids.
func owned(resOwner, resID, owner uuid.UUID, ids []string) bool {
	return resOwner == owner || slices.Contains(ids, resID.String())
}

type users struct{ *db }

func (r *users) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repositories.ErrDuplicate
		}
		if u.GoogleID != "" && existing.GoogleID == u.GoogleID {
			return repositories.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := r.now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	u.Notes, u.Contacts, u.Posts = cloneArray(u.Notes), cloneArray(u.Contacts), cloneArray(u.Posts)
	r.users[u.ID] = *cloneUser(*u)
	return nil
}

func (r *users) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *users) GetByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	if googleID == "" {
		return nil, repositories.ErrNotFound
	}
	return r.find(func(u models.User) bool { return u.GoogleID == googleID })
}

func (r *users) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *users) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[u.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for id, other := range r.users {
		if id != u.ID && strings.EqualFold(other.Email, u.Email) {
			return repositories.ErrDuplicate
		}
	}

	current.Name = u.Name
	current.Email = u.Email
	current.Phone = u.Phone
	current.DOB = u.DOB
	current.PasswordHash = u.PasswordHash
	current.GoogleID = u.GoogleID
	current.UpdatedAt = r.now().UTC()
	r.users[u.ID] = current

	u.UpdatedAt = current.UpdatedAt
	return nil
}

func (r *users) Delete(_ context.Context, id uuid.UUID) (*models.CleanupJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(r.users, id)

	now := r.tick(r.latest())
	job := models.CleanupJob{
		ID:         uuid.New(),
		UserID:     u.ID,
		NoteIDs:    cloneArray(u.Notes),
		ContactIDs: cloneArray(u.Contacts),
		PostIDs:    cloneArray(u.Posts),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.jobs[job.ID] = job
	return &job, nil
}

func (r *users) ListIDs(context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	slices.SortFunc(all, func(a, b models.User) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), strings.Compare(a.ID.String(), b.ID.String()))
	})
	ids := make([]uuid.UUID, len(all))
	for i, u := range all {
		ids[i] = u.ID
	}
	return ids, nil
}

func (r *users) SetRefs(_ context.Context, id uuid.UUID, notes, contacts, posts []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Notes = cloneArray(notes)
	u.Contacts = cloneArray(contacts)
	u.Posts = cloneArray(posts)
	u.UpdatedAt = r.now().UTC()
	r.users[id] = u
	return nil
}

type notes struct{ *db }

func (r *notes) Create(_ context.Context, n *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if _, exists := r.notes[n.ID]; exists {
		return repositories.ErrDuplicate
	}
	now := r.now().UTC()
	n.CreatedAt, n.UpdatedAt = now, now
	if !r.addRef(n.UserID, n.ID, noteRefs) {
		return repositories.ErrNotFound
	}
	r.notes[n.ID] = *n
	return nil
}

func (r *notes) ListByOwner(_ context.Context, owner uuid.UUID) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Note{}
	for _, n := range r.notes {
		if n.UserID == owner {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b models.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (r *notes) GetByID(_ context.Context, id uuid.UUID) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (r *notes) Update(_ context.Context, n *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.notes[n.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	current.Title = n.Title
	current.Description = n.Description
	current.UpdatedAt = r.now().UTC()
	r.notes[n.ID] = current
	*n = current
	return nil
}

func (r *notes) Delete(_ context.Context, n *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[n.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.notes, n.ID)
	r.dropRef(n.UserID, n.ID, noteRefs)
	return nil
}

func (r *notes) DeleteByOwner(_ context.Context, owner uuid.UUID, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, note := range r.notes {
		if owned(note.UserID, id, owner, ids) {
			delete(r.notes, id)
			n++
		}
	}
	return n, nil
}

type contacts struct{ *db }

func (r *contacts) nameTaken(owner, self uuid.UUID, name string) bool {
	for id, c := range r.contacts {
		if id != self && c.UserID == owner && c.Name == name {
			return true
		}
	}
	return false
}

func (r *contacts) Create(_ context.Context, c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(c.UserID, uuid.Nil, c.Name) {
		return repositories.ErrDuplicate
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := r.now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if !r.addRef(c.UserID, c.ID, contactRefs) {
		return repositories.ErrNotFound
	}
	r.contacts[c.ID] = *c
	return nil
}

func (r *contacts) ListByOwner(_ context.Context, owner uuid.UUID) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Contact{}
	for _, c := range r.contacts {
		if c.UserID == owner {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b models.Contact) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *contacts) GetByID(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r *contacts) GetByName(_ context.Context, owner uuid.UUID, name string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.UserID == owner && c.Name == name {
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *contacts) Update(_ context.Context, c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.contacts[c.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	if r.nameTaken(current.UserID, c.ID, c.Name) {
		return repositories.ErrDuplicate
	}
	current.Name = c.Name
	current.Email = c.Email
	current.Phone = c.Phone
	current.Address = c.Address
	current.DOB = c.DOB
	current.UpdatedAt = r.now().UTC()
	r.contacts[c.ID] = current
	*c = current
	return nil
}

func (r *contacts) Delete(_ context.Context, c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[c.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.contacts, c.ID)
	r.dropRef(c.UserID, c.ID, contactRefs)
	return nil
}

func (r *contacts) DeleteByOwner(_ context.Context, owner uuid.UUID, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, c := range r.contacts {
		if owned(c.UserID, id, owner, ids) {
			delete(r.contacts, id)
			n++
		}
	}
	return n, nil
}

type posts struct{ *db }

func (r *posts) Create(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := r.tick(r.latest())
	p.CreatedAt, p.UpdatedAt = now, now
	p.Likes = cloneArray(p.Likes)
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	if !r.addRef(p.UserID, p.ID, postRefs) {
		return repositories.ErrNotFound
	}
	r.posts[p.ID] = *clonePost(*p)
	return nil
}

func (r *posts) List(_ context.Context, owner *uuid.UUID) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Post{}
	for _, p := range r.posts {
		if owner == nil || p.UserID == *owner {
			out = append(out, *clonePost(p))
		}
	}
	slices.SortFunc(out, func(a, b models.Post) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (r *posts) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *posts) Update(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.posts[p.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	current.Pic = p.Pic
	current.Caption = p.Caption
	current.UpdatedAt = r.now().UTC()
	r.posts[p.ID] = current
	*p = *clonePost(current)
	return nil
}

func (r *posts) Delete(_ context.Context, p *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, p.ID)
	r.dropRef(p.UserID, p.ID, postRefs)
	return nil
}

func (r *posts) ToggleLike(_ context.Context, id uuid.UUID, userID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p = *clonePost(p)
	if p.LikedBy(userID) {
		p.Likes = slices.DeleteFunc(p.Likes, func(s string) bool { return s == userID })
	} else {
		p.Likes = append(p.Likes, userID)
	}
	p.UpdatedAt = r.now().UTC()
	r.posts[id] = p
	return clonePost(p), nil
}

func (r *posts) AddComment(_ context.Context, c *models.Comment) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[c.PostID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = r.tick(r.latest())

	p = *clonePost(p)
	p.Comments = append(p.Comments, *c)
	r.posts[p.ID] = p
	return clonePost(p), nil
}

func (r *posts) ListOwned(_ context.Context, owner uuid.UUID, ids []string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Post{}
	for id, p := range r.posts {
		if owned(p.UserID, id, owner, ids) {
			out = append(out, *clonePost(p))
		}
	}
	return out, nil
}

func (r *posts) DeleteByOwner(_ context.Context, owner uuid.UUID, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, p := range r.posts {
		if owned(p.UserID, id, owner, ids) {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

type cleanup struct{ *db }

func (r *cleanup) Pending(_ context.Context, limit int) ([]models.CleanupJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CleanupJob, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	slices.SortFunc(out, func(a, b models.CleanupJob) int { return a.CreatedAt.Compare(b.CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *cleanup) RecordFailure(_ context.Context, id uuid.UUID, cause string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil
	}
	j.Attempts++
	j.LastError = cause
	j.UpdatedAt = r.now().UTC()
	r.jobs[id] = j
	return nil
}

func (r *cleanup) Complete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.jobs, id)
	return nil
}
