package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/reelhub/media-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by ID
	nextID    int
	findErr   error
	createErr error
	updates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// Create mirrors the unique index on username.
func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[c.ID] = cloneUser(c)
	return c, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.updates++
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

// stubHasher keeps tests fast; the real KDF is covered in its own package.
type stubHasher struct {
	setErr error
}

func (h stubHasher) SetPassword(user *domain.User, password string) error {
	if h.setErr != nil {
		return h.setErr
	}
	user.Salt = "salt"
	user.PasswordHash = "hash:" + password
	return nil
}

func (h stubHasher) Verify(user *domain.User, candidate string) bool {
	return user.PasswordHash == "hash:"+candidate
}

type stubTokens struct {
	err error
}

func (s stubTokens) Issue(userID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + userID, nil
}

type stubReserver struct {
	mu       sync.Mutex
	held     map[string]bool
	err      error
	released []string
}

func newStubReserver() *stubReserver {
	return &stubReserver{held: make(map[string]bool)}
}

func (r *stubReserver) Reserve(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	if r.held[username] {
		return false, nil
	}
	r.held[username] = true
	return true, nil
}

func (r *stubReserver) Release(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.held, username)
	r.released = append(r.released, username)
	return nil
}

type stubFavoriteRepo struct {
	favs      map[string]*domain.Favorite
	nextID    int
	findErr   error
	createErr error
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favs: make(map[string]*domain.Favorite)}
}

func (r *stubFavoriteRepo) FindByUserAndMedia(_ context.Context, userID, mediaID string) (*domain.Favorite, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, f := range r.favs {
		if f.UserID == userID && f.MediaID == mediaID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubFavoriteRepo) Create(_ context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *fav
	clone.ID = fmt.Sprintf("fav-%d", r.nextID)
	r.favs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFavoriteRepo) DeleteForUser(_ context.Context, userID, favoriteID string) error {
	f, ok := r.favs[favoriteID]
	if !ok || f.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.favs, favoriteID)
	return nil
}

func (r *stubFavoriteRepo) ListByUser(_ context.Context, userID string) ([]*domain.Favorite, error) {
	var out []*domain.Favorite
	for _, f := range r.favs {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type stubReviewRepo struct {
	reviews  map[string]*domain.Review
	authors  map[string]*domain.User
	nextID   int
	listErr  error
	mediaHit string
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{
		reviews: make(map[string]*domain.Review),
		authors: make(map[string]*domain.User),
	}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.nextID++
	clone := *review
	clone.ID = fmt.Sprintf("rev-%d", r.nextID)
	r.reviews[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) DeleteForUser(_ context.Context, userID, reviewID string) error {
	rv, ok := r.reviews[reviewID]
	if !ok || rv.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.reviews, reviewID)
	return nil
}

func (r *stubReviewRepo) ListByUser(_ context.Context, userID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.UserID == userID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByMedia(_ context.Context, mediaID string) ([]*domain.Review, error) {
	r.mediaHit = mediaID
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.MediaID == mediaID {
			clone := *rv
			clone.Author = r.authors[rv.UserID]
			out = append(out, &clone)
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
