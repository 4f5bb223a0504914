package blog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Filter narrows List results. The zero value returns published
// posts across all categories, newest first.
type Filter struct {
	Category      Category
	FeaturedOnly  bool
	IncludeDrafts bool
}

// Repository defines the interface for blog post storage.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
}

// prepareNew fills the server-assigned fields of a new post. Caller-
// supplied values for id and publishedAt are overwritten.
func prepareNew(post *Post) error {
	if post.Title == "" {
		return ErrMissingTitle
	}
	if !validCategory(post.Category) {
		return ErrInvalidCategory
	}
	if post.Slug == "" {
		post.Slug = GenerateSlug(post.Title)
	}
	post.ID = uuid.NewString()
	post.PublishedAt = time.Now().UTC()
	post.UpdatedAt = nil
	post.ReadTime = CalculateReadTime(post.Content)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return nil
}

// applyUpdate merges an update onto the stored post, keeping the
// identifier and creation timestamp immutable.
func applyUpdate(existing *Post, update *Post) {
	update.ID = existing.ID
	if update.Slug == "" {
		update.Slug = existing.Slug
	}
	update.PublishedAt = existing.PublishedAt
	now := time.Now().UTC()
	update.UpdatedAt = &now
	if update.Content != "" {
		update.ReadTime = CalculateReadTime(update.Content)
	} else {
		update.Content = existing.Content
		update.ReadTime = existing.ReadTime
	}
	if update.Tags == nil {
		update.Tags = existing.Tags
	}
}

func filterPosts(posts []Post, f Filter) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		if !f.IncludeDrafts && !p.Published {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

// MemoryRepository keeps posts in memory. It backs tests and local
// development; production uses the file-backed store.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts []Post
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) List(ctx context.Context, f Filter) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return filterPosts(r.posts, f), nil
}

func (r *MemoryRepository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.posts {
		if r.posts[i].Slug == slug && r.posts[i].Published {
			post := r.posts[i]
			return &post, nil
		}
	}
	return nil, ErrPostNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, post *Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := prepareNew(post); err != nil {
		return err
	}
	for i := range r.posts {
		if r.posts[i].Slug == post.Slug {
			return ErrSlugExists
		}
	}
	r.posts = append(r.posts, *post)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, post *Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			for j := range r.posts {
				if j != i && r.posts[j].Slug == post.Slug {
					return ErrSlugExists
				}
			}
			applyUpdate(&r.posts[i], post)
			r.posts[i] = *post
			return nil
		}
	}
	return ErrPostNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrPostNotFound
}
