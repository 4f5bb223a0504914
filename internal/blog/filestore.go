package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/simpliexteriors/site-api/pkg/logging"
)

// document is the persisted envelope: the whole collection is read
// and rewritten as one JSON file on every mutation.
type document struct {
	Posts []Post `json:"posts"`
}

// FileStore persists posts in a single JSON document. The mutex only
// serializes writers within this process; concurrent processes
// editing the same file race (last writer wins on the whole file).
// Acceptable under the single-admin assumption this site runs with.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *logging.Logger
}

// NewFileStore creates a file-backed repository at path. The backing
// document is created lazily on first access.
func NewFileStore(path string, logger *logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := &document{Posts: []Post{}}
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("blog: read %s: %w", s.path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("blog: parse %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *FileStore) save(doc *document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("blog: create data dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("blog: marshal document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("blog: write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context, f Filter) ([]Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return filterPosts(doc.Posts, f), nil
}

func (s *FileStore) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Posts {
		if doc.Posts[i].Slug == slug && doc.Posts[i].Published {
			post := doc.Posts[i]
			return &post, nil
		}
	}
	return nil, ErrPostNotFound
}

func (s *FileStore) Create(ctx context.Context, post *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := prepareNew(post); err != nil {
		return err
	}
	for i := range doc.Posts {
		if doc.Posts[i].Slug == post.Slug {
			return ErrSlugExists
		}
	}
	doc.Posts = append(doc.Posts, *post)
	if err := s.save(doc); err != nil {
		return err
	}
	s.logger.Info("blog post created", "id", post.ID, "slug", post.Slug)
	return nil
}

func (s *FileStore) Update(ctx context.Context, post *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Posts {
		if doc.Posts[i].ID == post.ID {
			for j := range doc.Posts {
				if j != i && doc.Posts[j].Slug == post.Slug {
					return ErrSlugExists
				}
			}
			applyUpdate(&doc.Posts[i], post)
			doc.Posts[i] = *post
			if err := s.save(doc); err != nil {
				return err
			}
			s.logger.Info("blog post updated", "id", post.ID, "slug", post.Slug)
			return nil
		}
	}
	return ErrPostNotFound
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Posts {
		if doc.Posts[i].ID == id {
			doc.Posts = append(doc.Posts[:i], doc.Posts[i+1:]...)
			if err := s.save(doc); err != nil {
				return err
			}
			s.logger.Info("blog post deleted", "id", id)
			return nil
		}
	}
	return ErrPostNotFound
}
