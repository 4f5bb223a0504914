package blog

import "errors"

var (
	// ErrPostNotFound is returned when no entry matches the given slug or id.
	ErrPostNotFound = errors.New("post not found")

	// ErrSlugExists is returned when a create or update would duplicate a slug.
	ErrSlugExists = errors.New("a post with this slug already exists")

	// ErrMissingTitle is returned when a post has no title to derive a slug from.
	ErrMissingTitle = errors.New("title is required")

	// ErrInvalidCategory is returned when the category is not one of the fixed set.
	ErrInvalidCategory = errors.New("invalid category")
)
