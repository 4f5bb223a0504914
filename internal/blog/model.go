package blog

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Category is the fixed set of blog sections.
type Category string

const (
	CategoryRoofing     Category = "roofing"
	CategoryWindows     Category = "windows"
	CategorySiding      Category = "siding"
	CategoryGutters     Category = "gutters"
	CategoryMaintenance Category = "maintenance"
	CategoryNews        Category = "news"
)

// Post is a blog entry. Content is plain text with lightweight
// markup conventions (heading markers, list markers, blank-line
// paragraphs) that the site renders client-side.
type Post struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PublishedAt time.Time  `json:"publishedAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Featured    bool       `json:"featured"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Tags        []string   `json:"tags"`
	Category    Category   `json:"category"`
	ReadTime    int        `json:"readTime"`
	Published   bool       `json:"published"`
}

// CategoryInfo describes a blog section for the admin editor's
// category picker.
type CategoryInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        Category `json:"slug"`
	Description string   `json:"description"`
}

// Categories lists the fixed blog sections.
var Categories = []CategoryInfo{
	{ID: "1", Name: "Roofing", Slug: CategoryRoofing, Description: "Tips, guides, and insights about roofing"},
	{ID: "2", Name: "Windows", Slug: CategoryWindows, Description: "Window installation and maintenance advice"},
	{ID: "3", Name: "Siding", Slug: CategorySiding, Description: "Siding and stucco information"},
	{ID: "4", Name: "Gutters", Slug: CategoryGutters, Description: "Gutter system tips and maintenance"},
	{ID: "5", Name: "Maintenance", Slug: CategoryMaintenance, Description: "Home exterior maintenance guides"},
	{ID: "6", Name: "Company News", Slug: CategoryNews, Description: "Updates and news from Simpli"},
}

func validCategory(c Category) bool {
	for _, info := range Categories {
		if info.Slug == c {
			return true
		}
	}
	return false
}

var (
	slugRe     = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimRe = regexp.MustCompile(`(^-|-$)+`)
)

// GenerateSlug derives a URL slug from a title: lowercase, runs of
// non-alphanumerics collapsed to a single hyphen, edges trimmed.
func GenerateSlug(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	return slugTrimRe.ReplaceAllString(slug, "")
}

const wordsPerMinute = 200

// CalculateReadTime estimates reading minutes at 200 words per
// minute, rounded up. Empty content still counts as one minute,
// matching the stored values of the site's existing posts.
func CalculateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		words = 1
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
