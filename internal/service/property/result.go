package property

import "github.com/ricmershon/dwellio-sub005/internal/domain"

// SearchResult is one page of search results.
type SearchResult struct {
	Items      []domain.Property
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// BookmarkResult reports the bookmark state after a toggle.
type BookmarkResult struct {
	Bookmarked bool
	Message    string
}
