// Package pagination computes page windows over in-memory collections and derives
// navigation buttons and status lines from them.
// It knows nothing about Telegram, HTTP or storage: callers hand in a stable slice and
// get back plain values they can render however they like.
package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a programming error such as a non-positive page size.
var ErrInvalidArgument = errors.New("invalid argument")

// PageDescriptor describes one computed page. It is built fresh on every call
// and never points back at the source collection.
type PageDescriptor struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	ItemsPerPage int  `json:"items_per_page"`
	TotalItems   int  `json:"total_items"`
	StartItem    int  `json:"start_item"` // 1-based, 0 when the collection is empty
	EndItem      int  `json:"end_item"`   // 1-based inclusive
	HasPrevious  bool `json:"has_previous"`
	HasNext      bool `json:"has_next"`
}

// NavigationButton is a UI-agnostic button descriptor.
type NavigationButton struct {
	Label       string `json:"label"`
	ActionToken string `json:"action_token"`
}

// Paginator is the public pagination contract.
type Paginator[T any] interface {
	// Paginate returns the items visible on page together with its descriptor.
	// Out-of-range pages are clamped; itemsPerPage <= 0 fails with ErrInvalidArgument.
	Paginate(items []T, page, itemsPerPage int) ([]T, PageDescriptor, error)
	// BuildNavigationButtons returns previous/info/next buttons in that order,
	// omitting the ones that do not apply.
	BuildNavigationButtons(d PageDescriptor, actionPrefix string) []NavigationButton
	// FormatStatusText renders a plain-text status line for d.
	FormatStatusText(d PageDescriptor, entityLabel string) string
}

type paginator[T any] struct {
	labels Labels
}

// New builds a stateless Paginator. Zero-valued label fields fall back to DefaultLabels.
func New[T any](labels Labels) Paginator[T] {
	labels.setDefaults()
	return &paginator[T]{labels: labels}
}

func (p *paginator[T]) Paginate(items []T, page, itemsPerPage int) ([]T, PageDescriptor, error) {
	if itemsPerPage <= 0 {
		return nil, PageDescriptor{}, fmt.Errorf("%w: items per page must be > 0, got %d", ErrInvalidArgument, itemsPerPage)
	}

	totalItems := len(items)
	totalPages := countPages(totalItems, itemsPerPage)

	// Stale page numbers degrade to the nearest valid page.
	page = max(0, min(page, totalPages-1))

	start := page * itemsPerPage
	end := min(start+itemsPerPage, totalItems)

	d := PageDescriptor{
		CurrentPage:  page,
		TotalPages:   totalPages,
		ItemsPerPage: itemsPerPage,
		TotalItems:   totalItems,
		EndItem:      end,
		HasPrevious:  page > 0,
		HasNext:      page < totalPages-1,
	}
	if totalItems > 0 {
		d.StartItem = start + 1
	}

	// Cap the capacity so an append by the caller can't write into the source.
	return items[start:end:end], d, nil
}

func (p *paginator[T]) BuildNavigationButtons(d PageDescriptor, actionPrefix string) []NavigationButton {
	buttons := make([]NavigationButton, 0, 3)
	if d.HasPrevious {
		buttons = append(buttons, NavigationButton{
			Label:       p.labels.Previous,
			ActionToken: PageToken(actionPrefix, d.CurrentPage-1),
		})
	}
	if d.TotalPages > 1 {
		buttons = append(buttons, NavigationButton{
			Label:       fmt.Sprintf(p.labels.InfoFormat, d.CurrentPage+1, d.TotalPages),
			ActionToken: InfoToken(actionPrefix),
		})
	}
	if d.HasNext {
		buttons = append(buttons, NavigationButton{
			Label:       p.labels.Next,
			ActionToken: PageToken(actionPrefix, d.CurrentPage+1),
		})
	}
	return buttons
}

func (p *paginator[T]) FormatStatusText(d PageDescriptor, entityLabel string) string {
	if d.TotalItems == 0 {
		return fmt.Sprintf(p.labels.EmptyFormat, entityLabel)
	}
	return fmt.Sprintf(p.labels.PageFormat, d.CurrentPage+1, d.TotalPages) + "\n" +
		fmt.Sprintf(p.labels.RangeFormat, d.StartItem, d.EndItem, d.TotalItems, entityLabel)
}

// countPages is ceil(n/k) without the n+k-1 overflow, and never less than 1.
func countPages(n, k int) int {
	pages := n / k
	if n%k != 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}
