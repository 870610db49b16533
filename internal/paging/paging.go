package paging

import (
	"html"
	"strconv"
	"strings"
)

// Info describes one page of a listing. Pages are 1-based.
type Info struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
}

// TotalPages is ceil(TotalItems / ItemsPerPage).
func (i Info) TotalPages() int {
	if i.ItemsPerPage <= 0 || i.TotalItems <= 0 {
		return 0
	}
	pages := i.TotalItems / i.ItemsPerPage
	if i.TotalItems%i.ItemsPerPage != 0 {
		pages++
	}
	return pages
}

// Offset is the number of items preceding the current page. Callers must
// keep CurrentPage within 1..TotalPages.
func (i Info) Offset() int {
	return (i.CurrentPage - 1) * i.ItemsPerPage
}

// Link is a single pagination control.
type Link struct {
	Page    int    `json:"page"`
	URL     string `json:"url"`
	Current bool   `json:"current"`
}

// Links returns one link per page, 1..TotalPages, in ascending order.
func Links(info Info, pageURL func(page int) string) []Link {
	total := info.TotalPages()
	out := make([]Link, 0, total)
	for page := 1; page <= total; page++ {
		out = append(out, Link{
			Page:    page,
			URL:     pageURL(page),
			Current: page == info.CurrentPage,
		})
	}
	return out
}

const (
	linkClass         = "btn btn-default"
	selectedLinkClass = "btn btn-default btn-primary selected"
)

// RenderLinks concatenates links into bootstrap-styled anchors, e.g.
// <a class="btn btn-default" href="Page1">1</a>.
func RenderLinks(links []Link) string {
	var b strings.Builder
	for _, l := range links {
		class := linkClass
		if l.Current {
			class = selectedLinkClass
		}
		b.WriteString(`<a class="`)
		b.WriteString(class)
		b.WriteString(`" href="`)
		b.WriteString(html.EscapeString(l.URL))
		b.WriteString(`">`)
		b.WriteString(strconv.Itoa(l.Page))
		b.WriteString(`</a>`)
	}
	return b.String()
}
