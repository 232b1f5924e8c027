package entities

import "slices"

// Page is one page of a list endpoint.
type Page[T any] struct {
	Info    Info `json:"info" yaml:"info"`
	Results []T  `json:"results" yaml:"results"`
}

// Info describes where a page sits in its listing.
type Info struct {
	Count int     `json:"count" yaml:"count"`         // Total number of items
	Pages int     `json:"pages" yaml:"pages"`         // Total number of pages
	Next  *string `json:"next" yaml:"next,omitempty"` // URL of the next page, nil on the last page
	Prev  *string `json:"prev" yaml:"prev,omitempty"` // URL of the previous page, nil on the first page
}

// HasNext reports whether another page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Info.Next != nil
}

// Clone returns a copy of p whose Results can be modified freely.
func (p Page[T]) Clone() Page[T] {
	p.Results = slices.Clone(p.Results)
	return p
}
