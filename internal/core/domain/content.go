package domain

import "math"

// Content is a published item with read-only engagement aggregates.
// Comments is a stored count, never recomputed from comment records.
type Content struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Subscribers int    `json:"subscribers"`
}

// ContentPatch carries a partial content update.
type ContentPatch struct {
	Title       *string `json:"title,omitempty"`
	Views       *int    `json:"views,omitempty"`
	Likes       *int    `json:"likes,omitempty"`
	Comments    *int    `json:"comments,omitempty"`
	Subscribers *int    `json:"subscribers,omitempty"`
}

// Merge returns c with every provided field of p applied over it.
func (p ContentPatch) Merge(c Content) Content {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Views != nil {
		c.Views = *p.Views
	}
	if p.Likes != nil {
		c.Likes = *p.Likes
	}
	if p.Comments != nil {
		c.Comments = *p.Comments
	}
	if p.Subscribers != nil {
		c.Subscribers = *p.Subscribers
	}
	return c
}

// EngagementRate is (likes + comments) per 100 views, rounded. Zero views yield 0.
func (c Content) EngagementRate() int {
	return Percent(c.Likes+c.Comments, c.Views)
}

// Percent returns round(part/whole*100), or 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
