package tether

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// PlaceholderImage is returned by Project.ImageAt when a project has no
// image at the requested index.
const PlaceholderImage = "/placeholder.png"

// SwipeThreshold is the minimum horizontal travel, in pixels, that counts as
// a swipe.
const SwipeThreshold = 50.0

// Project is one entry of the portfolio catalog.
type Project struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Images      []string `json:"images"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	Repo        string   `json:"repo,omitempty"`

	warned bool // placeholder fallback already logged
}

// ImageAt returns image i, or PlaceholderImage when it does not exist. The
// first fallback for this project value is logged.
func (p *Project) ImageAt(i int) string {
	if i >= 0 && i < len(p.Images) && p.Images[i] != "" {
		return p.Images[i]
	}
	if !p.warned {
		p.warned = true
		log.Printf("tether: project %d (%s) has no image %d, using placeholder", p.ID, p.Name, i)
	}
	return PlaceholderImage
}

// Cover returns the thumbnail, falling back to the first image.
func (p *Project) Cover() string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	return p.ImageAt(0)
}

// DecodeCatalog reads a JSON array of projects. An empty array is valid.
func DecodeCatalog(r io.Reader) ([]Project, error) {
	var projects []Project
	if err := json.NewDecoder(r).Decode(&projects); err != nil {
		return nil, fmt.Errorf("tether: decode catalog: %w", err)
	}
	seen := make(map[int]bool, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			return nil, fmt.Errorf("tether: decode catalog: duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return projects, nil
}

// Swipe is the result of classifying a horizontal drag.
type Swipe int8

const (
	SwipeNone  Swipe = 0
	SwipeLeft  Swipe = 1  // finger moved left: show the next item
	SwipeRight Swipe = -1 // finger moved right: show the previous item
)

// ClassifySwipe compares the start and end x of a touch.
func ClassifySwipe(startX, endX float64) Swipe {
	d := startX - endX
	switch {
	case d > SwipeThreshold:
		return SwipeLeft
	case d < -SwipeThreshold:
		return SwipeRight
	}
	return SwipeNone
}

// Carousel is a wrapping cursor over n items.
type Carousel struct {
	n, cur int
}

// NewCarousel returns a carousel over n items. n may be zero.
func NewCarousel(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n}
}

// Len returns the item count.
func (c *Carousel) Len() int { return c.n }

// Index returns the current item.
func (c *Carousel) Index() int { return c.cur }

// Next advances with wrap-around.
func (c *Carousel) Next() int {
	if c.n > 0 {
		c.cur = (c.cur + 1) % c.n
	}
	return c.cur
}

// Prev steps back with wrap-around.
func (c *Carousel) Prev() int {
	if c.n > 0 {
		c.cur = (c.cur - 1 + c.n) % c.n
	}
	return c.cur
}

// Jump selects item i if it is in range.
func (c *Carousel) Jump(i int) int {
	if i >= 0 && i < c.n {
		c.cur = i
	}
	return c.cur
}

// Swipe applies a classified swipe.
func (c *Carousel) Swipe(s Swipe) int {
	switch s {
	case SwipeLeft:
		return c.Next()
	case SwipeRight:
		return c.Prev()
	}
	return c.cur
}

// Offset returns the signed distance from the current item to item i,
// taking the shorter way around.
func (c *Carousel) Offset(i int) int {
	d := i - c.cur
	half := float64(c.n) / 2
	if float64(d) > half {
		d -= c.n
	} else if float64(d) < -half {
		d += c.n
	}
	return d
}

// CarouselItemStyle is the presentation of one item relative to the
// current one.
type CarouselItemStyle struct {
	Offset  int
	Opacity float64
	Scale   float64
	Blur    float64
	Visible bool
}

// ItemStyle returns the presentation of item i. Items more than two places
// from the current one are hidden.
func (c *Carousel) ItemStyle(i int) CarouselItemStyle {
	off := c.Offset(i)
	abs := off
	if abs < 0 {
		abs = -abs
	}
	if abs > 2 {
		return CarouselItemStyle{Offset: off, Opacity: 0, Scale: 0.6, Blur: 20}
	}
	a := float64(abs)
	return CarouselItemStyle{
		Offset:  off,
		Opacity: 1 - a*0.3,
		Scale:   1 - a*0.15,
		Blur:    a * 8,
		Visible: true,
	}
}
