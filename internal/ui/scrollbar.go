// Package ui holds small shared rendering helpers for the grid host.
package ui

import (
	"strings"

	"github.com/wilbur182/tessera/internal/styles"
)

// ScrollbarParams configures a vertical scrollbar rendering.
type ScrollbarParams struct {
	TotalItems   int // Total logical items in the list
	ScrollOffset int // Index of first visible item (scroll offset)
	VisibleItems int // Number of items that fit in the viewport
	TrackHeight  int // Height of the scrollbar track in terminal rows
}

// ScrollbarLines returns one single-width cell per track row. When all
// content is visible (TotalItems <= VisibleItems) it returns a column of
// spaces so the track width is reserved and the layout does not jitter.
func ScrollbarLines(params ScrollbarParams) []string {
	if params.TrackHeight < 1 {
		return nil
	}

	lines := make([]string, params.TrackHeight)

	if params.TotalItems <= params.VisibleItems {
		for i := range lines {
			lines[i] = " "
		}
		return lines
	}

	// Thumb size: proportional to visible fraction, minimum 1, clamped to track.
	thumbSize := (params.VisibleItems * params.TrackHeight) / params.TotalItems
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > params.TrackHeight {
		thumbSize = params.TrackHeight
	}

	// Thumb position: proportional to scroll offset within scrollable range.
	maxOffset := params.TotalItems - params.VisibleItems
	if maxOffset < 1 {
		maxOffset = 1
	}
	thumbPos := (params.ScrollOffset * (params.TrackHeight - thumbSize)) / maxOffset
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > params.TrackHeight-thumbSize {
		thumbPos = params.TrackHeight - thumbSize
	}

	trackChar := styles.ScrollTrack.Render("│")
	thumbChar := styles.ScrollThumb.Render("┃")

	for i := range lines {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines[i] = thumbChar
		} else {
			lines[i] = trackChar
		}
	}

	return lines
}

// RenderScrollbar returns the scrollbar as a newline-joined column.
func RenderScrollbar(params ScrollbarParams) string {
	return strings.Join(ScrollbarLines(params), "\n")
}
