package pdfgenerator

// Layout holds the page geometry, in millimetres.
type Layout struct {
	StartX      float64
	StartY      float64
	LineHeight  float64
	ColumnWidth float64
	PageBottom  float64
	PageRight   float64
}

// Placement is one line of text positioned on a page (0-based).
type Placement struct {
	Text string
	X, Y float64
	Page int
}

// Paginate places items top to bottom, then in further columns to the
// right, then on new pages.
func Paginate(items []string, l Layout) []Placement {
	out := make([]Placement, 0, len(items))
	x, y, page := l.StartX, l.StartY, 0

	for _, item := range items {
		out = append(out, Placement{Text: item, X: x, Y: y, Page: page})
		y += l.LineHeight

		if y > l.PageBottom {
			y = l.StartY
			x += l.ColumnWidth
			if x > l.PageRight {
				page++
				x = l.StartX
			}
		}
	}
	return out
}

// Pages is the number of pages the placements span.
func Pages(placements []Placement) int {
	if len(placements) == 0 {
		return 0
	}
	return placements[len(placements)-1].Page + 1
}
