package ui

import "slices"

// Card is the view-model of a job card
type Card struct {
	JobID     string
	Saved     bool
	ListNames []string // lists the job is saved in, as known to the page
	Leaving   bool     // animating out before removal from the saved-items view
}

// Glyph returns the save button glyph
func (c Card) Glyph() string {
	if c.Saved {
		return "★"
	}
	return "☆"
}

// Classes returns presentation classes of the save button
func (c Card) Classes() []string {
	res := []string{"btn-save"}
	if c.Saved {
		res = append(res, "saved")
	}
	if c.Leaving {
		res = append(res, "leaving")
	}
	return res
}

func (c Card) clone() Card {
	c.ListNames = slices.Clone(c.ListNames)
	return c
}
