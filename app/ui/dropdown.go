package ui

// Dropdowns tracks the single open save dropdown, keyed by job id.
// Not thread safe, Controller guards it with its own lock.
type Dropdowns struct {
	open string
}

// Open opens dropdown id, closing any other
func (d *Dropdowns) Open(id string) { d.open = id }

// Toggle flips dropdown id, any other open dropdown is closed first
func (d *Dropdowns) Toggle(id string) {
	if d.open == id {
		d.open = ""
		return
	}
	d.open = id
}

// CloseAll closes the open dropdown, if any
func (d *Dropdowns) CloseAll() { d.open = "" }

// CurrentlyOpen returns id of the open dropdown
func (d *Dropdowns) CurrentlyOpen() (string, bool) { return d.open, d.open != "" }

// OutsideClick closes the open dropdown unless the click landed inside a dropdown wrapper
func (d *Dropdowns) OutsideClick(insideWrapper bool) {
	if !insideWrapper {
		d.open = ""
	}
}

// ToggleDropdown flips the save dropdown of the job card
func (c *Controller) ToggleDropdown(jobID string) {
	c.update(func() { c.dropdowns.Toggle(jobID) })
}

// OpenDropdown opens the save dropdown of the job card
func (c *Controller) OpenDropdown(jobID string) {
	c.update(func() { c.dropdowns.Open(jobID) })
}

// CloseDropdowns closes the open dropdown
func (c *Controller) CloseDropdowns() {
	c.update(func() { c.dropdowns.CloseAll() })
}

// OutsideClick handles a click, closes the open dropdown if the click is outside of any dropdown wrapper
func (c *Controller) OutsideClick(insideWrapper bool) {
	c.update(func() { c.dropdowns.OutsideClick(insideWrapper) })
}

// CurrentlyOpen returns job id of the open dropdown
func (c *Controller) CurrentlyOpen() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropdowns.CurrentlyOpen()
}
