package ui

// Severity of a toast
type Severity string

// toast severities
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Toast is the transient notification shown to the user
type Toast struct {
	Message  string
	Severity Severity
	Visible  bool
}

// Class returns presentation class of the toast, "toast <severity>" or "toast hidden"
func (t Toast) Class() string {
	if !t.Visible {
		return "toast hidden"
	}
	return "toast " + string(t.Severity)
}

// Present shows message with severity, success if empty, and hides it after the toast duration.
// Each call schedules its own hide, an earlier hide may cut a newer message short.
func (c *Controller) Present(message string, severity Severity) {
	if severity == "" {
		severity = SeveritySuccess
	}
	c.update(func() { c.toast = Toast{Message: message, Severity: severity, Visible: true} })
	c.tasks.After(c.opts.ToastDuration, func() {
		c.update(func() { c.toast.Visible = false })
	})
}
