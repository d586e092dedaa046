package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	log "github.com/go-pkgz/lgr"
)

// toast texts
const (
	msgNetworkError     = "Network error"
	msgSaveFailed       = "Failed to save"
	msgUnsaveFailed     = "Failed to remove"
	msgRemoved          = "Removed from saved"
	msgCreateFailed     = "Failed"
	msgCreateListFailed = "Failed to create list"
	msgScrapeStarted    = "Scraping started! Refresh in ~30s to see new jobs."
	msgScrapeFailed     = "Failed to start scrape"
	promptListName      = "Enter list name:"
)

// Save puts job into the list. The card is marked saved on success, the open dropdown
// is closed whatever the outcome.
func (c *Controller) Save(ctx context.Context, jobID, listName string) {
	defer c.CloseDropdowns()

	reply, err := c.api.Save(ctx, jobID, listName)
	if err != nil {
		log.Printf("[WARN] save %s to %q failed, %v", jobID, listName, err)
		c.Present(msgNetworkError, SeverityError)
		return
	}
	if !reply.OK() {
		c.Present(orDefault(reply.Error, msgSaveFailed), SeverityError)
		return
	}

	c.update(func() {
		if card := c.card(jobID); card != nil {
			card.Saved = true
			if !slices.Contains(card.ListNames, listName) {
				card.ListNames = append(card.ListNames, listName)
			}
		}
	})
	c.Present(fmt.Sprintf(`Saved to "%s"`, listName), SeveritySuccess)
}

// Unsave removes job from the list, or from all lists if listName is empty.
// On the saved-items view the card leaves the page, elsewhere it reverts to unsaved.
// Non-ok responses are ignored unless Options.ReportUnsaveFailure set.
func (c *Controller) Unsave(ctx context.Context, jobID, listName string) {
	defer c.CloseDropdowns()

	reply, err := c.api.Unsave(ctx, jobID, listName)
	if err != nil {
		log.Printf("[WARN] unsave %s failed, %v", jobID, err)
		c.Present(msgNetworkError, SeverityError)
		return
	}
	if !reply.OK() {
		log.Printf("[DEBUG] unsave %s rejected with %d", jobID, reply.Status)
		if c.opts.ReportUnsaveFailure {
			c.Present(orDefault(reply.Error, msgUnsaveFailed), SeverityError)
		}
		return
	}

	if strings.HasPrefix(c.page.Path(), "/saved") {
		c.update(func() {
			if card := c.card(jobID); card != nil {
				card.Leaving = true
			}
		})
		c.tasks.After(c.opts.RemoveDelay, func() {
			c.update(func() { c.removeCard(jobID) })
		})
	} else {
		c.update(func() {
			if card := c.card(jobID); card != nil {
				card.Saved = false
				if listName == "" {
					card.ListNames = nil
				} else {
					card.ListNames = slices.DeleteFunc(card.ListNames, func(s string) bool { return s == listName })
				}
			}
		})
	}
	c.Present(msgRemoved, SeveritySuccess)
}

// CreateList asks for a list name and creates the list, the page reloads shortly after success.
// Empty name aborts silently.
func (c *Controller) CreateList(ctx context.Context) {
	name, ok := c.askListName(ctx)
	if !ok {
		return
	}

	reply, err := c.api.CreateList(ctx, name)
	if err != nil {
		log.Printf("[WARN] create list %q failed, %v", name, err)
		c.Present(msgNetworkError, SeverityError)
		return
	}
	if !reply.OK() {
		c.Present(orDefault(reply.Error, msgCreateFailed), SeverityError)
		return
	}
	c.Present(fmt.Sprintf(`List "%s" created`, name), SeveritySuccess)
	c.tasks.After(c.opts.ReloadDelay, c.page.Reload)
}

// CreateAndSave asks for a list name, creates the list and saves job into it.
// Creation status is not checked, Save reports its own failures.
func (c *Controller) CreateAndSave(ctx context.Context, jobID string) {
	name, ok := c.askListName(ctx)
	if !ok {
		return
	}
	if _, err := c.api.CreateList(ctx, name); err != nil {
		log.Printf("[WARN] create list %q failed, %v", name, err)
		c.Present(msgCreateListFailed, SeverityError)
		return
	}
	c.Save(ctx, jobID, name)
}

// TriggerScrape starts a server side scrape. The button stays disabled until the page
// reloads after the scrape reload delay. Ignored while the button is disabled.
func (c *Controller) TriggerScrape(ctx context.Context) {
	started := false
	c.update(func() {
		if c.scrape.Disabled {
			return
		}
		c.scrape = ScrapeButton{Loading: true, Disabled: true}
		started = true
	})
	if !started {
		return
	}

	reply, err := c.api.Scrape(ctx)
	if err != nil || !reply.OK() {
		if err != nil {
			log.Printf("[WARN] scrape trigger failed, %v", err)
		}
		c.update(func() { c.scrape = ScrapeButton{} })
		c.Present(msgScrapeFailed, SeverityError)
		return
	}

	c.Present(msgScrapeStarted, SeveritySuccess)
	c.tasks.After(c.opts.ScrapeReloadDelay, func() {
		c.update(func() { c.scrape = ScrapeButton{} })
		c.page.Reload()
	})
}

// askListName prompts for a list name, false if the answer is empty or the prompt failed
func (c *Controller) askListName(ctx context.Context) (string, bool) {
	name, err := c.page.Prompt(ctx, promptListName)
	if err != nil {
		log.Printf("[DEBUG] prompt canceled, %v", err)
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
