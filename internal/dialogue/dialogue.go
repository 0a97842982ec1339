// Package dialogue implements the multi-turn clarification flow that
// sits between free-text input and the itinerary search: it keeps the
// origin/destination slots for one conversation and asks for whichever
// endpoint is still missing.
package dialogue

import (
	"fmt"

	"ybbus/internal/transit"
)

// State is the slot-fill state of one conversation.
type State int

const (
	NeedBoth State = iota
	HaveStartOnly
	HaveEndOnly
	HaveBoth
)

func (s State) String() string {
	switch s {
	case NeedBoth:
		return "need_both"
	case HaveStartOnly:
		return "have_start"
	case HaveEndOnly:
		return "have_end"
	case HaveBoth:
		return "have_both"
	}
	return "unknown"
}

// Reply is the controller's answer to one utterance: either a found
// (possibly empty) itinerary list, or a prompt for the missing slot.
type Reply struct {
	State   State
	Start   string
	End     string
	Text    string
	Results []transit.SearchResult
}

// Controller drives extract → search over one immutable snapshot.
// It is not safe for concurrent use; create one per conversation.
type Controller struct {
	snap  *transit.Snapshot
	vocab []string
	start string
	end   string
}

// New creates a Controller over the given snapshot.
func New(snap *transit.Snapshot) *Controller {
	return &Controller{snap: snap, vocab: snap.Vocabulary()}
}

// Seed restores slots carried over from earlier turns, canonicalized
// the same way extracted names are.
func (c *Controller) Seed(start, end string) {
	c.start = c.canonical(start)
	c.end = c.canonical(end)
}

// State reports the current slot-fill state.
func (c *Controller) State() State {
	switch {
	case c.start != "" && c.end != "":
		return HaveBoth
	case c.start != "":
		return HaveStartOnly
	case c.end != "":
		return HaveEndOnly
	}
	return NeedBoth
}

// Handle processes one utterance: extracts endpoints, merges them into
// the pending slots, and either searches (both slots filled, slots then
// reset for the next query) or asks for what is still missing.
func (c *Controller) Handle(text string, opts transit.SearchOptions) Reply {
	q := transit.Extract(text, c.vocab)
	start := c.canonical(q.Start)
	end := c.canonical(q.End)
	switch {
	case start != "" && end != "":
		c.start, c.end = start, end
	case start != "":
		// A single unmarked name answers whichever slot is still open.
		if c.start == "" || c.end != "" {
			c.start = start
		} else {
			c.end = start
		}
	case end != "":
		c.end = end
	}

	state := c.State()
	reply := Reply{State: state, Start: c.start, End: c.end}

	switch state {
	case NeedBoth:
		reply.Text = "I didn't catch any bus stop names. Which stop are you starting from, and where are you going?"
	case HaveStartOnly:
		reply.Text = fmt.Sprintf("Starting from %s. Where do you want to go?", c.start)
	case HaveEndOnly:
		reply.Text = fmt.Sprintf("Going to %s. Which stop are you starting from?", c.end)
	case HaveBoth:
		results := transit.Search(c.snap.Index, c.start, c.end, opts)
		reply.Results = results
		if len(results) == 0 {
			reply.Text = fmt.Sprintf("No bus connection found from %s to %s within the transfer limit.", c.start, c.end)
		} else {
			reply.Text = fmt.Sprintf("Found %d way(s) from %s to %s.", len(results), c.start, c.end)
		}
		c.start, c.end = "", ""
	}
	return reply
}

// canonical maps either localized name to the English name used inside
// route definitions. Unknown names pass through unchanged.
func (c *Controller) canonical(name string) string {
	if name == "" {
		return ""
	}
	if s := c.snap.StopByName(name); s != nil && s.NameEN != "" {
		return s.NameEN
	}
	return name
}
