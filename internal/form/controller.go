// internal/form/controller.go

// Package form implements the validated submit flow shared by the add
// and update pages. One controller drives one form through
// Editing -> Validating -> Submitting -> Succeeded or Failed.
package form

import (
	"context"
	"fmt"
	"strings"

	"libery/internal/catalog"
	"libery/pkg/apierror"
)

// State is the controller's position in the submit flow.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Policy decides what happens after a successful submit. Both are
// legitimate; the caller picks per flow.
type Policy int

const (
	// NavigateOnSuccess leaves the form as-is; the caller navigates away.
	NavigateOnSuccess Policy = iota
	// ResetOnSuccess clears the form for repeatable entry.
	ResetOnSuccess
)

// Writer is the slice of the repository client the controller needs.
type Writer interface {
	Create(ctx context.Context, kind catalog.Kind, item catalog.Item) (*catalog.Item, error)
	Update(ctx context.Context, kind catalog.Kind, id catalog.ItemID, item catalog.Item) (*catalog.Item, error)
}

// Controller is a generic form state machine, driven by the field schema
// of its kind rather than per-kind form code.
type Controller struct {
	client  Writer
	kind    catalog.Kind
	id      catalog.ItemID // set for update flows
	policy  Policy
	values  map[string]string
	state   State
	lastErr error
}

// NewCreate builds a controller for the add flow of the given kind.
func NewCreate(client Writer, kind catalog.Kind, policy Policy) *Controller {
	return &Controller{
		client: client,
		kind:   kind,
		policy: policy,
		values: make(map[string]string),
		state:  StateEditing,
	}
}

// NewUpdate builds a controller for the update flow of an existing item.
// Update flows always navigate away on success.
func NewUpdate(client Writer, kind catalog.Kind, id catalog.ItemID) *Controller {
	c := NewCreate(client, kind, NavigateOnSuccess)
	c.id = id
	return c
}

// SetField records user input. Editing after a failure returns the
// controller to the editing state, keeping the last error for display.
func (c *Controller) SetField(name, value string) {
	c.values[name] = value
	if c.state == StateFailed || c.state == StateSucceeded {
		c.state = StateEditing
	}
}

// Fill pre-populates the form from an existing item, as the update pages
// do after fetching it.
func (c *Controller) Fill(item catalog.Item) {
	for _, f := range catalog.Schema(c.kind) {
		if v := f.Value(item); v != "" {
			c.values[f.Name] = v
		}
	}
}

// Value returns the current input for a field.
func (c *Controller) Value(name string) string { return c.values[name] }

// State returns the controller's current state.
func (c *Controller) State() State { return c.state }

// Err returns the validation or submit error being displayed, or nil.
func (c *Controller) Err() error { return c.lastErr }

// Reset clears all input and transient state.
func (c *Controller) Reset() {
	c.values = make(map[string]string)
	c.state = StateEditing
	c.lastErr = nil
}

// Submit validates the form and sends the create or update request.
// Validation failures surface as a single aggregate error and make no
// network call. A repository error keeps the input and the message so the
// user can correct and retry.
func (c *Controller) Submit(ctx context.Context) (*catalog.Item, error) {
	c.state = StateValidating
	item, err := c.buildItem()
	if err != nil {
		c.state = StateEditing
		c.lastErr = err
		return nil, err
	}

	c.state = StateSubmitting
	var out *catalog.Item
	if c.id != "" {
		out, err = c.client.Update(ctx, c.kind, c.id, item)
	} else {
		out, err = c.client.Create(ctx, c.kind, item)
	}
	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		return nil, err
	}

	c.state = StateSucceeded
	c.lastErr = nil
	if c.policy == ResetOnSuccess {
		c.values = make(map[string]string)
	}
	return out, nil
}

// buildItem coerces the raw input into an Item, collecting every missing
// required field and malformed number into one aggregate error.
func (c *Controller) buildItem() (catalog.Item, error) {
	var item catalog.Item
	var problems []string

	for _, f := range catalog.Schema(c.kind) {
		value := strings.TrimSpace(c.values[f.Name])
		if value == "" {
			if f.Required {
				problems = append(problems, fmt.Sprintf("%s is required", f.Label))
			}
			continue
		}
		if err := f.Set(&item, value); err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a whole number", f.Label))
		}
	}
	if len(problems) > 0 {
		return catalog.Item{}, apierror.NewValidation("please fill in all required fields: " + strings.Join(problems, ", "))
	}

	item.ItemType = c.kind
	if c.id == "" {
		// Creation defaults; the form never sets status itself.
		item.Status = catalog.StatusAvailable
		if item.CoverImage == "" {
			item.CoverImage = catalog.PlaceholderCover
		}
	}
	return item, nil
}
