// Package ticket defines the Ticket aggregate and the per-product sequence
// contract. Tickets are externally addressed by (product prefix, number),
// where the number is a dense, strictly increasing per-product sequence
// assigned at creation and never reissued.
package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Attributes holds the mutable fields of a ticket. Optional natural-key
// references (type, resolution, component, milestone, version) are nil when
// unset; an update carrying nil clears the reference.
type Attributes struct {
	Summary     string
	Description string
	Status      string
	Severity    string
	Priority    string
	Owner       string
	Reporter    string
	CC          string
	Keywords    []string
	Type        *string
	Resolution  *string
	Component   *string
	Milestone   *string
	Version     *string
}

// FieldChange records a single tracked field mutation, the unit of the
// ticket change history.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

type Ticket struct {
	uid       uint
	number    int
	product   string
	attrs     Attributes
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(product string, attrs Attributes) (*Ticket, error) {
	if len(product) == 0 {
		return nil, fmt.Errorf("product is required")
	}
	if err := validateAttributes(attrs); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Ticket{
		product:   product,
		attrs:     copyAttributes(attrs),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	uid uint,
	number int,
	product string,
	attrs Attributes,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if uid == 0 {
		return nil, fmt.Errorf("ticket UID cannot be zero")
	}
	if number <= 0 {
		return nil, fmt.Errorf("ticket number must be positive")
	}
	if len(product) == 0 {
		return nil, fmt.Errorf("product is required")
	}
	if err := validateAttributes(attrs); err != nil {
		return nil, err
	}

	return &Ticket{
		uid:       uid,
		number:    number,
		product:   product,
		attrs:     copyAttributes(attrs),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) UID() uint {
	return t.uid
}

// Number returns the per-product sequence number, 0 until allocated.
func (t *Ticket) Number() int {
	return t.number
}

func (t *Ticket) Product() string {
	return t.product
}

func (t *Ticket) Attributes() Attributes {
	return copyAttributes(t.attrs)
}

func (t *Ticket) Summary() string {
	return t.attrs.Summary
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetUID(uid uint) error {
	if t.uid != 0 {
		return fmt.Errorf("ticket UID is already set")
	}
	if uid == 0 {
		return fmt.Errorf("ticket UID cannot be zero")
	}
	t.uid = uid
	return nil
}

// SetNumber assigns the allocated sequence number. It may be called once.
func (t *Ticket) SetNumber(number int) error {
	if t.number != 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if number <= 0 {
		return fmt.Errorf("ticket number must be positive")
	}
	t.number = number
	return nil
}

// ClearNumber resets an assigned number so the creation transaction can be
// retried with a fresh allocation after a sequence conflict rollback.
func (t *Ticket) ClearNumber() {
	t.number = 0
}

// Update replaces the ticket attributes and returns one FieldChange per
// tracked field whose value actually changed. An empty result means the
// update was a no-op.
func (t *Ticket) Update(attrs Attributes) ([]FieldChange, error) {
	if err := validateAttributes(attrs); err != nil {
		return nil, err
	}

	changes := diffAttributes(t.attrs, attrs)
	if len(changes) == 0 {
		return nil, nil
	}

	t.attrs = copyAttributes(attrs)
	t.updatedAt = time.Now()

	return changes, nil
}

func validateAttributes(attrs Attributes) error {
	if len(strings.TrimSpace(attrs.Summary)) == 0 {
		return fmt.Errorf("summary is required")
	}
	return nil
}

func copyAttributes(attrs Attributes) Attributes {
	out := attrs
	if attrs.Keywords != nil {
		out.Keywords = make([]string, len(attrs.Keywords))
		copy(out.Keywords, attrs.Keywords)
	}
	out.Type = copyRef(attrs.Type)
	out.Resolution = copyRef(attrs.Resolution)
	out.Component = copyRef(attrs.Component)
	out.Milestone = copyRef(attrs.Milestone)
	out.Version = copyRef(attrs.Version)
	return out
}

func copyRef(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func diffAttributes(old, new Attributes) []FieldChange {
	var changes []FieldChange

	appendChange := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, FieldChange{Field: field, OldValue: oldVal, NewValue: newVal})
		}
	}

	appendChange("summary", old.Summary, new.Summary)
	appendChange("description", old.Description, new.Description)
	appendChange("status", old.Status, new.Status)
	appendChange("severity", old.Severity, new.Severity)
	appendChange("priority", old.Priority, new.Priority)
	appendChange("owner", old.Owner, new.Owner)
	appendChange("reporter", old.Reporter, new.Reporter)
	appendChange("cc", old.CC, new.CC)
	appendChange("keywords", strings.Join(old.Keywords, ","), strings.Join(new.Keywords, ","))
	appendChange("type", refValue(old.Type), refValue(new.Type))
	appendChange("resolution", refValue(old.Resolution), refValue(new.Resolution))
	appendChange("component", refValue(old.Component), refValue(new.Component))
	appendChange("milestone", refValue(old.Milestone), refValue(new.Milestone))
	appendChange("version", refValue(old.Version), refValue(new.Version))

	return changes
}

func refValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
