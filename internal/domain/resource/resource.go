// Package resource defines the product-scoped child entities that tickets
// reference by natural key: components, milestones, versions, and per-product
// enumerations. Each is identified by (name, product) — unique within its
// owning product, freely reusable across products.
package resource

import (
	"fmt"
	"strings"
)

// Entity is the shared contract of product-scoped entities; the generic
// store and CRUD layers resolve every entity through it.
type Entity interface {
	// NaturalKey is the user-meaningful identifier within the product scope.
	NaturalKey() string
	// ProductPrefix is the owning product.
	ProductPrefix() string
	Validate() error
}

type Component struct {
	ID          uint
	Name        string
	Owner       string
	Description string
	Product     string
}

func NewComponent(product, name, owner, description string) (*Component, error) {
	c := &Component{
		Name:        name,
		Owner:       owner,
		Description: description,
		Product:     product,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Component) NaturalKey() string    { return c.Name }
func (c *Component) ProductPrefix() string { return c.Product }

func (c *Component) Validate() error {
	return validateScoped("component", c.Name, c.Product)
}

type Milestone struct {
	ID          uint
	Name        string
	Due         *int64
	Completed   *int64
	Description string
	Product     string
}

func NewMilestone(product, name string, due, completed *int64, description string) (*Milestone, error) {
	m := &Milestone{
		Name:        name,
		Due:         due,
		Completed:   completed,
		Description: description,
		Product:     product,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Milestone) NaturalKey() string    { return m.Name }
func (m *Milestone) ProductPrefix() string { return m.Product }

func (m *Milestone) Validate() error {
	return validateScoped("milestone", m.Name, m.Product)
}

type Version struct {
	ID          uint
	Name        string
	Time        *int64
	Description string
	Product     string
}

func NewVersion(product, name string, releaseTime *int64, description string) (*Version, error) {
	v := &Version{
		Name:        name,
		Time:        releaseTime,
		Description: description,
		Product:     product,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Version) NaturalKey() string    { return v.Name }
func (v *Version) ProductPrefix() string { return v.Product }

func (v *Version) Validate() error {
	return validateScoped("version", v.Name, v.Product)
}

// Enum is a per-product named enumeration value, keyed by (type, name,
// product). Ticket type and resolution fields resolve against enum rows of
// kind "ticket_type" and "resolution" in the same product.
type Enum struct {
	ID      uint
	Type    string
	Name    string
	Value   string
	Product string
}

func NewEnum(product, enumType, name, value string) (*Enum, error) {
	e := &Enum{
		Type:    enumType,
		Name:    name,
		Value:   value,
		Product: product,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enum) NaturalKey() string    { return e.Name }
func (e *Enum) ProductPrefix() string { return e.Product }

func (e *Enum) Validate() error {
	if len(strings.TrimSpace(e.Type)) == 0 {
		return fmt.Errorf("enum type is required")
	}
	return validateScoped("enum", e.Name, e.Product)
}

func validateScoped(kind, name, product string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("%s name is required", kind)
	}
	if len(product) == 0 {
		return fmt.Errorf("%s product is required", kind)
	}
	return nil
}
