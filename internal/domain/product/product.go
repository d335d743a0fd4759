// Package product defines the Product aggregate, the root of all addressing
// in the tracker. Every ticket, component, milestone, version, and enum row
// belongs to exactly one product, identified by its prefix.
package product

import (
	"fmt"
	"regexp"
	"time"
)

// prefixPattern keeps prefixes URL-safe; they appear as the first path
// segment of every nested resource address.
var prefixPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

const maxPrefixLength = 64

type Product struct {
	prefix      string
	name        string
	description string
	owner       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(prefix, name, description, owner string) (*Product, error) {
	if len(prefix) == 0 {
		return nil, fmt.Errorf("prefix is required")
	}
	if len(prefix) > maxPrefixLength {
		return nil, fmt.Errorf("prefix exceeds maximum length of %d characters", maxPrefixLength)
	}
	if !prefixPattern.MatchString(prefix) {
		return nil, fmt.Errorf("prefix may only contain letters, digits, '-' and '_'")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &Product{
		prefix:      prefix,
		name:        name,
		description: description,
		owner:       owner,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProduct(prefix, name, description, owner string, createdAt, updatedAt time.Time) (*Product, error) {
	if len(prefix) == 0 {
		return nil, fmt.Errorf("prefix is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Product{
		prefix:      prefix,
		name:        name,
		description: description,
		owner:       owner,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Product) Prefix() string {
	return p.prefix
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Owner() string {
	return p.owner
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update applies whole-entity replace semantics. The prefix is immutable
// once the product exists; only the descriptive attributes change.
func (p *Product) Update(name, description, owner string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}

	p.name = name
	p.description = description
	p.owner = owner
	p.updatedAt = time.Now()

	return nil
}
