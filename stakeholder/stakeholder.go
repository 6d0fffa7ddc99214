// Package stakeholder models the people and organizations with an
// interest in a project, constructive or not.
package stakeholder

import "github.com/Krahos/planter-core/person"

// Stakeholder is a person or organization with an interest in the
// project.
type Stakeholder interface {
	// Description returns a note on the stakeholder's interest and
	// whether one was recorded.
	Description() (string, bool)

	stakeholder()
}

// Individual is a single person with an interest in the project.
type Individual struct {
	person      person.Person
	description *string
}

// NewIndividual builds an individual stakeholder for p.
func NewIndividual(p person.Person) Individual {
	return Individual{person: p}
}

// WithDescription returns a copy with the interest note set.
func (i Individual) WithDescription(description string) Individual {
	i.description = &description
	return i
}

// Person returns the underlying person.
func (i Individual) Person() person.Person { return i.person }

func (i Individual) Description() (string, bool) {
	if i.description == nil {
		return "", false
	}
	return *i.description, true
}

func (Individual) stakeholder() {}

// Organization is an organization with an interest in the project.
type Organization struct {
	name        string
	description *string
}

// NewOrganization builds an organization stakeholder with the given
// name.
func NewOrganization(name string) Organization {
	return Organization{name: name}
}

// WithDescription returns a copy with the interest note set.
func (o Organization) WithDescription(description string) Organization {
	o.description = &description
	return o
}

// Name returns the organization's name.
func (o Organization) Name() string { return o.name }

func (o Organization) Description() (string, bool) {
	if o.description == nil {
		return "", false
	}
	return *o.description, true
}

func (Organization) stakeholder() {}
