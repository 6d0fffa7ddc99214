// Package resource models what a project allocates to its tasks:
// material goods, consumable or not, and personnel. These are plain
// value containers; costs and quantities carry no semantics here.
package resource

import "github.com/Krahos/planter-core/person"

// Resource is either a material or a person assigned to project work.
type Resource interface {
	// Name identifies the resource in listings.
	Name() string

	resource()
}

// Consumable is a material that needs to be resupplied after use.
type Consumable struct {
	name        string
	quantity    *int
	costPerUnit *int
}

// NewConsumable builds a consumable material with the given name.
func NewConsumable(name string) Consumable {
	return Consumable{name: name}
}

// WithQuantity returns a copy with the available quantity set.
func (c Consumable) WithQuantity(quantity int) Consumable {
	c.quantity = &quantity
	return c
}

// WithCostPerUnit returns a copy with the cost per used unit set.
func (c Consumable) WithCostPerUnit(cost int) Consumable {
	c.costPerUnit = &cost
	return c
}

func (c Consumable) Name() string { return c.name }

// Quantity returns the available quantity and whether it is known.
func (c Consumable) Quantity() (int, bool) {
	if c.quantity == nil {
		return 0, false
	}
	return *c.quantity, true
}

// CostPerUnit returns the cost per used unit and whether it is known.
func (c Consumable) CostPerUnit() (int, bool) {
	if c.costPerUnit == nil {
		return 0, false
	}
	return *c.costPerUnit, true
}

func (Consumable) resource() {}

// NonConsumable is a material that survives use. Some carry an hourly
// rate anyway, e.g. due to energy consumption.
type NonConsumable struct {
	name       string
	quantity   *int
	hourlyRate *int
}

// NewNonConsumable builds a non-consumable material with the given name.
func NewNonConsumable(name string) NonConsumable {
	return NonConsumable{name: name}
}

// WithQuantity returns a copy with the available quantity set.
func (n NonConsumable) WithQuantity(quantity int) NonConsumable {
	n.quantity = &quantity
	return n
}

// WithHourlyRate returns a copy with the hourly rate set.
func (n NonConsumable) WithHourlyRate(rate int) NonConsumable {
	n.hourlyRate = &rate
	return n
}

func (n NonConsumable) Name() string { return n.name }

// Quantity returns the available quantity and whether it is known.
func (n NonConsumable) Quantity() (int, bool) {
	if n.quantity == nil {
		return 0, false
	}
	return *n.quantity, true
}

// HourlyRate returns the hourly rate and whether it is known.
func (n NonConsumable) HourlyRate() (int, bool) {
	if n.hourlyRate == nil {
		return 0, false
	}
	return *n.hourlyRate, true
}

func (NonConsumable) resource() {}

// Personnel is a person who can complete tasks, with an optional
// hourly rate.
type Personnel struct {
	person     person.Person
	hourlyRate *int
}

// NewPersonnel builds a personnel resource for p.
func NewPersonnel(p person.Person) Personnel {
	return Personnel{person: p}
}

// WithHourlyRate returns a copy with the hourly rate set.
func (p Personnel) WithHourlyRate(rate int) Personnel {
	p.hourlyRate = &rate
	return p
}

func (p Personnel) Name() string { return p.person.FullName() }

// Person returns the underlying person.
func (p Personnel) Person() person.Person { return p.person }

// HourlyRate returns the hourly rate and whether it is known.
func (p Personnel) HourlyRate() (int, bool) {
	if p.hourlyRate == nil {
		return 0, false
	}
	return *p.hourlyRate, true
}

func (Personnel) resource() {}
