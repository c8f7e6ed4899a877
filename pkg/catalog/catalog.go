// Package catalog holds the sellable service list.
package catalog

import (
	"strings"

	"tableflip.dev/negocio/pkg/xid"
)

// Service is a sellable item. Sales copy its name and price at confirmation
// time, so later edits or deletes never touch recorded sales.
type Service struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is an ordered service list. The zero value is usable.
type Catalog struct {
	services []Service
}

// New builds a catalog seeded with the given services. Seeds without an id
// get one issued.
func New(seed ...Service) *Catalog {
	c := &Catalog{services: make([]Service, 0, len(seed))}
	for _, s := range seed {
		if s.ID == "" {
			s.ID = xid.New("svc")
		}
		c.services = append(c.services, s)
	}
	return c
}

// List returns the services in insertion order. The slice is a copy.
func (c *Catalog) List() []Service {
	return append([]Service(nil), c.services...)
}

// Len returns the number of services.
func (c *Catalog) Len() int { return len(c.services) }

// Get returns the service with the given id.
func (c *Catalog) Get(id string) (Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Add appends a new service with a fresh id and returns it. Empty names are
// rejected by reporting ok=false.
func (c *Catalog) Add(name string, price float64) (Service, bool) {
	if strings.TrimSpace(name) == "" {
		return Service{}, false
	}
	s := Service{ID: xid.New("svc"), Name: name, Price: price}
	c.services = append(c.services, s)
	return s, true
}

// Update replaces the name and price of the service with the given id in
// place, keeping its id and position.
func (c *Catalog) Update(id, name string, price float64) (Service, bool) {
	if strings.TrimSpace(name) == "" {
		return Service{}, false
	}
	for i, s := range c.services {
		if s.ID == id {
			c.services[i].Name = name
			c.services[i].Price = price
			return c.services[i], true
		}
	}
	return Service{}, false
}

// Delete removes the service with the given id. Deleting the last service
// leaves an empty, still-usable catalog.
func (c *Catalog) Delete(id string) bool {
	for i, s := range c.services {
		if s.ID == id {
			c.services = append(c.services[:i], c.services[i+1:]...)
			return true
		}
	}
	return false
}
