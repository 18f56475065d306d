package model

import "fmt"

// Customer identifies the person holding a reservation. It is a plain value
// object; identity management (accounts, auth) lives outside this service.
type Customer struct {
	Name string
	ID   string
}

// NewCustomer constructs an immutable customer value.
func NewCustomer(name, id string) *Customer {
	return &Customer{Name: name, ID: id}
}

// Equal reports whether both name and id match.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Name == other.Name && c.ID == other.ID
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name=%s}", c.ID, c.Name)
}
