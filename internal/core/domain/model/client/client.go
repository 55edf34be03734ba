package client

import (
	"errors"
	"fmt"
	"strings"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"
)

// Domain errors for client operations.
var (
	// ErrClientIsNotConstructed is returned when using an improperly
	// initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")
)

// Category classifies a client as a business account or an individual
// traveller. It is a value object with the console's wire names.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// Business is a corporate account ("B2B" on the wire).
	Business

	// Individual is a private traveller ("B2C" on the wire).
	Individual
)

// getCategoryStrings returns the wire names for valid categories.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Business:   "B2B",
		Individual: "B2C",
	}
}

// CategoryFromString parses a category from its wire name.
func CategoryFromString(s string) (Category, error) {
	for category, name := range getCategoryStrings() {
		if name == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid client category", s))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid client category", c))
	}
	return nil
}

// String returns the wire name of the category ("B2B", "B2C").
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// Client represents a booking account in the roster: a corporation with a
// travel desk or an individual passenger. It is an aggregate root keyed by
// ClientID and keeps a running count of orders booked against it.
type Client struct {
	id          kernel.ClientID
	name        string
	email       string
	phone       string
	category    Category
	totalOrders int

	isConstructed bool
}

// NewClient registers a client with a zero order count.
func NewClient(id kernel.ClientID, name, email, phone string, category Category) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setCategory(category),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a client from persistent storage, including
// its accumulated order count.
func RestoreClient(id kernel.ClientID, name, email, phone string, category Category, totalOrders int) (*Client, error) {
	if totalOrders < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalOrders",
			fmt.Errorf("%d is negative", totalOrders))
	}

	c, err := NewClient(id, name, email, phone, category)
	if err != nil {
		return nil, err
	}

	c.totalOrders = totalOrders
	return c, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.ClientID {
	return c.id
}

// Name returns the account name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the contact email address.
func (c *Client) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c *Client) Phone() string {
	return c.phone
}

// Category returns the account category.
func (c *Client) Category() Category {
	return c.category
}

// TotalOrders returns the running count of orders booked by this client.
func (c *Client) TotalOrders() int {
	return c.totalOrders
}

// RecordOrder increments the running order count. Called once per booking.
func (c *Client) RecordOrder() {
	c.totalOrders++
}

func (c *Client) setID(id kernel.ClientID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}

func (c *Client) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Client) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
