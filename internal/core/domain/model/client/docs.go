// Package client provides the Client aggregate for the roster of booking
// accounts. Clients are either business accounts (B2B) or individual
// travellers (B2C) and carry a running count of orders booked against them.
package client
