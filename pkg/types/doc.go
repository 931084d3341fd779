// Package types defines the contact entity model, the flat row shape read
// from the backing store, the mutation operation model applied back to it,
// the Store interface, and standard errors for the Rolodex system.
package types
