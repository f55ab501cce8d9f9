// Package models defines the domain models shared by the billed client core
// and the reference backend.
//
// # Client-side records
//
//   - Bill: an expense report as returned by the remote store
//   - DisplayBill: a Bill with its date and status formatted for display
//   - Credentials, Session: what the login flow submits and persists
//
// # Backend records
//
//   - User: a registered account with a bcrypt password hash
//
// Bills are immutable once fetched by the client. The display copy is derived
// and never sent back to the store.
package models
