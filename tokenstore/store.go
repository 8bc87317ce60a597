// Package tokenstore holds the single persisted bearer token that survives
// between runs of the client.
package tokenstore

// Store is one string slot. Implementations never fail loudly: an
// unreadable slot reads as empty and a failed write is logged and dropped,
// so the current session keeps working without persistence.
type Store interface {
	// Read returns the persisted token, or false when there is none.
	Read() (string, bool)

	// Write persists token, replacing any previous value.
	Write(token string)

	// Clear removes the persisted token.
	Clear()
}
