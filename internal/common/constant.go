package common

// Logical keys used in the secure store. The names are part of the on-device
// data format and must stay stable across releases.
const (
	// KeySessionToken holds the current session token.
	KeySessionToken = "user_token"

	// KeyCurrentUser holds the JSON-serialized snapshot of the signed-in user.
	KeyCurrentUser = "user_data"

	// KeyRegistry holds the JSON-serialized array of registered accounts.
	KeyRegistry = "registered_users"
)
