package player

// Profile is the identity a username resolves to. UUID is the stable
// identifier used for all downstream queries; Name is the canonical casing
// returned by the identity service, which may differ from the user's input.
type Profile struct {
	UUID string `json:"id"`
	Name string `json:"name"`
}
