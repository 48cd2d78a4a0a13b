package entities

// BlockDefinition is a named land parcel. Size is in decares (dönüm).
//
// Log records reference blocks by Name, not ID, so renaming a block
// orphans its history.
type BlockDefinition struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Size float64 `json:"size"`
}
