// Package model defines the typed entities of the monument dataset.
// Rows coming out of the storage layer are mapped into these structs once,
// at query time; the search pipeline only ever sees typed values.
package model

// District is an administrative district a monument address belongs to.
type District struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Address is the location of a monument: a street within a district.
type Address struct {
	ID          int64    `json:"id"`
	Street      string   `json:"street"`
	HouseNumber string   `json:"house_number,omitempty"`
	District    District `json:"district"`
}

// MonumentType classifies a monument (e.g. "Baudenkmal", "Gartendenkmal").
type MonumentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Participant is a person or organization involved with a monument,
// such as its architect or builder.
type Participant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Monument is an immutable snapshot of one monument row, joined with its
// address and type. Participants are only populated by queries that join
// the participant relation.
type Monument struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Type             MonumentType  `json:"type"`
	Address          Address       `json:"address"`
	ConstructionYear int           `json:"construction_year,omitempty"`
	Latitude         float64       `json:"latitude,omitempty"`
	Longitude        float64       `json:"longitude,omitempty"`
	Participants     []Participant `json:"participants,omitempty"`
}

// Key returns the stable identity used to group candidate matches of the
// same monument across tokens. The primary key is used rather than the
// display name: two distinct monuments may share a name.
func (m Monument) Key() int64 {
	return m.ID
}
