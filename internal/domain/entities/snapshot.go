package entities

// Snapshot is the persisted state of the address book: the ordered person and
// event lists plus the link mapping. Storage implementations must round-trip
// it with order preserved.
type Snapshot struct {
	Persons []Person     `json:"persons"`
	Events  []Event      `json:"events"`
	Links   []LinkRecord `json:"links,omitempty"`
}

// LinkRecord maps one event identity to the identities of the persons linked
// to it, in link order.
type LinkRecord struct {
	Event   EventKey    `json:"event"`
	Persons []PersonKey `json:"persons"`
}
