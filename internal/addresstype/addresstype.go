// Package addresstype is the fixed registry of place layers (house, street,
// locality, ...) and the rank intervals that map a document's OSM rank to
// one of them. It is process-wide, read-only state: built once, never
// mutated.
package addresstype

// AddressType is an immutable layer definition: a name and the inclusive
// rank interval that maps onto it.
type AddressType struct {
	Name    string
	MinRank int
	MaxRank int
}

var (
	House    = AddressType{Name: "house", MinRank: 29, MaxRank: 30}
	Street   = AddressType{Name: "street", MinRank: 26, MaxRank: 28}
	Locality = AddressType{Name: "locality", MinRank: 22, MaxRank: 25}
	District = AddressType{Name: "district", MinRank: 17, MaxRank: 21}
	City     = AddressType{Name: "city", MinRank: 13, MaxRank: 16}
	County   = AddressType{Name: "county", MinRank: 10, MaxRank: 12}
	State    = AddressType{Name: "state", MinRank: 5, MaxRank: 9}
	Country  = AddressType{Name: "country", MinRank: 4, MaxRank: 4}
)

// All returns the fixed sequence of address types in descending rank order.
// Callers must not mutate the returned slice.
func All() []AddressType {
	return []AddressType{House, Street, Locality, District, City, County, State, Country}
}

// Names returns the valid layer names in the same order as All.
func Names() []string {
	types := All()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}

// FromRank returns the address type whose rank interval contains rank, if
// any. Intervals are disjoint, so at most one type can match.
func FromRank(rank int) (AddressType, bool) {
	for _, t := range All() {
		if rank >= t.MinRank && rank <= t.MaxRank {
			return t, true
		}
	}
	return AddressType{}, false
}

// IsValidName reports whether name matches one of the registered types.
func IsValidName(name string) bool {
	for _, t := range All() {
		if t.Name == name {
			return true
		}
	}
	return false
}
