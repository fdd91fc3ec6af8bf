package domain

// CountrySelection is one entry in a user's travel map: a country name as
// it appears in the region dataset, and its classification.
type CountrySelection struct {
	Country string `json:"country"`
	Status  Status `json:"status"`
}

// SelectionList is an insertion-ordered list of selections with unique
// countries. The zero value is a valid empty list.
type SelectionList []CountrySelection

// Index returns the position of country in the list, or -1.
func (l SelectionList) Index(country string) int {
	for i, sel := range l {
		if sel.Country == country {
			return i
		}
	}
	return -1
}

// StatusOf returns the stored status for country and whether an entry
// exists.
func (l SelectionList) StatusOf(country string) (Status, bool) {
	if i := l.Index(country); i >= 0 {
		return l[i].Status, true
	}
	return "", false
}

// Upsert applies one choice to the list and returns the result. Reset
// removes the entry; an existing country keeps its position; a new country
// is appended. The receiver is not modified.
func (l SelectionList) Upsert(country string, status Status) SelectionList {
	i := l.Index(country)

	if status == StatusReset {
		if i < 0 {
			return l.clone()
		}
		out := make(SelectionList, 0, len(l)-1)
		out = append(out, l[:i]...)
		return append(out, l[i+1:]...)
	}

	out := l.clone()
	if i >= 0 {
		out[i].Status = status
		return out
	}
	return append(out, CountrySelection{Country: country, Status: status})
}

// Normalize returns a copy with unstorable entries and duplicate countries
// removed, keeping the first occurrence of each country. Used when
// accepting an externally supplied full list.
func (l SelectionList) Normalize() SelectionList {
	seen := make(map[string]bool, len(l))
	out := make(SelectionList, 0, len(l))
	for _, sel := range l {
		if sel.Country == "" || !sel.Status.Storable() || seen[sel.Country] {
			continue
		}
		seen[sel.Country] = true
		out = append(out, sel)
	}
	return out
}

func (l SelectionList) clone() SelectionList {
	out := make(SelectionList, len(l))
	copy(out, l)
	return out
}
