package snapshot

// Index holds id→entity lookups and per-account statistics built once from
// a budget. Transforms use it read-only; it is never updated in place.
type Index struct {
	Accounts   map[string]*Account
	Payees     map[string]*Payee
	Categories map[string]*Category

	// Per-account reporting figures, keyed by account id.
	TransactionCounts map[string]int
	LatestTransaction map[string]Date
}

// NewIndex builds the lookup structures for a budget.
func NewIndex(b *Budget) *Index {
	ix := &Index{
		Accounts:          make(map[string]*Account, len(b.Accounts)),
		Payees:            make(map[string]*Payee, len(b.Payees)),
		Categories:        make(map[string]*Category, len(b.Categories)),
		TransactionCounts: make(map[string]int),
		LatestTransaction: make(map[string]Date),
	}

	for i := range b.Accounts {
		ix.Accounts[b.Accounts[i].ID] = &b.Accounts[i]
	}
	for i := range b.Payees {
		ix.Payees[b.Payees[i].ID] = &b.Payees[i]
	}
	for i := range b.Categories {
		ix.Categories[b.Categories[i].ID] = &b.Categories[i]
	}

	for i := range b.Transactions {
		t := &b.Transactions[i]
		ix.TransactionCounts[t.AccountID]++
		if latest, ok := ix.LatestTransaction[t.AccountID]; !ok || t.Date.After(latest.Time) {
			ix.LatestTransaction[t.AccountID] = t.Date
		}
	}

	return ix
}

// SyntheticPayee resolves the designated internal payee by exact,
// case-sensitive name match among non-deleted payees. Absence or
// multiplicity is a MissingReferenceError.
func (ix *Index) SyntheticPayee(name string) (*Payee, error) {
	var found *Payee
	count := 0
	for _, p := range ix.Payees {
		if !p.Deleted && p.Name == name {
			found = p
			count++
		}
	}
	if count != 1 {
		return nil, &MissingReferenceError{Kind: "payee", Name: name, Count: count}
	}
	return found, nil
}

// InflowCategory resolves the designated inflow category by exact,
// case-sensitive name match among non-deleted categories. Absence or
// multiplicity is a MissingReferenceError.
func (ix *Index) InflowCategory(name string) (*Category, error) {
	var found *Category
	count := 0
	for _, c := range ix.Categories {
		if !c.Deleted && c.Name == name {
			found = c
			count++
		}
	}
	if count != 1 {
		return nil, &MissingReferenceError{Kind: "category", Name: name, Count: count}
	}
	return found, nil
}

// AccountIDsByName resolves account names to an id set. Every unresolved
// name is collected into a single UnknownAccountError so the caller sees
// the full list before anything runs.
func (ix *Index) AccountIDsByName(names []string) (map[string]bool, error) {
	byName := make(map[string]string, len(ix.Accounts))
	for id, a := range ix.Accounts {
		byName[a.Name] = id
	}

	ids := make(map[string]bool, len(names))
	var missing []string
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		ids[id] = true
	}
	if len(missing) > 0 {
		return nil, &UnknownAccountError{Names: missing}
	}
	return ids, nil
}
