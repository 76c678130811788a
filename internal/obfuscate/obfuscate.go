// Package obfuscate replaces every human-authored field of a snapshot with
// random content of the same shape. Ids, foreign keys, dates and the
// flow-control flags are preserved, so the output stays referentially valid
// and importable; derived aggregates the importer recomputes are zeroed
// instead of randomized.
package obfuscate

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"github.com/carson-networks/budget-snapshot/internal/snapshot"
)

// Source supplies the randomness for one obfuscation run. *rand.Rand from
// math/rand/v2 satisfies it; tests pass a seeded source for exact-output
// assertions.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed uint64) Source {
	return mathrand.New(mathrand.NewPCG(seed, seed))
}

// NewSecureSource returns a Source seeded from the operating system's
// entropy pool.
func NewSecureSource() Source {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return mathrand.New(mathrand.NewPCG(
		binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
	))
}

// Apply returns an anonymized copy of the budget. Entity counts, ids and
// relationships are identical to the input; payee locations and the
// scheduled collections are emptied. The input is never mutated.
func Apply(b *snapshot.Budget, src Source) (*snapshot.Budget, error) {
	if err := checkComplete(b); err != nil {
		return nil, err
	}

	out := *b
	out.Name = randomText(src)

	out.Accounts = make([]snapshot.Account, len(b.Accounts))
	for i, a := range b.Accounts {
		a.Name = randomText(src)
		a.Note = obfuscateOptional(a.Note, src)
		a.Balance = 0
		a.ClearedBalance = 0
		a.UnclearedBalance = 0
		a.DebtOriginalBalance = nil
		a.LastReconciledAt = nil
		out.Accounts[i] = a
	}

	out.Payees = make([]snapshot.Payee, len(b.Payees))
	for i, p := range b.Payees {
		p.Name = randomText(src)
		out.Payees[i] = p
	}

	out.PayeeLocations = []snapshot.PayeeLocation{}

	out.CategoryGroups = make([]snapshot.CategoryGroup, len(b.CategoryGroups))
	for i, g := range b.CategoryGroups {
		g.Name = randomText(src)
		out.CategoryGroups[i] = g
	}

	out.Categories = make([]snapshot.Category, len(b.Categories))
	for i, c := range b.Categories {
		out.Categories[i] = obfuscateCategory(c, src)
	}

	out.Months = make([]snapshot.Month, len(b.Months))
	for i, m := range b.Months {
		m.Note = obfuscateOptional(m.Note, src)
		m.Income = randomAmount(src)
		m.Budgeted = randomAmount(src)
		m.Activity = 0
		m.ToBeBudgeted = 0
		m.AgeOfMoney = nil
		categories := make([]snapshot.Category, len(m.Categories))
		for j, c := range m.Categories {
			categories[j] = obfuscateCategory(c, src)
		}
		m.Categories = categories
		out.Months[i] = m
	}

	out.Transactions = make([]snapshot.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		t.Amount = randomAmount(src)
		t.Memo = obfuscateOptional(t.Memo, src)
		t.FlagColor = nil
		t.FlagName = nil
		t.ImportPayeeName = nil
		t.ImportPayeeNameOriginal = nil
		out.Transactions[i] = t
	}

	out.Subtransactions = make([]snapshot.SubTransaction, len(b.Subtransactions))
	for i, s := range b.Subtransactions {
		s.Amount = randomAmount(src)
		s.Memo = obfuscateOptional(s.Memo, src)
		s.PayeeName = nil
		s.CategoryName = nil
		out.Subtransactions[i] = s
	}

	out.ScheduledTransactions = []snapshot.ScheduledTransaction{}
	out.ScheduledSubtransactions = []snapshot.ScheduledSubTransaction{}

	return &out, nil
}

// obfuscateCategory handles both top-level categories and the per-month
// category snapshots, which share a shape.
func obfuscateCategory(c snapshot.Category, src Source) snapshot.Category {
	c.Name = randomText(src)
	c.Note = obfuscateOptional(c.Note, src)
	c.Budgeted = randomAmount(src)
	c.CategoryGroupName = nil
	c.Activity = 0
	c.Balance = 0
	c.GoalType = nil
	c.GoalCreationMonth = nil
	c.GoalTarget = nil
	c.GoalTargetMonth = nil
	c.GoalPercentageComplete = nil
	c.GoalMonthsToBudget = nil
	c.GoalUnderFunded = nil
	c.GoalOverallFunded = nil
	c.GoalOverallLeft = nil
	c.GoalSnoozedAt = nil
	return c
}

// obfuscateOptional randomizes a free-text field when present. An absent
// field stays absent so the output shape matches the input.
func obfuscateOptional(s *string, src Source) *string {
	if s == nil {
		return nil
	}
	replaced := randomText(src)
	return &replaced
}

// checkComplete verifies every required collection is present before
// anything is copied, collecting all absences into one error.
func checkComplete(b *snapshot.Budget) error {
	var missing []string
	add := func(name string, absent bool) {
		if absent {
			missing = append(missing, name)
		}
	}

	add("first_month", b.FirstMonth == nil)
	add("last_month", b.LastMonth == nil)
	add("accounts", b.Accounts == nil)
	add("payees", b.Payees == nil)
	add("payee_locations", b.PayeeLocations == nil)
	add("category_groups", b.CategoryGroups == nil)
	add("categories", b.Categories == nil)
	add("months", b.Months == nil)
	add("transactions", b.Transactions == nil)
	add("subtransactions", b.Subtransactions == nil)
	add("scheduled_transactions", b.ScheduledTransactions == nil)
	add("scheduled_subtransactions", b.ScheduledSubtransactions == nil)

	if len(missing) > 0 {
		return &snapshot.IncompleteSnapshotError{Missing: missing}
	}
	return nil
}
