// Package report computes the summary figures the CLI prints: entity
// counts, per-account statistics and milliunit rendering. Display only,
// nothing here feeds back into the transforms.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-snapshot/internal/snapshot"
)

// Summary is the entity-count overview of one snapshot.
type Summary struct {
	FirstMonth               string
	LastMonth                string
	Accounts                 int
	Payees                   int
	PayeeLocations           int
	CategoryGroups           int
	Categories               int
	Months                   int
	Transactions             int
	Subtransactions          int
	ScheduledTransactions    int
	ScheduledSubtransactions int
}

// Summarize counts every collection of the budget.
func Summarize(b *snapshot.Budget) Summary {
	s := Summary{
		Accounts:                 len(b.Accounts),
		Payees:                   len(b.Payees),
		PayeeLocations:           len(b.PayeeLocations),
		CategoryGroups:           len(b.CategoryGroups),
		Categories:               len(b.Categories),
		Months:                   len(b.Months),
		Transactions:             len(b.Transactions),
		Subtransactions:          len(b.Subtransactions),
		ScheduledTransactions:    len(b.ScheduledTransactions),
		ScheduledSubtransactions: len(b.ScheduledSubtransactions),
	}
	if b.FirstMonth != nil {
		s.FirstMonth = b.FirstMonth.String()
	}
	if b.LastMonth != nil {
		s.LastMonth = b.LastMonth.String()
	}
	return s
}

// AccountStat is one account's transaction count and most recent
// transaction date.
type AccountStat struct {
	Name         string
	Transactions int
	Latest       snapshot.Date
}

// AccountStats returns per-account statistics sorted by transaction count
// descending, name ascending as a tiebreak.
func AccountStats(b *snapshot.Budget) []AccountStat {
	ix := snapshot.NewIndex(b)

	stats := make([]AccountStat, 0, len(b.Accounts))
	for _, a := range b.Accounts {
		stats = append(stats, AccountStat{
			Name:         a.Name,
			Transactions: ix.TransactionCounts[a.ID],
			Latest:       ix.LatestTransaction[a.ID],
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Transactions != stats[j].Transactions {
			return stats[i].Transactions > stats[j].Transactions
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// Milliunits renders a milliunit amount in currency units, e.g. -150 →
// "-0.15".
func Milliunits(amount int64) string {
	return decimal.NewFromInt(amount).Shift(-3).String()
}
