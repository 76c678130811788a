// Package filter implements the window/scope filter: it truncates a
// snapshot's transaction history to a date window and/or an account subset,
// cascades the removal to dependent entities, and (for start-bounded runs)
// synthesizes balance-forward entries so remaining account balances are
// unchanged by the truncation.
package filter

import (
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-snapshot/internal/snapshot"
)

// BalanceForwardMemo is the memo written on synthesized entries.
const BalanceForwardMemo = "Balance forward"

// Direction selects which side of the boundary date is trimmed away.
type Direction int

const (
	// TrimBefore keeps history on/after the boundary (start-bounded).
	TrimBefore Direction = iota
	// TrimAfter keeps history on/before the boundary (end-bounded).
	TrimAfter
)

// Params are the fully resolved inputs of one filter run.
type Params struct {
	Direction Direction
	Boundary  snapshot.Date

	// KeepAccounts are account names kept whole regardless of date.
	// Only meaningful for TrimBefore.
	KeepAccounts []string
	// DropAccounts are account names excluded entirely. Only meaningful
	// for TrimAfter. Mutually exclusive with KeepAccounts.
	DropAccounts []string

	// DropEmptyAccounts removes accounts left with no transactions.
	// TrimAfter applies this unconditionally; the asymmetry is inherited
	// behavior, kept on purpose.
	DropEmptyAccounts bool

	// SyntheticPayee and InflowCategory name the singletons used for
	// balance-forward entries. Required for TrimBefore.
	SyntheticPayee string
	InflowCategory string

	// ReviewPrefix, when non-empty, is prepended to the memo of every
	// retained unapproved transaction. Tagging is idempotent.
	ReviewPrefix string
}

// Result carries the figures a filter run computed along the way, for
// reporting only.
type Result struct {
	// RemovedAmounts is the net milliunit total of removed transactions
	// per account id.
	RemovedAmounts      map[string]int64
	RemovedTransactions int
	Synthesized         int
	Tagged              int
}

// Apply runs the filter and returns a new snapshot. The input budget is
// never mutated; on error it is returned untouched alongside a nil budget.
func Apply(b *snapshot.Budget, p Params) (*snapshot.Budget, *Result, error) {
	if len(p.KeepAccounts) > 0 && len(p.DropAccounts) > 0 {
		return nil, nil, &snapshot.ConflictingScopeError{}
	}

	ix := snapshot.NewIndex(b)

	scope, err := ix.AccountIDsByName(scopeNames(p))
	if err != nil {
		return nil, nil, err
	}

	// Singletons are only needed when entries will be synthesized, and
	// must be resolved before any cascade runs.
	var syntheticPayee *snapshot.Payee
	var inflowCategory *snapshot.Category
	if p.Direction == TrimBefore {
		syntheticPayee, err = ix.SyntheticPayee(p.SyntheticPayee)
		if err != nil {
			return nil, nil, err
		}
		inflowCategory, err = ix.InflowCategory(p.InflowCategory)
		if err != nil {
			return nil, nil, err
		}
	}

	res := &Result{RemovedAmounts: make(map[string]int64)}

	// Step 1+2: select retained transactions, accumulating the net amount
	// removed from each account.
	retained := make([]snapshot.Transaction, 0, len(b.Transactions))
	retainedIDs := make(map[string]bool, len(b.Transactions))
	for _, t := range b.Transactions {
		if keepTransaction(&t, p, scope) {
			retained = append(retained, t)
			retainedIDs[t.ID] = true
			continue
		}
		res.RemovedAmounts[t.AccountID] += t.Amount
		res.RemovedTransactions++
	}

	// Step 3: cascade to subtransactions.
	subs := make([]snapshot.SubTransaction, 0, len(b.Subtransactions))
	for _, s := range b.Subtransactions {
		if retainedIDs[s.TransactionID] {
			subs = append(subs, s)
		}
	}

	// Step 4: recompute the referenced-payee set. The synthetic payee is
	// always part of it for start-bounded runs, even before any entry is
	// synthesized.
	referenced := make(map[string]bool)
	for _, t := range retained {
		if t.PayeeID != nil {
			referenced[*t.PayeeID] = true
		}
	}
	for _, s := range subs {
		if s.PayeeID != nil {
			referenced[*s.PayeeID] = true
		}
	}
	if syntheticPayee != nil {
		referenced[syntheticPayee.ID] = true
	}
	payees := make([]snapshot.Payee, 0, len(referenced))
	for _, payee := range b.Payees {
		if referenced[payee.ID] {
			payees = append(payees, payee)
		}
	}

	// Step 5: recompute retained months.
	months := make([]snapshot.Month, 0, len(b.Months))
	for _, m := range b.Months {
		if keepMonth(m.Month, p) {
			months = append(months, m)
		}
	}

	// Step 6: synthesize balance-forward entries. Zero totals synthesize
	// nothing, so repeating a run cannot accumulate entries.
	if p.Direction == TrimBefore {
		for _, account := range b.Accounts {
			total := res.RemovedAmounts[account.ID]
			if total == 0 {
				continue
			}
			retained = append(retained, balanceForward(account.ID, total, p.Boundary, syntheticPayee, inflowCategory))
			res.Synthesized++
		}
	}

	// Step 7: optionally drop accounts left with nothing.
	accounts := b.Accounts
	dropEmpty := p.DropEmptyAccounts || p.Direction == TrimAfter
	if dropEmpty {
		counts := make(map[string]int)
		for _, t := range retained {
			counts[t.AccountID]++
		}
		accounts = make([]snapshot.Account, 0, len(b.Accounts))
		for _, account := range b.Accounts {
			if counts[account.ID] > 0 {
				accounts = append(accounts, account)
			}
		}
	}

	// Step 9: tag retained unapproved transactions for review.
	if p.ReviewPrefix != "" {
		for i := range retained {
			if retained[i].Approved {
				continue
			}
			if tagMemo(&retained[i], p.ReviewPrefix) {
				res.Tagged++
			}
		}
	}

	out := *b
	out.Accounts = accounts
	out.Payees = payees
	out.PayeeLocations = []snapshot.PayeeLocation{}
	out.Months = months
	out.Transactions = retained
	out.Subtransactions = subs
	out.ScheduledTransactions = []snapshot.ScheduledTransaction{}
	out.ScheduledSubtransactions = []snapshot.ScheduledSubTransaction{}

	// Step 8: adjust the snapshot bounds to the filtered window.
	adjustBounds(&out, p)

	return &out, res, nil
}

func scopeNames(p Params) []string {
	if p.Direction == TrimBefore {
		return p.KeepAccounts
	}
	return p.DropAccounts
}

// keepTransaction is the retention predicate. The two directions are
// deliberately not symmetric: a start-bounded run keeps scoped accounts
// whole independent of date, while an end-bounded run requires both the
// account and the date to qualify.
func keepTransaction(t *snapshot.Transaction, p Params, scope map[string]bool) bool {
	if p.Direction == TrimBefore {
		return scope[t.AccountID] || t.Date.OnOrAfter(p.Boundary)
	}
	return !scope[t.AccountID] && t.Date.OnOrBefore(p.Boundary)
}

func keepMonth(m snapshot.Date, p Params) bool {
	if p.Direction == TrimBefore {
		return m.OnOrAfter(p.Boundary)
	}
	return m.OnOrBefore(p.Boundary)
}

// balanceForward builds the compensating entry for one account: dated one
// day before the window start, carrying the net removed amount, reconciled
// and approved so importers treat it as settled history.
func balanceForward(accountID string, amount int64, boundary snapshot.Date, payee *snapshot.Payee, category *snapshot.Category) snapshot.Transaction {
	memo := BalanceForwardMemo
	payeeID := payee.ID
	categoryID := category.ID
	return snapshot.Transaction{
		ID:         uuid.Must(uuid.NewV4()).String(),
		Date:       boundary.AddDays(-1),
		Amount:     amount,
		Memo:       &memo,
		Cleared:    snapshot.ClearedReconciled,
		Approved:   true,
		AccountID:  accountID,
		PayeeID:    &payeeID,
		CategoryID: &categoryID,
	}
}

// tagMemo prefixes the transaction memo, skipping memos already carrying
// the prefix. Reports whether the memo changed.
func tagMemo(t *snapshot.Transaction, prefix string) bool {
	if t.Memo != nil && strings.HasPrefix(*t.Memo, prefix) {
		return false
	}
	tagged := prefix
	if t.Memo != nil {
		tagged = prefix + *t.Memo
	}
	t.Memo = &tagged
	return true
}

func adjustBounds(b *snapshot.Budget, p Params) {
	if len(b.Months) == 0 {
		return
	}

	earliest := b.Months[0].Month
	latest := b.Months[0].Month
	for _, m := range b.Months[1:] {
		if m.Month.Before(earliest.Time) {
			earliest = m.Month
		}
		if m.Month.After(latest.Time) {
			latest = m.Month
		}
	}

	boundaryMonth := p.Boundary.FirstOfMonth()
	if p.Direction == TrimBefore {
		first := earliest
		if boundaryMonth.After(first.Time) {
			first = boundaryMonth
		}
		b.FirstMonth = &first
		return
	}
	last := latest
	if boundaryMonth.Before(last.Time) {
		last = boundaryMonth
	}
	b.LastMonth = &last
}
