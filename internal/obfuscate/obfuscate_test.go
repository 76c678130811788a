package obfuscate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-snapshot/internal/snapshot"
)

func strptr(s string) *string {
	return &s
}

func i64ptr(n int64) *int64 {
	return &n
}

func testBudget() *snapshot.Budget {
	firstMonth := snapshot.NewDate(2023, time.November, 1)
	lastMonth := snapshot.NewDate(2024, time.January, 1)
	goalMonth := snapshot.NewDate(2024, time.June, 1)
	return &snapshot.Budget{
		ID:         "budget-1",
		Name:       "Household",
		FirstMonth: &firstMonth,
		LastMonth:  &lastMonth,
		Accounts: []snapshot.Account{
			{ID: "a-1", Name: "Checking", Type: "checking", OnBudget: true, Note: strptr("main account"), Balance: 123450, ClearedBalance: 120000, UnclearedBalance: 3450, LastReconciledAt: strptr("2024-01-01T00:00:00Z"), DebtOriginalBalance: i64ptr(-500000)},
		},
		Payees: []snapshot.Payee{
			{ID: "p-1", Name: "Grocer"},
			{ID: "p-2", Name: "Employer", Deleted: true},
		},
		PayeeLocations: []snapshot.PayeeLocation{
			{ID: "pl-1", PayeeID: "p-1"},
		},
		CategoryGroups: []snapshot.CategoryGroup{
			{ID: "g-1", Name: "Everyday"},
		},
		Categories: []snapshot.Category{
			{ID: "c-1", CategoryGroupID: "g-1", CategoryGroupName: strptr("Everyday"), Name: "Food", Note: strptr("weekly shop"), Budgeted: 400000, Activity: -380000, Balance: 20000, GoalType: strptr("TB"), GoalTarget: i64ptr(500000), GoalTargetMonth: &goalMonth},
		},
		Months: []snapshot.Month{
			{Month: snapshot.NewDate(2024, time.January, 1), Note: strptr("january"), Income: 3000000, Budgeted: 2900000, Activity: -2800000, ToBeBudgeted: 100000, AgeOfMoney: i64ptr(14), Categories: []snapshot.Category{
				{ID: "c-1", CategoryGroupID: "g-1", Name: "Food", Budgeted: 400000, Activity: -380000, Balance: 20000},
			}},
		},
		Transactions: []snapshot.Transaction{
			{ID: "t-1", Date: snapshot.NewDate(2024, time.January, 5), Amount: 4500, Memo: strptr("Groceries"), Cleared: snapshot.ClearedCleared, Approved: true, AccountID: "a-1", PayeeID: strptr("p-1"), CategoryID: strptr("c-1"), FlagColor: strptr("red"), FlagName: strptr("check"), ImportPayeeName: strptr("GROCER 123")},
			{ID: "t-2", Date: snapshot.NewDate(2024, time.January, 6), Amount: -1200, Cleared: snapshot.ClearedUncleared, AccountID: "a-1", Deleted: true},
		},
		Subtransactions: []snapshot.SubTransaction{
			{ID: "s-1", TransactionID: "t-1", Amount: 2000, Memo: strptr("bread"), PayeeID: strptr("p-1"), PayeeName: strptr("Grocer"), CategoryID: strptr("c-1"), CategoryName: strptr("Food")},
		},
		ScheduledTransactions: []snapshot.ScheduledTransaction{
			{ID: "st-1", AccountID: "a-1", Amount: -500},
		},
		ScheduledSubtransactions: []snapshot.ScheduledSubTransaction{
			{ID: "ss-1", ScheduledTransactionID: "st-1", Amount: -500},
		},
	}
}

// -- Apply tests --

func TestApply_ShapePreserved(t *testing.T) {
	budget := testBudget()
	out, err := Apply(budget, NewSeededSource(1))
	require.NoError(t, err)

	assert.Len(t, out.Accounts, len(budget.Accounts))
	assert.Len(t, out.Payees, len(budget.Payees))
	assert.Len(t, out.CategoryGroups, len(budget.CategoryGroups))
	assert.Len(t, out.Categories, len(budget.Categories))
	assert.Len(t, out.Months, len(budget.Months))
	assert.Len(t, out.Transactions, len(budget.Transactions))
	assert.Len(t, out.Subtransactions, len(budget.Subtransactions))

	for i := range budget.Payees {
		assert.Equal(t, budget.Payees[i].ID, out.Payees[i].ID)
		assert.Equal(t, budget.Payees[i].Deleted, out.Payees[i].Deleted)
	}
	for i := range budget.Transactions {
		assert.Equal(t, budget.Transactions[i].ID, out.Transactions[i].ID)
		assert.Equal(t, budget.Transactions[i].AccountID, out.Transactions[i].AccountID)
	}
	assert.Equal(t, budget.Subtransactions[0].TransactionID, out.Subtransactions[0].TransactionID)
}

func TestApply_FlowControlFieldsPreserved(t *testing.T) {
	budget := testBudget()
	out, err := Apply(budget, NewSeededSource(2))
	require.NoError(t, err)

	original := budget.Transactions[0]
	anonymized := out.Transactions[0]
	assert.Equal(t, original.ID, anonymized.ID)
	assert.Equal(t, original.Date, anonymized.Date)
	assert.Equal(t, original.AccountID, anonymized.AccountID)
	assert.Equal(t, original.PayeeID, anonymized.PayeeID)
	assert.Equal(t, original.CategoryID, anonymized.CategoryID)
	assert.Equal(t, original.Cleared, anonymized.Cleared)
	assert.Equal(t, original.Approved, anonymized.Approved)
	assert.Equal(t, original.Deleted, anonymized.Deleted)

	assert.Equal(t, budget.Accounts[0].Type, out.Accounts[0].Type)
	assert.Equal(t, budget.Accounts[0].OnBudget, out.Accounts[0].OnBudget)
}

func TestApply_AuthoredContentReplaced(t *testing.T) {
	budget := testBudget()
	out, err := Apply(budget, NewSeededSource(3))
	require.NoError(t, err)

	assert.NotEqual(t, "Household", out.Name)
	assert.NotEqual(t, "Checking", out.Accounts[0].Name)
	assert.NotEqual(t, "Grocer", out.Payees[0].Name)

	anonymized := out.Transactions[0]
	require.NotNil(t, anonymized.Memo)
	assert.NotEqual(t, "Groceries", *anonymized.Memo)
	assert.GreaterOrEqual(t, anonymized.Amount, int64(-MaxAmount))
	assert.LessOrEqual(t, anonymized.Amount, int64(MaxAmount))

	// Absent memos stay absent.
	assert.Nil(t, out.Transactions[1].Memo)
}

func TestApply_DerivedFieldsCleared(t *testing.T) {
	out, err := Apply(testBudget(), NewSeededSource(4))
	require.NoError(t, err)

	account := out.Accounts[0]
	assert.Zero(t, account.Balance)
	assert.Zero(t, account.ClearedBalance)
	assert.Zero(t, account.UnclearedBalance)
	assert.Nil(t, account.DebtOriginalBalance)
	assert.Nil(t, account.LastReconciledAt)

	category := out.Categories[0]
	assert.Nil(t, category.CategoryGroupName)
	assert.Zero(t, category.Activity)
	assert.Zero(t, category.Balance)
	assert.Nil(t, category.GoalType)
	assert.Nil(t, category.GoalTarget)
	assert.Nil(t, category.GoalTargetMonth)

	month := out.Months[0]
	assert.Zero(t, month.Activity)
	assert.Zero(t, month.ToBeBudgeted)
	assert.Nil(t, month.AgeOfMoney)
	require.Len(t, month.Categories, 1)
	assert.Zero(t, month.Categories[0].Activity)
	assert.NotEqual(t, "Food", month.Categories[0].Name)

	sub := out.Subtransactions[0]
	assert.Nil(t, sub.PayeeName)
	assert.Nil(t, sub.CategoryName)

	txn := out.Transactions[0]
	assert.Nil(t, txn.FlagColor)
	assert.Nil(t, txn.FlagName)
	assert.Nil(t, txn.ImportPayeeName)
	assert.Nil(t, txn.ImportPayeeNameOriginal)
}

func TestApply_DropsLocationAndScheduledCollections(t *testing.T) {
	out, err := Apply(testBudget(), NewSeededSource(5))
	require.NoError(t, err)

	assert.Empty(t, out.PayeeLocations)
	assert.Empty(t, out.ScheduledTransactions)
	assert.Empty(t, out.ScheduledSubtransactions)
}

func TestApply_DeterministicUnderSeededSource(t *testing.T) {
	first, err := Apply(testBudget(), NewSeededSource(42))
	require.NoError(t, err)
	second, err := Apply(testBudget(), NewSeededSource(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApply_InputUntouched(t *testing.T) {
	budget := testBudget()
	_, err := Apply(budget, NewSeededSource(6))
	require.NoError(t, err)

	assert.Equal(t, testBudget(), budget)
}

func TestApply_IncompleteSnapshot(t *testing.T) {
	budget := testBudget()
	budget.Transactions = nil
	budget.Payees = nil

	_, err := Apply(budget, NewSeededSource(7))
	var incompleteErr *snapshot.IncompleteSnapshotError
	require.ErrorAs(t, err, &incompleteErr)
	assert.ElementsMatch(t, []string{"payees", "transactions"}, incompleteErr.Missing)
}
