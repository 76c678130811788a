// Package snapshot holds the in-memory representation of a budget export
// and the lookup structures the transforms are built on. Amounts are int64
// milliunits (1/1000 of the currency unit); ids are opaque strings.
package snapshot

// Cleared statuses carried on transactions.
const (
	ClearedUncleared  = "uncleared"
	ClearedCleared    = "cleared"
	ClearedReconciled = "reconciled"
)

// Document is the on-disk envelope around a budget snapshot.
type Document struct {
	Data DocumentData `json:"data"`
}

// DocumentData wraps the budget together with the export's server knowledge
// marker, which is passed through untouched.
type DocumentData struct {
	Budget          Budget `json:"budget"`
	ServerKnowledge int64  `json:"server_knowledge"`
}

// Budget is one full ledger snapshot. A nil collection slice means the
// collection was absent from the source document, which is distinct from an
// empty one.
type Budget struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastModifiedOn string `json:"last_modified_on,omitempty"`

	FirstMonth *Date `json:"first_month"`
	LastMonth  *Date `json:"last_month"`

	Accounts                 []Account                 `json:"accounts"`
	Payees                   []Payee                   `json:"payees"`
	PayeeLocations           []PayeeLocation           `json:"payee_locations"`
	CategoryGroups           []CategoryGroup           `json:"category_groups"`
	Categories               []Category                `json:"categories"`
	Months                   []Month                   `json:"months"`
	Transactions             []Transaction             `json:"transactions"`
	Subtransactions          []SubTransaction          `json:"subtransactions"`
	ScheduledTransactions    []ScheduledTransaction    `json:"scheduled_transactions"`
	ScheduledSubtransactions []ScheduledSubTransaction `json:"scheduled_subtransactions"`
}

// Account is a ledger account. The balance fields are derived by the
// importer and may be zeroed by transforms without losing information.
type Account struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	OnBudget            bool    `json:"on_budget"`
	Closed              bool    `json:"closed"`
	Note                *string `json:"note"`
	Balance             int64   `json:"balance"`
	ClearedBalance      int64   `json:"cleared_balance"`
	UnclearedBalance    int64   `json:"uncleared_balance"`
	TransferPayeeID     *string `json:"transfer_payee_id"`
	DirectImportLinked  bool    `json:"direct_import_linked,omitempty"`
	DirectImportInError bool    `json:"direct_import_in_error,omitempty"`
	LastReconciledAt    *string `json:"last_reconciled_at"`
	DebtOriginalBalance *int64  `json:"debt_original_balance"`
	Deleted             bool    `json:"deleted"`
}

// Payee is a transaction counterparty.
type Payee struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TransferAccountID *string `json:"transfer_account_id"`
	Deleted           bool    `json:"deleted"`
}

// PayeeLocation is a geotag attached to a payee. Not retained across
// transforms.
type PayeeLocation struct {
	ID        string `json:"id"`
	PayeeID   string `json:"payee_id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Deleted   bool   `json:"deleted"`
}

// CategoryGroup is the parent grouping for categories.
type CategoryGroup struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Hidden  bool   `json:"hidden"`
	Deleted bool   `json:"deleted"`
}

// Category is a budget category. Budgeted is user-entered; activity,
// balance and the goal fields are recomputed on import.
type Category struct {
	ID                      string  `json:"id"`
	CategoryGroupID         string  `json:"category_group_id"`
	CategoryGroupName       *string `json:"category_group_name,omitempty"`
	Name                    string  `json:"name"`
	Hidden                  bool    `json:"hidden"`
	Note                    *string `json:"note"`
	Budgeted                int64   `json:"budgeted"`
	Activity                int64   `json:"activity"`
	Balance                 int64   `json:"balance"`
	GoalType                *string `json:"goal_type"`
	GoalCreationMonth       *Date   `json:"goal_creation_month"`
	GoalTarget              *int64  `json:"goal_target"`
	GoalTargetMonth         *Date   `json:"goal_target_month"`
	GoalPercentageComplete  *int64  `json:"goal_percentage_complete"`
	GoalMonthsToBudget      *int64  `json:"goal_months_to_budget"`
	GoalUnderFunded         *int64  `json:"goal_under_funded"`
	GoalOverallFunded       *int64  `json:"goal_overall_funded"`
	GoalOverallLeft         *int64  `json:"goal_overall_left"`
	GoalSnoozedAt           *string `json:"goal_snoozed_at"`
	Deleted                 bool    `json:"deleted"`
}

// Month is one calendar month of the budget. Month is always a
// first-of-month date; Categories is the per-month category snapshot.
type Month struct {
	Month        Date       `json:"month"`
	Note         *string    `json:"note"`
	Income       int64      `json:"income"`
	Budgeted     int64      `json:"budgeted"`
	Activity     int64      `json:"activity"`
	ToBeBudgeted int64      `json:"to_be_budgeted"`
	AgeOfMoney   *int64     `json:"age_of_money"`
	Deleted      bool       `json:"deleted"`
	Categories   []Category `json:"categories"`
}

// Transaction is one ledger entry.
type Transaction struct {
	ID                      string  `json:"id"`
	Date                    Date    `json:"date"`
	Amount                  int64   `json:"amount"`
	Memo                    *string `json:"memo"`
	Cleared                 string  `json:"cleared"`
	Approved                bool    `json:"approved"`
	FlagColor               *string `json:"flag_color"`
	FlagName                *string `json:"flag_name"`
	AccountID               string  `json:"account_id"`
	PayeeID                 *string `json:"payee_id"`
	CategoryID              *string `json:"category_id"`
	TransferAccountID       *string `json:"transfer_account_id"`
	TransferTransactionID   *string `json:"transfer_transaction_id"`
	MatchedTransactionID    *string `json:"matched_transaction_id"`
	ImportID                *string `json:"import_id"`
	ImportPayeeName         *string `json:"import_payee_name"`
	ImportPayeeNameOriginal *string `json:"import_payee_name_original"`
	DebtTransactionType     *string `json:"debt_transaction_type"`
	Deleted                 bool    `json:"deleted"`
}

// SubTransaction is one split line of a transaction. PayeeName and
// CategoryName are denormalized copies the importer ignores.
type SubTransaction struct {
	ID                    string  `json:"id"`
	TransactionID         string  `json:"transaction_id"`
	Amount                int64   `json:"amount"`
	Memo                  *string `json:"memo"`
	PayeeID               *string `json:"payee_id"`
	PayeeName             *string `json:"payee_name"`
	CategoryID            *string `json:"category_id"`
	CategoryName          *string `json:"category_name"`
	TransferAccountID     *string `json:"transfer_account_id"`
	TransferTransactionID *string `json:"transfer_transaction_id"`
	Deleted               bool    `json:"deleted"`
}

// ScheduledTransaction is a future-dated transaction template. Filters and
// the anonymizer drop these wholesale.
type ScheduledTransaction struct {
	ID                string  `json:"id"`
	DateFirst         Date    `json:"date_first"`
	DateNext          Date    `json:"date_next"`
	Frequency         string  `json:"frequency"`
	Amount            int64   `json:"amount"`
	Memo              *string `json:"memo"`
	FlagColor         *string `json:"flag_color"`
	FlagName          *string `json:"flag_name"`
	AccountID         string  `json:"account_id"`
	PayeeID           *string `json:"payee_id"`
	CategoryID        *string `json:"category_id"`
	TransferAccountID *string `json:"transfer_account_id"`
	Deleted           bool    `json:"deleted"`
}

// ScheduledSubTransaction is one split line of a scheduled transaction.
type ScheduledSubTransaction struct {
	ID                     string  `json:"id"`
	ScheduledTransactionID string  `json:"scheduled_transaction_id"`
	Amount                 int64   `json:"amount"`
	Memo                   *string `json:"memo"`
	PayeeID                *string `json:"payee_id"`
	CategoryID             *string `json:"category_id"`
	TransferAccountID      *string `json:"transfer_account_id"`
	Deleted                bool    `json:"deleted"`
}
