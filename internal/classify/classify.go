package classify

import "github.com/paylens-dev/paylens/internal/model"

// Labels produced by the built-in rule table.
const (
	LabelBankTransfer = "Bank Transfer Transaction"
	LabelWithdraw     = "Withdraw Money Transaction"
	LabelTopUp        = "Top Up Money Transaction"
	LabelPayment      = "Payment Transaction"
	LabelTransfer     = "Transfer Money Transaction"
	LabelSplitBill    = "Split Bill Transaction"
	LabelInvalid      = "Invalid Transaction"
)

// Rule maps a (type code, merchant) predicate to a label. AnyMerchant
// makes the rule match its type code regardless of merchant ID.
type Rule struct {
	TypeCode    int
	MerchantID  int
	AnyMerchant bool
	Label       string
}

// Matches reports whether the rule applies to the given codes.
func (r Rule) Matches(typeCode, merchantID int) bool {
	if r.TypeCode != typeCode {
		return false
	}
	return r.AnyMerchant || r.MerchantID == merchantID
}

// DefaultRules returns the built-in rule table. Order matters: the
// per-code catch-alls overlap the specific merchant rules by omission,
// so the specific rules must come first.
func DefaultRules() []Rule {
	return []Rule{
		{TypeCode: 2, MerchantID: 1205, Label: LabelBankTransfer},
		{TypeCode: 2, MerchantID: 2260, Label: LabelWithdraw},
		{TypeCode: 2, MerchantID: 2270, Label: LabelTopUp},
		{TypeCode: 2, AnyMerchant: true, Label: LabelPayment},
		{TypeCode: 8, MerchantID: 2250, Label: LabelTransfer},
		{TypeCode: 8, AnyMerchant: true, Label: LabelSplitBill},
	}
}

// Classifier assigns a label to each transaction by evaluating an
// ordered rule table, first match wins. It is pure and total: codes
// matching no rule get the fallback label instead of an error.
type Classifier struct {
	rules    []Rule
	fallback string
}

// New creates a Classifier with the default rule table.
func New() *Classifier {
	return &Classifier{rules: DefaultRules(), fallback: LabelInvalid}
}

// NewWithRules creates a Classifier with a custom rule table and
// fallback label. Rules are evaluated in the order given.
func NewWithRules(rules []Rule, fallback string) *Classifier {
	return &Classifier{rules: rules, fallback: fallback}
}

// Label returns the label for a (type code, merchant ID) pair.
func (c *Classifier) Label(typeCode, merchantID int) string {
	for _, r := range c.rules {
		if r.Matches(typeCode, merchantID) {
			return r.Label
		}
	}
	return c.fallback
}

// Transaction returns the label for a transaction record.
func (c *Classifier) Transaction(txn model.Transaction) string {
	return c.Label(txn.TypeCode, txn.MerchantID)
}
