package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the role an account plays in a single posting.
type Side int

const (
	DebitSide Side = iota
	CreditSide
)

func (s Side) String() string {
	if s == CreditSide {
		return "credit"
	}
	return "debit"
}

// Delta returns the signed balance change for an account with the given
// direction when it is posted on side for amount. The account gains the amount
// when side matches its direction and loses it otherwise.
func Delta(direction IncreaseOn, side Side, amount decimal.Decimal) decimal.Decimal {
	if (side == DebitSide && direction == OnDebit) || (side == CreditSide && direction == OnCredit) {
		return amount
	}
	return amount.Neg()
}

// Posting is the outcome of applying one transaction to its two accounts.
type Posting struct {
	DebitDelta  decimal.Decimal
	CreditDelta decimal.Decimal
}

// Post computes both balance changes for a transaction of amount moving from
// the debit account (with direction debitOn) to the credit account (creditOn).
func Post(debitOn, creditOn IncreaseOn, amount decimal.Decimal) Posting {
	return Posting{
		DebitDelta:  Delta(debitOn, DebitSide, amount),
		CreditDelta: Delta(creditOn, CreditSide, amount),
	}
}

// Reverse undoes a posting.
func (p Posting) Reverse() Posting {
	return Posting{DebitDelta: p.DebitDelta.Neg(), CreditDelta: p.CreditDelta.Neg()}
}

// PostingRequest carries the caller supplied fields of a transaction that do
// not require a store lookup to validate.
type PostingRequest struct {
	Amount          decimal.Decimal
	Currency        string
	DebitAccount    string
	CreditAccount   string
	Tags            []string
	AttachmentNames []string
}

// Validate checks everything that can be rejected before the first write.
func (r PostingRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, r.Amount.String())
	}
	if strings.TrimSpace(r.Currency) == "" {
		return ErrInvalidCurrency
	}
	if r.DebitAccount == "" {
		return fmt.Errorf("%w: debit account name is empty", ErrAccountNotFound)
	}
	if r.CreditAccount == "" {
		return fmt.Errorf("%w: credit account name is empty", ErrAccountNotFound)
	}
	if r.DebitAccount == r.CreditAccount {
		return fmt.Errorf("%w: %q", ErrSameAccount, r.DebitAccount)
	}
	if err := ValidateTags(r.Tags); err != nil {
		return err
	}
	return ValidateAttachmentNames(r.AttachmentNames)
}

// ValidateAttachmentNames rejects blank names and names used twice, since
// attachments are keyed by (name, transaction).
func ValidateAttachmentNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: attachment name is empty", ErrInvalidAttachment)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate attachment name %q", ErrInvalidAttachment, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// ValidateTags rejects blank tag names.
func ValidateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tag name is empty", ErrInvalidTag)
		}
	}
	return nil
}

// UniqueTags drops repeated tag names, keeping first-seen order.
func UniqueTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
