package ledger

import (
	"database/sql/driver"
	"fmt"
)

// IncreaseOn declares which side of a posting grows an account's balance.
// It is fixed when the account is created.
type IncreaseOn string

const (
	OnDebit  IncreaseOn = "debit"
	OnCredit IncreaseOn = "credit"
)

// ParseIncreaseOn accepts the stored form as well as the OnDebit/OnCredit spellings.
func ParseIncreaseOn(s string) (IncreaseOn, error) {
	switch s {
	case "debit", "OnDebit", "onDebit":
		return OnDebit, nil
	case "credit", "OnCredit", "onCredit":
		return OnCredit, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidIncreaseOn, s)
}

func (i IncreaseOn) Valid() bool {
	return i == OnDebit || i == OnCredit
}

func (i IncreaseOn) String() string {
	return string(i)
}

// Value implements driver.Valuer.
func (i IncreaseOn) Value() (driver.Value, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidIncreaseOn, string(i))
	}
	return string(i), nil
}

// Scan implements sql.Scanner.
func (i *IncreaseOn) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into IncreaseOn", src)
	}
	parsed, err := ParseIncreaseOn(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
