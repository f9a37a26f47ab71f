package commands

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage/schema"
)

type accountView struct {
	Name       string `json:"name" yaml:"name"`
	Balance    string `json:"balance" yaml:"balance"`
	IncreaseOn string `json:"increaseOn" yaml:"increaseOn"`
}

type linkView struct {
	Ancestor   string `json:"ancestor" yaml:"ancestor"`
	Descendant string `json:"descendant" yaml:"descendant"`
}

type pathView struct {
	Accounts []string   `json:"accounts" yaml:"accounts"`
	Links    []linkView `json:"links" yaml:"links"`
}

type transactionView struct {
	ID            int64    `json:"id" yaml:"id"`
	Date          string   `json:"date" yaml:"date"`
	Amount        string   `json:"amount" yaml:"amount"`
	Currency      string   `json:"currency" yaml:"currency"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	DebitAccount  string   `json:"debitAccount" yaml:"debitAccount"`
	CreditAccount string   `json:"creditAccount" yaml:"creditAccount"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Attachments   []string `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

type migrationView struct {
	PreVersion  uint `json:"preVersion" yaml:"preVersion"`
	PostVersion uint `json:"postVersion" yaml:"postVersion"`
	Dirty       bool `json:"dirty" yaml:"dirty"`
}

func newAccountView(a service.Account) accountView {
	return accountView{
		Name:       a.Name,
		Balance:    a.Balance.String(),
		IncreaseOn: a.IncreaseOn.String(),
	}
}

func newPathView(p *service.RegisteredPath) pathView {
	return pathView{Accounts: p.Accounts, Links: linkViews(p.Links)}
}

func newTransactionView(t service.Transaction) transactionView {
	view := transactionView{
		ID:            t.ID,
		Date:          t.Date.UTC().Format(time.RFC3339),
		Amount:        t.Amount.String(),
		Currency:      t.Currency,
		DebitAccount:  t.DebitAccount,
		CreditAccount: t.CreditAccount,
		Tags:          t.Tags,
		Attachments:   t.Attachments,
	}
	if t.Description != nil {
		view.Description = *t.Description
	}
	return view
}

func newTransactionViews(ts []service.Transaction) []transactionView {
	views := make([]transactionView, len(ts))
	for i, t := range ts {
		views[i] = newTransactionView(t)
	}
	return views
}

func newMigrationView(s *schema.MigrationStatus) migrationView {
	return migrationView{PreVersion: s.PreVersion, PostVersion: s.PostVersion, Dirty: s.Dirty}
}

func linkViews(links []ledger.AncestorLink) []linkView {
	views := make([]linkView, len(links))
	for i, l := range links {
		views[i] = linkView{Ancestor: l.Ancestor, Descendant: l.Descendant}
	}
	return views
}

func writeOutput(w io.Writer, format string, v any) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
