package account

import "github.com/carson-networks/ledger-server/internal/service"

// Account is the API response model for an account.
type Account struct {
	Name       string `json:"name" doc:"Account name, unique across the whole hierarchy"`
	Balance    string `json:"balance" doc:"Decimal balance"`
	IncreaseOn string `json:"increaseOn" enum:"debit,credit" doc:"Posting side that increases the balance"`
}

func accountToAPI(acc service.Account) Account {
	return Account{
		Name:       acc.Name,
		Balance:    acc.Balance.String(),
		IncreaseOn: acc.IncreaseOn.String(),
	}
}

func accountsToAPI(accs []service.Account) []Account {
	out := make([]Account, len(accs))
	for i, acc := range accs {
		out[i] = accountToAPI(acc)
	}
	return out
}
