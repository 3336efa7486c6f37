package di

import "wxledger/internal/services"

func provideLedgerStats(ledger services.LedgerInterface) services.LedgerStatsInterface {
	return ledger
}
