package services

import (
	"testing"
	"time"
	"wxledger/internal/models"
	"wxledger/internal/structures"
)

const (
	owner   models.Identity = "CONTRACT_OWNER"
	oracle1 models.Identity = "oracle1"
	user1   models.Identity = "user1"
)

func testConfig() *structures.Config {
	return &structures.Config{
		Ledger: structures.LedgerConfig{
			Owner:         string(owner),
			GenesisHeight: 100,
			BlockInterval: time.Second,
		},
	}
}

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(testConfig()).(*Ledger)
}

func newAccessControl() *AccessControl {
	return NewAccessControl(owner, models.NewOracleStore())
}
