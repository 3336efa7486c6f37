package persistence

import (
	"testing"
	"time"
	"wxledger/internal/models"
	"wxledger/internal/services"
	"wxledger/internal/structures"
	"wxledger/internal/testutil"

	"github.com/stretchr/testify/require"
)

const (
	owner   models.Identity = "CONTRACT_OWNER"
	oracle1 models.Identity = "oracle1"
)

func testConfig(filePath string) *structures.Config {
	return &structures.Config{
		Persistence: structures.Persistence{
			FilePath:     filePath,
			SaveInterval: time.Second,
		},
		Ledger: structures.LedgerConfig{
			Owner:         string(owner),
			GenesisHeight: 100,
			BlockInterval: time.Second,
		},
	}
}

// populatedLedger returns a ledger with one oracle, one weather record and
// accuracy for user1 and New York.
func populatedLedger(t *testing.T) services.LedgerInterface {
	t.Helper()
	l := services.NewLedger(testConfig(""))
	require.NoError(t, l.Access().AuthorizeOracle(owner, oracle1))
	require.NoError(t, l.Weather().AddWeatherData(oracle1, "New York", l.Height(),
		models.WeatherRecord{Temperature: 25, Humidity: 60, WindSpeed: 10}))
	require.NoError(t, l.Accuracy().RecordResult(owner, true, models.UserKey("user1"), models.LocationKey("New York")))
	require.NoError(t, l.Accuracy().RecordResult(owner, false, models.UserKey("user1"), models.LocationKey("London")))
	l.AdvanceBlock()
	return l
}

func newTestFileManager(ledger services.LedgerInterface, comp *testutil.MockCompressor) *FileManager {
	return NewFileManager(comp, ledger, &testutil.MockLogger{})
}
