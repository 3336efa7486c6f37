package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"wxledger/internal/models"
	"wxledger/internal/persistence/interfaces"
	"wxledger/internal/providers"
	"wxledger/internal/services"

	json "github.com/goccy/go-json"
)

var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

type FileManager struct {
	ledger     services.LedgerInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, ledger services.LedgerInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		ledger:     ledger,
		logger:     logger,
	}
}

// SaveToFile writes a compressed ledger snapshot. The file is replaced
// atomically, so readers see either the previous or the new snapshot.
func (f *FileManager) SaveToFile(fileName string) error {
	storage := f.ledger.Snapshot()

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(fileName); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores the ledger from a snapshot. A missing file leaves the
// ledger empty.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeApp, "No snapshot at %s, starting empty", fileName)
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err != nil {
		return err
	}
	if storage.Version != models.SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, storage.Version)
	}

	f.ledger.Restore(&storage)
	f.logger.Infof(providers.TypeApp, "Restored snapshot at height %d (%d accuracy, %d weather, %d oracles)",
		storage.Height, len(storage.Accuracy), len(storage.Weather), len(storage.Oracles))
	return nil
}
