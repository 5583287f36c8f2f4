package configs

import (
	"fmt"
	"strings"
)

// Storage backends understood by Ledger.Backend.
const (
	StorageMemory   = "memory"
	StorageLevelDB  = "leveldb"
	StoragePostgres = "postgres"
)

// Ledger selects where campaign state is kept. Storage is one of
// "memory", "leveldb" or "postgres"; an empty value means "memory" and
// anything else is rejected by Validate. LevelDBPath is only read for the
// leveldb backend. SeedDemo starts a handful of demo campaigns on boot.
type Ledger struct {
	Storage     string `env:"STORAGE" envDefault:"memory"`
	LevelDBPath string `env:"LEVELDB_PATH" envDefault:"data/ledger"`
	SeedDemo    bool   `env:"SEED_DEMO" envDefault:"false"`
}

// Backend returns the normalised storage backend name. Unknown names are
// returned lowercased and trimmed so callers can report them.
func (c Ledger) Backend() string {
	name := strings.ToLower(strings.TrimSpace(c.Storage))
	switch name {
	case "", StorageMemory:
		return StorageMemory
	case StorageLevelDB:
		return StorageLevelDB
	case StoragePostgres, "postgresql", "psql":
		return StoragePostgres
	default:
		return name
	}
}

// Validate reports an unknown storage backend.
func (c Ledger) Validate() error {
	switch c.Backend() {
	case StorageMemory, StorageLevelDB, StoragePostgres:
		return nil
	default:
		return fmt.Errorf("unknown ledger storage %q: want %s, %s or %s",
			c.Storage, StorageMemory, StorageLevelDB, StoragePostgres)
	}
}
