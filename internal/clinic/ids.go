package clinic

import (
	"strings"

	"github.com/google/uuid"
)

// IDGen produces identifiers for new records. Injected so tests can use a
// deterministic generator instead of random UUIDs.
type IDGen func() string

// UUIDGen is the production generator.
func UUIDGen() string {
	return uuid.NewString()
}

// TempPrefix marks records that have not been persisted into the store yet.
const TempPrefix = "TEMP_"

func TempID(gen IDGen) string {
	return TempPrefix + gen()
}

func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempPrefix)
}
