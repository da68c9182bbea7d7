package types

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	UUIDPrefixLicense     = "lic"
	UUIDPrefixPackage     = "pkg"
	UUIDPrefixInstallment = "inst"
	UUIDPrefixDebt        = "debt"
	UUIDPrefixRequest     = "req"
)

// GenerateUUID returns a lowercase k-sortable ULID
func GenerateUUID() string {
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String())
}

// GenerateUUIDWithPrefix returns a ULID prefixed with an entity tag,
// e.g. inst_01hx3k...
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return prefix + "_" + GenerateUUID()
}
