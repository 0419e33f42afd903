package normalize

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

// BytesHash computes the hex-encoded SHA-256 of an in-memory source.
func BytesHash(b []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(b))
}

// CardKey derives a stable anchor for a site from its identifying fields.
// Values are trimmed and null-separated so ("ab","c") and ("a","bc") differ.
func CardKey(row *model.SiteRow) string {
	h := sha256.New()
	for _, v := range []string{row.ID, row.Nickname, row.OfficialName, row.ProgramAddress} {
		h.Write([]byte(strings.TrimSpace(v)))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("site-%x", h.Sum(nil)[:6])
}
