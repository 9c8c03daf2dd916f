package analyzer

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/codewarden/codewarden/internal/types"
)

// fingerprint derives a stable per-run identifier for a finding so JSON and
// SARIF consumers can correlate results across renderings.
func fingerprint(f types.Finding) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%s|%s|%d|%s", f.Path, f.Rule, f.Line, f.Match))
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
