package bruker

import (
	"strings"

	"github.com/simonhull/spectxt/internal/text"
)

// esprit builds an export with the signature lines followed by lines.
func esprit(lines ...string) string {
	all := append([]string{vendorSignature, "Esprit 1.9"}, lines...)
	return strings.Join(all, "\n") + "\n"
}

func lineReader(s string) *text.LineReader {
	return text.NewLineReader(strings.NewReader(s), "test.txt")
}
