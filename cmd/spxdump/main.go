// Command spxdump prints the header and channel summary of Bruker Esprit
// text spectra.
package main

import (
	"github.com/simonhull/spectxt/cmd/spxdump/cmd"
)

func main() {
	cmd.Execute()
}
