// SPDX-License-Identifier: MIT

// Command refactor runs the ReFACTor pipeline on a methylation matrix file.
package main

import (
	"os"

	"github.com/katalvlaran/refactor/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
