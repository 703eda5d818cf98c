// SPDX-License-Identifier: MIT

package refactor

// Version is the algorithm version printed in the start banner.
const Version = "1.0"

// Progress lines, in the order a successful run emits them. Run emits the
// first four; the result writer emits the two Saving lines and the caller
// reports StatusDone once both artifacts exist.
const (
	StatusStart          = "Starting ReFACTor v" + Version + "..."
	StatusStandardPCA    = "Running a standard PCA..."
	StatusRanking        = "Computing a low rank approximation of the input data and ranking sites..."
	StatusComponents     = "Computing the ReFACTor components..."
	StatusSaveRanked     = "Saving a ranked list of the data features..."
	StatusSaveComponents = "Saving the ReFACTor components..."
	StatusDone           = "ReFACTor is Done!"
	StatusTerminated     = "ReFACTor was terminated."
)

// Reporter receives human-readable progress lines.
type Reporter interface {
	Status(msg string)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(msg string)

// Status calls f(msg).
func (f ReporterFunc) Status(msg string) { f(msg) }

type nopReporter struct{}

func (nopReporter) Status(string) {}
