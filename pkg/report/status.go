package report

// Status codes classify the outcome of one component's scan attempt.
// The numeric values and their order are a compatibility contract: the
// summary's columns are positional, indexed by code.
const (
	StatusSuccess      = 0 // successfully created
	StatusZeroResults  = 1 // zero results
	StatusInputMissing = 2 // input source missing
	StatusLoadError    = 3 // file load error
	StatusInputExtra   = 4 // extra/unexpected input
	StatusUnknownShape = 5 // unrecognized parsing shape
	StatusUnknown      = 6 // unknown

	StatusMax      = StatusUnknown
	NumStatusCodes = StatusMax + 1
)

// ColumnLabels are the summary column names for codes 0..StatusMax, in
// code order.
var ColumnLabels = [NumStatusCodes]string{
	"number_successfully_created",
	"number_zero_results",
	"number_input_sarif_missing",
	"number_file_load_error",
	"number_input_sarif_extra",
	"number_unknown_sarif_parsing_shape",
	"number_unknown",
}

// Meanings are the human-readable descriptions for codes 0..StatusMax.
var Meanings = [NumStatusCodes]string{
	"successfully created",
	"zero results",
	"input source missing",
	"file load error",
	"extra/unexpected input",
	"unrecognized parsing shape",
	"unknown",
}

// ValidStatus reports whether code is inside the fixed status domain.
func ValidStatus(code int) bool {
	return code >= 0 && code <= StatusMax
}

// Histogram counts records per status code. Its length never varies,
// regardless of which codes actually appear in the input.
type Histogram [NumStatusCodes]int

// Add increments the counter for code. Codes outside the domain are
// ignored, matching a count-by-key-with-default-zero where only the
// fixed known keys are ever read back.
func (h *Histogram) Add(code int) {
	if ValidStatus(code) {
		h[code]++
	}
}

// Merge adds every counter of other into h.
func (h *Histogram) Merge(other Histogram) {
	for i := range h {
		h[i] += other[i]
	}
}

// Total returns the sum of all counters.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}
