package frame

// DefaultNAValues is the default set of strings recognized as missing-value
// markers, matching the pandas STR_NA_VALUES list. A caller-supplied list
// replaces this set rather than extending it.
var DefaultNAValues = []string{
	"",
	" ",
	"#N/A",
	"#N/A N/A",
	"#NA",
	"-1.#IND",
	"-1.#QNAN",
	"-NaN",
	"-nan",
	"1.#IND",
	"1.#QNAN",
	"<NA>",
	"N/A",
	"NA",
	"NULL",
	"NaN",
	"None",
	"n/a",
	"nan",
	"null",
}

// ReplaceNA converts every string cell matching one of the markers into an
// explicit missing value. A nil marker list falls back to DefaultNAValues.
func (f *Frame) ReplaceNA(markers []string) {
	if markers == nil {
		markers = DefaultNAValues
	}
	set := make(map[string]bool, len(markers))
	for _, m := range markers {
		set[m] = true
	}
	for _, row := range f.rows {
		for i, cell := range row {
			if s, ok := cell.(string); ok && set[s] {
				row[i] = nil
			}
		}
	}
}
