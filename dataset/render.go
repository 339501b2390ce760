package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// AsciiDoc renders the description in AsciiDoc form for dataset
// documentation, listing name, layout, ground-truth change points, and each
// segment's distribution with its parameters.
func (d *SampleDescription) AsciiDoc() string {
	var b strings.Builder

	fmt.Fprintf(&b, "= Sample %s\n\n", d.name)
	fmt.Fprintf(&b, "Total length:: %d\n", d.TotalLength())
	fmt.Fprintf(&b, "Segment lengths:: %v\n", d.lengths)
	fmt.Fprintf(&b, "Change points:: %v\n\n", d.Changepoints())
	b.WriteString("== Distributions\n\n")

	for _, distribution := range d.distributions {
		fmt.Fprintf(&b, "* %s\n", distribution.Name())
		params := distribution.Params()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "** %s:: %s\n", k, params[k])
		}
	}

	return b.String()
}
