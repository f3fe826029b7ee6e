package internaldefs

import "github.com/MrEthical07/goCommon/result"

// KindLabel is the label key carrying the error kind name.
const KindLabel = "kind"

// CounterDef names one exported counter.
type CounterDef struct {
	Name   string
	Help   string
	Labels []string
}

var (
	// Failures counts failed results, labelled by kind.
	Failures = CounterDef{
		Name:   "gocommon_result_failures_total",
		Help:   "Failed results by error kind.",
		Labels: []string{KindLabel},
	}
	// Truncations counts error descriptions cut to the describe capacity.
	Truncations = CounterDef{
		Name: "gocommon_describe_truncations_total",
		Help: "Error descriptions truncated to the describe buffer capacity.",
	}
)

// CounterDefs lists every exported counter.
var CounterDefs = []CounterDef{Failures, Truncations}

// KindSample is one labelled value of the failures counter.
type KindSample struct {
	Kind  string
	Value uint64
}

// FailureSamples returns one sample per kind present in counts, in kind
// declaration order.
func FailureSamples(counts map[result.Kind]uint64) []KindSample {
	if len(counts) == 0 {
		return nil
	}
	out := make([]KindSample, 0, len(counts))
	for _, k := range result.Kinds() {
		v, ok := counts[k]
		if !ok {
			continue
		}
		out = append(out, KindSample{Kind: k.String(), Value: v})
	}
	return out
}
