package frame

// PairMetric selects how a candidate portrait is scored against the portrait
// being paired.
type PairMetric string

const (
	// PairUnion maximizes |A ∪ B|, the number of distinct tags the pair covers.
	PairUnion PairMetric = "union"
	// PairDistinct maximizes |A ∪ B| - |A ∩ B|, additionally penalizing
	// shared tags.
	PairDistinct PairMetric = "distinct"
)

// LandscapeOrder selects the order in which landscape frameglasses are emitted.
type LandscapeOrder string

const (
	// LandscapeInput keeps landscapes in input order.
	LandscapeInput LandscapeOrder = "input"
	// LandscapeRareTags groups landscapes by their rarest tags first.
	LandscapeRareTags LandscapeOrder = "rare-tags"
)

// PairMetrics lists the accepted pair metrics.
var PairMetrics = []string{string(PairUnion), string(PairDistinct)}

// LandscapeOrders lists the accepted landscape orders.
var LandscapeOrders = []string{string(LandscapeInput), string(LandscapeRareTags)}

// Options configures Build. The zero value pairs over the full pool with the
// union metric and keeps landscapes in input order.
type Options struct {
	// PairWindow bounds how many remaining portraits are examined per pairing
	// round. Zero examines all of them.
	PairWindow int

	// Metric scores candidate portraits. Empty means PairUnion.
	Metric PairMetric

	// Landscapes sets the landscape emission order. Empty means LandscapeInput.
	Landscapes LandscapeOrder
}
