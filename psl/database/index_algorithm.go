package database

// IndexAlgorithm represents the algorithm used for an index.
type IndexAlgorithm int

const (
	IndexAlgorithmBTree IndexAlgorithm = iota
	IndexAlgorithmHash
	IndexAlgorithmGist
	IndexAlgorithmGin
	IndexAlgorithmSpGist
	IndexAlgorithmBrin
)

// IndexAlgorithms lists every algorithm in declaration order.
var IndexAlgorithms = []IndexAlgorithm{
	IndexAlgorithmBTree,
	IndexAlgorithmHash,
	IndexAlgorithmGist,
	IndexAlgorithmGin,
	IndexAlgorithmSpGist,
	IndexAlgorithmBrin,
}

// String returns the schema spelling of the algorithm, e.g. SpGist.
func (a IndexAlgorithm) String() string {
	switch a {
	case IndexAlgorithmBTree:
		return "BTree"
	case IndexAlgorithmHash:
		return "Hash"
	case IndexAlgorithmGist:
		return "Gist"
	case IndexAlgorithmGin:
		return "Gin"
	case IndexAlgorithmSpGist:
		return "SpGist"
	case IndexAlgorithmBrin:
		return "Brin"
	default:
		return "Unknown"
	}
}

// ParseIndexAlgorithm parses the value of an index `type:` argument.
func ParseIndexAlgorithm(name string) (IndexAlgorithm, bool) {
	for _, algo := range IndexAlgorithms {
		if algo.String() == name {
			return algo, true
		}
	}
	return IndexAlgorithmBTree, false
}
