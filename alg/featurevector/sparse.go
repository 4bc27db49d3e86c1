package featurevector

import (
	"fmt"
	"sort"
	"strings"
)

// Sparse maps features to real values. It serves both as a feature vector
// (binary indicators valued 1.0) and as the weight vector of a linear model,
// where every feature never seen before weighs 0.0.
type Sparse map[Feature]float64

func NewSparse() Sparse {
	return make(Sparse)
}

func NewVectorOfOnesFromFeatures(f []Feature) Sparse {
	vec := make(Sparse, len(f))
	for _, feature := range f {
		vec[feature] = 1.0
	}
	return vec
}

// Get returns the value stored for f, or 0.0 if f was never set
func (v Sparse) Get(f Feature) float64 {
	// v[f] == 0 if v[f] does not exist
	return v[f]
}

func (v Sparse) Len() int {
	return len(v)
}

func (v Sparse) Copy() Sparse {
	copied := make(Sparse, len(v))
	for k, val := range v {
		copied[k] = val
	}
	return copied
}

// DotProduct sums value*v.Get(feature) over the entries of other
func (v Sparse) DotProduct(other Sparse) float64 {
	var result float64
	for feat, val := range other {
		if val == 0.0 {
			continue
		}
		result += val * v.Get(feat)
	}
	return result
}

// Update adds sign*value to v for every non-zero entry of other, creating
// entries on demand. Entries are kept even when they return to 0.0.
func (v Sparse) Update(other Sparse, sign float64) {
	for feat, val := range other {
		if val != 0.0 {
			v[feat] += sign * val
		}
	}
}

// Equal compares by value with absent features treated as 0.0
func (v Sparse) Equal(other Sparse) bool {
	for k, val := range v {
		if other.Get(k) != val {
			return false
		}
	}
	for k, val := range other {
		if v.Get(k) != val {
			return false
		}
	}
	return true
}

func (v Sparse) Features() []Feature {
	feats := make([]Feature, 0, len(v))
	for feat := range v {
		feats = append(feats, feat)
	}
	sort.Slice(feats, func(i, j int) bool { return feats[i] < feats[j] })
	return feats
}

func (v Sparse) String() string {
	strs := make([]string, 0, len(v))
	for _, feat := range v.Features() {
		strs = append(strs, fmt.Sprintf("%v %v", feat, v[feat]))
	}
	return strings.Join(strs, "\n")
}
