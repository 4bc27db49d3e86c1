package featurevector

// A Feature is the name of a single model input, e.g. "dist=2"
type Feature string

func (f Feature) String() string {
	return string(f)
}
