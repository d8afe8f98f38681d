//go:build !gaia_noadjacency

package adjacency

// NewDefaultProvider returns the provider selected by build configuration.
func NewDefaultProvider() Provider {
	return DelaunayProvider{}
}
