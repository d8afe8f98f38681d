package adjacency

import (
	"errors"

	"github.com/Flokey82/go_gens/vectors"
)

// StubProvider is an adjacency provider without a geometry backend. Build
// always fails; callers are expected to surface the error and retry with a
// real provider.
type StubProvider struct{}

// Build implements Provider.
func (StubProvider) Build([]vectors.Vec3) (*Adjacency, error) {
	return nil, errors.New("adjacency: no geometry backend available in this build")
}
