package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/graphml/pkg/buildinfo"
	"github.com/matzehuels/graphml/pkg/graphml"
)

// ArtifactOpts are the export options that change the rendered document.
type ArtifactOpts struct {
	Format      string `json:"format"` // input format, "json" or "toml"
	Pretty      bool   `json:"pretty"`
	NodeWeights string `json:"node_weights"`
	EdgeWeights string `json:"edge_weights"`
}

// ArtifactKey returns the cache key of the GraphML document rendered from
// input with opts. Equal inputs and options always produce equal keys within
// one build; the encoder revision and the build version are part of the key,
// so upgrades never serve documents rendered by an older encoder.
func ArtifactKey(input []byte, opts ArtifactOpts) string {
	return hashKey("graphml", graphml.FormatRevision, buildinfo.Version, Hash(input), opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
