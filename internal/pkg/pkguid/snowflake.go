package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// SnowflakeString generates time-ordered Snowflake IDs rendered in base 10.
type SnowflakeString struct {
	node *snowflake.Node
}

//nolint:gochecknoglobals // the epoch is package-level state in the snowflake lib
var setEpoch sync.Once

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & (1<<10 - 1), nil // Limiting to 10 bits for node ID
}

func newNode() (*snowflake.Node, error) {
	nodeID, err := generateRandomNodeID()
	if err != nil {
		return nil, err
	}

	setEpoch.Do(func() {
		snowflake.Epoch = 1767225600000 // Thu Jan 01 2026 00:00:00.000 UTC
	})

	return snowflake.NewNode(nodeID)
}

// NewSnowflakeString constructs a string Snowflake generator with a random node ID.
func NewSnowflakeString() (*SnowflakeString, error) {
	node, err := newNode()
	if err != nil {
		return nil, err
	}

	return &SnowflakeString{node: node}, nil
}

func (s *SnowflakeString) Generate() string {
	return s.node.Generate().String()
}
