package node

import (
	"os"
	"sync"

	"edudb-server/internal/infra/utils"
)

// Node describes the running server instance.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
}

// Set at build time with -ldflags "-X edudb-server/internal/infra/node.Version=...".
var Version = "development"
var CommitHash = "unknown"

var (
	nodeID       string
	nodeIDOnce   sync.Once
	hostname     string
	hostnameOnce sync.Once
)

func GetNodeInfo() *Node {
	return &Node{
		ID:         getNodeID(),
		Hostname:   getHostname(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

func getNodeID() string {
	nodeIDOnce.Do(func() {
		nodeID = utils.GenerateUUID()
	})
	return nodeID
}

func getHostname() string {
	hostnameOnce.Do(func() {
		name, err := os.Hostname()
		if err != nil || name == "" {
			name = "localhost"
		}
		hostname = name
	})
	return hostname
}
