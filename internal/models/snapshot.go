package models

import (
	"time"

	"github.com/phylo-app/phylo/internal/kinship"
)

// SnapshotVersion is the format version written into exported snapshots.
const SnapshotVersion = 1

// TreeSnapshot is one consistent read of a tree's members and relationships.
// It is also the portable format used by export and offline queries.
type TreeSnapshot struct {
	Version       int            `json:"version" yaml:"version"`
	SchemaVersion int            `json:"schema_version,omitempty" yaml:"schema_version,omitempty"`
	PhyloVersion  string         `json:"phylo_version,omitempty" yaml:"phylo_version,omitempty"`
	TreeID        string         `json:"tree_id" yaml:"tree_id"`
	TreeName      string         `json:"tree_name,omitempty" yaml:"tree_name,omitempty"`
	ExportedAt    *time.Time     `json:"exported_at,omitempty" yaml:"exported_at,omitempty"`
	Members       []Member       `json:"members" yaml:"members"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
}

// Graph builds the engine's view of the snapshot.
func (s *TreeSnapshot) Graph() *kinship.Graph {
	members := make([]kinship.Member, 0, len(s.Members))
	for i := range s.Members {
		members = append(members, s.Members[i].KinshipMember())
	}

	edges := make([]kinship.Edge, 0, len(s.Relationships))
	for i := range s.Relationships {
		edges = append(edges, s.Relationships[i].KinshipEdge())
	}

	return kinship.NewGraph(members, edges)
}

// MemberIndex maps member id to member. A repeated id keeps its first
// record, the same one Graph keeps.
func (s *TreeSnapshot) MemberIndex() map[string]*Member {
	idx := make(map[string]*Member, len(s.Members))
	for i := range s.Members {
		if _, dup := idx[s.Members[i].ID]; dup {
			continue
		}

		idx[s.Members[i].ID] = &s.Members[i]
	}

	return idx
}
