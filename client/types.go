package client

import "time"

// Member is one person in a family tree.
type Member struct {
	ID        string    `json:"id" yaml:"id"`
	TreeID    string    `json:"tree_id" yaml:"-"`
	Name      string    `json:"name" yaml:"name"`
	Gender    string    `json:"gender,omitempty" yaml:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// Relationship is a spouse or parent-child edge. For parent-child, A is the parent.
type Relationship struct {
	ID        string    `json:"id" yaml:"-"`
	TreeID    string    `json:"tree_id" yaml:"-"`
	Kind      string    `json:"kind" yaml:"kind"`
	MemberA   string    `json:"member_a" yaml:"a"`
	MemberB   string    `json:"member_b" yaml:"b"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// RelationResult describes what one member is to another.
type RelationResult struct {
	FromMemberID        string   `json:"from_member_id"`
	FromMemberName      string   `json:"from_member_name"`
	ToMemberID          string   `json:"to_member_id"`
	ToMemberName        string   `json:"to_member_name"`
	Relationship        string   `json:"relationship"`
	GenericRelationship string   `json:"generic_relationship"`
	Kind                string   `json:"kind"`
	Cultural            string   `json:"cultural,omitempty"`
	HalfSibling         bool     `json:"half_sibling,omitempty"`
	Path                []string `json:"path"`
	PathNames           []string `json:"path_names"`
}

// RelationList is every member's relation to one member.
type RelationList struct {
	TreeID    string           `json:"tree_id"`
	MemberID  string           `json:"member_id"`
	Relations []RelationResult `json:"relations"`
}

// RelationshipList holds the raw edges of a tree.
type RelationshipList struct {
	TreeID        string         `json:"tree_id"`
	Relationships []Relationship `json:"relationships"`
}

// TreeSnapshot is the portable export format of a tree.
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

// PoolStats mirrors the server's connection pool counters.
type PoolStats struct {
	Total    int32 `json:"total"`
	Idle     int32 `json:"idle"`
	Acquired int32 `json:"acquired"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	Database      string     `json:"database"`
	Pool          *PoolStats `json:"pool,omitempty"`
	UptimeSeconds float64    `json:"uptime_seconds"`
}

// ReadinessResponse is returned by the readiness endpoint.
type ReadinessResponse struct {
	Status        string            `json:"status"`
	SchemaVersion int               `json:"schema_version"`
	Checks        map[string]string `json:"checks"`
}
