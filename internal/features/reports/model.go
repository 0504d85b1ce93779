package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is the mutable entity owned by the store. Every field except
// status_id and version is immutable after creation; status_id changes only
// through the transition engine, and version increments by exactly one on
// every successful transition. ThreatType and StatusCode are catalog joins
// populated by projections, never persisted.
type Report struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterName string             `bson:"reporter_name" json:"reporter_name"`
	Phone        string             `bson:"phone" json:"phone"`
	Location     string             `bson:"location" json:"location"`
	Description  string             `bson:"description" json:"description"`
	TypeID       int                `bson:"type_id" json:"type_id"`
	EvidenceURL  string             `bson:"evidence_url,omitempty" json:"evidence_url,omitempty"`
	// Priority is set administratively outside this service; no operation
	// here ever writes it.
	Priority  int       `bson:"priority" json:"priority"`
	StatusID  int       `bson:"status_id" json:"status_id"`
	Version   int64     `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	ThreatType string `bson:"threat_type,omitempty" json:"threat_type"`
	StatusCode string `bson:"status_code,omitempty" json:"status_code"`
}

// CreateReportRequest is a citizen submission. Bounds match the portal's
// original form validation.
type CreateReportRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Phone       string `json:"phone" binding:"required,min=3,max=32"`
	Location    string `json:"location" binding:"required,min=2,max=128"`
	TypeID      int    `json:"type_id" binding:"required,min=1"`
	Description string `json:"description" binding:"required,min=5"`
	EvidenceURL string `json:"evidence_url" binding:"omitempty,url"`
}

// UpdateStatusRequest carries the caller's expected version, the sole
// concurrency token.
type UpdateStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required,oneof=NOT_OPENED UNDER_PROCESS RESOLVED"`
	Version   int64  `json:"version" binding:"required,min=1"`
}

type ResolveRequest struct {
	Version int64 `json:"version" binding:"required,min=1"`
}

// ListFilter narrows a listing. Status is an exact code match, Search a
// case-insensitive substring over reporter name, phone and location; both
// together combine with AND.
type ListFilter struct {
	StatusCode string
	Search     string
}
