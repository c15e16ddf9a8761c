package domain

import "time"

// AnonymousUser is recorded for requests whose caller could not be resolved.
const AnonymousUser = "anonymous"

// OperationLog is one append-only audit record per inbound request.
type OperationLog struct {
	ID        int64
	Username  string
	Role      Role
	Path      string
	Method    string
	IPAddress string
	Payload   string
	CreatedAt time.Time
}
