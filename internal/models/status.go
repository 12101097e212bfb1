package models

// Status is the shared review lifecycle for vendor applications and product
// submissions. It starts at pending and moves exactly once to approved or
// rejected; nothing here or on the backend moves it back.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Badge struct {
	Label string
	Icon  string
	Color string
}

// Badge maps a status to its display tag. Unrecognized values get a neutral
// badge with the raw value as the label rather than an error.
func (s Status) Badge() Badge {
	switch s {
	case StatusPending:
		return Badge{Label: "Pending", Icon: "clock", Color: "yellow"}
	case StatusApproved:
		return Badge{Label: "Approved", Icon: "check", Color: "green"}
	case StatusRejected:
		return Badge{Label: "Rejected", Icon: "cross", Color: "red"}
	default:
		return Badge{Label: string(s), Icon: "", Color: "gray"}
	}
}

// Terminal reports whether the review workflow is finished for this status.
// Approve/reject controls must never render for a terminal entity.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Pending gates the approve/reject controls: they render only while this is
// true, which also keeps them hidden for unrecognized status values.
func (s Status) Pending() bool {
	return s == StatusPending
}
