package policy

// Status is a canonical lead status. Values are exact, case-sensitive
// strings shared with the grid UI.
type Status string

// Canonical status values.
const (
	StatusNotInterested      Status = "Not Interested"
	StatusFollowUp           Status = "Follow-Up"
	StatusInQC               Status = "In QC"
	StatusNotQualified       Status = "Not Qualified"
	StatusQualified          Status = "Qualified"
	StatusScheduled          Status = "Scheduled"
	StatusMeetingComplete    Status = "Meeting Complete"
	StatusMeetingRescheduled Status = "Meeting Rescheduled"
	StatusProposalSent       Status = "Proposal Sent"
	StatusClientFollowUp     Status = "Client Follow-Up"
	StatusSalesComplete      Status = "Sales Complete"
	StatusVM1                Status = "VM1"
	StatusVM2                Status = "VM2"
	StatusVM3                Status = "VM3"
	StatusVM4                Status = "VM4"
	StatusVM5                Status = "VM5"
)

// AllStatuses lists every canonical status in grid order.
var AllStatuses = []Status{
	StatusNotInterested,
	StatusFollowUp,
	StatusInQC,
	StatusNotQualified,
	StatusQualified,
	StatusScheduled,
	StatusMeetingComplete,
	StatusMeetingRescheduled,
	StatusProposalSent,
	StatusClientFollowUp,
	StatusSalesComplete,
	StatusVM1,
	StatusVM2,
	StatusVM3,
	StatusVM4,
	StatusVM5,
}

// lockedStatuses are terminal for agents: once a lead reaches one of
// these, agents cannot mutate the record at all.
var lockedStatuses = map[Status]bool{
	StatusSalesComplete: true,
	StatusNotQualified:  true,
}

// agentAllowedTargets is the set of statuses an agent may move a lead to.
var agentAllowedTargets = map[Status]bool{
	StatusNotInterested:      true,
	StatusFollowUp:           true,
	StatusInQC:               true,
	StatusMeetingRescheduled: true,
	StatusScheduled:          true,
	StatusMeetingComplete:    true,
	StatusClientFollowUp:     true,
	StatusVM1:                true,
	StatusVM2:                true,
	StatusVM3:                true,
	StatusVM4:                true,
	StatusVM5:                true,
}

var validStatuses = func() map[Status]bool {
	m := make(map[Status]bool, len(AllStatuses))
	for _, s := range AllStatuses {
		m[s] = true
	}
	return m
}()

// IsValidStatus reports whether s is one of the canonical statuses.
func IsValidStatus(s Status) bool {
	return validStatuses[s]
}

// IsLockedStatus reports whether s is terminal for agent actors.
func IsLockedStatus(s Status) bool {
	return lockedStatuses[s]
}
