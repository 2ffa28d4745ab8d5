// Package policy is the lead mutation policy engine: one policy object
// per role decides visibility, field-level edit rights, and status
// transitions. Every enforcement point (handlers, services, import)
// goes through the same policy instance, so the rules cannot drift
// between surfaces.
//
// The package is deliberately free of storage imports: decisions run
// against snapshots fetched at the start of the request.
package policy

import (
	"github.com/dialdesk/dialdesk/pkg/domain"
)

// Role is an actor role.
type Role string

// Actor roles.
const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleAgent      Role = "AGENT"
)

// Capability is a typed permission token.
type Capability string

// Known capabilities. CapabilityAll is implicit on SUPER_ADMIN and is
// never checked as a token.
const (
	CapabilityAll         Capability = "all"
	CapabilityDeleteLeads Capability = "delete_leads"
)

// CapabilitySet is a set of capabilities held by an actor.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a capability set from raw permission tokens.
func NewCapabilitySet(tokens []string) CapabilitySet {
	set := make(CapabilitySet, len(tokens))
	for _, t := range tokens {
		set[Capability(t)] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the capability, either directly
// or through the "all" token.
func (s CapabilitySet) Has(c Capability) bool {
	if _, ok := s[CapabilityAll]; ok {
		return true
	}
	_, ok := s[c]
	return ok
}

// Actor is the authenticated identity performing an operation. It is
// built once per request from the session and never mutated.
type Actor struct {
	ID           int
	Role         Role
	WorkspaceID  *int
	Capabilities CapabilitySet
}

// ProjectSnapshot is the slice of a project relevant to policy checks.
type ProjectSnapshot struct {
	ID          int
	WorkspaceID int
	AgentIDs    []int
}

// LeadSnapshot is the slice of a lead (with its project's agent set)
// relevant to policy checks, fetched at the start of the request.
type LeadSnapshot struct {
	ID              int
	ProjectID       int
	WorkspaceID     int
	Status          Status
	AssignedAgentID *int
	ProjectAgentIDs []int
}

// Policy answers capability questions for one actor. Select it once per
// request with ForActor and pass it through.
type Policy interface {
	// CanViewProject reports whether the actor may see the project.
	CanViewProject(p ProjectSnapshot) bool
	// CanAccessLead reports whether the actor may see or touch the lead.
	CanAccessLead(l LeadSnapshot) bool
	// CanMutateLead rejects mutations on records locked for the actor.
	// Evaluated before any field filtering: a locked record rejects the
	// whole update, benign fields included.
	CanMutateLead(l LeadSnapshot) error
	// CanEditField reports whether the actor may change the named field.
	CanEditField(field string) bool
	// CanTransitionStatus validates a requested status change.
	CanTransitionStatus(current, requested Status) error
	// CanDelete reports whether the actor may delete leads.
	CanDelete() bool
}

// ForActor selects the policy for the actor's role. Unknown roles get
// the agent policy: the most restrictive one we have.
func ForActor(actor Actor) Policy {
	switch actor.Role {
	case RoleSuperAdmin:
		return superAdminPolicy{actor: actor}
	case RoleAdmin:
		return adminPolicy{actor: actor}
	default:
		return agentPolicy{actor: actor}
	}
}

// superAdminPolicy sees and edits everything in every workspace.
type superAdminPolicy struct {
	actor Actor
}

func (superAdminPolicy) CanViewProject(ProjectSnapshot) bool { return true }

func (superAdminPolicy) CanAccessLead(LeadSnapshot) bool { return true }

func (superAdminPolicy) CanMutateLead(LeadSnapshot) error { return nil }

func (superAdminPolicy) CanEditField(string) bool { return true }

func (superAdminPolicy) CanTransitionStatus(current, requested Status) error {
	if !IsValidStatus(requested) {
		return domain.NewValidationError("unknown status: " + string(requested))
	}
	return nil
}

func (superAdminPolicy) CanDelete() bool { return true }

// adminPolicy is scoped to the actor's workspace but otherwise
// unrestricted. An admin without a resolvable workspace sees nothing
// (fail-closed).
type adminPolicy struct {
	actor Actor
}

func (p adminPolicy) CanViewProject(proj ProjectSnapshot) bool {
	return p.actor.WorkspaceID != nil && proj.WorkspaceID == *p.actor.WorkspaceID
}

func (p adminPolicy) CanAccessLead(l LeadSnapshot) bool {
	return p.actor.WorkspaceID != nil && l.WorkspaceID == *p.actor.WorkspaceID
}

func (adminPolicy) CanMutateLead(LeadSnapshot) error { return nil }

func (adminPolicy) CanEditField(string) bool { return true }

func (adminPolicy) CanTransitionStatus(current, requested Status) error {
	if !IsValidStatus(requested) {
		return domain.NewValidationError("unknown status: " + string(requested))
	}
	return nil
}

func (p adminPolicy) CanDelete() bool {
	return p.actor.Capabilities.Has(CapabilityDeleteLeads)
}

// agentPolicy restricts the actor to assigned projects and leads, an
// editable-field allow-list, a limited status transition set, and no
// edits at all on locked records.
type agentPolicy struct {
	actor Actor
}

// agentEditableFields is the allow-list of fields an agent may change.
var agentEditableFields = map[string]bool{
	"status":          true,
	"notes":           true,
	"nextFollowUp":    true,
	"assignedAgentId": true,
}

func (p agentPolicy) CanViewProject(proj ProjectSnapshot) bool {
	for _, id := range proj.AgentIDs {
		if id == p.actor.ID {
			return true
		}
	}
	return false
}

func (p agentPolicy) CanAccessLead(l LeadSnapshot) bool {
	// Lead-level assignment and project-level assignment are
	// alternatives, not both required.
	if l.AssignedAgentID != nil && *l.AssignedAgentID == p.actor.ID {
		return true
	}
	for _, id := range l.ProjectAgentIDs {
		if id == p.actor.ID {
			return true
		}
	}
	return false
}

func (p agentPolicy) CanMutateLead(l LeadSnapshot) error {
	if IsLockedStatus(l.Status) {
		return domain.NewForbiddenError("record is locked")
	}
	return nil
}

func (agentPolicy) CanEditField(field string) bool {
	return agentEditableFields[field]
}

func (agentPolicy) CanTransitionStatus(current, requested Status) error {
	if IsLockedStatus(current) {
		return domain.NewForbiddenError("record is locked")
	}
	if !agentAllowedTargets[requested] {
		return domain.NewForbiddenError("agents may not set status " + string(requested))
	}
	return nil
}

func (p agentPolicy) CanDelete() bool {
	// Deletion hinges on the capability token, not the role: an agent
	// granted delete_leads may delete, an admin without it may not.
	return p.actor.Capabilities.Has(CapabilityDeleteLeads)
}
