package policy

import (
	"testing"

	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func agentActor(id int) Actor {
	ws := 1
	return Actor{ID: id, Role: RoleAgent, WorkspaceID: &ws, Capabilities: NewCapabilitySet(nil)}
}

func adminActor(workspaceID int) Actor {
	return Actor{ID: 100, Role: RoleAdmin, WorkspaceID: &workspaceID, Capabilities: NewCapabilitySet(nil)}
}

func superAdminActor() Actor {
	return Actor{ID: 1, Role: RoleSuperAdmin, Capabilities: NewCapabilitySet([]string{"all"})}
}

func TestVisibility_SuperAdminSeesEverything(t *testing.T) {
	pol := ForActor(superAdminActor())

	assert.True(t, pol.CanViewProject(ProjectSnapshot{ID: 1, WorkspaceID: 42}))
	assert.True(t, pol.CanAccessLead(LeadSnapshot{ID: 9, WorkspaceID: 99}))
}

func TestVisibility_AdminScopedToWorkspace(t *testing.T) {
	pol := ForActor(adminActor(7))

	assert.True(t, pol.CanViewProject(ProjectSnapshot{ID: 1, WorkspaceID: 7}))
	assert.False(t, pol.CanViewProject(ProjectSnapshot{ID: 2, WorkspaceID: 8}))
	assert.True(t, pol.CanAccessLead(LeadSnapshot{ID: 3, WorkspaceID: 7}))
	assert.False(t, pol.CanAccessLead(LeadSnapshot{ID: 4, WorkspaceID: 8}))
}

func TestVisibility_AdminWithoutWorkspaceFailsClosed(t *testing.T) {
	actor := Actor{ID: 5, Role: RoleAdmin, Capabilities: NewCapabilitySet(nil)}
	pol := ForActor(actor)

	assert.False(t, pol.CanViewProject(ProjectSnapshot{ID: 1, WorkspaceID: 1}))
	assert.False(t, pol.CanAccessLead(LeadSnapshot{ID: 1, WorkspaceID: 1}))
}

func TestVisibility_AgentNeedsAssignment(t *testing.T) {
	pol := ForActor(agentActor(10))

	// No project membership, no lead assignment: sees nothing.
	assert.False(t, pol.CanViewProject(ProjectSnapshot{ID: 1, WorkspaceID: 1, AgentIDs: []int{11, 12}}))
	assert.False(t, pol.CanAccessLead(LeadSnapshot{ID: 1, WorkspaceID: 1, ProjectAgentIDs: []int{11}}))

	// Project membership grants access.
	assert.True(t, pol.CanViewProject(ProjectSnapshot{ID: 2, WorkspaceID: 1, AgentIDs: []int{10, 11}}))
	assert.True(t, pol.CanAccessLead(LeadSnapshot{ID: 2, WorkspaceID: 1, ProjectAgentIDs: []int{10}}))
}

func TestVisibility_AgentLeadAssignmentAloneSuffices(t *testing.T) {
	pol := ForActor(agentActor(10))

	// Individually assigned lead outside any assigned project: OR, not AND.
	lead := LeadSnapshot{ID: 3, WorkspaceID: 1, AssignedAgentID: intPtr(10), ProjectAgentIDs: []int{99}}
	assert.True(t, pol.CanAccessLead(lead))
}

func TestMutateLead_AgentBlockedOnLockedStatuses(t *testing.T) {
	pol := ForActor(agentActor(10))

	for _, status := range []Status{StatusSalesComplete, StatusNotQualified} {
		err := pol.CanMutateLead(LeadSnapshot{ID: 1, Status: status, AssignedAgentID: intPtr(10)})
		require.Error(t, err, "status %q should lock the record", status)
		assert.True(t, domain.IsForbidden(err))
	}

	assert.NoError(t, pol.CanMutateLead(LeadSnapshot{ID: 1, Status: StatusFollowUp}))
}

func TestMutateLead_AdminUnaffectedByLock(t *testing.T) {
	assert.NoError(t, ForActor(adminActor(1)).CanMutateLead(LeadSnapshot{Status: StatusSalesComplete}))
	assert.NoError(t, ForActor(superAdminActor()).CanMutateLead(LeadSnapshot{Status: StatusNotQualified}))
}

func TestTransition_AgentAllowedSet(t *testing.T) {
	pol := ForActor(agentActor(10))

	allowed := []Status{
		StatusNotInterested, StatusFollowUp, StatusInQC, StatusMeetingRescheduled,
		StatusScheduled, StatusMeetingComplete, StatusClientFollowUp,
		StatusVM1, StatusVM2, StatusVM3, StatusVM4, StatusVM5,
	}
	for _, target := range allowed {
		assert.NoError(t, pol.CanTransitionStatus(StatusFollowUp, target), "agent should reach %q", target)
	}

	denied := []Status{StatusSalesComplete, StatusNotQualified, StatusQualified, StatusProposalSent}
	for _, target := range denied {
		err := pol.CanTransitionStatus(StatusFollowUp, target)
		require.Error(t, err, "agent should not reach %q", target)
		assert.True(t, domain.IsForbidden(err))
	}
}

func TestTransition_AgentLockedCurrentShortCircuits(t *testing.T) {
	pol := ForActor(agentActor(10))

	// Even a target inside the allowed set is rejected once the record
	// sits in a locked status.
	err := pol.CanTransitionStatus(StatusSalesComplete, StatusFollowUp)
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
}

func TestTransition_AdminUnrestricted(t *testing.T) {
	for _, pol := range []Policy{ForActor(adminActor(1)), ForActor(superAdminActor())} {
		assert.NoError(t, pol.CanTransitionStatus(StatusSalesComplete, StatusNotQualified))
		assert.NoError(t, pol.CanTransitionStatus(StatusNotQualified, StatusQualified))
		assert.NoError(t, pol.CanTransitionStatus(StatusFollowUp, StatusProposalSent))
	}
}

func TestTransition_UnknownStatusRejectedForAdmins(t *testing.T) {
	err := ForActor(adminActor(1)).CanTransitionStatus(StatusFollowUp, Status("Banana"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCanDelete_CapabilityDriven(t *testing.T) {
	assert.True(t, ForActor(superAdminActor()).CanDelete())

	// Admin without delete_leads cannot delete; with it, can.
	assert.False(t, ForActor(adminActor(1)).CanDelete())

	withCap := adminActor(1)
	withCap.Capabilities = NewCapabilitySet([]string{"delete_leads"})
	assert.True(t, ForActor(withCap).CanDelete())

	agentWithCap := agentActor(10)
	agentWithCap.Capabilities = NewCapabilitySet([]string{"delete_leads"})
	assert.True(t, ForActor(agentWithCap).CanDelete())
}

func TestCapabilitySet_AllGrantsEverything(t *testing.T) {
	set := NewCapabilitySet([]string{"all"})
	assert.True(t, set.Has(CapabilityDeleteLeads))
	assert.True(t, set.Has(Capability("anything_else")))

	empty := NewCapabilitySet(nil)
	assert.False(t, empty.Has(CapabilityDeleteLeads))
}

func TestStatusSets(t *testing.T) {
	assert.True(t, IsValidStatus(StatusVM3))
	assert.False(t, IsValidStatus(Status("sales complete")), "statuses are case-sensitive")
	assert.True(t, IsLockedStatus(StatusSalesComplete))
	assert.True(t, IsLockedStatus(StatusNotQualified))
	assert.False(t, IsLockedStatus(StatusQualified))
	assert.Len(t, AllStatuses, 16)
}
