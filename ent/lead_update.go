// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialdesk/dialdesk/ent/lead"
	"github.com/dialdesk/dialdesk/ent/predicate"
	"github.com/dialdesk/dialdesk/ent/project"
	"github.com/dialdesk/dialdesk/ent/user"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdate) SetCompany(v string) *LeadUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompany(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdate) ClearCompany() *LeadUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetMobile sets the "mobile" field.
func (_u *LeadUpdate) SetMobile(v string) *LeadUpdate {
	_u.mutation.SetMobile(v)
	return _u
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableMobile(v *string) *LeadUpdate {
	if v != nil {
		_u.SetMobile(*v)
	}
	return _u
}

// ClearMobile clears the value of the "mobile" field.
func (_u *LeadUpdate) ClearMobile() *LeadUpdate {
	_u.mutation.ClearMobile()
	return _u
}

// SetCorporatePhone sets the "corporate_phone" field.
func (_u *LeadUpdate) SetCorporatePhone(v string) *LeadUpdate {
	_u.mutation.SetCorporatePhone(v)
	return _u
}

// SetNillableCorporatePhone sets the "corporate_phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCorporatePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCorporatePhone(*v)
	}
	return _u
}

// ClearCorporatePhone clears the value of the "corporate_phone" field.
func (_u *LeadUpdate) ClearCorporatePhone() *LeadUpdate {
	_u.mutation.ClearCorporatePhone()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LeadUpdate) SetTitle(v string) *LeadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableTitle(v *string) *LeadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *LeadUpdate) ClearTitle() *LeadUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *LeadUpdate) SetIndustry(v string) *LeadUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableIndustry(v *string) *LeadUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *LeadUpdate) ClearIndustry() *LeadUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *LeadUpdate) SetRevenue(v string) *LeadUpdate {
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableRevenue(v *string) *LeadUpdate {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// ClearRevenue clears the value of the "revenue" field.
func (_u *LeadUpdate) ClearRevenue() *LeadUpdate {
	_u.mutation.ClearRevenue()
	return _u
}

// SetEmployees sets the "employees" field.
func (_u *LeadUpdate) SetEmployees(v string) *LeadUpdate {
	_u.mutation.SetEmployees(v)
	return _u
}

// SetNillableEmployees sets the "employees" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmployees(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmployees(*v)
	}
	return _u
}

// ClearEmployees clears the value of the "employees" field.
func (_u *LeadUpdate) ClearEmployees() *LeadUpdate {
	_u.mutation.ClearEmployees()
	return _u
}

// SetState sets the "state" field.
func (_u *LeadUpdate) SetState(v string) *LeadUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableState(v *string) *LeadUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *LeadUpdate) ClearState() *LeadUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetLinkedin sets the "linkedin" field.
func (_u *LeadUpdate) SetLinkedin(v string) *LeadUpdate {
	_u.mutation.SetLinkedin(v)
	return _u
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLinkedin(v *string) *LeadUpdate {
	if v != nil {
		_u.SetLinkedin(*v)
	}
	return _u
}

// ClearLinkedin clears the value of the "linkedin" field.
func (_u *LeadUpdate) ClearLinkedin() *LeadUpdate {
	_u.mutation.ClearLinkedin()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *LeadUpdate) SetWebsite(v string) *LeadUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableWebsite(v *string) *LeadUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *LeadUpdate) ClearWebsite() *LeadUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdate) SetNotes(v string) *LeadUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNotes(v *string) *LeadUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdate) ClearNotes() *LeadUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdate) SetStatus(v string) *LeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatus(v *string) *LeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNextFollowUp sets the "next_follow_up" field.
func (_u *LeadUpdate) SetNextFollowUp(v time.Time) *LeadUpdate {
	_u.mutation.SetNextFollowUp(v)
	return _u
}

// SetNillableNextFollowUp sets the "next_follow_up" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNextFollowUp(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetNextFollowUp(*v)
	}
	return _u
}

// ClearNextFollowUp clears the value of the "next_follow_up" field.
func (_u *LeadUpdate) ClearNextFollowUp() *LeadUpdate {
	_u.mutation.ClearNextFollowUp()
	return _u
}

// SetDealValue sets the "deal_value" field.
func (_u *LeadUpdate) SetDealValue(v float64) *LeadUpdate {
	_u.mutation.ResetDealValue()
	_u.mutation.SetDealValue(v)
	return _u
}

// SetNillableDealValue sets the "deal_value" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableDealValue(v *float64) *LeadUpdate {
	if v != nil {
		_u.SetDealValue(*v)
	}
	return _u
}

// AddDealValue adds value to the "deal_value" field.
func (_u *LeadUpdate) AddDealValue(v float64) *LeadUpdate {
	_u.mutation.AddDealValue(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v string) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *string) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LeadUpdate) ClearSource() *LeadUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *LeadUpdate) SetProjectID(v int) *LeadUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableProjectID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *LeadUpdate) SetWorkspaceID(v int) *LeadUpdate {
	_u.mutation.ResetWorkspaceID()
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableWorkspaceID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// AddWorkspaceID adds value to the "workspace_id" field.
func (_u *LeadUpdate) AddWorkspaceID(v int) *LeadUpdate {
	_u.mutation.AddWorkspaceID(v)
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *LeadUpdate) SetAssignedAgentID(v int) *LeadUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAssignedAgentID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *LeadUpdate) ClearAssignedAgentID() *LeadUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *LeadUpdate) SetProject(v *Project) *LeadUpdate {
	return _u.SetProjectID(v.ID)
}

// SetAssignedAgent sets the "assigned_agent" edge to the User entity.
func (_u *LeadUpdate) SetAssignedAgent(v *User) *LeadUpdate {
	return _u.SetAssignedAgentID(v.ID)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *LeadUpdate) ClearProject() *LeadUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearAssignedAgent clears the "assigned_agent" edge to the User entity.
func (_u *LeadUpdate) ClearAssignedAgent() *LeadUpdate {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lead.project"`)
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Mobile(); ok {
		_spec.SetField(lead.FieldMobile, field.TypeString, value)
	}
	if _u.mutation.MobileCleared() {
		_spec.ClearField(lead.FieldMobile, field.TypeString)
	}
	if value, ok := _u.mutation.CorporatePhone(); ok {
		_spec.SetField(lead.FieldCorporatePhone, field.TypeString, value)
	}
	if _u.mutation.CorporatePhoneCleared() {
		_spec.ClearField(lead.FieldCorporatePhone, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(lead.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(lead.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(lead.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(lead.FieldRevenue, field.TypeString, value)
	}
	if _u.mutation.RevenueCleared() {
		_spec.ClearField(lead.FieldRevenue, field.TypeString)
	}
	if value, ok := _u.mutation.Employees(); ok {
		_spec.SetField(lead.FieldEmployees, field.TypeString, value)
	}
	if _u.mutation.EmployeesCleared() {
		_spec.ClearField(lead.FieldEmployees, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(lead.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Linkedin(); ok {
		_spec.SetField(lead.FieldLinkedin, field.TypeString, value)
	}
	if _u.mutation.LinkedinCleared() {
		_spec.ClearField(lead.FieldLinkedin, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(lead.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextFollowUp(); ok {
		_spec.SetField(lead.FieldNextFollowUp, field.TypeTime, value)
	}
	if _u.mutation.NextFollowUpCleared() {
		_spec.ClearField(lead.FieldNextFollowUp, field.TypeTime)
	}
	if value, ok := _u.mutation.DealValue(); ok {
		_spec.SetField(lead.FieldDealValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealValue(); ok {
		_spec.AddField(lead.FieldDealValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(lead.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(lead.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkspaceID(); ok {
		_spec.AddField(lead.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.ProjectTable,
			Columns: []string{lead.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.ProjectTable,
			Columns: []string{lead.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.AssignedAgentTable,
			Columns: []string{lead.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.AssignedAgentTable,
			Columns: []string{lead.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdateOne) SetCompany(v string) *LeadUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompany(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdateOne) ClearCompany() *LeadUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetMobile sets the "mobile" field.
func (_u *LeadUpdateOne) SetMobile(v string) *LeadUpdateOne {
	_u.mutation.SetMobile(v)
	return _u
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableMobile(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetMobile(*v)
	}
	return _u
}

// ClearMobile clears the value of the "mobile" field.
func (_u *LeadUpdateOne) ClearMobile() *LeadUpdateOne {
	_u.mutation.ClearMobile()
	return _u
}

// SetCorporatePhone sets the "corporate_phone" field.
func (_u *LeadUpdateOne) SetCorporatePhone(v string) *LeadUpdateOne {
	_u.mutation.SetCorporatePhone(v)
	return _u
}

// SetNillableCorporatePhone sets the "corporate_phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCorporatePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCorporatePhone(*v)
	}
	return _u
}

// ClearCorporatePhone clears the value of the "corporate_phone" field.
func (_u *LeadUpdateOne) ClearCorporatePhone() *LeadUpdateOne {
	_u.mutation.ClearCorporatePhone()
	return _u
}

// SetTitle sets the "title" field.
func (_u *LeadUpdateOne) SetTitle(v string) *LeadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableTitle(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *LeadUpdateOne) ClearTitle() *LeadUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *LeadUpdateOne) SetIndustry(v string) *LeadUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableIndustry(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *LeadUpdateOne) ClearIndustry() *LeadUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *LeadUpdateOne) SetRevenue(v string) *LeadUpdateOne {
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableRevenue(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// ClearRevenue clears the value of the "revenue" field.
func (_u *LeadUpdateOne) ClearRevenue() *LeadUpdateOne {
	_u.mutation.ClearRevenue()
	return _u
}

// SetEmployees sets the "employees" field.
func (_u *LeadUpdateOne) SetEmployees(v string) *LeadUpdateOne {
	_u.mutation.SetEmployees(v)
	return _u
}

// SetNillableEmployees sets the "employees" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmployees(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmployees(*v)
	}
	return _u
}

// ClearEmployees clears the value of the "employees" field.
func (_u *LeadUpdateOne) ClearEmployees() *LeadUpdateOne {
	_u.mutation.ClearEmployees()
	return _u
}

// SetState sets the "state" field.
func (_u *LeadUpdateOne) SetState(v string) *LeadUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableState(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *LeadUpdateOne) ClearState() *LeadUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetLinkedin sets the "linkedin" field.
func (_u *LeadUpdateOne) SetLinkedin(v string) *LeadUpdateOne {
	_u.mutation.SetLinkedin(v)
	return _u
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLinkedin(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetLinkedin(*v)
	}
	return _u
}

// ClearLinkedin clears the value of the "linkedin" field.
func (_u *LeadUpdateOne) ClearLinkedin() *LeadUpdateOne {
	_u.mutation.ClearLinkedin()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *LeadUpdateOne) SetWebsite(v string) *LeadUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableWebsite(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *LeadUpdateOne) ClearWebsite() *LeadUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdateOne) SetNotes(v string) *LeadUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNotes(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdateOne) ClearNotes() *LeadUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdateOne) SetStatus(v string) *LeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatus(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNextFollowUp sets the "next_follow_up" field.
func (_u *LeadUpdateOne) SetNextFollowUp(v time.Time) *LeadUpdateOne {
	_u.mutation.SetNextFollowUp(v)
	return _u
}

// SetNillableNextFollowUp sets the "next_follow_up" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNextFollowUp(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetNextFollowUp(*v)
	}
	return _u
}

// ClearNextFollowUp clears the value of the "next_follow_up" field.
func (_u *LeadUpdateOne) ClearNextFollowUp() *LeadUpdateOne {
	_u.mutation.ClearNextFollowUp()
	return _u
}

// SetDealValue sets the "deal_value" field.
func (_u *LeadUpdateOne) SetDealValue(v float64) *LeadUpdateOne {
	_u.mutation.ResetDealValue()
	_u.mutation.SetDealValue(v)
	return _u
}

// SetNillableDealValue sets the "deal_value" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableDealValue(v *float64) *LeadUpdateOne {
	if v != nil {
		_u.SetDealValue(*v)
	}
	return _u
}

// AddDealValue adds value to the "deal_value" field.
func (_u *LeadUpdateOne) AddDealValue(v float64) *LeadUpdateOne {
	_u.mutation.AddDealValue(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v string) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *LeadUpdateOne) ClearSource() *LeadUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *LeadUpdateOne) SetProjectID(v int) *LeadUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableProjectID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *LeadUpdateOne) SetWorkspaceID(v int) *LeadUpdateOne {
	_u.mutation.ResetWorkspaceID()
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableWorkspaceID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// AddWorkspaceID adds value to the "workspace_id" field.
func (_u *LeadUpdateOne) AddWorkspaceID(v int) *LeadUpdateOne {
	_u.mutation.AddWorkspaceID(v)
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *LeadUpdateOne) SetAssignedAgentID(v int) *LeadUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAssignedAgentID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *LeadUpdateOne) ClearAssignedAgentID() *LeadUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *LeadUpdateOne) SetProject(v *Project) *LeadUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetAssignedAgent sets the "assigned_agent" edge to the User entity.
func (_u *LeadUpdateOne) SetAssignedAgent(v *User) *LeadUpdateOne {
	return _u.SetAssignedAgentID(v.ID)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *LeadUpdateOne) ClearProject() *LeadUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearAssignedAgent clears the "assigned_agent" edge to the User entity.
func (_u *LeadUpdateOne) ClearAssignedAgent() *LeadUpdateOne {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lead.project"`)
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Mobile(); ok {
		_spec.SetField(lead.FieldMobile, field.TypeString, value)
	}
	if _u.mutation.MobileCleared() {
		_spec.ClearField(lead.FieldMobile, field.TypeString)
	}
	if value, ok := _u.mutation.CorporatePhone(); ok {
		_spec.SetField(lead.FieldCorporatePhone, field.TypeString, value)
	}
	if _u.mutation.CorporatePhoneCleared() {
		_spec.ClearField(lead.FieldCorporatePhone, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(lead.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(lead.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(lead.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(lead.FieldRevenue, field.TypeString, value)
	}
	if _u.mutation.RevenueCleared() {
		_spec.ClearField(lead.FieldRevenue, field.TypeString)
	}
	if value, ok := _u.mutation.Employees(); ok {
		_spec.SetField(lead.FieldEmployees, field.TypeString, value)
	}
	if _u.mutation.EmployeesCleared() {
		_spec.ClearField(lead.FieldEmployees, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(lead.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Linkedin(); ok {
		_spec.SetField(lead.FieldLinkedin, field.TypeString, value)
	}
	if _u.mutation.LinkedinCleared() {
		_spec.ClearField(lead.FieldLinkedin, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(lead.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextFollowUp(); ok {
		_spec.SetField(lead.FieldNextFollowUp, field.TypeTime, value)
	}
	if _u.mutation.NextFollowUpCleared() {
		_spec.ClearField(lead.FieldNextFollowUp, field.TypeTime)
	}
	if value, ok := _u.mutation.DealValue(); ok {
		_spec.SetField(lead.FieldDealValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealValue(); ok {
		_spec.AddField(lead.FieldDealValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(lead.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(lead.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkspaceID(); ok {
		_spec.AddField(lead.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.ProjectTable,
			Columns: []string{lead.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.ProjectTable,
			Columns: []string{lead.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.AssignedAgentTable,
			Columns: []string{lead.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.AssignedAgentTable,
			Columns: []string{lead.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
