// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialdesk/dialdesk/ent/lead"
	"github.com/dialdesk/dialdesk/ent/project"
	"github.com/dialdesk/dialdesk/ent/user"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableName(v *string) *LeadCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetMobile sets the "mobile" field.
func (_c *LeadCreate) SetMobile(v string) *LeadCreate {
	_c.mutation.SetMobile(v)
	return _c
}

// SetNillableMobile sets the "mobile" field if the given value is not nil.
func (_c *LeadCreate) SetNillableMobile(v *string) *LeadCreate {
	if v != nil {
		_c.SetMobile(*v)
	}
	return _c
}

// SetCorporatePhone sets the "corporate_phone" field.
func (_c *LeadCreate) SetCorporatePhone(v string) *LeadCreate {
	_c.mutation.SetCorporatePhone(v)
	return _c
}

// SetNillableCorporatePhone sets the "corporate_phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCorporatePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetCorporatePhone(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *LeadCreate) SetTitle(v string) *LeadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *LeadCreate) SetNillableTitle(v *string) *LeadCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *LeadCreate) SetIndustry(v string) *LeadCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *LeadCreate) SetNillableIndustry(v *string) *LeadCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetRevenue sets the "revenue" field.
func (_c *LeadCreate) SetRevenue(v string) *LeadCreate {
	_c.mutation.SetRevenue(v)
	return _c
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_c *LeadCreate) SetNillableRevenue(v *string) *LeadCreate {
	if v != nil {
		_c.SetRevenue(*v)
	}
	return _c
}

// SetEmployees sets the "employees" field.
func (_c *LeadCreate) SetEmployees(v string) *LeadCreate {
	_c.mutation.SetEmployees(v)
	return _c
}

// SetNillableEmployees sets the "employees" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmployees(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmployees(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *LeadCreate) SetState(v string) *LeadCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *LeadCreate) SetNillableState(v *string) *LeadCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetLinkedin sets the "linkedin" field.
func (_c *LeadCreate) SetLinkedin(v string) *LeadCreate {
	_c.mutation.SetLinkedin(v)
	return _c
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLinkedin(v *string) *LeadCreate {
	if v != nil {
		_c.SetLinkedin(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *LeadCreate) SetWebsite(v string) *LeadCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *LeadCreate) SetNillableWebsite(v *string) *LeadCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LeadCreate) SetNotes(v string) *LeadCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *LeadCreate) SetNillableNotes(v *string) *LeadCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadCreate) SetStatus(v string) *LeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatus(v *string) *LeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNextFollowUp sets the "next_follow_up" field.
func (_c *LeadCreate) SetNextFollowUp(v time.Time) *LeadCreate {
	_c.mutation.SetNextFollowUp(v)
	return _c
}

// SetNillableNextFollowUp sets the "next_follow_up" field if the given value is not nil.
func (_c *LeadCreate) SetNillableNextFollowUp(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetNextFollowUp(*v)
	}
	return _c
}

// SetDealValue sets the "deal_value" field.
func (_c *LeadCreate) SetDealValue(v float64) *LeadCreate {
	_c.mutation.SetDealValue(v)
	return _c
}

// SetNillableDealValue sets the "deal_value" field if the given value is not nil.
func (_c *LeadCreate) SetNillableDealValue(v *float64) *LeadCreate {
	if v != nil {
		_c.SetDealValue(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v string) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *string) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *LeadCreate) SetProjectID(v int) *LeadCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *LeadCreate) SetWorkspaceID(v int) *LeadCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *LeadCreate) SetAssignedAgentID(v int) *LeadCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAssignedAgentID(v *int) *LeadCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *LeadCreate) SetProject(v *Project) *LeadCreate {
	return _c.SetProjectID(v.ID)
}

// SetAssignedAgent sets the "assigned_agent" edge to the User entity.
func (_c *LeadCreate) SetAssignedAgent(v *User) *LeadCreate {
	return _c.SetAssignedAgentID(v.ID)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := lead.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := lead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DealValue(); !ok {
		v := lead.DefaultDealValue
		_c.mutation.SetDealValue(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lead.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lead.status"`)}
	}
	if _, ok := _c.mutation.DealValue(); !ok {
		return &ValidationError{Name: "deal_value", err: errors.New(`ent: missing required field "Lead.deal_value"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Lead.project_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Lead.workspace_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Lead.project"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Mobile(); ok {
		_spec.SetField(lead.FieldMobile, field.TypeString, value)
		_node.Mobile = value
	}
	if value, ok := _c.mutation.CorporatePhone(); ok {
		_spec.SetField(lead.FieldCorporatePhone, field.TypeString, value)
		_node.CorporatePhone = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lead.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(lead.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.Revenue(); ok {
		_spec.SetField(lead.FieldRevenue, field.TypeString, value)
		_node.Revenue = value
	}
	if value, ok := _c.mutation.Employees(); ok {
		_spec.SetField(lead.FieldEmployees, field.TypeString, value)
		_node.Employees = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(lead.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Linkedin(); ok {
		_spec.SetField(lead.FieldLinkedin, field.TypeString, value)
		_node.Linkedin = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(lead.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NextFollowUp(); ok {
		_spec.SetField(lead.FieldNextFollowUp, field.TypeTime, value)
		_node.NextFollowUp = &value
	}
	if value, ok := _c.mutation.DealValue(); ok {
		_spec.SetField(lead.FieldDealValue, field.TypeFloat64, value)
		_node.DealValue = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(lead.FieldWorkspaceID, field.TypeInt, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignedAgentIDs(); len(nodes) > 0 {
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
		_node.AssignedAgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
