// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dialdesk/dialdesk/ent/activitylog"
	"github.com/dialdesk/dialdesk/ent/predicate"
)

// ActivityLogUpdate is the builder for updating ActivityLog entities.
type ActivityLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityLogMutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (_u *ActivityLogUpdate) Where(ps ...predicate.ActivityLog) *ActivityLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ActivityLogUpdate) SetLeadID(v int) *ActivityLogUpdate {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableLeadID(v *int) *ActivityLogUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *ActivityLogUpdate) AddLeadID(v int) *ActivityLogUpdate {
	_u.mutation.AddLeadID(v)
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ActivityLogUpdate) ClearLeadID() *ActivityLogUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityLogUpdate) SetUserID(v int) *ActivityLogUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableUserID(v *int) *ActivityLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ActivityLogUpdate) AddUserID(v int) *ActivityLogUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *ActivityLogUpdate) SetAction(v activitylog.Action) *ActivityLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableAction(v *activitylog.Action) *ActivityLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPreviousStatus sets the "previous_status" field.
func (_u *ActivityLogUpdate) SetPreviousStatus(v string) *ActivityLogUpdate {
	_u.mutation.SetPreviousStatus(v)
	return _u
}

// SetNillablePreviousStatus sets the "previous_status" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillablePreviousStatus(v *string) *ActivityLogUpdate {
	if v != nil {
		_u.SetPreviousStatus(*v)
	}
	return _u
}

// ClearPreviousStatus clears the value of the "previous_status" field.
func (_u *ActivityLogUpdate) ClearPreviousStatus() *ActivityLogUpdate {
	_u.mutation.ClearPreviousStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *ActivityLogUpdate) SetNewStatus(v string) *ActivityLogUpdate {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableNewStatus(v *string) *ActivityLogUpdate {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// ClearNewStatus clears the value of the "new_status" field.
func (_u *ActivityLogUpdate) ClearNewStatus() *ActivityLogUpdate {
	_u.mutation.ClearNewStatus()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ActivityLogUpdate) SetDetails(v string) *ActivityLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ActivityLogUpdate) SetNillableDetails(v *string) *ActivityLogUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ActivityLogUpdate) ClearDetails() *ActivityLogUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ActivityLogMutation object of the builder.
func (_u *ActivityLogUpdate) Mutation() *ActivityLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityLogUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(activitylog.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(activitylog.FieldLeadID, field.TypeInt, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(activitylog.FieldLeadID, field.TypeInt)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activitylog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(activitylog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreviousStatus(); ok {
		_spec.SetField(activitylog.FieldPreviousStatus, field.TypeString, value)
	}
	if _u.mutation.PreviousStatusCleared() {
		_spec.ClearField(activitylog.FieldPreviousStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(activitylog.FieldNewStatus, field.TypeString, value)
	}
	if _u.mutation.NewStatusCleared() {
		_spec.ClearField(activitylog.FieldNewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(activitylog.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(activitylog.FieldDetails, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityLogUpdateOne is the builder for updating a single ActivityLog entity.
type ActivityLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityLogMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *ActivityLogUpdateOne) SetLeadID(v int) *ActivityLogUpdateOne {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableLeadID(v *int) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *ActivityLogUpdateOne) AddLeadID(v int) *ActivityLogUpdateOne {
	_u.mutation.AddLeadID(v)
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ActivityLogUpdateOne) ClearLeadID() *ActivityLogUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityLogUpdateOne) SetUserID(v int) *ActivityLogUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableUserID(v *int) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ActivityLogUpdateOne) AddUserID(v int) *ActivityLogUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *ActivityLogUpdateOne) SetAction(v activitylog.Action) *ActivityLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableAction(v *activitylog.Action) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPreviousStatus sets the "previous_status" field.
func (_u *ActivityLogUpdateOne) SetPreviousStatus(v string) *ActivityLogUpdateOne {
	_u.mutation.SetPreviousStatus(v)
	return _u
}

// SetNillablePreviousStatus sets the "previous_status" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillablePreviousStatus(v *string) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetPreviousStatus(*v)
	}
	return _u
}

// ClearPreviousStatus clears the value of the "previous_status" field.
func (_u *ActivityLogUpdateOne) ClearPreviousStatus() *ActivityLogUpdateOne {
	_u.mutation.ClearPreviousStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *ActivityLogUpdateOne) SetNewStatus(v string) *ActivityLogUpdateOne {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableNewStatus(v *string) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// ClearNewStatus clears the value of the "new_status" field.
func (_u *ActivityLogUpdateOne) ClearNewStatus() *ActivityLogUpdateOne {
	_u.mutation.ClearNewStatus()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ActivityLogUpdateOne) SetDetails(v string) *ActivityLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ActivityLogUpdateOne) SetNillableDetails(v *string) *ActivityLogUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ActivityLogUpdateOne) ClearDetails() *ActivityLogUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ActivityLogMutation object of the builder.
func (_u *ActivityLogUpdateOne) Mutation() *ActivityLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityLogUpdate builder.
func (_u *ActivityLogUpdateOne) Where(ps ...predicate.ActivityLog) *ActivityLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityLogUpdateOne) Select(field string, fields ...string) *ActivityLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityLog entity.
func (_u *ActivityLogUpdateOne) Save(ctx context.Context) (*ActivityLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityLogUpdateOne) SaveX(ctx context.Context) *ActivityLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityLogUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := activitylog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActivityLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityLogUpdateOne) sqlSave(ctx context.Context) (_node *ActivityLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitylog.Table, activitylog.Columns, sqlgraph.NewFieldSpec(activitylog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitylog.FieldID)
		for _, f := range fields {
			if !activitylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activitylog.FieldID {
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
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(activitylog.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(activitylog.FieldLeadID, field.TypeInt, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(activitylog.FieldLeadID, field.TypeInt)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activitylog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(activitylog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(activitylog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreviousStatus(); ok {
		_spec.SetField(activitylog.FieldPreviousStatus, field.TypeString, value)
	}
	if _u.mutation.PreviousStatusCleared() {
		_spec.ClearField(activitylog.FieldPreviousStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(activitylog.FieldNewStatus, field.TypeString, value)
	}
	if _u.mutation.NewStatusCleared() {
		_spec.ClearField(activitylog.FieldNewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(activitylog.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(activitylog.FieldDetails, field.TypeString)
	}
	_node = &ActivityLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
