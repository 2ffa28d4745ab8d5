// Code generated by ent, DO NOT EDIT.

package activitylog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dialdesk/dialdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldLeadID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldUserID, v))
}

// PreviousStatus applies equality check predicate on the "previous_status" field. It's identical to PreviousStatusEQ.
func PreviousStatus(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldPreviousStatus, v))
}

// NewStatus applies equality check predicate on the "new_status" field. It's identical to NewStatusEQ.
func NewStatus(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldNewStatus, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldDetails, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDIsNil applies the IsNil predicate on the "lead_id" field.
func LeadIDIsNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIsNull(FieldLeadID))
}

// LeadIDNotNil applies the NotNil predicate on the "lead_id" field.
func LeadIDNotNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotNull(FieldLeadID))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldUserID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldAction, vs...))
}

// PreviousStatusEQ applies the EQ predicate on the "previous_status" field.
func PreviousStatusEQ(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldPreviousStatus, v))
}

// PreviousStatusNEQ applies the NEQ predicate on the "previous_status" field.
func PreviousStatusNEQ(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldPreviousStatus, v))
}

// PreviousStatusIn applies the In predicate on the "previous_status" field.
func PreviousStatusIn(vs ...string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldPreviousStatus, vs...))
}

// PreviousStatusNotIn applies the NotIn predicate on the "previous_status" field.
func PreviousStatusNotIn(vs ...string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldPreviousStatus, vs...))
}

// PreviousStatusGT applies the GT predicate on the "previous_status" field.
func PreviousStatusGT(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldPreviousStatus, v))
}

// PreviousStatusGTE applies the GTE predicate on the "previous_status" field.
func PreviousStatusGTE(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldPreviousStatus, v))
}

// PreviousStatusLT applies the LT predicate on the "previous_status" field.
func PreviousStatusLT(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldPreviousStatus, v))
}

// PreviousStatusLTE applies the LTE predicate on the "previous_status" field.
func PreviousStatusLTE(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldPreviousStatus, v))
}

// PreviousStatusContains applies the Contains predicate on the "previous_status" field.
func PreviousStatusContains(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldContains(FieldPreviousStatus, v))
}

// PreviousStatusHasPrefix applies the HasPrefix predicate on the "previous_status" field.
func PreviousStatusHasPrefix(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldHasPrefix(FieldPreviousStatus, v))
}

// PreviousStatusHasSuffix applies the HasSuffix predicate on the "previous_status" field.
func PreviousStatusHasSuffix(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldHasSuffix(FieldPreviousStatus, v))
}

// PreviousStatusIsNil applies the IsNil predicate on the "previous_status" field.
func PreviousStatusIsNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIsNull(FieldPreviousStatus))
}

// PreviousStatusNotNil applies the NotNil predicate on the "previous_status" field.
func PreviousStatusNotNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotNull(FieldPreviousStatus))
}

// PreviousStatusEqualFold applies the EqualFold predicate on the "previous_status" field.
func PreviousStatusEqualFold(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEqualFold(FieldPreviousStatus, v))
}

// PreviousStatusContainsFold applies the ContainsFold predicate on the "previous_status" field.
func PreviousStatusContainsFold(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldContainsFold(FieldPreviousStatus, v))
}

// NewStatusEQ applies the EQ predicate on the "new_status" field.
func NewStatusEQ(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldNewStatus, v))
}

// NewStatusNEQ applies the NEQ predicate on the "new_status" field.
func NewStatusNEQ(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldNewStatus, v))
}

// NewStatusIn applies the In predicate on the "new_status" field.
func NewStatusIn(vs ...string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldNewStatus, vs...))
}

// NewStatusNotIn applies the NotIn predicate on the "new_status" field.
func NewStatusNotIn(vs ...string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldNewStatus, vs...))
}

// NewStatusGT applies the GT predicate on the "new_status" field.
func NewStatusGT(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldNewStatus, v))
}

// NewStatusGTE applies the GTE predicate on the "new_status" field.
func NewStatusGTE(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldNewStatus, v))
}

// NewStatusLT applies the LT predicate on the "new_status" field.
func NewStatusLT(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldNewStatus, v))
}

// NewStatusLTE applies the LTE predicate on the "new_status" field.
func NewStatusLTE(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldNewStatus, v))
}

// NewStatusContains applies the Contains predicate on the "new_status" field.
func NewStatusContains(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldContains(FieldNewStatus, v))
}

// NewStatusHasPrefix applies the HasPrefix predicate on the "new_status" field.
func NewStatusHasPrefix(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldHasPrefix(FieldNewStatus, v))
}

// NewStatusHasSuffix applies the HasSuffix predicate on the "new_status" field.
func NewStatusHasSuffix(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldHasSuffix(FieldNewStatus, v))
}

// NewStatusIsNil applies the IsNil predicate on the "new_status" field.
func NewStatusIsNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIsNull(FieldNewStatus))
}

// NewStatusNotNil applies the NotNil predicate on the "new_status" field.
func NewStatusNotNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotNull(FieldNewStatus))
}

// NewStatusEqualFold applies the EqualFold predicate on the "new_status" field.
func NewStatusEqualFold(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEqualFold(FieldNewStatus, v))
}

// NewStatusContainsFold applies the ContainsFold predicate on the "new_status" field.
func NewStatusContainsFold(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldContainsFold(FieldNewStatus, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotNull(FieldDetails))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldContainsFold(FieldDetails, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActivityLog {
	return predicate.ActivityLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityLog) predicate.ActivityLog {
	return predicate.ActivityLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityLog) predicate.ActivityLog {
	return predicate.ActivityLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityLog) predicate.ActivityLog {
	return predicate.ActivityLog(sql.NotPredicates(p))
}
