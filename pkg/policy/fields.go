package policy

import (
	"strconv"
	"time"
)

// UpdateRequest is the raw field->value mapping of an update attempt,
// as decoded from the request body.
type UpdateRequest map[string]any

// Changes is the filtered, coerced set of changes a policy allowed.
type Changes struct {
	Fields map[string]any
	// Rejected lists request keys that were dropped: unauthorized for
	// the role, or not mutable at all (id, projectId, workspaceId,
	// unknown keys). Dropped fields never fail the request.
	Rejected []string
}

// mutableFields is every field an update may touch. Identity and
// ownership linkage (id, projectId, workspaceId) are absent on purpose:
// no role may move a lead between projects or workspaces via update.
var mutableFields = map[string]bool{
	"name":            true,
	"company":         true,
	"email":           true,
	"phone":           true,
	"mobile":          true,
	"corporatePhone":  true,
	"title":           true,
	"industry":        true,
	"revenue":         true,
	"employees":       true,
	"state":           true,
	"linkedin":        true,
	"website":         true,
	"notes":           true,
	"status":          true,
	"nextFollowUp":    true,
	"dealValue":       true,
	"source":          true,
	"assignedAgentId": true,
}

// FilterUpdate restricts the requested changes to what the policy
// allows. Unauthorized fields are dropped silently into Rejected,
// never erroring the request; the remainder is coerced to canonical
// types. The result never contains a key absent from the request.
func FilterUpdate(p Policy, req UpdateRequest) Changes {
	out := Changes{Fields: make(map[string]any, len(req))}

	for field, value := range req {
		if !mutableFields[field] || !p.CanEditField(field) {
			out.Rejected = append(out.Rejected, field)
			continue
		}

		switch field {
		case "dealValue":
			out.Fields[field] = coerceFloat(value)
		case "nextFollowUp":
			t, ok := coerceTime(value)
			if !ok {
				out.Rejected = append(out.Rejected, field)
				continue
			}
			out.Fields[field] = t
		case "assignedAgentId":
			out.Fields[field] = coerceAgentID(value)
		case "status":
			out.Fields[field] = Status(coerceString(value))
		default:
			out.Fields[field] = coerceString(value)
		}
	}

	return out
}

// coerceFloat converts a JSON value to float64. Invalid input yields 0
// rather than an error, matching the historical grid behavior.
func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceTime parses a timestamp value. nil clears the follow-up.
func coerceTime(v any) (*time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return nil, true
	case time.Time:
		return &t, true
	case string:
		if t == "" {
			return nil, true
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return &parsed, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// coerceAgentID converts an assignment value to *int. nil, empty string
// and 0 all mean detach.
func coerceAgentID(v any) *int {
	switch id := v.(type) {
	case nil:
		return nil
	case float64:
		if id == 0 {
			return nil
		}
		n := int(id)
		return &n
	case int:
		if id == 0 {
			return nil
		}
		return &id
	case string:
		if id == "" {
			return nil
		}
		n, err := strconv.Atoi(id)
		if err != nil || n == 0 {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return ""
	}
}
