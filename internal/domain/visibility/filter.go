// Package visibility restricts which broadcastables and notifications a
// principal may read.
package visibility

import (
	"campus-portal-go/internal/domain/audience"
	"campus-portal-go/internal/domain/principal"
)

// Audiences lists the directives whose items role may read. Admins read
// everything; an unknown role reads nothing.
func Audiences(role principal.Role) []audience.Directive {
	switch role {
	case principal.RoleAdmin:
		return []audience.Directive{audience.All, audience.Students, audience.Faculty}
	case principal.RoleStudent:
		return []audience.Directive{audience.All, audience.Students}
	case principal.RoleFaculty:
		return []audience.Directive{audience.All, audience.Faculty}
	default:
		return nil
	}
}

func CanSee(p principal.Principal, directive audience.Directive) bool {
	for _, allowed := range Audiences(p.Role) {
		if allowed == directive {
			return true
		}
	}
	return false
}

// Broadcastables keeps the items p may read, preserving order.
func Broadcastables[T any](p principal.Principal, items []T, audienceOf func(T) audience.Directive) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if CanSee(p, audienceOf(item)) {
			result = append(result, item)
		}
	}
	return result
}

// OwnNotifications keeps notifications addressed to p. Admins get no
// exemption: a notification belongs to its recipient.
func OwnNotifications[T any](p principal.Principal, items []T, recipientOf func(T) string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if p.ID != "" && recipientOf(item) == p.ID {
			result = append(result, item)
		}
	}
	return result
}
