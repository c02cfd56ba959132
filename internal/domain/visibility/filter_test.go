package visibility

import (
	"testing"

	"campus-portal-go/internal/domain/audience"
	"campus-portal-go/internal/domain/principal"
)

type item struct {
	id       string
	audience audience.Directive
	owner    string
}

func audienceOf(i item) audience.Directive { return i.audience }
func ownerOf(i item) string                { return i.owner }

func fixtures() []item {
	return []item{
		{id: "a", audience: audience.All, owner: "stu-1"},
		{id: "s", audience: audience.Students, owner: "stu-2"},
		{id: "f", audience: audience.Faculty, owner: "fac-1"},
	}
}

func ids(items []item) string {
	result := ""
	for _, i := range items {
		result += i.id
	}
	return result
}

func TestBroadcastablesByRole(t *testing.T) {
	cases := []struct {
		role     principal.Role
		expected string
	}{
		{principal.RoleStudent, "as"},
		{principal.RoleFaculty, "af"},
		{principal.RoleAdmin, "asf"},
		{principal.Role("guest"), ""},
	}

	for _, tc := range cases {
		got := ids(Broadcastables(principal.Principal{ID: "x", Role: tc.role}, fixtures(), audienceOf))
		if got != tc.expected {
			t.Fatalf("role %s: expected %q, got %q", tc.role, tc.expected, got)
		}
	}
}

func TestOwnNotifications(t *testing.T) {
	student := principal.Principal{ID: "stu-2", Role: principal.RoleStudent}
	if got := ids(OwnNotifications(student, fixtures(), ownerOf)); got != "s" {
		t.Fatalf("expected only own notification, got %q", got)
	}

	admin := principal.Principal{ID: "adm-1", Role: principal.RoleAdmin}
	if got := ids(OwnNotifications(admin, fixtures(), ownerOf)); got != "" {
		t.Fatalf("expected admin to see no foreign notifications, got %q", got)
	}
}
