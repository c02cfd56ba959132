package audience

import (
	"strings"

	"campus-portal-go/internal/domain/principal"
)

// Directive selects the recipients of a broadcast and the readers of a
// broadcastable resource.
type Directive string

const (
	All      Directive = "all"
	Students Directive = "students"
	Faculty  Directive = "faculty"
)

// Directives lists every valid directive.
var Directives = []Directive{All, Students, Faculty}

func Parse(value string) (Directive, error) {
	d := Directive(strings.ToLower(strings.TrimSpace(value)))
	if _, err := d.Roles(); err != nil {
		return "", err
	}
	return d, nil
}

// Roles maps the directive to the roles it addresses. Admins are never part
// of an audience.
func (d Directive) Roles() ([]principal.Role, error) {
	switch d {
	case All:
		return []principal.Role{principal.RoleStudent, principal.RoleFaculty}, nil
	case Students:
		return []principal.Role{principal.RoleStudent}, nil
	case Faculty:
		return []principal.Role{principal.RoleFaculty}, nil
	default:
		return nil, ErrInvalidAudience
	}
}

// Label is the human readable scope appended to generated messages. It is
// empty for All.
func (d Directive) Label() string {
	switch d {
	case Students:
		return "Students only"
	case Faculty:
		return "Faculty only"
	default:
		return ""
	}
}

func (d Directive) Valid() bool {
	_, err := d.Roles()
	return err == nil
}
