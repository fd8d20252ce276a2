// Package student contains the Student entity and its Role enumeration.
// Students are read collaborators of the order lifecycle: the core resolves
// their email for notifications and their role for shop queue ordering, but
// account management itself lives outside this service.
package student

import (
	"fmt"
	"strings"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/errs"
)

// Role classifies an account for shop queue ordering.
// Teacher accounts are privileged: their orders sort ahead of everyone
// else's in a shop's fulfillment queue.
type Role int

const (
	RoleUnknown Role = iota
	RoleStudent
	RoleTeacher
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleStudent: "student",
		RoleTeacher: "teacher",
	}
}

// RoleFromString parses a role, accepting any letter case.
// Unrecognized values map to RoleStudent: privilege is opt-in and an
// unknown role must never grant it.
func RoleFromString(s string) Role {
	for role, str := range getRoleStrings() {
		if strings.EqualFold(str, s) {
			return role
		}
	}
	return RoleStudent
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role name, or "student" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "student"
}

// IsPrivileged reports whether orders from this role jump the shop queue.
func (r Role) IsPrivileged() bool {
	return r == RoleTeacher
}

// Student is the account placing orders. The core never writes students;
// it resolves them at read time, so referential validity is checked on
// lookup rather than enforced as a foreign key.
type Student struct {
	username kernel.Username
	email    string
	phone    string
	role     Role
}

// NewStudent creates a student with a validated username and role.
// Email may be empty: accounts created before email became mandatory exist,
// which is exactly why notification sending tolerates unresolvable addresses.
func NewStudent(username kernel.Username, email, phone string, role Role) (*Student, error) {
	if err := username.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Student{
		username: username,
		email:    email,
		phone:    phone,
		role:     role,
	}, nil
}

// Username returns the student's identifier.
func (s *Student) Username() kernel.Username {
	return s.username
}

// Email returns the student's email, possibly empty.
func (s *Student) Email() string {
	return s.email
}

// Phone returns the student's phone, possibly empty.
func (s *Student) Phone() string {
	return s.phone
}

// Role returns the account's queue-ordering role.
func (s *Student) Role() Role {
	return s.role
}
