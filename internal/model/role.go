package model

import "fmt"

// Role — закрытый набор ролей участников. Строки извне проходят через
// ParseRole; неизвестная роль отклоняется сразу, а не падает кастом глубже.
type Role string

const (
	RoleCitizen     Role = "CITIZEN"
	RoleDeptOfficer Role = "DEPT_OFFICER"
	RoleSupervisor  Role = "SUPERVISOR"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCitizen, RoleDeptOfficer, RoleSupervisor:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
