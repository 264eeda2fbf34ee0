package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type Role string

const (
	RoleManager  Role = "Manager"
	RoleTeamLead Role = "Team Lead"
	RoleEmployee Role = "Employee"
)

var roles = []Role{RoleManager, RoleTeamLead, RoleEmployee}

// Employee is a person that can be allocated to budget periods.
type Employee struct {
	DefaultModel
	Name  string
	Email string `gorm:"uniqueIndex"`
	Role  Role   `gorm:"default:Employee"`
}

func (e *Employee) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)

	if e.Name == "" {
		return ErrEmployeeNameEmpty
	}

	if e.Email == "" {
		return ErrEmployeeEmailEmpty
	}

	if e.Role == "" {
		e.Role = RoleEmployee
	}

	if !slices.Contains(roles, e.Role) {
		return ErrEmployeeRoleInvalid
	}

	return nil
}

// DeleteEmployee deletes an employee and all of their allocations.
func DeleteEmployee(db *gorm.DB, id uuid.UUID) error {
	var e Employee
	err := db.First(&e, id).Error
	if err != nil {
		return err
	}

	return db.Delete(&e).Error
}
