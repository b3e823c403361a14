package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "armonia_backend/internals/features/people/profiles/model"
)

func TestProfileControllerLabels(t *testing.T) {
	tests := []struct {
		ctrl  *ProfileController
		role  model.ProfileRoleEnum
		label string
		title string
	}{
		{NewStudentController(nil), model.ProfileRoleStudent, "alumno", "Alumno"},
		{NewProfessorController(nil), model.ProfileRoleProfessor, "profesor", "Profesor"},
		{NewGuardianController(nil), model.ProfileRoleGuardian, "acudiente", "Acudiente"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.role, tt.ctrl.Role)
		assert.Equal(t, tt.label, tt.ctrl.Label)
		assert.Equal(t, tt.title, tt.ctrl.Title)
	}
}
