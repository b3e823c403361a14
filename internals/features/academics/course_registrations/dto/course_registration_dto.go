package dto

import (
	"github.com/google/uuid"

	"armonia_backend/internals/features/academics/course_registrations/model"
)

type CreateCourseRegistrationRequest struct {
	CourseRegistrationStudentID   uuid.UUID `json:"course_registration_student_id" validate:"required"`
	CourseRegistrationProfessorID uuid.UUID `json:"course_registration_professor_id" validate:"required"`
	CourseRegistrationSubjectID   uuid.UUID `json:"course_registration_subject_id" validate:"required"`
	CourseRegistrationPeriodID    uuid.UUID `json:"course_registration_period_id" validate:"required"`
}

func (r *CreateCourseRegistrationRequest) ToModel(academyID uuid.UUID) *model.CourseRegistrationModel {
	return &model.CourseRegistrationModel{
		CourseRegistrationAcademyID:   academyID,
		CourseRegistrationStudentID:   r.CourseRegistrationStudentID,
		CourseRegistrationProfessorID: r.CourseRegistrationProfessorID,
		CourseRegistrationSubjectID:   r.CourseRegistrationSubjectID,
		CourseRegistrationPeriodID:    r.CourseRegistrationPeriodID,
	}
}

type UpdateCourseRegistrationRequest struct {
	CourseRegistrationProfessorID *uuid.UUID `json:"course_registration_professor_id"`
	CourseRegistrationSubjectID   *uuid.UUID `json:"course_registration_subject_id"`
	CourseRegistrationPeriodID    *uuid.UUID `json:"course_registration_period_id"`
}

func (r *UpdateCourseRegistrationRequest) ApplyTo(m *model.CourseRegistrationModel) {
	if r.CourseRegistrationProfessorID != nil {
		m.CourseRegistrationProfessorID = *r.CourseRegistrationProfessorID
	}
	if r.CourseRegistrationSubjectID != nil {
		m.CourseRegistrationSubjectID = *r.CourseRegistrationSubjectID
	}
	if r.CourseRegistrationPeriodID != nil {
		m.CourseRegistrationPeriodID = *r.CourseRegistrationPeriodID
	}
}

// CourseRegistrationDetail agrega los nombres resueltos para listados.
type CourseRegistrationDetail struct {
	model.CourseRegistrationModel
	StudentName   string `gorm:"column:student_name" json:"student_name"`
	ProfessorName string `gorm:"column:professor_name" json:"professor_name"`
	SubjectName   string `gorm:"column:subject_name" json:"subject_name"`
	PeriodName    string `gorm:"column:period_name" json:"period_name"`
}
