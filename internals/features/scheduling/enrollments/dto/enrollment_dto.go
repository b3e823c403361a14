package dto

import (
	"github.com/google/uuid"

	"armonia_backend/internals/features/scheduling/enrollments/service"
)

/* ===================== REQUESTS ===================== */

type EnrollRequest struct {
	EnrollmentStudentID  uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentScheduleID uuid.UUID `json:"enrollment_schedule_id" validate:"required"`
}

type BulkEnrollRequest struct {
	EnrollmentScheduleID uuid.UUID   `json:"enrollment_schedule_id" validate:"required"`
	StudentIDs           []uuid.UUID `json:"student_ids" validate:"required,min=1,max=100,dive,required"`
}

/* ===================== RESPONSES ===================== */

type EnrolledItem struct {
	StudentID    uuid.UUID `json:"student_id"`
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	Reactivated  bool      `json:"reactivated,omitempty"`
}

type DuplicateItem struct {
	StudentID    uuid.UUID `json:"student_id"`
	EnrollmentID uuid.UUID `json:"enrollment_id"`
}

type ConflictItem struct {
	StudentID uuid.UUID          `json:"student_id"`
	Conflicts []service.Conflict `json:"conflicts"`
}

type FailedItem struct {
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason"`
}

// BulkEnrollResult es el cuerpo del 207: cada alumno cae exactamente en
// una de las cuatro listas.
type BulkEnrollResult struct {
	Enrolled   []EnrolledItem  `json:"enrolled"`
	Duplicates []DuplicateItem `json:"duplicates"`
	Conflicts  []ConflictItem  `json:"conflicts"`
	Failed     []FailedItem    `json:"failed"`
}
