package dto

import (
	"github.com/google/uuid"
)

// Exactamente uno de los dos montos debe venir:
//   - contract_monthly_amount: monto fijo por mes
//   - contract_per_course_amount: variante por grupo, el monto mensual es
//     cantidad de matrículas × monto por curso
type CreateContractRequest struct {
	ContractGuardianID      uuid.UUID   `json:"contract_guardian_id" validate:"required"`
	CourseRegistrationIDs   []uuid.UUID `json:"course_registration_ids" validate:"required,min=1,dive,required"`
	ContractMonthlyAmount   *float64    `json:"contract_monthly_amount"`
	ContractPerCourseAmount *float64    `json:"contract_per_course_amount"`
}
