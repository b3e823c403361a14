package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	crModel "armonia_backend/internals/features/academics/course_registrations/model"
	periodModel "armonia_backend/internals/features/academics/periods/model"
	contractModel "armonia_backend/internals/features/billing/contracts/model"
	invoiceModel "armonia_backend/internals/features/billing/invoices/model"
)

// CreateContractInput: todo ya validado por el controller (acudiente existe,
// matrículas pertenecen al acudiente y a la academia, monto positivo).
type CreateContractInput struct {
	AcademyID     uuid.UUID
	GuardianID    uuid.UUID
	Registrations []crModel.CourseRegistrationModel
	MonthlyAmount float64
}

// CreateContractResult agrupa lo persistido para la respuesta.
type CreateContractResult struct {
	Contract *contractModel.ContractModel        `json:"contract"`
	Courses  []contractModel.ContractCourseModel `json:"courses"`
	Invoices []invoiceModel.InvoiceModel         `json:"invoices"`
}

// ClassDatesForRegistrations junta las fechas tipo "clase" de los periodos de
// las matrículas del contrato.
func ClassDatesForRegistrations(db *gorm.DB, academyID uuid.UUID, regs []crModel.CourseRegistrationModel) ([]time.Time, error) {
	periodIDs := make([]uuid.UUID, 0, len(regs))
	seen := map[uuid.UUID]bool{}
	for _, r := range regs {
		if !seen[r.CourseRegistrationPeriodID] {
			seen[r.CourseRegistrationPeriodID] = true
			periodIDs = append(periodIDs, r.CourseRegistrationPeriodID)
		}
	}
	if len(periodIDs) == 0 {
		return nil, nil
	}

	var rows []periodModel.PeriodDateModel
	if err := db.
		Where("period_date_academy_id = ? AND period_date_period_id IN ? AND period_date_type = ?",
			academyID, periodIDs, periodModel.PeriodDateClase).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, time.Time(row.PeriodDateDate))
	}
	return dates, nil
}

// CreateContract ejecuta las tres etapas de escritura: contrato → filas de
// unión → facturas. Postgres sí soporta transacciones, pero aquí cada etapa
// se confirma por separado y un fallo posterior borra en orden inverso lo ya
// escrito. No es atómico ante un crash entre etapas; las filas huérfanas se
// limpian a mano.
func CreateContract(db *gorm.DB, in CreateContractInput) (*CreateContractResult, error) {
	dates, err := ClassDatesForRegistrations(db, in.AcademyID, in.Registrations)
	if err != nil {
		return nil, err
	}
	months, err := MonthlyPeriods(dates)
	if err != nil {
		return nil, err
	}

	minDate, maxDate := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	// etapa 1: contrato
	contract := contractModel.ContractModel{
		ContractAcademyID:     in.AcademyID,
		ContractGuardianID:    in.GuardianID,
		ContractMonthlyAmount: in.MonthlyAmount,
		ContractStartDate:     minDate,
		ContractEndDate:       maxDate,
	}
	if err := db.Create(&contract).Error; err != nil {
		return nil, fmt.Errorf("no se pudo crear el contrato: %w", err)
	}

	// etapa 2: filas de unión
	courses := make([]contractModel.ContractCourseModel, 0, len(in.Registrations))
	for _, r := range in.Registrations {
		courses = append(courses, contractModel.ContractCourseModel{
			ContractCourseContractID:     contract.ContractID,
			ContractCourseRegistrationID: r.CourseRegistrationID,
		})
	}
	if err := db.Create(&courses).Error; err != nil {
		rollbackContract(db, contract.ContractID, false)
		return nil, fmt.Errorf("no se pudieron vincular las matrículas: %w", err)
	}

	// etapa 3: facturas
	invoices := make([]invoiceModel.InvoiceModel, 0, len(months))
	for _, m := range months {
		invoices = append(invoices, invoiceModel.InvoiceModel{
			InvoiceAcademyID:  in.AcademyID,
			InvoiceContractID: contract.ContractID,
			InvoiceGuardianID: in.GuardianID,
			InvoiceMonth:      m,
			InvoiceAmount:     in.MonthlyAmount,
			InvoiceStatus:     invoiceModel.InvoiceStatusPendiente,
		})
	}
	if err := db.Create(&invoices).Error; err != nil {
		rollbackContract(db, contract.ContractID, true)
		return nil, fmt.Errorf("no se pudieron generar las facturas: %w", err)
	}

	return &CreateContractResult{
		Contract: &contract,
		Courses:  courses,
		Invoices: invoices,
	}, nil
}

// rollbackContract borra (hard delete) en orden inverso lo escrito por las
// etapas anteriores. Best effort: si el borrado también falla solo se loggea.
func rollbackContract(db *gorm.DB, contractID uuid.UUID, withCourses bool) {
	if withCourses {
		if err := db.Unscoped().
			Where("contract_course_contract_id = ?", contractID).
			Delete(&contractModel.ContractCourseModel{}).Error; err != nil {
			log.Printf("⚠️ rollback contract_courses %s: %v", contractID, err)
		}
	}
	if err := db.Unscoped().
		Where("contract_id = ?", contractID).
		Delete(&contractModel.ContractModel{}).Error; err != nil {
		log.Printf("⚠️ rollback contract %s: %v", contractID, err)
	}
}
