package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"armonia_backend/internals/features/scheduling/schedules/model"
)

// FindProfessorOverlap busca, dentro de la academia, otra franja del mismo
// profesor que se cruce con el candidato. excludeID permite excluir la propia
// fila al actualizar. Devuelve nil si no hay cruce.
func FindProfessorOverlap(db *gorm.DB, academyID, professorID uuid.UUID, candidate Slot, excludeID *uuid.UUID) (*model.ScheduleModel, error) {
	var existing []model.ScheduleModel
	q := db.Where("schedule_academy_id = ? AND schedule_professor_id = ? AND schedule_day_of_week = ?",
		academyID, professorID, candidate.DayOfWeek)
	if excludeID != nil {
		q = q.Where("schedule_id <> ?", *excludeID)
	}
	if err := q.Find(&existing).Error; err != nil {
		return nil, err
	}

	for i := range existing {
		slot, err := SlotFromSchedule(&existing[i])
		if err != nil {
			return nil, fmt.Errorf("horario %s corrupto: %w", existing[i].ScheduleID, err)
		}
		if Overlaps(candidate, slot) {
			return &existing[i], nil
		}
	}
	return nil, nil
}
