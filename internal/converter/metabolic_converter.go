package converter

import (
	"time"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/pkg/vitals"
)

func MetabolicToRecordResponse(screening *entity.MetabolicPrevention) *dto.MetabolicRecordResponse {
	if screening == nil {
		return nil
	}

	return &dto.MetabolicRecordResponse{
		MetabolicID:          screening.MetabolicID,
		PersonID:             screening.PersonID,
		IDNumber:             screening.IDNumber,
		Name:                 screening.Name,
		Gender:               screening.Gender,
		BirthDate:            screening.BirthDate.Format(dateLayout),
		Age:                  vitals.Age(screening.BirthDate, time.Now()),
		Phone:                screening.Person.Phone,
		Email:                screening.Person.Email,
		CollectionDate:       screening.CollectionDate,
		RiskSmoking:          screening.RiskSmoking,
		RiskBetelNut:         screening.RiskBetelNut,
		RiskExercise:         screening.RiskExercise,
		AccompanyingDiseases: screening.AccompanyingDiseases,
		DiseaseOther:         screening.DiseaseOther,
		ExaminationDate:      screening.ExaminationDate,
		Height:               screening.Height,
		Weight:               screening.Weight,
		Waist:                screening.Waist,
		SystolicBP:           screening.SystolicBP,
		DiastolicBP:          screening.DiastolicBP,
		BMI:                  vitals.BMI(screening.Weight, screening.Height),
		BPSource:             screening.BPSource,
		AntihypertensiveDrug: screening.AntihypertensiveDrug,
		HypoglycemicDrug:     screening.HypoglycemicDrug,
		LipidLoweringDrug:    screening.LipidLoweringDrug,
		FastingGlucose:       screening.FastingGlucose,
		Triglyceride:         screening.Triglyceride,
		HDLCholesterol:       screening.HDLCholesterol,
		LDLCholesterol:       screening.LDLCholesterol,
		HbA1c:                screening.HbA1c,
		TotalCholesterol:     screening.TotalCholesterol,
		CreatedAt:            screening.CreatedAt,
	}
}

func MetabolicsToRecordResponses(screenings []entity.MetabolicPrevention) []dto.MetabolicRecordResponse {
	responses := make([]dto.MetabolicRecordResponse, len(screenings))
	for i := range screenings {
		responses[i] = *MetabolicToRecordResponse(&screenings[i])
	}
	return responses
}

func MetabolicsToListItems(screenings []entity.MetabolicPrevention) []dto.MetabolicListItem {
	now := time.Now()
	items := make([]dto.MetabolicListItem, len(screenings))
	for i, screening := range screenings {
		items[i] = dto.MetabolicListItem{
			MetabolicID:     screening.MetabolicID,
			IDNumber:        screening.IDNumber,
			Name:            screening.Name,
			Gender:          screening.Gender,
			BirthDate:       screening.BirthDate.Format(dateLayout),
			Age:             vitals.Age(screening.BirthDate, now),
			CollectionDate:  screening.CollectionDate,
			ExaminationDate: screening.ExaminationDate,
			BMI:             vitals.BMI(screening.Weight, screening.Height),
			SystolicBP:      screening.SystolicBP,
			DiastolicBP:     screening.DiastolicBP,
			RiskSmoking:     screening.RiskSmoking,
			RiskBetelNut:    screening.RiskBetelNut,
			RiskExercise:    screening.RiskExercise,
			CreatedAt:       screening.CreatedAt,
		}
	}
	return items
}

func MetabolicsToRecentItems(screenings []entity.MetabolicPrevention) []dto.MetabolicRecentItem {
	now := time.Now()
	items := make([]dto.MetabolicRecentItem, len(screenings))
	for i, screening := range screenings {
		items[i] = dto.MetabolicRecentItem{
			MetabolicID:    screening.MetabolicID,
			IDNumber:       screening.IDNumber,
			Name:           screening.Name,
			Gender:         screening.Gender,
			Age:            vitals.Age(screening.BirthDate, now),
			CollectionDate: screening.CollectionDate,
			BMI:            vitals.BMI(screening.Weight, screening.Height),
			SystolicBP:     screening.SystolicBP,
			DiastolicBP:    screening.DiastolicBP,
			FastingGlucose: screening.FastingGlucose,
			CreatedAt:      screening.CreatedAt,
		}
	}
	return items
}
