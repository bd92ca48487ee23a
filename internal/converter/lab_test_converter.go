package converter

import (
	"time"

	"community-health-api/internal/delivery/dto"
	"community-health-api/internal/domain/entity"
	"community-health-api/pkg/vitals"
)

func LabTestToDetailResponse(test *entity.LabTest) *dto.LabTestDetailResponse {
	if test == nil {
		return nil
	}

	resp := &dto.LabTestDetailResponse{
		TestID:        test.TestID,
		PersonID:      test.PersonID,
		IDNumber:      test.IDNumber,
		Name:          test.Person.Name,
		Phone:         test.Person.Phone,
		Email:         test.Person.Email,
		Gender:        test.Person.Gender,
		BirthDate:     test.BirthDate.Format(dateLayout),
		Age:           vitals.Age(test.Person.BirthDate, time.Now()),
		CardDate:      test.CardDate,
		MedicalSerial: test.MedicalSerial,
		DoctorID:      test.DoctorID,
		CreatedAt:     test.CreatedAt,
		SingleItems:   make([]dto.LabTestSingleItemResponse, len(test.SingleItems)),
	}

	if test.Doctor != nil {
		resp.DoctorName = &test.Doctor.Name
		resp.DoctorSpecialty = test.Doctor.Specialty
	}

	for i, item := range test.SingleItems {
		resp.SingleItems[i] = dto.LabTestSingleItemResponse{
			ItemID:     item.ItemID,
			TestCode:   item.TestCode,
			TestName:   item.TestName,
			TestResult: item.TestResult,
		}
	}

	if test.UrineTest != nil {
		resp.UrineTest = &dto.LabTestUrineResponse{
			Appearance:      test.UrineTest.Appearance,
			Color:           test.UrineTest.Color,
			ReactionPH:      test.UrineTest.ReactionPH,
			Glucose:         test.UrineTest.Glucose,
			OccultBlood:     test.UrineTest.OccultBlood,
			Protein:         test.UrineTest.Protein,
			Urobilinogen:    test.UrineTest.Urobilinogen,
			Nitrite:         test.UrineTest.Nitrite,
			Leukocyte:       test.UrineTest.Leukocyte,
			Bilirubin:       test.UrineTest.Bilirubin,
			KetoneBody:      test.UrineTest.KetoneBody,
			SpecificGravity: test.UrineTest.SpecificGravity,
			RBC:             test.UrineTest.RBC,
			WBC:             test.UrineTest.WBC,
			Clarity:         test.UrineTest.Clarity,
		}
	}

	if test.BloodTest != nil {
		resp.BloodTest = &dto.LabTestBloodResponse{
			WBC:  test.BloodTest.WBC,
			RBC:  test.BloodTest.RBC,
			Hb:   test.BloodTest.Hb,
			Hct:  test.BloodTest.Hct,
			MCH:  test.BloodTest.MCH,
			MCV:  test.BloodTest.MCV,
			MCHC: test.BloodTest.MCHC,
		}
	}

	return resp
}

func LabTestsToDetailResponses(tests []entity.LabTest) []dto.LabTestDetailResponse {
	responses := make([]dto.LabTestDetailResponse, len(tests))
	for i := range tests {
		responses[i] = *LabTestToDetailResponse(&tests[i])
	}
	return responses
}

func LabTestSummariesToItems(rows []entity.LabTestSummary) []dto.LabTestSummaryItem {
	now := time.Now()
	items := make([]dto.LabTestSummaryItem, len(rows))
	for i, row := range rows {
		items[i] = dto.LabTestSummaryItem{
			TestID:        row.TestID,
			IDNumber:      row.IDNumber,
			Name:          row.Name,
			Gender:        row.Gender,
			BirthDate:     row.BirthDate.Format(dateLayout),
			Age:           vitals.Age(row.BirthDate, now),
			CardDate:      row.CardDate,
			MedicalSerial: row.MedicalSerial,
			DoctorName:    row.DoctorName,
			ItemCount:     row.ItemCount,
			CreatedAt:     row.CreatedAt,
		}
	}
	return items
}
