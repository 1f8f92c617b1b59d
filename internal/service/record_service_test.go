package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"agrishield-service/internal/model"
)

// Validation runs before any store access, so a service without stores is
// enough to exercise the rejection paths.

func testActor() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: "officer"}
}

func TestCreateInspectionValidation(t *testing.T) {
	svc := NewRecordService(nil, nil)

	testCases := []struct {
		name  string
		input CreateInspectionInput
	}{
		{name: "all missing", input: CreateInspectionInput{}},
		{name: "missing officer", input: CreateInspectionInput{Date: "2026-03-01", Location: "Pune", TargetType: "retailer"}},
		{name: "missing date", input: CreateInspectionInput{Officer: "A Kumar", Location: "Pune", TargetType: "retailer"}},
		{name: "missing location", input: CreateInspectionInput{Officer: "A Kumar", Date: "2026-03-01", TargetType: "retailer"}},
		{name: "missing targetType", input: CreateInspectionInput{Officer: "A Kumar", Date: "2026-03-01", Location: "Pune"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateInspection(context.Background(), testActor(), tc.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateSeizureValidation(t *testing.T) {
	svc := NewRecordService(nil, nil)

	_, err := svc.CreateSeizure(context.Background(), testActor(), CreateSeizureInput{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	_, err = svc.CreateSeizure(context.Background(), testActor(), CreateSeizureInput{
		Quantity:       "200 kg",
		EstimatedValue: "50000",
		WitnessName:    "R Sharma",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing scanResult, got %v", err)
	}
}

func TestCreateLabSampleValidation(t *testing.T) {
	svc := NewRecordService(nil, nil)

	_, err := svc.CreateLabSample(context.Background(), testActor(), CreateLabSampleInput{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	_, err = svc.CreateLabSample(context.Background(), testActor(), CreateLabSampleInput{
		SampleType:     "pesticide",
		LabDestination: "State Lab Pune",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing seizureId, got %v", err)
	}
}

func TestCreateFIRCaseValidation(t *testing.T) {
	svc := NewRecordService(nil, nil)

	_, err := svc.CreateFIRCase(context.Background(), testActor(), CreateFIRCaseInput{
		ViolationType: "counterfeit",
		Accused:       "Unknown trader",
		Location:      "Nashik",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing labReportId, got %v", err)
	}
}
