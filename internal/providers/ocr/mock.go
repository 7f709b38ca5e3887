package ocr

import (
	"context"
	"strings"
	"time"

	"github.com/example/carecompanion/internal/latency"
)

const (
	mockDelay      = time.Second
	mockConfidence = 0.95
	MethodMock     = "mock_ocr"
)

// MockEngine returns one of three canned documents chosen by filename.
type MockEngine struct {
	lat latency.Simulator
}

func NewMockEngine(lat latency.Simulator) *MockEngine {
	return &MockEngine{lat: lat}
}

func (e *MockEngine) Name() string { return "mock" }

func (e *MockEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if err := e.lat.Wait(ctx, mockDelay); err != nil {
		return Result{}, err
	}
	return Result{Text: TemplateFor(in.Filename), Confidence: mockConfidence, Method: MethodMock}, nil
}

// TemplateFor picks the canned document for a filename; prescription is the
// default.
func TemplateFor(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "prescription"):
		return prescriptionTemplate
	case strings.Contains(name, "discharge"):
		return dischargeTemplate
	case strings.Contains(name, "lab"):
		return labTemplate
	}
	return prescriptionTemplate
}

const prescriptionTemplate = `YOUR PHARMACY
123 Healthy Street
City, State 12345
Phone: (555) 123-4567

Rx# 1234567-90
Date: 09/27/2024

Patient: JOHN DOE
DOB: 01/15/1950
Address: 456 Main St, City, State 12345

PRESCRIPTION

LISINOPRIL 10 MG TABLET
TAKE 1 TABLET BY MOUTH EVERY DAY
QTY: 30 TABLETS
REFILLS: 12

Dr. Bob Smith, MD
License: MD123456
DEA: BS1234567

Pharmacy Notes:
- Take with food if stomach upset occurs
- Monitor blood pressure regularly
- Contact doctor if side effects persist
`

const dischargeTemplate = `DISCHARGE SUMMARY

Patient: JOHN DOE
DOB: 01/15/1950
Admission Date: 09/25/2024
Discharge Date: 09/27/2024
Attending Physician: Dr. Bob Smith, MD

DIAGNOSIS:
- Hypertension (I10)
- Type 2 Diabetes (E11.9)

DISCHARGE MEDICATIONS:
1. Lisinopril 10mg daily
2. Metformin 500mg twice daily
3. Atorvastatin 20mg daily

FOLLOW-UP INSTRUCTIONS:
- Follow up with Dr. Smith in 2 weeks
- Monitor blood pressure daily
- Check blood sugar levels
- Continue low-sodium diet
- Exercise 30 minutes daily

EMERGENCY CONTACTS:
- Dr. Smith: (555) 123-4567
- Emergency: 911
`

const labTemplate = `LABORATORY RESULTS

Patient: JOHN DOE
DOB: 01/15/1950
Collection Date: 09/26/2024
Report Date: 09/27/2024

COMPREHENSIVE METABOLIC PANEL:
Glucose: 145 mg/dL (High)
Creatinine: 1.2 mg/dL (Normal)
BUN: 18 mg/dL (Normal)
Sodium: 140 mEq/L (Normal)
Potassium: 4.2 mEq/L (Normal)

LIPID PANEL:
Total Cholesterol: 220 mg/dL (High)
HDL: 45 mg/dL (Normal)
LDL: 150 mg/dL (High)
Triglycerides: 180 mg/dL (High)

HEMOGLOBIN A1C: 7.8% (High)

REFERENCE RANGES:
Glucose: 70-100 mg/dL
Cholesterol: <200 mg/dL
LDL: <100 mg/dL
A1C: <7.0%
`
