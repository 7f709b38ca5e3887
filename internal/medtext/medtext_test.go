package medtext

import (
	"testing"

	"github.com/example/carecompanion/internal/models"
	"github.com/stretchr/testify/assert"
)

const prescription = `YOUR PHARMACY
Phone: (555) 123-4567
Rx# 1234567-90
PRESCRIPTION
LISINOPRIL 10 MG TABLET
TAKE 1 TABLET BY MOUTH EVERY DAY
QTY: 30 TABLETS
REFILLS: 12
Dr. Bob Smith, MD
License: MD123456
Pharmacy Notes:
- Take with food if stomach upset occurs`

const discharge = `DISCHARGE SUMMARY
Attending Physician: Dr. Bob Smith, MD
DISCHARGE MEDICATIONS:
1. Lisinopril 10mg daily
2. Metformin 500mg twice daily
3. Atorvastatin 20mg daily
FOLLOW-UP INSTRUCTIONS:
- Follow up with Dr. Smith in 2 weeks
EMERGENCY CONTACTS:
- Dr. Smith: (555) 123-4567`

func TestNormalize(t *testing.T) {
	in := "  YOUR\tPHARMACY  \r\n\n   123   Healthy Street \n\t\n"
	assert.Equal(t, "YOUR PHARMACY\n123 Healthy Street", Normalize(in))
	assert.Equal(t, "", Normalize(" \n\t "))
	assert.Nil(t, Lines(""))
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"hemoglobin a1c":   "Hemoglobin A1C",
		"lisinopril 10 mg": "Lisinopril 10 Mg",
		"HDL":              "Hdl",
		"follow-up":        "Follow-Up",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleCase(in), in)
	}
}

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Dedupe([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Dedupe([]string(nil)))
}

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		text string
		want models.DocumentType
	}{
		{prescription, models.DocPrescription},
		{discharge, models.DocDischargeSummary},
		{"LABORATORY RESULTS\nGlucose: 145 mg/dL", models.DocLabResults},
		{"Pharmacy receipt\nDischarge pending", models.DocPrescription},
		{"Meeting notes", models.DocUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyDocument(tt.text))
	}
}

func TestMedicationTokens(t *testing.T) {
	assert.Equal(t, []string{"lisinopril 10 mg"}, MedicationTokens(prescription))
	assert.Empty(t, MedicationTokens(discharge))
	assert.Equal(t, []string{"metformin 500 m"}, MedicationTokens("METFORMIN 500 M"))
}

func TestLabKeywords(t *testing.T) {
	text := "Glucose: 145\nBUN: 18\nTotal Cholesterol: 220\nGlucose: 70-100\nbunny"
	assert.Equal(t, []string{"glucose", "bun", "cholesterol", "glucose"}, LabKeywords(text))
}

func TestMedicationDetails_Prescription(t *testing.T) {
	d := MedicationDetails(prescription, "Lisinopril")
	assert.Equal(t, "10 MG", d.Dosage)
	assert.Equal(t, "Once daily", d.Frequency)
	assert.Equal(t, "Take by mouth", d.Instructions)
	assert.Equal(t, 30, d.Quantity)
	assert.Equal(t, 12, d.Refills)

	// the token form of the name resolves to the same block
	assert.Equal(t, d, MedicationDetails(prescription, "Lisinopril 10 Mg"))
}

func TestMedicationDetails_Discharge(t *testing.T) {
	lis := MedicationDetails(discharge, "lisinopril")
	assert.Equal(t, "10MG", lis.Dosage)
	assert.Equal(t, "Once daily", lis.Frequency)
	assert.Equal(t, DefaultInstructions, lis.Instructions)
	assert.Equal(t, DefaultQuantity, lis.Quantity)
	assert.Equal(t, DefaultRefills, lis.Refills)

	met := MedicationDetails(discharge, "Metformin")
	assert.Equal(t, "500MG", met.Dosage)
	assert.Equal(t, "Twice daily", met.Frequency)
}

func TestMedicationDetails_Defaults(t *testing.T) {
	d := MedicationDetails(prescription, "Aspirin")
	assert.Equal(t, Details{
		Dosage:       DefaultDosage,
		Frequency:    DefaultFrequency,
		Instructions: DefaultInstructions,
		Quantity:     DefaultQuantity,
		Refills:      DefaultRefills,
	}, d)
	assert.Equal(t, d, MedicationDetails(prescription, "  "))
}

func TestFrequencyAndInstructions(t *testing.T) {
	assert.Equal(t, "Three times daily", Frequency("take 3 times a day"))
	assert.Equal(t, "Twice daily", Frequency("2 times daily"))
	assert.Equal(t, "Once daily", Frequency("every day"))
	assert.Equal(t, "", Frequency("as needed"))

	assert.Equal(t, "Take by mouth with food with water", Instructions("by mouth with food and water"))
	assert.Equal(t, DefaultInstructions+" with food", Instructions("with food"))
	assert.Equal(t, "", Instructions("at bedtime"))
}

func TestContacts(t *testing.T) {
	assert.Equal(t, []string{"(555) 123-4567"}, PhoneNumbers(prescription))
	assert.Equal(t, []string{"555.123.4567", "5551234567"}, PhoneNumbers("call 555.123.4567\nor 5551234567"))
	assert.Equal(t, []string{"Dr. Bob Smith"}, DoctorNames(discharge))
}
