package knowledge

import (
	"strings"

	"github.com/example/carecompanion/internal/models"
)

// Lifestyle tip lists keyed by condition.
const (
	TipsHypertension    = "hypertension"
	TipsDiabetes        = "diabetes"
	TipsHighCholesterol = "high_cholesterol"
	TipsGeneral         = "general"
)

var lifestyleTips = map[string][]string{
	TipsHypertension: {
		"Monitor your blood pressure at home once a week and keep a log",
		"Maintain a low-sodium diet (less than 2,300mg per day)",
		"Engage in regular physical activity (30 minutes most days)",
		"Limit alcohol consumption to moderate levels",
		"Manage stress through relaxation techniques like deep breathing",
		"Maintain a healthy weight",
		"Get 7-9 hours of quality sleep each night",
		"Limit caffeine intake if it affects your blood pressure",
	},
	TipsDiabetes: {
		"Check your blood sugar levels as recommended by your doctor",
		"Follow a consistent meal schedule with balanced portions",
		"Choose complex carbohydrates over simple sugars",
		"Stay physically active - even a 10-minute walk helps",
		"Keep your feet clean and dry, check for cuts or sores daily",
		"Stay hydrated by drinking plenty of water",
		"Plan ahead for meals and snacks",
		"Work with a diabetes educator or nutritionist",
	},
	TipsHighCholesterol: {
		"Choose lean proteins like fish, chicken, and beans",
		"Increase fiber intake with fruits, vegetables, and whole grains",
		"Limit saturated and trans fats",
		"Include heart-healthy fats like olive oil and nuts",
		"Exercise regularly to help raise HDL (good) cholesterol",
		"Maintain a healthy weight",
		"Limit processed foods and fast food",
		"Consider working with a nutritionist",
	},
	TipsGeneral: {
		"Take medications at the same time each day",
		"Keep a medication list with you at all times",
		"Use a pill organizer to stay organized",
		"Set reminders on your phone for medications",
		"Keep all medical appointments",
		"Ask questions if you don't understand something",
		"Keep emergency contact information handy",
		"Maintain a positive attitude about your health",
	},
}

// LifestyleTips returns the tip list for a condition key, or nil.
func LifestyleTips(key string) []string {
	return lifestyleTips[strings.ToLower(key)]
}

type drugClass struct {
	tips     string
	keywords []string
}

// Checked in order; the first class whose keyword appears in a medication
// name wins.
var drugClasses = []drugClass{
	{TipsHypertension, []string{"blood pressure", "lisinopril"}},
	{TipsDiabetes, []string{"diabetes", "metformin"}},
	{TipsHighCholesterol, []string{"cholesterol", "atorvastatin"}},
}

// DrugClass maps a medication name to its tip-list key, or "" if unknown.
func DrugClass(medication string) string {
	name := strings.ToLower(medication)
	for _, c := range drugClasses {
		for _, kw := range c.keywords {
			if strings.Contains(name, kw) {
				return c.tips
			}
		}
	}
	return ""
}

var followUps = map[models.DocumentType][]string{
	models.DocPrescription: {
		"Take your medication exactly as prescribed",
		"Contact your doctor if you experience any side effects",
		"Schedule a follow-up appointment in 4-6 weeks",
		"Keep track of how you feel while taking the medication",
	},
	models.DocDischargeSummary: {
		"Follow all discharge instructions carefully",
		"Take all prescribed medications as directed",
		"Attend all scheduled follow-up appointments",
		"Contact your doctor if you have any concerns or questions",
		"Keep a record of your symptoms and any changes",
	},
	models.DocLabResults: {
		"Discuss these results with your doctor",
		"Follow any recommendations for lifestyle changes",
		"Schedule follow-up tests as recommended",
		"Monitor your health and report any changes",
	},
	models.DocUnknown: {
		"Review this document with your healthcare provider",
		"Ask your doctor about any terms or instructions you don't understand",
		"Keep this document with your other medical records",
	},
}

// FollowUps returns the fixed follow-up list for a document type. Unrecognized
// types get the unknown list.
func FollowUps(dt models.DocumentType) []string {
	if f, ok := followUps[dt]; ok {
		return f
	}
	return followUps[models.DocUnknown]
}

// Follow-up additions keyed by drug class.
var classFollowUps = map[string]string{
	TipsHypertension: "Monitor your blood pressure regularly and keep a log",
	TipsDiabetes:     "Check your blood sugar levels as recommended by your doctor",
}

func ClassFollowUp(class string) (string, bool) {
	s, ok := classFollowUps[class]
	return s, ok
}

var (
	GeneralEmergencyContacts = []string{
		"Emergency Services: 911",
		"Poison Control: 1-800-222-1222",
		"National Suicide Prevention Lifeline: 988",
	}
	MedicalEmergencyContacts = []string{
		"Your Primary Care Doctor",
		"Your Pharmacy",
		"Local Emergency Room",
		"Urgent Care Center",
	}
)

var documentActions = map[models.DocumentType][]models.ActionItem{
	models.DocPrescription: {
		{Title: "Pick up prescription", Description: "Go to the pharmacy to pick up your prescription", Priority: models.PriorityHigh, Timeframe: "As soon as possible"},
		{Title: "Set up medication reminders", Description: "Set up phone reminders for your medication schedule", Priority: models.PriorityMedium, Timeframe: "Today"},
	},
	models.DocDischargeSummary: {
		{Title: "Schedule follow-up appointment", Description: "Call your doctor to schedule the recommended follow-up appointment", Priority: models.PriorityHigh, Timeframe: "Within 1 week"},
		{Title: "Review discharge instructions", Description: "Read through all discharge instructions carefully", Priority: models.PriorityHigh, Timeframe: "Today"},
	},
	models.DocLabResults: {
		{Title: "Discuss results with doctor", Description: "Schedule an appointment to discuss your lab results", Priority: models.PriorityHigh, Timeframe: "Within 2 weeks"},
		{Title: "Implement lifestyle changes", Description: "Start any recommended lifestyle changes based on your results", Priority: models.PriorityMedium, Timeframe: "This week"},
	},
}

var generalActions = []models.ActionItem{
	{Title: "Keep medical records organized", Description: "File this document with your other medical records", Priority: models.PriorityLow, Timeframe: "This week"},
	{Title: "Update emergency contacts", Description: "Make sure your emergency contacts have your current medical information", Priority: models.PriorityMedium, Timeframe: "This month"},
}

// DocumentActions returns copies of the fixed action items for a document type.
func DocumentActions(dt models.DocumentType) []models.ActionItem {
	return append([]models.ActionItem(nil), documentActions[dt]...)
}

func GeneralActions() []models.ActionItem {
	return append([]models.ActionItem(nil), generalActions...)
}
