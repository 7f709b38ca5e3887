package knowledge

import "github.com/example/carecompanion/internal/models"

var GeneralResources = []models.SupportResource{
	{
		Name:        "Medicare.gov",
		Description: "Official Medicare website with information about coverage and benefits",
		URL:         "https://www.medicare.gov",
		Phone:       "1-800-MEDICARE",
		Type:        "government",
	},
	{
		Name:        "Healthcare.gov",
		Description: "Health insurance marketplace and coverage information",
		URL:         "https://www.healthcare.gov",
		Phone:       "1-800-318-2596",
		Type:        "government",
	},
	{
		Name:        "Patient Advocate Foundation",
		Description: "Free case management and financial assistance for patients",
		URL:         "https://www.patientadvocate.org",
		Phone:       "1-800-532-5274",
		Type:        "nonprofit",
	},
}

var DiabetesResources = []models.SupportResource{
	{
		Name:        "American Diabetes Association",
		Description: "Resources, education, and support for diabetes management",
		URL:         "https://www.diabetes.org",
		Phone:       "1-800-DIABETES",
		Type:        "nonprofit",
	},
	{
		Name:        "Diabetes Self-Management Education",
		Description: "Classes and resources for diabetes self-care",
		URL:         "https://www.diabeteseducator.org",
		Phone:       "1-800-338-3633",
		Type:        "education",
	},
}

var HypertensionResources = []models.SupportResource{
	{
		Name:        "American Heart Association",
		Description: "Resources for heart health and blood pressure management",
		URL:         "https://www.heart.org",
		Phone:       "1-800-AHA-USA1",
		Type:        "nonprofit",
	},
	{
		Name:        "Blood Pressure Monitoring",
		Description: "Free blood pressure monitoring at many pharmacies",
		URL:         "https://www.heart.org/en/health-topics/high-blood-pressure",
		Phone:       "1-800-AHA-USA1",
		Type:        "service",
	},
}

// Tokens that pull in the condition-specific resource lists.
var (
	DiabetesTokens     = []string{"metformin", "glucose", "diabetes"}
	HypertensionTokens = []string{"lisinopril", "atorvastatin", "hypertension"}
)

// FinancialAssistance returns the fixed assistance block.
func FinancialAssistance() models.FinancialAssistance {
	return models.FinancialAssistance{
		MedicarePartD: models.AssistanceProgram{
			Description: "Prescription drug coverage for Medicare beneficiaries",
			Website:     "https://www.medicare.gov/drug-coverage-part-d",
			Phone:       "1-800-MEDICARE",
			Eligibility: "Medicare beneficiaries",
		},
		Medicaid: models.AssistanceProgram{
			Description: "Health coverage for low-income individuals and families",
			Website:     "https://www.medicaid.gov",
			Phone:       "1-800-318-2596",
			Eligibility: "Low-income individuals and families",
		},
		PatientAssistancePrograms: models.AssistanceProgram{
			Description: "Drug company programs that provide free or low-cost medications",
			Website:     "https://www.needymeds.org",
			Phone:       "1-800-503-6897",
			Eligibility: "Varies by program and income",
		},
		PharmacyDiscountPrograms: models.AssistanceProgram{
			Description: "Programs that offer discounted prescription medications",
			Examples:    []string{"GoodRx", "SingleCare", "RxSaver", "Blink Health"},
			Eligibility: "Available to everyone",
		},
	}
}
