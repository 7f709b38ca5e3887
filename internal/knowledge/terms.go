// Package knowledge holds the read-only lookup tables shared by the pipeline
// stages. Nothing in here is mutated after init, so the tables are safe for
// concurrent requests.
package knowledge

import (
	"strings"

	"github.com/example/carecompanion/internal/models"
)

type TermInfo struct {
	Key         string
	Explanation string
	Importance  string
	Category    models.Category
}

// Terms is ordered; candidate extraction walks it front to back.
var Terms = []TermInfo{
	{
		Key:         "lisinopril",
		Explanation: "A common and safe medication used to treat high blood pressure (hypertension). It works by relaxing your blood vessels, making it easier for your heart to pump blood around your body.",
		Importance:  "Essential for controlling blood pressure and preventing heart problems like heart attacks and strokes.",
		Category:    models.CategoryMedication,
	},
	{
		Key:         "hypertension",
		Explanation: "High blood pressure - a condition where the force of blood against your artery walls is consistently too high.",
		Importance:  "Can lead to serious health problems if not controlled, including heart disease, stroke, and kidney problems.",
		Category:    models.CategoryCondition,
	},
	{
		Key:         "diabetes",
		Explanation: "A condition where your body has trouble controlling blood sugar levels. There are two main types: Type 1 and Type 2.",
		Importance:  "Requires careful management to prevent complications like heart disease, kidney problems, and nerve damage.",
		Category:    models.CategoryCondition,
	},
	{
		Key:         "metformin",
		Explanation: "A medication commonly used to treat Type 2 diabetes. It helps your body use insulin more effectively and reduces sugar production in the liver.",
		Importance:  "Helps control blood sugar levels and can reduce the risk of diabetes complications.",
		Category:    models.CategoryMedication,
	},
	{
		Key:         "atorvastatin",
		Explanation: "A medication that helps lower cholesterol levels in your blood. It belongs to a group of drugs called statins.",
		Importance:  "Reduces the risk of heart disease and stroke by lowering \"bad\" cholesterol and increasing \"good\" cholesterol.",
		Category:    models.CategoryMedication,
	},
	{
		Key:         "glucose",
		Explanation: "A type of sugar that your body uses for energy. It comes from the food you eat and is carried through your bloodstream.",
		Importance:  "Your body needs glucose for energy, but too much can cause health problems, especially for people with diabetes.",
		Category:    models.CategoryLabValue,
	},
	{
		Key:         "cholesterol",
		Explanation: "A waxy substance found in your blood. Your body needs some cholesterol, but too much can clog your arteries.",
		Importance:  "High cholesterol can lead to heart disease and stroke, so it's important to keep it at healthy levels.",
		Category:    models.CategoryLabValue,
	},
	{
		Key:         "hdl",
		Explanation: "High-Density Lipoprotein - often called \"good\" cholesterol. It helps remove other forms of cholesterol from your bloodstream.",
		Importance:  "Higher HDL levels are better and can help protect against heart disease.",
		Category:    models.CategoryLabValue,
	},
	{
		Key:         "ldl",
		Explanation: "Low-Density Lipoprotein - often called \"bad\" cholesterol. It can build up in your arteries and cause blockages.",
		Importance:  "Lower LDL levels are better. High LDL increases your risk of heart disease and stroke.",
		Category:    models.CategoryLabValue,
	},
	{
		Key:         "hemoglobin a1c",
		Explanation: "A blood test that shows your average blood sugar level over the past 2-3 months. It's also called HbA1c or A1C.",
		Importance:  "This test helps doctors see how well your diabetes is being controlled over time.",
		Category:    models.CategoryLabValue,
	},
}

var termIndex = func() map[string]TermInfo {
	m := make(map[string]TermInfo, len(Terms))
	for _, t := range Terms {
		m[t.Key] = t
	}
	return m
}()

// LookupTerm finds a table entry by its lower-case key.
func LookupTerm(term string) (TermInfo, bool) {
	t, ok := termIndex[strings.ToLower(term)]
	return t, ok
}

var summaries = map[models.DocumentType]string{
	models.DocPrescription:     "This is a prescription for medication. It contains important information about what medication to take, how much, and when. Make sure to follow the instructions carefully and contact your pharmacy or doctor if you have questions.",
	models.DocDischargeSummary: "This is a discharge summary from your hospital stay. It contains information about your diagnosis, treatments received, and instructions for continuing your care at home. Follow the follow-up instructions carefully.",
	models.DocLabResults:       "These are your laboratory test results. They show various measurements of your health, like blood sugar, cholesterol, and other important values. Your doctor will explain what these results mean for your health.",
	models.DocUnknown:          "This is a medical document containing important health information. Review it carefully and discuss any questions with your healthcare provider.",
}

// Summary returns the plain-language summary for a document type.
func Summary(dt models.DocumentType) string {
	if s, ok := summaries[dt]; ok {
		return s
	}
	return summaries[models.DocUnknown]
}
