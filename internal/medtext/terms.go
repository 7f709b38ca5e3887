package medtext

import (
	"regexp"
	"strings"

	"github.com/example/carecompanion/internal/models"
)

var (
	medicationToken = regexp.MustCompile(`\b[A-Z][A-Z ]+\d+ *MG?\b`)
	labKeyword      = regexp.MustCompile(`\b(glucose|cholesterol|hdl|ldl|creatinine|bun|sodium|potassium)\b`)
)

type docMarkers struct {
	docType  models.DocumentType
	keywords []string
}

// Checked in priority order; first hit wins.
var classifiers = []docMarkers{
	{models.DocPrescription, []string{"rx#", "prescription", "pharmacy", "refills"}},
	{models.DocDischargeSummary, []string{"discharge", "admission", "follow-up"}},
	{models.DocLabResults, []string{"lab", "glucose", "cholesterol", "reference ranges"}},
}

// ClassifyDocument labels text by keyword markers, case-insensitively.
func ClassifyDocument(text string) models.DocumentType {
	lower := strings.ToLower(text)
	for _, c := range classifiers {
		if ContainsAny(lower, c.keywords...) {
			return c.docType
		}
	}
	return models.DocUnknown
}

// MedicationTokens finds upper-case drug-and-strength strings such as
// "LISINOPRIL 10 MG", one line at a time, and returns them lower-cased.
func MedicationTokens(text string) []string {
	var out []string
	for _, line := range Lines(text) {
		for _, m := range medicationToken.FindAllString(line, -1) {
			if tok := strings.TrimSpace(strings.ToLower(m)); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

// LabKeywords returns every lab keyword occurrence, lower-cased, in text order.
func LabKeywords(text string) []string {
	return labKeyword.FindAllString(strings.ToLower(text), -1)
}
