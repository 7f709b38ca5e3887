package knowledge

import "strings"

// DrugPricing is one row of the medication cost table.
type DrugPricing struct {
	GenericAvailable    bool     `json:"generic_available"`
	GenericName         string   `json:"generic_name"`
	BrandNames          []string `json:"brand_names"`
	AverageGenericCost  float64  `json:"average_generic_cost"`
	AverageBrandCost    float64  `json:"average_brand_cost"`
	MonthlySavings      float64  `json:"monthly_savings"`
	AnnualSavings       float64  `json:"annual_savings"`
	DiscountPrograms    []string `json:"discount_programs"`
	ManufacturerCoupons bool     `json:"manufacturer_coupons"`
	PatientAssistance   bool     `json:"patient_assistance"`
}

var discountPrograms = []string{"GoodRx", "SingleCare", "RxSaver"}

var pricing = map[string]DrugPricing{
	"lisinopril": {
		GenericAvailable:    true,
		GenericName:         "Lisinopril",
		BrandNames:          []string{"Prinivil", "Zestril"},
		AverageGenericCost:  15.00,
		AverageBrandCost:    45.00,
		MonthlySavings:      30.00,
		AnnualSavings:       360.00,
		DiscountPrograms:    discountPrograms,
		ManufacturerCoupons: true,
		PatientAssistance:   true,
	},
	"metformin": {
		GenericAvailable:    true,
		GenericName:         "Metformin",
		BrandNames:          []string{"Glucophage"},
		AverageGenericCost:  8.00,
		AverageBrandCost:    25.00,
		MonthlySavings:      17.00,
		AnnualSavings:       204.00,
		DiscountPrograms:    discountPrograms,
		ManufacturerCoupons: false,
		PatientAssistance:   true,
	},
	"atorvastatin": {
		GenericAvailable:    true,
		GenericName:         "Atorvastatin",
		BrandNames:          []string{"Lipitor"},
		AverageGenericCost:  20.00,
		AverageBrandCost:    80.00,
		MonthlySavings:      60.00,
		AnnualSavings:       720.00,
		DiscountPrograms:    discountPrograms,
		ManufacturerCoupons: true,
		PatientAssistance:   true,
	},
}

// LookupPricing returns a copy of the cost row for a lower-case drug name.
func LookupPricing(name string) (DrugPricing, bool) {
	p, ok := pricing[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return DrugPricing{}, false
	}
	p.BrandNames = append([]string(nil), p.BrandNames...)
	p.DiscountPrograms = append([]string(nil), p.DiscountPrograms...)
	return p, true
}
