package models

// Extraction is the payload produced by the extraction stage.
type Extraction struct {
	RawText         string             `json:"raw_text"`
	DocumentType    DocumentType       `json:"document_type"`
	ConfidenceScore float64            `json:"confidence_score"`
	Metadata        ExtractionMetadata `json:"extraction_metadata"`
}

type ExtractionMetadata struct {
	Filename         string `json:"filename"`
	FileSize         int    `json:"file_size"`
	TextLength       int    `json:"text_length"`
	ProcessingMethod string `json:"processing_method"`
	ImageFormat      string `json:"image_format,omitempty"`
}

// Explanation is the payload produced by the explanation stage.
type Explanation struct {
	SimplifiedTerms       []SimplifiedTerm `json:"simplified_terms"`
	DocumentSummary       string           `json:"document_summary"`
	MedicalTermsFound     int              `json:"medical_terms_found"`
	TranslationConfidence float64          `json:"translation_confidence"`
}

type CostSaving struct {
	Medication          string   `json:"medication"`
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
	SavingsTips         []string `json:"savings_tips"`
}

type SupportResource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Phone       string `json:"phone"`
	Type        string `json:"type"`
}

type AssistanceProgram struct {
	Description string   `json:"description"`
	Website     string   `json:"website,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Eligibility string   `json:"eligibility"`
}

type FinancialAssistance struct {
	MedicarePartD             AssistanceProgram `json:"medicare_part_d"`
	Medicaid                  AssistanceProgram `json:"medicaid"`
	PatientAssistancePrograms AssistanceProgram `json:"patient_assistance_programs"`
	PharmacyDiscountPrograms  AssistanceProgram `json:"pharmacy_discount_programs"`
}

// Resources is the payload produced by the resource stage.
type Resources struct {
	CostSavings           []CostSaving        `json:"cost_savings"`
	SupportResources      []SupportResource   `json:"support_resources"`
	FinancialAssistance   FinancialAssistance `json:"financial_assistance"`
	MedicationsAnalyzed   int                 `json:"medications_analyzed"`
	TotalPotentialSavings float64             `json:"total_potential_savings"`
}

type ChecklistTask struct {
	Task      string   `json:"task"`
	Time      string   `json:"time"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

type DailyChecklist struct {
	Date           string          `json:"date"`
	Tasks          []ChecklistTask `json:"tasks"`
	TotalTasks     int             `json:"total_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
}

type ScheduledTask struct {
	Task string `json:"task"`
	Time string `json:"time"`
	Type string `json:"type"`
}

// WeeklySchedule maps a weekday name to its tasks.
type WeeklySchedule map[string][]ScheduledTask

type PriorityLevels struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type CompletionTracking struct {
	TotalItems           int     `json:"total_items"`
	CompletedItems       int     `json:"completed_items"`
	CompletionPercentage float64 `json:"completion_percentage"`
	RemainingItems       int     `json:"remaining_items"`
}

// Plan is the payload produced by the planning stage.
type Plan struct {
	CarePlan           CarePlan           `json:"care_plan"`
	DailyChecklist     DailyChecklist     `json:"daily_checklist"`
	WeeklySchedule     WeeklySchedule     `json:"weekly_schedule"`
	PriorityLevels     PriorityLevels     `json:"priority_levels"`
	CompletionTracking CompletionTracking `json:"completion_tracking"`
}
