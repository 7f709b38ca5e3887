package models

import (
	"time"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type StageStatus string

const (
	StageSuccess StageStatus = "success"
	StageError   StageStatus = "error"
)

type DocumentType string

const (
	DocPrescription     DocumentType = "prescription"
	DocDischargeSummary DocumentType = "discharge_summary"
	DocLabResults       DocumentType = "lab_results"
	DocUnknown          DocumentType = "unknown"
)

type Category string

const (
	CategoryMedication Category = "medication"
	CategoryCondition  Category = "condition"
	CategoryLabValue   Category = "lab_value"
	CategoryGeneral    Category = "general"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
	Quantity     int    `json:"quantity"`
	Refills      int    `json:"refills"`
}

type SimplifiedTerm struct {
	Term        string   `json:"term"`
	Explanation string   `json:"explanation"`
	Importance  string   `json:"importance"`
	Category    Category `json:"category"`
}

type ActionItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Timeframe   string   `json:"timeframe"`
	Completed   bool     `json:"completed"`
}

type CarePlan struct {
	Medications          []Medication     `json:"medications"`
	SimplifiedTerms      []SimplifiedTerm `json:"simplified_terms"`
	ActionItems          []ActionItem     `json:"action_items"`
	LifestyleTips        []string         `json:"lifestyle_tips"`
	FollowUpInstructions []string         `json:"follow_up_instructions"`
	EmergencyContacts    []string         `json:"emergency_contacts"`
}

// EmptyCarePlan returns a plan whose lists encode as [] rather than null.
func EmptyCarePlan() CarePlan {
	return CarePlan{
		Medications:          []Medication{},
		SimplifiedTerms:      []SimplifiedTerm{},
		ActionItems:          []ActionItem{},
		LifestyleTips:        []string{},
		FollowUpInstructions: []string{},
		EmergencyContacts:    []string{},
	}
}

// StageResult is what the executor reports for every stage invocation.
type StageResult struct {
	AgentName      string      `json:"agent_name"`
	Status         StageStatus `json:"status"`
	ProcessingTime float64     `json:"processing_time"`
	Result         Delta       `json:"result"`
	Error          string      `json:"error,omitempty"`
}

func (r *StageResult) OK() bool { return r != nil && r.Status == StageSuccess }

type ProcessResponse struct {
	Status                Status         `json:"status"`
	DocumentType          DocumentType   `json:"document_type"`
	RawText               string         `json:"raw_text"`
	CarePlan              CarePlan       `json:"care_plan"`
	ProcessingTimeSeconds float64        `json:"processing_time_seconds"`
	ConfidenceScore       float64        `json:"confidence_score"`
	ErrorMessage          *string        `json:"error_message"`
	AgentResults          []*StageResult `json:"agent_results"`
}

type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

type ErrorResponse struct {
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// TimestampLayout is the wall-clock format used in health and error bodies.
const TimestampLayout = "2006-01-02 15:04:05"

func Timestamp(t time.Time) string { return t.Format(TimestampLayout) }
