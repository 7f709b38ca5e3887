package agents

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	apperrors "github.com/example/carecompanion/internal/errors"
	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/medtext"
	"github.com/example/carecompanion/internal/models"
)

// Weekdays in schedule order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// PlanningStage assembles everything gathered so far into a care plan with
// a checklist and a weekly schedule.
type PlanningStage struct {
	Now func() time.Time
}

func NewPlanningStage() *PlanningStage {
	return &PlanningStage{Now: time.Now}
}

func (s *PlanningStage) Name() string { return NamePlanning }

func (s *PlanningStage) Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error) {
	text := pc.RawText()
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("no text provided for care planning")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	docType := pc.DocumentType()

	meds := planMedications(pc, text)
	actions := actionItems(meds, docType)

	terms := pc.SimplifiedTerms()
	if terms == nil {
		terms = []models.SimplifiedTerm{}
	}
	plan := models.CarePlan{
		Medications:          meds,
		SimplifiedTerms:      terms,
		ActionItems:          actions,
		LifestyleTips:        lifestyleTips(pc, meds),
		FollowUpInstructions: followUps(docType, meds),
		EmergencyContacts:    emergencyContacts(text),
	}

	return &models.Plan{
		CarePlan:           plan,
		DailyChecklist:     dailyChecklist(meds, actions, now()),
		WeeklySchedule:     weeklySchedule(meds, actions),
		PriorityLevels:     priorityLevels(actions),
		CompletionTracking: completion(actions),
	}, nil
}

func planMedications(pc *models.PipelineContext, text string) []models.Medication {
	terms := pc.TermsByCategory(models.CategoryMedication)
	meds := make([]models.Medication, 0, len(terms))
	for _, t := range terms {
		d := medtext.MedicationDetails(text, t.Term)
		meds = append(meds, models.Medication{
			Name:         t.Term,
			Dosage:       d.Dosage,
			Frequency:    d.Frequency,
			Instructions: d.Instructions,
			Quantity:     d.Quantity,
			Refills:      d.Refills,
		})
	}
	return meds
}

func actionItems(meds []models.Medication, dt models.DocumentType) []models.ActionItem {
	items := make([]models.ActionItem, 0, len(meds)+4)
	for _, m := range meds {
		items = append(items, models.ActionItem{
			Title:       "Take " + m.Name,
			Description: fmt.Sprintf("Take %s of %s %s", m.Dosage, m.Name, strings.ToLower(m.Frequency)),
			Priority:    models.PriorityHigh,
			Timeframe:   m.Frequency,
		})
	}
	items = append(items, knowledge.DocumentActions(dt)...)
	return append(items, knowledge.GeneralActions()...)
}

func lifestyleTips(pc *models.PipelineContext, meds []models.Medication) []string {
	var tips []string
	for _, t := range pc.TermsByCategory(models.CategoryCondition) {
		tips = append(tips, knowledge.LifestyleTips(strings.ToLower(t.Term))...)
	}
	tips = append(tips, knowledge.LifestyleTips(knowledge.TipsGeneral)...)
	for _, m := range meds {
		if class := knowledge.DrugClass(m.Name); class != "" {
			tips = append(tips, knowledge.LifestyleTips(class)...)
		}
	}
	return medtext.Dedupe(tips)
}

func followUps(dt models.DocumentType, meds []models.Medication) []string {
	out := append([]string(nil), knowledge.FollowUps(dt)...)
	for _, m := range meds {
		if s, ok := knowledge.ClassFollowUp(knowledge.DrugClass(m.Name)); ok {
			out = append(out, s)
		}
	}
	return medtext.Dedupe(out)
}

func emergencyContacts(text string) []string {
	out := append([]string(nil), knowledge.GeneralEmergencyContacts...)
	for _, p := range medtext.PhoneNumbers(text) {
		out = append(out, "Phone: "+p)
	}
	for _, d := range medtext.DoctorNames(text) {
		out = append(out, d+" - Your Doctor")
	}
	out = append(out, knowledge.MedicalEmergencyContacts...)
	return medtext.Dedupe(out)
}

func dailyChecklist(meds []models.Medication, actions []models.ActionItem, now time.Time) models.DailyChecklist {
	tasks := make([]models.ChecklistTask, 0, len(meds)+len(actions))
	for _, m := range meds {
		at := "As directed"
		if strings.Contains(strings.ToLower(m.Frequency), "daily") {
			at = "Morning"
		}
		tasks = append(tasks, models.ChecklistTask{
			Task:     fmt.Sprintf("Take %s (%s)", m.Name, m.Dosage),
			Time:     at,
			Priority: models.PriorityHigh,
		})
	}
	for _, a := range actions {
		if a.Priority != models.PriorityHigh {
			continue
		}
		tasks = append(tasks, models.ChecklistTask{
			Task:      a.Title,
			Time:      a.Timeframe,
			Priority:  a.Priority,
			Completed: a.Completed,
		})
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return models.DailyChecklist{
		Date:           now.Format("2006-01-02"),
		Tasks:          tasks,
		TotalTasks:     len(tasks),
		CompletedTasks: done,
	}
}

// weeklySchedule repeats the same tasks for every weekday.
func weeklySchedule(meds []models.Medication, actions []models.ActionItem) models.WeeklySchedule {
	day := make([]models.ScheduledTask, 0, len(meds)+len(actions))
	for _, m := range meds {
		day = append(day, models.ScheduledTask{Task: "Take " + m.Name, Time: "Morning", Type: "medication"})
	}
	for _, a := range actions {
		if a.Priority == models.PriorityHigh || a.Priority == models.PriorityMedium {
			day = append(day, models.ScheduledTask{Task: a.Title, Time: a.Timeframe, Type: "action"})
		}
	}
	week := make(models.WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		week[d] = append([]models.ScheduledTask(nil), day...)
	}
	return week
}

func priorityLevels(actions []models.ActionItem) models.PriorityLevels {
	var p models.PriorityLevels
	for _, a := range actions {
		switch a.Priority {
		case models.PriorityHigh:
			p.High++
		case models.PriorityMedium:
			p.Medium++
		case models.PriorityLow:
			p.Low++
		}
	}
	return p
}

func completion(actions []models.ActionItem) models.CompletionTracking {
	done := 0
	for _, a := range actions {
		if a.Completed {
			done++
		}
	}
	pct := 0.0
	if len(actions) > 0 {
		pct = math.Round(float64(done)/float64(len(actions))*1000) / 10
	}
	return models.CompletionTracking{
		TotalItems:           len(actions),
		CompletedItems:       done,
		CompletionPercentage: pct,
		RemainingItems:       len(actions) - done,
	}
}
