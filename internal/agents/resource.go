package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/example/carecompanion/internal/errors"
	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/latency"
	"github.com/example/carecompanion/internal/medtext"
	"github.com/example/carecompanion/internal/models"
)

const (
	supportDelay   = 300 * time.Millisecond
	financialDelay = 200 * time.Millisecond
)

// ResourceStage matches the medications named in the document against cost
// data and support programs.
type ResourceStage struct {
	Pricing PricingProvider
	Latency latency.Simulator
}

func NewResourceStage(pricing PricingProvider, lat latency.Simulator) *ResourceStage {
	return &ResourceStage{Pricing: pricing, Latency: lat}
}

func (s *ResourceStage) Name() string { return NameResource }

func (s *ResourceStage) Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error) {
	if pc.Explanation == nil {
		return nil, apperrors.NewValidationError("no explained terms available for resource matching")
	}

	var meds []string
	for _, t := range pc.TermsByCategory(models.CategoryMedication) {
		meds = append(meds, strings.ToLower(t.Term))
	}

	savings := make([]models.CostSaving, 0, len(meds))
	total := 0.0
	for _, med := range meds {
		p, ok, err := s.Pricing.Lookup(ctx, med)
		if err != nil {
			return nil, fmt.Errorf("pricing lookup for %q: %w", med, err)
		}
		if !ok {
			continue
		}
		savings = append(savings, costSaving(med, p))
		total += p.AnnualSavings
	}

	if err := s.Latency.Wait(ctx, supportDelay); err != nil {
		return nil, err
	}
	support := supportResources(meds)

	if err := s.Latency.Wait(ctx, financialDelay); err != nil {
		return nil, err
	}

	return &models.Resources{
		CostSavings:           savings,
		SupportResources:      support,
		FinancialAssistance:   knowledge.FinancialAssistance(),
		MedicationsAnalyzed:   len(meds),
		TotalPotentialSavings: total,
	}, nil
}

func costSaving(med string, p knowledge.DrugPricing) models.CostSaving {
	return models.CostSaving{
		Medication:          medtext.TitleCase(med),
		GenericAvailable:    p.GenericAvailable,
		GenericName:         p.GenericName,
		BrandNames:          p.BrandNames,
		AverageGenericCost:  p.AverageGenericCost,
		AverageBrandCost:    p.AverageBrandCost,
		MonthlySavings:      p.MonthlySavings,
		AnnualSavings:       p.AnnualSavings,
		DiscountPrograms:    p.DiscountPrograms,
		ManufacturerCoupons: p.ManufacturerCoupons,
		PatientAssistance:   p.PatientAssistance,
		SavingsTips:         SavingsTips(p),
	}
}

// SavingsTips builds the advice list for one cost-table row.
func SavingsTips(p knowledge.DrugPricing) []string {
	var tips []string
	if p.GenericAvailable {
		tips = append(tips, fmt.Sprintf("Ask your doctor about generic %s to save $%.2f per month", p.GenericName, p.MonthlySavings))
	}
	if len(p.DiscountPrograms) > 0 {
		tips = append(tips, fmt.Sprintf("Use discount programs like %s for additional savings", strings.Join(p.DiscountPrograms, ", ")))
	}
	if p.ManufacturerCoupons {
		tips = append(tips, "Check for manufacturer coupons on the drug company's website")
	}
	if p.PatientAssistance {
		tips = append(tips, "Ask your doctor about patient assistance programs if you're having trouble affording this medication")
	}
	return append(tips,
		"Consider using a 90-day supply to reduce co-pays and pharmacy visits",
		"Compare prices at different pharmacies - costs can vary significantly",
	)
}

func supportResources(meds []string) []models.SupportResource {
	out := append([]models.SupportResource(nil), knowledge.GeneralResources...)
	if anyContains(meds, knowledge.DiabetesTokens) {
		out = append(out, knowledge.DiabetesResources...)
	}
	if anyContains(meds, knowledge.HypertensionTokens) {
		out = append(out, knowledge.HypertensionResources...)
	}
	return out
}

func anyContains(meds, tokens []string) bool {
	for _, m := range meds {
		if medtext.ContainsAny(m, tokens...) {
			return true
		}
	}
	return false
}
