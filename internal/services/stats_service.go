package services

import (
	"sort"

	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// StatsService aggregates diary entries over a trailing period. Pure reducer,
// no error paths; an empty slice produces a zero report.
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

const statsTopN = 10

// CalculateStats builds the macro report for entries already restricted to
// the requested period.
func (s *StatsService) CalculateStats(entries []gormModels.DiaryEntry, periodDays int) *dtos.StatsResponse {
	if len(entries) == 0 {
		return &dtos.StatsResponse{
			PeriodDays:  periodDays,
			TopProducts: []dtos.TopProduct{},
		}
	}

	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.EntryDate.Format("2006-01-02")] = struct{}{}
	}
	daysLogged := len(days)

	// Averages are per logged day, not diluted by unlogged days. Null
	// nutrient snapshots count as zero in the sums.
	var sumEnergy, sumProteins, sumCarbs, sumSugars, sumFat, sumSatFat, sumFiber, sumSalt float64
	for _, e := range entries {
		sumEnergy += deref(e.EnergyKcal)
		sumProteins += deref(e.ProteinsG)
		sumCarbs += deref(e.CarbohydratesG)
		sumSugars += deref(e.SugarsG)
		sumFat += deref(e.FatG)
		sumSatFat += deref(e.SaturatedFatG)
		sumFiber += deref(e.FiberG)
		sumSalt += deref(e.SaltG)
	}
	n := float64(daysLogged)

	return &dtos.StatsResponse{
		PeriodDays:     periodDays,
		DaysLogged:     daysLogged,
		ConsistencyPct: round1(float64(daysLogged) / float64(periodDays) * 100),

		AvgEnergyKcal:     round1(sumEnergy / n),
		AvgProteinsG:      round1(sumProteins / n),
		AvgCarbohydratesG: round1(sumCarbs / n),
		AvgSugarsG:        round1(sumSugars / n),
		AvgFatG:           round1(sumFat / n),
		AvgSaturatedFatG:  round1(sumSatFat / n),
		AvgFiberG:         round1(sumFiber / n),
		AvgSaltG:          round1(sumSalt / n),

		TopProducts: s.topProducts(entries),
	}
}

func (s *StatsService) topProducts(entries []gormModels.DiaryEntry) []dtos.TopProduct {
	counts := make(map[uint]int)
	snapshots := make(map[uint]*gormModels.Product)
	for i := range entries {
		e := &entries[i]
		counts[e.ProductID]++
		if _, ok := snapshots[e.ProductID]; !ok && e.Product.ID != 0 {
			snapshots[e.ProductID] = &e.Product
		}
	}

	result := make([]dtos.TopProduct, 0, len(counts))
	for productID, count := range counts {
		top := dtos.TopProduct{ProductID: productID, EntryCount: count}
		if p, ok := snapshots[productID]; ok {
			top.Product = dtos.NewProductResponse(p)
		}
		result = append(result, top)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].EntryCount > result[j].EntryCount })
	if len(result) > statsTopN {
		result = result[:statsTopN]
	}
	return result
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
