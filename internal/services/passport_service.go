package services

import (
	"math"
	"sort"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// PassportService computes the flight-history aggregate. It is a pure
// reducer over already-loaded rows: no data access and no error paths,
// "no flights" yields a well-formed zero report.
type PassportService struct {
	nowFn func() time.Time
}

func NewPassportService() *PassportService {
	return &PassportService{nowFn: time.Now}
}

const passportTopN = 10

// CalculatePassport builds the full report from the user's flights.
func (s *PassportService) CalculatePassport(flights []gormModels.Flight) *dtos.PassportResponse {
	var past, future []gormModels.Flight
	for _, f := range flights {
		if f.IsPast {
			past = append(past, f)
		} else {
			future = append(future, f)
		}
	}

	if len(past) == 0 {
		return s.emptyPassport(future)
	}

	avgDistance := avgFloat(past, func(f gormModels.Flight) *float64 { return f.DistanceKm })
	var avgDurationHours *float64
	if avg := avgInt(past, func(f gormModels.Flight) *int { return f.DurationMinutes }); avg != nil {
		h := round2(*avg / 60)
		avgDurationHours = &h
	}

	firstDate := past[0].FlightDate
	for _, f := range past[1:] {
		if f.FlightDate.Before(firstDate) {
			firstDate = f.FlightDate
		}
	}
	firstDateStr := firstDate.Format("2006-01-02")

	return &dtos.PassportResponse{
		TotalFlights:           len(past),
		TotalDistanceKm:        s.totalDistance(past),
		TotalDurationHours:     s.totalDurationHours(past),
		AvgFlightDistanceKm:    avgDistance,
		AvgFlightDurationHours: avgDurationHours,

		UniqueCountriesCount: len(s.uniqueCountries(past)),
		UniqueAirportsCount:  len(s.uniqueAirports(past)),
		UniqueAirlinesCount:  len(s.uniqueAirlines(past)),
		UniqueAircraftCount:  len(s.uniqueAircraft(past)),

		CountriesVisited: s.countriesVisited(past),
		AirportsTop:      s.airportsTop(past),
		AirlinesTop:      s.airlinesTop(past),
		AircraftStats:    s.aircraftStats(past),
		FlightsByYear:    s.flightsByYear(past),

		LongestFlight:    s.longestFlight(past),
		ShortestFlight:   s.shortestFlight(past),
		MostRecentFlight: s.mostRecentFlight(past),
		FirstFlightDate:  &firstDateStr,

		NextFlight: s.nextFlight(future),

		CurrentStreakDays: s.streak(past),

		DelayReport: s.delayReport(past),
	}
}

// ── Totals ──

func (s *PassportService) totalDistance(flights []gormModels.Flight) float64 {
	var total float64
	for _, f := range flights {
		if f.DistanceKm != nil && *f.DistanceKm != 0 {
			total += *f.DistanceKm
		}
	}
	return round2(total)
}

func (s *PassportService) totalDurationHours(flights []gormModels.Flight) float64 {
	var total int
	for _, f := range flights {
		if f.DurationMinutes != nil && *f.DurationMinutes != 0 {
			total += *f.DurationMinutes
		}
	}
	return round2(float64(total) / 60)
}

// ── Uniqueness sets ──

func (s *PassportService) uniqueCountries(flights []gormModels.Flight) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, f := range flights {
		if f.OriginCountryCode != nil && *f.OriginCountryCode != "" {
			codes[*f.OriginCountryCode] = struct{}{}
		}
		if f.DestinationCountryCode != nil && *f.DestinationCountryCode != "" {
			codes[*f.DestinationCountryCode] = struct{}{}
		}
	}
	return codes
}

func (s *PassportService) uniqueAirports(flights []gormModels.Flight) map[string]struct{} {
	iatas := make(map[string]struct{})
	for _, f := range flights {
		if f.OriginIATA != "" {
			iatas[f.OriginIATA] = struct{}{}
		}
		if f.DestinationIATA != "" {
			iatas[f.DestinationIATA] = struct{}{}
		}
	}
	return iatas
}

func (s *PassportService) uniqueAirlines(flights []gormModels.Flight) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range flights {
		if f.AirlineIATA != nil && *f.AirlineIATA != "" {
			set[*f.AirlineIATA] = struct{}{}
		}
	}
	return set
}

func (s *PassportService) uniqueAircraft(flights []gormModels.Flight) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range flights {
		if f.AircraftModel != nil && *f.AircraftModel != "" {
			set[*f.AircraftModel] = struct{}{}
		}
	}
	return set
}

// ── Rankings ──

type countryAcc struct {
	visitCount int
	cities     map[string]struct{}
	firstVisit time.Time
}

// countriesVisited counts one visit per leg endpoint, so a flight between two
// countries increments both.
func (s *PassportService) countriesVisited(flights []gormModels.Flight) []dtos.CountryVisit {
	data := make(map[string]*countryAcc)
	for _, f := range flights {
		endpoints := []struct {
			code *string
			city *string
		}{
			{f.OriginCountryCode, f.OriginCity},
			{f.DestinationCountryCode, f.DestinationCity},
		}
		for _, ep := range endpoints {
			if ep.code == nil || *ep.code == "" {
				continue
			}
			acc, ok := data[*ep.code]
			if !ok {
				acc = &countryAcc{cities: make(map[string]struct{}), firstVisit: f.FlightDate}
				data[*ep.code] = acc
			}
			acc.visitCount++
			if ep.city != nil && *ep.city != "" {
				acc.cities[*ep.city] = struct{}{}
			}
			if f.FlightDate.Before(acc.firstVisit) {
				acc.firstVisit = f.FlightDate
			}
		}
	}

	result := make([]dtos.CountryVisit, 0, len(data))
	for code, acc := range data {
		result = append(result, dtos.CountryVisit{
			CountryCode: code,
			VisitCount:  acc.visitCount,
			Cities:      sortedKeys(acc.cities),
			FirstVisit:  acc.firstVisit.Format("2006-01-02"),
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].VisitCount > result[j].VisitCount })
	return result
}

func (s *PassportService) airportsTop(flights []gormModels.Flight) []dtos.AirportStat {
	info := make(map[string]*dtos.AirportStat)
	for _, f := range flights {
		endpoints := []struct {
			iata    string
			name    *string
			city    *string
			country *string
		}{
			{f.OriginIATA, f.OriginName, f.OriginCity, f.OriginCountryCode},
			{f.DestinationIATA, f.DestinationName, f.DestinationCity, f.DestinationCountryCode},
		}
		for _, ep := range endpoints {
			if ep.iata == "" {
				continue
			}
			stat, ok := info[ep.iata]
			if !ok {
				stat = &dtos.AirportStat{IATA: ep.iata, Name: ep.name, City: ep.city, CountryCode: ep.country}
				info[ep.iata] = stat
			}
			stat.FlightCount++
		}
	}

	result := make([]dtos.AirportStat, 0, len(info))
	for _, stat := range info {
		result = append(result, *stat)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].FlightCount > result[j].FlightCount })
	return truncateAirports(result, passportTopN)
}

type airlineAcc struct {
	icao   *string
	name   *string
	count  int
	delays []int
}

func (s *PassportService) airlinesTop(flights []gormModels.Flight) []dtos.AirlineStat {
	info := make(map[string]*airlineAcc)
	for _, f := range flights {
		if f.AirlineIATA == nil || *f.AirlineIATA == "" {
			continue
		}
		acc, ok := info[*f.AirlineIATA]
		if !ok {
			acc = &airlineAcc{icao: f.AirlineICAO, name: f.AirlineName}
			info[*f.AirlineIATA] = acc
		}
		acc.count++
		if f.DelayArrivalMinutes != nil {
			acc.delays = append(acc.delays, *f.DelayArrivalMinutes)
		}
	}

	result := make([]dtos.AirlineStat, 0, len(info))
	for iata, acc := range info {
		var avgDelay *float64
		if len(acc.delays) > 0 {
			var sum int
			for _, d := range acc.delays {
				sum += d
			}
			avg := round1(float64(sum) / float64(len(acc.delays)))
			avgDelay = &avg
		}
		result = append(result, dtos.AirlineStat{
			IATA:            iata,
			ICAO:            acc.icao,
			Name:            acc.name,
			FlightCount:     acc.count,
			AvgDelayMinutes: avgDelay,
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].FlightCount > result[j].FlightCount })
	if len(result) > passportTopN {
		result = result[:passportTopN]
	}
	return result
}

type aircraftAcc struct {
	count         int
	registrations map[string]struct{}
	distanceKm    float64
}

func (s *PassportService) aircraftStats(flights []gormModels.Flight) []dtos.AircraftStat {
	info := make(map[string]*aircraftAcc)
	for _, f := range flights {
		if f.AircraftModel == nil || *f.AircraftModel == "" {
			continue
		}
		acc, ok := info[*f.AircraftModel]
		if !ok {
			acc = &aircraftAcc{registrations: make(map[string]struct{})}
			info[*f.AircraftModel] = acc
		}
		acc.count++
		if f.AircraftRegistration != nil && *f.AircraftRegistration != "" {
			acc.registrations[*f.AircraftRegistration] = struct{}{}
		}
		if f.DistanceKm != nil && *f.DistanceKm != 0 {
			acc.distanceKm += *f.DistanceKm
		}
	}

	result := make([]dtos.AircraftStat, 0, len(info))
	for model, acc := range info {
		result = append(result, dtos.AircraftStat{
			Model:           model,
			FlightCount:     acc.count,
			Registrations:   sortedKeys(acc.registrations),
			TotalDistanceKm: round2(acc.distanceKm),
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].FlightCount > result[j].FlightCount })
	if len(result) > passportTopN {
		result = result[:passportTopN]
	}
	return result
}

type yearAcc struct {
	count    int
	distance float64
	duration int
	delay    int
}

// flightsByYear sums only positive arrival delays; an early arrival never
// reduces a year's lost time.
func (s *PassportService) flightsByYear(flights []gormModels.Flight) []dtos.YearStat {
	data := make(map[int]*yearAcc)
	for _, f := range flights {
		y := f.FlightDate.Year()
		acc, ok := data[y]
		if !ok {
			acc = &yearAcc{}
			data[y] = acc
		}
		acc.count++
		if f.DistanceKm != nil {
			acc.distance += *f.DistanceKm
		}
		if f.DurationMinutes != nil {
			acc.duration += *f.DurationMinutes
		}
		if f.DelayArrivalMinutes != nil && *f.DelayArrivalMinutes > 0 {
			acc.delay += *f.DelayArrivalMinutes
		}
	}

	result := make([]dtos.YearStat, 0, len(data))
	for year, acc := range data {
		result = append(result, dtos.YearStat{
			Year:               year,
			FlightCount:        acc.count,
			TotalDistanceKm:    round2(acc.distance),
			TotalDurationHours: round2(float64(acc.duration) / 60),
			TotalDelayHours:    round2(float64(acc.delay) / 60),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	return result
}

// ── Highlights ──

func (s *PassportService) longestFlight(flights []gormModels.Flight) *dtos.FlightResponse {
	var best *gormModels.Flight
	for i := range flights {
		f := &flights[i]
		if f.DistanceKm == nil || *f.DistanceKm == 0 {
			continue
		}
		if best == nil || *f.DistanceKm > *best.DistanceKm {
			best = f
		}
	}
	if best == nil {
		return nil
	}
	return dtos.NewFlightResponse(best)
}

func (s *PassportService) shortestFlight(flights []gormModels.Flight) *dtos.FlightResponse {
	var best *gormModels.Flight
	for i := range flights {
		f := &flights[i]
		if f.DistanceKm == nil || *f.DistanceKm == 0 {
			continue
		}
		if best == nil || *f.DistanceKm < *best.DistanceKm {
			best = f
		}
	}
	if best == nil {
		return nil
	}
	return dtos.NewFlightResponse(best)
}

func (s *PassportService) mostRecentFlight(flights []gormModels.Flight) *dtos.FlightResponse {
	if len(flights) == 0 {
		return nil
	}
	best := &flights[0]
	for i := range flights[1:] {
		f := &flights[i+1]
		if f.FlightDate.After(best.FlightDate) {
			best = f
		}
	}
	return dtos.NewFlightResponse(best)
}

func (s *PassportService) nextFlight(future []gormModels.Flight) *dtos.FlightResponse {
	if len(future) == 0 {
		return nil
	}
	best := &future[0]
	for i := range future[1:] {
		f := &future[i+1]
		if f.FlightDate.Before(best.FlightDate) {
			best = f
		}
	}
	return dtos.NewFlightResponse(best)
}

// ── Streak ──

// streak counts consecutive calendar days with a flight, walking back from
// today. Today itself may be missing as long as yesterday has one.
func (s *PassportService) streak(flights []gormModels.Flight) int {
	dates := make(map[string]struct{}, len(flights))
	for _, f := range flights {
		dates[f.FlightDate.Format("2006-01-02")] = struct{}{}
	}

	today := s.nowFn()
	todayKey := today.Format("2006-01-02")
	yesterdayKey := today.AddDate(0, 0, -1).Format("2006-01-02")

	_, hasToday := dates[todayKey]
	_, hasYesterday := dates[yesterdayKey]
	if !hasToday && !hasYesterday {
		return 0
	}

	day := today
	if !hasToday {
		day = today.AddDate(0, 0, -1)
	}
	streak := 0
	for {
		if _, ok := dates[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ── Delay report ──

func (s *PassportService) delayReport(flights []gormModels.Flight) dtos.DelayReport {
	totalDelayMin := 0
	onTime := 0
	delayed := 0
	worst := &flights[0]
	for i := range flights {
		f := &flights[i]
		delay := 0
		if f.DelayArrivalMinutes != nil {
			delay = *f.DelayArrivalMinutes
		}
		if delay > 0 {
			totalDelayMin += delay
		}
		if delay <= 15 {
			onTime++
		} else {
			delayed++
		}
		worstDelay := 0
		if worst.DelayArrivalMinutes != nil {
			worstDelay = *worst.DelayArrivalMinutes
		}
		if delay > worstDelay {
			worst = f
		}
	}

	report := dtos.DelayReport{
		TotalHoursLost:    round2(float64(totalDelayMin) / 60),
		OnTimePercentage:  round1(float64(onTime) / float64(len(flights)) * 100),
		PctFlightsDelayed: round1(float64(delayed) / float64(len(flights)) * 100),
	}
	// The worst delay is only reported when it is a real, non-zero value.
	if worst.DelayArrivalMinutes != nil && *worst.DelayArrivalMinutes != 0 {
		report.WorstDelayMinutes = worst.DelayArrivalMinutes
		report.WorstDelayFlight = dtos.NewFlightResponse(worst)
	}
	return report
}

// ── Empty report ──

func (s *PassportService) emptyPassport(future []gormModels.Flight) *dtos.PassportResponse {
	return &dtos.PassportResponse{
		TotalFlights:       0,
		TotalDistanceKm:    0.0,
		TotalDurationHours: 0.0,
		CountriesVisited:   []dtos.CountryVisit{},
		AirportsTop:        []dtos.AirportStat{},
		AirlinesTop:        []dtos.AirlineStat{},
		AircraftStats:      []dtos.AircraftStat{},
		FlightsByYear:      []dtos.YearStat{},
		NextFlight:         s.nextFlight(future),
		CurrentStreakDays:  0,
		DelayReport: dtos.DelayReport{
			TotalHoursLost:    0.0,
			OnTimePercentage:  100.0,
			PctFlightsDelayed: 0.0,
		},
	}
}

// ── Numeric helpers ──

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func avgFloat(flights []gormModels.Flight, get func(gormModels.Flight) *float64) *float64 {
	var sum float64
	var n int
	for _, f := range flights {
		if v := get(f); v != nil && *v != 0 {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := round2(sum / float64(n))
	return &avg
}

func avgInt(flights []gormModels.Flight, get func(gormModels.Flight) *int) *float64 {
	var sum int
	var n int
	for _, f := range flights {
		if v := get(f); v != nil && *v != 0 {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncateAirports(stats []dtos.AirportStat, top int) []dtos.AirportStat {
	if len(stats) > top {
		return stats[:top]
	}
	return stats
}
