package services

import (
	"testing"
	"time"

	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func pastFlight(id uint, day string) gormModels.Flight {
	return gormModels.Flight{
		ID:           id,
		UserID:       1,
		FlightNumber: "IB1234",
		FlightDate:   date(day),
		OriginIATA:   "MAD",
		DestinationIATA: "BCN",
		IsPast:       true,
	}
}

func fixedNowPassport(day string) *PassportService {
	return &PassportService{nowFn: func() time.Time { return date(day) }}
}

func TestCalculatePassport_NoPastFlights(t *testing.T) {
	svc := NewPassportService()

	upcoming := pastFlight(1, "2030-05-01")
	upcoming.IsPast = false

	report := svc.CalculatePassport([]gormModels.Flight{upcoming})

	if report.TotalFlights != 0 {
		t.Errorf("Expected 0 total flights, got %d", report.TotalFlights)
	}
	if report.DelayReport.OnTimePercentage != 100.0 {
		t.Errorf("Expected 100.0 on-time percentage, got %v", report.DelayReport.OnTimePercentage)
	}
	if report.NextFlight == nil {
		t.Fatal("Expected next flight to be set from upcoming flights")
	}
	if report.NextFlight.FlightNumber != "IB1234" {
		t.Errorf("Expected next flight IB1234, got %s", report.NextFlight.FlightNumber)
	}
	if report.CountriesVisited == nil || len(report.CountriesVisited) != 0 {
		t.Errorf("Expected empty countries slice, got %v", report.CountriesVisited)
	}
}

func TestCalculatePassport_TotalsSkipNilAndZero(t *testing.T) {
	svc := NewPassportService()

	f1 := pastFlight(1, "2024-01-10")
	f1.DistanceKm = floatPtr(500)
	f1.DurationMinutes = intPtr(90)

	f2 := pastFlight(2, "2024-02-10")
	f2.DistanceKm = floatPtr(0) // untracked, must not count toward the average
	f2.DurationMinutes = nil

	f3 := pastFlight(3, "2024-03-10")
	f3.DistanceKm = floatPtr(1500)
	f3.DurationMinutes = intPtr(150)

	report := svc.CalculatePassport([]gormModels.Flight{f1, f2, f3})

	if report.TotalFlights != 3 {
		t.Errorf("Expected 3 total flights, got %d", report.TotalFlights)
	}
	if report.TotalDistanceKm != 2000 {
		t.Errorf("Expected total distance 2000, got %v", report.TotalDistanceKm)
	}
	if report.TotalDurationHours != 4 {
		t.Errorf("Expected total duration 4h, got %v", report.TotalDurationHours)
	}
	if report.AvgFlightDistanceKm == nil || *report.AvgFlightDistanceKm != 1000 {
		t.Errorf("Expected avg distance 1000 over two tracked flights, got %v", report.AvgFlightDistanceKm)
	}
	if report.AvgFlightDurationHours == nil || *report.AvgFlightDurationHours != 2 {
		t.Errorf("Expected avg duration 2h, got %v", report.AvgFlightDurationHours)
	}
	if report.FirstFlightDate == nil || *report.FirstFlightDate != "2024-01-10" {
		t.Errorf("Expected first flight date 2024-01-10, got %v", report.FirstFlightDate)
	}
}

func TestCalculatePassport_CountryVisitsCountBothEndpoints(t *testing.T) {
	svc := NewPassportService()

	f1 := pastFlight(1, "2024-03-01")
	f1.OriginCountryCode = strPtr("ES")
	f1.OriginCity = strPtr("Madrid")
	f1.DestinationCountryCode = strPtr("FR")
	f1.DestinationCity = strPtr("Paris")

	f2 := pastFlight(2, "2024-01-15")
	f2.FlightNumber = "IB5678"
	f2.OriginCountryCode = strPtr("ES")
	f2.OriginCity = strPtr("Barcelona")
	f2.DestinationCountryCode = strPtr("ES")
	f2.DestinationCity = strPtr("Madrid")

	report := svc.CalculatePassport([]gormModels.Flight{f1, f2})

	if report.UniqueCountriesCount != 2 {
		t.Errorf("Expected 2 unique countries, got %d", report.UniqueCountriesCount)
	}
	if len(report.CountriesVisited) != 2 {
		t.Fatalf("Expected 2 country entries, got %d", len(report.CountriesVisited))
	}

	es := report.CountriesVisited[0]
	if es.CountryCode != "ES" {
		t.Fatalf("Expected ES ranked first, got %s", es.CountryCode)
	}
	// One endpoint on f1 plus both endpoints on the domestic f2.
	if es.VisitCount != 3 {
		t.Errorf("Expected ES visit count 3, got %d", es.VisitCount)
	}
	if len(es.Cities) != 2 {
		t.Errorf("Expected 2 distinct ES cities, got %v", es.Cities)
	}
	if es.FirstVisit != "2024-01-15" {
		t.Errorf("Expected ES first visit 2024-01-15, got %s", es.FirstVisit)
	}
}

func TestCalculatePassport_Streak(t *testing.T) {
	cases := []struct {
		name  string
		days  []string
		today string
		want  int
	}{
		{"no recent flights", []string{"2024-01-01"}, "2024-06-10", 0},
		{"flight today only", []string{"2024-06-10"}, "2024-06-10", 1},
		{"yesterday keeps streak alive", []string{"2024-06-09", "2024-06-08"}, "2024-06-10", 2},
		{"consecutive run through today", []string{"2024-06-10", "2024-06-09", "2024-06-08"}, "2024-06-10", 3},
		{"gap breaks the walk", []string{"2024-06-10", "2024-06-08"}, "2024-06-10", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := fixedNowPassport(tc.today)
			flights := make([]gormModels.Flight, 0, len(tc.days))
			for i, d := range tc.days {
				flights = append(flights, pastFlight(uint(i+1), d))
			}
			report := svc.CalculatePassport(flights)
			if report.CurrentStreakDays != tc.want {
				t.Errorf("Expected streak %d, got %d", tc.want, report.CurrentStreakDays)
			}
		})
	}
}

func TestCalculatePassport_DelayReport(t *testing.T) {
	svc := NewPassportService()

	f1 := pastFlight(1, "2024-04-01")
	f1.DelayArrivalMinutes = intPtr(45)

	f2 := pastFlight(2, "2024-04-02")
	f2.FlightNumber = "IB2"
	f2.DelayArrivalMinutes = intPtr(-10) // early arrival, never adds lost time

	f3 := pastFlight(3, "2024-04-03")
	f3.FlightNumber = "IB3"
	f3.DelayArrivalMinutes = intPtr(15) // exactly 15 counts as on time

	f4 := pastFlight(4, "2024-04-04")
	f4.FlightNumber = "IB4"
	f4.DelayArrivalMinutes = nil

	report := svc.CalculatePassport([]gormModels.Flight{f1, f2, f3, f4})

	dr := report.DelayReport
	if dr.TotalHoursLost != 1.0 {
		t.Errorf("Expected 1.0 hours lost, got %v", dr.TotalHoursLost)
	}
	if dr.OnTimePercentage != 75.0 {
		t.Errorf("Expected on-time 75.0, got %v", dr.OnTimePercentage)
	}
	if dr.PctFlightsDelayed != 25.0 {
		t.Errorf("Expected delayed 25.0, got %v", dr.PctFlightsDelayed)
	}
	if dr.WorstDelayMinutes == nil || *dr.WorstDelayMinutes != 45 {
		t.Errorf("Expected worst delay 45, got %v", dr.WorstDelayMinutes)
	}
	if dr.WorstDelayFlight == nil || dr.WorstDelayFlight.FlightNumber != "IB1234" {
		t.Errorf("Expected worst delay flight IB1234, got %v", dr.WorstDelayFlight)
	}
}

func TestCalculatePassport_WorstDelaySuppressedWhenUntracked(t *testing.T) {
	svc := NewPassportService()

	f1 := pastFlight(1, "2024-04-01")
	f2 := pastFlight(2, "2024-04-02")
	f2.DelayArrivalMinutes = intPtr(0)

	report := svc.CalculatePassport([]gormModels.Flight{f1, f2})

	if report.DelayReport.WorstDelayMinutes != nil {
		t.Errorf("Expected no worst delay when all delays are nil or zero, got %v", *report.DelayReport.WorstDelayMinutes)
	}
	if report.DelayReport.WorstDelayFlight != nil {
		t.Error("Expected no worst delay flight")
	}
	if report.DelayReport.OnTimePercentage != 100.0 {
		t.Errorf("Expected on-time 100.0, got %v", report.DelayReport.OnTimePercentage)
	}
}

func TestCalculatePassport_AirlineRankingAndDelayAverage(t *testing.T) {
	svc := NewPassportService()

	var flights []gormModels.Flight
	for i := 0; i < 3; i++ {
		f := pastFlight(uint(i+1), "2024-05-01")
		f.AirlineIATA = strPtr("IB")
		f.AirlineName = strPtr("Iberia")
		if i < 2 {
			f.DelayArrivalMinutes = intPtr(10 + i) // 10 and 11
		}
		flights = append(flights, f)
	}
	ryr := pastFlight(4, "2024-05-02")
	ryr.AirlineIATA = strPtr("FR")
	ryr.AirlineName = strPtr("Ryanair")
	flights = append(flights, ryr)

	report := svc.CalculatePassport(flights)

	if len(report.AirlinesTop) != 2 {
		t.Fatalf("Expected 2 airlines, got %d", len(report.AirlinesTop))
	}
	top := report.AirlinesTop[0]
	if top.IATA != "IB" || top.FlightCount != 3 {
		t.Errorf("Expected IB with 3 flights first, got %s with %d", top.IATA, top.FlightCount)
	}
	if top.AvgDelayMinutes == nil || *top.AvgDelayMinutes != 10.5 {
		t.Errorf("Expected avg delay 10.5 over tracked delays, got %v", top.AvgDelayMinutes)
	}
	if report.AirlinesTop[1].AvgDelayMinutes != nil {
		t.Errorf("Expected nil avg delay for airline with no tracked delays, got %v", *report.AirlinesTop[1].AvgDelayMinutes)
	}
}

func TestCalculatePassport_YearlyRollup(t *testing.T) {
	svc := NewPassportService()

	f1 := pastFlight(1, "2023-07-01")
	f1.DistanceKm = floatPtr(600)
	f1.DurationMinutes = intPtr(60)
	f1.DelayArrivalMinutes = intPtr(-20) // negative delay adds nothing

	f2 := pastFlight(2, "2024-01-01")
	f2.DistanceKm = floatPtr(900)
	f2.DurationMinutes = intPtr(90)
	f2.DelayArrivalMinutes = intPtr(30)

	report := svc.CalculatePassport([]gormModels.Flight{f1, f2})

	if len(report.FlightsByYear) != 2 {
		t.Fatalf("Expected 2 year buckets, got %d", len(report.FlightsByYear))
	}
	if report.FlightsByYear[0].Year != 2024 {
		t.Errorf("Expected most recent year first, got %d", report.FlightsByYear[0].Year)
	}
	if report.FlightsByYear[0].TotalDelayHours != 0.5 {
		t.Errorf("Expected 0.5 delay hours in 2024, got %v", report.FlightsByYear[0].TotalDelayHours)
	}
	if report.FlightsByYear[1].TotalDelayHours != 0 {
		t.Errorf("Expected 0 delay hours in 2023, got %v", report.FlightsByYear[1].TotalDelayHours)
	}
	if report.FlightsByYear[1].TotalDistanceKm != 600 {
		t.Errorf("Expected 600 km in 2023, got %v", report.FlightsByYear[1].TotalDistanceKm)
	}
}

func TestCalculatePassport_Highlights(t *testing.T) {
	svc := NewPassportService()

	short := pastFlight(1, "2024-02-01")
	short.FlightNumber = "IB1"
	short.DistanceKm = floatPtr(300)

	long := pastFlight(2, "2024-03-01")
	long.FlightNumber = "IB2"
	long.DistanceKm = floatPtr(9000)

	untracked := pastFlight(3, "2024-04-01")
	untracked.FlightNumber = "IB3"
	untracked.DistanceKm = floatPtr(0)

	report := svc.CalculatePassport([]gormModels.Flight{short, long, untracked})

	if report.LongestFlight == nil || report.LongestFlight.FlightNumber != "IB2" {
		t.Errorf("Expected longest flight IB2, got %v", report.LongestFlight)
	}
	if report.ShortestFlight == nil || report.ShortestFlight.FlightNumber != "IB1" {
		t.Errorf("Expected shortest flight IB1, got %v", report.ShortestFlight)
	}
	if report.MostRecentFlight == nil || report.MostRecentFlight.FlightNumber != "IB3" {
		t.Errorf("Expected most recent flight IB3, got %v", report.MostRecentFlight)
	}
}
