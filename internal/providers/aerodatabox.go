package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// FlightProvider is the outbound flight-data contract. The real client and
// test mocks both satisfy it.
type FlightProvider interface {
	GetFlight(ctx context.Context, flightNumber, date string) (*FlightData, error)
}

// adbStatusMap translates AeroDataBox status strings to ours.
var adbStatusMap = map[string]gormModels.FlightStatus{
	"Unknown":           gormModels.FlightStatusUnknown,
	"Expected":          gormModels.FlightStatusExpected,
	"EnRoute":           gormModels.FlightStatusEnRoute,
	"CheckIn":           gormModels.FlightStatusCheckIn,
	"Boarding":          gormModels.FlightStatusBoarding,
	"GateClosed":        gormModels.FlightStatusGateClosed,
	"Departed":          gormModels.FlightStatusDeparted,
	"Delayed":           gormModels.FlightStatusDelayed,
	"Approaching":       gormModels.FlightStatusApproaching,
	"Arrived":           gormModels.FlightStatusArrived,
	"Canceled":          gormModels.FlightStatusCanceled,
	"Diverted":          gormModels.FlightStatusDiverted,
	"CanceledUncertain": gormModels.FlightStatusCanceledUncertain,
}

// FlightData is the normalized provider payload, ready to copy onto a
// Flight row. All derived metrics are computed here, once, at fetch time.
type FlightData struct {
	Status     gormModels.FlightStatus
	IsDiverted bool

	OriginIATA        string
	OriginICAO        *string
	OriginName        *string
	OriginCity        *string
	OriginCountryCode *string
	OriginTimezone    *string
	OriginLat         *float64
	OriginLon         *float64

	DestinationIATA        string
	DestinationICAO        *string
	DestinationName        *string
	DestinationCity        *string
	DestinationCountryCode *string
	DestinationTimezone    *string
	DestinationLat         *float64
	DestinationLon         *float64

	AirlineIATA *string
	AirlineICAO *string
	AirlineName *string

	ScheduledDeparture *time.Time
	RevisedDeparture   *time.Time
	PredictedDeparture *time.Time
	ActualDeparture    *time.Time

	ScheduledArrival *time.Time
	RevisedArrival   *time.Time
	PredictedArrival *time.Time
	ActualArrival    *time.Time

	DurationMinutes       *int
	DelayDepartureMinutes *int
	DelayArrivalMinutes   *int
	DistanceKm            *float64

	AircraftModel        *string
	AircraftRegistration *string
	AircraftICAO24       *string

	TerminalOrigin      *string
	GateOrigin          *string
	TerminalDestination *string
	BaggageBelt         *string
	RunwayOrigin        *string
	RunwayDestination   *string
	DataQuality         *string
}

// Wire shapes of the AeroDataBox flight endpoint.
type adbTime struct {
	Local string `json:"local"`
	UTC   string `json:"utc"`
}

type adbLocation struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type adbAirport struct {
	IATA             string      `json:"iata"`
	ICAO             string      `json:"icao"`
	Name             string      `json:"name"`
	MunicipalityName string      `json:"municipalityName"`
	CountryCode      string      `json:"countryCode"`
	TimeZone         string      `json:"timeZone"`
	Location         adbLocation `json:"location"`
}

type adbMovement struct {
	Airport       adbAirport `json:"airport"`
	ScheduledTime *adbTime   `json:"scheduledTime"`
	RevisedTime   *adbTime   `json:"revisedTime"`
	PredictedTime *adbTime   `json:"predictedTime"`
	RunwayTime    *adbTime   `json:"runwayTime"`
	Terminal      string     `json:"terminal"`
	Gate          string     `json:"gate"`
	Runway        string     `json:"runway"`
	BaggageBelt   string     `json:"baggageBelt"`
	Quality       []string   `json:"quality"`
}

type adbFlight struct {
	Departure adbMovement `json:"departure"`
	Arrival   adbMovement `json:"arrival"`
	Status    string      `json:"status"`
	Airline   struct {
		IATA string `json:"iata"`
		ICAO string `json:"icao"`
		Name string `json:"name"`
	} `json:"airline"`
	Aircraft struct {
		Model string `json:"model"`
		Reg   string `json:"reg"`
		ModeS string `json:"modeS"`
	} `json:"aircraft"`
	GreatCircleDistance *struct {
		Km *float64 `json:"km"`
	} `json:"greatCircleDistance"`
}

// AeroDataBoxClient talks to the AeroDataBox flight API via RapidAPI.
type AeroDataBoxClient struct {
	BaseURL string
	APIKey  string
	Host    string
	Client  *http.Client
}

var _ FlightProvider = (*AeroDataBoxClient)(nil)

func NewAeroDataBoxClient(baseURL, apiKey, host string) *AeroDataBoxClient {
	return &AeroDataBoxClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Host:    host,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetFlight fetches and normalizes one flight. Exactly one outbound call.
func (c *AeroDataBoxClient) GetFlight(ctx context.Context, flightNumber, date string) (*FlightData, error) {
	endpoint := fmt.Sprintf("%s/flights/number/%s/%s?dateLocalRole=Both",
		c.BaseURL, url.PathEscape(flightNumber), url.PathEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Upstream("failed to build flight request", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.Host)

	resp, err := c.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.Upstream("flight data provider timed out", err)
		}
		return nil, apperrors.Upstream("flight data provider unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.NotFound("flight %s on %s not found in provider", flightNumber, date)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, apperrors.Upstream("flight data provider rate limit exceeded", nil)
	case resp.StatusCode >= 400:
		return nil, apperrors.Upstream(fmt.Sprintf("flight data provider returned status %d", resp.StatusCode), nil)
	}

	// The endpoint may return either a single object or a list.
	var flights []adbFlight
	dec := json.NewDecoder(resp.Body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, apperrors.Upstream("failed to decode provider response", err)
	}
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &flights); err != nil {
			return nil, apperrors.Upstream("failed to decode provider response", err)
		}
	} else {
		var single adbFlight
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, apperrors.Upstream("failed to decode provider response", err)
		}
		flights = []adbFlight{single}
	}

	if len(flights) == 0 {
		return nil, apperrors.NotFound("flight %s on %s not found in provider", flightNumber, date)
	}

	return parseFlight(&flights[0]), nil
}

// parseFlight normalizes the raw payload and computes the derived metrics.
func parseFlight(raw *adbFlight) *FlightData {
	dep := raw.Departure
	arr := raw.Arrival

	data := &FlightData{
		OriginIATA:        dep.Airport.IATA,
		OriginICAO:        strPtr(dep.Airport.ICAO),
		OriginName:        strPtr(dep.Airport.Name),
		OriginCity:        strPtr(dep.Airport.MunicipalityName),
		OriginCountryCode: strPtr(dep.Airport.CountryCode),
		OriginTimezone:    strPtr(dep.Airport.TimeZone),
		OriginLat:         dep.Airport.Location.Lat,
		OriginLon:         dep.Airport.Location.Lon,

		DestinationIATA:        arr.Airport.IATA,
		DestinationICAO:        strPtr(arr.Airport.ICAO),
		DestinationName:        strPtr(arr.Airport.Name),
		DestinationCity:        strPtr(arr.Airport.MunicipalityName),
		DestinationCountryCode: strPtr(arr.Airport.CountryCode),
		DestinationTimezone:    strPtr(arr.Airport.TimeZone),
		DestinationLat:         arr.Airport.Location.Lat,
		DestinationLon:         arr.Airport.Location.Lon,

		AirlineIATA: strPtr(raw.Airline.IATA),
		AirlineICAO: strPtr(raw.Airline.ICAO),
		AirlineName: strPtr(raw.Airline.Name),

		ScheduledDeparture: parseLocalTime(dep.ScheduledTime),
		RevisedDeparture:   parseLocalTime(dep.RevisedTime),
		PredictedDeparture: parseLocalTime(dep.PredictedTime),
		ActualDeparture:    parseLocalTime(dep.RunwayTime),

		ScheduledArrival: parseLocalTime(arr.ScheduledTime),
		RevisedArrival:   parseLocalTime(arr.RevisedTime),
		PredictedArrival: parseLocalTime(arr.PredictedTime),
		ActualArrival:    parseLocalTime(arr.RunwayTime),

		AircraftModel:        strPtr(raw.Aircraft.Model),
		AircraftRegistration: strPtr(raw.Aircraft.Reg),
		AircraftICAO24:       strPtr(raw.Aircraft.ModeS),

		TerminalOrigin:      strPtr(dep.Terminal),
		GateOrigin:          strPtr(dep.Gate),
		TerminalDestination: strPtr(arr.Terminal),
		BaggageBelt:         strPtr(arr.BaggageBelt),
		RunwayOrigin:        strPtr(dep.Runway),
		RunwayDestination:   strPtr(arr.Runway),
	}

	if len(dep.Quality) > 0 {
		quality := strings.Join(dep.Quality, ",")
		data.DataQuality = &quality
	}

	// Distance: provider value first, great-circle from coordinates as fallback.
	if raw.GreatCircleDistance != nil && raw.GreatCircleDistance.Km != nil && *raw.GreatCircleDistance.Km != 0 {
		data.DistanceKm = raw.GreatCircleDistance.Km
	} else if data.OriginLat != nil && data.OriginLon != nil && data.DestinationLat != nil && data.DestinationLon != nil {
		km := haversineKm(*data.OriginLat, *data.OriginLon, *data.DestinationLat, *data.DestinationLon)
		data.DistanceKm = &km
	}

	data.DurationMinutes = calcDuration(data.ActualDeparture, data.ActualArrival,
		data.ScheduledDeparture, data.ScheduledArrival)
	data.DelayDepartureMinutes = calcDelay(data.ScheduledDeparture, data.ActualDeparture)
	data.DelayArrivalMinutes = calcDelay(data.ScheduledArrival, data.ActualArrival)

	status, ok := adbStatusMap[raw.Status]
	if !ok {
		status = gormModels.FlightStatusUnknown
	}
	data.Status = status
	data.IsDiverted = status == gormModels.FlightStatusDiverted

	return data
}

// parseLocalTime parses the provider's "2026-03-15 07:00+01:00" local format.
func parseLocalTime(t *adbTime) *time.Time {
	if t == nil || t.Local == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04-07:00", "2006-01-02 15:04:05-07:00", time.RFC3339} {
		if parsed, err := time.Parse(layout, t.Local); err == nil {
			return &parsed
		}
	}
	return nil
}

// calcDuration prefers actual times, falls back to scheduled. Nil unless
// the result is positive.
func calcDuration(actualDep, actualArr, schedDep, schedArr *time.Time) *int {
	dep := actualDep
	if dep == nil {
		dep = schedDep
	}
	arr := actualArr
	if arr == nil {
		arr = schedArr
	}
	if dep == nil || arr == nil {
		return nil
	}
	minutes := int(arr.Sub(*dep).Minutes())
	if minutes <= 0 {
		return nil
	}
	return &minutes
}

// calcDelay is actual minus scheduled, in minutes. Negative means early.
func calcDelay(scheduled, actual *time.Time) *int {
	if scheduled == nil || actual == nil {
		return nil
	}
	minutes := int(actual.Sub(*scheduled).Minutes())
	return &minutes
}

// haversineKm is the great-circle distance between two GPS points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		unwrapper, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = unwrapper.Unwrap()
	}
	return false
}
