package gorm

import "time"

// FlightStatus mirrors the AeroDataBox status vocabulary in snake_case.
type FlightStatus string

const (
	FlightStatusExpected          FlightStatus = "expected"
	FlightStatusCheckIn           FlightStatus = "check_in"
	FlightStatusBoarding          FlightStatus = "boarding"
	FlightStatusGateClosed        FlightStatus = "gate_closed"
	FlightStatusDeparted          FlightStatus = "departed"
	FlightStatusEnRoute           FlightStatus = "en_route"
	FlightStatusApproaching       FlightStatus = "approaching"
	FlightStatusDelayed           FlightStatus = "delayed"
	FlightStatusArrived           FlightStatus = "arrived"
	FlightStatusCanceled          FlightStatus = "canceled"
	FlightStatusDiverted          FlightStatus = "diverted"
	FlightStatusCanceledUncertain FlightStatus = "canceled_uncertain"
	FlightStatusUnknown           FlightStatus = "unknown"
)

// Flight is one recorded flight instance for a user. The derived metric
// columns (duration, delays, distance) are computed once at ingest/refresh
// time from the provider payload and stored, never recomputed on read.
type Flight struct {
	ID           uint         `gorm:"column:id;primaryKey"`
	UserID       uint         `gorm:"column:user_id;not null;uniqueIndex:uq_flights_user_number_date;index:ix_flights_user_past"`
	FlightNumber string       `gorm:"column:flight_number;type:varchar(10);not null;uniqueIndex:uq_flights_user_number_date"`
	FlightDate   time.Time    `gorm:"column:flight_date;type:date;not null;uniqueIndex:uq_flights_user_number_date"`
	Status       FlightStatus `gorm:"column:status;type:varchar(20);not null;default:unknown"`

	OriginIATA        string   `gorm:"column:origin_iata;type:varchar(4);not null"`
	OriginICAO        *string  `gorm:"column:origin_icao;type:varchar(5)"`
	OriginName        *string  `gorm:"column:origin_name;type:varchar(200)"`
	OriginCity        *string  `gorm:"column:origin_city;type:varchar(100)"`
	OriginCountryCode *string  `gorm:"column:origin_country_code;type:varchar(3)"`
	OriginTimezone    *string  `gorm:"column:origin_timezone;type:varchar(50)"`
	OriginLat         *float64 `gorm:"column:origin_lat"`
	OriginLon         *float64 `gorm:"column:origin_lon"`

	DestinationIATA        string   `gorm:"column:destination_iata;type:varchar(4);not null"`
	DestinationICAO        *string  `gorm:"column:destination_icao;type:varchar(5)"`
	DestinationName        *string  `gorm:"column:destination_name;type:varchar(200)"`
	DestinationCity        *string  `gorm:"column:destination_city;type:varchar(100)"`
	DestinationCountryCode *string  `gorm:"column:destination_country_code;type:varchar(3)"`
	DestinationTimezone    *string  `gorm:"column:destination_timezone;type:varchar(50)"`
	DestinationLat         *float64 `gorm:"column:destination_lat"`
	DestinationLon         *float64 `gorm:"column:destination_lon"`

	AirlineIATA *string `gorm:"column:airline_iata;type:varchar(3)"`
	AirlineICAO *string `gorm:"column:airline_icao;type:varchar(4)"`
	AirlineName *string `gorm:"column:airline_name;type:varchar(100)"`

	ScheduledDeparture *time.Time `gorm:"column:scheduled_departure"`
	RevisedDeparture   *time.Time `gorm:"column:revised_departure"`
	PredictedDeparture *time.Time `gorm:"column:predicted_departure"`
	ActualDeparture    *time.Time `gorm:"column:actual_departure"`

	ScheduledArrival *time.Time `gorm:"column:scheduled_arrival"`
	RevisedArrival   *time.Time `gorm:"column:revised_arrival"`
	PredictedArrival *time.Time `gorm:"column:predicted_arrival"`
	ActualArrival    *time.Time `gorm:"column:actual_arrival"`

	DurationMinutes       *int     `gorm:"column:duration_minutes"`
	DelayDepartureMinutes *int     `gorm:"column:delay_departure_minutes"`
	DelayArrivalMinutes   *int     `gorm:"column:delay_arrival_minutes"`
	DistanceKm            *float64 `gorm:"column:distance_km"`

	AircraftModel        *string `gorm:"column:aircraft_model;type:varchar(100)"`
	AircraftRegistration *string `gorm:"column:aircraft_registration;type:varchar(20)"`
	AircraftICAO24       *string `gorm:"column:aircraft_icao24;type:varchar(10)"`

	TerminalOrigin      *string `gorm:"column:terminal_origin;type:varchar(10)"`
	GateOrigin          *string `gorm:"column:gate_origin;type:varchar(10)"`
	TerminalDestination *string `gorm:"column:terminal_destination;type:varchar(10)"`
	BaggageBelt         *string `gorm:"column:baggage_belt;type:varchar(10)"`
	RunwayOrigin        *string `gorm:"column:runway_origin;type:varchar(10)"`
	RunwayDestination   *string `gorm:"column:runway_destination;type:varchar(10)"`
	DataQuality         *string `gorm:"column:data_quality;type:varchar(50)"`

	IsPast     bool `gorm:"column:is_past;not null;default:false;index:ix_flights_user_past"`
	IsDiverted bool `gorm:"column:is_diverted;not null;default:false"`

	Notes *string `gorm:"column:notes;type:text"`

	LastRefreshedAt *time.Time `gorm:"column:last_refreshed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
