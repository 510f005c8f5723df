package domain

import "time"

// BoardingPassRecord is the mutable accumulator a strategy fills while
// extracting a boarding pass. Every field except FoundAt is optional; an
// empty string means the field was never found or failed its validator.
type BoardingPassRecord struct {
	FlightNumber     string    `json:"flight_number,omitempty"`
	Airline          string    `json:"airline,omitempty"`
	PassengerName    string    `json:"passenger_name,omitempty"`
	DepartureCode    string    `json:"departure_code,omitempty"`
	DepartureCity    string    `json:"departure_city,omitempty"`
	ArrivalCode      string    `json:"arrival_code,omitempty"`
	ArrivalCity      string    `json:"arrival_city,omitempty"`
	DepartureDate    string    `json:"departure_date,omitempty"`
	DepartureTime    string    `json:"departure_time,omitempty"`
	ArrivalTime      string    `json:"arrival_time,omitempty"`
	Gate             string    `json:"gate,omitempty"`
	Terminal         string    `json:"terminal,omitempty"`
	Seat             string    `json:"seat,omitempty"`
	ConfirmationCode string    `json:"confirmation_code,omitempty"`
	TicketNumber     string    `json:"ticket_number,omitempty"`
	BoardingTime     string    `json:"boarding_time,omitempty"`
	FlightDuration   string    `json:"flight_duration,omitempty"`
	FoundAt          time.Time `json:"found_at"`
}

// HasDeparture reports whether either departure identifier is present.
func (r *BoardingPassRecord) HasDeparture() bool {
	return r.DepartureCode != "" || r.DepartureCity != ""
}

// HasArrival reports whether either arrival identifier is present.
func (r *BoardingPassRecord) HasArrival() bool {
	return r.ArrivalCode != "" || r.ArrivalCity != ""
}

// ImageInput is the raw boarding-pass image handed to the pipeline.
type ImageInput struct {
	Bytes       []byte
	ContentType string
}

// TokenCost is the token usage a remote model reported for one call.
type TokenCost struct {
	Tokens        int     `json:"tokens"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// ExtractionResult describes one completed strategy attempt. It is owned by
// the orchestrator for the duration of a single pipeline run and handed off
// to the statistics sink afterwards.
type ExtractionResult struct {
	RequestID  string
	Strategy   Strategy
	Record     *BoardingPassRecord
	Confidence float64
	Elapsed    time.Duration
	Error      string
	TokenCost  *TokenCost
}

// Succeeded reports whether the attempt produced an accepted record.
func (r *ExtractionResult) Succeeded() bool {
	return r.Record != nil && r.Error == ""
}

// CityCodeEntry maps one city name to its canonical IATA airport code.
// Several cities may alias the same code; each city has exactly one code.
type CityCodeEntry struct {
	City     string
	IATACode string
}

// StrategyStats aggregates attempt counters for one strategy.
type StrategyStats struct {
	Strategy      Strategy `db:"strategy" json:"strategy"`
	Attempts      int64    `db:"attempts" json:"attempts"`
	Successes     int64    `db:"successes" json:"successes"`
	Failures      int64    `db:"failures" json:"failures"`
	AvgElapsedMs  float64  `db:"avg_elapsed_ms" json:"avg_elapsed_ms"`
	TotalTokens   int64    `db:"total_tokens" json:"total_tokens"`
	EstimatedCost float64  `db:"estimated_cost" json:"estimated_cost"`
}

// Stats is the aggregate usage view across all strategies.
type Stats struct {
	TotalAttempts  int64           `json:"total_attempts"`
	TotalSuccesses int64           `json:"total_successes"`
	PerStrategy    []StrategyStats `json:"per_strategy"`
}
