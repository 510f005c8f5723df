package vision

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchema is the strict contract the remote model must satisfy. A
// reply with a missing required key, a wrong type, or an unknown key is
// discarded wholesale; no field from it is trusted.
const responseSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["success", "confidence"],
	"properties": {
		"success":           {"type": "boolean"},
		"confidence":        {"type": "number", "minimum": 0, "maximum": 1},
		"errors":            {"type": "array", "items": {"type": "string"}},
		"flight_number":     {"type": "string"},
		"airline":           {"type": "string"},
		"passenger_name":    {"type": "string"},
		"departure_code":    {"type": "string"},
		"departure_city":    {"type": "string"},
		"arrival_code":      {"type": "string"},
		"arrival_city":      {"type": "string"},
		"departure_date":    {"type": "string"},
		"departure_time":    {"type": "string"},
		"arrival_time":      {"type": "string"},
		"gate":              {"type": "string"},
		"terminal":          {"type": "string"},
		"seat":              {"type": "string"},
		"confirmation_code": {"type": "string"},
		"ticket_number":     {"type": "string"},
		"boarding_time":     {"type": "string"},
		"flight_duration":   {"type": "string"}
	}
}`

var compiledSchema = jsonschema.MustCompileString("boarding_pass_response.json", responseSchema)

// modelReply is the decoded form of a schema-valid reply.
type modelReply struct {
	Success          bool     `json:"success"`
	Confidence       float64  `json:"confidence"`
	Errors           []string `json:"errors"`
	FlightNumber     string   `json:"flight_number"`
	Airline          string   `json:"airline"`
	PassengerName    string   `json:"passenger_name"`
	DepartureCode    string   `json:"departure_code"`
	DepartureCity    string   `json:"departure_city"`
	ArrivalCode      string   `json:"arrival_code"`
	ArrivalCity      string   `json:"arrival_city"`
	DepartureDate    string   `json:"departure_date"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	Gate             string   `json:"gate"`
	Terminal         string   `json:"terminal"`
	Seat             string   `json:"seat"`
	ConfirmationCode string   `json:"confirmation_code"`
	TicketNumber     string   `json:"ticket_number"`
	BoardingTime     string   `json:"boarding_time"`
	FlightDuration   string   `json:"flight_duration"`
}

// decodeReply validates the raw reply against the schema and decodes it.
func decodeReply(body []byte) (*modelReply, error) {
	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("unmarshaling reply: %w", err)
	}
	if err := compiledSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("reply does not match schema: %w", err)
	}
	var reply modelReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("decoding reply: %w", err)
	}
	return &reply, nil
}
