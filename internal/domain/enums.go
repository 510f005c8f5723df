package domain

// Strategy identifies one extraction method in the fallback chain.
type Strategy string

const (
	StrategyRemoteVision Strategy = "remote_vision"
	StrategyOnDevice     Strategy = "on_device"
	StrategyOCRPattern   Strategy = "ocr_pattern"
)

// AllStrategies lists the chain in priority order.
var AllStrategies = []Strategy{StrategyRemoteVision, StrategyOnDevice, StrategyOCRPattern}

// SupportsVision reports whether the strategy consumes the image directly
// rather than going through a local text-recognition pass first.
func (s Strategy) SupportsVision() bool {
	return s == StrategyRemoteVision
}

// RequiresNetwork reports whether the strategy depends on a remote service.
func (s Strategy) RequiresNetwork() bool {
	return s == StrategyRemoteVision
}

// CostWeight is a relative monetary weight used for telemetry only; it never
// influences chain ordering or acceptance.
func (s Strategy) CostWeight() float64 {
	switch s {
	case StrategyRemoteVision:
		return 1.0
	case StrategyOnDevice:
		return 0.1
	default:
		return 0.0
	}
}

// RecordStatus is the validator's classification of a candidate record.
type RecordStatus int

const (
	RecordEmpty RecordStatus = iota
	RecordMinimal
	RecordComplete
)

func (s RecordStatus) String() string {
	switch s {
	case RecordMinimal:
		return "minimal"
	case RecordComplete:
		return "complete"
	default:
		return "empty"
	}
}

// AccuracyLevel selects the speed/quality trade-off of an OCR pass.
type AccuracyLevel string

const (
	AccuracyHigh AccuracyLevel = "high"
	AccuracyFast AccuracyLevel = "fast"
)

// AllowedContentTypes lists the image types the pipeline accepts.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}
