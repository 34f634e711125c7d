package dto

// Pointer fields distinguish a missing value from an explicit zero.
type PointRequest struct {
	Easting  *float64 `json:"easting"`
	Northing *float64 `json:"northing"`
}

type LegRequest struct {
	Angle    *float64 `json:"angle"`
	Distance *float64 `json:"distance"`
}

type AdjustmentRequest struct {
	Station1          *PointRequest `json:"station1"`
	Station2          *PointRequest `json:"station2"`
	Legs              []LegRequest  `json:"legs"`
	LengthMode        string        `json:"length_mode"`
	PropagationMode   string        `json:"propagation_mode"`
	NormalizeBearings bool          `json:"normalize_bearings"`
}

type LegResponse struct {
	Station            int     `json:"station"`
	Angle              float64 `json:"angle"`
	Distance           float64 `json:"distance"`
	CorrectedAngle     float64 `json:"corrected_angle"`
	Bearing            float64 `json:"bearing"`
	Latitude           float64 `json:"latitude"`
	Departure          float64 `json:"departure"`
	CorrectedLatitude  float64 `json:"corrected_latitude"`
	CorrectedDeparture float64 `json:"corrected_departure"`
}

type CoordinateResponse struct {
	Station  int     `json:"station"`
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

// Ratio is null when the traverse closes exactly.
type AccuracyResponse struct {
	ClosingErrorEasting  float64  `json:"closing_error_easting"`
	ClosingErrorNorthing float64  `json:"closing_error_northing"`
	ClosingError         float64  `json:"closing_error"`
	TraverseLength       float64  `json:"traverse_length"`
	LengthMode           string   `json:"length_mode"`
	Ratio                *float64 `json:"ratio"`
	RatioText            string   `json:"ratio_text"`
	PerfectClosure       bool     `json:"perfect_closure"`
}

type AdjustmentResponse struct {
	PropagationMode     string               `json:"propagation_mode"`
	InitialBearing      float64              `json:"initial_bearing"`
	AngleSum            float64              `json:"angle_sum"`
	ExpectedAngleSum    float64              `json:"expected_angle_sum"`
	AngularClosingError float64              `json:"angular_closing_error"`
	Legs                []LegResponse        `json:"legs"`
	LatitudeMisclosure  float64              `json:"latitude_misclosure"`
	DepartureMisclosure float64              `json:"departure_misclosure"`
	TotalDistance       float64              `json:"total_distance"`
	Coordinates         []CoordinateResponse `json:"coordinates"`
	Accuracy            AccuracyResponse     `json:"accuracy"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
