package responses

type Distance struct {
	DistanceMiles *float64 `json:"distanceMiles"`
}
