package dto

// NearbyQuery is the parsed form of the lat/lon/radius query string.
type NearbyQuery struct {
	Lat    *float64 `validate:"required"`
	Lon    *float64 `validate:"required"`
	Radius *float64 `validate:"omitempty,gt=0"`
}

// NearbyResponse is the success envelope shared by the resource endpoints.
type NearbyResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
