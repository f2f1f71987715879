package models

// PredictionsRequest is the query contract for the predictions endpoint.
// fresh=true bypasses the cached latest response.
type PredictionsRequest struct {
	Fresh bool `query:"fresh" json:"fresh" default:"false"`
}

// PredictionsResponse is the JSON shape returned by the API.
type PredictionsResponse struct {
	Date         string  `json:"date"`
	ModelName    string  `json:"model_name"`
	ModelVersion int     `json:"model_version"`
	Column       string  `json:"column"`
	Rows         int     `json:"rows"`
	Predictions  []int64 `json:"predictions"`
}
