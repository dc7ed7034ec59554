package models

type Vehicle struct {
	ID          uint64 `json:"id"`
	VehicleCode string `json:"vehicleCode"`
	PlateNumber string `json:"plateNumber"`
	Color       string `json:"color,omitempty"`
	Kilometers  *int   `json:"kilometers,omitempty"`
	LastService string `json:"lastService,omitempty"` // YYYY-MM-DD, "" when never serviced
}
