package creations

import "codeberg.org/quickai/server/quickai/creations"

// ListResponse wraps a list of creations
type ListResponse struct {
	Creations []creations.Creation `json:"creations"`
}

// CreationResponse wraps a single creation
type CreationResponse struct {
	Creation *creations.Creation `json:"creation"`
}
