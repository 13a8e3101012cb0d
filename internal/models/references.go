package models

import "metro.transit.dev/internal/metro"

// ReferencesModel carries the stops an entry refers to by ID.
type ReferencesModel struct {
	Stops []metro.Stop `json:"stops"`
}

// NewEmptyReferences creates references with empty, non-nil slices so they
// serialize as [].
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Stops: []metro.Stop{},
	}
}
