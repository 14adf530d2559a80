// Package entity defines the domain entities for the summary feature.
package entity

// Counts holds the number of Active records of every entity type.
type Counts struct {
	Users    int64 `json:"users"`
	Classes  int64 `json:"classes"`
	Subjects int64 `json:"subjects"`
	Teachers int64 `json:"teachers"`
	Students int64 `json:"students"`
	Results  int64 `json:"results"`
}
