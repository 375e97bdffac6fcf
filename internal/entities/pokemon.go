// Package entities holds the catalog records assembled from upstream data
package entities

// Summary is one list entry
type Summary struct {
	ID    int
	Name  string // localized species name
	Image string

	// Types holds localized type names in slot order. A missing translation
	// is an empty string at its position.
	Types []string

	// TypeKeys holds the upstream type names (e.g. "fire"), aligned with Types
	TypeKeys []string
}

// Detail is the full record shown on a detail page
type Detail struct {
	Summary

	Abilities []string
	Stats     []Stat

	// Raw upstream units: decimetres and hectograms
	Height int
	Weight int

	HeightCM int
	WeightKG float64

	Description string
}

// Stat is one base stat with its localized label
type Stat struct {
	Key   string
	Label string
	Value int
}

// HeightCentimeters converts an upstream height in decimetres
func HeightCentimeters(raw int) int {
	return raw * 10
}

// WeightKilograms converts an upstream weight in hectograms
func WeightKilograms(raw int) float64 {
	return float64(raw) / 10
}
