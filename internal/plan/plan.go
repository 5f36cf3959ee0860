// Package plan defines the travel plan structures returned by the planning
// service. The client treats a Plan as opaque data: it is decoded, held in
// session state, and projected into the UI, but never interpreted or
// transformed.
package plan

import "math"

// DefaultConfidence is assumed when the service omits a confidence score.
const DefaultConfidence = 0.7

// Plan is the itinerary + hotel + cost/confidence bundle returned by the
// planning service. Field values are display data; the client performs no
// validation beyond structural decoding.
type Plan struct {
	Itinerary          Itinerary `json:"itinerary"`
	Hotels             []Hotel   `json:"hotels"`
	TotalEstimatedCost float64   `json:"total_estimated_cost"`
	ConfidenceScore    *float64  `json:"confidence_score,omitempty"`
}

// Total returns the estimated cost for display, zero when the service
// omitted it.
func (p *Plan) Total() float64 {
	if p == nil || p.TotalEstimatedCost < 0 {
		return 0
	}
	return p.TotalEstimatedCost
}

// ConfidencePercent returns the confidence score as a rounded percentage,
// clamped to [0, 100]. A missing score reads as the default confidence.
func (p *Plan) ConfidencePercent() int {
	score := DefaultConfidence
	if p != nil && p.ConfidenceScore != nil {
		score = *p.ConfidenceScore
	}

	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Hotel is a single hotel recommendation. Order within Plan.Hotels is
// display order, not a ranking.
type Hotel struct {
	Name          string   `json:"name"`
	Rating        *float64 `json:"rating,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	Link          string   `json:"link"`
}

// Item is an activity assigned to an itinerary slot. All fields are
// optional; an Item without a name counts as an unfilled slot.
type Item struct {
	Name string `json:"name,omitempty"`
	Desc string `json:"desc,omitempty"`
	Time string `json:"time,omitempty"`
}

// Planned reports whether the item actually fills its slot. Slots whose
// item is absent or nameless render as an explicit placeholder.
func (i *Item) Planned() bool {
	return i != nil && i.Name != ""
}
