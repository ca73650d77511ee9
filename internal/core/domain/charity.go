package domain

// Charity is a vetted charitable organization from the lookup catalog.
type Charity struct {
	Name       string  `json:"name"`
	EIN        string  `json:"ein"`
	Mission    string  `json:"mission"`
	Rating     float64 `json:"rating"`     // 0..5
	Efficiency float64 `json:"efficiency"` // fraction of funds reaching programs, 0..1
	Cause      string  `json:"cause"`
}
