// Package catalog provides the vetted-charity lookup adapter. The
// static seed stands in for an external charity evaluator API.
package catalog

import (
	"context"
	"strings"

	"charity-mandate-gateway/internal/core/domain"
)

// StaticCatalog implements ports.CharityCatalog over an in-memory
// dataset of vetted organizations, grouped by cause area.
type StaticCatalog struct {
	byCause map[string][]domain.Charity
}

// NewStaticCatalog creates a catalog seeded with the vetted dataset.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		byCause: map[string][]domain.Charity{
			"education": {
				{
					Name:       "Room to Read",
					EIN:        "77-0479905",
					Mission:    "Transforms the lives of millions of children in low-income communities by focusing on literacy and gender equality in education.",
					Rating:     4.9,
					Efficiency: 0.88,
					Cause:      "education",
				},
				{
					Name:       "Teach For America",
					EIN:        "13-3541913",
					Mission:    "Works to expand educational opportunity for children facing adversity.",
					Rating:     4.7,
					Efficiency: 0.81,
					Cause:      "education",
				},
				{
					Name:       "Tech Education Alliance",
					EIN:        "45-2345678",
					Mission:    "Brings computer science education to underserved schools.",
					Rating:     4.8,
					Efficiency: 0.92,
					Cause:      "education",
				},
			},
			"health": {
				{
					Name:       "Doctors Without Borders",
					EIN:        "13-3433452",
					Mission:    "Provides emergency medical aid to people affected by conflict, epidemics, disasters, or exclusion from healthcare.",
					Rating:     5.0,
					Efficiency: 0.89,
					Cause:      "health",
				},
			},
			"environment": {
				{
					Name:       "The Nature Conservancy",
					EIN:        "53-0242652",
					Mission:    "Conserves the lands and waters on which all life depends.",
					Rating:     4.6,
					Efficiency: 0.77,
					Cause:      "environment",
				},
			},
		},
	}
}

// FindByCause returns the vetted charities for a cause area. An
// unknown cause yields an empty result, never an error.
func (c *StaticCatalog) FindByCause(_ context.Context, causeArea string) ([]domain.Charity, error) {
	return c.byCause[strings.ToLower(strings.TrimSpace(causeArea))], nil
}
