package render

import (
	"fmt"

	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

// Result renders either result variant. origin is the session's home airport.
func Result(origin string, res models.AssessmentResult, width int) string {
	switch r := res.(type) {
	case *models.FlightAssessment:
		return FlightPanel(r, width)
	case *models.DestinationAssessment:
		return ForecastTable(origin, r, width)
	case nil:
		return ""
	default:
		panic(fmt.Sprintf("render: unhandled result type %T", res))
	}
}
