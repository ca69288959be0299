package assessment

import (
	"context"
	"errors"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

// Invoker performs the remote calculation for a Request
type Invoker struct {
	calc api.Calculator
}

// NewInvoker returns an Invoker sending calculations to calc
func NewInvoker(calc api.Calculator) *Invoker {
	return &Invoker{calc: calc}
}

// Call runs the calculation described by req
func (i *Invoker) Call(ctx context.Context, req Request) (models.AssessmentResult, error) {
	switch req.Mode {
	case models.ModeFlight:
		res, err := i.calc.CalculateFlight(ctx, req.FlightID)
		if err != nil || res == nil {
			return nil, err
		}
		return res, nil
	case models.ModeDestination:
		res, err := i.calc.CalculateDestination(ctx, req.Origin, req.Destination)
		if err != nil || res == nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, ErrUnknownMode
	}
}

// Run submits the workflow's current selection and waits for the outcome.
// It returns the validation or calculation error, if any; the workflow
// holds the same outcome for rendering.
func (i *Invoker) Run(ctx context.Context, w *Workflow) error {
	req, err := w.Begin()
	if err != nil {
		return err
	}

	res, callErr := i.Call(ctx, req)
	if !w.Resolve(req, res, callErr) {
		return errors.New("assessment was superseded")
	}
	if callErr != nil {
		return callErr
	}
	if w.Error() != "" {
		return errors.New(w.Error())
	}
	return nil
}
