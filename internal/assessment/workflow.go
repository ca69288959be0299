// Package assessment holds the feasibility assessment workflow: the active
// mode, the candidate inputs, the current selection, and the single
// outstanding calculation with its outcome.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Adel13Lis/infs3208-routegate/internal/api"
	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
	"github.com/Adel13Lis/infs3208-routegate/internal/logger"
	"github.com/Adel13Lis/infs3208-routegate/internal/models"
)

var (
	// ErrEmptySelection is returned by Begin when nothing is selected for the active mode
	ErrEmptySelection = errors.New("empty selection")
	// ErrSubmissionPending is returned by Begin while a calculation is outstanding
	ErrSubmissionPending = errors.New("a calculation is already in progress")
	// ErrUnknownMode is returned by SetMode for anything but destination or flight
	ErrUnknownMode = errors.New("unknown assessment mode")
	// ErrModeMismatch is returned when selecting an input that belongs to the inactive mode
	ErrModeMismatch = errors.New("selection does not belong to the active mode")
	// ErrHomeDestination is returned when the home airport is picked as a destination
	ErrHomeDestination = errors.New("destination must differ from the home airport")

	errMalformedResult = errors.New("malformed response")
)

// Request identifies one submitted calculation. Its Generation ties the
// eventual response to the workflow state that issued it.
type Request struct {
	Generation  uint64
	Mode        models.Mode
	FlightID    models.FlightID
	Origin      string
	Destination string
}

// Workflow is the state of one calculator view.
// It is not safe for concurrent use; the owner serialises all calls.
type Workflow struct {
	session models.Session
	ctx     context.Context
	cancel  context.CancelFunc

	mode        models.Mode
	airports    []models.Airport
	flights     []models.UpcomingFlight
	loaded      bool
	destination string
	flightID    models.FlightID

	result  models.AssessmentResult
	errMsg  string
	loadErr string

	pending    *Request
	generation uint64
	disposed   bool
}

// New creates the workflow for a calculator view opened by session s.
// The initial mode is destination.
func New(s models.Session) *Workflow {
	ctx, cancel := context.WithCancel(context.Background())
	return &Workflow{
		session: s,
		ctx:     ctx,
		cancel:  cancel,
		mode:    models.ModeDestination,
	}
}

// Session returns the operator the view was opened for
func (w *Workflow) Session() models.Session { return w.session }

// Mode returns the active assessment mode
func (w *Workflow) Mode() models.Mode { return w.mode }

// Result returns the last committed result, nil if there is none
func (w *Workflow) Result() models.AssessmentResult { return w.result }

// Error returns the validation or calculation message to show, "" if none
func (w *Workflow) Error() string { return w.errMsg }

// LoadError returns the input-loading banner text, "" if both fetches succeeded
func (w *Workflow) LoadError() string { return w.loadErr }

// Loaded reports whether the candidate lists have arrived
func (w *Workflow) Loaded() bool { return w.loaded }

// Generation returns the id of the newest submission
func (w *Workflow) Generation() uint64 { return w.generation }

// Disposed reports whether the view has been torn down
func (w *Workflow) Disposed() bool { return w.disposed }

// SelectedDestination returns the destination code chosen in destination mode
func (w *Workflow) SelectedDestination() string { return w.destination }

// SelectedFlight returns the flight chosen in flight mode
func (w *Workflow) SelectedFlight() models.FlightID { return w.flightID }

// Context is cancelled when the view is disposed
func (w *Workflow) Context() context.Context {
	return w.ctx
}

// Loading reports whether a calculation is outstanding
func (w *Workflow) Loading() bool {
	return w.pending != nil
}

// Pending returns the outstanding request, if any
func (w *Workflow) Pending() (Request, bool) {
	if w.pending == nil {
		return Request{}, false
	}
	return *w.pending, true
}

// SetMode switches the assessment mode. Every switch clears the other mode's
// selection along with the result and error, and abandons any outstanding request.
func (w *Workflow) SetMode(mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	switch mode {
	case models.ModeDestination:
		w.flightID = ""
	case models.ModeFlight:
		w.destination = ""
	}
	w.mode = mode
	w.result = nil
	w.errMsg = ""
	w.abandon("mode switch")
	return nil
}

// SelectDestination sets the destination airport for destination mode.
// An empty code clears the selection.
func (w *Workflow) SelectDestination(code string) error {
	if w.mode != models.ModeDestination {
		return ErrModeMismatch
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != "" && strings.EqualFold(code, w.session.HomeAirport) {
		return ErrHomeDestination
	}
	w.destination = code
	return nil
}

// SelectFlight sets the flight for flight mode. An empty id clears the selection.
func (w *Workflow) SelectFlight(id models.FlightID) error {
	if w.mode != models.ModeFlight {
		return ErrModeMismatch
	}
	w.flightID = models.FlightID(strings.TrimSpace(string(id)))
	return nil
}

// Selection returns the active mode's selection as text
func (w *Workflow) Selection() string {
	if w.mode == models.ModeFlight {
		return string(w.flightID)
	}
	return w.destination
}

// Begin starts a calculation for the current selection. On success the
// returned request occupies the in-flight slot until Resolve or abandonment.
func (w *Workflow) Begin() (Request, error) {
	if w.pending != nil {
		return Request{}, ErrSubmissionPending
	}

	w.result = nil
	w.errMsg = ""

	req := Request{Mode: w.mode}
	switch w.mode {
	case models.ModeFlight:
		if w.flightID == "" {
			w.errMsg = constants.MsgSelectFlight
			return Request{}, ErrEmptySelection
		}
		req.FlightID = w.flightID
	default:
		if w.destination == "" {
			w.errMsg = constants.MsgSelectDestination
			return Request{}, ErrEmptySelection
		}
		req.Origin = w.session.HomeAirport
		req.Destination = w.destination
	}

	w.generation++
	req.Generation = w.generation
	w.pending = &req

	logger.Debug("Assessment submitted", "mode", req.Mode, "generation", req.Generation)
	return req, nil
}

// Resolve commits the outcome of req. It returns false, changing nothing,
// when req is no longer the outstanding request or the view is disposed.
func (w *Workflow) Resolve(req Request, result models.AssessmentResult, err error) bool {
	log := logger.With("mode", req.Mode, "generation", req.Generation)
	if w.disposed || w.pending == nil || w.pending.Generation != req.Generation || req.Generation != w.generation {
		log.Debug("Discarding stale assessment response", "current", w.generation, "disposed", w.disposed)
		return false
	}
	w.pending = nil

	if err == nil && (result == nil || result.Mode() != req.Mode) {
		err = errMalformedResult
	}
	if err != nil {
		w.result = nil
		w.errMsg = calculationError(err)
		log.Warn("Assessment failed", "error", err)
		return true
	}

	w.result = result
	w.errMsg = ""
	log.Debug("Assessment resolved")
	return true
}

// ApplyLoad stores the candidate lists. Any failure yields a single banner.
func (w *Workflow) ApplyLoad(res LoadResult) {
	if w.disposed {
		return
	}
	w.loaded = true
	if res.AirportsErr == nil {
		w.airports = res.Airports
	}
	if res.FlightsErr == nil {
		w.flights = res.Flights
	}
	if res.Failed() {
		w.loadErr = constants.MsgLoadFailed
	}
}

// Destinations returns the selectable destinations: every airport but home
func (w *Workflow) Destinations() []models.Airport {
	out := make([]models.Airport, 0, len(w.airports))
	for _, a := range w.airports {
		if strings.EqualFold(a.Code, w.session.HomeAirport) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Flights returns the upcoming flights from the home airport
func (w *Workflow) Flights() []models.UpcomingFlight {
	return w.flights
}

// Dispose tears the view down. Later responses are discarded.
func (w *Workflow) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.pending = nil
	w.cancel()
}

func (w *Workflow) abandon(reason string) {
	if w.pending == nil {
		return
	}
	logger.Debug("Abandoning outstanding assessment", "reason", reason, "generation", w.pending.Generation)
	w.pending = nil
	// A bump makes the abandoned response stale even if the slot is reused
	w.generation++
}

func calculationError(err error) string {
	msg := strings.TrimSpace(api.Message(err))
	if msg == "" {
		msg = constants.MsgUnexpectedError
	}
	return constants.MsgCalculationFailed + ": " + msg
}
