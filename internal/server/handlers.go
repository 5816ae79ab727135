package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/internal/letter"
	"github.com/steuerkit/rechner/internal/rentlevel"
)

// handle adapts a calculator function to a JSON endpoint.
func handle[In, Out any](s *Server, calculator string, fn func(In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeJSON(w, r, &in); err != nil {
			s.fail(w, r, calculator, err)
			return
		}
		out, err := fn(in)
		if err != nil {
			s.fail(w, r, calculator, err)
			return
		}
		s.metrics.IncrementCalculation(calculator, "ok")
		writeJSON(w, http.StatusOK, out)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty request body", errBadRequest)
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, calculator string, err error) {
	status, code := classify(err)
	s.metrics.IncrementCalculation(calculator, code)
	entry := s.logger.WithFields(logrus.Fields{
		"request_id": RequestID(r.Context()),
		"calculator": calculator,
		"error":      err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("calculation failed")
	} else {
		entry.Info("calculation rejected")
	}
	writeError(w, err)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "year": s.engine.Rules().Year})
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Rules())
}

func (s *Server) handleRentLevels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusOK, rentlevel.Cities())
		return
	}
	writeJSON(w, http.StatusOK, rentlevel.Search(q))
}

func (s *Server) estimateSeverance(in domain.SeveranceEstimate) (domain.SeveranceEstimateResult, error) {
	return domain.SeveranceEstimateResult{Input: in, Amount: s.engine.EstimateSeverance(in)}, nil
}

// housingBenefit fills the rent level from the city when only the city is given.
func (s *Server) housingBenefit(in domain.HousingBenefitInput) (domain.HousingBenefitResult, error) {
	in, err := rentlevel.Resolve(in)
	if err != nil {
		return domain.HousingBenefitResult{}, err
	}
	return s.engine.HousingBenefit(in)
}

func (s *Server) householdIncome(in domain.HouseholdIncomeInput) (domain.HouseholdIncomeResult, error) {
	return s.engine.HouseholdIncome(in), nil
}

func composeLetter(req letter.Request) (*letter.Letter, error) {
	return letter.Compose(req)
}
