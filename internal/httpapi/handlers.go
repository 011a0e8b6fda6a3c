// SPDX-License-Identifier: MIT

package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/katalvlaran/splinegen/internal/logging"
	"github.com/katalvlaran/splinegen/matrix"
	"github.com/katalvlaran/splinegen/spline"
)

type equationResponse struct {
	Coefficients []float64 `json:"coefficients"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Points       []int     `json:"points"`
	Dim          int       `json:"dim"`
	Velocity     bool      `json:"velocity"`
}

// listRequest leaves optional fields nil so config defaults can fill them.
type listRequest struct {
	Coefficients []float64 `json:"coefficients"`
	Step         *float64  `json:"step"`
	Stop         *float64  `json:"stop"`
	MaxCount     *int      `json:"max_count"`
}

type listResponse struct {
	Values []float64 `json:"values"`
}

type plotRequest struct {
	Input     string   `json:"input"`
	Precision *int     `json:"precision"`
	Step      *float64 `json:"step"`
	Count     *int     `json:"count"`
}

type plotResponse struct {
	Equation    string    `json:"equation"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	XList       []float64 `json:"x_list"`
	YList       []float64 `json:"y_list"`
	Step        float64   `json:"step"`
	Constraints int       `json:"constraints"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEquation solves a raw table body.
func (s *Server) handleEquation(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	res, err := spline.Solve(string(body), matrix.WithoutSnapshot())
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Debug("equation solved",
		"dim", res.Dim,
		"points", len(res.Points),
		"velocity", res.Velocity,
	)

	points := res.Points
	if points == nil {
		points = []int{}
	}
	writeJSON(w, http.StatusOK, equationResponse{
		Coefficients: res.Coefficients(),
		X:            res.X.Coefficients,
		Y:            res.Y.Coefficients,
		Points:       points,
		Dim:          res.Dim,
		Velocity:     res.Velocity,
	})
}

// handleList samples one coefficient vector.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.Stop == nil {
		respondError(w, r, fmt.Errorf("%w: stop is required", errBadRequest))
		return
	}

	step := s.cfg.Sampling.Step
	if req.Step != nil {
		step = *req.Step
	}
	count := s.cfg.Sampling.Samples
	if req.MaxCount != nil {
		count = *req.MaxCount
	}
	if err := s.checkCount(count); err != nil {
		respondError(w, r, err)
		return
	}

	values, err := spline.GenerateList(req.Coefficients, step, *req.Stop, count)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Values: values})
}

// handlePlot solves a free-form listing and samples both axes over
// [0, constraints).
func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	var req plotRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	precision := s.cfg.Sampling.Precision
	if req.Precision != nil {
		precision = *req.Precision
	}
	step := s.cfg.Sampling.Step
	if req.Step != nil {
		step = *req.Step
	}
	count := s.cfg.Sampling.Samples
	if req.Count != nil {
		count = *req.Count
	}
	if err := s.checkCount(count); err != nil {
		respondError(w, r, err)
		return
	}

	res, in, err := spline.SolveFreeform(req.Input, matrix.WithoutSnapshot())
	if err != nil {
		respondError(w, r, err)
		return
	}

	eq := res.Equation()
	step = spline.SampleStep(step, count, in.Constraints)
	xs, ys, err := spline.SampleEquation(eq, step, float64(in.Constraints), count)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plotResponse{
		Equation:    eq.Format(precision),
		X:           eq.X,
		Y:           eq.Y,
		XList:       xs,
		YList:       ys,
		Step:        step,
		Constraints: in.Constraints,
	})
}

// checkCount rejects sample counts above the configured cap. Negative
// counts are left to the sampler.
func (s *Server) checkCount(count int) error {
	if limit := s.cfg.Sampling.MaxSamples; count > limit {
		return fmt.Errorf("%w: count %d exceeds %d", errBadRequest, count, limit)
	}

	return nil
}

// readBody reads the whole body under the configured size cap.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.HTTP.MaxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

// decodeJSON decodes the size-capped body into v, rejecting unknown fields.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := s.readBody(w, r)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err = dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", errBadRequest, err)
	}

	return nil
}
