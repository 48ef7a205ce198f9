package api

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mvonwaldner/irr"
)

// DefaultGuess is the starting rate when a request omits one.
const DefaultGuess = 0.1

// CashFlow is the wire form of irr.CashFlow. Both fields must be present.
type CashFlow struct {
	Amount     *float64 `json:"amount" binding:"required"`
	TimeOffset *float64 `json:"timeOffset" binding:"required,gte=0"`
}

// IRRRequest is the body of POST /v1/irr.
type IRRRequest struct {
	PresentValue float64    `json:"presentValue"`
	CashFlows    []CashFlow `json:"cashFlows" binding:"required,dive"`
	Guess        *float64   `json:"guess"`
}

// IRRResponse reports the solver outcome. Rate is omitted when not converged.
type IRRResponse struct {
	Converged  bool     `json:"converged"`
	Rate       *float64 `json:"rate,omitempty"`
	Iterations int      `json:"iterations"`
}

// NPVRequest is the body of POST /v1/npv.
type NPVRequest struct {
	Rate      *float64   `json:"rate" binding:"required"`
	CashFlows []CashFlow `json:"cashFlows" binding:"required,dive"`
}

// NPVResponse holds the discounted sum and its derivative at the requested rate.
type NPVResponse struct {
	NPV        float64 `json:"npv"`
	Derivative float64 `json:"derivative"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Solve runs the default solver over the request.
func (req IRRRequest) Solve() IRRResponse {
	guess := DefaultGuess
	if req.Guess != nil {
		guess = *req.Guess
	}
	res := irr.Solve(req.PresentValue, toCashFlows(req.CashFlows), guess)

	out := IRRResponse{Converged: res.Converged, Iterations: res.Iterations}
	if rate, ok := res.Value(); ok {
		out.Rate = &rate
	}
	return out
}

// DecodeIRRRequest reads and validates one IRRRequest from r.
func DecodeIRRRequest(r io.Reader) (IRRRequest, error) {
	registerTagNames()

	var req IRRRequest
	body, err := io.ReadAll(r)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}
	if err := binding.JSON.BindBody(body, &req); err != nil {
		return req, errors.New(bindingMessage(err))
	}
	return req, nil
}

func toCashFlows(in []CashFlow) []irr.CashFlow {
	flows := make([]irr.CashFlow, len(in))
	for i, cf := range in {
		flows[i] = irr.CashFlow{Amount: *cf.Amount, TimeOffset: *cf.TimeOffset}
	}
	return flows
}

var tagNamesOnce sync.Once

// registerTagNames makes validation errors name fields by their JSON keys.
func registerTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingMessage turns a decode or validation error into one line per problem.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Sprintf("invalid request body: %v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
