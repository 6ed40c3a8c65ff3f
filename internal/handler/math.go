package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mathsvc/internal/errs"
	"mathsvc/internal/server"
)

// MathHandler serves the arithmetic routes: the usage description at
// "/" and the addition operation at "/add".
type MathHandler struct {
	Handler
}

// NewMathHandler constructs a MathHandler with access to shared
// application dependencies.
func NewMathHandler(s *server.Server) *MathHandler {
	return &MathHandler{
		Handler: NewHandler(s),
	}
}

// UsageInfo is the fixed payload of the root route, describing how to
// call the add route.
type UsageInfo struct {
	Usage       string `json:"usage"`
	Description string `json:"description"`
}

// AddRequest is the parsed pair of optional integer operands for the
// add route.
//
// Operands are pointers: nil means "absent", which is a representable
// state distinct from zero. An operand that is present but not
// parseable as an integer is also left nil, so it is reported exactly
// like a missing one (documented policy; the wire contract has exactly
// two output shapes).
type AddRequest struct {
	A *int64
	B *int64
}

// Bind populates the operands from the query string. It never fails:
// lenient parsing folds every malformed input into absence.
func (r *AddRequest) Bind(c echo.Context) error {
	r.A = parseIntParam(c.QueryParam("a"))
	r.B = parseIntParam(c.QueryParam("b"))
	return nil
}

// Validate reports MissingParameter when either operand is absent.
func (r *AddRequest) Validate() error {
	if r.A == nil || r.B == nil {
		return errs.NewMissingParameterError()
	}
	return nil
}

// parseIntParam parses a base-10 int64 query value, returning nil for
// absent or unparseable input.
func parseIntParam(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// AddResult is the success payload of the add route.
type AddResult struct {
	A   int64 `json:"a"`
	B   int64 `json:"b"`
	Sum int64 `json:"sum"`
}

// Usage serves the root route. No inputs, no error conditions; always
// responds 200 with the fixed usage mapping.
func (h *MathHandler) Usage(c echo.Context) error {
	return c.JSON(http.StatusOK, UsageInfo{
		Usage:       "GET /add?a=<int>&b=<int>",
		Description: "Returns JSON {a,b,sum}",
	})
}

// Add computes the sum of the two validated operands.
//
// By the time this runs, Bind+Validate guarantee both operands are
// present, so the dereferences are safe. The sum wraps with native
// int64 semantics; overflow is intentionally not detected.
func (h *MathHandler) Add(c echo.Context, req *AddRequest) (AddResult, error) {
	a, b := *req.A, *req.B
	return AddResult{A: a, B: b, Sum: add(a, b)}, nil
}

// add returns the sum of a and b.
func add(a, b int64) int64 {
	return a + b
}
