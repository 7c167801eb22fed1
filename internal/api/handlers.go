package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rpgo/corpfin-calculator/internal/calculation"
	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/internal/logging"
	"github.com/rpgo/corpfin-calculator/internal/output"
	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// calcResponse is the envelope returned by the single-calculator endpoints.
// JSON cannot carry NaN or infinities, so those fields are encoded as null
// and listed by name in NonFinite.
type calcResponse struct {
	Inputs    any      `json:"inputs"`
	Result    any      `json:"result"`
	NonFinite []string `json:"non_finite"`
}

type sensitivityRequest struct {
	Wacc *float64 `json:"wacc"`
	domain.WaccInputs
}

type sensitivityResponse struct {
	Scenarios []domain.SensitivityScenario `json:"scenarios"`
	NonFinite []string                     `json:"non_finite"`
}

type reportResponse struct {
	Report    *domain.Report      `json:"report"`
	NonFinite map[string][]string `json:"non_finite"`
}

type handlers struct {
	engine *calculation.CalculationEngine
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) defaults(c *gin.Context) {
	c.JSON(http.StatusOK, domain.DefaultConfiguration())
}

func (h *handlers) wacc(c *gin.Context) {
	in := domain.DefaultWaccInputs()
	engine, ok := h.bind(c, &in)
	if !ok {
		return
	}
	res, err := engine.Wacc(in)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, calcResponse{Inputs: in, Result: res, NonFinite: orEmpty(res.NonFinite())})
}

func (h *handlers) dilution(c *gin.Context) {
	in := domain.DefaultDilutionInputs()
	engine, ok := h.bind(c, &in)
	if !ok {
		return
	}
	res, err := engine.Dilution(in)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, calcResponse{Inputs: in, Result: res, NonFinite: orEmpty(res.NonFinite())})
}

func (h *handlers) debtStack(c *gin.Context) {
	in := domain.DefaultDebtStackInputs()
	engine, ok := h.bind(c, &in)
	if !ok {
		return
	}
	res, err := engine.DebtStack(in)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, calcResponse{Inputs: in, Result: res, NonFinite: orEmpty(res.NonFinite())})
}

// sensitivity accepts either a base {"wacc": x} or WACC inputs to compute it from.
func (h *handlers) sensitivity(c *gin.Context) {
	req := sensitivityRequest{WaccInputs: domain.DefaultWaccInputs()}
	engine, ok := h.bind(c, &req)
	if !ok {
		return
	}

	var base float64
	if req.Wacc != nil {
		base = *req.Wacc
	} else {
		res, err := engine.Wacc(req.WaccInputs)
		if err != nil {
			writeCalcError(c, err)
			return
		}
		base = res.Wacc
	}

	rows, err := engine.Sensitivity(base)
	if err != nil {
		writeCalcError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensitivityResponse{Scenarios: rows, NonFinite: orEmpty(sensitivityNonFinite(rows, "scenarios"))})
}

// report runs every calculator over a workbook. With ?format= other than json
// the rendered document is returned instead of the JSON envelope.
func (h *handlers) report(c *gin.Context) {
	cfg := domain.DefaultConfiguration()
	engine, ok := h.bind(c, &cfg)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "json")
	var formatter output.Formatter
	if output.NormalizeFormatName(format) != "json" {
		if formatter = output.GetFormatterByName(format); formatter == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": output.UnsupportedFormatError(format).Error()})
			return
		}
	}

	report, err := engine.Run(c.Request.Context(), &cfg)
	if err != nil {
		logger := logging.FromContext(c.Request.Context())
		logger.Error().Err(err).Msg("report run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if formatter == nil {
		c.JSON(http.StatusOK, reportResponse{Report: report, NonFinite: nonFiniteByCalculator(report)})
		return
	}

	data, err := formatter.Format(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	name := formatter.Name()
	if name == "xlsx" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="corpfin_report_%s.xlsx"`, uuid.New().String()))
	}
	c.Data(http.StatusOK, output.ContentType(name), data)
}

func (h *handlers) formats(c *gin.Context) {
	aliases := map[string]string{}
	for _, a := range output.AvailableFormatAliases() {
		aliases[a] = output.AliasTarget(a)
	}
	c.JSON(http.StatusOK, gin.H{"formats": output.AvailableFormatterNames(), "aliases": aliases})
}

// bind decodes the request body over the defaults already held in dst and
// resolves the ?strict= override. An empty body keeps the defaults.
func (h *handlers) bind(c *gin.Context, dst any) (*calculation.CalculationEngine, bool) {
	engine := h.engine
	if raw, ok := c.GetQuery("strict"); ok {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid strict value %q", raw)})
			return nil, false
		}
		engine = engine.WithStrictMode(strict)
	}

	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return engine, true
}

func writeCalcError(c *gin.Context, err error) {
	var calcErr *calculation.CalcError
	if errors.As(err, &calcErr) {
		logger := logging.WithCalculator(logging.FromContext(c.Request.Context()), calcErr.Calculator)
		logger.Warn().
			Str("field", calcErr.Field).
			Str("kind", calcErr.Kind()).
			Msg("calculation rejected")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": calcErr.Error(),
			"kind":  calcErr.Kind(),
			"field": calcErr.Field,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func nonFiniteByCalculator(r *domain.Report) map[string][]string {
	out := map[string][]string{}
	if r.Wacc != nil {
		if nf := r.Wacc.NonFinite(); len(nf) > 0 {
			out[domain.CalculatorWACC] = nf
		}
	}
	if nf := sensitivityNonFinite(r.Sensitivity, domain.CalculatorSensitivity); len(nf) > 0 {
		out[domain.CalculatorSensitivity] = nf
	}
	if r.Dilution != nil {
		if nf := r.Dilution.NonFinite(); len(nf) > 0 {
			out[domain.CalculatorDilution] = nf
		}
	}
	if r.DebtStack != nil {
		if nf := r.DebtStack.NonFinite(); len(nf) > 0 {
			out[domain.CalculatorDebtStack] = nf
		}
	}
	return out
}

func sensitivityNonFinite(rows []domain.SensitivityScenario, prefix string) []string {
	var out []string
	for i, r := range rows {
		if !decimal.IsFinite(r.Wacc) {
			out = append(out, fmt.Sprintf("%s[%d].wacc", prefix, i))
		}
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
