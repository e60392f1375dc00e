package httpapi

import (
	"github.com/katalvlaran/randlab/gof"
	"github.com/katalvlaran/randlab/period"
	"github.com/katalvlaran/randlab/rejection"
	"github.com/katalvlaran/randlab/sequence"
)

type generateRequest struct {
	Method     string             `json:"method"`
	Parameters map[string]float64 `json:"parameters"`
}

type validateRequest struct {
	Method     string             `json:"method"`
	Parameters map[string]float64 `json:"parameters"`
}

type statisticalTestRequest struct {
	Numbers    []float64          `json:"numbers"`
	TestType   string             `json:"test_type"`
	Parameters map[string]float64 `json:"parameters"`
}

type randomVariablesRequest struct {
	Count        int    `json:"count"`
	Method       string `json:"method"`
	Distribution string `json:"distribution"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type statisticsDTO struct {
	Count         int     `json:"count"`
	Min           int64   `json:"min"`
	Max           int64   `json:"max"`
	Mean          float64 `json:"mean"`
	Period        int     `json:"period"`
	StoppedReason string  `json:"stopped_reason"`
	RepeatedValue *int64  `json:"repeated_value,omitempty"`
}

type generateResponse struct {
	Method     string        `json:"method"`
	Numbers    []int64       `json:"numbers"`
	Normalized []float64     `json:"normalized"`
	Statistics statisticsDTO `json:"statistics"`
}

func newGenerateResponse(res *sequence.Result) generateResponse {
	st := statisticsDTO{
		Count:         res.Stats.Count,
		Min:           res.Stats.Min,
		Max:           res.Stats.Max,
		Mean:          res.Stats.Mean,
		Period:        res.Stats.Period,
		StoppedReason: string(res.Stats.StoppedReason),
	}
	if res.Stats.StoppedReason == sequence.StopRepeated {
		v := res.Stats.RepeatedValue
		st.RepeatedValue = &v
	}
	return generateResponse{
		Method:     res.Method.String(),
		Numbers:    res.Values,
		Normalized: res.Normalized,
		Statistics: st,
	}
}

type conditionDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Satisfied   bool   `json:"satisfied"`
	Applicable  bool   `json:"applicable"`
	Details     string `json:"details"`
}

type validateResponse struct {
	Conditions   []conditionDTO `json:"conditions"`
	AllSatisfied bool           `json:"all_satisfied"`
	Explanation  string         `json:"explanation"`
	PrimeFactors []int64        `json:"prime_factors"`
}

func newValidateResponse(r *period.Report) validateResponse {
	out := validateResponse{
		Conditions:   make([]conditionDTO, len(r.Conditions)),
		AllSatisfied: r.AllSatisfied,
		Explanation:  r.Explanation,
		PrimeFactors: r.PrimeFactors,
	}
	for i, c := range r.Conditions {
		out.Conditions[i] = conditionDTO(c)
	}
	return out
}

type testResultDTO struct {
	TestName         string   `json:"test_name"`
	CalculatedValue  float64  `json:"calculated_value"`
	CriticalValue    float64  `json:"critical_value"`
	Passes           bool     `json:"passes"`
	SampleSize       int      `json:"sample_size"`
	Alpha            float64  `json:"alpha"`
	Details          string   `json:"details"`
	PValue           *float64 `json:"p_value,omitempty"`
	DegreesOfFreedom int      `json:"degrees_of_freedom,omitempty"`
	Observed         []int    `json:"observed,omitempty"`
	Expected         float64  `json:"expected,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

func newTestResultDTO(r *gof.Result) testResultDTO {
	return testResultDTO{
		TestName:         r.TestName,
		CalculatedValue:  r.Statistic,
		CriticalValue:    r.CriticalValue,
		Passes:           r.Passes,
		SampleSize:       r.SampleSize,
		Alpha:            r.Alpha,
		Details:          r.Details,
		PValue:           r.PValue,
		DegreesOfFreedom: r.DegreesOfFreedom,
		Observed:         r.Observed,
		Expected:         r.Expected,
		Warnings:         r.Warnings,
	}
}

type chartDataDTO struct {
	FunctionName string    `json:"function_name"`
	X            []int     `json:"x"`
	Y            []float64 `json:"y"`
	R2           []float64 `json:"r2"`
	Accepted     []bool    `json:"accepted"`
	XD           []float64 `json:"x_d"`
	YD           []float64 `json:"y_d"`
	PointsXD     []float64 `json:"points_x_d"`
	PointsFxD    []float64 `json:"points_fx_d"`
	A            float64   `json:"a"`
	B            float64   `json:"b"`
	M            float64   `json:"M"`
}

type samplingResponse struct {
	Distribution    string       `json:"distribution"`
	R1              []float64    `json:"r1"`
	R2              []float64    `json:"r2"`
	GeneratedValues []float64    `json:"generated_values"`
	AcceptedCount   int          `json:"accepted_count"`
	AcceptanceRate  float64      `json:"acceptance_rate"`
	RunningRate     []float64    `json:"running_rate"`
	ChartData       chartDataDTO `json:"chart_data"`
	Warnings        []string     `json:"warnings,omitempty"`
}

func newSamplingResponse(res *rejection.Result) samplingResponse {
	n := len(res.Trials)
	r1 := make([]float64, n)
	r2 := make([]float64, n)
	chart := chartDataDTO{
		FunctionName: res.Label,
		X:            make([]int, n),
		Y:            make([]float64, n),
		R2:           r2,
		Accepted:     make([]bool, n),
		XD:           make([]float64, n),
		YD:           make([]float64, n),
		PointsXD:     make([]float64, len(res.Curve)),
		PointsFxD:    make([]float64, len(res.Curve)),
		A:            res.Lower,
		B:            res.Upper,
		M:            res.Envelope,
	}
	for i, tr := range res.Trials {
		r1[i] = tr.U1
		r2[i] = tr.U2
		chart.X[i] = tr.Index
		chart.Y[i] = tr.Ratio
		chart.Accepted[i] = tr.Accepted
		chart.XD[i] = tr.X
		chart.YD[i] = tr.Y
	}
	for i, p := range res.Curve {
		chart.PointsXD[i] = p.X
		chart.PointsFxD[i] = p.Fx
	}

	values := res.Values
	if values == nil {
		values = []float64{}
	}
	return samplingResponse{
		Distribution:    res.ID,
		R1:              r1,
		R2:              r2,
		GeneratedValues: values,
		AcceptedCount:   res.AcceptedCount,
		AcceptanceRate:  res.AcceptanceRate,
		RunningRate:     res.RunningRate,
		ChartData:       chart,
		Warnings:        res.Warnings,
	}
}
