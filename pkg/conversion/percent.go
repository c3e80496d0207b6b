// Package conversion provides percentage arithmetic and unit conversion
// calculators.
package conversion

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/calckit/pkg/mathutil"
	"github.com/iwvelando/calckit/pkg/validation"
)

// Percent operations.
const (
	PercentOf         = "percentOf"
	WhatPercent       = "whatPercent"
	NumberFromPercent = "numberFromPercent"
	Increase          = "increase"
	Decrease          = "decrease"
	Change            = "change"
)

// PercentInput is one percentage question. The fields used depend on the
// operation:
//
//	percentOf          percentage% of number
//	whatPercent        part as a percentage of number
//	numberFromPercent  the number that part is percentage% of
//	increase, decrease number raised or lowered by percentage%
//	change             percentage change from number to part
type PercentInput struct {
	Operation  string  `mapstructure:"operation" calc:"options=percentOf|whatPercent|numberFromPercent|increase|decrease|change"`
	Number     float64 `mapstructure:"number"`
	Percentage float64 `mapstructure:"percentage" calc:"unit=%"`
	Part       float64 `mapstructure:"part"`
}

// PercentResult is the answer with the formula that produced it.
type PercentResult struct {
	Operation string  `json:"operation"`
	Result    float64 `json:"result" display:"precise"`
	Formula   string  `json:"formula"`
}

// ValidatePercent checks the fields the operation uses.
func ValidatePercent(in PercentInput) validation.Errors {
	var errs validation.Errors
	switch in.Operation {
	case PercentOf, Increase, Decrease:
		errs.NonNegative("number", in.Number)
		errs.NonNegative("percentage", in.Percentage)
	case WhatPercent, Change:
		errs.Positive("number", in.Number)
		errs.NonNegative("part", in.Part)
	case NumberFromPercent:
		errs.Positive("percentage", in.Percentage)
		errs.NonNegative("part", in.Part)
	default:
		errs.OneOf("operation", in.Operation, PercentOf, WhatPercent, NumberFromPercent, Increase, Decrease, Change)
	}
	return errs
}

// Percent answers a validated percentage question.
func Percent(in PercentInput) PercentResult {
	n, p, part := num(in.Number), num(in.Percentage), num(in.Part)
	res := PercentResult{Operation: in.Operation}
	switch in.Operation {
	case PercentOf:
		res.Result = in.Number * mathutil.FromPercent(in.Percentage)
		res.Formula = fmt.Sprintf("(%s × %s) ÷ 100", n, p)
	case WhatPercent:
		res.Result = mathutil.Share(in.Part, in.Number)
		res.Formula = fmt.Sprintf("(%s ÷ %s) × 100", part, n)
	case NumberFromPercent:
		res.Result = in.Part / mathutil.FromPercent(in.Percentage)
		res.Formula = fmt.Sprintf("(%s × 100) ÷ %s", part, p)
	case Increase:
		res.Result = in.Number * (1 + mathutil.FromPercent(in.Percentage))
		res.Formula = fmt.Sprintf("%s × (1 + %s ÷ 100)", n, p)
	case Decrease:
		res.Result = in.Number * (1 - mathutil.FromPercent(in.Percentage))
		res.Formula = fmt.Sprintf("%s × (1 − %s ÷ 100)", n, p)
	case Change:
		res.Result = mathutil.Share(in.Part-in.Number, in.Number)
		res.Formula = fmt.Sprintf("(%s − %s) ÷ %s × 100", part, n, n)
	}
	res.Formula += " = " + num(round6(res.Result))
	return res
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
