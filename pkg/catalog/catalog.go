// Package catalog assembles every calckit calculator into one registry.
package catalog

import (
	"fmt"

	"github.com/iwvelando/calckit/pkg/calculator"
	"github.com/iwvelando/calckit/pkg/construction"
	"github.com/iwvelando/calckit/pkg/conversion"
	"github.com/iwvelando/calckit/pkg/electrical"
	"github.com/iwvelando/calckit/pkg/finance"
	"github.com/iwvelando/calckit/pkg/health"
	"github.com/iwvelando/calckit/pkg/insurance"
	"github.com/iwvelando/calckit/pkg/loans"
	"github.com/iwvelando/calckit/pkg/timecalc"
	"go.uber.org/zap"
)

// Default registers the built-in calculators grouped the way they are
// listed to users: financial, insurance, construction, medical, electrical,
// conversion and time.
func Default(logger *zap.Logger) (*calculator.Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var defs []calculator.Definition
	defs = append(defs, loans.Calculators(logger)...)
	defs = append(defs, finance.Calculators(logger)...)
	defs = append(defs, insurance.Calculators()...)
	defs = append(defs, construction.Calculators()...)
	defs = append(defs, health.Calculators()...)
	defs = append(defs, electrical.Calculators()...)
	defs = append(defs, conversion.Calculators()...)
	defs = append(defs, timecalc.Calculators()...)

	reg, err := calculator.NewRegistry(defs...)
	if err != nil {
		return nil, fmt.Errorf("failed to build calculator catalog: %w", err)
	}
	logger.Debug("calculator catalog built",
		zap.String("op", "catalog.Default"),
		zap.Int("calculators", len(defs)),
	)
	return reg, nil
}
