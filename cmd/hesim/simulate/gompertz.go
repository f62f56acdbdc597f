// Copyright 2026 hesim authors
// This file is part of hesim, survival-time simulation tools
//
// hesim is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hesim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with hesim. If not, see <http://www.gnu.org/licenses/>.

package simulate

import (
	"fmt"

	"github.com/jeffPHE/hesim/config"
	"github.com/jeffPHE/hesim/logger"
	"github.com/jeffPHE/hesim/stochastic/statistics/gompertz"
	"github.com/urfave/cli/v2"
)

// QuantileCommand data structure for the quantile app.
var QuantileCommand = cli.Command{
	Action:    quantileAction,
	Name:      "quantile",
	Usage:     "evaluate the Gompertz quantile function",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&config.ProbabilityFlag,
		&config.ShapeFlag,
		&config.RateFlag,
	},
	Description: "Prints the time by which a share p of a Gompertz population has failed.",
}

// quantileAction prints the Gompertz quantile of the configured probability.
func quantileAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "GompertzQuantile")
	log.Infof("Gompertz quantile of p=%v with shape %v and rate %v", cfg.Probability, cfg.Shape, cfg.Rate)

	q, err := gompertz.Quantile(cfg.Probability, cfg.Shape, cfg.Rate)
	if err != nil {
		return err
	}
	if gompertz.IsUnbounded(q) {
		log.Notice("No finite time reaches the probability")
	}
	_, err = fmt.Fprintln(ctx.App.Writer, formatFloat(q))
	return err
}

// CDFCommand data structure for the cdf app.
var CDFCommand = cli.Command{
	Action:    cdfAction,
	Name:      "cdf",
	Usage:     "evaluate the Gompertz cumulative distribution function",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&config.TimeFlag,
		&config.ShapeFlag,
		&config.RateFlag,
	},
	Description: "Prints the share of a Gompertz population that has failed by the given time.",
}

// cdfAction prints the Gompertz CDF at the configured time.
func cdfAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "GompertzCDF")
	log.Infof("Gompertz CDF at %v with shape %v and rate %v", cfg.Time, cfg.Shape, cfg.Rate)

	_, err = fmt.Fprintln(ctx.App.Writer, formatFloat(gompertz.CDF(cfg.Time, cfg.Shape, cfg.Rate)))
	return err
}
