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
	"strconv"

	"github.com/jeffPHE/hesim/config"
	"github.com/jeffPHE/hesim/logger"
	"github.com/jeffPHE/hesim/stochastic/rng"
	"github.com/jeffPHE/hesim/stochastic/survival"
	"github.com/urfave/cli/v2"
)

// DrawCommand data structure for the draw app.
var DrawCommand = cli.Command{
	Action:    drawAction,
	Name:      "draw",
	Usage:     "draw a random survival time",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&config.DistributionFlag,
		&config.LocationFlag,
		&config.Par2Flag,
		&config.SeedFlag,
	},
	Description: `
The draw command draws one survival time from an exponential, Weibull or
Gompertz distribution whose parameters are given on the log scale. The
location is the log rate (exponential, Gompertz) or the log scale (Weibull);
par2 is the log shape (Weibull, Gompertz).`,
}

// drawAction draws a single survival time and prints it.
func drawAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "SurvivalDraw")
	log.Infof("Draw %v survival time with location %v and par2 %v", cfg.Distribution, cfg.Location, cfg.Par2)

	sampler := survival.NewSampler(rng.NewSource(cfg.Seed), cfg.Distribution, log)
	t, err := sampler.Draw(cfg.Location, cfg.Par2)
	if err != nil {
		return err
	}
	log.Noticef("Survival time %v", t)
	_, err = fmt.Fprintln(ctx.App.Writer, formatFloat(t))
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
