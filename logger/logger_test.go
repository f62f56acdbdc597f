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

package logger

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_NewLogger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		logger := NewLogger("DEBUG", "testModule")
		assert.NotNil(t, logger)
		assert.True(t, logger.IsEnabledFor(logging.DEBUG))
	})

	t.Run("lower case level", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out, "warning", "testWarningModule")
		logger.Info("hidden")
		assert.Empty(t, out.String())
		logger.Warning("shown")
		assert.Contains(t, out.String(), "shown")
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out, "INVALID", "testInvalidModule")
		logger.Debug("hidden")
		assert.Empty(t, out.String())
		logger.Info("shown")
		assert.Contains(t, out.String(), "shown")
	})
}
