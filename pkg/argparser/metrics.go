// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package argparser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("koutil.argparser")

var (
	// parseTotal counts completed parses.
	// Labels: result (ok, error, empty_option, unknown, invalid_value, missing_value)
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "koutil",
		Subsystem: "argparser",
		Name:      "parse_total",
		Help:      "Total argument parses by result",
	}, []string{"result"})
)
