/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncEvaluations(outcome string)
	AddTokens(tokenType string, n int)
	ObserveEvaluationNS(t int64)
}

type metricsStore struct {
	registry     *prometheus.Registry
	Evaluations  *prometheus.CounterVec
	Tokens       *prometheus.CounterVec
	EvaluationNS prometheus.Histogram
}

var (
	OutcomeLabel   = "outcome"
	TokenTypeLabel = "type"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(5*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calc_evaluations_total",
			Help: "Evaluation requests by outcome",
		}, []string{OutcomeLabel}),
		Tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "calc_tokens_total",
			Help: "Tokens seen in evaluated expressions, by token type",
		}, []string{TokenTypeLabel}),
		EvaluationNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "calc_evaluation_ns",
			Help:    "Time spent evaluating an expression",
			Buckets: buckets,
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncEvaluations(outcome string) {
	ms.Evaluations.With(prometheus.Labels{OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) AddTokens(tokenType string, n int) {
	ms.Tokens.With(prometheus.Labels{TokenTypeLabel: tokenType}).Add(float64(n))
}

func (ms *metricsStore) ObserveEvaluationNS(t int64) {
	ms.EvaluationNS.Observe(float64(t))
}
