/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"math"

	"github.com/dburkart/calc/pkg/calc"
)

// EvalRequest carries an expression either as a single string, which is split
// on whitespace, or as pre-split fragments. Fragments win if both are set.
type EvalRequest struct {
	Expression string   `json:"expression,omitempty"`
	Fragments  []string `json:"fragments,omitempty"`
}

type EvalResponse struct {
	ID      string   `json:"id"`
	Tokens  []string `json:"tokens"`
	Postfix string   `json:"postfix"`
	Result  string   `json:"result"`
	Value   *float64 `json:"value"`
}

type ErrResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func (r EvalRequest) fragments() []string {
	if len(r.Fragments) > 0 {
		return r.Fragments
	}
	return calc.Fragments(r.Expression)
}

func NewEvalResponse(id string, r calc.Result) EvalResponse {
	resp := EvalResponse{
		ID:      id,
		Tokens:  make([]string, 0, len(r.Tokens)),
		Postfix: calc.Join(r.Postfix),
		Result:  calc.FormatValue(r.Value),
	}
	for _, t := range r.Tokens {
		resp.Tokens = append(resp.Tokens, t.Type.ToString())
	}
	// JSON has no Inf or NaN, Result still carries them
	if !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
		v := r.Value
		resp.Value = &v
	}
	return resp
}
