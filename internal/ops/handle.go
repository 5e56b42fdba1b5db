// internal/ops/handle.go
package ops

import (
	"errors"

	"biosci-core/seq"

	"biosci/pkg/api"
)

// Handle decodes and runs one wire request. It never fails: errors become
// the response's Error field.
func Handle(env Env, req api.RequestV1) api.ResponseV1 {
	resp := api.ResponseV1{ID: req.ID, Op: req.Op}
	r, err := Decode(req.Op, req.Args)
	if err != nil {
		resp.Error = ToErrorV1(err)
		return resp
	}
	res, err := Dispatch(env, r)
	if err != nil {
		resp.Error = ToErrorV1(err)
		return resp
	}
	resp.OK, resp.Result = true, res
	return resp
}

// ToErrorV1 maps err to its wire form. Errors outside the core taxonomy are
// reported with kind "Internal".
func ToErrorV1(err error) *api.ErrorV1 {
	var se *seq.Error
	if !errors.As(err, &se) {
		return &api.ErrorV1{Kind: "Internal", Message: err.Error()}
	}
	out := &api.ErrorV1{Kind: se.Kind.String(), Message: se.Msg}
	if se.Pos >= 0 {
		pos := se.Pos
		out.Position = &pos
	}
	return out
}
