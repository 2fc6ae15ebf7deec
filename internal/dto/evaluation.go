package dto

import (
	"github.com/DjordjeVuckovic/linked-calc/internal/evaluation"
	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/google/uuid"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"1.5+2.5"`
}

type EvaluateResponse struct {
	Expression string `json:"expression" example:"1.5+2.5"`
	// Result is omitted for ±Inf and NaN; Display always carries the value.
	Result   *float64 `json:"result,omitempty" example:"4"`
	Display  string   `json:"display" example:"4"`
	RecordID string   `json:"record_id,omitempty"`
}

type ValidateResponse struct {
	Expression string `json:"expression" example:"3+*2"`
	Valid      bool   `json:"valid" example:"false"`
	Position   *int   `json:"position,omitempty" example:"2"`
	Character  string `json:"character,omitempty" example:"*"`
	Reason     string `json:"reason,omitempty" example:"operator follows another operator"`
}

type HistoryResponse struct {
	Items []history.Record `json:"items"`
	Count int              `json:"count"`
}

func NewEvaluateResponse(r evaluation.Result) EvaluateResponse {
	resp := EvaluateResponse{
		Expression: r.Expression,
		Display:    r.Display,
	}
	if r.Finite() {
		v := float64(r.Value)
		resp.Result = &v
	}
	if r.RecordID != uuid.Nil {
		resp.RecordID = r.RecordID.String()
	}
	return resp
}

func NewValidateResponse(v evaluation.Verdict) ValidateResponse {
	resp := ValidateResponse{
		Expression: v.Expression,
		Valid:      v.Valid,
	}
	if v.Syntax != nil {
		pos := v.Syntax.Pos
		resp.Position = &pos
		resp.Reason = string(v.Syntax.Reason)
		if v.Syntax.Char != 0 {
			resp.Character = string(v.Syntax.Char)
		}
	}
	return resp
}

func NewHistoryResponse(records []history.Record) HistoryResponse {
	if records == nil {
		records = []history.Record{}
	}
	return HistoryResponse{Items: records, Count: len(records)}
}
