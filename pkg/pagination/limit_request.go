package pagination

import "fmt"

// LimitRequest asks for the newest Limit items of a list.
type LimitRequest struct {
	Limit int `json:"limit" query:"limit"`
}

// Validate rejects negative limits and normalizes the rest: zero becomes
// LimitDefault and anything above LimitMax is capped.
func (r *LimitRequest) Validate() error {
	if r.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", r.Limit)
	}
	if r.Limit == 0 {
		r.Limit = LimitDefault
	}
	if r.Limit > LimitMax {
		r.Limit = LimitMax
	}
	return nil
}
