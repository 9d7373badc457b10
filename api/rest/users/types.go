package users

type UsageResponse struct {
	Plan      string `json:"plan"`      // "free" or "premium"
	Used      int    `json:"used"`      // free-tier generations consumed
	Limit     int    `json:"limit"`     // free-tier limit (-1 for premium)
	Remaining int    `json:"remaining"` // remaining free generations (-1 for premium)
}
