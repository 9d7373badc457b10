package quota

import "context"

// generation kind requested by a user
type Kind string

const (
	KindArticle           Kind = "article"
	KindBlogTitle         Kind = "blog-title"
	KindImage             Kind = "image"
	KindBackgroundRemoval Kind = "background-removal"
	KindObjectRemoval     Kind = "object-removal"
	KindResumeReview      Kind = "resume-review"
)

// subscription tier of an account
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// number of metered generations a free-plan account may use
const FreeLimit = 10

// the identity snapshot a request is authorized against: plan and free-tier
// consumption are resolved by the auth layer before the gateway runs
type Account struct {
	ID        string
	Plan      Plan
	FreeUsage int
}

// advances the free-tier consumption counter in the identity store.
// Implemented by the users repository as a single UPDATE; two concurrent
// requests reading the same counter may under-count, which is accepted.
type UsageCommitter interface {
	IncrementFreeUsage(ctx context.Context, userID string) error
}

// reports whether usage of this kind counts against the free-tier quota
func (k Kind) Metered() bool {
	return k == KindArticle || k == KindBlogTitle
}

// reports whether this kind requires a premium plan regardless of quota
func (k Kind) PremiumOnly() bool {
	switch k {
	case KindImage, KindBackgroundRemoval, KindObjectRemoval, KindResumeReview:
		return true
	}

	return false
}
