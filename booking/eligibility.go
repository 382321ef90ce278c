package booking

import "createscale/models"

// HireVerdict is the single notice a profile screen shows about whether the
// viewer may send a hire request to the profile's owner. Only one notice is
// ever rendered, so the checks carry a fixed precedence.
type HireVerdict int

const (
	// HireNotPerformer: target is not for hire; no hire section renders at all.
	HireNotPerformer HireVerdict = iota
	// HireBlacklisted: viewer is currently blocked from hiring.
	HireBlacklisted
	// HireNotClient: viewer has not enabled "I hire performers".
	HireNotClient
	// HireAwaitingApproval: viewer enabled hiring but admin approval is pending.
	HireAwaitingApproval
	// HireEligible: show the hire button and form.
	HireEligible
)

// HireEligibility evaluates the viewer's own profile flags against the
// target profile. Precedence is fixed: blacklisted > not-a-client-yet >
// not-yet-approved > eligible. Enforcement is server-side; this only decides
// which notice the screen renders.
func HireEligibility(viewer, target *models.Profile) HireVerdict {
	if target == nil || !target.IsPerformer {
		return HireNotPerformer
	}
	switch {
	case viewer == nil:
		return HireNotClient
	case viewer.ClientBlacklisted:
		return HireBlacklisted
	case !viewer.IsPotentialClient:
		return HireNotClient
	case !viewer.ClientApproved:
		return HireAwaitingApproval
	default:
		return HireEligible
	}
}

// HireNotice is the user-facing text for each verdict. HireEligible and
// HireNotPerformer render no notice.
func HireNotice(v HireVerdict) string {
	switch v {
	case HireBlacklisted:
		return "You are currently blocked from hiring performers."
	case HireNotClient:
		return "Enable \"I hire performers\" on your profile to send hire requests."
	case HireAwaitingApproval:
		return "Your account is waiting for admin approval to hire performers."
	default:
		return ""
	}
}
