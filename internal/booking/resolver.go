package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avalondental/scheduling-agent/internal/catalog"
	"github.com/avalondental/scheduling-agent/internal/schedule"
	"github.com/avalondental/scheduling-agent/pkg/logging"
)

// Outcome classifies what a resolution pass did, so callers can react without
// inspecting reply text.
type Outcome string

const (
	// OutcomeNoDirective means the generated text carried no booking marker.
	OutcomeNoDirective Outcome = "no_directive"
	// OutcomeCommitted means exactly one calendar write happened.
	OutcomeCommitted Outcome = "committed"
	// OutcomeValidationRejected means the directive's patient name failed
	// validation and the user was asked to clarify.
	OutcomeValidationRejected Outcome = "validation_rejected"
	// OutcomeUnresolved means a directive was present but no slot matched.
	OutcomeUnresolved Outcome = "unresolved"
	// OutcomeRemoteFailure means the calendar was unreachable or erroring.
	OutcomeRemoteFailure Outcome = "remote_failure"
)

// Resolution is the result of piping generated text through the resolver.
type Resolution struct {
	Outcome   Outcome
	Reply     string
	Directive *Directive
	Slot      *schedule.Slot
	EventID   string
	// Adjusted is set when the booked time differs from the requested one
	// (day-level fallback match).
	Adjusted bool
}

// substringFallbackLimit caps how many slots the substring-date fallback
// scans when the time text failed to parse.
const substringFallbackLimit = 100

// nearestOptionsShown is how many alternatives an unresolved directive lists.
const nearestOptionsShown = 5

const clarifyNameReply = "I'd be happy to book that for you! Could you please provide your full name?"

const retryLaterReply = "I'm sorry, I couldn't reach our scheduling system just now. Please try again in a moment."

// Resolver extracts booking directives from generated text, matches them
// against currently free slots, and triggers at most one commit per call.
// It holds no state across calls; every resolution works from a fresh
// availability snapshot.
type Resolver struct {
	slots       *schedule.Generator
	committer   *Committer
	horizonDays int
	logger      *logging.Logger
}

// NewResolver creates a directive resolver.
func NewResolver(slots *schedule.Generator, committer *Committer, horizonDays int, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.Default()
	}
	if horizonDays <= 0 {
		horizonDays = schedule.DefaultHorizonDays
	}
	return &Resolver{slots: slots, committer: committer, horizonDays: horizonDays, logger: logger}
}

// ResolveAndCommit inspects generated text for a booking directive and, when
// one resolves to a free slot, commits it. Matching runs in strict priority
// order — exact date+time, then same-day, then formatted-date substring —
// and the first success is terminal. Failures never surface raw to the user:
// they are classified on the Resolution and replaced with a friendly reply.
func (r *Resolver) ResolveAndCommit(ctx context.Context, generated string) Resolution {
	d, ok := ParseDirective(generated)
	if !ok {
		return Resolution{Outcome: OutcomeNoDirective, Reply: generated}
	}

	if !ValidName(d.PatientName) {
		r.logger.Info("booking directive rejected: invalid patient name", "name", d.PatientName)
		return Resolution{
			Outcome:   OutcomeValidationRejected,
			Reply:     strings.Replace(generated, d.Line, clarifyNameReply, 1),
			Directive: &d,
		}
	}

	duration := catalog.ResolveDuration(d.Service)
	available, err := r.slots.ListAvailable(ctx, d.Location, r.horizonDays, duration)
	if err != nil {
		r.logger.Error("booking resolution: availability fetch failed", "error", err)
		return Resolution{
			Outcome:   OutcomeRemoteFailure,
			Reply:     strings.Replace(generated, d.Line, retryLaterReply, 1),
			Directive: &d,
		}
	}

	loc := r.slots.Location()
	now := r.slots.Now()

	target, parseErr := parseTimeText(d.TimeText, now, loc)

	var (
		match    *schedule.Slot
		adjusted bool
	)
	if parseErr == nil {
		// Tier 1: exact month, day, hour, minute.
		for i := range available {
			s := available[i].Start
			if s.Month() == target.Month() && s.Day() == target.Day() &&
				s.Hour() == target.Hour() && s.Minute() == target.Minute() {
				match = &available[i]
				break
			}
		}
		// Tier 2: same day, first free time.
		if match == nil {
			for i := range available {
				s := available[i].Start
				if s.Month() == target.Month() && s.Day() == target.Day() {
					match = &available[i]
					adjusted = true
					break
				}
			}
		}
	} else {
		// Tier 3: the slot's formatted "Jan 02" appears in the time text.
		lowerText := strings.ToLower(d.TimeText)
		limit := len(available)
		if limit > substringFallbackLimit {
			limit = substringFallbackLimit
		}
		for i := 0; i < limit; i++ {
			if strings.Contains(lowerText, strings.ToLower(available[i].Start.Format("Jan 02"))) {
				match = &available[i]
				break
			}
		}
	}

	if match == nil {
		return Resolution{
			Outcome:   OutcomeUnresolved,
			Reply:     strings.Replace(generated, d.Line, unresolvedReply(d, available), 1),
			Directive: &d,
		}
	}

	created, err := r.committer.Commit(ctx, *match, d.PatientName, d.Service, d.Location)
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			r.logger.Warn("booking lost race: slot taken between snapshot and commit",
				"slot", match.Start, "patient", d.PatientName)
			return Resolution{
				Outcome:   OutcomeUnresolved,
				Reply:     strings.Replace(generated, d.Line, slotTakenReply(d, available, *match), 1),
				Directive: &d,
			}
		}
		r.logger.Error("booking commit failed", "error", err, "slot", match.Start)
		return Resolution{
			Outcome:   OutcomeRemoteFailure,
			Reply:     strings.Replace(generated, d.Line, retryLaterReply, 1),
			Directive: &d,
		}
	}

	confirmation := fmt.Sprintf("✅ Appointment booked: %s for %s at %s, %s",
		d.PatientName, d.Service, d.Location, match.Start.Format("Monday, Jan 02 at 03:04 PM"))
	if adjusted {
		confirmation += " (adjusted to fit schedule)"
	}

	r.logger.Info("appointment booked",
		"patient", d.PatientName,
		"service", d.Service,
		"location", d.Location,
		"start", match.Start,
		"adjusted", adjusted,
		"event_id", created.ID,
	)

	return Resolution{
		Outcome:   OutcomeCommitted,
		Reply:     strings.Replace(generated, d.Line, confirmation, 1),
		Directive: &d,
		Slot:      match,
		EventID:   created.ID,
		Adjusted:  adjusted,
	}
}

// unresolvedReply replaces an unmatched directive with the closest options
// instead of leaking the raw directive line back to the patient.
func unresolvedReply(d Directive, available []schedule.Slot) string {
	if len(available) == 0 {
		return fmt.Sprintf("I couldn't find an opening for %q in the next few weeks. Would you like me to check a different service or location?", d.TimeText)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "I couldn't find an opening matching %q. Here are the closest available times:\n", d.TimeText)
	for i, s := range available {
		if i >= nearestOptionsShown {
			break
		}
		fmt.Fprintf(&sb, "- %s\n", s.Display())
	}
	sb.WriteString("Would any of these work for you?")
	return sb.String()
}

// slotTakenReply handles the snapshot-to-commit race: the chosen slot was
// booked by someone else while this conversation was confirming.
func slotTakenReply(d Directive, available []schedule.Slot, taken schedule.Slot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I'm sorry — the %s slot was just booked by another patient. ", taken.Start.Format("Monday, Jan 02 at 03:04 PM"))
	remaining := make([]schedule.Slot, 0, nearestOptionsShown)
	for _, s := range available {
		if s.Start.Equal(taken.Start) {
			continue
		}
		remaining = append(remaining, s)
		if len(remaining) >= nearestOptionsShown {
			break
		}
	}
	if len(remaining) == 0 {
		sb.WriteString("Would you like me to look at other days?")
		return sb.String()
	}
	sb.WriteString("Here are other available times:\n")
	for _, s := range remaining {
		fmt.Fprintf(&sb, "- %s\n", s.Display())
	}
	sb.WriteString("Would any of these work for you?")
	return sb.String()
}
