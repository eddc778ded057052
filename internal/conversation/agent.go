// Package conversation orchestrates one scheduling turn: context retrieval,
// availability, generation, and booking resolution.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avalondental/scheduling-agent/internal/booking"
	"github.com/avalondental/scheduling-agent/internal/bookinglog"
	"github.com/avalondental/scheduling-agent/internal/catalog"
	"github.com/avalondental/scheduling-agent/internal/knowledge"
	"github.com/avalondental/scheduling-agent/internal/notify"
	"github.com/avalondental/scheduling-agent/internal/observability/metrics"
	"github.com/avalondental/scheduling-agent/internal/schedule"
	"github.com/avalondental/scheduling-agent/pkg/logging"
)

const retryLaterReply = "I'm sorry, something went wrong on our end. Please try again in a moment."

// TurnResult is the outcome of one conversational turn.
type TurnResult struct {
	Reply   string
	Outcome booking.Outcome
}

// Agent composes context, availability, and history into a prompt, invokes
// the generator, and pipes the result through the booking resolver. It owns
// no durable state: every turn is computed fresh from the history it is
// given, so the calling layer owns session storage.
type Agent struct {
	llm       LLMClient
	retriever *knowledge.Retriever
	slots     *schedule.Generator
	resolver  *booking.Resolver

	auditLog  *bookinglog.Repository
	emailer   notify.EmailSender
	frontDesk notify.EmailMessage

	metrics *metrics.SchedulingMetrics
	logger  *logging.Logger

	horizonDays int
	llmTimeout  time.Duration
	maxTokens   int32
	temperature float32
}

// AgentConfig wires an Agent's collaborators. AuditLog, Emailer, and Metrics
// are optional.
type AgentConfig struct {
	LLM       LLMClient
	Retriever *knowledge.Retriever
	Slots     *schedule.Generator
	Resolver  *booking.Resolver

	AuditLog       *bookinglog.Repository
	Emailer        notify.EmailSender
	FrontDeskEmail string
	FrontDeskName  string

	Metrics *metrics.SchedulingMetrics
	Logger  *logging.Logger

	HorizonDays int
	LLMTimeout  time.Duration
	MaxTokens   int32
	Temperature float32
}

// NewAgent creates the per-turn orchestrator.
func NewAgent(cfg AgentConfig) *Agent {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = schedule.DefaultHorizonDays
	}
	llmTimeout := cfg.LLMTimeout
	if llmTimeout <= 0 {
		llmTimeout = 30 * time.Second
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Agent{
		llm:       cfg.LLM,
		retriever: cfg.Retriever,
		slots:     cfg.Slots,
		resolver:  cfg.Resolver,
		auditLog:  cfg.AuditLog,
		emailer:   cfg.Emailer,
		frontDesk: notify.EmailMessage{
			To:     cfg.FrontDeskEmail,
			ToName: cfg.FrontDeskName,
		},
		metrics:     cfg.Metrics,
		logger:      logger,
		horizonDays: horizon,
		llmTimeout:  llmTimeout,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}
}

// Respond handles one user turn. History is passed by value; the agent never
// stores it.
func (a *Agent) Respond(ctx context.Context, history []ChatMessage, userMessage string) (TurnResult, error) {
	fullText := concatenate(history, userMessage)

	service := catalog.InferService(fullText)
	location := catalog.InferLocation(fullText)

	slots, err := a.slots.ListAvailable(ctx, location, a.horizonDays, service.Duration)
	if err != nil {
		a.logger.Error("availability fetch failed", "error", err, "location", location)
		a.observeOutcome(string(booking.OutcomeRemoteFailure))
		return TurnResult{Reply: retryLaterReply, Outcome: booking.OutcomeRemoteFailure}, err
	}
	availability := schedule.FormatForPrompt(slots)

	histLines := make([]string, 0, len(history))
	for _, m := range history {
		histLines = append(histLines, m.Content)
	}
	officeContext, err := a.retriever.Context(ctx, userMessage, histLines)
	if err != nil {
		// Degrade to no context rather than failing the turn.
		a.logger.Warn("context retrieval failed", "error", err)
		officeContext = ""
	}

	systemPrompt := buildSystemPrompt(a.slots.Now(), officeContext, service, availability, a.horizonDays)

	messages := make([]ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: ChatRoleUser, Content: userMessage})

	llmCtx, cancel := context.WithTimeout(ctx, a.llmTimeout)
	defer cancel()

	start := time.Now()
	resp, err := a.llm.Complete(llmCtx, LLMRequest{
		System:      []string{systemPrompt},
		Messages:    messages,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if a.metrics != nil {
		a.metrics.ObserveLLMRequest(statusLabel(err), time.Since(start).Seconds())
	}
	if err != nil {
		a.logger.Error("generator call failed", "error", err)
		a.observeOutcome(string(booking.OutcomeRemoteFailure))
		return TurnResult{Reply: retryLaterReply, Outcome: booking.OutcomeRemoteFailure}, err
	}

	resolution := a.resolver.ResolveAndCommit(ctx, resp.Text)
	a.observeOutcome(string(resolution.Outcome))

	if resolution.Outcome == booking.OutcomeCommitted {
		a.recordBooking(ctx, resolution)
	}

	return TurnResult{Reply: resolution.Reply, Outcome: resolution.Outcome}, nil
}

// recordBooking writes the audit log entry and front-desk email for a
// committed booking. Both are best-effort: the calendar write already
// succeeded, so failures here are logged, not surfaced.
func (a *Agent) recordBooking(ctx context.Context, res booking.Resolution) {
	d := res.Directive
	if d == nil || res.Slot == nil {
		return
	}

	if a.auditLog != nil {
		_, err := a.auditLog.Insert(ctx, bookinglog.Entry{
			PatientName: d.PatientName,
			Service:     d.Service,
			Location:    d.Location,
			StartsAt:    res.Slot.Start,
			DurationMin: int(res.Slot.Duration / time.Minute),
			EventID:     res.EventID,
		})
		if err != nil {
			a.logger.Error("booking audit log write failed", "error", err)
		}
	}

	if a.emailer != nil && a.frontDesk.To != "" {
		msg := a.frontDesk
		msg.Subject = fmt.Sprintf("New appointment: %s - %s", d.Service, d.PatientName)
		msg.Body = fmt.Sprintf("Patient: %s\nService: %s\nLocation: %s\nTime: %s\n",
			d.PatientName, d.Service, d.Location, res.Slot.Display())
		if err := a.emailer.Send(ctx, msg); err != nil {
			a.logger.Error("front desk notification failed", "error", err)
		}
	}
}

func (a *Agent) observeOutcome(outcome string) {
	if a.metrics != nil {
		a.metrics.ObserveOutcome(outcome)
	}
}

func concatenate(history []ChatMessage, userMessage string) string {
	var sb strings.Builder
	for _, m := range history {
		sb.WriteString(m.Content)
		sb.WriteString(" ")
	}
	sb.WriteString(userMessage)
	return sb.String()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
