package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"scheme-sense.backend/internal/domain/entities"
	domainerrors "scheme-sense.backend/internal/domain/errors"
	"scheme-sense.backend/pkg/crypto"
	"scheme-sense.backend/pkg/logger"
	"scheme-sense.backend/pkg/metrics"
)

// SystemInstruction is the fixed persona sent with every advisory request.
const SystemInstruction = `You are "SchemeSense AI", a specialized assistant for government welfare schemes in Bihar, India.
Your goal is to help citizens understand eligibility, application processes, and benefits.
You have access to 38 districts and 534 blocks.
Always be polite, professional, and clear.
If a user provides their profile (age, income, sector), use it to give personalized advice.
Keep responses concise and easy to understand for someone in a rural or semi-urban area.`

// Fallback texts returned instead of an upstream error. Advisory output is
// informational only, so a broken upstream never becomes a hard failure.
const (
	FallbackNoVerdict   = "Please visit your local Block office for verification."
	FallbackUnavailable = "Verification service is currently busy. Please try again later."
)

// AdvisoryClient is the upstream generative-language service
type AdvisoryClient interface {
	GenerateAdvice(ctx context.Context, systemInstruction, prompt string) (string, error)
	OpenConversation(ctx context.Context, systemInstruction string) (AdvisoryConversation, error)
}

// AdvisoryConversation is a stateful multi-turn chat with the upstream
// service. SendMessage delivers response text incrementally: onChunk runs for
// each partial-text chunk in arrival order and must return before the next
// chunk is delivered. Chunks already delivered stand even if the stream later
// fails or the caller abandons it.
type AdvisoryConversation interface {
	SendMessage(ctx context.Context, message string, onChunk func(text string) error) error
	Close()
}

type advisorySession struct {
	conversation AdvisoryConversation
	expiresAt    time.Time
}

// AdvisoryUsecase bridges profiles and schemes to the advisory service. Each
// conversation is an owned session with an explicit create/send/close
// lifecycle; idle sessions are expired by the janitor job.
type AdvisoryUsecase struct {
	client     AdvisoryClient
	sessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*advisorySession
}

// NewAdvisoryUsecase creates a new advisory usecase
func NewAdvisoryUsecase(client AdvisoryClient, sessionTTL time.Duration) *AdvisoryUsecase {
	return &AdvisoryUsecase{
		client:     client,
		sessionTTL: sessionTTL,
		sessions:   make(map[string]*advisorySession),
	}
}

// GetAdvice returns a short eligibility verdict for the profile and scheme.
// It never returns an error: upstream failures degrade to a static fallback.
func (u *AdvisoryUsecase) GetAdvice(ctx context.Context, profile *entities.UserProfile, scheme *entities.Scheme) string {
	details, err := json.Marshal(profile.SectorDetails)
	if err != nil {
		details = []byte("{}")
	}

	prompt := fmt.Sprintf(`Analyze eligibility for this citizen:

USER PROFILE:
- District: %s, Block: %s
- Sector: %s
- Sector Details: %s
- Annual Income: ₹%d
- Education: %s

SCHEME TO EVALUATE:
- Title: %s
- Benefit: %s
- Rule: ages %d-%d, income up to ₹%d

Provide a 2-sentence verdict on if they are likely eligible and one key document they will need.`,
		profile.District, profile.Block,
		profile.Sector, details,
		profile.Income, profile.Education,
		scheme.Title, scheme.Benefit,
		scheme.Rule.MinAge, scheme.Rule.MaxAge, scheme.Rule.MaxIncome,
	)

	text, err := u.client.GenerateAdvice(ctx, SystemInstruction, prompt)
	if err != nil {
		logger.Warn(ctx, "Advisory service call failed", zap.Error(err))
		metrics.AdvisoryFallbacks.Inc()
		return FallbackUnavailable
	}
	if text == "" {
		metrics.AdvisoryFallbacks.Inc()
		return FallbackNoVerdict
	}
	return text
}

// CreateConversation opens a new chat session seeded with the persona plus
// optional user context and returns its ID. The caller owns the session.
func (u *AdvisoryUsecase) CreateConversation(ctx context.Context, profile *entities.UserProfile) (string, error) {
	userContext := "The user has not logged in yet."
	if profile != nil {
		userContext = fmt.Sprintf("The user is %s, a %s from %s, %s. Income: ₹%d, Category: %s.",
			profile.FullName, profile.Sector, profile.Block, profile.District,
			profile.Income, profile.Caste)
	}

	conversation, err := u.client.OpenConversation(ctx, SystemInstruction+"\n\nUser Context: "+userContext)
	if err != nil {
		return "", domainerrors.ErrAdvisoryUnavailable
	}

	id, err := crypto.GenerateConversationID()
	if err != nil {
		conversation.Close()
		return "", err
	}

	u.mu.Lock()
	u.sessions[id] = &advisorySession{
		conversation: conversation,
		expiresAt:    time.Now().Add(u.sessionTTL),
	}
	u.mu.Unlock()

	return id, nil
}

// SendMessage streams the reply to a user message through onChunk. Sending
// refreshes the session's idle deadline.
func (u *AdvisoryUsecase) SendMessage(ctx context.Context, conversationID, message string, onChunk func(text string) error) error {
	u.mu.Lock()
	session, ok := u.sessions[conversationID]
	if ok {
		session.expiresAt = time.Now().Add(u.sessionTTL)
	}
	u.mu.Unlock()

	if !ok {
		return domainerrors.ErrNotFound
	}

	if err := session.conversation.SendMessage(ctx, message, onChunk); err != nil {
		logger.Warn(ctx, "Advisory stream failed", zap.Error(err))
		metrics.AdvisoryFallbacks.Inc()
		// Delivered chunks stand; surface the break so the caller can
		// append the fallback note.
		return domainerrors.ErrAdvisoryUnavailable
	}
	return nil
}

// CloseConversation ends a session and releases its upstream chat
func (u *AdvisoryUsecase) CloseConversation(conversationID string) error {
	u.mu.Lock()
	session, ok := u.sessions[conversationID]
	if ok {
		delete(u.sessions, conversationID)
	}
	u.mu.Unlock()

	if !ok {
		return domainerrors.ErrNotFound
	}
	session.conversation.Close()
	return nil
}

// ExpireIdleSessions closes every session idle past its deadline and returns
// how many were dropped. Called periodically by the janitor job.
func (u *AdvisoryUsecase) ExpireIdleSessions(now time.Time) int {
	u.mu.Lock()
	var expired []*advisorySession
	for id, session := range u.sessions {
		if now.After(session.expiresAt) {
			expired = append(expired, session)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, session := range expired {
		session.conversation.Close()
	}
	return len(expired)
}

// SessionCount returns the number of live conversations
func (u *AdvisoryUsecase) SessionCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.sessions)
}
