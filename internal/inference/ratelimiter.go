package inference

import (
	"context"
	"sync"
	"time"
)

// limiter is a token bucket refilled at rpm tokens per minute.
type limiter struct {
	rpm      int
	mu       sync.Mutex
	tokens   int
	lastFill time.Time
}

func newLimiter(rpm int) *limiter {
	return &limiter{rpm: rpm, tokens: rpm, lastFill: time.Now()}
}

func (l *limiter) wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := time.Now()
		elapsed := now.Sub(l.lastFill)

		refill := int(elapsed.Seconds() * float64(l.rpm) / 60.0)
		if refill > 0 {
			l.tokens += refill
			if l.tokens > l.rpm {
				l.tokens = l.rpm
			}
			l.lastFill = now
		}

		if l.tokens > 0 {
			l.tokens--
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// RateLimitedAnswerer wraps an Answerer with a requests-per-minute cap.
type RateLimitedAnswerer struct {
	answerer Answerer
	limiter  *limiter
}

// NewRateLimitedAnswerer allows at most rpm calls per minute to the
// underlying answerer.
func NewRateLimitedAnswerer(answerer Answerer, rpm int) Answerer {
	return &RateLimitedAnswerer{answerer: answerer, limiter: newLimiter(rpm)}
}

func (r *RateLimitedAnswerer) Name() string { return r.answerer.Name() }

func (r *RateLimitedAnswerer) Answer(ctx context.Context, question, material string) (*Answer, error) {
	if err := r.limiter.wait(ctx); err != nil {
		return nil, err
	}
	return r.answerer.Answer(ctx, question, material)
}

// RateLimitedSummarizer wraps a Summarizer with a requests-per-minute cap.
type RateLimitedSummarizer struct {
	summarizer Summarizer
	limiter    *limiter
}

// NewRateLimitedSummarizer allows at most rpm calls per minute to the
// underlying summarizer.
func NewRateLimitedSummarizer(summarizer Summarizer, rpm int) Summarizer {
	return &RateLimitedSummarizer{summarizer: summarizer, limiter: newLimiter(rpm)}
}

func (r *RateLimitedSummarizer) Name() string { return r.summarizer.Name() }

func (r *RateLimitedSummarizer) Summarize(ctx context.Context, text string) (*Summary, error) {
	if err := r.limiter.wait(ctx); err != nil {
		return nil, err
	}
	return r.summarizer.Summarize(ctx, text)
}
