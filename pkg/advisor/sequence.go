package advisor

import (
	"context"
	"sync"

	"orchardlog/entities"
)

type Channel string

const (
	ChannelInsights Channel = "insights"
	ChannelChat     Channel = "chat"
)

// Sequencer issues increasing tickets per channel and remembers the newest one.
type Sequencer struct {
	mu     sync.Mutex
	latest map[Channel]uint64
}

func NewSequencer() *Sequencer { return &Sequencer{latest: map[Channel]uint64{}} }

func (s *Sequencer) Issue(ch Channel) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[ch]++
	return s.latest[ch]
}

// IsCurrent is false once a newer ticket exists on ch.
func (s *Sequencer) IsCurrent(ch Channel, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[ch] == seq
}

// Reply is Stale when a newer request on the same channel was issued before
// this one completed; callers should drop it.
type Reply struct {
	Seq       uint64 `json:"seq"`
	RequestID string `json:"requestId"`
	Text      string `json:"text"`
	Stale     bool   `json:"stale"`
}

// Session pairs a Service with one Sequencer, i.e. one user's view.
type Session struct {
	svc *Service
	seq *Sequencer
}

func NewSession(svc *Service) *Session {
	return &Session{svc: svc, seq: NewSequencer()}
}

func (s *Session) Insights(ctx context.Context, logs []entities.LogRecord, lang entities.Language) Reply {
	n := s.seq.Issue(ChannelInsights)
	a := s.svc.GetInsights(ctx, logs, lang)
	return Reply{Seq: n, RequestID: a.RequestID, Text: a.Text, Stale: !s.seq.IsCurrent(ChannelInsights, n)}
}

func (s *Session) Chat(ctx context.Context, logs []entities.LogRecord, question string, lang entities.Language) Reply {
	n := s.seq.Issue(ChannelChat)
	a := s.svc.Chat(ctx, logs, question, lang)
	return Reply{Seq: n, RequestID: a.RequestID, Text: a.Text, Stale: !s.seq.IsCurrent(ChannelChat, n)}
}
