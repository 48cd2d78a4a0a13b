package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
)

// fakeClient records prompts and replies with a canned answer.
type fakeClient struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (f *fakeClient) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeClient) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompts[len(f.prompts)-1]
}

func newService(c *fakeClient, now time.Time) *Service {
	s := New(c, nil)
	s.now = func() time.Time { return now }
	return s
}

var december = time.Date(2025, time.December, 3, 10, 0, 0, 0, time.UTC)

func manyLogs(n int) []entities.LogRecord {
	out := make([]entities.LogRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.LogRecord{ID: fmt.Sprint(i), Date: "2025-01-01", Type: "labor", BlockID: "A", CreatedAt: int64(i)})
	}
	return out
}

// ------------------------------------------------------------
// Insights
// ------------------------------------------------------------

func TestGetInsights_PromptContent(t *testing.T) {
	c := &fakeClient{reply: "all good"}
	a := newService(c, december).GetInsights(context.Background(), catalog.SeedLogs(), entities.LangEN)

	assert.Equal(t, "all good", a.Text)
	assert.NotEmpty(t, a.RequestID)

	p := c.lastPrompt()
	assert.Contains(t, p, "Current Date: Wednesday, December 3, 2025")
	assert.Contains(t, p, "Current Month: 12")
	assert.Contains(t, p, "Current Stage: Winter (Nov-Feb)")
	assert.Contains(t, p, "Respond in English.")
	assert.Contains(t, p, `"blockId":"BLOCK A"`)
}

func TestGetInsights_TurkishDirective(t *testing.T) {
	c := &fakeClient{reply: "tamam"}
	newService(c, december).GetInsights(context.Background(), nil, entities.LangTR)
	p := c.lastPrompt()
	assert.Contains(t, p, "Respond strictly in Turkish language.")
	assert.Contains(t, p, "3 Aralık 2025 Çarşamba")
}

func TestGetInsights_SendsFiftyNewest(t *testing.T) {
	c := &fakeClient{reply: "ok"}
	logs := manyLogs(60)
	newService(c, december).GetInsights(context.Background(), logs, entities.LangEN)

	p := c.lastPrompt()
	assert.Equal(t, RecentLimit, strings.Count(p, `"createdAt":`))
	assert.Contains(t, p, `"id":"59"`)
	assert.NotContains(t, p, `"id":"9",`)
	// input order untouched
	assert.Equal(t, "0", logs[0].ID)
}

func TestRecent_OrdersByCreatedAtDesc(t *testing.T) {
	got := Recent(catalog.SeedLogs(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestGetInsights_Fallbacks(t *testing.T) {
	empty := newService(&fakeClient{}, december)
	assert.Equal(t, "Unable to generate insights at this time.", empty.GetInsights(context.Background(), nil, entities.LangEN).Text)
	assert.Equal(t, "Şu anda analiz oluşturulamıyor.", empty.GetInsights(context.Background(), nil, entities.LangTR).Text)

	failing := newService(&fakeClient{err: errors.New("boom")}, december)
	assert.Equal(t, "Service temporarily unavailable.", failing.GetInsights(context.Background(), nil, entities.LangEN).Text)
	assert.Equal(t, "Servis geçici olarak kullanılamıyor.", failing.GetInsights(context.Background(), nil, entities.LangTR).Text)
}

// ------------------------------------------------------------
// Chat
// ------------------------------------------------------------

func TestChat_PromptCarriesQuestionAndAllLogs(t *testing.T) {
	c := &fakeClient{reply: "water less"}
	logs := manyLogs(60)
	a := newService(c, december).Chat(context.Background(), logs, "How much did I irrigate?", entities.LangTR)

	assert.Equal(t, "water less", a.Text)
	p := c.lastPrompt()
	assert.Contains(t, p, `User Question: "How much did I irrigate?"`)
	assert.Contains(t, p, "Current Date: 3 Aralık 2025\n")
	assert.Contains(t, p, "Respond in Turkish.")
	assert.Equal(t, 60, strings.Count(p, `"createdAt":`))
}

func TestChat_Fallbacks(t *testing.T) {
	empty := newService(&fakeClient{}, december)
	assert.Equal(t, "I couldn't process that request.", empty.Chat(context.Background(), nil, "q", entities.LangEN).Text)

	failing := newService(&fakeClient{err: errors.New("boom")}, december)
	assert.Equal(t, "I encountered an error trying to answer your question.", failing.Chat(context.Background(), nil, "q", entities.LangEN).Text)
	assert.Equal(t, "Sorunuzu yanıtlarken bir hatayla karşılaştım.", failing.Chat(context.Background(), nil, "q", entities.LangTR).Text)
}

// ------------------------------------------------------------
// Sequencing
// ------------------------------------------------------------

// gatedClient blocks the first call until release is closed.
type gatedClient struct {
	first   sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedClient) Generate(ctx context.Context, prompt string) (string, error) {
	blocked := false
	g.first.Do(func() { blocked = true })
	if blocked {
		close(g.entered)
		<-g.release
		return "old", nil
	}
	return "new", nil
}

func TestSession_OlderReplyIsStale(t *testing.T) {
	g := &gatedClient{entered: make(chan struct{}), release: make(chan struct{})}
	sess := NewSession(newService(&fakeClient{}, december))
	sess.svc.client = g

	oldReply := make(chan Reply, 1)
	go func() { oldReply <- sess.Chat(context.Background(), nil, "first", entities.LangEN) }()
	<-g.entered

	newer := sess.Chat(context.Background(), nil, "second", entities.LangEN)
	close(g.release)
	older := <-oldReply

	assert.Equal(t, "new", newer.Text)
	assert.False(t, newer.Stale)
	assert.Equal(t, "old", older.Text)
	assert.True(t, older.Stale)
	assert.Less(t, older.Seq, newer.Seq)
}

func TestSequencer_ChannelsAreIndependent(t *testing.T) {
	s := NewSequencer()
	a := s.Issue(ChannelInsights)
	b := s.Issue(ChannelChat)
	assert.True(t, s.IsCurrent(ChannelInsights, a))
	assert.True(t, s.IsCurrent(ChannelChat, b))
	s.Issue(ChannelChat)
	assert.True(t, s.IsCurrent(ChannelInsights, a))
	assert.False(t, s.IsCurrent(ChannelChat, b))
}
