package services

import (
	"testing"
	"time"

	"redhatters.link/botdata"
	"redhatters.link/models"
	"redhatters.link/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T) (*ChatService, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := NewChatService(NewChatbotService(), clk)
	svc.delayFn = func() time.Duration { return 1500 * time.Millisecond }
	t.Cleanup(svc.Shutdown)
	return svc, clk
}

func botMessages(transcript []models.ChatMessage) []models.ChatMessage {
	var out []models.ChatMessage
	for _, m := range transcript {
		if m.Sender == models.SenderBot && !m.Typing {
			out = append(out, m)
		}
	}
	return out
}

func TestSendShowsTypingThenResponse(t *testing.T) {
	svc, clk := newChatFixture(t)
	w := svc.Widget("p1", models.AudiencePublic)

	require.True(t, w.Send("hello"))

	transcript := w.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, models.SenderUser, transcript[0].Sender)
	assert.Equal(t, "hello", transcript[0].Text)
	assert.True(t, transcript[1].Typing)

	clk.Advance(1500 * time.Millisecond)

	transcript = w.Transcript()
	require.Len(t, transcript, 2, "placeholder replaced by the response")
	assert.False(t, transcript[1].Typing)
	require.NotNil(t, transcript[1].Response)
	assert.Equal(t, botdata.PublicResponses[botdata.TopicGreeting].Message, transcript[1].Text)
}

func TestSendRejectsEmptyInput(t *testing.T) {
	svc, _ := newChatFixture(t)
	w := svc.Widget("p1", models.AudiencePublic)

	assert.False(t, w.Send(""))
	assert.False(t, w.Send("   \t  "))
	assert.Empty(t, w.Transcript())
}

func TestRapidSendsAnswerInOrder(t *testing.T) {
	svc, clk := newChatFixture(t)
	w := svc.Widget("p1", models.AudiencePublic)

	require.True(t, w.Send("hello"))
	require.True(t, w.Send("how do I join?"))
	require.True(t, w.Send("contact details please"))

	// Only one response in flight; the rest wait their turn.
	assert.Empty(t, botMessages(w.Transcript()))

	clk.Advance(1500 * time.Millisecond)
	require.Len(t, botMessages(w.Transcript()), 1)

	clk.Advance(1500 * time.Millisecond)
	clk.Advance(1500 * time.Millisecond)

	bots := botMessages(w.Transcript())
	require.Len(t, bots, 3)
	assert.Equal(t, botdata.PublicResponses[botdata.TopicGreeting].Message, bots[0].Text)
	assert.Equal(t, botdata.PublicResponses["membership"].Message, bots[1].Text)
	assert.Equal(t, botdata.PublicResponses["contact"].Message, bots[2].Text)
}

func TestCloseCancelsPendingResponse(t *testing.T) {
	svc, clk := newChatFixture(t)
	w := svc.Widget("p1", models.AudiencePublic)

	require.True(t, w.Send("hello"))
	require.True(t, w.Send("events"))
	w.Close()

	// Placeholder gone, queue dropped; nothing arrives later.
	transcript := w.Transcript()
	require.Len(t, transcript, 2)
	for _, m := range transcript {
		assert.Equal(t, models.SenderUser, m.Sender)
	}

	clk.Advance(5 * time.Second)
	assert.Empty(t, botMessages(w.Transcript()))
}

func TestToggleVisibility(t *testing.T) {
	svc, _ := newChatFixture(t)
	w := svc.Widget("p1", models.AudienceMember)

	assert.False(t, w.IsOpen())
	assert.True(t, w.Toggle())
	assert.True(t, w.IsOpen())
	assert.False(t, w.Toggle())
}

func TestWidgetsAreIndependentPerAudience(t *testing.T) {
	svc, clk := newChatFixture(t)
	public := svc.Widget("p1", models.AudiencePublic)
	member := svc.Widget("p1", models.AudienceMember)
	require.NotSame(t, public, member)

	require.True(t, public.Send("hello"))
	require.True(t, member.Send("hello"))
	clk.Advance(1500 * time.Millisecond)

	assert.Equal(t, botdata.PublicResponses[botdata.TopicGreeting].Message, botMessages(public.Transcript())[0].Text)
	assert.Equal(t, botdata.MemberResponses[botdata.TopicGreeting].Message, botMessages(member.Transcript())[0].Text)

	// Same profile and audience: the instance is reused.
	assert.Same(t, public, svc.Widget("p1", models.AudiencePublic))
}
