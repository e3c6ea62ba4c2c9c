package encoder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/sempress/internal/analyze"
	"github.com/fyrsmithlabs/sempress/internal/config"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

const billingTranscript = `Customer: Maria Lopez
Agent: Thank you for calling, how can I help you today?
Customer: I was charged twice on my last invoice. This is unacceptable!
Agent: I am sorry about that. Let me verify your account first.
Customer: My account number is 88231.
Agent: I have processed your refund, reference number R-2231. It should appear within 3-5 business days.
Customer: Thank you, I appreciate it.`

func newEnglishTranscriptEncoder(t *testing.T, opts config.TranscriptOptions) *TranscriptEncoder {
	t.Helper()
	table, err := vocab.NewTable("en", nil)
	require.NoError(t, err)
	analyzer, err := analyze.New("en")
	require.NoError(t, err)
	if opts.MaxActions == 0 {
		opts.MaxActions = 10
	}
	return NewTranscriptEncoder(table, analyzer, opts)
}

func TestTranscriptEncoder_BillingDispute(t *testing.T) {
	e := newEnglishTranscriptEncoder(t, config.TranscriptOptions{})

	compressed, err := e.Encode(context.Background(), billingTranscript)
	require.NoError(t, err)

	assert.Contains(t, compressed, "[CALL:PHONE]")
	assert.Contains(t, compressed, "[CUSTOMER:MARIA_LOPEZ]")
	assert.Contains(t, compressed, "ACC=88231")
	assert.Contains(t, compressed, "[ISSUE:BILLING_DISPUTE:SEV=HIGH]")
	assert.Equal(t, 1, strings.Count(compressed, "[ISSUE:"), "exactly one issue token")

	assert.Contains(t, compressed, "[ACTION:VERIFY]")
	assert.Contains(t, compressed, "[ACTION:REFUND:RESULT=OK:REF=R-2231:ETA=3-5d]")
	assert.Contains(t, compressed, "[RESOLUTION:RESOLVED:ETA=3-5d]")
	assert.Contains(t, compressed, "[SENTIMENT:ANGRY→SATISFIED]")

	// Actions keep chronological order.
	assert.Less(t,
		strings.Index(compressed, "[ACTION:VERIFY]"),
		strings.Index(compressed, "[ACTION:REFUND"))
}

func TestTranscriptEncoder_NoIssueDegradesToInquiry(t *testing.T) {
	e := newEnglishTranscriptEncoder(t, config.TranscriptOptions{})

	compressed, err := e.Encode(context.Background(),
		"Agent: Hello, how can I help?\nCustomer: Just checking my plan details.\nAgent: Sure, one moment.")
	require.NoError(t, err)
	assert.Contains(t, compressed, "[ISSUE:INQUIRY:SEV=LOW]")
}

func TestTranscriptEncoder_UnresolvedWithoutClosingStatus(t *testing.T) {
	e := newEnglishTranscriptEncoder(t, config.TranscriptOptions{})

	compressed, err := e.Encode(context.Background(),
		"Agent: Hello, how can I help?\nCustomer: I was charged twice on my invoice.\nAgent: I see, let me look into it.")
	require.NoError(t, err)
	assert.Contains(t, compressed, "[ISSUE:BILLING_DISPUTE")
	assert.Contains(t, compressed, "[RESOLUTION:UNRESOLVED]")
}

func TestTranscriptEncoder_CustomerNameScopedToCustomerTurns(t *testing.T) {
	e := newEnglishTranscriptEncoder(t, config.TranscriptOptions{})

	// A mislabeled greeting from the agent must not become the customer.
	an := &analyze.Analysis{Entities: []analyze.Entity{{Text: "Hello", Label: "PERSON"}}}
	tok := e.customerToken(
		"Agent: Hello, how can I help?\nCustomer: I need my plan details.",
		"I need my plan details.", an)
	assert.True(t, tok.Empty())

	// The agent's own name is skipped; the customer's name wins.
	an = &analyze.Analysis{Entities: []analyze.Entity{
		{Text: "Steve", Label: "PERSON"},
		{Text: "Maria Lopez", Label: "PERSON"},
	}}
	tok = e.customerToken(
		"Agent: This is Steve, how can I help?\nCustomer: Hi, this is Maria Lopez.",
		"Hi, this is Maria Lopez.", an)
	assert.Equal(t, "[CUSTOMER:MARIA_LOPEZ]", tok.String())
}

func TestTranscriptEncoder_NeutralSentimentDefault(t *testing.T) {
	e := newEnglishTranscriptEncoder(t, config.TranscriptOptions{})

	compressed, err := e.Encode(context.Background(),
		"Agent: Hello.\nCustomer: I need my plan details.\nAgent: Here they are.")
	require.NoError(t, err)
	assert.Contains(t, compressed, "[SENTIMENT:NEUTRAL→NEUTRAL]")
}

func TestTranscriptEncoder_IntermediateSentiment(t *testing.T) {
	transcript := `Agent: Hello.
Customer: This is unacceptable, I am furious about this bill!
Customer: I am so confused, what does that mean?
Customer: Thank you, that works.`

	collapsed := newEnglishTranscriptEncoder(t, config.TranscriptOptions{})
	compressed, err := collapsed.Encode(context.Background(), transcript)
	require.NoError(t, err)
	assert.Contains(t, compressed, "[SENTIMENT:ANGRY→SATISFIED]")

	full := newEnglishTranscriptEncoder(t, config.TranscriptOptions{IntermediateSentiment: true})
	compressed, err = full.Encode(context.Background(), transcript)
	require.NoError(t, err)
	assert.Contains(t, compressed, "[SENTIMENT:ANGRY→CONFUSED→SATISFIED]")
}

func TestTranscriptEncoder_MaxActionsCap(t *testing.T) {
	e := newEnglishTranscriptEncoder(t, config.TranscriptOptions{MaxActions: 1})

	compressed, err := e.Encode(context.Background(), billingTranscript)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(compressed, "[ACTION:"))
	assert.Contains(t, compressed, "[ACTION:VERIFY]", "earliest action survives the cap")
}

func TestParseTurns(t *testing.T) {
	turns, preamble := parseTurns("Call duration: 12 minutes\nAgent: Hi there.\nCustomer: Hello.\nstill the customer talking\nAgent: Bye.")
	assert.Equal(t, "Call duration: 12 minutes", preamble)
	require.Len(t, turns, 3)
	assert.Equal(t, speakerAgent, turns[0].speaker)
	assert.Equal(t, speakerCustomer, turns[1].speaker)
	assert.Equal(t, "Hello. still the customer talking", turns[1].text)
}

func TestFindDuration(t *testing.T) {
	assert.Equal(t, "12m", findDuration("Call duration: 12 minutes"))
	assert.Equal(t, "1h", findDuration("the call lasted 1 hour"))
	assert.Equal(t, "20m", findDuration("a 20-minute call with support"))
	assert.Equal(t, "", findDuration("no timing info"))
}

func TestFindETA(t *testing.T) {
	assert.Equal(t, "3-5d", findETA("within 3-5 business days"))
	assert.Equal(t, "24h", findETA("in 24 hours"))
	assert.Equal(t, "2w", findETA("within 2 weeks"))
	assert.Equal(t, "", findETA("sometime soon"))
}
