package inference

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/searchright/talent-tagger/internal/alias"
	"github.com/searchright/talent-tagger/internal/types"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

type retrieverCall struct {
	company string
	start   *time.Time
	end     *time.Time
	topK    int
}

type fakeRetriever struct {
	calls []retrieverCall
	docs  []vectorstore.Document
	err   error
}

func (f *fakeRetriever) MostSimilar(_ context.Context, companyName string, startDate, endDate *time.Time, topK int) ([]vectorstore.Document, error) {
	f.calls = append(f.calls, retrieverCall{company: companyName, start: startDate, end: endDate, topK: topK})
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

type fakeClient struct {
	calls    int
	prompts  []string
	response string
	err      error
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestService(retriever *fakeRetriever, client *fakeClient) *Service {
	return NewService(alias.NewResolver(alias.DefaultTable()), retriever, client, zap.NewNop())
}

func TestRun_EndToEnd(t *testing.T) {
	payload := testPayload(t, `{
		"positions": [{
			"title": "Backend Engineer",
			"companyName": "토스",
			"startEndDate": {"start": {"year": 2019, "month": 2}, "end": {"year": 2021, "month": 4}}
		}]
	}`)

	published := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	retriever := &fakeRetriever{docs: []vectorstore.Document{newsDoc("비바리퍼블리카", "시리즈 F 투자 유치", published)}}
	client := &fakeClient{response: `{"tags": ["A", "B"]}`}

	result, err := newTestService(retriever, client).Run(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, result.Tags)

	require.Len(t, retriever.calls, 1)
	call := retriever.calls[0]
	assert.Equal(t, "비바리퍼블리카", call.company)
	require.NotNil(t, call.start)
	require.NotNil(t, call.end)
	assert.Equal(t, time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC), *call.start)
	assert.Equal(t, time.Date(2021, 4, 30, 0, 0, 0, 0, time.UTC), *call.end)
	assert.Equal(t, 3, call.topK)

	require.Equal(t, 1, client.calls)
	assert.Contains(t, client.prompts[0], "시리즈 F 투자 유치")
}

func TestRun_EmptyPositionsFailsBeforeAnyCall(t *testing.T) {
	retriever := &fakeRetriever{}
	client := &fakeClient{response: `{"tags": []}`}

	_, err := newTestService(retriever, client).Run(context.Background(), &types.ResumePayload{})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Empty(t, retriever.calls)
	assert.Zero(t, client.calls)
}

func TestRun_OpenEndedPositionUsesClock(t *testing.T) {
	payload := testPayload(t, `{
		"positions": [{
			"title": "CTO",
			"companyName": "searchright",
			"startEndDate": {"start": {"year": 2023, "month": 6}}
		}]
	}`)

	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	retriever := &fakeRetriever{}
	client := &fakeClient{response: `{"tags": []}`}
	svc := newTestService(retriever, client).WithClock(func() time.Time { return today })

	_, err := svc.Run(context.Background(), payload)
	require.NoError(t, err)

	require.Len(t, retriever.calls, 1)
	assert.Equal(t, "서치라이트", retriever.calls[0].company)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), *retriever.calls[0].start)
	assert.Equal(t, today, *retriever.calls[0].end)
}

func TestRun_PoolsEvidenceAcrossPositions(t *testing.T) {
	payload := testPayload(t, `{
		"positions": [
			{"title": "A", "companyName": "토스", "startEndDate": {"start": {"year": 2016, "month": 1}, "end": {"year": 2019, "month": 12}}},
			{"title": "B", "companyName": "요기요", "startEndDate": {"start": {"year": 2020, "month": 1}, "end": {"year": 2022, "month": 6}}}
		]
	}`)

	published := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	retriever := &fakeRetriever{docs: []vectorstore.Document{newsDoc("X", "shared doc", published)}}
	client := &fakeClient{response: `{"tags": []}`}

	_, err := newTestService(retriever, client).Run(context.Background(), payload)
	require.NoError(t, err)

	require.Len(t, retriever.calls, 2)
	assert.Equal(t, "비바리퍼블리카", retriever.calls[0].company)
	assert.Equal(t, "위대한상상", retriever.calls[1].company)

	// Both retrievals returned the same document; it appears twice, not deduplicated.
	require.Equal(t, 1, client.calls)
	assert.Equal(t, 2, strings.Count(client.prompts[0], "shared doc..."))
}

func TestRun_NoEmbeddingErrorPropagates(t *testing.T) {
	payload := testPayload(t, `{"positions": [{"title": "T", "companyName": "UnknownCorp", "startEndDate": {"start": {"year": 2020, "month": 1}}}]}`)

	retriever := &fakeRetriever{err: &vectorstore.NoEmbeddingError{CompanyName: "UnknownCorp"}}
	client := &fakeClient{}

	_, err := newTestService(retriever, client).Run(context.Background(), payload)

	var noEmb *vectorstore.NoEmbeddingError
	require.True(t, errors.As(err, &noEmb))
	assert.Equal(t, "UnknownCorp", noEmb.CompanyName)
	assert.Zero(t, client.calls)
}

func TestRun_MalformedResponsePropagates(t *testing.T) {
	payload := testPayload(t, `{"positions": [{"title": "T", "companyName": "C", "startEndDate": {"start": {"year": 2020, "month": 1}}}]}`)

	retriever := &fakeRetriever{}
	client := &fakeClient{response: "I cannot answer that."}

	_, err := newTestService(retriever, client).Run(context.Background(), payload)

	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "I cannot answer that.", malformed.RawText)
}

func TestRun_TransportErrorWrapped(t *testing.T) {
	payload := testPayload(t, `{"positions": [{"title": "T", "companyName": "C", "startEndDate": {"start": {"year": 2020, "month": 1}}}]}`)

	transport := errors.New("connection reset")
	retriever := &fakeRetriever{}
	client := &fakeClient{err: transport}

	_, err := newTestService(retriever, client).Run(context.Background(), payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, transport)
}
