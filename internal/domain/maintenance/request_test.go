package maintenance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *Request {
	t.Helper()
	request, err := NewRequest(uuid.New(), uuid.New(), uuid.New(),
		"Leaking kitchen tap", "Tap drips continuously", CategoryPlumbing, PriorityMedium)
	require.NoError(t, err)
	return request
}

func TestNewRequest(t *testing.T) {
	request := newTestRequest(t)

	assert.Equal(t, StatusPending, request.Status)
	assert.True(t, request.IsActive())
	assert.False(t, request.IsClosed())
}

func TestNewRequest_Validation(t *testing.T) {
	_, err := NewRequest(uuid.Nil, uuid.New(), uuid.New(), "Title", "", CategoryPlumbing, PriorityLow)
	assert.Error(t, err)

	_, err = NewRequest(uuid.New(), uuid.New(), uuid.New(), "  ", "", CategoryPlumbing, PriorityLow)
	assert.Error(t, err)

	_, err = NewRequest(uuid.New(), uuid.New(), uuid.New(), "Title", "", Category("gardening"), PriorityLow)
	assert.Error(t, err)

	_, err = NewRequest(uuid.New(), uuid.New(), uuid.New(), "Title", "", CategoryPlumbing, Priority("asap"))
	assert.Error(t, err)
}

func TestRequest_Lifecycle(t *testing.T) {
	request := newTestRequest(t)

	estimate := decimal.NewFromInt(3000)
	require.NoError(t, request.Assign("Joseph Kamau", &estimate))
	assert.Equal(t, "Joseph Kamau", request.AssignedTo)

	require.NoError(t, request.Start())
	assert.Equal(t, StatusInProgress, request.Status)

	actual := decimal.NewFromInt(3500)
	completedAt := time.Now()
	require.NoError(t, request.Complete(completedAt, &actual))

	assert.Equal(t, StatusCompleted, request.Status)
	assert.True(t, request.IsClosed())
	require.NotNil(t, request.CompletedDate)
	assert.Equal(t, completedAt, *request.CompletedDate)
	require.NotNil(t, request.ActualCost)
	assert.True(t, request.ActualCost.Equal(actual))
}

func TestRequest_Start_RequiresPending(t *testing.T) {
	request := newTestRequest(t)
	require.NoError(t, request.Start())

	assert.Error(t, request.Start())
}

func TestRequest_Complete_AlreadyClosed(t *testing.T) {
	request := newTestRequest(t)
	require.NoError(t, request.Cancel())

	assert.Error(t, request.Complete(time.Now(), nil))
	assert.Equal(t, StatusCancelled, request.Status)
}

func TestRequest_Assign_ClosedRequest(t *testing.T) {
	request := newTestRequest(t)
	require.NoError(t, request.Complete(time.Now(), nil))

	assert.Error(t, request.Assign("Joseph Kamau", nil))
}

func TestRequest_Assign_NegativeEstimate(t *testing.T) {
	request := newTestRequest(t)

	negative := decimal.NewFromInt(-1)
	assert.Error(t, request.Assign("Joseph Kamau", &negative))
}

func TestRequest_Cancel_AlreadyClosed(t *testing.T) {
	request := newTestRequest(t)
	require.NoError(t, request.Cancel())

	assert.Error(t, request.Cancel())
}
