package billing

import (
	"testing"
	"time"

	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	payment, err := NewPayment(uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(45000), time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)
	return payment
}

func TestNewPayment(t *testing.T) {
	payment := newTestPayment(t)

	assert.Equal(t, PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.PaidDate)
	assert.Nil(t, payment.Penalty)
}

func TestNewPayment_Validation(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)

	_, err := NewPayment(uuid.Nil, uuid.New(), uuid.New(), decimal.NewFromInt(100), due)
	assert.Error(t, err)

	_, err = NewPayment(uuid.New(), uuid.New(), uuid.New(), decimal.Zero, due)
	assert.Error(t, err)

	_, err = NewPayment(uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(100), time.Time{})
	assert.Error(t, err)
}

func TestPayment_MarkPaid(t *testing.T) {
	payment := newTestPayment(t)
	paidAt := time.Now()

	err := payment.MarkPaid(paidAt, PaymentMethodMobile, "MPESA-TX-001")
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusPaid, payment.Status)
	assert.True(t, payment.IsPaid())
	require.NotNil(t, payment.PaidDate)
	assert.Equal(t, paidAt, *payment.PaidDate)
	assert.Equal(t, PaymentMethodMobile, payment.Method)
	assert.Equal(t, "MPESA-TX-001", payment.Reference)
}

func TestPayment_MarkPaid_AlreadySettled(t *testing.T) {
	payment := newTestPayment(t)
	require.NoError(t, payment.MarkPaid(time.Now(), PaymentMethodCash, ""))

	err := payment.MarkPaid(time.Now(), PaymentMethodCash, "")
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_PAID", domainErr.Code)
}

func TestPayment_MarkPaid_InvalidMethod(t *testing.T) {
	payment := newTestPayment(t)

	err := payment.MarkPaid(time.Now(), PaymentMethod("bitcoin"), "")
	assert.Error(t, err)
	assert.Equal(t, PaymentStatusPending, payment.Status)
}

func TestPayment_MarkPartial(t *testing.T) {
	payment := newTestPayment(t)

	err := payment.MarkPartial(time.Now(), PaymentMethodBank, "SLIP-42")
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusPartial, payment.Status)
	assert.False(t, payment.IsPaid())

	// A partial payment can still be settled in full later
	require.NoError(t, payment.MarkPaid(time.Now(), PaymentMethodBank, "SLIP-43"))
	assert.Equal(t, PaymentStatusPaid, payment.Status)
}

func TestPayment_MarkOverdue(t *testing.T) {
	payment := newTestPayment(t)

	require.NoError(t, payment.MarkOverdue())
	assert.Equal(t, PaymentStatusOverdue, payment.Status)
}

func TestPayment_MarkOverdue_PaidPayment(t *testing.T) {
	payment := newTestPayment(t)
	require.NoError(t, payment.MarkPaid(time.Now(), PaymentMethodCash, ""))

	err := payment.MarkOverdue()
	assert.Error(t, err)
	assert.Equal(t, PaymentStatusPaid, payment.Status)
}

func TestPayment_TotalDue(t *testing.T) {
	payment := newTestPayment(t)
	assert.True(t, payment.TotalDue().Equal(decimal.NewFromInt(45000)))

	require.NoError(t, payment.SetPenalty(decimal.NewFromInt(2500)))
	assert.True(t, payment.TotalDue().Equal(decimal.NewFromInt(47500)))
}

func TestPayment_SetPenalty_Negative(t *testing.T) {
	payment := newTestPayment(t)

	err := payment.SetPenalty(decimal.NewFromInt(-1))
	assert.Error(t, err)
	assert.Nil(t, payment.Penalty)
}

func TestPayment_IsPastDue(t *testing.T) {
	payment := newTestPayment(t)
	payment.DueDate = time.Now().AddDate(0, 0, -1)

	assert.True(t, payment.IsPastDue(time.Now()))

	require.NoError(t, payment.MarkPaid(time.Now(), PaymentMethodCash, ""))
	assert.False(t, payment.IsPastDue(time.Now()))
}
