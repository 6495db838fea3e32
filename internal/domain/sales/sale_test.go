package sales

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/backend/internal/domain/shared/valueobject"
)

func usd(t *testing.T, amount float64) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromFloat(amount, valueobject.USD)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, qty int, price float64) SaleLineItem {
	t.Helper()
	item, err := NewSaleLineItem(uuid.New(), "SKU-1", "Widget", qty, usd(t, price))
	require.NoError(t, err)
	return item
}

func TestNewSaleLineItem(t *testing.T) {
	t.Run("derives total from quantity and unit price", func(t *testing.T) {
		item := lineItem(t, 3, 4.50)
		assert.Equal(t, "13.50 USD", item.TotalPrice.Round(2).String())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSaleLineItem(uuid.New(), "SKU-1", "Widget", 0, usd(t, 1))
		assert.Error(t, err)
		_, err = NewSaleLineItem(uuid.New(), "SKU-1", "Widget", -1, usd(t, 1))
		assert.Error(t, err)
	})
}

func newDraftSale(t *testing.T) *Sale {
	t.Helper()
	items := []SaleLineItem{lineItem(t, 2, 10), lineItem(t, 1, 5)}
	sale, err := NewSale(uuid.New(), "S-0001", uuid.New(), nil, items, usd(t, 25), usd(t, 4), usd(t, 29))
	require.NoError(t, err)
	return sale
}

func TestNewSale(t *testing.T) {
	t.Run("creates draft sale and links items", func(t *testing.T) {
		sale := newDraftSale(t)

		assert.Equal(t, SaleStatusDraft, sale.Status)
		assert.Equal(t, 3, sale.ItemCount())
		for _, item := range sale.Items {
			assert.Equal(t, sale.ID, item.SaleID)
		}
		require.Len(t, sale.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeSaleCreated, sale.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewSale(uuid.New(), "S-0001", uuid.New(), nil, nil, usd(t, 0), usd(t, 0), usd(t, 0))
		assert.Error(t, err)
	})
}

func TestSale_Complete(t *testing.T) {
	t.Run("completes a draft sale", func(t *testing.T) {
		sale := newDraftSale(t)
		sale.ClearDomainEvents()

		require.NoError(t, sale.Complete(PaymentCash))

		assert.Equal(t, SaleStatusCompleted, sale.Status)
		assert.NotNil(t, sale.PaidAt)
		events := sale.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeSaleCompleted, events[0].EventType())
		assert.Equal(t, EventTypePaymentReceived, events[1].EventType())
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		sale := newDraftSale(t)
		assert.Error(t, sale.Complete(PaymentMethod("barter")))
	})

	t.Run("rejects double completion", func(t *testing.T) {
		sale := newDraftSale(t)
		require.NoError(t, sale.Complete(PaymentCard))
		assert.Error(t, sale.Complete(PaymentCard))
	})
}

func TestSale_Cancel(t *testing.T) {
	t.Run("cancels a draft sale", func(t *testing.T) {
		sale := newDraftSale(t)
		sale.ClearDomainEvents()

		require.NoError(t, sale.Cancel("customer walked out"))

		assert.Equal(t, SaleStatusCancelled, sale.Status)
		require.Len(t, sale.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeSaleCancelled, sale.GetDomainEvents()[0].EventType())
	})

	t.Run("cannot cancel a completed sale", func(t *testing.T) {
		sale := newDraftSale(t)
		require.NoError(t, sale.Complete(PaymentCash))
		assert.Error(t, sale.Cancel("too late"))
	})
}
