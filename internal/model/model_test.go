package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "dishpatch/internal/errors"
)

func TestNewUserRecord(t *testing.T) {
	t.Run("defaults applied when omitted", func(t *testing.T) {
		u := (&NewUser{FullName: "Dana", Email: "dana@example.com", Password: "hash"}).Record()
		assert.Equal(t, RoleCustomer, u.Role)
		assert.Equal(t, UserStatusActive, u.Status)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		role := RoleDriver
		status := UserStatusSuspended
		u := (&NewUser{FullName: "Dana", Email: "dana@example.com", Password: "hash", Role: &role, Status: &status}).Record()
		assert.Equal(t, RoleDriver, u.Role)
		assert.Equal(t, UserStatusSuspended, u.Status)
	})
}

func TestNewUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    NewUser
		wantErr error
	}{
		{
			name: "valid",
			user: NewUser{FullName: "Dana", Email: "dana@example.com", Password: "hash"},
		},
		{
			name:    "missing email",
			user:    NewUser{FullName: "Dana", Password: "hash"},
			wantErr: errs.ErrDomainViolation,
		},
		{
			name:    "missing password",
			user:    NewUser{FullName: "Dana", Email: "dana@example.com"},
			wantErr: errs.ErrDomainViolation,
		},
		{
			name:    "role outside the enumerated set",
			user:    NewUser{FullName: "Dana", Email: "dana@example.com", Password: "hash", Role: rolePtr("superuser")},
			wantErr: errs.ErrDomainViolation,
		},
		{
			name:    "status outside the enumerated set",
			user:    NewUser{FullName: "Dana", Email: "dana@example.com", Password: "hash", Status: userStatusPtr("frozen")},
			wantErr: errs.ErrDomainViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRestaurantRecordDefaults(t *testing.T) {
	r := (&NewRestaurant{OwnerID: uuid.New(), Name: "Luigi's", Email: "luigi@example.com"}).Record()

	assert.Equal(t, "3.00", r.DeliveryFee.StringFixed(2))
	assert.Equal(t, "1.00", r.MinimumOrder.StringFixed(2))
	assert.Equal(t, "0.00", r.Rating.StringFixed(2))
	assert.Equal(t, 0, r.TotalReviews)
	assert.Equal(t, 10, r.EstimatedPrepTime)
	assert.True(t, r.IsOpen)
	assert.True(t, r.IsActive)
	assert.False(t, r.IsVerified)
}

func TestNewRestaurantRecordExplicitValues(t *testing.T) {
	fee := decimal.RequireFromString("0.00")
	open := false
	r := (&NewRestaurant{
		OwnerID: uuid.New(), Name: "Luigi's", Email: "luigi@example.com",
		DeliveryFee: &fee, IsOpen: &open,
	}).Record()

	assert.Equal(t, "0.00", r.DeliveryFee.StringFixed(2))
	assert.False(t, r.IsOpen)
}

func TestNewRestaurantValidatePrecision(t *testing.T) {
	base := NewRestaurant{OwnerID: uuid.New(), Name: "Luigi's", Email: "luigi@example.com"}

	t.Run("latitude with nine fractional digits", func(t *testing.T) {
		n := base
		n.Latitude = decimal.NewNullDecimal(decimal.RequireFromString("38.123456789"))
		assert.ErrorIs(t, n.Validate(), errs.ErrPrecisionLoss)
	})

	t.Run("rating exceeding decimal(3,2)", func(t *testing.T) {
		n := base
		rating := decimal.RequireFromString("10.00")
		n.Rating = &rating
		assert.ErrorIs(t, n.Validate(), errs.ErrPrecisionLoss)
	})

	t.Run("valid coordinates", func(t *testing.T) {
		n := base
		n.Latitude = decimal.NewNullDecimal(decimal.RequireFromString("38.71009900"))
		n.Longitude = decimal.NewNullDecimal(decimal.RequireFromString("-9.13998800"))
		assert.NoError(t, n.Validate())
	})
}

func TestNewMenuCategoryRecordDefaults(t *testing.T) {
	c := (&NewMenuCategory{RestaurantID: uuid.New(), Name: "Mains"}).Record()
	assert.Equal(t, 0, c.SortOrder)
	assert.True(t, c.IsActive)
}

func TestNewMenuItemRecordDefaults(t *testing.T) {
	m := (&NewMenuItem{
		RestaurantID: uuid.New(), CategoryID: uuid.New(),
		Name: "Margherita", Price: decimal.RequireFromString("4.50"),
	}).Record()
	assert.True(t, m.IsAvailable)
	assert.Equal(t, 5, m.PreparationTime)
}

func TestNewMenuItemValidate(t *testing.T) {
	n := NewMenuItem{
		RestaurantID: uuid.New(), CategoryID: uuid.New(),
		Name: "Margherita", Price: decimal.RequireFromString("4.505"),
	}
	assert.ErrorIs(t, n.Validate(), errs.ErrPrecisionLoss)
}

func TestNewOrderRecordDefaults(t *testing.T) {
	n := validNewOrder()
	o := n.Record()
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, "0.00", o.DeliveryFee.StringFixed(2))
}

func TestNewOrderValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		n := validNewOrder()
		assert.NoError(t, n.Validate())
	})

	t.Run("missing delivery address", func(t *testing.T) {
		n := validNewOrder()
		n.DeliveryAddress = ""
		assert.ErrorIs(t, n.Validate(), errs.ErrDomainViolation)
	})

	t.Run("order number too long", func(t *testing.T) {
		n := validNewOrder()
		n.OrderNumber = "ORD-123456789012345678901"
		assert.ErrorIs(t, n.Validate(), errs.ErrDomainViolation)
	})

	t.Run("status outside the enumerated set", func(t *testing.T) {
		n := validNewOrder()
		bogus := OrderStatus("shipped")
		n.Status = &bogus
		assert.ErrorIs(t, n.Validate(), errs.ErrDomainViolation)
	})

	t.Run("subtotal with sub-cent digits", func(t *testing.T) {
		n := validNewOrder()
		n.Subtotal = decimal.RequireFromString("12.345")
		assert.ErrorIs(t, n.Validate(), errs.ErrPrecisionLoss)
	})
}

func TestNewOrderItemTotalPrice(t *testing.T) {
	n := NewOrderItem{
		MenuItemID:   uuid.New(),
		MenuItemName: "Margherita",
		Quantity:     3,
		UnitPrice:    decimal.RequireFromString("4.50"),
	}
	require.NoError(t, n.Validate())

	item := n.Record(uuid.New())
	assert.Equal(t, "13.50", item.TotalPrice.StringFixed(2))
	assert.True(t, item.TotalPrice.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
}

func TestNewOrderItemValidate(t *testing.T) {
	n := NewOrderItem{
		MenuItemID:   uuid.New(),
		MenuItemName: "Margherita",
		Quantity:     0,
		UnitPrice:    decimal.RequireFromString("4.50"),
	}
	assert.ErrorIs(t, n.Validate(), errs.ErrDomainViolation)
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
}

func validNewOrder() NewOrder {
	return NewOrder{
		OrderNumber:     "ORD-2026-000042",
		CustomerID:      uuid.New(),
		RestaurantID:    uuid.New(),
		Subtotal:        decimal.RequireFromString("16.00"),
		TotalAmount:     decimal.RequireFromString("19.00"),
		DeliveryAddress: "45 Avenida da Liberdade",
	}
}

func rolePtr(s string) *Role {
	r := Role(s)
	return &r
}

func userStatusPtr(s string) *UserStatus {
	st := UserStatus(s)
	return &st
}
