package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type checkoutTestContext struct {
	svc      *memoryServices
	customer model.CustomerInfo
	nextID   int
	order    *model.Order
	err      error
}

func (c *checkoutTestContext) reset() {
	c.svc = newMemoryServices()
	c.customer = validCustomer()
	c.nextID = 1000
	c.order = nil
	c.err = nil
}

func (c *checkoutTestContext) anEmptyCart() error {
	return c.svc.cart.Clear(context.Background())
}

func (c *checkoutTestContext) theCartContainsOfAItem(quantity int, price string) error {
	c.nextID++
	_, err := c.svc.cart.Add(context.Background(), testItem(c.nextID, price), quantity)
	return err
}

func (c *checkoutTestContext) theCustomerHasNoZipCode() error {
	c.customer.ZipCode = ""
	return nil
}

func (c *checkoutTestContext) iCheckOutPayingBy(method string) error {
	c.order, c.err = c.svc.orders.Checkout(context.Background(), c.customer, model.PaymentMethod(method))
	return nil
}

func (c *checkoutTestContext) expectAmount(name string, got decimal.Decimal, want string) error {
	if got.StringFixed(2) != want {
		return fmt.Errorf("expected %s $%s, got $%s", name, want, got.StringFixed(2))
	}
	return nil
}

func (c *checkoutTestContext) placedOrder() (*model.Order, error) {
	if c.err != nil {
		return nil, fmt.Errorf("expected an order but got error: %v", c.err)
	}
	return c.order, nil
}

func (c *checkoutTestContext) theOrderTotalIs(want string) error {
	order, err := c.placedOrder()
	if err != nil {
		return err
	}
	return c.expectAmount("total", order.Total, want)
}

func (c *checkoutTestContext) theOrderDeliveryFeeIs(want string) error {
	order, err := c.placedOrder()
	if err != nil {
		return err
	}
	return c.expectAmount("delivery fee", order.DeliveryFee, want)
}

func (c *checkoutTestContext) theNewestOrderTotalIs(want string) error {
	history, err := c.svc.orders.History(context.Background())
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return errors.New("order history is empty")
	}
	return c.expectAmount("newest total", history[0].Total, want)
}

func (c *checkoutTestContext) theOrderHistoryHasOrders(count int) error {
	history, err := c.svc.orders.History(context.Background())
	if err != nil {
		return err
	}
	if len(history) != count {
		return fmt.Errorf("expected %d orders, got %d", count, len(history))
	}
	return nil
}

func (c *checkoutTestContext) theCartHasLines(count int) error {
	lines, err := c.svc.cart.Get(context.Background())
	if err != nil {
		return err
	}
	if len(lines) != count {
		return fmt.Errorf("expected %d cart lines, got %d", count, len(lines))
	}
	return nil
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	return c.theCartHasLines(0)
}

func (c *checkoutTestContext) checkoutFailsOnField(field string) error {
	var validationErr *model.ValidationError
	if !errors.As(c.err, &validationErr) {
		return fmt.Errorf("expected a validation error, got %v", c.err)
	}
	if validationErr.Field != field {
		return fmt.Errorf("expected field %q, got %q", field, validationErr.Field)
	}
	return nil
}

func InitializeCheckoutScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^the cart contains (\d+) of a \$(\d+\.\d{2}) item$`, tc.theCartContainsOfAItem)
	ctx.Step(`^the customer has no zip code$`, tc.theCustomerHasNoZipCode)

	// When steps
	ctx.Step(`^I check out paying by "([^"]*)"$`, tc.iCheckOutPayingBy)

	// Then steps
	ctx.Step(`^the order total is \$(\d+\.\d{2})$`, tc.theOrderTotalIs)
	ctx.Step(`^the order delivery fee is \$(\d+\.\d{2})$`, tc.theOrderDeliveryFeeIs)
	ctx.Step(`^the newest order total is \$(\d+\.\d{2})$`, tc.theNewestOrderTotalIs)
	ctx.Step(`^the order history has (\d+) orders?$`, tc.theOrderHistoryHasOrders)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^checkout fails on field "([^"]*)"$`, tc.checkoutFailsOnField)
}

func TestCheckoutFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeCheckoutScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
