package commands

import (
	"errors"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"
	"tailorshop/internal/core/ports"
	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new tailoring order.
// Carries the full descriptive payload: what is being tailored, for whom,
// with which measurements and fabric, by when, and at what price.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	actor            ports.Actor
	customerID       kernel.UUID
	itemType         string
	measurements     order.Measurements
	fabric           order.Fabric
	expectedDelivery time.Time
	totalAmount      float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. The fabric
// is built from its source and optional name; every field is validated and
// all violations are reported together.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor ports.Actor,
	customerID kernel.UUID,
	itemType string,
	measurements order.Measurements,
	fabricSource string,
	fabricName string,
	expectedDelivery time.Time,
	totalAmount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setCustomerID(customerID),
		cmd.setItemType(itemType),
		cmd.setMeasurements(measurements),
		cmd.setFabric(fabricSource, fabricName),
		cmd.setExpectedDelivery(expectedDelivery),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller.
func (c CreateOrderCommand) Actor() ports.Actor {
	return c.actor
}

// CustomerID returns the customer the order is placed for.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemType returns what is being tailored.
func (c CreateOrderCommand) ItemType() string {
	return c.itemType
}

// Measurements returns the customer's measurements.
func (c CreateOrderCommand) Measurements() order.Measurements {
	return c.measurements
}

// Fabric returns the fabric description.
func (c CreateOrderCommand) Fabric() order.Fabric {
	return c.fabric
}

// ExpectedDelivery returns the promised delivery date.
func (c CreateOrderCommand) ExpectedDelivery() time.Time {
	return c.expectedDelivery
}

// TotalAmount returns the agreed price.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor ports.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItemType(itemType string) error {
	if itemType == "" {
		return errs.NewValueIsRequiredError("itemType")
	}
	c.itemType = itemType
	return nil
}

func (c *CreateOrderCommand) setMeasurements(measurements order.Measurements) error {
	if err := measurements.Validate(); err != nil {
		return err
	}
	c.measurements = measurements
	return nil
}

func (c *CreateOrderCommand) setFabric(source, name string) error {
	fabric, err := order.NewFabric(order.FabricSource(source), name)
	if err != nil {
		return err
	}
	c.fabric = fabric
	return nil
}

func (c *CreateOrderCommand) setExpectedDelivery(expectedDelivery time.Time) error {
	if expectedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("expectedDelivery")
	}
	c.expectedDelivery = expectedDelivery
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	c.totalAmount = totalAmount
	return nil
}
