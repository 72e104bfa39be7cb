package order

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"
)

// FabricSource identifies who supplies the fabric for an order.
type FabricSource string

const (
	// FabricFromShop means the shop supplies the fabric from its own stock.
	FabricFromShop FabricSource = "shop"

	// FabricFromCustomer means the customer brings their own fabric.
	FabricFromCustomer FabricSource = "customer"
)

// Validate checks that the fabric source is one of the recognized values.
func (s FabricSource) Validate() error {
	if s != FabricFromShop && s != FabricFromCustomer {
		return errs.NewValueIsInvalidErrorWithCause(
			"fabricSource",
			fmt.Errorf("%q is not a valid fabric source", string(s)),
		)
	}
	return nil
}

// Fabric is a value object describing the fabric for an order: where it comes
// from and, optionally, its name. It is immutable after construction.
type Fabric struct {
	source FabricSource
	name   string

	guard guard.ConstructorGuard
}

// ErrFabricIsNotConstructed is returned when a Fabric was not created via NewFabric.
var ErrFabricIsNotConstructed = errs.NewValueIsRequiredError("Fabric must be created via NewFabric")

// NewFabric creates a Fabric value object. The source must be shop or
// customer. The name is required for shop fabric, where it identifies the
// stock item, and optional for fabric the customer brings.
func NewFabric(source FabricSource, name string) (Fabric, error) {
	if err := source.Validate(); err != nil {
		return Fabric{}, err
	}

	if source == FabricFromShop && name == "" {
		return Fabric{}, errs.NewValueIsRequiredError("fabricName")
	}

	return Fabric{
		source: source,
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Fabric was created via NewFabric.
func (f Fabric) Validate() error {
	return f.guard.Validate(ErrFabricIsNotConstructed)
}

// Source returns who supplies the fabric.
func (f Fabric) Source() FabricSource {
	return f.source
}

// Name returns the fabric name. Empty when not specified.
func (f Fabric) Name() string {
	return f.name
}
