package shop

import (
	"errors"
	"strings"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/errs"
)

// ErrShopIsNotConstructed is returned when a Shop instance was not created
// through the NewShop or RestoreShop factory functions.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop")

// Shop is the aggregate root for a print shop: its identity and contact
// details, an activity flag toggled by the shopkeeper, and the published
// pricing catalog.
//
// A shop without a catalog has never published prices; the catalog pointer
// stays nil until the first full publication and is then always replaced
// whole, never patched.
//
// Inactive shops are hidden from students: discovery listings and price
// lookups treat them as absent.
type Shop struct {
	username    kernel.Username
	email       string
	phone       string
	description string
	details     string

	active  bool
	catalog *Catalog

	isConstructed bool
}

// NewShop creates an active shop without a published catalog.
func NewShop(username kernel.Username, email, phone, description, details string) (*Shop, error) {
	if err := username.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &Shop{
		username:      username,
		email:         email,
		phone:         phone,
		description:   description,
		details:       details,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreShop reconstructs a shop from persistence, including its activity
// flag and the optionally published catalog.
func RestoreShop(
	username kernel.Username,
	email, phone, description, details string,
	active bool,
	catalog *Catalog,
) (*Shop, error) {
	if err := username.Validate(); err != nil {
		return nil, err
	}
	if catalog != nil {
		if err := catalog.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shop{
		username:      username,
		email:         email,
		phone:         phone,
		description:   description,
		details:       details,
		active:        active,
		catalog:       catalog,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// Username returns the shop's identifier.
func (s *Shop) Username() kernel.Username {
	return s.username
}

// Email returns the shopkeeper's contact email.
func (s *Shop) Email() string {
	return s.email
}

// Phone returns the shopkeeper's contact phone.
func (s *Shop) Phone() string {
	return s.phone
}

// Description returns the student-facing shop description.
func (s *Shop) Description() string {
	return s.description
}

// Details returns the student-facing shop details text.
func (s *Shop) Details() string {
	return s.details
}

// IsActive reports whether the shop accepts orders and appears in listings.
func (s *Shop) IsActive() bool {
	return s.active
}

// SetActive toggles the shopkeeper-controlled activity flag.
func (s *Shop) SetActive(active bool) {
	s.active = active
}

// Catalog returns the published rate table, or nil if none was published yet.
func (s *Shop) Catalog() *Catalog {
	return s.catalog
}

// PublishCatalog replaces the full rate table. Partial updates are impossible
// because Catalog itself can only be constructed complete.
func (s *Shop) PublishCatalog(catalog Catalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}

	s.catalog = &catalog
	return nil
}
