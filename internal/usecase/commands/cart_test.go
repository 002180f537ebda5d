//go:build unit

package commands_test

import (
	"context"
	"testing"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	commandsmock "storefront-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCarts    *commandsmock.MockCartRepository
	mockVariants *commandsmock.MockVariantRepository
	commands     commands.CartCommands

	userID uuid.UUID
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCarts = commandsmock.NewMockCartRepository(s.mockCtrl)
	s.mockVariants = commandsmock.NewMockVariantRepository(s.mockCtrl)
	s.commands = commands.NewCartCommands(s.mockCarts, s.mockVariants)
	s.userID = uuid.New()
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) TestAddItem() {
	s.Run("captures the current catalog price on the line item", func() {
		variantID := uuid.New()
		variant := baseUnitVariant(variantID)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variantID).Return(variant, nil)
		s.mockCarts.EXPECT().UpsertItem(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, item cart.Item) error {
				s.Equal(variant.SKU(), item.SKU)
				s.Equal(variant.PriceCents(), item.UnitPriceCents)
				s.Equal(variant.CategoryID(), item.CategoryID)
				s.Equal(int32(3), item.Quantity)
				return nil
			})

		err := s.commands.AddItem(context.Background(), s.userID, variantID, 3)
		s.NoError(err)
	})

	s.Run("rejects non-positive quantity before any lookup", func() {
		err := s.commands.AddItem(context.Background(), s.userID, uuid.New(), 0)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	variantID := uuid.New()
	s.mockCarts.EXPECT().RemoveItem(gomock.Any(), s.userID, variantID).Return(nil)

	err := s.commands.RemoveItem(context.Background(), s.userID, variantID)
	s.NoError(err)
}
