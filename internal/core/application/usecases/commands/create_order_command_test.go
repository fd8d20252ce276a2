package commands_test

import (
	"testing"

	"printz/internal/core/application/usecases/commands"
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrintSpec() order.PrintSpec {
	return order.PrintSpec{
		Copies:      2,
		PaperSize:   order.A4,
		ColorMode:   order.Grayscale,
		Orientation: order.Portrait,
		PageCount:   10,
		Documents:   []string{"thesis.pdf"},
	}
}

func TestNewCreateOrderCommand_Success(t *testing.T) {
	student, _ := kernel.NewUsername("ada")
	shopName, _ := kernel.NewUsername("copyshack")
	paymentID, _ := kernel.NewPaymentID("pay_123")
	total, _ := kernel.MoneyFromFloat(42.50)

	cmd, err := commands.NewCreateOrderCommand(student, shopName, paymentID, validPrintSpec(), total)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "ada", cmd.Student().String())
	assert.Equal(t, "copyshack", cmd.Shop().String())
	assert.Equal(t, "pay_123", cmd.PaymentID().String())
	assert.True(t, cmd.Total().IsEqual(total))
}

func TestNewCreateOrderCommand_InvalidData(t *testing.T) {
	student, _ := kernel.NewUsername("ada")
	shopName, _ := kernel.NewUsername("copyshack")
	paymentID, _ := kernel.NewPaymentID("pay_123")
	total, _ := kernel.MoneyFromFloat(42.50)

	tests := []struct {
		name      string
		student   kernel.Username
		shop      kernel.Username
		paymentID kernel.PaymentID
		spec      order.PrintSpec
	}{
		{"empty student", kernel.Username{}, shopName, paymentID, validPrintSpec()},
		{"empty shop", student, kernel.Username{}, paymentID, validPrintSpec()},
		{"empty payment id", student, shopName, kernel.PaymentID{}, validPrintSpec()},
		{"invalid spec", student, shopName, paymentID, order.PrintSpec{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.student, tt.shop, tt.paymentID, tt.spec, total)
			require.Error(t, err)
		})
	}
}

func TestNewCreateOrderCommand_JoinsAllViolations(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.Username{}, kernel.Username{}, kernel.PaymentID{}, order.PrintSpec{}, kernel.ZeroMoney(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.Error(t, cmd.Validate())
}
