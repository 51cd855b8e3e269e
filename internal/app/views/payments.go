package views

import (
	"context"
	"log/slog"

	"github.com/linemk/foodcart/internal/domain/models"
	"github.com/linemk/foodcart/internal/service"
)

// PaymentsView — экран управления платёжными методами (заглушка)
type PaymentsView struct {
	log      *slog.Logger
	ui       *UI
	payments *service.PaymentsService
}

func NewPaymentsView(log *slog.Logger, ui *UI, payments *service.PaymentsService) *PaymentsView {
	return &PaymentsView{log: log, ui: ui, payments: payments}
}

func (v *PaymentsView) Run(ctx context.Context) (Nav, error) {
	v.ui.Title("Payment methods")

	for {
		methods := v.payments.List()
		if len(methods) == 0 {
			v.ui.Println("No payment methods yet.")
		}
		for _, m := range methods {
			marker := " "
			if m.Default {
				marker = "*"
			}
			v.ui.Printf("  [%s] %s %-24s %s\n", m.ID, marker, m.Name, m.Details)
		}

		choice, err := v.ui.Prompt("Command (a add, s<id> set default, x<id> remove, b back)")
		if err != nil {
			return Nav{Route: RouteQuit}, nil
		}

		switch {
		case choice == "b":
			return Nav{Route: RouteDashboard}, nil
		case choice == "a":
			v.addMethod()
		case len(choice) > 1 && choice[0] == 's':
			if err := v.payments.SetDefault(choice[1:]); err != nil {
				v.ui.Errorf("Unknown payment method")
			}
		case len(choice) > 1 && choice[0] == 'x':
			if err := v.payments.Remove(choice[1:]); err != nil {
				v.ui.Errorf("Unknown payment method")
			}
		default:
			v.ui.Errorf("Unknown command")
		}
	}
}

func (v *PaymentsView) addMethod() {
	methodType, err := v.ui.Prompt("Type (card / upi / wallet)")
	if err != nil {
		return
	}

	input := service.NewPaymentMethod{Type: methodType}
	switch methodType {
	case models.PaymentTypeCard:
		if input.CardNumber, err = v.ui.Prompt("Card number"); err != nil {
			return
		}
		if input.HolderName, err = v.ui.Prompt("Holder name"); err != nil {
			return
		}
	case models.PaymentTypeUPI:
		if input.UPIID, err = v.ui.Prompt("UPI id"); err != nil {
			return
		}
	case models.PaymentTypeWallet:
		if input.WalletName, err = v.ui.Prompt("Wallet name"); err != nil {
			return
		}
	}

	method, err := v.payments.Add(input)
	if err != nil {
		v.ui.Errorf("Failed to add payment method: %s", userMessage(err))
		return
	}
	v.ui.Successf("Added %s", method.Name)
}
