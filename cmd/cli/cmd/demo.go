// Package cmd - demo commands
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"capability-dispatch/core/dispatch"
	"capability-dispatch/core/registry"
	"capability-dispatch/domains/accounts"
	"capability-dispatch/domains/geometry"
	"capability-dispatch/domains/notify"
	"capability-dispatch/domains/office"
	"capability-dispatch/domains/payment"
	"capability-dispatch/domains/pricing"
	"capability-dispatch/internal/config"
)

var policyName string

// demoCmd groups the per-domain demonstrations
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a capability dispatch demonstration",
}

func init() {
	demoCmd.PersistentFlags().StringVar(&policyName, "policy", "", "fan-out failure policy (fail-fast, best-effort)")

	demoCmd.AddCommand(demoPricingCmd)
	demoCmd.AddCommand(demoNotifyCmd)
	demoCmd.AddCommand(demoPaymentCmd)
	demoCmd.AddCommand(demoShapesCmd)
	demoCmd.AddCommand(demoAccountsCmd)
	demoCmd.AddCommand(demoOfficeCmd)
}

func fanOutPolicy() (dispatch.Policy, error) {
	name := policyName
	if name == "" {
		name = config.Get().Demo.FanOutPolicy
	}
	return dispatch.ParsePolicy(name)
}

// demoPricingCmd computes the final price under every registered plan
var demoPricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Final price under every discount plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		price, err := decimal.NewFromString(cfg.Demo.BasePrice)
		if err != nil {
			return fmt.Errorf("invalid base price %q: %w", cfg.Demo.BasePrice, err)
		}

		reg, err := buildRegistry(os.Stdout)
		if err != nil {
			return err
		}

		fmt.Printf("list price: %s%s\n", cfg.Demo.CurrencySymbol, price.StringFixed(2))
		for _, plan := range reg.Providers(pricing.CapabilityName) {
			discount, err := registry.Resolve[pricing.Discount](reg, pricing.CapabilityName, plan)
			if err != nil {
				return err
			}
			calc, err := pricing.NewCalculator(discount)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s final: %s%s\n", plan, cfg.Demo.CurrencySymbol, calc.FinalPrice(price).StringFixed(2))
		}
		return nil
	},
}

// demoNotifyCmd broadcasts one message over all channels
var demoNotifyCmd = &cobra.Command{
	Use:   "notify [message]",
	Short: "Broadcast a message over every channel in order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "your order has been approved"
		if len(args) > 0 {
			message = args[0]
		}

		policy, err := fanOutPolicy()
		if err != nil {
			return err
		}

		email, err := notify.NewEmailSender(os.Stdout)
		if err != nil {
			return err
		}
		sms, err := notify.NewSMSSender(os.Stdout)
		if err != nil {
			return err
		}
		push, err := notify.NewPushSender(os.Stdout)
		if err != nil {
			return err
		}
		whatsapp, err := notify.NewWhatsAppSender(os.Stdout)
		if err != nil {
			return err
		}

		service, err := notify.NewService(policy, email, sms, push, whatsapp)
		if err != nil {
			return err
		}
		return service.Notify(message)
	},
}

// demoPaymentCmd places one order through each processor
var demoPaymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Place an order through each payment method",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		reg, err := buildRegistry(os.Stdout)
		if err != nil {
			return err
		}

		amount := decimal.NewFromInt(150)
		for _, method := range reg.Providers(payment.CapabilityName) {
			processor, err := registry.Resolve[payment.Processor](reg, payment.CapabilityName, method)
			if err != nil {
				return err
			}
			orders, err := payment.NewOrderService(processor)
			if err != nil {
				return err
			}
			order, err := orders.CreateOrder(amount)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s charged %s%s\n", order.Receipt.Method, cfg.Demo.CurrencySymbol, order.Receipt.Amount.StringFixed(2))
		}
		return nil
	},
}

// demoShapesCmd computes areas through the shape contract
var demoShapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Compute areas through the shape contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		shapes := []geometry.Shape{
			geometry.Rectangle{Width: 5, Height: 4},
			geometry.Square{Side: 5},
			geometry.Circle{Radius: 2},
		}

		for _, shape := range shapes {
			fmt.Printf("%T area: %.2f\n", shape, shape.Area())
		}
		fmt.Printf("total: %.2f\n", geometry.TotalArea(shapes...))
		return nil
	},
}

// demoAccountsCmd signs up a user through injected collaborators
var demoAccountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Sign up a user through injected collaborators",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := accounts.NewMemoryRepository()
		welcome, err := notify.NewEmailSender(os.Stdout)
		if err != nil {
			return err
		}

		service, err := accounts.NewService(repo, welcome, accounts.TextReportWriter{})
		if err != nil {
			return err
		}

		user := accounts.User{Name: "Maria Santos", Email: "maria@example.com"}
		if err := service.SignUp(user); err != nil {
			return err
		}

		report, err := service.Report(user.Email)
		if err != nil {
			return err
		}
		fmt.Print(report)
		return nil
	},
}

// demoOfficeCmd duplicates a document through segregated device contracts
var demoOfficeCmd = &cobra.Command{
	Use:   "office",
	Short: "Duplicate a document through segregated device contracts",
	RunE: func(cmd *cobra.Command, args []string) error {
		station := office.NewScanStation(os.Stdout)
		desk, err := office.NewCopyDesk(station, station)
		if err != nil {
			return err
		}
		return desk.Duplicate()
	},
}
