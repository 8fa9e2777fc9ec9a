package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"technotrove/internal/cart"
	"technotrove/internal/config"
	"technotrove/internal/db"
	"technotrove/internal/logger"
	"technotrove/internal/order"
	"technotrove/internal/schedule"

	"github.com/google/uuid"
)

const usage = `usage: storefront <command> [flags]

cart commands:
  cart show                         print the current cart
  cart add -product N -sku N -name S -sku-name S -price-cents N -qty N [-image URL]
  cart set -sku N -qty N            set quantity (0 removes the item)
  cart clear                        empty the cart

order commands:
  order submit                      place the cart as an immediate order
  order schedule -at "YYYY-MM-DD HH:mm"
  order list                        list existing orders
  order schedules                   list scheduled orders
  order cancel -number ORD-...      cancel a pending order
  order cancel-schedule -id ID      cancel a scheduled order
`

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	args := os.Args[1:]
	if len(args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	database := db.InitDB(cfg)
	defer database.Close()

	repo := cart.NewRepository(database)
	writer := cart.NewWriter(repo)
	defer writer.Close()

	store := cart.NewStore(writer)
	ctx := logger.WithOpID(context.Background(), uuid.NewString())
	cart.Rehydrate(ctx, repo, store)

	gateway := order.NewHTTPGateway(cfg.OrderAPIBaseURL)

	var err error
	switch args[0] {
	case "cart":
		err = runCart(store, args[1], args[2:])
	case "order":
		err = runOrder(ctx, store, gateway, args[1], args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCart(store *cart.Store, sub string, args []string) error {
	switch sub {
	case "show":
		printCart(store.Snapshot())
		return nil

	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		product := fs.Int64("product", 0, "product id")
		sku := fs.Int64("sku", 0, "sku id")
		name := fs.String("name", "", "product name")
		skuName := fs.String("sku-name", "", "sku name")
		priceCents := fs.Int64("price-cents", 0, "unit price in cents")
		qty := fs.Int("qty", 1, "quantity")
		image := fs.String("image", "", "image url")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if err := store.AddItem(cart.LineItem{
			ProductID:   *product,
			SkuID:       *sku,
			ProductName: *name,
			SkuName:     *skuName,
			UnitPrice:   cart.Cents(*priceCents),
			Quantity:    *qty,
			ImageURL:    *image,
		}); err != nil {
			return err
		}
		printCart(store.Snapshot())
		return nil

	case "set":
		fs := flag.NewFlagSet("cart set", flag.ExitOnError)
		sku := fs.Int64("sku", 0, "sku id")
		qty := fs.Int("qty", 0, "quantity, 0 removes the item")
		if err := fs.Parse(args); err != nil {
			return err
		}

		store.UpdateQuantity(*sku, *qty)
		printCart(store.Snapshot())
		return nil

	case "clear":
		store.Clear()
		fmt.Println("cart cleared")
		return nil

	default:
		return fmt.Errorf("unknown cart command %q", sub)
	}
}

func runOrder(ctx context.Context, store *cart.Store, gateway order.Gateway, sub string, args []string) error {
	submitSvc := order.NewService(store, gateway)
	querySvc := order.NewQueryService(gateway)

	switch sub {
	case "submit":
		created, err := submitSvc.SubmitImmediate(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("order placed: %s (%s), total $%.2f\n",
			created.OrderNumber, created.OrderStatus, created.TotalAmount)
		return nil

	case "schedule":
		fs := flag.NewFlagSet("order schedule", flag.ExitOnError)
		at := fs.String("at", "", `schedule time as "YYYY-MM-DD HH:mm"`)
		if err := fs.Parse(args); err != nil {
			return err
		}

		instant, err := schedule.Validate(*at)
		if err != nil {
			return err
		}

		created, err := submitSvc.SubmitScheduled(ctx, instant)
		if err != nil {
			return err
		}
		fmt.Printf("order %s scheduled for %s (schedule %s)\n",
			created.OrderNumber, created.ScheduledTime, created.ScheduleID)
		return nil

	case "list":
		orders, err := querySvc.ListOrders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no orders found")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%s  %-10s  $%.2f  (%d items)\n",
				o.OrderNumber, o.OrderStatus, o.TotalAmount, len(o.OrderItems))
		}
		return nil

	case "schedules":
		orders, err := querySvc.ListScheduledOrders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no scheduled orders found")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%s  schedule %s  at %s  $%.2f  %s\n",
				o.OrderNumber, o.ScheduleID, o.ScheduledTime, o.TotalAmount, remaining(o.ScheduledTime))
		}
		return nil

	case "cancel":
		fs := flag.NewFlagSet("order cancel", flag.ExitOnError)
		number := fs.String("number", "", "order number")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if err := querySvc.CancelOrder(ctx, *number); err != nil {
			return err
		}
		fmt.Printf("order %s canceled\n", *number)
		return nil

	case "cancel-schedule":
		fs := flag.NewFlagSet("order cancel-schedule", flag.ExitOnError)
		id := fs.String("id", "", "schedule id")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if err := querySvc.CancelScheduledOrder(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("schedule %s canceled\n", *id)
		return nil

	default:
		return fmt.Errorf("unknown order command %q", sub)
	}
}

func printCart(items cart.Items) {
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, it := range items {
		fmt.Printf("sku %-6d %s - %s  $%.2f x %d\n",
			it.SkuID, it.ProductName, it.SkuName, it.UnitPrice.Units(), it.Quantity)
	}
	fmt.Printf("total: $%.2f\n", items.Total().Units())
}

func remaining(scheduledTime string) string {
	at, err := time.Parse("2006-01-02T15:04:05", scheduledTime)
	if err != nil {
		return ""
	}
	d, ok := order.RemainingTime(at, time.Now())
	if !ok {
		return "time has passed"
	}
	return fmt.Sprintf("%dh %dm remaining", int(d.Hours()), int(d.Minutes())%60)
}
