package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/tmiyata/shopfront/internal/apiclient"
	"github.com/tmiyata/shopfront/internal/config"
	"github.com/tmiyata/shopfront/internal/modules/auth"
	"github.com/tmiyata/shopfront/internal/modules/product"
	"github.com/tmiyata/shopfront/internal/modules/purchase"
	"github.com/tmiyata/shopfront/internal/modules/shop"
	"github.com/tmiyata/shopfront/internal/pkg/clock"
	"github.com/tmiyata/shopfront/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	clk := clock.NewRealClock()

	var (
		products  product.Repository
		purchases purchase.Ledger
		accounts  auth.Client
	)

	switch cfg.Backend {
	case config.BackendRemote:
		api := apiclient.New(cfg.APIBaseURL, apiclient.WithLogger(logger))
		tokens := auth.StaticToken(cfg.Token)
		products = product.NewRemoteRepository(api, tokens)
		purchases = purchase.NewRemoteLedger(api, tokens, clk, logger)
		accounts = auth.NewRemoteClient(api)
	default:
		st, err := newStore(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		products = product.NewLocalRepository(st, clk)
		purchases = purchase.NewLocalLedger(st, clk)
		accounts = auth.NewLocalClient(st)
	}

	svc := shop.NewService(products, purchases, logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(ctx, svc, accounts, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Medium {
	case config.MediumPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db), nil
	case config.MediumMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.DataDir)
	}
}

func run(ctx context.Context, svc *shop.Service, accounts auth.Client, cmd string, args []string) error {
	switch cmd {
	case "products":
		return listProducts(ctx, svc)
	case "product":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopfront product <id>")
		}
		return showProduct(ctx, svc, args[0])
	case "add":
		return addProduct(ctx, svc, args)
	case "update":
		return updateProduct(ctx, svc, args)
	case "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: shopfront delete <id>")
		}
		return deleteProduct(ctx, svc, args[0])
	case "buy":
		return buy(ctx, svc, args)
	case "purchases":
		return listPurchases(ctx, svc, args)
	case "register":
		return register(ctx, accounts, args)
	case "login":
		return login(ctx, accounts, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shopfront <command> [flags]

commands:
  products             list the catalog
  product <id>         show one product
  add                  add a product
  update <id>          update product fields
  delete <id>          delete a product
  buy                  purchase a product
  purchases            list purchase history
  register             create an account
  login                log in and print the session token`)
}

func listProducts(ctx context.Context, svc *shop.Service) error {
	products, err := svc.ListProducts(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("%-36s  %-24s  ¥%.0f  stock:%d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	return nil
}

func showProduct(ctx context.Context, svc *shop.Service, id string) error {
	p, err := svc.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %s not found", id)
	}
	fmt.Printf("%s\n%s\nprice: ¥%.0f  stock: %d  category: %s\n", p.Name, p.Description, p.Price, p.Stock, p.Category)
	return nil
}

func addProduct(ctx context.Context, svc *shop.Service, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	desc := fs.String("description", "", "product description")
	price := fs.Float64("price", 0, "unit price")
	stock := fs.Int("stock", 0, "available quantity")
	image := fs.String("image", "", "display image reference")
	category := fs.String("category", "", "category label")
	fs.Parse(args)

	p, err := svc.AddProduct(ctx, product.CreateInput{
		Name:        *name,
		Description: *desc,
		Price:       *price,
		Stock:       *stock,
		Image:       *image,
		Category:    *category,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added %s (%s)\n", p.Name, p.ID)
	return nil
}

func updateProduct(ctx context.Context, svc *shop.Service, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: shopfront update <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	desc := fs.String("description", "", "product description")
	price := fs.Float64("price", 0, "unit price")
	stock := fs.Int("stock", 0, "available quantity")
	image := fs.String("image", "", "display image reference")
	category := fs.String("category", "", "category label")
	fs.Parse(args[1:])

	// Only flags the user actually set become part of the partial update.
	var in product.UpdateInput
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			in.Name = name
		case "description":
			in.Description = desc
		case "price":
			in.Price = price
		case "stock":
			in.Stock = stock
		case "image":
			in.Image = image
		case "category":
			in.Category = category
		}
	})

	p, err := svc.UpdateProduct(ctx, id, in)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %s not found", id)
	}
	fmt.Printf("updated %s\n", p.ID)
	return nil
}

func deleteProduct(ctx context.Context, svc *shop.Service, id string) error {
	removed, err := svc.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("product %s not found", id)
	}
	fmt.Printf("deleted %s\n", id)
	return nil
}

func buy(ctx context.Context, svc *shop.Service, args []string) error {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	id := fs.String("product", "", "product id")
	qty := fs.Int("quantity", 1, "quantity to purchase")
	email := fs.String("email", "", "purchaser email")
	address := fs.String("address", "", "shipping address (remote backend)")
	fs.Parse(args)

	rec, err := svc.Checkout(ctx, shop.CheckoutInput{
		ProductID: *id,
		Quantity:  *qty,
		UserEmail: *email,
		Address:   *address,
	})
	if err != nil {
		return err
	}
	fmt.Printf("purchased %s x%d, total ¥%.0f\n", rec.ProductName, rec.Quantity, rec.Total)
	return nil
}

func listPurchases(ctx context.Context, svc *shop.Service, args []string) error {
	fs := flag.NewFlagSet("purchases", flag.ExitOnError)
	email := fs.String("email", "", "filter by purchaser email")
	fs.Parse(args)

	purchases, err := svc.History(ctx, *email)
	if err != nil {
		return err
	}
	for _, p := range purchases {
		fmt.Printf("%s  %-24s x%d  ¥%.0f  %s\n",
			p.PurchaseDate.Format("2006-01-02 15:04"), p.ProductName, p.Quantity, p.Total, p.UserEmail)
	}
	return nil
}

func register(ctx context.Context, accounts auth.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	u, err := accounts.Register(ctx, auth.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s (%s)\n", u.Email, u.ID)
	return nil
}

func login(ctx context.Context, accounts auth.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	sess, err := accounts.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if sess.Token != "" {
		fmt.Println(sess.Token)
		if !sess.ExpiresAt.IsZero() {
			fmt.Fprintf(os.Stderr, "token expires %s\n", sess.ExpiresAt.Format("2006-01-02 15:04"))
		}
		return nil
	}
	fmt.Printf("logged in as %s\n", sess.Email)
	return nil
}
