package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"text/tabwriter"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/cart"
	"github.com/Kajalkumari31/ministore/internal/catalog"
	"github.com/Kajalkumari31/ministore/internal/client"
)

const usage = `Usage: storefront [-c config] <command> [args]

Commands:
  list [query]        list catalog products, optionally filtered by title
  show <id>           show one product
  add <id>            add a product to the cart (or bump its quantity)
  inc <id>            increment a line item quantity
  dec <id>            decrement a line item quantity (floor 1)
  rm <id>             remove a line item
  cart                print the cart with the running total
  clear               empty the cart
  checkout            mock checkout: prints a notice and clears the cart
  publish             create a product (-title, -price, -desc, -image, -category)
`

var conffile = flag.String("c", "", "config yaml file")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// keep stdout clean for command output, log warnings to stderr
	logger, _ := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	zap.ReplaceGlobals(logger)

	appConfig := config.LoadConfig(*conffile)
	api := client.NewCatalog(appConfig.Storefront.ApiUrl)

	cartFile := appConfig.Storefront.CartFile
	if !path.IsAbs(cartFile) {
		cartFile = path.Join(appConfig.GetDataDir(), cartFile)
	}
	storage, err := cart.NewBoltStorage(cartFile)
	if err != nil {
		fatal("open cart storage: %v", err)
	}
	defer storage.Close()
	store := cart.NewStore(storage)
	_ = store.Subscribe(func(s cart.State) {
		zap.L().Debug("cart updated", zap.Int("lines", len(s.Items)), zap.Float64("total", s.Total()))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "list":
		runList(ctx, api, flag.Arg(1))
	case "show":
		runShow(ctx, api, requireID())
	case "add":
		runAdd(ctx, api, store, requireID())
	case "inc":
		dispatch(store, cart.Increment(requireID()))
		printCart(store.Get())
	case "dec":
		dispatch(store, cart.Decrement(requireID()))
		printCart(store.Get())
	case "rm":
		dispatch(store, cart.Remove(requireID()))
		printCart(store.Get())
	case "cart":
		printCart(store.Get())
	case "clear":
		dispatch(store, cart.Clear())
		fmt.Println("cart cleared")
	case "checkout":
		runCheckout(store)
	case "publish":
		runPublish(ctx, api)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func requireID() int64 {
	id := cast.ToInt64(flag.Arg(1))
	if id == 0 {
		fatal("a numeric product id is required")
	}
	return id
}

func dispatch(store *cart.Store, action cart.Action) {
	if err := store.Dispatch(action); err != nil {
		zap.L().Warn("cart persistence failed", zap.Error(err))
	}
}

func runList(ctx context.Context, api *client.Catalog, q string) {
	products, err := api.List(ctx, q)
	if err != nil {
		fatal("list products: %v", err)
	}
	if len(products) == 0 {
		fmt.Println("no products found")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tCATEGORY\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%d\n", p.ID, p.Title, p.Price, p.Category, p.Stock)
	}
	w.Flush()
}

func runShow(ctx context.Context, api *client.Catalog, id int64) {
	p, err := api.Get(ctx, id)
	if err != nil {
		fatal("get product: %v", err)
	}
	fmt.Printf("%s (#%d)\n", p.Title, p.ID)
	fmt.Printf("  price:    %.2f\n", p.Price)
	fmt.Printf("  category: %s\n", p.Category)
	fmt.Printf("  stock:    %d\n", p.Stock)
	if p.Description != "" {
		fmt.Printf("  %s\n", p.Description)
	}
}

func runAdd(ctx context.Context, api *client.Catalog, store *cart.Store, id int64) {
	p, err := api.Get(ctx, id)
	if err != nil {
		fatal("get product: %v", err)
	}
	dispatch(store, cart.Add(*p))
	fmt.Printf("added %q to cart\n", p.Title)
	printCart(store.Get())
}

func runCheckout(store *cart.Store) {
	state := store.Get()
	if len(state.Items) == 0 {
		fmt.Println("cart is empty, nothing to check out")
		return
	}
	fmt.Printf("order placed: %d items, total %.2f - thank you!\n", state.Count(), state.Total())
	dispatch(store, cart.Clear())
}

func runPublish(ctx context.Context, api *client.Catalog) {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	title := fs.String("title", "", "product title")
	price := fs.Float64("price", 0, "product price")
	desc := fs.String("desc", "", "product description")
	image := fs.String("image", "", "product image url")
	category := fs.String("category", "", "product category")
	_ = fs.Parse(flag.Args()[1:])

	p, err := api.Create(ctx, catalog.CreateRequest{
		Title:       *title,
		Description: *desc,
		Price:       price,
		Image:       *image,
		Category:    *category,
	})
	if err != nil {
		fatal("create product: %v", err)
	}
	fmt.Printf("created %q (#%d)\n", p.Title, p.ID)
}

func printCart(state cart.State) {
	if len(state.Items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range state.Items {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%.2f\n",
			item.ProductID, item.Title, item.Price, item.Qty, item.Price*float64(item.Qty))
	}
	w.Flush()
	fmt.Printf("total: %.2f\n", state.Total())
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
