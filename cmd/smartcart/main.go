package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/priyakanmani/smartcart-client-go/internal/api"
	"github.com/priyakanmani/smartcart-client-go/internal/api/dto"
	"github.com/priyakanmani/smartcart-client-go/internal/config"
	"github.com/priyakanmani/smartcart-client-go/internal/guard"
	"github.com/priyakanmani/smartcart-client-go/internal/panel"
	"github.com/priyakanmani/smartcart-client-go/internal/session"
	"github.com/priyakanmani/smartcart-client-go/internal/shopid"
	"github.com/priyakanmani/smartcart-client-go/internal/validate"
)

const usage = `usage: smartcart <command> [flags]

commands:
  login      log in as admin or manager
  logout     drop the cached session for a role
  overview   admin dashboard aggregates
  carts      cart fleet: list, add, status, complain, resolve, review, delete
  managers   manager accounts: list, add, delete
  products   shop catalog: list, add, delete
  analytics  sales analytics for the manager's shop
`

func main() {
	logger := log.New(os.Stdout, "[smartcart] ", log.LstdFlags|log.Lmicroseconds)
	if err := run(context.Background(), os.Args[1:], logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(ctx context.Context, args []string, logger *log.Logger) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	cfg := config.Load()
	store, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		return err
	}

	a := &app{
		cfg:    cfg,
		store:  store,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(rest)
	case "overview":
		return a.overview(ctx)
	case "carts":
		return a.carts(ctx, rest)
	case "managers":
		return a.managers(ctx, rest)
	case "products":
		return a.products(ctx, rest)
	case "analytics":
		return a.analytics(ctx, rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type app struct {
	cfg    config.Config
	store  session.Store
	http   *http.Client
	logger *log.Logger
}

func (a *app) client(role string) (*api.Client, *session.Session, error) {
	sess := session.New(a.store, role)
	c, err := api.NewClient(a.cfg.BaseURL, a.http, sess)
	return c, sess, err
}

// loginRedirect turns the guard's navigation into a one-shot channel the CLI
// can wait on.
type loginRedirect struct{ ch chan string }

func (n *loginRedirect) Replace(route string) { n.ch <- route }

// requireSession runs the role guard the same way a protected view would:
// grant on a cached token, otherwise count down and bail out to the login
// route.
func (a *app) requireSession(role guard.Role) error {
	nav := &loginRedirect{ch: make(chan string, 1)}
	g := guard.New(role, a.store, nav)
	defer g.Unmount()

	if g.Mount() == guard.Granted {
		return nil
	}
	a.logger.Printf("no %s session; redirecting to login in %d seconds (ctrl-c to abort)", role.Name, g.Remaining())
	route := <-nav.ch
	return fmt.Errorf("not logged in: %s requires a session, run `smartcart login --role %s` (%s)", role.Name, role.Name, route)
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	role := fs.String("role", "manager", "admin or manager")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if errs := validate.Credentials(*email, *password); !errs.OK() {
		return fmt.Errorf("invalid credentials: %v", errs)
	}

	c, sess, err := a.client(*role)
	if err != nil {
		return err
	}
	auth := api.NewAuthClient(c)

	var (
		token   string
		profile []byte
	)
	switch *role {
	case "admin":
		resp, err := auth.AdminLogin(ctx, *email, *password)
		if err != nil {
			return err
		}
		token, profile = resp.Token, resp.User
	case "manager":
		resp, err := auth.ManagerLogin(ctx, *email, *password)
		if err != nil {
			return err
		}
		token, profile = resp.Token, resp.Manager
	default:
		return fmt.Errorf("unknown role %q", *role)
	}

	p, err := sess.SaveLogin(token, *email, profile)
	if err != nil {
		return err
	}
	name := p.Name
	if name == "" {
		name = *email
	}
	a.logger.Printf("logged in as %s (%s)", name, *role)
	if *role == "manager" && sess.ShopID() != "" {
		a.logger.Printf("shop: %s", sess.ShopID())
	}
	return nil
}

func (a *app) logout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	role := fs.String("role", "manager", "admin or manager")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess := session.New(a.store, *role)
	if err := sess.Clear(); err != nil {
		return err
	}
	a.logger.Printf("%s session cleared", *role)
	return nil
}

func (a *app) overview(ctx context.Context) error {
	if err := a.requireSession(guard.Admin); err != nil {
		return err
	}
	c, _, err := a.client("admin")
	if err != nil {
		return err
	}

	ov, err := api.NewAdminClient(c).Overview(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("shops: %d  carts: %d  revenue: %.2f  active users: %d\n",
		ov.TotalShops, ov.TotalCarts, ov.Revenue, ov.ActiveUsers)
	for _, al := range ov.Alerts {
		fmt.Printf("  [%s] %s\n", al.Severity, al.Message)
	}
	return nil
}

// cartsResource adapts the carts client to the panel contract.
type cartsResource struct {
	cc     *api.CartsClient
	status string
}

func (r cartsResource) List(ctx context.Context) ([]dto.Cart, error) {
	return r.cc.List(ctx, r.status)
}

func (r cartsResource) Create(ctx context.Context, draft dto.Cart) (dto.Cart, error) {
	return r.cc.Create(ctx, draft.CartID)
}

func (r cartsResource) Update(ctx context.Context, id string, patch dto.Cart) (dto.Cart, error) {
	return r.cc.Update(ctx, id, dto.UpdateCartRequest{Status: patch.Status, Location: patch.Location})
}

func (r cartsResource) Delete(ctx context.Context, id string) error {
	return r.cc.Delete(ctx, id)
}

func (a *app) carts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("carts", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status (Available, In Use, Maintenance)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireSession(guard.Admin); err != nil {
		return err
	}
	c, _, err := a.client("admin")
	if err != nil {
		return err
	}
	cc := api.NewCartsClient(c)
	p := panel.New[dto.Cart](cartsResource{cc: cc, status: *status},
		func(e dto.Cart) string { return e.CartID }, panel.Append)

	action := fs.Arg(0)
	if action == "" {
		action = "list"
	}
	switch action {
	case "list":
		if err := p.Load(ctx); err != nil {
			return errors.New(p.Err())
		}
		return printCarts(p.Items())
	case "add":
		if fs.Arg(1) == "" {
			return errors.New("carts add needs a cart id")
		}
		created, err := p.Create(ctx, dto.Cart{CartID: fs.Arg(1)})
		if err != nil {
			return errors.New(p.Err())
		}
		a.logger.Printf("cart %s added (%s)", created.CartID, created.Status)
		return nil
	case "status":
		if fs.Arg(1) == "" || fs.Arg(2) == "" {
			return errors.New("carts status needs a cart id and a status")
		}
		cart, err := cc.UpdateStatus(ctx, fs.Arg(1), fs.Arg(2))
		if err != nil {
			return err
		}
		a.logger.Printf("cart %s is now %s", cart.CartID, cart.Status)
		return nil
	case "complain":
		if fs.Arg(1) == "" || fs.Arg(2) == "" {
			return errors.New("carts complain needs a cart id and a complaint type")
		}
		cart, err := cc.AddComplaint(ctx, fs.Arg(1), dto.Complaint{
			Type:        fs.Arg(2),
			Description: fs.Arg(3),
		})
		if err != nil {
			return err
		}
		p.ReplaceOne(cart)
		a.logger.Printf("cart %s now has %d complaint(s)", cart.CartID, len(cart.Complaints))
		return nil
	case "resolve":
		if fs.Arg(1) == "" || fs.Arg(2) == "" {
			return errors.New("carts resolve needs a cart id and a complaint index")
		}
		var index int
		if _, err := fmt.Sscanf(fs.Arg(2), "%d", &index); err != nil {
			return fmt.Errorf("bad complaint index %q", fs.Arg(2))
		}
		cart, err := cc.ResolveComplaint(ctx, fs.Arg(1), index)
		if err != nil {
			return err
		}
		p.ReplaceOne(cart)
		a.logger.Printf("complaint %d on cart %s resolved", index, cart.CartID)
		return nil
	case "review":
		if fs.Arg(1) == "" || fs.Arg(2) == "" {
			return errors.New("carts review needs a cart id and a customer id")
		}
		cart, err := cc.AddReview(ctx, fs.Arg(1), dto.Review{CustomerID: fs.Arg(2), Rating: 5, Comment: fs.Arg(3)})
		if err != nil {
			return err
		}
		p.ReplaceOne(cart)
		a.logger.Printf("review added to cart %s", cart.CartID)
		return nil
	case "delete":
		if fs.Arg(1) == "" {
			return errors.New("carts delete needs a cart id")
		}
		if err := p.Delete(ctx, fs.Arg(1)); err != nil {
			return errors.New(p.Err())
		}
		a.logger.Printf("cart %s deleted", fs.Arg(1))
		return nil
	default:
		return fmt.Errorf("unknown carts action %q", action)
	}
}

func printCarts(carts []dto.Cart) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CART\tSTATUS\tLOCATION\tCOMPLAINTS\tREVIEWS")
	for _, c := range carts {
		open := 0
		for _, cm := range c.Complaints {
			if !cm.Resolved {
				open++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d open\t%d\n", c.CartID, c.Status, c.Location, open, len(c.Reviews))
	}
	return w.Flush()
}

// managersResource adapts the managers client to the panel contract. The
// password rides alongside because the entity type never carries one.
type managersResource struct {
	mc       *api.ManagersClient
	password string
}

func (r managersResource) draft(m dto.Manager) dto.ManagerDraft {
	return dto.ManagerDraft{
		ManagerName:   m.ManagerName,
		Email:         m.Email,
		Password:      r.password,
		Shop:          m.Shop,
		AssignedCarts: m.AssignedCarts,
	}
}

func (r managersResource) List(ctx context.Context) ([]dto.Manager, error) {
	return r.mc.List(ctx)
}

func (r managersResource) Create(ctx context.Context, draft dto.Manager) (dto.Manager, error) {
	return r.mc.Create(ctx, r.draft(draft))
}

func (r managersResource) Update(ctx context.Context, id string, patch dto.Manager) (dto.Manager, error) {
	return r.mc.Update(ctx, id, r.draft(patch))
}

func (r managersResource) Delete(ctx context.Context, id string) error {
	return r.mc.Delete(ctx, id)
}

func (a *app) managers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("managers", flag.ContinueOnError)
	name := fs.String("name", "", "manager name")
	email := fs.String("email", "", "manager email")
	password := fs.String("password", "", "manager password")
	shopName := fs.String("shop-name", "", "shop name")
	shopAddress := fs.String("shop-address", "", "shop address")
	phone := fs.String("phone", "", "shop phone")
	assign := fs.String("assign", "", "comma-separated cart ids to assign")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireSession(guard.Admin); err != nil {
		return err
	}
	c, _, err := a.client("admin")
	if err != nil {
		return err
	}
	mc := api.NewManagersClient(c, api.NewCartsClient(c))
	p := panel.New[dto.Manager](managersResource{mc: mc, password: *password},
		func(e dto.Manager) string { return e.ID }, panel.Prepend)

	action := fs.Arg(0)
	if action == "" {
		action = "list"
	}
	switch action {
	case "list":
		if err := p.Load(ctx); err != nil {
			return errors.New(p.Err())
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSHOP\tSHOP ID")
		for _, m := range p.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.ManagerName, m.Email, m.Shop.Name, m.Shop.ID)
		}
		return w.Flush()
	case "add":
		draft := validate.ManagerDraft{
			ManagerName: *name,
			Email:       *email,
			Password:    *password,
			ShopName:    *shopName,
			ShopAddress: *shopAddress,
			Phone:       *phone,
		}
		if errs := validate.Manager(draft, false); !errs.OK() {
			return fmt.Errorf("invalid manager draft: %v", errs)
		}

		// The shop id is generated client-side from the shop name and the
		// ids already in use.
		existing, err := mc.List(ctx)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(existing))
		for _, m := range existing {
			ids = append(ids, m.Shop.ID)
		}
		newShopID := shopid.Generate(*shopName, ids)

		var assigned []string
		if *assign != "" {
			assigned = strings.Split(*assign, ",")
		}
		created, err := p.Create(ctx, dto.Manager{
			ManagerName: *name,
			Email:       *email,
			Shop: dto.ShopDescriptor{
				ID:      newShopID,
				Name:    *shopName,
				Address: *shopAddress,
				Phone:   *phone,
			},
			AssignedCarts: assigned,
		})
		if err != nil {
			return errors.New(p.Err())
		}
		if len(assigned) > 0 {
			if err := mc.SyncAssignedCarts(ctx, assigned); err != nil {
				a.logger.Printf("warning: cart status sync incomplete: %v", err)
			}
		}
		a.logger.Printf("manager %s added, shop id %s", created.ManagerName, created.Shop.ID)
		return nil
	case "delete":
		if fs.Arg(1) == "" {
			return errors.New("managers delete needs a manager id")
		}
		if err := p.Delete(ctx, fs.Arg(1)); err != nil {
			return errors.New(p.Err())
		}
		a.logger.Printf("manager %s deleted", fs.Arg(1))
		return nil
	default:
		return fmt.Errorf("unknown managers action %q", action)
	}
}

// productsResource adapts the products client to the panel contract.
type productsResource struct {
	pc     *api.ProductsClient
	shopID string
}

func (r productsResource) List(ctx context.Context) ([]dto.Product, error) {
	return r.pc.List(ctx, r.shopID)
}

func (r productsResource) Create(ctx context.Context, draft dto.Product) (dto.Product, error) {
	return r.pc.Create(ctx, dto.ProductDraft{
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Stock:       draft.Stock,
		Description: draft.Description,
		Image:       draft.Image,
		Shop:        r.shopID,
	})
}

func (r productsResource) Update(ctx context.Context, id string, patch dto.Product) (dto.Product, error) {
	return r.pc.Update(ctx, id, dto.ProductDraft{
		Name:        patch.Name,
		Category:    patch.Category,
		Price:       patch.Price,
		Stock:       patch.Stock,
		Description: patch.Description,
		Image:       patch.Image,
		Shop:        r.shopID,
	})
}

func (r productsResource) Delete(ctx context.Context, id string) error {
	return r.pc.Delete(ctx, id)
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	category := fs.String("category", "", "product category")
	price := fs.Float64("price", 0, "unit price")
	stock := fs.Int("stock", 0, "units in stock")
	description := fs.String("description", "", "product description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireSession(guard.Manager); err != nil {
		return err
	}
	c, sess, err := a.client("manager")
	if err != nil {
		return err
	}
	shopID := sess.ShopID()
	if shopID == "" {
		return errors.New("no shop id in the session; log in again")
	}

	p := panel.New[dto.Product](productsResource{pc: api.NewProductsClient(c), shopID: shopID},
		func(e dto.Product) string { return e.ID }, panel.Append)

	action := fs.Arg(0)
	if action == "" {
		action = "list"
	}
	switch action {
	case "list":
		if err := p.Load(ctx); err != nil {
			return errors.New(p.Err())
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
		for _, pr := range p.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\n", pr.ID, pr.Name, pr.Category, pr.Price, pr.Stock)
		}
		return w.Flush()
	case "add":
		draft := validate.ProductDraft{Name: *name, Category: *category, Price: *price, Stock: *stock}
		if errs := validate.Product(draft); !errs.OK() {
			return fmt.Errorf("invalid product draft: %v", errs)
		}
		created, err := p.Create(ctx, dto.Product{
			Name:        *name,
			Category:    *category,
			Price:       *price,
			Stock:       *stock,
			Description: *description,
		})
		if err != nil {
			return errors.New(p.Err())
		}
		a.logger.Printf("product %s added (%s)", created.Name, created.ID)
		return nil
	case "delete":
		if fs.Arg(1) == "" {
			return errors.New("products delete needs a product id")
		}
		if err := p.Delete(ctx, fs.Arg(1)); err != nil {
			return errors.New(p.Err())
		}
		a.logger.Printf("product %s deleted", fs.Arg(1))
		return nil
	default:
		return fmt.Errorf("unknown products action %q", action)
	}
}

func (a *app) analytics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ContinueOnError)
	rng := fs.String("range", "day", "day, week or month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireSession(guard.Manager); err != nil {
		return err
	}
	c, sess, err := a.client("manager")
	if err != nil {
		return err
	}
	shopID := sess.ShopID()
	if shopID == "" {
		return errors.New("no shop id in the session; log in again")
	}

	ac := api.NewAnalyticsClient(c)

	sales, err := ac.Sales(ctx, shopID, api.TimeRange(*rng))
	if err != nil {
		return err
	}
	if sales.Degraded {
		a.logger.Printf("%s", sales.Notice)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tSALES\tORDERS\tCUSTOMERS")
	for _, pt := range sales.Points {
		fmt.Fprintf(w, "%s\t%.0f\t%d\t%d\n", pt.Period, pt.Sales, pt.Orders, pt.Customers)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	top, err := ac.TopProducts(ctx, shopID, 5)
	if err != nil {
		return err
	}
	fmt.Println("top products:")
	for _, tp := range top.Products {
		fmt.Printf("  %-24s %-12s %4d sold  %10.0f revenue  +%d%%\n",
			tp.Name, tp.Category, tp.UnitsSold, tp.Revenue, tp.Growth)
	}

	cats, err := ac.SalesByCategory(ctx, shopID)
	if err != nil {
		return err
	}
	fmt.Println("sales by category:")
	for _, cs := range cats.Categories {
		fmt.Printf("  %-16s %.0f%%\n", cs.Category, cs.Sales)
	}
	return nil
}
