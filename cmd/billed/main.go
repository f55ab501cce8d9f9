// Command billed drives the Billed client from a terminal. The session is
// kept in a local SQLite file between runs.
//
//	billed login -role employee -email a@b.tld -password azerty
//	billed bills
//	billed new -file ticket.jpg -type Transports -name "Vol" -date 2023-02-01 -amount 348
//	billed view -id <bill id>
//	billed dashboard -status pending
//	billed review -id <bill id> -status accepted -comment ok
//	billed logout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/ElvisGalvez/bill-app/internal/config"
	"github.com/ElvisGalvez/bill-app/internal/frontend"
	"github.com/ElvisGalvez/bill-app/internal/localstore"
	"github.com/ElvisGalvez/bill-app/internal/models"
	"github.com/ElvisGalvez/bill-app/internal/remote"
	"github.com/ElvisGalvez/bill-app/pkg/logging"
)

const usage = "usage: billed <login|bills|new|view|dashboard|review|logout> [flags]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "billed %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

// run executes one command. Resources are released before it returns.
func run(cmd string, args []string) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.Setup(cfg.Env)

	if err := os.MkdirAll(filepath.Dir(cfg.LocalStorage), 0755); err != nil {
		return fmt.Errorf("failed to create local storage directory: %w", err)
	}
	storage, err := localstore.OpenSQLite(cfg.LocalStorage)
	if err != nil {
		return fmt.Errorf("failed to open local storage %s: %w", cfg.LocalStorage, err)
	}
	defer storage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &app{
		out: os.Stdout,
		opts: frontend.Options{
			Store:   remote.New(http.DefaultClient, cfg.APIURL, storage),
			Storage: storage,
			Navigator: frontend.NavigatorFunc(func(route string) {
				logger.Debug("Navigate", "route", route)
			}),
			Modal:  &terminalModal{out: os.Stdout, width: 80},
			Logger: logger,
		},
	}

	return app.run(ctx, cmd, args)
}

type app struct {
	out  io.Writer
	opts frontend.Options
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "bills":
		return a.bills(ctx)
	case "new":
		return a.newBill(ctx, args)
	case "view":
		return a.view(ctx, args)
	case "dashboard":
		return a.dashboard(ctx, args)
	case "review":
		return a.review(ctx, args)
	case "logout":
		return a.logout()
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	role := fs.String("role", "employee", "employee or admin")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	login := frontend.NewLogin(a.opts)
	creds := models.Credentials{Email: *email, Password: *password}

	var session *models.Session
	var err error
	switch *role {
	case "employee":
		session, err = login.HandleSubmitEmployee(ctx, creds)
	case "admin":
		session, err = login.HandleSubmitAdmin(ctx, creds)
	default:
		return fmt.Errorf("unknown role %q", *role)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Connected as %s (%s)\n", session.Email, session.Type)
	return nil
}

func (a *app) bills(ctx context.Context) error {
	bills, err := frontend.NewBills(a.opts).GetBills(ctx)
	if err != nil {
		return err
	}
	a.printBills(bills)
	return nil
}

func (a *app) newBill(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	file := fs.String("file", "", "receipt image (jpg, jpeg or png)")
	var form frontend.BillForm
	fs.StringVar(&form.Type, "type", "Transports", "expense type")
	fs.StringVar(&form.Name, "name", "", "expense name")
	fs.StringVar(&form.Date, "date", "", "expense date (YYYY-MM-DD)")
	fs.StringVar(&form.Amount, "amount", "", "amount including VAT")
	fs.StringVar(&form.VAT, "vat", "", "VAT amount")
	fs.StringVar(&form.Pct, "pct", "", "VAT percentage (default 20)")
	fs.StringVar(&form.Commentary, "commentary", "", "comment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read receipt: %w", err)
	}

	newBill := frontend.NewNewBill(a.opts)
	if _, err := newBill.HandleChangeFile(ctx, *file, content); err != nil {
		return err
	}
	bill, err := newBill.HandleSubmit(ctx, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Bill %s submitted\n", bill.ID)
	return nil
}

func (a *app) view(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	id := fs.String("id", "", "bill id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bill, err := a.find(ctx, *id)
	if err != nil {
		return err
	}
	frontend.NewBills(a.opts).HandleClickIconEye(attributes{frontend.AttrBillURL: bill.FileURL})
	return nil
}

func (a *app) dashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	status := fs.String("status", string(models.StatusPending), "pending, accepted or refused")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dashboard := frontend.NewDashboard(a.opts)
	totals, err := dashboard.Summary(ctx)
	if err != nil {
		return err
	}
	for _, s := range []models.BillStatus{models.StatusPending, models.StatusAccepted, models.StatusRefused} {
		t := totals[s]
		fmt.Fprintf(a.out, "%-8s %3d bills  %s € (TVA %s €)\n", s, t.Count, t.Amount.StringFixed(2), t.VAT.StringFixed(2))
	}
	fmt.Fprintln(a.out)

	bills, err := dashboard.BillsByStatus(ctx, models.BillStatus(*status))
	if err != nil {
		return err
	}
	a.printBills(bills)
	return nil
}

func (a *app) review(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	id := fs.String("id", "", "bill id")
	status := fs.String("status", "", "accepted or refused")
	comment := fs.String("comment", "", "admin comment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bill, err := a.find(ctx, *id)
	if err != nil {
		return err
	}
	if _, err := frontend.NewDashboard(a.opts).Review(ctx, *bill, models.BillStatus(*status), *comment); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Bill %s %s\n", bill.ID, *status)
	return nil
}

func (a *app) logout() error {
	if err := a.opts.Storage.RemoveItem(localstore.KeyJWT); err != nil {
		return err
	}
	return a.opts.Storage.RemoveItem(localstore.KeyUser)
}

func (a *app) find(ctx context.Context, id string) (*models.Bill, error) {
	bills, err := a.opts.Store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].ID == id {
			return &bills[i], nil
		}
	}
	return nil, fmt.Errorf("bill %q not found", id)
}

func (a *app) printBills(bills []models.DisplayBill) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME\tDATE\tAMOUNT\tSTATUS")
	for _, b := range bills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s €\t%s\n", b.ID, b.Type, b.Name, b.Date, b.Amount.StringFixed(2), b.Status)
	}
	w.Flush()
}

// attributes is an Element backed by a map.
type attributes map[string]string

func (a attributes) GetAttribute(name string) string { return a[name] }

// terminalModal prints the modal body when shown.
type terminalModal struct {
	out   io.Writer
	width int
	body  string
}

func (m *terminalModal) SetBody(html string) { m.body = html }

func (m *terminalModal) Modal(command string) {
	if command == "show" {
		fmt.Fprintln(m.out, m.body)
	}
}

func (m *terminalModal) Width() int { return m.width }
