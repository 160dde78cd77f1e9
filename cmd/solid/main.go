// Command solid runs the five SOLID principle demos in a fixed order and
// prints one line per demonstrated operation.
//
// The program is its own composition root: the example values come from
// config.LoadFromEnv, and the app's dependencies are wired explicitly with
// the di helper before anything runs.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/sghaida/solid/config"
	"github.com/sghaida/solid/di"
	"github.com/sghaida/solid/dip"
	"github.com/sghaida/solid/isp"
	"github.com/sghaida/solid/lsp"
	"github.com/sghaida/solid/ocp"
	"github.com/sghaida/solid/srp"
)

/*
Binding keys for the app's wiring.
*/
const (
	keyConfig      di.Key = "config"
	keyEmailSender di.Key = "email-sender"
	keySMSSender   di.Key = "sms-sender"
)

// app holds everything the five demos need, wired once in buildApp.
type app struct {
	out io.Writer
	cfg *config.Config

	email dip.MessageSender
	sms   dip.MessageSender
}

// buildApp wires the app: config plus the two delivery channels for the
// dependency inversion demo.
func buildApp(out io.Writer, cfg config.Config) (*app, error) {
	application := di.New(func() *app { return &app{out: out} })

	cfgComponent := di.New(func() *config.Config { return &cfg })
	emailComponent := di.New(func() *dip.EmailSender { return dip.NewEmailSender(out) })
	smsComponent := di.New(func() *dip.SMSSender { return dip.NewSMSSender(out) })

	err := application.Apply(
		di.Bind(keyConfig, cfgComponent, func(a *app, c *config.Config) { a.cfg = c }),
		di.Bind(keyEmailSender, emailComponent, func(a *app, s *dip.EmailSender) { a.email = s }),
		di.Bind(keySMSSender, smsComponent, func(a *app, s *dip.SMSSender) { a.sms = s }),
	)
	if err != nil {
		return nil, err
	}
	return application.Value(), nil
}

// run executes the five demos in their fixed order.
func (a *app) run() {
	a.runBilling()
	a.runShapes()
	a.runBirds()
	a.runDevices()
	a.runNotifications()
}

// runBilling: single responsibility. Rendering and persisting the same
// record are two separate operations.
func (a *app) runBilling() {
	inv := srp.NewInvoice(a.cfg.InvoiceID, a.cfg.InvoiceAmount)
	srp.NewInvoicePrinter(a.out).Print(inv)
	srp.NewInvoiceSaver(a.out).Save(inv)
}

// runShapes: open/closed. The calculator sums through the Shape capability
// without knowing the concrete variants.
func (a *app) runShapes() {
	shapes := []ocp.Shape{
		ocp.Circle{Radius: 1},
		ocp.Rectangle{Width: 2, Height: 3},
	}

	var calc ocp.AreaCalculator
	total := calc.TotalArea(shapes)
	fmt.Fprintf(a.out, "Total area = %s\n", strconv.FormatFloat(total, 'f', -1, 64))
}

// runBirds: liskov substitution. LetItFly takes Flyable, so only the
// sparrow can go there; the penguin just eats.
func (a *app) runBirds() {
	lsp.LetItFly(lsp.NewSparrow(a.out))
	lsp.NewPenguin(a.out).Eat()
}

// runDevices: interface segregation. The client holds the Printer
// capability for the simple device and only the MFP ever scans.
func (a *app) runDevices() {
	var p isp.Printer = isp.NewSimplePrinter(a.out)
	p.Print(a.cfg.Document)

	isp.NewMultiFunctionPrinter(a.out).Scan()
}

// runNotifications: dependency inversion. Same service, different injected
// channel; only the construction differs.
func (a *app) runNotifications() {
	dip.NewNotificationService(a.email).Notify(a.cfg.EmailTo, a.cfg.WelcomeMsg)
	dip.NewNotificationService(a.sms).Notify(a.cfg.SMSTo, a.cfg.OTPMsg)
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	a, err := buildApp(os.Stdout, cfg)
	if err != nil {
		log.Fatal(err)
	}
	a.run()
}
