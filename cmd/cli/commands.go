package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var errUsage = errors.New("invalid arguments")

type cli struct {
	app          *app.App
	in           *bufio.Reader
	out          io.Writer
	readPassword func(prompt string) (string, error)
	isTerminal   func(fd int) bool

	ok    *color.Color
	label *color.Color
}

func newCLI(a *app.App, in io.Reader, out io.Writer) *cli {
	c := &cli{
		app:        a,
		in:         bufio.NewReader(in),
		out:        out,
		ok:         color.New(color.FgGreen, color.Bold),
		label:      color.New(color.FgCyan),
		isTerminal: term.IsTerminal,
	}
	c.readPassword = c.promptPassword
	return c
}

// promptPassword reads without echo when stdin is a terminal and falls back
// to a plain line read otherwise.
func (c *cli) promptPassword(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt) //nolint:errcheck
	fd := int(os.Stdin.Fd())
	if c.isTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(c.out) //nolint:errcheck
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		if len(rest) != 2 {
			return fmt.Errorf("%w: register <name> <phone>", errUsage)
		}
		return c.register(ctx, rest[0], rest[1])
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("%w: show <phone>", errUsage)
		}
		return c.show(ctx, rest[0])
	case "deposit":
		if len(rest) != 2 {
			return fmt.Errorf("%w: deposit <phone> <amount>", errUsage)
		}
		return c.deposit(ctx, rest[0], rest[1])
	case "transfer":
		if len(rest) != 3 {
			return fmt.Errorf("%w: transfer <phone> <receiver_phone> <amount>", errUsage)
		}
		return c.transfer(ctx, rest[0], rest[1], rest[2])
	case "history":
		if len(rest) < 1 || len(rest) > 2 {
			return fmt.Errorf("%w: history <phone> [limit]", errUsage)
		}
		limit := 0
		if len(rest) == 2 {
			n, err := strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("%w: limit must be a number", errUsage)
			}
			limit = n
		}
		return c.history(ctx, rest[0], limit)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) register(ctx context.Context, name, phone string) error {
	password, err := c.readPassword("Choose a password: ")
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	created, err := c.app.AccountService.CreateAccount(ctx, name, phone, hash)
	if err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Account registered: %s\n", created.Number.Display()) //nolint:errcheck
	return nil
}

// login authenticates the holder of phone before any account-scoped command.
func (c *cli) login(ctx context.Context, phone string) (*account.Account, error) {
	password, err := c.readPassword("Password: ")
	if err != nil {
		return nil, err
	}
	return c.app.AuthService.Login(ctx, phone, password)
}

func (c *cli) show(ctx context.Context, phone string) error {
	a, err := c.login(ctx, phone)
	if err != nil {
		return err
	}
	c.field("Name", a.Name)
	c.field("Phone", a.Phone)
	c.field("Number", a.Number.Display())
	c.field("Balance", a.Balance.String())
	return nil
}

func (c *cli) field(name, value string) {
	c.label.Fprintf(c.out, "%-9s", name+":") //nolint:errcheck
	fmt.Fprintln(c.out, value)               //nolint:errcheck
}

func (c *cli) deposit(ctx context.Context, phone, rawAmount string) error {
	amount, err := money.Parse(rawAmount)
	if err != nil {
		return err
	}
	a, err := c.login(ctx, phone)
	if err != nil {
		return err
	}
	balance, err := c.app.AccountService.Deposit(ctx, a.ID, amount)
	if err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Deposited %s. New balance: %s\n", amount, balance) //nolint:errcheck
	return nil
}

func (c *cli) transfer(ctx context.Context, phone, receiverPhone, rawAmount string) error {
	amount, err := money.Parse(rawAmount)
	if err != nil {
		return err
	}
	a, err := c.login(ctx, phone)
	if err != nil {
		return err
	}
	res, err := c.app.AccountService.Transfer(ctx, a.ID, receiverPhone, amount)
	if err != nil {
		return err
	}
	c.ok.Fprintf(c.out, "Sent %s to %s. New balance: %s\n", amount, res.ReceiverName, res.NewBalance) //nolint:errcheck
	return nil
}

func (c *cli) history(ctx context.Context, phone string, limit int) error {
	a, err := c.login(ctx, phone)
	if err != nil {
		return err
	}
	views, err := c.app.LedgerService.ListTransactions(ctx, a.ID, limit)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Fprintln(c.out, "No transactions.") //nolint:errcheck
		return nil
	}
	for _, v := range views {
		sign := color.New(color.FgGreen)
		if v.Direction == ledger.DirectionDebit {
			sign = color.New(color.FgRed)
		}
		fmt.Fprintf(c.out, "%s  %-8s ", v.CreatedAt.Format("2006-01-02 15:04:05"), v.Direction) //nolint:errcheck
		sign.Fprintf(c.out, "%12s", v.Amount)                                                   //nolint:errcheck
		fmt.Fprintf(c.out, "  %s (%s)\n", v.CounterpartName, v.CounterpartPhone)                //nolint:errcheck
	}
	return nil
}
