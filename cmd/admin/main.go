package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/aldric144/blkxchange-frontend-new/internal/config"
	"github.com/aldric144/blkxchange-frontend-new/internal/gateway"
	"github.com/aldric144/blkxchange-frontend-new/internal/logger"
	"github.com/aldric144/blkxchange-frontend-new/internal/models"
	"github.com/aldric144/blkxchange-frontend-new/internal/notify"
	"github.com/aldric144/blkxchange-frontend-new/internal/review"
	"github.com/aldric144/blkxchange-frontend-new/internal/search"
	"github.com/aldric144/blkxchange-frontend-new/internal/secret"

	"go.uber.org/zap"
)

// Terminal review console. Prompts here are deliberately synchronous: nothing
// else happens until the operator answers, matching the blocking admin flow of
// the hosted frontend.
type console struct {
	in    *bufio.Reader
	gw    *gateway.Client
	cfg   *config.Config
	log   *zap.Logger
	store *secret.Store
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New("error", cfg.LogFormat)
	defer log.Sync()

	store, err := secret.NewStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "secret store:", err)
		os.Exit(1)
	}

	c := &console{
		in:    bufio.NewReader(os.Stdin),
		gw:    gateway.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, log),
		cfg:   cfg,
		log:   log,
		store: store,
	}

	adminSecret, err := store.Obtain(secret.PrompterFunc(c.prompt))
	if err != nil {
		fmt.Fprintln(os.Stderr, "admin password:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c.run(ctx, adminSecret)
}

func (c *console) prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *console) confirm(question string) bool {
	answer, err := c.prompt(question + " [y/N]")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (c *console) run(ctx context.Context, adminSecret string) {
	for {
		fmt.Println()
		fmt.Println("BlkXchange admin console")
		fmt.Println("  1) vendor applications")
		fmt.Println("  2) product submissions")
		fmt.Println("  3) search")
		fmt.Println("  4) notifications")
		fmt.Println("  q) quit")

		choice, err := c.prompt("Choice")
		if err != nil {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			reviewLoop(ctx, c, review.VendorApplications(c.gw, adminSecret), describeApplication)
		case "2":
			reviewLoop(ctx, c, review.ProductSubmissions(c.gw, adminSecret), describeSubmission)
		case "3":
			c.searchLoop(ctx)
		case "4":
			c.notificationsLoop(ctx)
		case "q":
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func reviewLoop[T any](ctx context.Context, c *console, kind review.Kind[T], describe func(T)) {
	queue := review.NewQueue(kind, c.log)
	for {
		if err := queue.Refresh(ctx); err != nil {
			var apiErr *gateway.APIError
			if errors.As(err, &apiErr) && apiErr.Unauthorized() {
				fmt.Println("Unauthorized. Restart the console and enter the correct admin password.")
				c.store.Clear()
				return
			}
			fmt.Println("Unable to load:", err)
			return
		}

		summary := queue.Summary()
		fmt.Printf("\n%s — total %d, pending %d, approved %d\n",
			kind.Name, summary.Total, summary.Pending, summary.Approved)
		if summary.Total == 0 {
			fmt.Println("Nothing to review.")
			return
		}
		for _, item := range queue.Items() {
			badge := kind.Status(item).Badge()
			fmt.Printf("  %-36s  %-10s  %s\n", kind.ID(item), badge.Label, kind.Label(item))
		}

		id, err := c.prompt("Entry id ([b]ack)")
		if err != nil || id == "b" || id == "" {
			return
		}
		item, ok := queue.Get(id)
		if !ok {
			fmt.Println("No such entry.")
			continue
		}

		describe(item)
		if !kind.Status(item).Pending() {
			// Resolved entries are view-only; the workflow is terminal.
			continue
		}

		action, err := c.prompt("[a]pprove / [r]eject / [b]ack")
		if err != nil {
			return
		}
		switch strings.TrimSpace(action) {
		case "a":
			err = queue.Approve(ctx, id, review.ConfirmerFunc(c.confirm))
			if errors.Is(err, review.ErrDeclined) {
				continue
			}
		case "r":
			reason, perr := c.prompt("Reason for rejection (optional)")
			if perr != nil {
				return
			}
			err = queue.Reject(ctx, id, reason)
		default:
			continue
		}
		if err != nil {
			var apiErr *gateway.APIError
			if errors.As(err, &apiErr) {
				fmt.Println("Error:", apiErr.Detail)
			} else {
				fmt.Println("Error:", err)
			}
			continue
		}
		fmt.Println("Done.")
	}
}

func describeApplication(a models.VendorApplication) {
	badge := a.Status.Badge()
	fmt.Printf("\n%s [%s]\n", a.BusinessName, badge.Label)
	fmt.Printf("  Contact:     %s <%s> %s\n", a.ContactName, a.Email, a.Phone)
	fmt.Printf("  Address:     %s\n", a.Address)
	if a.Website != "" {
		fmt.Printf("  Website:     %s\n", a.Website)
	}
	fmt.Printf("  Category:    %s, %s, %s\n", a.Category, a.PriceRange, a.FulfillmentMethod)
	fmt.Printf("  Description: %s\n", a.Description)
	if len(a.ImageURLs) > 0 {
		fmt.Printf("  Images:      %s\n", strings.Join(a.ImageURLs, ", "))
	}
	fmt.Printf("  Agreement:   %v, submitted %s\n", a.AgreementAccepted, a.CreatedAt)
}

func describeSubmission(p models.ProductSubmission) {
	badge := p.Status.Badge()
	fmt.Printf("\n%s [%s]\n", p.Name, badge.Label)
	fmt.Printf("  Vendor:      %s\n", p.VendorID)
	fmt.Printf("  Price:       $%.2f, quantity %d\n", p.Price, p.Quantity)
	fmt.Printf("  Category:    %s\n", p.Category)
	fmt.Printf("  Description: %s\n", p.Description)
	if len(p.ImageURLs) > 0 {
		fmt.Printf("  Images:      %s\n", strings.Join(p.ImageURLs, ", "))
	}
	fmt.Printf("  Submitted:   %s\n", p.CreatedAt)
}

func (c *console) searchLoop(ctx context.Context) {
	fmt.Println("\nType to search (empty input clears, /q to leave).")

	widget := search.NewWidget(c.gw, c.cfg.SearchDebounce, c.log, func(results []models.SearchResult) {
		if len(results) == 0 {
			fmt.Println("  no results")
			return
		}
		for _, r := range results {
			fmt.Printf("  [%s] %s — %s (%s)\n", r.Type, r.Title, r.Subtitle, r.URL)
		}
	})
	defer widget.Close()

	for {
		line, err := c.prompt("search")
		if err != nil || line == "/q" {
			return
		}
		widget.Input(ctx, line)
	}
}

func (c *console) notificationsLoop(ctx context.Context) {
	center := notify.NewCenter(c.gw, c.cfg.NotifyPollInterval, c.log)
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go center.Run(pollCtx)

	for {
		items := center.List()
		fmt.Printf("\nNotifications (%d unread)\n", center.UnreadCount())
		if len(items) == 0 {
			fmt.Println("  none")
		}
		for _, n := range items {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("  %s %-36s [%s] %s — %s\n", marker, n.ID, n.Type, n.Title, n.Message)
		}

		cmd, err := c.prompt("r <id> read / a read all / d <id> delete / f refresh / b back")
		if err != nil {
			return
		}
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "r":
			if len(fields) > 1 {
				center.MarkRead(ctx, fields[1])
			}
		case "a":
			center.MarkAllRead(ctx)
		case "d":
			if len(fields) > 1 {
				center.Delete(ctx, fields[1])
			}
		case "f":
			center.Refresh(ctx)
		case "b":
			return
		}
	}
}
