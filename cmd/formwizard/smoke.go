package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/catalog"
	"github.com/goliatone/go-formwizard/pkg/document"
	"github.com/goliatone/go-formwizard/pkg/document/roddoc"
	"github.com/goliatone/go-formwizard/pkg/model"
)

const pollInterval = 100 * time.Millisecond

func newSmokeCmd(a *app) *cobra.Command {
	var (
		headless bool
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "smoke [url]",
		Short: "Drive a running form in a headless browser",
		Long: `Opens the form in Chrome and checks the navigation contract: a blank
required field blocks Next, every page can be filled and left, the address
carries the page number, and the back button restores the previous page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := "http://localhost" + a.cfg.Server.Addr + "/form"
			if len(args) == 1 {
				url = args[0]
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			cat, err := a.catalog(ctx)
			if err != nil {
				return err
			}
			return smoke(ctx, a.logger, cmd.OutOrStdout(), cat, url, headless)
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", true, "run the browser without a window")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline")
	return cmd
}

func smoke(ctx context.Context, logger *zap.Logger, out io.Writer, cat *catalog.Catalog, url string, headless bool) error {
	controlURL, err := launcher.New().Headless(headless).Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}
	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()

	logger.Info("opening form", zap.String("url", url))
	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("load %s: %w", url, err)
	}

	doc := roddoc.New(ctx, page)
	hist := roddoc.NewHistory(ctx, page)
	report := func(step string) {
		fmt.Fprintf(out, "ok  %s\n", step)
	}

	first, err := cat.At(1)
	if err != nil {
		return err
	}
	if err := waitText(ctx, doc, document.IDTitle, first.Title); err != nil {
		return fmt.Errorf("initial page: %w", err)
	}
	report("page 1 shown")

	if err := doc.Click(document.IDNext); err != nil {
		return err
	}
	if err := waitVisible(ctx, doc, document.IDWarning); err != nil {
		return fmt.Errorf("blank page was not rejected: %w", err)
	}
	report("blank required field rejected")

	for idx := 1; idx < cat.Len(); idx++ {
		fields, err := cat.Fields(idx)
		if err != nil {
			return err
		}
		for _, field := range fields {
			if err := doc.SetValue(document.PageID(idx), field.Label, sampleValue(field)); err != nil {
				return err
			}
		}
		if err := doc.Click(document.IDNext); err != nil {
			return err
		}

		next, err := cat.At(idx + 1)
		if err != nil {
			return err
		}
		if err := waitText(ctx, doc, document.IDTitle, next.Title); err != nil {
			return fmt.Errorf("advance to page %d: %w", idx+1, err)
		}
		location, err := doc.Location()
		if err != nil {
			return err
		}
		if !strings.Contains(location, "page="+strconv.Itoa(idx+1)) {
			return fmt.Errorf("address %q does not name page %d", location, idx+1)
		}
		report(fmt.Sprintf("page %d shown at %s", idx+1, location))
	}

	if cat.Len() > 1 {
		if err := hist.Back(); err != nil {
			return err
		}
		previous, err := cat.At(cat.Len() - 1)
		if err != nil {
			return err
		}
		if err := waitText(ctx, doc, document.IDTitle, previous.Title); err != nil {
			return fmt.Errorf("back navigation: %w", err)
		}
		report(fmt.Sprintf("back restored page %d", cat.Len()-1))
	}
	return nil
}

// sampleValue picks a value that satisfies the field's constraints.
func sampleValue(field model.FieldSpec) string {
	if len(field.Options) > 0 {
		return field.Options[0]
	}
	pattern, err := model.CompilePattern(field.Pattern)
	if err != nil || pattern == nil {
		return "smoke"
	}
	for _, candidate := range []string{"1", "12", "2000", "smoke", "a", "A1"} {
		if pattern.MatchString(candidate) && (field.MaxLength == 0 || len(candidate) <= field.MaxLength) {
			return candidate
		}
	}
	return "1"
}

func waitText(ctx context.Context, doc *roddoc.Document, id, want string) error {
	var last string
	err := poll(ctx, func() (bool, error) {
		text, err := doc.Text(id)
		if err != nil {
			return false, err
		}
		last = text
		return text == want, nil
	})
	if err != nil {
		return fmt.Errorf("%s is %q, want %q: %w", id, last, want, err)
	}
	return nil
}

func waitVisible(ctx context.Context, doc *roddoc.Document, id string) error {
	return poll(ctx, func() (bool, error) {
		return doc.Visible(id)
	})
}

func poll(ctx context.Context, check func() (bool, error)) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		ok, err := check()
		if err != nil && !errors.Is(err, document.ErrElementNotFound) {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
