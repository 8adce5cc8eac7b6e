// Package browser connects Flare to a live page over the Chrome DevTools
// Protocol using go-rod. It implements inspector.StyleTarget on top of real
// DOM elements: computed-style reads through getComputedStyle and live edits
// through the element's inline style, both of which are browser primitives —
// nothing here reimplements the cascade.
package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/flarehq/flare/internal/css"
)

// Options controls how Flare reaches the page.
type Options struct {
	// RemoteURL is the devtools endpoint of an already-running browser
	// (e.g. "http://localhost:9222"). Empty means launch a new instance.
	RemoteURL string
	// PageURL is the page to inspect. With a remote browser, an existing
	// tab showing this URL is reused when possible.
	PageURL string
	// Headless launches the browser without a window. Almost never what
	// you want for a visual inspector; kept for scripted runs.
	Headless bool
}

// Inspector owns the browser connection and the page under inspection.
type Inspector struct {
	browser *rod.Browser
	page    *rod.Page
	pageURL string
	logger  *logrus.Entry
}

// Attach connects to (or launches) a browser and opens the target page.
// The returned Inspector must be Closed when the session ends.
func Attach(ctx context.Context, opts Options) (*Inspector, error) {
	logger := logrus.WithField("component", "browser")

	controlURL := opts.RemoteURL
	if controlURL == "" {
		u, err := launcher.New().Headless(opts.Headless).Launch()
		if err != nil {
			return nil, fmt.Errorf("launching browser: %w", err)
		}
		controlURL = u
	} else {
		u, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, fmt.Errorf("resolving devtools URL %s: %w", opts.RemoteURL, err)
		}
		controlURL = u
	}

	b := rod.New().Context(ctx).ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := openPage(b, opts)
	if err != nil {
		b.Close()
		return nil, err
	}

	logger.WithField("url", opts.PageURL).Info("attached to page")
	return &Inspector{
		browser: b,
		page:    page,
		pageURL: opts.PageURL,
		logger:  logger,
	}, nil
}

// openPage reuses an existing tab showing the target URL when attached to a
// remote browser, and creates one otherwise.
func openPage(b *rod.Browser, opts Options) (*rod.Page, error) {
	if opts.RemoteURL != "" && opts.PageURL != "" {
		pages, err := b.Pages()
		if err == nil {
			if page, err := pages.FindByURL(opts.PageURL); err == nil {
				return page, nil
			}
		}
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: opts.PageURL})
	if err != nil {
		return nil, fmt.Errorf("opening page %s: %w", opts.PageURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for page load: %w", err)
	}
	return page, nil
}

// PageURL returns the URL of the page under inspection.
func (i *Inspector) PageURL() string {
	return i.pageURL
}

// Resolve finds all elements matching the CSS selector and wraps them as
// style targets. Labels are "tag#id" or "tag.class"; duplicates get a
// positional ":nth" suffix so every target is addressable in the picker.
func (i *Inspector) Resolve(selector string) ([]*ElementTarget, error) {
	elements, err := i.page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("resolving selector %q: %w", selector, err)
	}

	targets := make([]*ElementTarget, 0, len(elements))
	for _, el := range elements {
		label, err := describeElement(el)
		if err != nil {
			return nil, fmt.Errorf("describing element for %q: %w", selector, err)
		}
		targets = append(targets, &ElementTarget{el: el, label: label})
	}

	// Disambiguate repeated labels: "li.item" -> "li.item:nth(2)".
	counts := lo.CountValuesBy(targets, func(t *ElementTarget) string { return t.label })
	seen := make(map[string]int)
	for _, t := range targets {
		if counts[t.label] > 1 {
			seen[t.label]++
			t.label = fmt.Sprintf("%s:nth(%d)", t.label, seen[t.label])
		}
	}

	i.logger.WithFields(logrus.Fields{
		"selector": selector,
		"matches":  len(targets),
	}).Debug("resolved selector")
	return targets, nil
}

// Close shuts down the browser connection. Pages opened by Flare in a
// launched browser die with it; a remote browser keeps running.
func (i *Inspector) Close() {
	if err := i.browser.Close(); err != nil {
		i.logger.WithError(err).Warn("closing browser")
	}
}

// describeElement builds the selector-ish display label for an element.
func describeElement(el *rod.Element) (string, error) {
	res, err := el.Eval(`() => {
		const tag = this.tagName.toLowerCase();
		if (this.id) return tag + "#" + this.id;
		const cls = (this.getAttribute("class") || "").trim().split(/\s+/)[0];
		return cls ? tag + "." + cls : tag;
	}`)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// ElementTarget implements inspector.StyleTarget for one live DOM element.
type ElementTarget struct {
	el    *rod.Element
	label string
}

// Label returns the element's display label, e.g. "button#submit".
func (t *ElementTarget) Label() string {
	return t.label
}

// ComputedStyle resolves every requested property in a single JS round trip.
// Values come back exactly as getComputedStyle reports them.
func (t *ElementTarget) ComputedStyle(props []css.Property) (map[css.Property]string, error) {
	names := lo.Map(props, func(p css.Property, _ int) string { return p.CSSName() })

	res, err := t.el.Eval(`(names) => {
		const cs = window.getComputedStyle(this);
		const out = {};
		for (const n of names) out[n] = cs.getPropertyValue(n);
		return out;
	}`, names)
	if err != nil {
		return nil, fmt.Errorf("reading computed style of %s: %w", t.label, err)
	}

	values := make(map[css.Property]string, len(props))
	raw := res.Value.Map()
	for _, p := range props {
		if v, ok := raw[p.CSSName()]; ok {
			values[p] = v.Str()
		}
	}
	return values, nil
}

// SetInlineStyle applies value as an inline declaration, the highest
// cascade priority, so the page reflects the edit immediately.
func (t *ElementTarget) SetInlineStyle(prop css.Property, value string) error {
	_, err := t.el.Eval(`(name, value) => { this.style.setProperty(name, value); }`,
		prop.CSSName(), value)
	if err != nil {
		return fmt.Errorf("setting %s on %s: %w", prop.CSSName(), t.label, err)
	}
	return nil
}

// ClearInlineStyle removes the inline declaration for prop, letting the
// original cascade value win again.
func (t *ElementTarget) ClearInlineStyle(prop css.Property) error {
	_, err := t.el.Eval(`(name) => { this.style.removeProperty(name); }`,
		prop.CSSName())
	if err != nil {
		return fmt.Errorf("clearing %s on %s: %w", prop.CSSName(), t.label, err)
	}
	return nil
}
