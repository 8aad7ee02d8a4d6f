// Package bot wires the menu core to Telegram: it registers commands and
// callback handlers, adapts rendered views to telebot markup, and owns the
// user-visible error texts.
package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catalogbot/app/catalog"
	"catalogbot/app/menu"
	"catalogbot/app/news"
	"catalogbot/core/buildinfo"
	coreconfig "catalogbot/core/config"
	tg "catalogbot/core/telegram"
	"catalogbot/core/telegram/callbacks"
	"catalogbot/core/telegram/commands"
	tghelpers "catalogbot/core/telegram/helpers"
	"catalogbot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

const (
	textCatalogDown = "The catalog is unavailable right now, please try again later."
	textGoneItem    = "This item is no longer available."
	textUnknown     = "I only understand commands. Try /menu."
)

// Bot holds the domain dependencies of all handlers.
type Bot struct {
	cfg      *coreconfig.Config
	catalog  catalog.Store
	news     news.Store
	renderer *menu.Renderer
	disp     *sender.Dispatcher
	started  time.Time
}

// New builds the handler set around the given stores.
func New(cfg *coreconfig.Config, cat catalog.Store, ns news.Store, disp *sender.Dispatcher) *Bot {
	return &Bot{
		cfg:      cfg,
		catalog:  cat,
		news:     ns,
		renderer: menu.NewRenderer(cfg.Catalog.ButtonsPerRow, cfg.Catalog.MaxNewsItems),
		disp:     disp,
		started:  time.Now(),
	}
}

// Register adds all commands and callbacks to the registry.
func (b *Bot) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     b.handleStart,
		Description: "Open the main menu",
	})
	reg.RegisterCommand("/menu", commands.Command{
		Handler:     b.handleMenu,
		Description: "Show the brand menu",
		Aliases:     []string{"menu"},
	})
	reg.RegisterCommand("/events", commands.Command{
		Handler:     b.handleEvents,
		Description: "Latest news",
	})
	reg.RegisterCommand("/find", commands.Command{
		Handler:     b.handleFind,
		Description: "Search brands and products",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     b.helpHandler(reg),
		Description: "How to use this bot",
	})
	reg.RegisterCommand("/version", commands.Command{
		Handler:     b.handleVersion,
		Description: "Build information",
		Hidden:      true,
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     b.handleStats,
		Description: "Runtime counters",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback("home", b.callbackToken("home"))
	_ = reg.RegisterCallback("news", b.callbackToken("news"))
	_ = reg.RegisterCallback("brand", b.callbackToken("brand"))
	_ = reg.RegisterCallback("product", b.callbackToken("product"))
}

type deliverMode int

const (
	deliverSend deliverMode = iota
	deliverEdit
	deliverEditOrSend
)

func (b *Bot) handleStart(c tele.Context) error {
	return b.showScreen(c, menu.HomeToken().String(), deliverSend)
}

func (b *Bot) handleMenu(c tele.Context) error {
	return b.showScreen(c, menu.HomeToken().String(), deliverEditOrSend)
}

func (b *Bot) handleEvents(c tele.Context) error {
	return b.showScreen(c, menu.NewsToken().String(), deliverSend)
}

// callbackToken builds the handler for one callback key. The domain token is
// reconstructed from the key and the escaped payload, then resolved.
func (b *Bot) callbackToken(key string) tele.HandlerFunc {
	return func(c tele.Context) error {
		raw := rebuildToken(key, callbacks.CallbackPayload(c))
		return b.showScreen(c, raw, deliverEdit)
	}
}

// showScreen runs one full navigation step: load a catalog snapshot, resolve
// the token, render, deliver. Every error is converted to a user-visible
// message here and still returned so the handler summary logs the code.
func (b *Bot) showScreen(c tele.Context, raw string, mode deliverMode) error {
	ctx := tghelpers.BuildContext(c)

	snap, err := b.catalog.Load(ctx)
	if err != nil {
		_ = b.deliver(c, menu.View{Text: textCatalogDown, Mode: menu.ModePlain}, mode)
		return err
	}

	screen, err := menu.Resolve(raw, snap)
	if err != nil {
		var mt *menu.MalformedTokenError
		if errors.As(err, &mt) {
			// Keep the current screen, just flash a toast.
			_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
			return err
		}
		var nf *catalog.NotFoundError
		if errors.As(err, &nf) {
			home := [][]menu.Button{{{Label: "🏠 Main menu", Token: menu.HomeToken().String()}}}
			_ = b.deliver(c, menu.View{Text: textGoneItem, Keyboard: home, Mode: menu.ModePlain}, mode)
		}
		return err
	}

	var items []news.Item
	if _, ok := screen.(menu.NewsList); ok {
		items = b.news.Load(ctx)
	}

	return b.deliver(c, b.renderer.Render(screen, snap, items), mode)
}

func (b *Bot) deliver(c tele.Context, v menu.View, mode deliverMode) error {
	markup := markupFrom(v.Keyboard)
	switch {
	case v.Mode == menu.ModeHTML && mode == deliverSend:
		return tghelpers.SendHTML(c, v.Text, markup)
	case v.Mode == menu.ModeHTML && mode == deliverEdit:
		return tghelpers.EditHTML(c, v.Text, markup)
	case v.Mode == menu.ModeHTML:
		return tghelpers.EditOrSendHTML(c, v.Text, markup)
	case mode == deliverSend:
		return tghelpers.SendPlain(c, v.Text, markup)
	case mode == deliverEdit:
		return tghelpers.EditPlain(c, v.Text, markup)
	default:
		return tghelpers.EditOrSendPlain(c, v.Text, markup)
	}
}

func (b *Bot) helpHandler(reg *tg.Registry) tele.HandlerFunc {
	return func(c tele.Context) error {
		var sb strings.Builder
		sb.WriteString("Navigate the catalog with the buttons. Commands:\n")
		for _, cmd := range reg.ListCommands(true) {
			fmt.Fprintf(&sb, "\n%s — %s", cmd.Text, cmd.Description)
		}
		return tghelpers.SendPlain(c, sb.String())
	}
}

func (b *Bot) handleVersion(c tele.Context) error {
	text := fmt.Sprintf("catalogbot %s (commit %s, built %s)",
		buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	return tghelpers.SendPlain(c, text)
}

func (b *Bot) handleStats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	var brands, products int
	if snap, err := b.catalog.Load(ctx); err == nil {
		brands, products = snap.Counts()
	}
	items := len(b.news.Load(ctx))

	var sendErrs uint64
	if b.disp != nil {
		sendErrs = b.disp.ErrorCount()
	}

	text := fmt.Sprintf(
		"brands: %d\nproducts: %d\nnews items: %d\nsend errors: %d\nuptime: %s",
		brands, products, items, sendErrs,
		time.Since(b.started).Round(time.Second),
	)
	return tghelpers.SendPlain(c, text)
}

// HandleUnknownText answers free-form text that matched no command or alias.
func (b *Bot) HandleUnknownText(c tele.Context) error {
	return tghelpers.SendPlain(c, textUnknown)
}
