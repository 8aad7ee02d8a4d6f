package menu

import (
	"fmt"
	"html"
	"strings"

	"catalogbot/app/catalog"
	"catalogbot/app/news"
)

// Mode selects the parse mode the transport should use for the text.
type Mode int

const (
	ModePlain Mode = iota
	ModeHTML
)

// View is a rendered screen: display text, button grid, and parse mode.
type View struct {
	Text     string
	Keyboard [][]Button
	Mode     Mode
}

const (
	rootText = "Hi! Pick a brand below, then a product to get its usage instructions — or check the latest news."
	noNews   = "No news yet."

	labelNews    = "📰 Latest news"
	labelHome    = "🏠 Main menu"
	labelBrandUp = "⬅️ Back to products"
)

// Renderer turns screens into views. It holds only layout configuration, so
// a single Renderer is safe for concurrent use.
type Renderer struct {
	rowWidth int
	maxNews  int
}

// NewRenderer builds a renderer. Non-positive arguments fall back to the
// defaults: 2 buttons per row, 5 news items.
func NewRenderer(rowWidth, maxNews int) *Renderer {
	if rowWidth < 1 {
		rowWidth = 2
	}
	if maxNews < 1 {
		maxNews = 5
	}
	return &Renderer{rowWidth: rowWidth, maxNews: maxNews}
}

// Render produces the view for a screen. It is deterministic: equal screen,
// catalog, and news inputs yield byte-identical output.
func (r *Renderer) Render(s Screen, cat *catalog.Snapshot, items []news.Item) View {
	switch sc := s.(type) {
	case Root:
		return r.rootView(cat, sc.Warning)
	case BrandList:
		return r.brandView(cat, sc.Brand)
	case ProductDetail:
		return r.productView(cat, sc.Brand, sc.Product)
	case NewsList:
		return r.newsView(cat, items)
	default:
		return r.rootView(cat, "")
	}
}

func (r *Renderer) rootView(cat *catalog.Snapshot, warning string) View {
	text := rootText
	if warning != "" {
		text = warning + "\n" + rootText
	}
	return View{
		Text:     text,
		Keyboard: r.rootButtons(cat),
		Mode:     ModePlain,
	}
}

// rootButtons lays out one button per brand, then appends the news action as
// its own row after chunking.
func (r *Renderer) rootButtons(cat *catalog.Snapshot) [][]Button {
	brands := cat.Brands()
	actions := make([]Button, len(brands))
	for i, b := range brands {
		actions[i] = Button{Label: b, Token: BrandToken(b).String()}
	}
	rows := Layout(actions, r.rowWidth)
	rows = append(rows, []Button{{Label: labelNews, Token: NewsToken().String()}})
	return rows
}

func (r *Renderer) brandView(cat *catalog.Snapshot, brand string) View {
	products, err := cat.Products(brand)
	if err != nil {
		// Brand vanished between resolve and render; degrade to an empty list.
		products = nil
	}
	actions := make([]Button, len(products))
	for i, p := range products {
		actions[i] = Button{Label: p, Token: ProductToken(brand, p).String()}
	}
	rows := Layout(actions, r.rowWidth)
	rows = append(rows, []Button{{Label: labelHome, Token: HomeToken().String()}})
	return View{
		Text:     fmt.Sprintf("Choose a product of brand «%s»:", brand),
		Keyboard: rows,
		Mode:     ModePlain,
	}
}

func (r *Renderer) productView(cat *catalog.Snapshot, brand, product string) View {
	instruction, err := cat.Instruction(brand, product)
	if err != nil {
		instruction = ""
	}
	// The stored instruction may carry markup; it is passed through verbatim.
	text := brand + " → " + product + "\n\n" + instruction
	rows := [][]Button{
		{{Label: labelBrandUp, Token: BrandToken(brand).String()}},
		{{Label: labelHome, Token: HomeToken().String()}},
	}
	return View{Text: text, Keyboard: rows, Mode: ModeHTML}
}

func (r *Renderer) newsView(cat *catalog.Snapshot, items []news.Item) View {
	return View{
		Text:     r.newsText(items),
		Keyboard: r.rootButtons(cat),
		Mode:     ModeHTML,
	}
}

// newsText renders up to maxNews items. News fields are data, not markup,
// so they are HTML-escaped before the renderer adds its own tags.
func (r *Renderer) newsText(items []news.Item) string {
	if len(items) == 0 {
		return noNews
	}
	if len(items) > r.maxNews {
		items = items[:r.maxNews]
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "<b>%d. %s</b>", i+1, html.EscapeString(it.Title))
		if it.Date != "" {
			fmt.Fprintf(&b, " — <i>%s</i>", html.EscapeString(it.Date))
		}
		if it.Summary != "" {
			b.WriteString("\n")
			b.WriteString(html.EscapeString(it.Summary))
		}
		if it.URL != "" {
			fmt.Fprintf(&b, "\n<a href=\"%s\">Read more</a>", html.EscapeString(it.URL))
		}
	}
	return b.String()
}
