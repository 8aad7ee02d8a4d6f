package bot

import (
	"fmt"
	"sort"
	"strings"

	"catalogbot/app/catalog"
	"catalogbot/app/menu"
	tghelpers "catalogbot/core/telegram/helpers"
	"catalogbot/core/telegram/keyboard"

	"github.com/lithammer/fuzzysearch/fuzzy"
	tele "gopkg.in/telebot.v4"
)

const maxFindResults = 8

type findTarget struct {
	label string
	token string
}

func (b *Bot) handleFind(c tele.Context) error {
	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		return tghelpers.SendPlain(c, "Usage: /find <name>")
	}

	ctx := tghelpers.BuildContext(c)
	snap, err := b.catalog.Load(ctx)
	if err != nil {
		_ = tghelpers.SendPlain(c, textCatalogDown)
		return err
	}

	targets := findTargets(snap)
	keys := make([]string, len(targets))
	for i, t := range targets {
		keys[i] = t.label
	}

	ranks := fuzzy.RankFindNormalizedFold(query, keys)
	if len(ranks) == 0 {
		return tghelpers.SendPlain(c, fmt.Sprintf("Nothing found for «%s».", query))
	}
	sort.Sort(ranks)
	if len(ranks) > maxFindResults {
		ranks = ranks[:maxFindResults]
	}

	buttons := make([]keyboard.InlineBtn, len(ranks))
	for i, r := range ranks {
		t := targets[r.OriginalIndex]
		buttons[i] = inlineBtn(menu.Button{Label: t.label, Token: t.token})
	}
	markup := keyboard.InlineButtons(buttons)
	return tghelpers.SendPlain(c, fmt.Sprintf("Matches for «%s»:", query), markup)
}

// findTargets flattens the snapshot into searchable entries: every brand and
// every brand/product pair, in catalog order.
func findTargets(snap *catalog.Snapshot) []findTarget {
	var targets []findTarget
	for _, b := range snap.All() {
		targets = append(targets, findTarget{
			label: b.Name,
			token: menu.BrandToken(b.Name).String(),
		})
		for _, p := range b.Products {
			targets = append(targets, findTarget{
				label: b.Name + " → " + p.Name,
				token: menu.ProductToken(b.Name, p.Name).String(),
			})
		}
	}
	return targets
}
