// Package renderer formats cryptotrack records as markdown for terminal
// display.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/hnath/cryptotrack"
	md "github.com/nao1215/markdown"
)

// Comparison renders a comparison table, one row per quote record in
// selection order.
func Comparison(title string, records []cryptotrack.QuoteRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(records) == 0 {
		doc.PlainText("No coins selected.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Cryptocurrency", "Price (USD)", "Market Cap", "24h Volume", "Circulating Supply"},
		Rows:   [][]string{},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s (%s)", r.Name, r.Ticker),
			"$" + r.PriceUSD.StringFixed(2),
			"$" + r.MarketCap.String(),
			"$" + r.Volume24h.String(),
			r.CirculatingSupply.String(),
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// Conversion renders one conversion result with its effective rate.
func Conversion(r *cryptotrack.ConversionResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Converted Amount")
	result := cryptotrack.M(r.Result, r.To)
	doc.PlainText(fmt.Sprintf("%s %s = %s", r.Amount.String(), r.From, result.String()))
	doc.PlainText(fmt.Sprintf("1 %s = %s %s", r.From, r.Rate.String(), result.Currency()))
	doc.Build()
	return buf.String()
}

// History renders the conversion log, newest first.
func History(entries []cryptotrack.ConversionResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Previous Conversions")
	if len(entries) == 0 {
		doc.PlainText("No conversions recorded.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"When", "Amount", "Pair", "Rate", "Result"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.RecordedAt.Format("2006-01-02 15:04"),
			e.Amount.String(),
			fmt.Sprintf("%s → %s", e.From, e.To),
			e.Rate.String(),
			e.Result.StringFixed(2),
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// Listing renders the symbol listing, marking selected symbols.
func Listing(symbols []cryptotrack.Symbol, selection *cryptotrack.Selection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cryptocurrencies by Market Cap")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"", "ID", "Name", "Ticker"},
		Rows:      [][]string{},
	}
	for _, s := range symbols {
		mark := ""
		if selection != nil && selection.Has(s.ID) {
			mark = "✓"
		}
		table.Rows = append(table.Rows, []string{mark, s.ID, s.Name, s.Ticker})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// Breakdown renders the portfolio breakdown with percentage shares.
func Breakdown(entries []cryptotrack.PortfolioEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Breakdown")
	if len(entries) == 0 {
		doc.PlainText("No portfolio set. Use for instance BTC:40,ETH:60.")
		doc.Build()
		return buf.String()
	}

	shares := cryptotrack.Shares(entries)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Position", "Weight", "Share"},
		Rows:      [][]string{},
	}
	for i, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Name,
			e.Weight.String(),
			shares[i].String() + "%",
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// Posts renders the community feed, newest first.
func Posts(posts []cryptotrack.Post) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Community Posts")
	if len(posts) == 0 {
		doc.PlainText("No posts yet.")
	}
	for _, p := range posts {
		doc.H2(fmt.Sprintf("%s by %s", p.Title, p.Author.Name))
		doc.PlainText(p.Content)
		doc.PlainText(fmt.Sprintf("👍 %d likes · ⬆ %d upvotes · %d comments · id %s",
			p.Likes, p.Upvotes, len(p.Comments), p.ID))
		for _, c := range p.Comments {
			doc.BulletList(fmt.Sprintf("%s: %s", c.Author.Name, c.Text))
		}
	}
	doc.Build()
	return buf.String()
}

// Events renders the events of one day.
func Events(day cryptotrack.Date, events []cryptotrack.Event) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Events on " + day.String())
	if len(events) == 0 {
		doc.PlainText("No events available.")
	}
	for _, e := range events {
		doc.H2(e.Title)
		doc.PlainText(e.Description)
		if e.Link != "" {
			doc.PlainText("🔗 " + e.Link)
		}
	}
	doc.Build()
	return buf.String()
}

// News renders the latest headlines.
func News(items []cryptotrack.NewsItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Latest News")
	if len(items) == 0 {
		doc.PlainText("No news available.")
	}
	for _, n := range items {
		doc.H2(n.Title)
		if n.Source != "" {
			doc.PlainText("Source: " + n.Source)
		}
		doc.PlainText(n.Body)
		doc.PlainText(n.URL)
	}
	doc.Build()
	return buf.String()
}
