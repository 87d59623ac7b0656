package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/bazar-khobor/internal/config"
	"github.com/Adda-Baaj/bazar-khobor/internal/crawler"
	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
	"github.com/Adda-Baaj/bazar-khobor/internal/logger"
	"github.com/Adda-Baaj/bazar-khobor/internal/store"
	"github.com/Adda-Baaj/bazar-khobor/pkg/gdelt"
	"github.com/Adda-Baaj/bazar-khobor/pkg/httpclient"
	"github.com/Adda-Baaj/bazar-khobor/pkg/publishers"
)

// runSearch is the whole pipeline: build the request from config and flags,
// execute the one search, then hand the result set to the optional
// enrich/history/publish stages and the printer.
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	req := gdelt.SearchRequest{
		Subject:     args[0],
		Keywords:    flagKeywords,
		Days:        cfg.Days,
		Limit:       cfg.Limit,
		EnglishOnly: cfg.EnglishOnly,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	httpClient := httpclient.NewRestyClient(cfg.Timeout())
	client := gdelt.NewClient(httpClient, cfg.Endpoint, log)

	articles, err := client.Search(ctx, req)
	if err != nil {
		return err
	}

	if cfg.Enrich.Enabled {
		scraper := crawler.NewScraper(httpClient, cfg.Enrich.Workers, cfg.EnrichDelay(), log)
		articles = scraper.Enrich(ctx, articles)
	}

	// The built query doubles as the history key and the event metadata.
	query, err := gdelt.BuildQuery(req.Subject, req.Keywords, req.EnglishOnly)
	if err != nil {
		return err
	}

	var known map[string]struct{}
	if cfg.Cache.Path != "" {
		known, err = recordRun(query, articles, cfg.Cache.Path, log)
		if err != nil {
			return err
		}
	}

	if flagPublish {
		if err := publishArticles(ctx, cfg, req.Subject, query, articles, log); err != nil {
			return err
		}
	}

	printArticles(cmd.OutOrStdout(), articles, known)
	return nil
}

// applyFlagOverrides lets explicitly-set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Days = flagDays
	}
	if flags.Changed("limit") {
		cfg.Limit = gdelt.ClampLimit(flagLimit)
	}
	if flagAllowNonEnglish {
		cfg.EnglishOnly = false
	}
	if flagEnrich {
		cfg.Enrich.Enabled = true
	}
}

// recordRun persists this run and returns the previous run's URL set so the
// printer can mark articles not seen before.
func recordRun(query string, articles []domain.Article, path string, log logger.Logger) (map[string]struct{}, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	// Only a run that has a predecessor gets NEW markers; on the first run
	// everything would be new and the marker would be noise.
	var known map[string]struct{}
	prev, found, err := st.LastRun(query)
	if err != nil {
		return nil, err
	}
	if found {
		known = make(map[string]struct{}, len(prev.Articles))
		for _, art := range prev.Articles {
			known[art.URL] = struct{}{}
		}
	}

	if err := st.SaveRun(query, articles); err != nil {
		return nil, err
	}

	log.DebugObj("run recorded", "history_saved", map[string]any{
		"articles":    len(articles),
		"known_prior": len(known),
	})

	return known, nil
}

// publishArticles forwards each matched article to every enabled publisher.
func publishArticles(ctx context.Context, cfg *config.Config, subject, query string, articles []domain.Article, log logger.Logger) error {
	if cfg.Publishers == "" {
		return fmt.Errorf("--publish requires a publishers_file in config")
	}

	reg, err := publishers.LoadRegistry(cfg.Publishers)
	if err != nil {
		return err
	}

	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), reg.Enabled(), log)
	if err != nil {
		return err
	}

	fetchedAt := time.Now().UTC()
	for _, art := range articles {
		evt := publishers.Event{
			Subject:   subject,
			Query:     query,
			FetchedAt: fetchedAt,
			Article:   art,
		}
		if err := publishers.PublishAll(ctx, pubs, evt, log); err != nil {
			return err
		}
	}
	return nil
}

// printArticles writes the enumerated human-readable list. known is nil when
// run history is disabled; an entry absent from it gets a NEW marker.
func printArticles(w io.Writer, articles []domain.Article, known map[string]struct{}) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}

	for idx, art := range articles {
		title := art.Title
		if title == "" {
			title = "No title"
		}
		source := art.SourceName
		if source == "" {
			source = "unknown source"
		}
		date := "unknown date"
		if !art.SeenDate.IsZero() {
			date = art.SeenDate.Format("2006-01-02 15:04")
		}
		lang := art.Language
		if lang == "" {
			lang = "?"
		}

		marker := ""
		if known != nil {
			if _, seen := known[art.URL]; !seen {
				marker = " [NEW]"
			}
		}

		fmt.Fprintf(w, "[%d]%s %s\n", idx+1, marker, title)
		fmt.Fprintf(w, "    Source: %s | Date: %s | Lang: %s\n", source, date, lang)
		fmt.Fprintf(w, "    URL: %s\n\n", art.URL)
	}
}
