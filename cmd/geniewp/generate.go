// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"geniewp/internal/generator"
	"geniewp/internal/models"
	"geniewp/internal/ui"
)

var themeReq models.ThemeRequest

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a theme from the command line",
	Example: `  geniewp generate --name "Acme Bakery" --business bakery \
    --tagline "Fresh every morning" --primary "#8B4513"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := timeoutContext(2 * cfg.AITimeout)
		defer cancel()

		assembler := generator.NewAssembler(generator.Options{
			Fs:       afero.NewOsFs(),
			Root:     cfg.ThemesDir,
			Fetcher:  generator.NewFetcher(newRegistry(ctx, cfg, st.settings)),
			Settings: st.settings,
			Themes:   st.themes,
		})

		out := cmd.OutOrStdout()
		ui.Header(out, "Generating "+themeReq.SiteName)
		theme, err := assembler.Generate(ctx, themeReq)
		if err != nil {
			return err
		}

		ui.Success(out, "theme %s written", theme.Slug)
		ui.KeyValue(out, "Name", theme.Name)
		ui.KeyValue(out, "Directory", theme.Dir)
		ui.KeyValue(out, "Files", strings.Join(theme.Files, ", "))
		if theme.AIEnhanced {
			ui.Info(out, "content generated by the AI provider")
		} else {
			ui.Warning(out, "AI content unavailable, default content used")
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&themeReq.SiteName, "name", "", "site name (required)")
	f.StringVar(&themeReq.BusinessType, "business", "", "business type")
	f.StringVar(&themeReq.Tagline, "tagline", "", "site tagline")
	f.StringVar(&themeReq.Description, "description", "", "site description")
	f.StringVar(&themeReq.PrimaryColor, "primary", "", "primary color as #RRGGBB")
	f.StringVar(&themeReq.SecondaryColor, "secondary", "", "secondary color as #RRGGBB")
	_ = generateCmd.MarkFlagRequired("name")
}
