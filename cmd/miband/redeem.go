package main

import (
	"context"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/miband/internal/client/huami"
	"github.com/garrettladley/miband/internal/config"
)

func redeemCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Get an app token from a manual Mi account login",
		Long:  "Get an app token from a manual Mi account login.\n\n" + oauthCodeHelp(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.redeem(cmd.Context(), code)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "OAuth code obtained from the login")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func oauthCodeHelp() string {
	cfg, err := config.Read()
	if err != nil {
		cfg = config.Defaults()
	}
	return fmt.Sprintf("To login, visit:\n%s\n\nLogin and copy the code after 'code=' from the redirect URL.",
		huami.AuthorizeURL(authorizeConfig(cfg)))
}

func authorizeConfig(cfg config.Config) huami.AuthorizeConfig {
	return huami.AuthorizeConfig{
		AuthorizeURL: cfg.Xiaomi.AuthorizeURL,
		ClientID:     cfg.Xiaomi.ClientID,
		RedirectURL:  cfg.Xiaomi.RedirectURL,
		Locale:       cfg.Xiaomi.Locale,
	}
}

func (a *app) redeem(ctx context.Context, code string) error {
	result, err := a.client.RedeemCode(ctx, code)
	if err != nil {
		return err
	}

	out, err := go_json.MarshalIndent(result.Raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	a.printf("%s\n", out)

	if s, err := result.Session(); err == nil {
		a.saveSession(ctx, s, a.cfg.Huami.CountryCode)
	}
	return nil
}
