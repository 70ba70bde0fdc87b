package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/fbgraph/fbgraph"
)

var (
	dialogParams fbgraph.DialogParams
	dialogMobile bool

	exchangeClientID     string
	exchangeClientSecret string
	exchangeRedirectURI  string
	exchangeCode         string
	extendToken          string
)

// oauthURLCmd represents the oauth-url command
var oauthURLCmd = &cobra.Command{
	Use:   "oauth-url",
	Short: "Print the OAuth login dialog URL",
	Long: `Build the OAuth login dialog URL to send a user to, for example:

  fbgraph oauth-url --client-id 123 --redirect-uri https://example.com/cb --scope email`,
	RunE: runOAuthURL,
}

// tokenCmd groups access token operations
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Exchange or extend access tokens",
}

// tokenExchangeCmd exchanges an OAuth code for an access token
var tokenExchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Exchange an OAuth code for an access token",
	RunE:  runTokenExchange,
}

// tokenExtendCmd exchanges a short-lived token for a long-lived one
var tokenExtendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Extend a short-lived access token",
	RunE:  runTokenExtend,
}

func init() {
	rootCmd.AddCommand(oauthURLCmd)
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenExchangeCmd)
	tokenCmd.AddCommand(tokenExtendCmd)

	oauthURLCmd.Flags().StringVar(&dialogParams.ClientID, "client-id", "", "app client id")
	oauthURLCmd.Flags().StringVar(&dialogParams.RedirectURI, "redirect-uri", "", "redirect URI")
	oauthURLCmd.Flags().StringVar(&dialogParams.Scope, "scope", "", "comma-separated permissions")
	oauthURLCmd.Flags().StringVar(&dialogParams.State, "state", "", "opaque state value")
	oauthURLCmd.Flags().StringVar(&dialogParams.ResponseType, "response-type", "", "response type (code or token)")
	oauthURLCmd.Flags().BoolVar(&dialogMobile, "mobile", false, "use the mobile dialog URL")
	_ = oauthURLCmd.MarkFlagRequired("client-id")

	tokenExchangeCmd.Flags().StringVar(&exchangeClientID, "client-id", "", "app client id")
	tokenExchangeCmd.Flags().StringVar(&exchangeClientSecret, "client-secret", "", "app client secret")
	tokenExchangeCmd.Flags().StringVar(&exchangeRedirectURI, "redirect-uri", "", "redirect URI used in the dialog")
	tokenExchangeCmd.Flags().StringVar(&exchangeCode, "code", "", "OAuth code returned by the dialog")
	_ = tokenExchangeCmd.MarkFlagRequired("client-id")
	_ = tokenExchangeCmd.MarkFlagRequired("client-secret")
	_ = tokenExchangeCmd.MarkFlagRequired("code")

	tokenExtendCmd.Flags().StringVar(&exchangeClientID, "client-id", "", "app client id")
	tokenExtendCmd.Flags().StringVar(&exchangeClientSecret, "client-secret", "", "app client secret")
	tokenExtendCmd.Flags().StringVar(&extendToken, "access-token", "", "token to extend (defaults to the configured token)")
	_ = tokenExtendCmd.MarkFlagRequired("client-id")
	_ = tokenExtendCmd.MarkFlagRequired("client-secret")
}

func runOAuthURL(cmd *cobra.Command, args []string) error {
	fmt.Println(client.OAuthURL(dialogParams, dialogMobile))
	return nil
}

func runTokenExchange(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	params := url.Values{}
	params.Set("client_id", exchangeClientID)
	params.Set("client_secret", exchangeClientSecret)
	params.Set("code", exchangeCode)
	if exchangeRedirectURI != "" {
		params.Set("redirect_uri", exchangeRedirectURI)
	}

	res, err := client.Authorize(ctx, params)
	if err != nil {
		return err
	}

	logger.Info().Msg("Access token acquired")
	return printResult(res)
}

func runTokenExtend(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext()
	defer cancel()

	params := url.Values{}
	params.Set("client_id", exchangeClientID)
	params.Set("client_secret", exchangeClientSecret)
	if extendToken != "" {
		params.Set("access_token", extendToken)
	}

	res, err := client.ExtendAccessToken(ctx, params)
	if err != nil {
		return err
	}

	logger.Info().Msg("Access token extended")
	return printResult(res)
}
