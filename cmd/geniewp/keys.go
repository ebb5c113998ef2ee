// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pquerna/otp/totp"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"geniewp/internal/models"
	"geniewp/internal/ui"
)

var (
	keyProvider string
	totpEmail   string
	totpQRPath  string
)

var setKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the AI API key (read from the terminal or stdin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		key, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "API key: ")
		if err != nil {
			return err
		}
		if strings.ContainsAny(key, " \t\r\n") {
			return errors.New("API key must not contain whitespace")
		}

		st, err := openStores(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		update := map[string]string{models.OptionAPIKey: key}
		if keyProvider != "" {
			if !newRegistry(context.Background(), cfg, st.settings).HasProvider(keyProvider) {
				return fmt.Errorf("unknown AI provider: %s", keyProvider)
			}
			update[models.OptionAIProvider] = keyProvider
		}
		if err := st.settings.SetMany(context.Background(), update); err != nil {
			return err
		}

		if key == "" {
			ui.Success(cmd.OutOrStdout(), "API key cleared")
		} else {
			ui.Success(cmd.OutOrStdout(), "API key stored")
		}
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}
		if len(password) < 8 {
			return errors.New("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		return nil
	},
}

var totpSetupCmd = &cobra.Command{
	Use:   "totp-setup",
	Short: "Generate a secret for ADMIN_TOTP_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := totp.Generate(totp.GenerateOpts{
			Issuer:      "GenieWP",
			AccountName: totpEmail,
		})
		if err != nil {
			return fmt.Errorf("generate totp secret: %w", err)
		}

		out := cmd.OutOrStdout()
		ui.Header(out, "Two-factor authentication")
		ui.KeyValue(out, "Secret", key.Secret())
		ui.KeyValue(out, "URL", key.URL())

		if totpQRPath != "" {
			if err := qrcode.WriteFile(key.URL(), qrcode.Medium, 256, totpQRPath); err != nil {
				return fmt.Errorf("write qr code: %w", err)
			}
			ui.Success(out, "QR code written to %s", totpQRPath)
		}
		ui.Info(out, "set ADMIN_TOTP_SECRET to the secret above and restart the server")
		return nil
	},
}

// readSecret reads one line without echo when in is a terminal.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	setKeyCmd.Flags().StringVar(&keyProvider, "provider", "", "also switch the active AI provider")
	totpSetupCmd.Flags().StringVar(&totpEmail, "email", "admin@localhost", "account name shown in the authenticator app")
	totpSetupCmd.Flags().StringVar(&totpQRPath, "qr", "", "write a PNG QR code to this path")
}
