package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/cmd/account"
	"github.com/renzovm/bancli/cmd/admin"
	"github.com/renzovm/bancli/cmd/beneficiary"
	"github.com/renzovm/bancli/cmd/profile"
	"github.com/renzovm/bancli/cmd/transaction"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/errhandler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:           "bancli",
		Short:         "bancli is a terminal client for your bank account",
		Long:          `bancli is a terminal client for your bank account: log in, check balances, move money, pay services and manage beneficiaries without leaving the shell.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewLoginCmd(application))
	rootCmd.AddCommand(NewRegisterCmd(application))
	rootCmd.AddCommand(NewLogoutCmd(application))
	rootCmd.AddCommand(NewWhoamiCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application, cfg))

	rootCmd.AddCommand(account.NewAccountCmd(application, cfg))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application, cfg))
	rootCmd.AddCommand(beneficiary.NewBeneficiaryCmd(application))
	rootCmd.AddCommand(profile.NewProfileCmd(application))
	rootCmd.AddCommand(admin.NewAdminCmd(application, cfg))

	if err := rootCmd.Execute(); err != nil {
		if errhandler.IsInterrupt(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}

		if errhandler.ForceLogoutIfStale(err, application.Session) {
			pterm.Warning.Println("Your session is no longer valid and has been closed. Run 'bancli login' to continue.")
		}

		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("defaults.currency", "USD")
	viper.SetDefault("defaults.page_size", 10)

	if err := createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to ensure config file: %w", err)
	}

	viper.SetEnvPrefix("BANCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bancli"), nil
	}

	return filepath.Join(configDir, "bancli"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
