package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFileName      = ".organizer"
	ConfigFileExtension = ".yaml"
	EnvPrefix           = "ORGANIZER"
)

var cfgFilePath string

var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "Organizer keeps API request collections in folders",
	Long: `Organizer stores API requests and folders per collection, keeps their
order, and serves them over a Connect RPC API. Collections can be exported
to and imported from YAML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		setupLogger(cfg)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFilePath, "config", "", "config file (default is $HOME/"+ConfigFileName+ConfigFileExtension+")")
	rootCmd.PersistentFlags().String("db", "", "database file, in-memory when empty")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: json or text")

	_ = viper.BindPFlag(KeyDBPath, rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag(KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	setDefaults(viper.GetViper())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error executing root command: %s", err)
	}
}

func initConfig() error {
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFilePath != "" {
		viper.SetConfigFile(cfgFilePath)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		viper.SetConfigFile(filepath.Join(home, ConfigFileName+ConfigFileExtension))
	}

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		// an explicit --config must exist
		if cfgFilePath != "" {
			return fmt.Errorf("read config %s: %w", cfgFilePath, err)
		}
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}
