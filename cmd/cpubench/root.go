package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpubench/internal/store"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cpubench",
	Short: "Interactive CPU benchmark runner with a local results log",
	Long: `cpubench runs a fixed set of CPU and memory micro-benchmarks
(prime counting, Monte Carlo pi estimation, chained SHA-256 hashing),
prints timing statistics, and appends each run as one JSON line to a
local results file so runs from different machines can be compared.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'cpubench --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		// Default behavior: interactive menu
		RunInteractive()
	}
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("file", store.DefaultFile, "results file (JSON Lines)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	viper.BindPFlag("store.file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load() // .env is optional

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CPUBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore opens the results file configured via --file / CPUBENCH_STORE_FILE.
func openStore() (*store.FileStore, error) {
	path := viper.GetString("store.file")
	if path == "" {
		path = store.DefaultFile
	}
	return store.NewFileStore(path)
}
