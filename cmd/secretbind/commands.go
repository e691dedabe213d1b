package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mcrich23/secretbind"
	"github.com/mcrich23/secretbind/internal/config"
)

var (
	serviceFlag  string
	accessFlag   string
	boolFlag     bool
	fromFileFlag string
	rawFlag      bool
	forceFlag    bool
)

// openStore builds the backend from config file and flags. Flags win
// over the config file; the config file wins over built-in defaults.
func openStore() (secretbind.Store, secretbind.Accessibility, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, secretbind.AccessibilityDefault, fmt.Errorf("loading config: %w", err)
	}

	service := secretbind.ServiceName
	if cfg.Service != "" {
		service = cfg.Service
	}
	if serviceFlag != "" {
		service = serviceFlag
	}

	store := secretbind.Store(secretbind.NewSystemStoreFor(service))
	if cfg.Synchronizable {
		if s, ok := store.(interface{ SetSynchronizable(bool) }); ok {
			s.SetSynchronizable(true)
		}
	}

	access := cfg.Accessibility()
	if accessFlag != "" {
		access, err = secretbind.ParseAccessibility(accessFlag)
		if err != nil {
			return nil, secretbind.AccessibilityDefault, err
		}
	}
	if access != secretbind.AccessibilityDefault {
		if _, ok := store.(*secretbind.KeyringStore); ok {
			slog.Warn("access policy not enforced by this backend", "access", access.String())
		}
	}

	return store, access, nil
}

// readValue resolves the secret value for set: from the argument, a
// hidden terminal prompt, or piped stdin.
func readValue(args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Enter secret value: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		fmt.Println()
		return string(b), nil
	}
	b, err := os.ReadFile("/dev/stdin")
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

var setCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store a secret",
	Long: "Store a secret. If value is omitted, reads from stdin (useful for piping).\n" +
		"Use --bool to store a boolean, or --from-file to store a file's bytes.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, access, err := openStore()
		if err != nil {
			return err
		}
		key := args[0]
		opts := secretbind.Options{Store: store, Accessibility: access}

		if fromFileFlag != "" {
			data, err := os.ReadFile(fromFileFlag)
			if err != nil {
				return fmt.Errorf("reading %s: %w", fromFileFlag, err)
			}
			a, err := secretbind.New[[]byte](key, opts)
			if err != nil {
				return err
			}
			if err := a.Set(data); err != nil {
				return err
			}
			fmt.Printf("Secret %q stored (%d bytes)\n", key, len(data))
			return nil
		}

		value, err := readValue(args)
		if err != nil {
			return err
		}

		if boolFlag {
			v, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("not a boolean: %q", value)
			}
			a, err := secretbind.New[bool](key, opts)
			if err != nil {
				return err
			}
			if err := a.Set(v); err != nil {
				return err
			}
			fmt.Printf("Secret %q stored\n", key)
			return nil
		}

		a, err := secretbind.New[string](key, opts)
		if err != nil {
			return err
		}
		if err := a.Set(value); err != nil {
			return err
		}
		fmt.Printf("Secret %q stored\n", key)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, access, err := openStore()
		if err != nil {
			return err
		}
		opts := secretbind.Options{Store: store, Accessibility: access}

		if rawFlag {
			a, err := secretbind.New[[]byte](args[0], opts)
			if err != nil {
				return err
			}
			data, ok := a.Get()
			if !ok {
				return fmt.Errorf("secret %q not found", args[0])
			}
			_, err = os.Stdout.Write(data)
			return err
		}

		a, err := secretbind.New[string](args[0], opts)
		if err != nil {
			return err
		}
		val, ok := a.Get()
		if !ok {
			return fmt.Errorf("secret %q not found", args[0])
		}
		fmt.Println(val)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Short:   "Remove a secret",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, access, err := openStore()
		if err != nil {
			return err
		}
		a, err := secretbind.New[string](args[0], secretbind.Options{Store: store, Accessibility: access})
		if err != nil {
			return err
		}
		if err := a.Clear(); err != nil {
			return err
		}
		fmt.Printf("Secret %q deleted\n", args[0])
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all secrets",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		lister, ok := store.(secretbind.Lister)
		if !ok {
			return fmt.Errorf("this backend does not support listing keys")
		}
		keys, err := lister.List()
		if err != nil {
			return err
		}

		if len(keys) == 0 {
			fmt.Println("No secrets stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY")
		for _, k := range keys {
			fmt.Fprintln(w, k)
		}
		w.Flush()
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every secret under the service",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		wiper, ok := store.(secretbind.Wiper)
		if !ok {
			return fmt.Errorf("this backend does not support clearing all keys")
		}
		if !forceFlag {
			return fmt.Errorf("refusing to delete all secrets without --force")
		}
		if err := wiper.DeleteAll(); err != nil {
			return err
		}
		fmt.Println("All secrets deleted")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serviceFlag, "service", "", "service name scoping stored items")
	rootCmd.PersistentFlags().StringVar(&accessFlag, "access", "", "access policy for writes (e.g. when-unlocked)")

	setCmd.Flags().BoolVar(&boolFlag, "bool", false, "store the value as a boolean")
	setCmd.Flags().StringVar(&fromFileFlag, "from-file", "", "store the file's bytes as a binary secret")
	getCmd.Flags().BoolVar(&rawFlag, "raw", false, "write the stored bytes to stdout unmodified")
	clearCmd.Flags().BoolVar(&forceFlag, "force", false, "confirm deleting every secret")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(clearCmd)
}
