// Package main provides the command-line front end for purecipher.
//
// It enciphers or deciphers text with a built-in preset or a recipe loaded
// from a TOML, YAML or JSON file. Text is taken from the remaining arguments,
// joined by spaces, or from standard input when no arguments are given.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opd-ai/purecipher"
	"github.com/opd-ai/purecipher/logging"
	"github.com/opd-ai/purecipher/presets"
	"github.com/opd-ai/purecipher/recipe"
	"github.com/opd-ai/purecipher/substitution"
	"github.com/sirupsen/logrus"
)

// CLI configuration
type CLIConfig struct {
	preset     string
	recipeFile string
	recipeName string
	decipher   bool
	describe   bool
	list       bool
	logLevel   string
	help       bool
	text       []string
	usage      func(io.Writer)
}

// parseCLIFlags parses args into a configuration.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("purecipher", flag.ContinueOnError)
	fs.SetOutput(output)

	// Cipher selection
	fs.StringVar(&config.preset, "preset", presets.NameCaesar, "Registered preset to use")
	fs.StringVar(&config.recipeFile, "recipe", "", "Recipe file to load (TOML, YAML or JSON)")
	fs.StringVar(&config.recipeName, "name", "", "Recipe to use from the recipe file (default: the first one)")

	// Operation
	fs.BoolVar(&config.decipher, "decipher", false, "Decipher instead of encipher")
	fs.BoolVar(&config.describe, "describe", false, "Print the selected cipher instead of transforming text")
	fs.BoolVar(&config.list, "list", false, "List registered presets and loaded recipes")

	// Logging configuration
	fs.StringVar(&config.logLevel, "log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")

	// Help
	fs.BoolVar(&config.help, "help", false, "Show help message")

	fs.Usage = func() { printUsage(output, fs) }
	config.usage = func(w io.Writer) {
		fs.SetOutput(w)
		printUsage(w, fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	config.text = fs.Args()
	return config, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "purecipher: byte substitution ciphers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  purecipher [options] [text ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  purecipher -preset rot13 Hello, World!")
	fmt.Fprintln(w, "  echo 'Zh dwwdfn' | purecipher -decipher")
	fmt.Fprintln(w, "  purecipher -recipe ciphers.toml -name shift-digits 2024")
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.recipeName != "" && config.recipeFile == "" {
		return fmt.Errorf("-name requires -recipe")
	}
	if config.recipeFile == "" && config.preset == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if config.describe && config.list {
		return fmt.Errorf("-describe and -list cannot be combined")
	}
	return logging.ParseLevel(config.logLevel)
}

// selectCipher resolves the cipher named by the configuration. A recipe file
// takes precedence over the preset flag.
func selectCipher(config *CLIConfig) (purecipher.Cipher, string, error) {
	if config.recipeFile == "" {
		c, err := presets.New(config.preset)
		return c, config.preset, err
	}

	recipes, err := recipe.ParseFile(config.recipeFile)
	if err != nil {
		return nil, "", err
	}

	r := recipes[0]
	if config.recipeName != "" {
		var ok bool
		if r, ok = recipe.Find(recipes, config.recipeName); !ok {
			return nil, "", fmt.Errorf("recipe %q not found in %s", config.recipeName, config.recipeFile)
		}
	}

	c, err := r.Build()
	if err != nil {
		return nil, "", err
	}

	logging.NewLogger("main", "selectCipher").
		WithFields(logrus.Fields{
			"path":        config.recipeFile,
			"recipe":      r.Name,
			"recipes":     len(recipes),
			"edits":       len(r.Edits),
			"fingerprint": c.Fingerprint(),
		}).
		Info("Recipe loaded")
	return c, r.Name, nil
}

// listCiphers prints the registered presets, then the recipes of the
// configured recipe file.
func listCiphers(w io.Writer, config *CLIConfig) error {
	fmt.Fprintln(w, "Presets:")
	for _, name := range presets.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	if config.recipeFile == "" {
		return nil
	}

	recipes, err := recipe.ParseFile(config.recipeFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Recipes in %s:\n", config.recipeFile)
	for _, r := range recipes {
		if r.Description != "" {
			fmt.Fprintf(w, "  %s - %s\n", r.Name, r.Description)
		} else {
			fmt.Fprintf(w, "  %s\n", r.Name)
		}
	}
	return nil
}

// describeCipher prints the identity of a cipher.
func describeCipher(w io.Writer, name string, c purecipher.Cipher) {
	sc, ok := c.(*substitution.Cipher)
	if !ok {
		fmt.Fprintf(w, "%s: no substitution (%T)\n", name, c)
		return
	}

	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  fingerprint: %s\n", sc.Fingerprint())
	fmt.Fprintf(w, "  reversible:  %t\n", sc.Reversible())
	fmt.Fprintf(w, "  %s\n", sc.Forward())
}

// transform applies the cipher to the text arguments, or streams standard
// input line by line when there are none.
func transform(config *CLIConfig, c purecipher.Cipher, stdin io.Reader, stdout io.Writer) error {
	apply := purecipher.EncipherString
	if config.decipher {
		apply = purecipher.DecipherString
	}

	if len(config.text) > 0 {
		_, err := fmt.Fprintln(stdout, apply(c, strings.Join(config.text, " ")))
		return err
	}

	reader := bufio.NewReader(stdin)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(stdout, apply(c, line)); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config, err := parseCLIFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if config.help {
		config.usage(stdout)
		return 0
	}

	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		fmt.Fprintln(stderr, "Use -help for usage information.")
		return 1
	}

	if config.list {
		if err := listCiphers(stdout, config); err != nil {
			fmt.Fprintf(stderr, "Failed to list ciphers: %v\n", err)
			return 1
		}
		return 0
	}

	c, name, err := selectCipher(config)
	if err != nil {
		logging.NewLogger("main", "run").WithError(err, "select cipher").Debug("Cipher selection failed")
		fmt.Fprintf(stderr, "Failed to select cipher: %v\n", err)
		return 1
	}

	if config.describe {
		describeCipher(stdout, name, c)
		return 0
	}

	if err := transform(config, c, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Failed to transform input: %v\n", err)
		return 1
	}
	return 0
}

// main is the entry point for the purecipher command.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
