package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amp-labs/amp-linkedmap/copier"
	"github.com/amp-labs/amp-linkedmap/maps"
	"github.com/amp-labs/amp-linkedmap/sortable"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOrder   = errors.New("unknown order")
	ErrInvalidEntries = errors.New("invalid entries file")
)

const (
	orderNatural = "natural"
	orderCollate = "collate"
	orderLexical = "lexical"
)

type entry[K any] struct {
	key  K
	data string
}

type flags struct {
	entries string
	strings bool
	order   string
	locale  string
}

func newRootCmd(log *slog.Logger) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "mapdemo",
		Short: "Fill a sorted map, print it in order, copy it and print the copy",
		Args:  cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.strings {
				return runStrings(cmd.OutOrStdout(), log, f)
			}

			return runInts(cmd.OutOrStdout(), log, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.entries, "entries", "e", "", "YAML file of key: value pairs to load instead of the built-in ones")
	rootCmd.Flags().BoolVar(&f.strings, "strings", false, "Use string keys instead of int keys")
	rootCmd.Flags().StringVar(&f.order, "order", orderNatural, "String key order: natural, collate or lexical")
	rootCmd.Flags().StringVar(&f.locale, "locale", "en", "Locale used by --order=collate")

	return rootCmd
}

func runInts(out io.Writer, log *slog.Logger, f flags) error {
	entries := []entry[int]{{2, "hello2"}, {40, "hello40"}, {1, "hello1"}}

	if f.entries != "" {
		loaded, err := loadEntries[int](f.entries)
		if err != nil {
			return err
		}

		entries = loaded
	}

	m, err := maps.New(
		copier.Identity[string](), copier.Pointer[int](),
		copier.Noop[string](), copier.Noop[*int](),
		func(a, b *int) int { return sortable.Natural[int]()(*a, *b) },
		maps.WithLogger(log),
	)
	if err != nil {
		return err
	}

	pointers := make([]entry[*int], len(entries))
	for i, e := range entries {
		pointers[i] = entry[*int]{key: &e.key, data: e.data}
	}

	return demo(out, m, pointers, func(k *int) string { return fmt.Sprint(*k) })
}

func runStrings(out io.Writer, log *slog.Logger, f flags) error {
	compare, err := stringOrder(f.order, f.locale)
	if err != nil {
		return err
	}

	entries := []entry[string]{
		{"file10", "tenth"},
		{"file2", "second"},
		{"Banana", "yellow"},
		{"apple", "red"},
		{"file1", "first"},
	}

	if f.entries != "" {
		loaded, err := loadEntries[string](f.entries)
		if err != nil {
			return err
		}

		entries = loaded
	}

	m, err := maps.New(
		copier.Identity[string](), copier.Identity[string](),
		copier.Noop[string](), copier.Noop[string](),
		compare,
		maps.WithLogger(log),
	)
	if err != nil {
		return err
	}

	return demo(out, m, entries, func(k string) string { return k })
}

func stringOrder(order, locale string) (sortable.Comparator[string], error) {
	switch order {
	case orderNatural:
		return sortable.NaturalStrings(), nil
	case orderLexical:
		return strings.Compare, nil
	case orderCollate:
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}

		return sortable.Collated(tag), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
}

// demo fills m, prints it, copies it, destroys m and prints the copy.
func demo[K any](out io.Writer, m *maps.SortedMap[K, string], entries []entry[K], format func(K) string) error {
	defer m.Destroy()

	for _, e := range entries {
		if err := m.Put(e.key, e.data); err != nil {
			return err
		}
	}

	if err := printMap(out, "Map", m, format); err != nil {
		return err
	}

	cp, err := m.Copy()
	if err != nil {
		return err
	}

	defer cp.Destroy()

	m.Destroy()

	_, _ = fmt.Fprintln(out)

	return printMap(out, "Copy", cp, format)
}

func printMap[K any](out io.Writer, title string, m *maps.SortedMap[K, string], format func(K) string) error {
	_, _ = fmt.Fprintf(out, "%s by order (low to high):\n", title)

	for key, ok := m.First().Get(); ok; key, ok = m.Next().Get() {
		data, _, err := m.Get(key)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "  %s: %s\n", format(key), data)
	}

	_, _ = fmt.Fprintf(out, "%s size: %d\n", title, m.Size())

	return nil
}

// loadEntries reads a YAML mapping and returns its pairs in file order.
func loadEntries[K any](path string) ([]entry[K], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntries, err)
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s must hold a single mapping", ErrInvalidEntries, path)
	}

	pairs := doc.Content[0].Content
	out := make([]entry[K], 0, len(pairs)/2) //nolint:mnd

	for i := 0; i+1 < len(pairs); i += 2 {
		var e entry[K]

		if err := pairs[i].Decode(&e.key); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidEntries, pairs[i].Line, err)
		}

		if err := pairs[i+1].Decode(&e.data); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidEntries, pairs[i+1].Line, err)
		}

		out = append(out, e)
	}

	return out, nil
}
