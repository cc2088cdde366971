// Command mathspeak speaks a semantic expression tree.
//
// It loads declarative rule sets from a directory, reads a YAML tree
// description from a file or stdin, classifies unmarked glyph leaves
// against the symbol registry, and prints the generated speech.
//
//	mathspeak --rules ./rules --domain mathspeak --style default --locale en expr.yaml
//	cat expr.yaml | mathspeak --rules ./rules --locale es
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xavier-bw/speech-rule-engine/annotate"
	"github.com/xavier-bw/speech-rule-engine/rules"
	"github.com/xavier-bw/speech-rule-engine/semantic"
	"github.com/xavier-bw/speech-rule-engine/speech"
)

// treeYAML mirrors one node of the input tree description. The type,
// role and font fields take the canonical enum names and default to
// unknown, which lets single-glyph leaves be classified from the
// symbol registry instead of spelled out.
type treeYAML struct {
	Value    string     `yaml:"value,omitempty"`
	Type     string     `yaml:"type,omitempty"`
	Role     string     `yaml:"role,omitempty"`
	Font     string     `yaml:"font,omitempty"`
	Children []treeYAML `yaml:"children,omitempty"`
}

// buildNode converts a decoded description into a semantic tree.
func buildNode(ty *treeYAML) (*semantic.Node, error) {
	var m semantic.Meaning
	var ok bool
	if ty.Type != "" {
		if m.Type, ok = semantic.ParseType(ty.Type); !ok {
			return nil, fmt.Errorf("unknown type %q", ty.Type)
		}
	}
	if ty.Role != "" {
		if m.Role, ok = semantic.ParseRole(ty.Role); !ok {
			return nil, fmt.Errorf("unknown role %q", ty.Role)
		}
	}
	if ty.Font != "" {
		if m.Font, ok = semantic.ParseFont(ty.Font); !ok {
			return nil, fmt.Errorf("unknown font %q", ty.Font)
		}
	}

	n := semantic.NewNode(ty.Value, m)
	for i := range ty.Children {
		child, err := buildNode(&ty.Children[i])
		if err != nil {
			return nil, err
		}
		if err := n.AppendChild(child); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// readTree decodes the tree description from the named file, or from
// stdin when no file is given.
func readTree(path string) (*semantic.Node, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var doc treeYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	return buildNode(&doc)
}

func newRootCmd() *cobra.Command {
	var (
		rulesDir string
		domain   string
		style    string
		locale   string
		attr     string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "mathspeak [tree.yaml]",
		Short: "Generate speech for a semantic expression tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := rules.NewStore()
			if err := store.LoadDir(rulesDir); err != nil {
				return err
			}

			var opts []rules.Option
			if verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer log.Sync() //nolint:errcheck
				opts = append(opts, rules.WithLogger(log))
			}
			engine := rules.NewEngine(store, opts...)

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			tree, err := readTree(path)
			if err != nil {
				return err
			}
			if err := annotate.Classify(tree); err != nil {
				return err
			}

			gen := speech.NewTreeGenerator(engine,
				rules.Key{Domain: domain, Style: style, Locale: locale},
				speech.WithAttribute(attr))
			out, err := gen.Generate(speech.NewDocument(tree))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules", "rules", "directory of rule-set YAML files")
	cmd.Flags().StringVar(&domain, "domain", "mathspeak", "rule domain")
	cmd.Flags().StringVar(&style, "style", "default", "rule style")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale tag (BCP 47)")
	cmd.Flags().StringVar(&attr, "attr", "", "also record speech under this document attribute")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log recoverable rule failures")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mathspeak:", err)
		os.Exit(1)
	}
}
