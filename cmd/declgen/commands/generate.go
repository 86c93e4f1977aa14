package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/declgen/declgen/config"
	"github.com/declgen/declgen/decl"
	"github.com/declgen/declgen/errors"
	"github.com/declgen/declgen/filegen"
	"github.com/declgen/declgen/logger"
)

var (
	generateConfig    string
	generateOutput    string
	generateNamespace string
	generateImports   []string
	generateWatch     bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <document>",
	Short: "Split a declaration document into output-file descriptors",
	Long: `Split a translated declaration document into output-file descriptors.

The document is the serialized declaration tree produced by the upstream
interface-document translator (YAML, or JSON for .json files). declgen
flattens it into one declaration per output file, attaches the shared header
metadata, and writes the ordered file manifest as JSON.

Rendering the declarations into source text is the downstream printer's job;
the manifest carries abstract declarations, not source code.

Examples:
  declgen generate components.yaml                  # Manifest to stdout
  declgen generate components.yaml -o manifest.json # Manifest to file
  declgen generate components.yaml -n API           # Prefix files with API_
  declgen generate components.yaml --import Logging # Extra shared import
  declgen generate components.yaml -o gen.json -w   # Regenerate on change`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Config file (default: nearest declgen.toml)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Manifest output path (default: stdout)")
	GenerateCmd.Flags().StringVarP(&generateNamespace, "namespace", "n", "", "Root namespace identifier")
	GenerateCmd.Flags().StringSliceVar(&generateImports, "import", nil, "Additional shared import (repeatable)")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch the document and regenerate on change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	documentPath := args[0]

	cfg, err := loadGenerateConfig()
	if err != nil {
		return err
	}

	if generateWatch {
		return watchAndGenerate(documentPath, cfg)
	}
	return generateOnce(documentPath, cfg)
}

// loadGenerateConfig resolves the effective generation config: file config
// first, then flag overrides.
func loadGenerateConfig() (config.Generation, error) {
	var cfg *config.Config
	var err error

	if generateConfig != "" {
		cfg, err = config.LoadFromFile(generateConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Generation{}, err
	}

	gen := cfg.Generation
	if generateNamespace != "" {
		gen.Namespace = generateNamespace
	}
	if len(generateImports) > 0 {
		gen.AdditionalImports = append(gen.AdditionalImports, generateImports...)
	}
	if generateOutput != "" {
		gen.Output = generateOutput
	}
	return gen, nil
}

// generateOnce runs one translation pass and writes the manifest.
func generateOnce(documentPath string, cfg config.Generation) error {
	result, err := filegen.Generate(documentTranslator(documentPath), cfg)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		logger.Warnw("Generation diagnostic",
			"code", d.Code,
			"identifier", d.Identifier,
			"message", d.Message)
	}

	if err := writeManifest(result.Files, cfg.Output); err != nil {
		return err
	}

	logger.Infow("Generated file manifest",
		"document", documentPath,
		"files", len(result.Files),
		"diagnostics", len(result.Diagnostics))
	return nil
}

// documentTranslator adapts a document on disk to the generator's upstream
// translator contract. Load or validation failures surface as translation
// errors, which the generator propagates without partial output.
func documentTranslator(path string) filegen.Translator {
	return func() (*decl.Declaration, error) {
		doc, err := decl.LoadDocument(path)
		if err != nil {
			return nil, errors.WithMessage(errors.Wrap(errors.ErrTranslation, err.Error()), path)
		}
		return doc.Components, nil
	}
}

// writeManifest writes the ordered output-file descriptors as JSON.
func writeManifest(files []filegen.OutputFile, output string) error {
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode manifest")
	}
	data = append(data, '\n')

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write manifest %s", output)
	}
	fmt.Printf("✓ Generated %s (%d files)\n", output, len(files))
	return nil
}

// watchAndGenerate regenerates the manifest whenever the document changes.
// Runs until interrupted.
func watchAndGenerate(documentPath string, cfg config.Generation) error {
	if cfg.Output == "" {
		return errors.New("--watch requires --output; refusing to stream manifests to stdout")
	}

	// Initial pass before watching; a broken document is still watched so
	// the next save can fix it.
	if err := generateOnce(documentPath, cfg); err != nil {
		logger.Errorw("Initial generation failed", "error", err)
	}

	watcher, err := newDocumentWatcher(documentPath, func() {
		if err := generateOnce(documentPath, cfg); err != nil {
			logger.Errorw("Regeneration failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()

	logger.Infow("Watching document for changes", "document", documentPath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
