package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/coolbeans/pleader/pkg/caption"
	"github.com/coolbeans/pleader/pkg/complaint"
	"github.com/coolbeans/pleader/pkg/draftstore"
	"github.com/coolbeans/pleader/pkg/draftwatch"
	"github.com/coolbeans/pleader/pkg/render"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pleader",
		Short: "Complaint structuring engine",
		Long: `Pleader recovers document structure from free-form civil complaint
text and keeps it consistent under editing.

It converts generated or pasted pleading prose into an ordered list of
typed sections (jurisdiction, venue, factual allegations, causes of
action, prayer, jury demand, signature), then re-derives paragraph
numbers and cause-of-action ordinals after every structural edit.`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(renumberCmd())
	rootCmd.AddCommand(causesCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(captionCmd())
	rootCmd.AddCommand(draftsCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse raw complaint text into structured sections",
		Long: `Parse raw complaint text into an ordered list of typed sections,
repair missing structure, and renumber paragraphs and cause ordinals.

Example:
  pleader parse --source complaint.txt --stats
  pleader parse --source complaint.txt --output sections.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			showStats, _ := cmd.Flags().GetBool("stats")
			heuristicsPath, _ := cmd.Flags().GetString("heuristics")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			heuristics, err := loadHeuristics(heuristicsPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}
			doc := complaint.FromRawTextWith(string(data), heuristics)

			if output != "" {
				if err := writeSections(output, doc); err != nil {
					return err
				}
				fmt.Printf("Wrote %d sections to %s\n", doc.Len(), output)
			} else {
				printSections(doc)
			}

			if showStats {
				printStats(doc)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to raw complaint text (required)")
	cmd.Flags().String("output", "", "Write sections as JSON to this path")
	cmd.Flags().Bool("stats", false, "Print document statistics")
	cmd.Flags().String("heuristics", "", "YAML file overriding classifier heuristics")
	return cmd
}

func renumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renumber",
		Short: "Renumber a persisted section list",
		Long: `Reload a saved section list, repair missing structure, and rewrite
paragraph numbers and cause ordinals. Run this after any reorder,
insertion, or removal; numbering is a global function of order.

Example:
  pleader renumber --source sections.json
  pleader renumber --source sections.json --output sections.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			doc, err := loadDocument(source, complaint.DefaultHeuristics())
			if err != nil {
				return err
			}

			if output == "" {
				output = source
			}
			if err := writeSections(output, doc); err != nil {
				return err
			}
			fmt.Printf("Renumbered %d sections in %s\n", doc.Len(), output)
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to a sections JSON file (required)")
	cmd.Flags().String("output", "", "Output path (defaults to --source)")
	return cmd
}

func causesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "causes",
		Short: "List cause-of-action labels for the case caption",
		Long: `Print the ordered cause-of-action labels derived from a complaint,
one per line, as they would appear in the case caption.

Example:
  pleader causes --source complaint.txt
  pleader causes --source sections.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			doc, err := loadDocument(source, complaint.DefaultHeuristics())
			if err != nil {
				return err
			}

			labels := complaint.CauseList(doc)
			if len(labels) == 0 {
				fmt.Println("No causes of action found.")
				return nil
			}
			for i, label := range labels {
				fmt.Printf("%d. %s\n", i+1, label)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to complaint text or sections JSON (required)")
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render structured sections back to plain text",
		Long: `Render the final, renumbered section list as flowed plain text.

Example:
  pleader render --source sections.json
  pleader render --source complaint.txt --no-header`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			noHeader, _ := cmd.Flags().GetBool("no-header")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			doc, err := loadDocument(source, complaint.DefaultHeuristics())
			if err != nil {
				return err
			}

			fmt.Print(render.TextWith(doc, render.Options{IncludeHeader: !noHeader}))
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to complaint text or sections JSON (required)")
	cmd.Flags().Bool("no-header", false, "Omit the caption header section")
	return cmd
}

func captionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caption",
		Short: "Render a case caption and apply it to a complaint",
		Long: `Render a structured case caption from a YAML file. With --source, the
caption replaces the complaint's header section and the cause list is
derived from the document's causes of action; without it, the rendered
caption block is printed alone.

Example:
  pleader caption --config caption.yaml
  pleader caption --config caption.yaml --source sections.json --output sections.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			if configPath == "" {
				return fmt.Errorf("--config flag is required")
			}

			c, err := caption.Load(configPath)
			if err != nil {
				return err
			}
			if c.County != "" && !caption.IsCaliforniaCounty(c.County) {
				fmt.Fprintf(os.Stderr, "Warning: %q is not a California county\n", c.County)
			}

			if source == "" {
				fmt.Println(c.RenderHeader())
				return nil
			}

			doc, err := loadDocument(source, complaint.DefaultHeuristics())
			if err != nil {
				return err
			}
			if len(c.CausesOfAction) == 0 {
				c.CausesOfAction = complaint.CauseList(doc)
			}
			c.ApplyTo(doc)
			complaint.Renumber(doc)

			if output == "" {
				output = source
			}
			if err := writeSections(output, doc); err != nil {
				return err
			}
			fmt.Printf("Applied caption to %s\n", output)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a caption YAML file (required)")
	cmd.Flags().String("source", "", "Complaint text or sections JSON to apply the caption to")
	cmd.Flags().String("output", "", "Output path (defaults to --source)")
	return cmd
}

func draftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage persisted complaint drafts",
	}
	cmd.PersistentFlags().String("store", ".pleader", "Draft store directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Initialize a draft store",
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			if _, err := draftstore.Init(storePath); err != nil {
				return err
			}
			fmt.Printf("Initialized draft store at %s\n", storePath)
			return nil
		},
	})

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Parse a complaint and save it as a named draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			store, err := draftstore.OpenOrInit(storePath)
			if err != nil {
				return err
			}
			doc, err := loadDocument(source, complaint.DefaultHeuristics())
			if err != nil {
				return err
			}
			entry, err := store.Save(args[0], doc)
			if err != nil {
				return err
			}
			fmt.Printf("Saved draft %q (%d sections, %d causes)\n",
				entry.Name, entry.Sections, entry.Causes)
			return nil
		},
	}
	addCmd.Flags().String("source", "", "Path to complaint text or sections JSON (required)")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			store, err := draftstore.Open(storePath)
			if err != nil {
				return err
			}
			entries := store.List()
			if len(entries) == 0 {
				fmt.Println("No drafts stored.")
				return nil
			}
			for _, entry := range entries {
				fmt.Printf("%-30s %3d sections %3d causes  updated %s\n",
					entry.Name, entry.Sections, entry.Causes,
					entry.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Render a stored draft as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			store, err := draftstore.Open(storePath)
			if err != nil {
				return err
			}
			doc, err := store.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.Text(doc))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm [name]",
		Short: "Remove a stored draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storePath, _ := cmd.Flags().GetString("store")
			store, err := draftstore.Open(storePath)
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed draft %q\n", args[0])
			return nil
		},
	})

	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory of complaint drafts and reparse on change",
		Long: `Watch a directory for changes to .txt complaint drafts. Each changed
file is reparsed and a structure summary is printed.

Example:
  pleader watch --dir drafts/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			debounce, _ := cmd.Flags().GetDuration("debounce")
			if dir == "" {
				return fmt.Errorf("--dir flag is required")
			}

			watcher, err := draftwatch.New(draftwatch.Config{Dir: dir, Debounce: debounce},
				func(path string, doc *complaint.Document) {
					stats := doc.Statistics()
					fmt.Printf("%s: %d sections, %d causes, %d body ¶, %d prayer ¶\n",
						filepath.Base(path), stats.Sections, stats.Causes,
						stats.BodyParagraphs, stats.PrayerParagraphs)
				})
			if err != nil {
				return err
			}

			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()
			fmt.Printf("Watching %s (Ctrl-C to stop)\n", dir)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan
			return nil
		},
	}

	cmd.Flags().String("dir", "", "Directory of .txt drafts to watch (required)")
	cmd.Flags().Duration("debounce", draftwatch.DefaultDebounce, "Settle window before reparsing")
	return cmd
}

// loadDocument reads either raw complaint text or a persisted sections
// JSON file, chosen by extension, and returns a repaired, renumbered
// document.
func loadDocument(path string, heuristics complaint.HeuristicsConfig) (*complaint.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var sections []*complaint.Section
		if err := json.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("parsing sections from %s: %w", path, err)
		}
		return complaint.FromPersisted(sections), nil
	}
	return complaint.FromRawTextWith(string(data), heuristics), nil
}

func loadHeuristics(path string) (complaint.HeuristicsConfig, error) {
	if path == "" {
		return complaint.DefaultHeuristics(), nil
	}
	return complaint.LoadHeuristics(path)
}

func writeSections(path string, doc *complaint.Document) error {
	data, err := json.MarshalIndent(doc.Sections, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sections: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printSections(doc *complaint.Document) {
	for i, section := range doc.Sections {
		title := section.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%2d. [%-12s] %s\n", i+1, section.Kind, title)
	}
}

func printStats(doc *complaint.Document) {
	stats := doc.Statistics()
	fmt.Println()
	fmt.Printf("Sections:          %d\n", stats.Sections)
	fmt.Printf("Causes of action:  %d\n", stats.Causes)
	fmt.Printf("Body paragraphs:   %d\n", stats.BodyParagraphs)
	fmt.Printf("Prayer paragraphs: %d\n", stats.PrayerParagraphs)
}
