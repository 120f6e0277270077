package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage documents",
	Long:  `Add, list, view, update or remove the documents statistics are computed over.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [path...]",
	Short: "Add files as documents",
	Long: `Adds each file as a document. Plain text, Markdown and HTML are supported.

Text up to the configured size limit is stored with the document; larger
files, or all files with --file-only, are read from disk when needed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print document text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentContent,
}

var documentUpdateCmd = &cobra.Command{
	Use:   "update [doc-id] [file|-]",
	Short: "Replace document text",
	Long: `Replaces the text of a document with the contents of a file, or of
standard input when the file is "-". Cached statistics of every document
sharing a collection with it are dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: runDocumentUpdate,
}

var documentRemoveCmd = &cobra.Command{
	Use:   "remove [doc-id]",
	Short: "Remove a document",
	Long:  `Removes a document from every collection and deletes it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentRemove,
}

// Flags for document add.
var (
	addFileOnly   bool
	addCollection string
)

func init() {
	documentAddCmd.Flags().BoolVar(&addFileOnly, "file-only", false, "never store text inline")
	documentAddCmd.Flags().StringVarP(&addCollection, "collection", "c", "", "also add to this collection")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentContentCmd)
	documentCmd.AddCommand(documentUpdateCmd)
	documentCmd.AddCommand(documentRemoveCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}
	if addCollection != "" && collectionService == nil {
		return errCollectionServiceMissing
	}
	ctx := cmd.Context()

	for _, path := range args {
		doc, err := documentService.Add(ctx, path, !addFileOnly)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}
		storage := "inline"
		if !doc.HasInlineContent() {
			storage = "file"
		}
		cmd.Printf("Added %s  %s (%d characters, %s)\n", doc.ID, doc.Title, doc.ContentLength, storage)

		if addCollection != "" {
			if err := collectionService.AddDocument(ctx, addCollection, doc.ID); err != nil {
				return fmt.Errorf("failed to add %s to %s: %w", doc.ID, addCollection, err)
			}
		}
	}
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if outputJSON {
		return writeJSON(cmd, docs)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if docs[i].URI != "" {
			cmd.Printf("    URI: %s\n", docs[i].URI)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if outputJSON {
		return writeJSON(cmd, doc)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	if doc.URI != "" {
		cmd.Printf("  URI:      %s\n", doc.URI)
	}
	cmd.Printf("  Type:     %s\n", doc.MIMEType)
	cmd.Printf("  Length:   %d characters\n", doc.ContentLength)
	cmd.Printf("  Inline:   %t\n", doc.HasInlineContent())
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format(timeFormat))
	cmd.Printf("  Updated:  %s\n", doc.UpdatedAt.Format(timeFormat))

	if doc.Stats.IsEmpty() {
		cmd.Printf("  Stats:    %s\n", muted(cmd, "not cached"))
	} else {
		cmd.Printf("  Stats:    %d words, %d unique, computed %s\n",
			doc.Stats.WordCount, doc.Stats.UniqueWordCount, doc.Stats.ComputedAt.Format(timeFormat))
	}
	return nil
}

func runDocumentContent(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}

	text, err := documentService.GetText(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document text: %w", err)
	}
	cmd.Println(text)
	return nil
}

func runDocumentUpdate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}

	var (
		data []byte
		err  error
	)
	if args[1] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[1])
	}
	if err != nil {
		return fmt.Errorf("failed to read new content: %w", err)
	}

	if err := documentService.UpdateContent(cmd.Context(), args[0], string(data)); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	cmd.Printf("Updated %s\n", args[0])
	return nil
}

func runDocumentRemove(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errDocumentServiceMissing
	}

	if err := documentService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}
