package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage collections",
	Long: `Create collections and manage their members. The members of a collection
form the corpus its inverse document frequencies are computed over.

Collections can be referred to by ID or by name.`,
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionCreate,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	Args:  cobra.NoArgs,
	RunE:  runCollectionList,
}

var collectionShowCmd = &cobra.Command{
	Use:   "show [collection]",
	Short: "Show a collection and its members",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionShow,
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete [collection]",
	Short: "Delete a collection",
	Long:  `Deletes a collection. Its documents are kept.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionDelete,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add [collection] [doc-id...]",
	Short: "Add documents to a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCollectionAdd,
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove [collection] [doc-id...]",
	Short: "Remove documents from a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCollectionRemove,
}

var collectionDescription string

func init() {
	collectionCreateCmd.Flags().StringVarP(&collectionDescription, "description", "d", "", "collection description")

	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionShowCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
	rootCmd.AddCommand(collectionCmd)
}

func runCollectionCreate(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errCollectionServiceMissing
	}

	collection, err := collectionService.Create(cmd.Context(), args[0], collectionDescription)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	cmd.Printf("Created collection %s (%s)\n", collection.Name, collection.ID)
	return nil
}

func runCollectionList(cmd *cobra.Command, _ []string) error {
	if collectionService == nil {
		return errCollectionServiceMissing
	}

	collections, err := collectionService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if outputJSON {
		return writeJSON(cmd, collections)
	}

	if len(collections) == 0 {
		cmd.Println("No collections found.")
		return nil
	}
	for i := range collections {
		cmd.Printf("  %-24s %3d documents  %s\n",
			collections[i].Name, collections[i].Size(), muted(cmd, collections[i].ID))
	}
	return nil
}

func runCollectionShow(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errCollectionServiceMissing
	}

	collection, err := collectionService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}
	if outputJSON {
		return writeJSON(cmd, collection)
	}

	cmd.Printf("Collection: %s\n\n", collection.Name)
	cmd.Printf("  ID:       %s\n", collection.ID)
	if collection.Description != "" {
		cmd.Printf("  About:    %s\n", collection.Description)
	}
	cmd.Printf("  Created:  %s\n", collection.CreatedAt.Format(timeFormat))
	cmd.Printf("  Updated:  %s\n", collection.UpdatedAt.Format(timeFormat))
	cmd.Printf("\n  Documents (%d):\n", collection.Size())
	for _, id := range collection.DocumentIDs {
		title := ""
		if documentService != nil {
			if doc, err := documentService.Get(cmd.Context(), id); err == nil {
				title = doc.Title
			}
		}
		cmd.Printf("    %s  %s\n", id, title)
	}
	return nil
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errCollectionServiceMissing
	}

	if err := collectionService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	cmd.Printf("Deleted collection %s\n", args[0])
	return nil
}

func runCollectionAdd(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errCollectionServiceMissing
	}

	for _, docID := range args[1:] {
		if err := collectionService.AddDocument(cmd.Context(), args[0], docID); err != nil {
			return fmt.Errorf("failed to add %s: %w", docID, err)
		}
		cmd.Printf("Added %s to %s\n", docID, args[0])
	}
	return nil
}

func runCollectionRemove(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errCollectionServiceMissing
	}

	for _, docID := range args[1:] {
		if err := collectionService.RemoveDocument(cmd.Context(), args[0], docID); err != nil {
			return fmt.Errorf("failed to remove %s: %w", docID, err)
		}
		cmd.Printf("Removed %s from %s\n", docID, args[0])
	}
	return nil
}
